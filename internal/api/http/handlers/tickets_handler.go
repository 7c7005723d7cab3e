package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/helpdesk-service/internal/api/dto"
	"github.com/spec-kit/helpdesk-service/internal/auth"
	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/service"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// TicketsHandler manages the requester-facing ticket endpoints.
type TicketsHandler struct {
	service *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{service: ticketService}
}

// Create POST /tickets.
func (h *TicketsHandler) Create(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Title == "" || req.Description == "" {
		return apperrors.NewValidationError("ticket_title and ticket_description required", nil)
	}
	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		return apperrors.NewValidationError("invalid ticket_category", nil)
	}

	ticket, err := h.service.Create(c.Context(), claims, service.TicketCreateInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    category,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.FromTicket(ticket))
}

// ListOpen GET /tickets. Returns the caller's open tickets.
func (h *TicketsHandler) ListOpen(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	tickets, err := h.service.ListOpenForRequester(c.Context(), claims.Subject)
	if err != nil {
		return err
	}
	return c.JSON(dto.FromTickets(tickets))
}

// Close POST /tickets/:id/close.
func (h *TicketsHandler) Close(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	if err := h.service.CloseTicket(c.Context(), claims, c.Params("id")); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"erro": "Chamado não encontrado"})
		}
		return err
	}
	return c.JSON(fiber.Map{"mensagem": "Chamado fechado com sucesso"})
}
