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

// AdminHandler exposes administrator triage endpoints. Routes mounting it
// must already enforce the Administrador role.
type AdminHandler struct {
	service *service.TicketService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(ticketService *service.TicketService) *AdminHandler {
	return &AdminHandler{service: ticketService}
}

// ListTickets GET /admin/tickets. Returns every ticket for triage.
func (h *AdminHandler) ListTickets(c *fiber.Ctx) error {
	tickets, err := h.service.ListAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"tickets": dto.FromTickets(tickets)})
}

// SetPriority POST /admin/tickets/:id/priority.
func (h *AdminHandler) SetPriority(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.SetPriorityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"erro": "Valor de prioridade inválido"})
	}
	priority, err := domain.ParsePriority(req.Priority)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"erro": "Valor de prioridade inválido"})
	}

	if err := h.service.SetPriority(c.Context(), claims, c.Params("id"), priority); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"erro": "Ticket não encontrado"})
		}
		return err
	}
	return c.JSON(fiber.Map{"mensagem": "Prioridade atualizada com sucesso"})
}
