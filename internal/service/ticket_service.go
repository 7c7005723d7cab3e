package service

import (
	"context"

	"github.com/spec-kit/helpdesk-service/internal/auth"
	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/events"
	"github.com/spec-kit/helpdesk-service/internal/repository"
)

// TicketCreateInput carries the fields a requester submits.
type TicketCreateInput struct {
	Title       string
	Description string
	Category    domain.TicketCategory
}

// TicketService implements ticket lifecycle operations.
type TicketService struct {
	tickets    repository.TicketRepository
	dispatcher events.Dispatcher
}

// NewTicketService builds the service.
func NewTicketService(tickets repository.TicketRepository, dispatcher events.Dispatcher) *TicketService {
	return &TicketService{tickets: tickets, dispatcher: dispatcher}
}

// Create opens a new ticket for the authenticated requester. Status starts
// Aberto and priority defaults to Média until an administrator triages it.
func (s *TicketService) Create(ctx context.Context, claims *auth.Claims, input TicketCreateInput) (*domain.Ticket, error) {
	ticket := &domain.Ticket{
		Title:       input.Title,
		Description: input.Description,
		Status:      domain.TicketStatusAberto,
		Priority:    domain.TicketPriorityMedia,
		Category:    input.Category,
		RequesterID: claims.Subject,
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventTicketCreated, ticket.ID, claims, events.TicketCreatedPayload{
		Title:    ticket.Title,
		Category: ticket.Category,
		Priority: ticket.Priority,
	})

	created, err := s.tickets.GetByID(ctx, ticket.ID)
	if err != nil {
		// Requester name join failed; return what we have.
		return ticket, nil
	}
	return created, nil
}

// ListOpenForRequester returns the caller's open tickets.
func (s *TicketService) ListOpenForRequester(ctx context.Context, requesterID string) ([]domain.Ticket, error) {
	return s.tickets.ListOpenByRequester(ctx, requesterID)
}

// ListAll returns every ticket, for administrator triage.
func (s *TicketService) ListAll(ctx context.Context) ([]domain.Ticket, error) {
	return s.tickets.ListAll(ctx)
}

// SetPriority updates a ticket's priority.
func (s *TicketService) SetPriority(ctx context.Context, claims *auth.Claims, ticketID string, priority domain.TicketPriority) error {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return err
	}

	if err := s.tickets.UpdatePriority(ctx, ticketID, priority); err != nil {
		return err
	}

	s.publish(ctx, events.EventTicketPriorityChanged, ticketID, claims, events.TicketPriorityChangedPayload{
		OldPriority: ticket.Priority,
		NewPriority: priority,
	})
	return nil
}

// CloseTicket marks a ticket Fechado.
func (s *TicketService) CloseTicket(ctx context.Context, claims *auth.Claims, ticketID string) error {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return err
	}

	if err := s.tickets.Close(ctx, ticketID); err != nil {
		return err
	}

	s.publish(ctx, events.EventTicketClosed, ticketID, claims, events.TicketClosedPayload{
		Title: ticket.Title,
	})
	return nil
}

func (s *TicketService) publish(ctx context.Context, eventType events.EventType, ticketID string, claims *auth.Claims, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	actor := events.Actor{UserID: claims.Subject, Role: claims.Role}
	_ = s.dispatcher.Publish(ctx, events.NewEvent(eventType, ticketID, actor, payload))
}
