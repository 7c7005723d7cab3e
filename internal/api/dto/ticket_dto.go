package dto

import "github.com/spec-kit/helpdesk-service/internal/domain"

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	Title       string `json:"ticket_title"`
	Description string `json:"ticket_description"`
	Category    string `json:"ticket_category"`
}

// SetPriorityRequest payload for admin triage.
type SetPriorityRequest struct {
	Priority string `json:"priority"`
}

// TicketResponse mirrors the wire format clients consume.
type TicketResponse struct {
	ID            string                `json:"ticket_id"`
	Title         string                `json:"ticket_title"`
	Description   string                `json:"ticket_description"`
	Status        domain.TicketStatus   `json:"ticket_status"`
	Priority      domain.TicketPriority `json:"ticket_priority"`
	Category      domain.TicketCategory `json:"ticket_category"`
	RequesterID   string                `json:"ticket_client_id"`
	RequesterName string                `json:"ticket_client_name"`
}

// FromTicket maps a domain ticket to its response shape.
func FromTicket(t *domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		Status:        t.Status,
		Priority:      t.Priority,
		Category:      t.Category,
		RequesterID:   t.RequesterID,
		RequesterName: t.RequesterName,
	}
}

// FromTickets maps a slice of tickets.
func FromTickets(tickets []domain.Ticket) []TicketResponse {
	items := make([]TicketResponse, 0, len(tickets))
	for i := range tickets {
		items = append(items, FromTicket(&tickets[i]))
	}
	return items
}
