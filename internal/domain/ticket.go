package domain

import (
	"fmt"
	"strings"
	"time"
)

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusAberto  TicketStatus = "Aberto"
	TicketStatusFechado TicketStatus = "Fechado"
)

// TicketPriority enumerates triage urgency, set by administrators.
type TicketPriority string

const (
	TicketPriorityBaixa TicketPriority = "Baixa"
	TicketPriorityMedia TicketPriority = "Média"
	TicketPriorityAlta  TicketPriority = "Alta"
)

// ParsePriority converts a submitted label into a TicketPriority.
// Accepts "media" without the accent, which older clients still send.
func ParsePriority(s string) (TicketPriority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "baixa":
		return TicketPriorityBaixa, nil
	case "média", "media":
		return TicketPriorityMedia, nil
	case "alta":
		return TicketPriorityAlta, nil
	default:
		return "", fmt.Errorf("unknown priority %q", s)
	}
}

// TicketCategory classifies the kind of request.
type TicketCategory string

const (
	CategorySoftware TicketCategory = "Software"
	CategoryHardware TicketCategory = "Hardware"
	CategoryRedes    TicketCategory = "Redes"
	CategoryAcesso   TicketCategory = "Acesso"
)

// ParseCategory converts a submitted label into a TicketCategory.
func ParseCategory(s string) (TicketCategory, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "software":
		return CategorySoftware, nil
	case "hardware":
		return CategoryHardware, nil
	case "redes":
		return CategoryRedes, nil
	case "acesso":
		return CategoryAcesso, nil
	default:
		return "", fmt.Errorf("unknown category %q", s)
	}
}

// Ticket is the aggregate for support requests.
type Ticket struct {
	ID            string
	Title         string
	Description   string
	Status        TicketStatus
	Priority      TicketPriority
	Category      TicketCategory
	RequesterID   string
	RequesterName string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
