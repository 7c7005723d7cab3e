package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk-service/internal/auth"
	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/events"
)

type fakeTicketRepo struct {
	byID   map[string]*domain.Ticket
	nextID int
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{byID: map[string]*domain.Ticket{}, nextID: 1}
}

func (r *fakeTicketRepo) Create(_ context.Context, ticket *domain.Ticket) error {
	ticket.ID = strconv.Itoa(r.nextID)
	r.nextID++
	ticket.CreatedAt = time.Now()
	ticket.UpdatedAt = ticket.CreatedAt
	stored := *ticket
	r.byID[ticket.ID] = &stored
	return nil
}

func (r *fakeTicketRepo) GetByID(_ context.Context, id string) (*domain.Ticket, error) {
	if ticket, ok := r.byID[id]; ok {
		copied := *ticket
		return &copied, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeTicketRepo) ListOpenByRequester(_ context.Context, requesterID string) ([]domain.Ticket, error) {
	var result []domain.Ticket
	for _, ticket := range r.byID {
		if ticket.RequesterID == requesterID && ticket.Status == domain.TicketStatusAberto {
			result = append(result, *ticket)
		}
	}
	return result, nil
}

func (r *fakeTicketRepo) ListAll(_ context.Context) ([]domain.Ticket, error) {
	var result []domain.Ticket
	for _, ticket := range r.byID {
		result = append(result, *ticket)
	}
	return result, nil
}

func (r *fakeTicketRepo) UpdatePriority(_ context.Context, id string, priority domain.TicketPriority) error {
	ticket, ok := r.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	ticket.Priority = priority
	return nil
}

func (r *fakeTicketRepo) Close(_ context.Context, id string) error {
	ticket, ok := r.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	ticket.Status = domain.TicketStatusFechado
	return nil
}

func testClaims(subject string, role domain.Role) *auth.Claims {
	return &auth.Claims{
		Role:             role,
		RegisteredClaims: jwt.RegisteredClaims{Subject: subject},
	}
}

func collectEvents(dispatcher events.Dispatcher, eventType events.EventType, sink *[]events.Event) {
	dispatcher.Subscribe(eventType, func(_ context.Context, event events.Event) error {
		*sink = append(*sink, event)
		return nil
	})
}

func TestCreateTicketDefaults(t *testing.T) {
	repo := newFakeTicketRepo()
	dispatcher := events.NewInMemoryDispatcher()
	var published []events.Event
	collectEvents(dispatcher, events.EventTicketCreated, &published)

	svc := NewTicketService(repo, dispatcher)
	ticket, err := svc.Create(context.Background(), testClaims("42", domain.RoleCliente), TicketCreateInput{
		Title:       "Sem acesso à VPN",
		Description: "Não consigo ligar à VPN desde ontem.",
		Category:    domain.CategoryRedes,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.TicketStatusAberto, ticket.Status)
	assert.Equal(t, domain.TicketPriorityMedia, ticket.Priority)
	assert.Equal(t, "42", ticket.RequesterID)

	require.Len(t, published, 1)
	assert.Equal(t, ticket.ID, published[0].TicketID)
	assert.Equal(t, "42", published[0].Actor.UserID)
}

func TestSetPriorityPublishesOldAndNew(t *testing.T) {
	repo := newFakeTicketRepo()
	dispatcher := events.NewInMemoryDispatcher()
	var published []events.Event
	collectEvents(dispatcher, events.EventTicketPriorityChanged, &published)

	svc := NewTicketService(repo, dispatcher)
	ticket, err := svc.Create(context.Background(), testClaims("42", domain.RoleCliente), TicketCreateInput{
		Title:       "Impressora avariada",
		Description: "A impressora do piso 2 não responde.",
		Category:    domain.CategoryHardware,
	})
	require.NoError(t, err)

	err = svc.SetPriority(context.Background(), testClaims("7", domain.RoleAdministrador), ticket.ID, domain.TicketPriorityAlta)
	require.NoError(t, err)

	updated, err := repo.GetByID(context.Background(), ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TicketPriorityAlta, updated.Priority)

	require.Len(t, published, 1)
	payload, ok := published[0].Payload.(events.TicketPriorityChangedPayload)
	require.True(t, ok)
	assert.Equal(t, domain.TicketPriorityMedia, payload.OldPriority)
	assert.Equal(t, domain.TicketPriorityAlta, payload.NewPriority)
}

func TestSetPriorityMissingTicket(t *testing.T) {
	svc := NewTicketService(newFakeTicketRepo(), events.NewInMemoryDispatcher())

	err := svc.SetPriority(context.Background(), testClaims("7", domain.RoleAdministrador), "999", domain.TicketPriorityBaixa)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestCloseTicket(t *testing.T) {
	repo := newFakeTicketRepo()
	dispatcher := events.NewInMemoryDispatcher()
	var published []events.Event
	collectEvents(dispatcher, events.EventTicketClosed, &published)

	svc := NewTicketService(repo, dispatcher)
	ticket, err := svc.Create(context.Background(), testClaims("42", domain.RoleCliente), TicketCreateInput{
		Title:       "Pedido de acesso",
		Description: "Acesso ao sistema financeiro.",
		Category:    domain.CategoryAcesso,
	})
	require.NoError(t, err)

	require.NoError(t, svc.CloseTicket(context.Background(), testClaims("42", domain.RoleCliente), ticket.ID))

	closed, err := repo.GetByID(context.Background(), ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusFechado, closed.Status)
	require.Len(t, published, 1)

	open, err := svc.ListOpenForRequester(context.Background(), "42")
	require.NoError(t, err)
	assert.Empty(t, open)
}
