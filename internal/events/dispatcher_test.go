package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

func TestPublishInvokesSubscribers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var got []Event
	dispatcher.Subscribe(EventTicketCreated, func(_ context.Context, event Event) error {
		got = append(got, event)
		return nil
	})

	actor := Actor{UserID: "42", Role: domain.RoleCliente}
	event := NewEvent(EventTicketCreated, "t-1", actor, TicketCreatedPayload{Title: "x"})
	require.NoError(t, dispatcher.Publish(context.Background(), event))

	require.Len(t, got, 1)
	assert.Equal(t, "t-1", got[0].TicketID)
	assert.NotEmpty(t, got[0].ID)
	assert.False(t, got[0].Timestamp.IsZero())

	// Other event types are not delivered.
	require.NoError(t, dispatcher.Publish(context.Background(), NewEvent(EventTicketClosed, "t-2", actor, nil)))
	assert.Len(t, got, 1)
}

func TestPublishContinuesAfterHandlerError(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	dispatcher.Subscribe(EventTicketClosed, func(context.Context, Event) error {
		return errors.New("boom")
	})
	called := false
	dispatcher.Subscribe(EventTicketClosed, func(context.Context, Event) error {
		called = true
		return nil
	})

	actor := Actor{UserID: "7", Role: domain.RoleAdministrador}
	require.NoError(t, dispatcher.Publish(context.Background(), NewEvent(EventTicketClosed, "t-1", actor, nil)))
	assert.True(t, called)
}
