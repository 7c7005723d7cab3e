package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriority(t *testing.T) {
	cases := map[string]TicketPriority{
		"Baixa": TicketPriorityBaixa,
		"Média": TicketPriorityMedia,
		"media": TicketPriorityMedia,
		"ALTA":  TicketPriorityAlta,
	}
	for input, want := range cases {
		got, err := ParsePriority(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got)
	}

	_, err := ParsePriority("urgente")
	assert.Error(t, err)
}

func TestParseCategory(t *testing.T) {
	cases := map[string]TicketCategory{
		"Software": CategorySoftware,
		"hardware": CategoryHardware,
		"Redes":    CategoryRedes,
		"acesso":   CategoryAcesso,
	}
	for input, want := range cases {
		got, err := ParseCategory(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got)
	}

	_, err := ParseCategory("Impressoras")
	assert.Error(t, err)
}
