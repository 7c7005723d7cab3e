package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	cases := map[string]Role{
		"Cliente":       RoleCliente,
		"cliente":       RoleCliente,
		"CLIENTE":       RoleCliente,
		"Administrador": RoleAdministrador,
		"administrador": RoleAdministrador,
		" Cliente ":     RoleCliente,
	}
	for input, want := range cases {
		got, err := ParseRole(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got)
	}

	for _, input := range []string{"", "Admin", "client", "root"} {
		_, err := ParseRole(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleCliente.Valid())
	assert.True(t, RoleAdministrador.Valid())
	assert.False(t, Role("Gerente").Valid())
}
