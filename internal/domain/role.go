package domain

import (
	"fmt"
	"strings"
)

// Role enumerates the authorization levels a user can hold.
type Role string

const (
	RoleCliente       Role = "Cliente"
	RoleAdministrador Role = "Administrador"
)

// ParseRole converts a stored or submitted label into a Role.
// Matching is case-insensitive; anything outside the closed set is rejected.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cliente":
		return RoleCliente, nil
	case "administrador":
		return RoleAdministrador, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// Valid reports whether the role belongs to the closed set.
func (r Role) Valid() bool {
	switch r {
	case RoleCliente, RoleAdministrador:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}
