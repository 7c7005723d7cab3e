package auth

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

const msgAccessDenied = "Acesso Negado. Somente administradores."

// RequireRole ensures the authenticated caller holds exactly the given role.
// There is no role hierarchy: an Administrador does not pass a Cliente check.
func RequireRole(required domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			return unauthorized(c, msgMissingToken)
		}
		if claims.Role != required {
			return c.Status(http.StatusForbidden).JSON(fiber.Map{"erro": msgAccessDenied})
		}
		return c.Next()
	}
}
