package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const claimsKey = "auth_claims"

const bearerPrefix = "Bearer "

// Portuguese-facing messages, stable across releases since clients match on them.
const (
	msgMissingToken     = "Token de autorização ausente."
	msgMalformedHeader  = "Token de autorização mal formatado (requer prefixo 'Bearer ')."
	msgTokenExpired     = "Token expirado."
	msgInvalidSignature = "Assinatura do token inválida."
	msgInvalidToken     = "Token inválido."
)

// Middleware validates bearer tokens on protected routes. It performs no
// I/O: the token alone carries everything a handler needs.
type Middleware struct {
	tokens *TokenManager
	logger *zap.Logger
}

// NewMiddleware constructs the authenticator.
func NewMiddleware(tokens *TokenManager, logger *zap.Logger) *Middleware {
	return &Middleware{tokens: tokens, logger: logger}
}

// Handle enforces authentication for protected routes and stores the decoded
// claims for the handler.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return unauthorized(c, msgMissingToken)
	}

	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return unauthorized(c, msgMalformedHeader)
	}

	claims, err := m.tokens.Parse(strings.TrimPrefix(authHeader, bearerPrefix))
	if err != nil {
		m.logger.Debug("token rejected",
			zap.String("path", c.Path()),
			zap.Error(err))
		switch {
		case errors.Is(err, ErrTokenExpired):
			return unauthorized(c, msgTokenExpired)
		case errors.Is(err, ErrTokenSignatureInvalid):
			return unauthorized(c, msgInvalidSignature)
		default:
			return unauthorized(c, msgInvalidToken)
		}
	}

	c.Locals(claimsKey, claims)
	return c.Next()
}

// ClaimsFromContext retrieves the claims stored by Handle.
func ClaimsFromContext(c *fiber.Ctx) (*Claims, bool) {
	val := c.Locals(claimsKey)
	if val == nil {
		return nil, false
	}
	claims, ok := val.(*Claims)
	return claims, ok
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": message})
}
