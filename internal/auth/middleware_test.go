package auth

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

func newTestApp(t *testing.T) (*fiber.App, *TokenManager) {
	t.Helper()

	tm := NewTokenManager(testSecret)
	m := NewMiddleware(tm, zap.NewNop())

	app := fiber.New()
	app.Get("/me", m.Handle, func(c *fiber.Ctx) error {
		claims, ok := ClaimsFromContext(c)
		require.True(t, ok)
		return c.JSON(fiber.Map{"sub": claims.Subject, "role": claims.Role})
	})
	app.Get("/admin", m.Handle, RequireRole(domain.RoleAdministrador), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})
	app.Get("/cliente", m.Handle, RequireRole(domain.RoleCliente), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})
	return app, tm
}

func doRequest(t *testing.T, app *fiber.App, path, authHeader string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	body := map[string]any{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &body))
	}
	return resp.StatusCode, body
}

func TestMissingAuthorizationHeader(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doRequest(t, app, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Token de autorização ausente.", body["message"])
}

func TestWrongAuthorizationScheme(t *testing.T) {
	app, tm := newTestApp(t)
	token, _, err := tm.Generate("42", domain.RoleCliente)
	require.NoError(t, err)

	status, body := doRequest(t, app, "/me", "Token "+token)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Token de autorização mal formatado (requer prefixo 'Bearer ').", body["message"])
}

func TestValidTokenReachesHandler(t *testing.T) {
	app, tm := newTestApp(t)
	token, _, err := tm.Generate("42", domain.RoleCliente)
	require.NoError(t, err)

	status, body := doRequest(t, app, "/me", "Bearer "+token)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "42", body["sub"])
	assert.Equal(t, "Cliente", body["role"])
}

func TestExpiredTokenRejected(t *testing.T) {
	app, _ := newTestApp(t)

	expired := &Claims{
		Role: domain.RoleCliente,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "42",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expired).SignedString([]byte(testSecret))
	require.NoError(t, err)

	status, body := doRequest(t, app, "/me", "Bearer "+signed)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Token expirado.", body["message"])
}

func TestForeignSignatureRejected(t *testing.T) {
	app, _ := newTestApp(t)

	token, _, err := NewTokenManager("another-secret").Generate("42", domain.RoleCliente)
	require.NoError(t, err)

	status, body := doRequest(t, app, "/me", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Assinatura do token inválida.", body["message"])
}

func TestGarbageTokenRejected(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doRequest(t, app, "/me", "Bearer not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Token inválido.", body["message"])
}

func TestRoleGatingIsExact(t *testing.T) {
	app, tm := newTestApp(t)

	clienteToken, _, err := tm.Generate("42", domain.RoleCliente)
	require.NoError(t, err)
	adminToken, _, err := tm.Generate("7", domain.RoleAdministrador)
	require.NoError(t, err)

	// A valid, unexpired client token is still forbidden on admin routes.
	status, body := doRequest(t, app, "/admin", "Bearer "+clienteToken)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "Acesso Negado. Somente administradores.", body["erro"])

	status, _ = doRequest(t, app, "/admin", "Bearer "+adminToken)
	assert.Equal(t, http.StatusOK, status)

	// No hierarchy: administrators do not pass Cliente-only checks.
	status, _ = doRequest(t, app, "/cliente", "Bearer "+adminToken)
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = doRequest(t, app, "/cliente", "Bearer "+clienteToken)
	assert.Equal(t, http.StatusOK, status)
}
