package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-service/internal/api/dto"
	"github.com/spec-kit/helpdesk-service/internal/auth"
	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/service"
)

// UsersHandler exposes registration and login endpoints.
type UsersHandler struct {
	auth    *service.AuthService
	limiter *auth.LoginLimiter
	logger  *zap.Logger
}

// NewUsersHandler constructs handler.
func NewUsersHandler(authService *service.AuthService, limiter *auth.LoginLimiter, logger *zap.Logger) *UsersHandler {
	return &UsersHandler{auth: authService, limiter: limiter, logger: logger}
}

// Register handles POST /register.
func (h *UsersHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Dados de registo inválidos."})
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Nome, e-mail e senha são obrigatórios."})
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Papel de utilizador inválido."})
	}

	user, err := h.auth.Register(c.Context(), req.Name, req.Email, req.Password, role)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			return c.Status(http.StatusConflict).JSON(fiber.Map{"error": "Este e-mail já está registado."})
		}
		h.logger.Error("register failed", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Erro interno ao registar utilizador."})
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	})
}

// Login handles POST /login. Unknown email and wrong password produce the
// exact same response.
func (h *UsersHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Dados de login inválidos."})
	}
	if req.Email == "" || req.Password == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "E-mail e senha são obrigatórios."})
	}

	if !h.limiter.Allow(c.Context(), req.Email+"|"+c.IP()) {
		return c.Status(http.StatusTooManyRequests).JSON(fiber.Map{"error": "Muitas tentativas de login. Tente novamente mais tarde."})
	}

	token, role, _, err := h.auth.Authenticate(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "Credenciais inválidas."})
		}
		h.logger.Error("login failed", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Erro interno no servidor ao tentar login."})
	}

	return c.JSON(dto.LoginResponse{Token: token, Role: role.String()})
}
