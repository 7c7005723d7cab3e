package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/helpdesk-service/internal/auth"
	"github.com/spec-kit/helpdesk-service/internal/config"
	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/repository"
)

// ErrInvalidCredentials covers both unknown email and wrong password.
// The two cases are deliberately indistinguishable to the caller so that
// login failures leak nothing about account existence.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrEmailTaken is returned when registering an already used email.
var ErrEmailTaken = errors.New("email already registered")

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret),
		bcryptCost: cfg.BcryptCost,
	}
}

// Register creates a new account with a bcrypt-hashed password.
func (s *AuthService) Register(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, error) {
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies credentials and issues a signed token carrying the
// user's id and role, valid for 24 hours.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (string, domain.Role, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", "", time.Time{}, ErrInvalidCredentials
		}
		return "", "", time.Time{}, err
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return "", "", time.Time{}, ErrInvalidCredentials
	}

	if user.ID == "" {
		// Data-integrity fault: a stored record without an identifier is
		// not the caller's mistake.
		return "", "", time.Time{}, fmt.Errorf("user record for %s has no id", email)
	}

	token, expiresAt, err := s.tokenMgr.Generate(user.ID, user.Role)
	if err != nil {
		return "", "", time.Time{}, err
	}
	return token, user.Role, expiresAt, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
