package auth

import (
	"context"
	"fmt"
	"strings"

	"padelbot/domain/validation"
)

// Service handles authentication flows and session persistence.
type Service struct {
	repo     Repository
	sessions SessionStore
}

// NewService creates a new auth service.
func NewService(repo Repository, sessions SessionStore) *Service {
	return &Service{repo: repo, sessions: sessions}
}

// Login authenticates and persists the resulting session for the chat.
func (s *Service) Login(ctx context.Context, chatID int64, identifier, password string) (*Session, error) {
	if strings.TrimSpace(identifier) == "" || password == "" {
		return nil, validation.Errorf("usuario y contraseña son obligatorios")
	}
	sess, err := s.repo.Login(ctx, strings.TrimSpace(identifier), password)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, chatID, sess); err != nil {
		return nil, fmt.Errorf("guardar sesión: %w", err)
	}
	return sess, nil
}

// Register validates the password confirmation client-side, creates the
// account and persists the session.
func (s *Service) Register(ctx context.Context, chatID int64, username, email, password, confirm string) (*Session, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(email) == "" {
		return nil, validation.Errorf("usuario y email son obligatorios")
	}
	if password != confirm {
		return nil, validation.Errorf("las contraseñas no coinciden")
	}
	sess, err := s.repo.Register(ctx, strings.TrimSpace(username), strings.TrimSpace(email), password)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, chatID, sess); err != nil {
		return nil, fmt.Errorf("guardar sesión: %w", err)
	}
	return sess, nil
}

// ForgotPassword triggers the reset email.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	if strings.TrimSpace(email) == "" {
		return validation.Errorf("el email es obligatorio")
	}
	return s.repo.ForgotPassword(ctx, strings.TrimSpace(email))
}

// ConfirmEmail confirms an account with the emailed token.
func (s *Service) ConfirmEmail(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return validation.Errorf("el token de confirmación es obligatorio")
	}
	return s.repo.ConfirmEmail(ctx, strings.TrimSpace(token))
}

// Current returns the persisted session for the chat, or nil.
func (s *Service) Current(ctx context.Context, chatID int64) (*Session, error) {
	return s.sessions.Get(ctx, chatID)
}

// Logout deletes the persisted session.
func (s *Service) Logout(ctx context.Context, chatID int64) error {
	return s.sessions.Delete(ctx, chatID)
}
