// Package feedback submits user suggestions to the backend.
package feedback

import (
	"context"
	"strings"
	"unicode/utf8"

	"padelbot/domain/validation"
)

// Text length bounds enforced client-side before any network call.
const (
	MinLength = 10
	MaxLength = 500
)

// Repository interface for submitting suggestions.
type Repository interface {
	Submit(ctx context.Context, token, text string) error
}

// Service validates and submits suggestions.
type Service struct {
	repo Repository
}

// NewService creates a new feedback service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Submit validates the text length and sends the suggestion.
func (s *Service) Submit(ctx context.Context, token, text string) error {
	text = strings.TrimSpace(text)
	n := utf8.RuneCountInString(text)
	if n < MinLength {
		return validation.Errorf("la sugerencia debe tener al menos %d caracteres", MinLength)
	}
	if n > MaxLength {
		return validation.Errorf("la sugerencia no puede superar los %d caracteres", MaxLength)
	}
	return s.repo.Submit(ctx, token, text)
}
