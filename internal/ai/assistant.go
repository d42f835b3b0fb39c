package ai

import (
	"context"
	"errors"
)

// Generator is the narrow capability the chat translator needs from a
// text-generation service: one prompt in, one textual reply out.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Classified generation failures. Implementations wrap these so callers can
// pick a user-facing message with errors.Is while the raw detail stays in the
// chain.
var (
	ErrRateLimited = errors.New("generative service rate limited")
	ErrUnavailable = errors.New("generative service unavailable")
)
