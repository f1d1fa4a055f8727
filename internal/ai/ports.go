package ai

import (
	"context"
	"errors"
)

// Answerer is the external model: a question in, a one-word answer out.
type Answerer interface {
	Answer(ctx context.Context, question string) (string, error)
}

var (
	// ErrEmptyChoices is returned when the model responds without any choice.
	ErrEmptyChoices = errors.New("ai: empty choices")
	// ErrNotConfigured is returned when no Answerer was wired.
	ErrNotConfigured = errors.New("ai: answerer not configured")
)
