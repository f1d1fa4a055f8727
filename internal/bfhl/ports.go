package bfhl

import "context"

// Service dispatches a one-key request body to its operation.
type Service interface {
	Dispatch(ctx context.Context, body map[string]any) Result
}
