package bfhl

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Vovarama1992/bfhl-gateway/internal/metrics"
)

type service struct {
	registry *Registry
	metrics  *metrics.Recorder
	logger   *slog.Logger
}

func NewService(registry *Registry, rec *metrics.Recorder, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		registry: registry,
		metrics:  rec,
		logger:   logger,
	}
}

func (s *service) Dispatch(ctx context.Context, body map[string]any) Result {
	start := time.Now()
	name, res := s.dispatch(ctx, body)
	s.metrics.Observe(name, res.OK(), time.Since(start))
	return res
}

// dispatch returns the metrics label alongside the result.
func (s *service) dispatch(ctx context.Context, body map[string]any) (string, Result) {
	if len(body) != 1 {
		s.logger.Debug("[bfhl] rejected body", "keys", len(body))
		return "", Failure(&MalformedRequestError{Message: MsgExactlyOneKey})
	}

	var (
		key   string
		value any
	)
	for k, v := range body {
		key, value = k, v
	}

	op, ok := s.registry.Lookup(key)
	if !ok {
		s.logger.Debug("[bfhl] unknown operation", "key", key)
		return "unknown", Failure(&UnknownOperationError{Name: key, Supported: s.registry.Names()})
	}

	input, err := op.Validate(value)
	if err != nil {
		return op.Name, Failure(err)
	}

	data, err := op.Compute(ctx, input)
	if err != nil {
		var ext *ExternalServiceError
		if errors.As(err, &ext) {
			s.logger.Error("[bfhl] external service error", "operation", op.Name, "error", ext.Cause)
		}
		return op.Name, Failure(err)
	}

	return op.Name, Success(data)
}
