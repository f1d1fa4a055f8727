package bfhl

import (
	"context"
	"strings"

	"github.com/Vovarama1992/bfhl-gateway/internal/ai"
)

const (
	OpFibonacci = "fibonacci"
	OpPrime     = "prime"
	OpLCM       = "lcm"
	OpHCF       = "hcf"
	OpAI        = "AI"
)

// Operation describes one selectable computation. Validate turns the raw
// decoded JSON value into the input Compute expects.
type Operation struct {
	Name     string
	Validate func(value any) (any, error)
	Compute  func(ctx context.Context, input any) (any, error)
}

// Registry is the fixed operation table. It is never mutated after NewRegistry.
type Registry struct {
	ops   map[string]Operation
	names []string
}

// DefaultFibonacciLimit bounds the term count; the response grows with n².
const DefaultFibonacciLimit = 10000

type RegistryOption func(*registryOptions)

type registryOptions struct {
	maxFibonacci int
}

// WithFibonacciLimit caps the requested term count. Zero or less means no cap.
func WithFibonacciLimit(n int) RegistryOption {
	return func(o *registryOptions) { o.maxFibonacci = n }
}

func NewRegistry(answerer ai.Answerer, opts ...RegistryOption) *Registry {
	o := registryOptions{maxFibonacci: DefaultFibonacciLimit}
	for _, opt := range opts {
		opt(&o)
	}

	list := []Operation{
		{Name: OpFibonacci, Validate: validateFibonacci(o.maxFibonacci), Compute: computeFibonacci},
		{Name: OpPrime, Validate: validatePrime, Compute: computePrime},
		{Name: OpLCM, Validate: validateLCM, Compute: computeLCM},
		{Name: OpHCF, Validate: validateHCF, Compute: computeHCF},
		{Name: OpAI, Validate: validateQuestion, Compute: askAI(answerer)},
	}

	r := &Registry{
		ops:   make(map[string]Operation, len(list)),
		names: make([]string, 0, len(list)),
	}
	for _, op := range list {
		r.ops[op.Name] = op
		r.names = append(r.names, op.Name)
	}
	return r
}

func (r *Registry) Lookup(name string) (Operation, bool) {
	op, ok := r.ops[name]
	return op, ok
}

// Names returns operation names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// ------------------------------------------------------------

func validateFibonacci(limit int) func(any) (any, error) {
	return func(value any) (any, error) {
		n, ok := asInt(value)
		if !ok || n <= 0 {
			return nil, invalid(MsgPositiveInteger)
		}
		if limit > 0 && n > int64(limit) {
			return nil, invalid(fibonacciLimitMessage(limit))
		}
		return int(n), nil
	}
}

func computeFibonacci(_ context.Context, input any) (any, error) {
	return Fibonacci(input.(int)), nil
}

func validatePrime(value any) (any, error) {
	nums, ok := asIntSlice(value)
	if !ok {
		return nil, invalid(MsgIntegerArray)
	}
	return nums, nil
}

func computePrime(ctx context.Context, input any) (any, error) {
	primes, err := FilterPrimes(ctx, input.([]int64))
	if err != nil {
		return nil, err
	}
	return primes, nil
}

func validatePair(value any) ([]int64, error) {
	nums, ok := asIntSlice(value)
	if !ok || len(nums) < 2 {
		return nil, invalid(MsgAtLeastTwo)
	}
	return nums, nil
}

func validateLCM(value any) (any, error) {
	nums, err := validatePair(value)
	if err != nil {
		return nil, err
	}
	for _, n := range nums {
		if n == 0 {
			return nil, invalid(MsgZeroInLCM)
		}
	}
	return nums, nil
}

func computeLCM(_ context.Context, input any) (any, error) {
	return ArrayLCM(input.([]int64)), nil
}

func validateHCF(value any) (any, error) {
	nums, err := validatePair(value)
	if err != nil {
		return nil, err
	}
	return nums, nil
}

func computeHCF(_ context.Context, input any) (any, error) {
	return ArrayGCD(input.([]int64)), nil
}

func validateQuestion(value any) (any, error) {
	q, ok := value.(string)
	if !ok || strings.TrimSpace(q) == "" {
		return nil, invalid(MsgNonEmptyQuestion)
	}
	return q, nil
}

func askAI(answerer ai.Answerer) func(context.Context, any) (any, error) {
	return func(ctx context.Context, input any) (any, error) {
		if answerer == nil {
			return nil, &ExternalServiceError{Cause: ai.ErrNotConfigured}
		}
		answer, err := answerer.Answer(ctx, input.(string))
		if err != nil {
			return nil, &ExternalServiceError{Cause: err}
		}
		return answer, nil
	}
}
