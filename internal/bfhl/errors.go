package bfhl

import (
	"fmt"
	"strings"
)

const (
	MsgExactlyOneKey     = "Request must contain exactly one key"
	MsgBodyNotObject     = "Request body must be a JSON object"
	MsgPositiveInteger   = "Input must be a positive integer"
	MsgIntegerArray      = "Input must be an array of integers"
	MsgAtLeastTwo        = "Input must be an array of at least two integers"
	MsgZeroInLCM         = "Numbers cannot include zero for LCM"
	MsgNonEmptyQuestion  = "Input must be a non-empty string question"
	MsgAIFailed          = "Failed to get AI response"
	unknownOperationHead = "Invalid key. Supported keys: "
)

// MalformedRequestError means the body did not carry exactly one key.
type MalformedRequestError struct {
	Message string
}

func (e *MalformedRequestError) Error() string { return e.Message }

// UnknownOperationError lists the supported operation names.
type UnknownOperationError struct {
	Name      string
	Supported []string
}

func (e *UnknownOperationError) Error() string {
	return unknownOperationHead + strings.Join(e.Supported, ", ")
}

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ExternalServiceError hides the cause from callers; Error never includes it.
type ExternalServiceError struct {
	Cause error
}

func (e *ExternalServiceError) Error() string { return MsgAIFailed }

func (e *ExternalServiceError) Unwrap() error { return e.Cause }

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}

func fibonacciLimitMessage(limit int) string {
	return fmt.Sprintf("Input must be a positive integer no greater than %d", limit)
}
