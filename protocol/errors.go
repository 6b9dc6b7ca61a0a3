// Package protocol defines the structures and constants for the Model Context Protocol (MCP).
package protocol

import (
	"errors"
	"fmt"
)

// MCPError wraps ErrorPayload to implement the error interface.
// It is how an 'error' member received from a server travels as a Go error.
type MCPError struct {
	ErrorPayload
}

// Error implements the error interface for MCPError.
func (e *MCPError) Error() string {
	return e.ErrorPayload.String()
}

// NewMCPError wraps a payload received from the wire. It returns nil for a nil payload.
func NewMCPError(payload *ErrorPayload) *MCPError {
	if payload == nil {
		return nil
	}
	return &MCPError{ErrorPayload: *payload}
}

// DecodeError reports a result that does not have the shape its method requires.
// Field is empty when the result itself is absent.
type DecodeError struct {
	Method string
	Field  string
	Cause  error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	switch {
	case e.Field == "" && e.Cause == nil:
		return "no result in response"
	case e.Field == "":
		return fmt.Sprintf("malformed result: %v", e.Cause)
	case e.Cause == nil:
		return fmt.Sprintf("missing %s in result", e.Field)
	default:
		return fmt.Sprintf("invalid %s in result: %v", e.Field, e.Cause)
	}
}

// Unwrap returns the underlying cause.
func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// IsDecodeError checks if an error is a shape error from DecodeResult.
func IsDecodeError(err error) bool {
	var decodeErr *DecodeError
	return errors.As(err, &decodeErr)
}
