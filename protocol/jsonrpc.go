// Package protocol defines the Model Context Protocol (MCP) message types and
// constants carried over JSON-RPC 2.0.
package protocol

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ErrorPayload defines the structure for the 'error' object within a JSON-RPC response.
type ErrorPayload struct {
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// UnmarshalJSON accepts the standard error object as well as a bare string,
// which some servers send in place of an object.
func (e *ErrorPayload) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var msg string
		if err := json.Unmarshal(data, &msg); err != nil {
			return err
		}
		*e = ErrorPayload{Message: msg}
		return nil
	}
	type alias ErrorPayload
	var aux alias
	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("failed to unmarshal error payload: %w", err)
	}
	*e = ErrorPayload(aux)
	return nil
}

// String renders the payload the way it is shown in test output.
func (e *ErrorPayload) String() string {
	if e == nil {
		return "<nil>"
	}
	s := e.Message
	if e.Code != 0 {
		s = fmt.Sprintf("%s (code %d)", s, e.Code)
	}
	if e.Data != nil {
		s = fmt.Sprintf("%s: %v", s, e.Data)
	}
	return s
}

// JSONRPCRequest represents a JSON-RPC request object as sent by the harness.
type JSONRPCRequest struct {
	JSONRPC string      `json:"jsonrpc"`          // MUST be "2.0"
	ID      int64       `json:"id"`               // Monotonic per client
	Method  string      `json:"method"`           // e.g. "initialize", "tools/call"
	Params  interface{} `json:"params,omitempty"` // Omitted when nil
}

// NewRequest creates a new JSON-RPC request object.
func NewRequest(id int64, method string, params interface{}) *JSONRPCRequest {
	return &JSONRPCRequest{
		JSONRPC: JSONRPCVersion,
		ID:      id,
		Method:  method,
		Params:  params,
	}
}

// JSONRPCResponse represents a JSON-RPC response object.
//
// Result is kept raw so that the caller can decode it into the typed result
// of the method it invoked. Error and Result are not checked for mutual
// exclusivity here.
type JSONRPCResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *ErrorPayload   `json:"error,omitempty"`
}

// nullErrorMessage stands in for an 'error' member that is present but null.
const nullErrorMessage = "error member is null"

// UnmarshalJSON decodes the envelope. A present but null 'error' member still
// marks the response as failed.
func (r *JSONRPCResponse) UnmarshalJSON(data []byte) error {
	type alias JSONRPCResponse
	var aux alias
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*r = JSONRPCResponse(aux)
	if r.Error != nil {
		return nil
	}

	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return nil
	}
	if _, ok := members["error"]; ok {
		r.Error = &ErrorPayload{Message: nullErrorMessage}
	}
	return nil
}

// HasError reports whether the response carries an error object.
func (r *JSONRPCResponse) HasError() bool {
	return r != nil && r.Error != nil
}

// HasResult reports whether the response carries a non-null result.
func (r *JSONRPCResponse) HasResult() bool {
	if r == nil {
		return false
	}
	trimmed := bytes.TrimSpace(r.Result)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

// NewErrorResponse creates a new JSON-RPC error response object.
func NewErrorResponse(id interface{}, code ErrorCode, message string, data interface{}) *JSONRPCResponse {
	return &JSONRPCResponse{
		JSONRPC: JSONRPCVersion,
		ID:      id, // Can be nil if the request never reached the server
		Error: &ErrorPayload{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}
