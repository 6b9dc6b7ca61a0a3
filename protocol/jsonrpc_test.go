package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONRPCRequestSerialization(t *testing.T) {
	// Request with params
	req := NewRequest(7, MethodCallTool, CallToolParams{
		Name:      "echo",
		Arguments: map[string]interface{}{"text": "hi"},
	})

	data, err := json.Marshal(req)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &parsed))

	assert.Equal(t, "2.0", parsed["jsonrpc"])
	assert.Equal(t, float64(7), parsed["id"]) // JSON numbers are float64
	assert.Equal(t, "tools/call", parsed["method"])
	params, ok := parsed["params"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "echo", params["name"])

	// Request without params omits the key entirely
	data, err = json.Marshal(NewRequest(8, MethodListTools, nil))
	require.NoError(t, err)
	parsed = nil
	require.NoError(t, json.Unmarshal(data, &parsed))
	_, hasParams := parsed["params"]
	assert.False(t, hasParams, "params should be omitted when nil")
}

func TestJSONRPCResponsePresence(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantResult bool
		wantError  bool
	}{
		{"result only", `{"jsonrpc":"2.0","id":1,"result":{"tools":[]}}`, true, false},
		{"error only", `{"jsonrpc":"2.0","id":1,"error":{"code":-32601,"message":"nope"}}`, false, true},
		{"both", `{"jsonrpc":"2.0","id":1,"result":{},"error":{"code":1,"message":"x"}}`, true, true},
		{"null result", `{"jsonrpc":"2.0","id":1,"result":null}`, false, false},
		{"neither", `{"jsonrpc":"2.0","id":1}`, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var resp JSONRPCResponse
			require.NoError(t, json.Unmarshal([]byte(tc.body), &resp))
			assert.Equal(t, tc.wantResult, resp.HasResult())
			assert.Equal(t, tc.wantError, resp.HasError())
		})
	}
}

func TestErrorPayloadAcceptsString(t *testing.T) {
	var resp JSONRPCResponse
	require.NoError(t, json.Unmarshal([]byte(`{"jsonrpc":"2.0","id":3,"error":"boom"}`), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "boom", resp.Error.Message)
	assert.Equal(t, ErrorCode(0), resp.Error.Code)
	assert.Equal(t, "boom", resp.Error.String())
}

func TestErrorPayloadString(t *testing.T) {
	p := &ErrorPayload{Code: CodeMethodNotFound, Message: "Method not found"}
	assert.Equal(t, "Method not found (code -32601)", p.String())

	p.Data = "tools/unknown"
	assert.Equal(t, "Method not found (code -32601): tools/unknown", p.String())

	var nilPayload *ErrorPayload
	assert.Equal(t, "<nil>", nilPayload.String())
}

func TestNewErrorResponse(t *testing.T) {
	resp := NewErrorResponse(int64(4), CodeTransportError, "Request failed: dial tcp", nil)
	assert.Equal(t, "2.0", resp.JSONRPC)
	assert.True(t, resp.HasError())
	assert.False(t, resp.HasResult())
	assert.Equal(t, CodeTransportError, resp.Error.Code)

	mcpErr := NewMCPError(resp.Error)
	assert.Contains(t, mcpErr.Error(), "Request failed")
	assert.Nil(t, NewMCPError(nil))
}

func TestResponseNullErrorMember(t *testing.T) {
	var resp JSONRPCResponse
	require.NoError(t, json.Unmarshal([]byte(`{"jsonrpc":"2.0","id":1,"error":null,"result":{"tools":[]}}`), &resp))
	assert.True(t, resp.HasError())
	assert.True(t, resp.HasResult())
	assert.Equal(t, "error member is null", resp.Error.Message)

	var ok JSONRPCResponse
	require.NoError(t, json.Unmarshal([]byte(`{"jsonrpc":"2.0","id":2,"result":{"tools":[]}}`), &ok))
	assert.False(t, ok.HasError())

	var bad JSONRPCResponse
	assert.Error(t, json.Unmarshal([]byte(`{"jsonrpc":"2.0","id":`), &bad))
}
