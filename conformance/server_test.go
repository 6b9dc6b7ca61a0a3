package conformance

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/localrivet/mcptest/protocol"
)

// handlerFunc produces the full response object (minus jsonrpc/id) for a request.
type handlerFunc func(params map[string]interface{}) map[string]interface{}

// fakeServer is a minimal MCP endpoint. Unless overridden, every method of
// the plan gets a well-formed result.
type fakeServer struct {
	mu       sync.Mutex
	handlers map[string]handlerFunc
	delays   map[string]time.Duration
	requests []protocol.JSONRPCRequest
	params   map[string]map[string]interface{}
}

func newFakeServer(t *testing.T) (*fakeServer, *httptest.Server) {
	t.Helper()
	fs := &fakeServer{
		handlers: defaultHandlers(),
		delays:   map[string]time.Duration{},
		params:   map[string]map[string]interface{}{},
	}
	server := httptest.NewServer(fs)
	t.Cleanup(server.Close)
	return fs, server
}

func (s *fakeServer) handle(method string, h handlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[method] = h
}

// result installs a handler returning result verbatim.
func (s *fakeServer) result(method string, result interface{}) {
	s.handle(method, func(map[string]interface{}) map[string]interface{} {
		return map[string]interface{}{"result": result}
	})
}

// fail installs a handler returning a JSON-RPC error, optionally with a result alongside.
func (s *fakeServer) fail(method string, withResult bool) {
	s.mu.Lock()
	orig := s.handlers[method]
	s.mu.Unlock()
	s.handle(method, func(params map[string]interface{}) map[string]interface{} {
		resp := map[string]interface{}{
			"error": map[string]interface{}{"code": -32603, "message": "Internal error"},
		}
		if withResult {
			resp["result"] = orig(params)["result"]
		}
		return resp
	})
}

// without installs a handler whose result lacks field.
func (s *fakeServer) without(method, field string) {
	s.mu.Lock()
	orig := s.handlers[method]
	s.mu.Unlock()
	s.handle(method, func(params map[string]interface{}) map[string]interface{} {
		result := orig(params)["result"].(map[string]interface{})
		trimmed := make(map[string]interface{}, len(result))
		for k, v := range result {
			if k != field {
				trimmed[k] = v
			}
		}
		return map[string]interface{}{"result": trimmed}
	})
}

func (s *fakeServer) delay(method string, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delays[method] = d
}

func (s *fakeServer) recorded() []protocol.JSONRPCRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]protocol.JSONRPCRequest(nil), s.requests...)
}

func (s *fakeServer) paramsFor(method string) map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params[method]
}

func (s *fakeServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost || r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "expected JSON POST", http.StatusBadRequest)
		return
	}
	body, _ := io.ReadAll(r.Body)

	var req protocol.JSONRPCRequest
	var raw struct {
		Params map[string]interface{} `json:"params"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	_ = json.Unmarshal(body, &raw)

	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.params[req.Method] = raw.Params
	h := s.handlers[req.Method]
	d := s.delays[req.Method]
	s.mu.Unlock()

	if d > 0 {
		select {
		case <-r.Context().Done():
			return
		case <-time.After(d):
		}
	}

	resp := map[string]interface{}{"jsonrpc": "2.0", "id": req.ID}
	if h == nil {
		resp["error"] = map[string]interface{}{"code": -32601, "message": "Method not found"}
	} else {
		for k, v := range h(raw.Params) {
			resp[k] = v
		}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func defaultHandlers() map[string]handlerFunc {
	static := func(result map[string]interface{}) handlerFunc {
		return func(map[string]interface{}) map[string]interface{} {
			return map[string]interface{}{"result": result}
		}
	}
	return map[string]handlerFunc{
		protocol.MethodInitialize: static(map[string]interface{}{
			"protocolVersion": "2025-03-26",
			"capabilities": map[string]interface{}{
				"tools":     map[string]interface{}{"listChanged": true},
				"resources": map[string]interface{}{},
				"prompts":   map[string]interface{}{},
			},
			"serverInfo": map[string]interface{}{"name": "demo-server", "version": "1.2.3"},
		}),
		protocol.MethodListResources: static(map[string]interface{}{
			"resources": []interface{}{
				map[string]interface{}{"uri": "text://hello", "name": "hello"},
			},
		}),
		protocol.MethodListTools: static(map[string]interface{}{
			"tools": []interface{}{
				map[string]interface{}{"name": "echo", "description": "Echo text back", "inputSchema": map[string]interface{}{"type": "object"}},
				map[string]interface{}{"name": "silent"},
			},
		}),
		protocol.MethodListPrompts: static(map[string]interface{}{
			"prompts": []interface{}{
				map[string]interface{}{"name": "greeting", "description": "Greets someone"},
			},
		}),
		protocol.MethodCallTool: func(params map[string]interface{}) map[string]interface{} {
			args, _ := params["arguments"].(map[string]interface{})
			return map[string]interface{}{"result": map[string]interface{}{
				"content": []interface{}{
					map[string]interface{}{"type": "text", "text": args["text"]},
				},
			}}
		},
		protocol.MethodReadResource: static(map[string]interface{}{
			"contents": []interface{}{
				map[string]interface{}{
					"uri":  "text://hello",
					"type": "text",
					"text": "Hello, world! This resource body is deliberately longer than fifty characters.",
				},
			},
		}),
		protocol.MethodGetPrompt: func(params map[string]interface{}) map[string]interface{} {
			args, _ := params["arguments"].(map[string]interface{})
			name, _ := args["name"].(string)
			return map[string]interface{}{"result": map[string]interface{}{
				"description": "A friendly greeting",
				"messages": []interface{}{
					map[string]interface{}{
						"role":    "user",
						"content": map[string]interface{}{"type": "text", "text": "Hello, " + name + "!"},
					},
				},
			}}
		},
	}
}
