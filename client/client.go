// Package client implements the RPC test client: it numbers JSON-RPC requests,
// posts them to an MCP endpoint and hands back the decoded response envelope.
//
// Requests are issued one at a time. The client is not safe for concurrent use.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/localrivet/mcptest/logx"
	"github.com/localrivet/mcptest/protocol"
)

const (
	// DefaultBaseURL is the endpoint used when none is configured.
	DefaultBaseURL = "http://localhost:8080/sse"

	// DefaultTimeout bounds each request.
	DefaultTimeout = 10 * time.Second

	// transportFailurePrefix starts the message of every synthesized error response.
	transportFailurePrefix = "Request failed: "
)

// Client sends JSON-RPC 2.0 requests to a single MCP endpoint.
type Client struct {
	baseURL    string
	timeout    time.Duration
	headers    map[string]string
	httpClient *http.Client
	transport  Transport
	logger     logx.Logger

	// nextID is the identifier the next request will carry.
	nextID int64
}

// New creates a client for baseURL. An empty baseURL selects DefaultBaseURL.
func New(baseURL string, options ...Option) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: baseURL,
		timeout: DefaultTimeout,
		logger:  logx.NewNopLogger(),
		nextID:  1,
	}
	for _, option := range options {
		option(c)
	}
	if c.transport == nil {
		c.transport = newHTTPTransport(c.baseURL, c.httpClient, c.headers, c.timeout)
	}
	return c
}

// BaseURL returns the endpoint the client posts to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// NextID returns the identifier the next request will carry.
func (c *Client) NextID() int64 {
	return c.nextID
}

// Send issues one request and returns the decoded response envelope.
//
// The identifier is consumed before anything can fail, so a failed request
// still advances the counter. Transport failures are returned as errors;
// a JSON-RPC error from the server is not an error here and is left in the
// envelope for the caller to inspect.
func (c *Client) Send(ctx context.Context, method string, params interface{}) (*protocol.JSONRPCResponse, error) {
	_, resp, err := c.send(ctx, method, params)
	return resp, err
}

// Call issues one request and returns its raw result. A JSON-RPC error from
// the server is returned as *ServerError wrapping the *protocol.MCPError;
// transport failures are returned as from Send.
func (c *Client) Call(ctx context.Context, method string, params interface{}) (json.RawMessage, error) {
	resp, err := c.Send(ctx, method, params)
	if err != nil {
		return nil, err
	}
	if resp.HasError() {
		if resp.HasResult() {
			c.logger.Warn("%s response carries both error and result; treating as error", method)
		}
		return nil, NewServerError(method, c.baseURL, int(resp.Error.Code), resp.Error.Message, protocol.NewMCPError(resp.Error))
	}
	return resp.Result, nil
}

// SendRequest issues one request and always returns an envelope.
//
// Any transport failure is recovered into a synthetic response whose error
// message starts with "Request failed: " and whose code is
// protocol.CodeTransportError.
func (c *Client) SendRequest(ctx context.Context, method string, params interface{}) *protocol.JSONRPCResponse {
	id, resp, err := c.send(ctx, method, params)
	if err != nil {
		c.logger.Warn("request %d (%s) failed: %v", id, method, err)
		return protocol.NewErrorResponse(id, protocol.CodeTransportError, transportFailurePrefix+err.Error(), nil)
	}
	return resp
}

func (c *Client) send(ctx context.Context, method string, params interface{}) (int64, *protocol.JSONRPCResponse, error) {
	id := c.nextID
	c.nextID++

	req := protocol.NewRequest(id, method, params)
	body, err := json.Marshal(req)
	if err != nil {
		return id, nil, NewClientError(fmt.Sprintf("failed to marshal %s request", method), 0, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	c.logger.Debug("-> %s", body)
	start := time.Now()
	raw, err := c.transport.SendWithContext(ctx, body)
	if err != nil {
		return id, nil, err
	}
	c.logger.Debug("<- %s (%v)", raw, time.Since(start))

	var resp protocol.JSONRPCResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return id, nil, NewClientError("failed to decode response body", 0, fmt.Errorf("%w: %v", ErrInvalidResponse, err))
	}
	return id, &resp, nil
}
