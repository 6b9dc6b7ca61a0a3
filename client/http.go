package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// maxErrorBody bounds how much of a non-2xx body is kept for the error message.
const maxErrorBody = 512

// Transport moves one encoded JSON-RPC request to the server and returns the
// raw reply body.
type Transport interface {
	SendWithContext(ctx context.Context, message []byte) ([]byte, error)
}

// httpTransport implements the Transport interface for HTTP POST.
type httpTransport struct {
	url     string
	client  *http.Client
	headers map[string]string
	timeout time.Duration
}

// newHTTPTransport creates the POST transport for url.
// A nil client gets one whose Timeout matches timeout.
func newHTTPTransport(url string, client *http.Client, headers map[string]string, timeout time.Duration) *httpTransport {
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	return &httpTransport{
		url:     url,
		client:  client,
		headers: headers,
		timeout: timeout,
	}
}

// SendWithContext implements the Transport interface.
func (t *httpTransport) SendWithContext(ctx context.Context, message []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, bytes.NewReader(message))
	if err != nil {
		return nil, NewClientError("failed to build HTTP request", 0, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for k, v := range t.headers {
		req.Header.Set(k, v)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, t.classify(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		msg := fmt.Sprintf("HTTP request failed with status: %s", resp.Status)
		if s := strings.TrimSpace(string(snippet)); s != "" {
			msg = fmt.Sprintf("%s: %s", msg, s)
		}
		return nil, NewTransportError("http", msg, resp.StatusCode, ErrTransportFailure)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, t.classify(ctx, err)
	}
	return body, nil
}

// classify maps a failed round trip onto the client error types.
func (t *httpTransport) classify(ctx context.Context, err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) ||
		(errors.As(err, &netErr) && netErr.Timeout()) {
		return NewTimeoutError("POST "+t.url, t.timeout, fmt.Errorf("%w: %w", ErrRequestTimeout, err))
	}
	if errors.Is(err, context.Canceled) {
		return NewClientError("request cancelled", 0, err)
	}
	return NewConnectionError(t.url, "request failed", err)
}
