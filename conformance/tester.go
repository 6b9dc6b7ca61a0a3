// Package conformance drives a fixed plan of MCP requests against a server and
// reports, per request, whether the response had the required shape.
//
// The plan mirrors a typical client handshake: initialize, capability
// discovery (resources, tools, prompts), then one invocation of each kind.
// Each check is independent; a failing or panicking check never stops the
// ones after it.
package conformance

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/localrivet/mcptest/logx"
	"github.com/localrivet/mcptest/protocol"
)

// Caller sends one JSON-RPC request and always yields a response envelope.
// *client.Client implements it.
type Caller interface {
	SendRequest(ctx context.Context, method string, params interface{}) *protocol.JSONRPCResponse
}

// Tester runs checks through a Caller and writes human-readable progress.
type Tester struct {
	caller Caller
	out    io.Writer
	logger logx.Logger
}

// Option configures a Tester.
type Option func(*Tester)

// WithOutput sets where progress and the summary are written. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(t *Tester) {
		if w != nil {
			t.out = w
		}
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger logx.Logger) Option {
	return func(t *Tester) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// New creates a Tester over caller.
func New(caller Caller, options ...Option) *Tester {
	t := &Tester{
		caller: caller,
		out:    os.Stdout,
		logger: logx.NewNopLogger(),
	}
	for _, option := range options {
		option(t)
	}
	return t
}

// Result is the outcome of one check.
type Result struct {
	Name     string
	Method   string
	Passed   bool
	Err      error
	Duration time.Duration
}

// Report aggregates the results of a full run.
type Report struct {
	RunID    string
	BaseURL  string
	Results  []Result
	Passed   int
	Total    int
	Duration time.Duration
}

// OK reports whether every check in the run passed.
func (r *Report) OK() bool {
	return r != nil && r.Total > 0 && r.Passed == r.Total
}

// Failed returns the results that did not pass, in run order.
func (r *Report) Failed() []Result {
	var failed []Result
	for _, res := range r.Results {
		if !res.Passed {
			failed = append(failed, res)
		}
	}
	return failed
}

// PanicError is recorded for a check that panicked.
type PanicError struct {
	Value interface{}
	Stack []byte
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("test panicked: %v", e.Value)
}

// RunAll executes every check in order and prints a summary.
func (t *Tester) RunAll(ctx context.Context) *Report {
	report := &Report{
		RunID: uuid.NewString(),
		Total: len(plan),
	}
	if u, ok := t.caller.(interface{ BaseURL() string }); ok {
		report.BaseURL = u.BaseURL()
	}

	t.printf("🚀 Starting MCP Server Tests\n")
	if report.BaseURL != "" {
		t.printf("Endpoint: %s\n", report.BaseURL)
	}
	t.printf("Run: %s\n", report.RunID)
	t.printf("%s\n", rule)
	t.logger.Info("run %s started against %q", report.RunID, report.BaseURL)

	start := time.Now()
	for _, c := range plan {
		res := t.run(ctx, c)
		report.Results = append(report.Results, res)
		if res.Passed {
			report.Passed++
		}
		t.printf("\n")
	}
	report.Duration = time.Since(start)

	t.printf("%s\n", rule)
	t.printf("📊 Test Results: %d/%d tests passed\n", report.Passed, report.Total)
	if report.OK() {
		t.printf("🎉 All tests passed! MCP server is fully functional.\n")
	} else {
		t.printf("❌ Some tests failed. Please check the server implementation.\n")
	}
	t.logger.Info("run %s finished: %d/%d passed in %v", report.RunID, report.Passed, report.Total, report.Duration)
	return report
}

// run executes one check, converting a panic into a failed Result.
func (t *Tester) run(ctx context.Context, c check) (res Result) {
	res = Result{Name: c.name, Method: c.method}
	start := time.Now()
	defer func() {
		res.Duration = time.Since(start)
		if r := recover(); r != nil {
			res.Passed = false
			res.Err = &PanicError{Value: r, Stack: debug.Stack()}
			t.printf("❌ Test failed with exception: %v\n", r)
			t.logger.Error("%s panicked: %v\n%s", c.method, r, res.Err.(*PanicError).Stack)
		}
		t.logger.Debug("%s finished in %v (passed=%t)", c.method, res.Duration, res.Passed)
	}()

	t.printf("Testing %s...\n", c.method)
	if err := c.fn(t, ctx); err != nil {
		res.Err = err
		t.printf("❌ %s failed: %v\n", c.title, err)
		return res
	}
	res.Passed = true
	return res
}

const rule = "=================================================="

func (t *Tester) printf(format string, args ...interface{}) {
	fmt.Fprintf(t.out, format, args...)
}

// detail prints an indented line under a check's status line.
func (t *Tester) detail(format string, args ...interface{}) {
	t.printf("   "+format+"\n", args...)
}

// call sends method and decodes its result into target, enforcing the
// method's required result fields. An 'error' member takes precedence over
// any result carried alongside it.
func (t *Tester) call(ctx context.Context, method string, params interface{}, target interface{}) error {
	resp := t.caller.SendRequest(ctx, method, params)
	if resp == nil {
		return &protocol.DecodeError{Method: method}
	}
	if resp.HasError() {
		if resp.HasResult() {
			t.logger.Warn("%s response carries both error and result; treating as error", method)
		}
		return protocol.NewMCPError(resp.Error)
	}
	return protocol.DecodeResult(method, resp.Result, protocol.RequiredResultFields[method], target)
}

// preview shortens s to at most n runes.
func preview(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
