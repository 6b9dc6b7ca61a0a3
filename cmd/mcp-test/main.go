// Command mcp-test runs the MCP conformance plan against a server and exits
// 0 when every check passes, 1 otherwise.
//
// The endpoint defaults to http://localhost:8080/sse and can be changed with
// MCP_SERVER_URL. Diagnostics on stderr are controlled by MCP_TEST_LOG_LEVEL
// (debug, info, warning, error; default warning).
package main

import (
	"context"
	"io"
	"os"

	"github.com/localrivet/mcptest/client"
	"github.com/localrivet/mcptest/conformance"
	"github.com/localrivet/mcptest/logx"
	"github.com/localrivet/mcptest/protocol"
)

func main() {
	os.Exit(run(os.Stdout, os.Stderr))
}

// run executes the plan, writing the report to stdout and diagnostics to
// stderr, and returns the process exit code.
func run(stdout, stderr io.Writer) int {
	logger := logx.NewLogger(stderr, protocol.LogLevelWarn)
	if s := os.Getenv("MCP_TEST_LOG_LEVEL"); s != "" {
		level, err := logx.ParseLevel(s)
		if err != nil {
			logger.Warn("ignoring MCP_TEST_LOG_LEVEL: %v", err)
		} else {
			logger.SetLevel(level)
		}
	}

	c := client.New(os.Getenv("MCP_SERVER_URL"), client.WithLogger(logger))
	tester := conformance.New(c, conformance.WithOutput(stdout), conformance.WithLogger(logger))
	report := tester.RunAll(context.Background())
	if report.OK() {
		return 0
	}
	for _, res := range report.Failed() {
		logger.Info("failed: %s (%s): %v", res.Name, res.Method, res.Err)
	}
	return 1
}
