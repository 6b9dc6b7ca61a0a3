// Package logx provides the leveled diagnostic logger used by mcptest.
//
// Diagnostics go to stderr so that stdout carries only the test report.
package logx

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/localrivet/mcptest/protocol"
)

// Logger defines the interface for logging.
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
	SetLevel(level protocol.LoggingLevel)
}

// DefaultLogger provides a basic logger implementation using the standard log package.
type DefaultLogger struct {
	logger *log.Logger
	level  protocol.LoggingLevel
	mu     sync.Mutex
}

// NewLogger creates a logger writing to w that drops messages below level.
func NewLogger(w io.Writer, level protocol.LoggingLevel) *DefaultLogger {
	if w == nil {
		w = os.Stderr
	}
	return &DefaultLogger{
		logger: log.New(w, "[mcptest] ", log.LstdFlags|log.Lmsgprefix),
		level:  level,
	}
}

func (l *DefaultLogger) Debug(msg string, args ...interface{}) {
	l.logf(protocol.LogLevelDebug, "DEBUG: "+msg, args...)
}
func (l *DefaultLogger) Info(msg string, args ...interface{}) {
	l.logf(protocol.LogLevelInfo, "INFO: "+msg, args...)
}
func (l *DefaultLogger) Warn(msg string, args ...interface{}) {
	l.logf(protocol.LogLevelWarn, "WARN: "+msg, args...)
}
func (l *DefaultLogger) Error(msg string, args ...interface{}) {
	l.logf(protocol.LogLevelError, "ERROR: "+msg, args...)
}

// SetLevel updates the logging level for the DefaultLogger.
func (l *DefaultLogger) SetLevel(level protocol.LoggingLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *DefaultLogger) logf(level protocol.LoggingLevel, format string, args ...interface{}) {
	l.mu.Lock()
	threshold := l.level
	l.mu.Unlock()
	if levelToSeverity(level) < levelToSeverity(threshold) {
		return
	}
	l.logger.Printf(format, args...)
}

// levelToSeverity maps a protocol level to an ordinal; higher is more severe.
// Unknown levels rank as info.
func levelToSeverity(level protocol.LoggingLevel) int {
	switch level {
	case protocol.LogLevelDebug:
		return 0
	case protocol.LogLevelInfo:
		return 1
	case protocol.LogLevelNotice:
		return 2
	case protocol.LogLevelWarn:
		return 3
	case protocol.LogLevelError:
		return 4
	case protocol.LogLevelCritical:
		return 5
	case protocol.LogLevelAlert:
		return 6
	case protocol.LogLevelEmergency:
		return 7
	default:
		return 1
	}
}

// ParseLevel converts a level name such as "debug" or "WARN" into a protocol level.
func ParseLevel(s string) (protocol.LoggingLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return protocol.LogLevelDebug, nil
	case "info":
		return protocol.LogLevelInfo, nil
	case "notice":
		return protocol.LogLevelNotice, nil
	case "warn", "warning":
		return protocol.LogLevelWarn, nil
	case "error":
		return protocol.LogLevelError, nil
	case "critical":
		return protocol.LogLevelCritical, nil
	case "alert":
		return protocol.LogLevelAlert, nil
	case "emergency":
		return protocol.LogLevelEmergency, nil
	default:
		return "", fmt.Errorf("unknown log level %q", s)
	}
}

// nopLogger discards everything.
type nopLogger struct{}

// NewNopLogger returns a Logger that discards all messages.
func NewNopLogger() Logger { return nopLogger{} }

func (nopLogger) Debug(string, ...interface{})    {}
func (nopLogger) Info(string, ...interface{})     {}
func (nopLogger) Warn(string, ...interface{})     {}
func (nopLogger) Error(string, ...interface{})    {}
func (nopLogger) SetLevel(protocol.LoggingLevel) {}

// Ensure interface compliance
var (
	_ Logger = (*DefaultLogger)(nil)
	_ Logger = nopLogger{}
)
