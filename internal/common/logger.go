// Package common provides shared utilities and interfaces used across the application.
// This includes the logging interface and implementation used by the CLI for its own
// diagnostics, separate from the debug channel it demonstrates.
package common

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// StandardLogger is a concrete implementation of the Logger interface.
// It provides debug and info logging capabilities with configurable debug mode.
type StandardLogger struct {
	mu     sync.Mutex
	debug  bool      // Whether debug messages should be printed
	out    io.Writer // Destination for info messages
	errOut io.Writer // Destination for debug messages
}

// NewLogger creates a new logger with the specified debug mode.
// When debug is true, debug messages will be printed to stderr with [DEBUG] prefix.
// Info messages are always printed to stdout.
func NewLogger(debug bool) *StandardLogger {
	return NewLoggerWithWriters(debug, os.Stdout, os.Stderr)
}

// NewLoggerWithWriters creates a logger that writes info messages to out and
// debug messages to errOut. Nil writers fall back to stdout and stderr.
func NewLoggerWithWriters(debug bool, out, errOut io.Writer) *StandardLogger {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return &StandardLogger{
		debug:  debug,
		out:    out,
		errOut: errOut,
	}
}

// DebugEnabled reports whether debug messages are printed
func (l *StandardLogger) DebugEnabled() bool {
	return l.debug
}

// Debug logs a message only when debug mode is enabled
func (l *StandardLogger) Debug(format string, args ...interface{}) {
	if !l.debug {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.errOut, "[DEBUG] "+format+"\n", args...)
}

// Info logs a message always
func (l *StandardLogger) Info(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, format+"\n", args...)
}
