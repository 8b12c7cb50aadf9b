package testutil

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/chrisreddington/debugex/internal/common"
)

// ErrorConfig represents common error simulation configuration
type ErrorConfig struct {
	ShouldError  bool
	ErrorMessage string
}

// GetErrorOrDefault returns the configured error message or a default message
func (c *ErrorConfig) GetErrorOrDefault(defaultMsg string) error {
	if !c.ShouldError {
		return nil
	}
	msg := c.ErrorMessage
	if msg == "" {
		msg = defaultMsg
	}
	return fmt.Errorf("%s", msg)
}

// FailingWriter is an io.Writer that fails according to its ErrorConfig.
// Successful writes are kept in Written.
type FailingWriter struct {
	ErrorConfig
	Written []byte
}

// Write implements io.Writer
func (w *FailingWriter) Write(p []byte) (int, error) {
	if err := w.GetErrorOrDefault("write failed"); err != nil {
		return 0, err
	}
	w.Written = append(w.Written, p...)
	return len(p), nil
}

// RecordingSink records every debug block written to it.
type RecordingSink struct {
	mu    sync.Mutex
	lines []string
}

// WriteLine records s
func (s *RecordingSink) WriteLine(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, line)
}

// Lines returns a copy of the recorded blocks
func (s *RecordingSink) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.lines...)
}

// Last returns the most recent block, or "" if nothing was written
func (s *RecordingSink) Last() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.lines) == 0 {
		return ""
	}
	return s.lines[len(s.lines)-1]
}

// FixedClock returns a clock that always reports t
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// SplitLines splits a debug block into lines, accepting "\n" or "\r\n" terminators
func SplitLines(s string) []string {
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}

// MockLogger provides a simple mock logger for testing
type MockLogger struct {
	LastMessage string
	DebugCalls  []string
	InfoCalls   []string
}

func (m *MockLogger) Debug(format string, args ...interface{}) {
	m.LastMessage = fmt.Sprintf(format, args...)
	m.DebugCalls = append(m.DebugCalls, m.LastMessage)
}

func (m *MockLogger) Info(format string, args ...interface{}) {
	m.LastMessage = fmt.Sprintf(format, args...)
	m.InfoCalls = append(m.InfoCalls, m.LastMessage)
}

// Verify MockLogger implements common.Logger interface
var _ common.Logger = (*MockLogger)(nil)
