package debugex

import (
	"io"
	"sync"
)

// Sink receives formatted debug blocks.
type Sink interface {
	// WriteLine writes s followed by a line terminator.
	WriteLine(s string)
}

// WriterSink writes debug blocks to an io.Writer. Write errors are dropped.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink creates a Sink that writes to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// WriteLine writes s and the platform line terminator in a single write.
func (s *WriterSink) WriteLine(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = io.WriteString(s.w, line+lineTerminator)
}
