// Package sink writes decoded intent lines to their output destination.
//
// The sink is the human-facing log stream. It is deliberately separate from
// the daemon's structured operational log: decoded lines are plain text, one
// line per call, with no timestamps or level prefixes added.
package sink

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// filePermissions is the permission mode for file-backed sinks.
const filePermissions = 0640

// Sink receives decoded intent lines.
//
// Callers must pass lines without embedded newlines; the sink appends the
// line terminator itself.
type Sink interface {
	// WriteLine writes a single line followed by a newline.
	WriteLine(line string) error
}

// WriterSink writes lines to an io.Writer.
//
// Thread Safety:
//   - WriteLine is safe for concurrent use from multiple goroutines.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink creates a sink that writes to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// WriteLine writes a single line followed by a newline.
func (s *WriterSink) WriteLine(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := io.WriteString(s.w, line+"\n"); err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	return nil
}

// FileSink writes lines to a file opened for append.
type FileSink struct {
	*WriterSink
	f *os.File
}

// Close closes the underlying file.
func (s *FileSink) Close() error {
	if err := s.f.Close(); err != nil {
		return fmt.Errorf("closing sink file: %w", err)
	}
	return nil
}

// Open creates a sink for the configured output.
//
// Recognised values are "stdout", "stderr", or a filesystem path which is
// opened for append (created if missing).
//
// Returns:
//   - Sink: The opened sink
//   - io.Closer: Non-nil when the sink holds a file that must be closed
//   - error: If a file output cannot be opened
func Open(output string) (Sink, io.Closer, error) {
	switch strings.ToLower(output) {
	case "stdout":
		return NewWriterSink(os.Stdout), nil, nil
	case "stderr":
		return NewWriterSink(os.Stderr), nil, nil
	default:
		f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, filePermissions)
		if err != nil {
			return nil, nil, fmt.Errorf("opening sink file: %w", err)
		}
		fs := &FileSink{WriterSink: NewWriterSink(f), f: f}
		return fs, fs, nil
	}
}
