package log

import (
	"io"
	"os"
	"sync"

	"github.com/fxamacker/cbor/v2"
)

// StreamLogger writes CBOR-encoded events to an io.WriteCloser.
// It is safe for concurrent use from multiple goroutines.
type StreamLogger struct {
	mu      sync.Mutex
	w       io.WriteCloser
	encoder *cbor.Encoder
	count   uint64
	errors  uint64
	closed  bool
}

// NewStreamLogger creates a logger writing to w. Close closes w.
func NewStreamLogger(w io.WriteCloser) *StreamLogger {
	return &StreamLogger{w: w, encoder: newEncoder(w)}
}

// NewFileLogger opens path for appending (creating it with mode 0644) and
// returns a logger writing to it.
func NewFileLogger(path string) (*StreamLogger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	return NewStreamLogger(f), nil
}

// Log encodes the event. Encoding errors are counted, not returned, so a
// failing log sink never disturbs property traffic.
func (l *StreamLogger) Log(event Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}
	if err := l.encoder.Encode(event); err != nil {
		l.errors++
		return
	}
	l.count++
}

// Stats returns the number of events written and failed.
func (l *StreamLogger) Stats() (written, failed uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.count, l.errors
}

// Close closes the underlying writer. Subsequent Log calls are ignored.
// It is safe to call Close multiple times.
func (l *StreamLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true
	return l.w.Close()
}

// Compile-time interface satisfaction check.
var _ Logger = (*StreamLogger)(nil)
