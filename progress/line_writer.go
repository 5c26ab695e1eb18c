package progress

import (
	"bytes"
	"strings"
	"sync"
)

// LineWriter is an io.Writer that reassembles a byte stream into lines and
// hands each complete line to a callback. Writes may arrive in arbitrary
// chunks and from concurrent goroutines; the callback is never invoked
// concurrently with itself.
type LineWriter struct {
	mu      sync.Mutex
	pending []byte
	onLine  func(line string)
}

func NewLineWriter(onLine func(line string)) *LineWriter {
	return &LineWriter{onLine: onLine}
}

func (w *LineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending = append(w.pending, p...)

	for {
		idx := bytes.IndexByte(w.pending, '\n')
		if idx < 0 {
			break
		}
		line := strings.TrimRight(string(w.pending[:idx]), "\r")
		w.pending = w.pending[idx+1:]
		w.onLine(line)
	}

	return len(p), nil
}

// Flush emits any trailing partial line. Called once after the producing
// process has exited.
func (w *LineWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.pending) == 0 {
		return
	}
	line := strings.TrimRight(string(w.pending), "\r")
	w.pending = nil
	if line != "" {
		w.onLine(line)
	}
}
