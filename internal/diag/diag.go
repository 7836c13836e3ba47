// Package diag provides the operator-facing diagnostic sink for the rewrite
// pipeline. The pipeline reports every pattern match attempt and every
// rewritten line through a Sink, keeping the core logic free of direct
// console output.
package diag

import (
	"fmt"
	"io"
	"sync"
)

// Sink receives informational diagnostic lines.
type Sink interface {
	Infof(format string, args ...any)
}

// Logger writes prefixed diagnostic lines to a writer.
type Logger struct {
	mu  sync.Mutex
	out io.Writer
}

// New creates a Logger writing to out.
func New(out io.Writer) *Logger {
	return &Logger{out: out}
}

// Infof prints one line tagged with the [INFO] prefix.
func (l *Logger) Infof(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = fmt.Fprintf(l.out, "[INFO] "+format+"\n", args...)
}

// Errorf prints one line tagged with the [ERROR] prefix. It is used once, at
// process exit, to render the failure that aborted a run.
func Errorf(out io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(out, "[ERROR] "+format+"\n", args...)
}

// Discard is a Sink that drops every line.
var Discard Sink = discard{}

type discard struct{}

func (discard) Infof(string, ...any) {}
