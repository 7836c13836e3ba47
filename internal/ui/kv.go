// Package ui contains small console output helpers.
package ui

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// KV renders aligned key/value rows.
type KV struct {
	w *tabwriter.Writer
}

// NewKV creates a key/value writer on out.
func NewKV(out io.Writer) *KV {
	return &KV{w: tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)}
}

// Row appends one key/value pair.
func (k *KV) Row(key string, value any) {
	_, _ = fmt.Fprintf(k.w, "%s\t%v\n", key, value)
}

// Flush writes the buffered output.
func (k *KV) Flush() error {
	return k.w.Flush()
}
