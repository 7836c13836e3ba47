package bump

import (
	"fmt"
	"os"
	"strings"

	"github.com/mass10/cargobump/internal/diag"
)

// LineChange records one rewritten line of a file.
type LineChange struct {
	Number int    `json:"line"`
	Old    string `json:"old"`
	New    string `json:"new"`
}

// quoted wraps a version value in the double quotes it carries in TOML.
func quoted(s string) string {
	return `"` + s + `"`
}

// ReplaceOnLine substitutes every occurrence of the double-quoted old version
// on the line with the double-quoted new version. Matching is exact substring
// comparison, never a pattern, so nothing in the version text can be
// reinterpreted.
func ReplaceOnLine(line, old, new string) string {
	return strings.ReplaceAll(line, quoted(old), quoted(new))
}

// splitLines splits file content on newlines. A trailing empty element from a
// newline-terminated file is dropped so that rejoining with a single final
// newline restores the original layout.
func splitLines(content string) []string {
	lines := strings.Split(content, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

// rewriteLines applies the substitution to each version line of lines in
// place and returns one LineChange per line that actually changed. Lines that
// fail the version-line test pass through untouched even when they contain
// the old value.
func rewriteLines(lines []string, path, old, new string, sink diag.Sink) []LineChange {
	var changes []LineChange
	for i, line := range lines {
		if !IsVersionLine(line) {
			continue
		}
		replaced := ReplaceOnLine(line, old, new)
		if replaced == line {
			continue
		}
		lines[i] = replaced
		changes = append(changes, LineChange{Number: i + 1, Old: line, New: replaced})
		sink.Infof("%s:%d: [%s] -> [%s]", path, i+1, line, replaced)
	}
	return changes
}

// UpdateFile rewrites every version line of the file that carries the old
// quoted version and writes the result back to path, overwriting the prior
// content. Lines are handled independently and never reordered. The returned
// changes identify each affected line.
func UpdateFile(path, old, new string, sink diag.Sink) ([]LineChange, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	lines := splitLines(string(data))
	changes := rewriteLines(lines, path, old, new, sink)
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}
	return changes, nil
}

// previewFile computes the changes UpdateFile would make without touching the
// file.
func previewFile(path, old, new string, sink diag.Sink) ([]LineChange, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return rewriteLines(splitLines(string(data)), path, old, new, sink), nil
}
