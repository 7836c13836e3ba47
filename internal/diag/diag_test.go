package diag

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerInfof(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)

	l.Infof("bumping %s to %s", "0.1.4", "0.1.5")
	l.Infof("done")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	if lines[0] != "[INFO] bumping 0.1.4 to 0.1.5" {
		t.Errorf("unexpected first line: %q", lines[0])
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, "[INFO] ") {
			t.Errorf("line missing prefix: %q", line)
		}
	}
}

func TestErrorf(t *testing.T) {
	var buf bytes.Buffer
	Errorf(&buf, "no %s in %s", "Cargo.toml", "/tmp/x")

	if got := buf.String(); got != "[ERROR] no Cargo.toml in /tmp/x\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestDiscard(t *testing.T) {
	// Must not panic and must accept any arguments.
	Discard.Infof("ignored %d", 42)
}
