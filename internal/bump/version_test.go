package bump

import (
	"testing"

	"github.com/mass10/cargobump/internal/diag"
)

func TestIncrementPatch(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0.0.0", "0.0.1"},
		{"0.0.1", "0.0.2"},
		{"0.0.9", "0.0.10"},
		{"0.0.10", "0.0.11"},
		{"0.0.99", "0.0.100"},
		{"0.1.0", "0.1.1"},
		{"0.9.9", "0.9.10"},
		{"1.0.0", "1.0.1"},
		{"1.2.3", "1.2.4"},
		{"999.999.999", "999.999.1000"},
		{"0.0.999999999", "0.0.1000000000"},
	}
	for _, tt := range tests {
		got, err := IncrementPatch(tt.in, diag.Discard)
		if err != nil {
			t.Fatalf("IncrementPatch(%q): unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("IncrementPatch(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIncrementPatchKeepsLeadingZeros(t *testing.T) {
	got, err := IncrementPatch("01.002.3", diag.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "01.002.4" {
		t.Errorf("got %q, want %q", got, "01.002.4")
	}
}

func TestIncrementPatchPassThrough(t *testing.T) {
	// Input without three numeric fields comes back unchanged.
	tests := []string{"", "abc", "1.2", "1.x.3", "version"}
	for _, in := range tests {
		got, err := IncrementPatch(in, diag.Discard)
		if err != nil {
			t.Fatalf("IncrementPatch(%q): unexpected error: %v", in, err)
		}
		if got != in {
			t.Errorf("IncrementPatch(%q) = %q, want input unchanged", in, got)
		}
	}
}

func TestIncrementPatchPatchTooLarge(t *testing.T) {
	// 2^64-1 parses but has no successor; 2^64 fails to parse at all.
	// Neither may come back as a wrapped-around version with a nil error.
	tests := []string{
		"1.0.18446744073709551615",
		"1.0.18446744073709551616",
	}
	for _, in := range tests {
		got, err := IncrementPatch(in, diag.Discard)
		if err == nil {
			t.Errorf("IncrementPatch(%q) = %q, want error for oversized patch field", in, got)
		}
	}
}
