package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mass10/cargobump/internal/testutil"
)

func TestRunSet(t *testing.T) {
	dir := testutil.WriteCrate(t, "demo", "0.1.4")

	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetArgs([]string{"--dir", dir, "set", "2.0.0"})
	if err := root.Execute(); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	if !strings.Contains(buf.String(), "Updated version 0.1.4 -> 2.0.0") {
		t.Errorf("missing summary line:\n%s", buf.String())
	}
	manifest := readFile(t, filepath.Join(dir, "Cargo.toml"))
	if !strings.Contains(manifest, `version = "2.0.0"`) {
		t.Errorf("manifest not updated:\n%s", manifest)
	}
	lockContent := readFile(t, filepath.Join(dir, "Cargo.lock"))
	if !strings.Contains(lockContent, `version = "2.0.0"`) {
		t.Errorf("lock not updated:\n%s", lockContent)
	}
}

func TestRunSet_sameVersion(t *testing.T) {
	dir := testutil.WriteCrate(t, "demo", "0.1.4")

	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetArgs([]string{"--dir", dir, "set", "0.1.4"})
	if err := root.Execute(); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No changes.") {
		t.Errorf("expected no-change summary:\n%s", buf.String())
	}
}

func TestRunSet_emptyVersion(t *testing.T) {
	dir := testutil.WriteCrate(t, "demo", "0.1.4")

	root := newRootCmd()
	root.SetOut(new(bytes.Buffer))
	root.SetArgs([]string{"--dir", dir, "set", "  "})
	if err := root.Execute(); err == nil {
		t.Fatal("expected error for blank version")
	}
}

func TestRunSet_noArgWithoutTTY(t *testing.T) {
	// Test runs have no TTY on stdin, so the interactive path must refuse.
	dir := testutil.WriteCrate(t, "demo", "0.1.4")

	root := newRootCmd()
	root.SetOut(new(bytes.Buffer))
	root.SetArgs([]string{"--dir", dir, "set"})
	err := root.Execute()
	if err == nil {
		t.Fatal("expected error when no version is given without a TTY")
	}
	if !strings.Contains(err.Error(), "TTY") {
		t.Errorf("unexpected error: %v", err)
	}
}
