package crate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ManifestName), []byte("[package]\n"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ctx.ManifestPath != filepath.Join(dir, ManifestName) {
		t.Errorf("unexpected manifest path: %s", ctx.ManifestPath)
	}
	if ctx.LockPath != filepath.Join(dir, LockName) {
		t.Errorf("unexpected lock path: %s", ctx.LockPath)
	}
	if ctx.HasLock() {
		t.Error("HasLock reported a lock file that does not exist")
	}

	if err := os.WriteFile(ctx.LockPath, []byte("version = 3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if !ctx.HasLock() {
		t.Error("HasLock missed an existing lock file")
	}
}

func TestLoadMissingManifest(t *testing.T) {
	_, err := Load(t.TempDir())
	if err == nil {
		t.Fatal("expected error for directory without manifest")
	}
	if !strings.Contains(err.Error(), "no "+ManifestName) {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestLoadStatError(t *testing.T) {
	// A crate path crossing a regular file fails stat with something other
	// than not-exist; that error surfaces as is, not as a missing manifest.
	dir := t.TempDir()
	file := filepath.Join(dir, "not-a-dir")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(file)
	if err == nil {
		t.Fatal("expected error for crate path through a regular file")
	}
	if strings.Contains(err.Error(), "no "+ManifestName) {
		t.Errorf("stat failure misreported as missing manifest: %v", err)
	}
}
