// Package testutil provides crate fixtures for command-level tests.
package testutil

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// WriteCrate writes a Cargo.toml and Cargo.lock for a crate with the given
// name and version into a fresh temp directory and returns the directory.
func WriteCrate(t *testing.T, name, version string) string {
	t.Helper()
	dir := t.TempDir()
	WriteManifest(t, dir, name, version)
	WriteLock(t, dir, name, version)
	return dir
}

// WriteManifest writes a minimal Cargo.toml into dir.
func WriteManifest(t *testing.T, dir, name, version string) {
	t.Helper()
	content := fmt.Sprintf(`[package]
name = %q
version = %q
edition = "2021"

[dependencies]
anyhow = "1.0"
`, name, version)
	if err := os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte(content), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}
}

// WriteLock writes a minimal Cargo.lock into dir with an entry for the crate
// itself and one locked dependency.
func WriteLock(t *testing.T, dir, name, version string) {
	t.Helper()
	content := fmt.Sprintf(`# This file is automatically @generated by Cargo.
# It is not intended for manual editing.
version = 3

[[package]]
name = "anyhow"
version = "1.0.86"
source = "registry+https://github.com/rust-lang/crates.io-index"
checksum = "b3d1d046238990b9cf5bcde22a3fb3584ee5cf65fb2765f454ed428c7a0063da"

[[package]]
name = %q
version = %q
dependencies = [
 "anyhow",
]
`, name, version)
	if err := os.WriteFile(filepath.Join(dir, "Cargo.lock"), []byte(content), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}
}

// InitRepo turns dir into a git repository with one commit of its current
// contents.
func InitRepo(t *testing.T, dir string) {
	t.Helper()
	run(t, dir, "git", "init", "-b", "main")
	run(t, dir, "git", "config", "user.email", "test@example.com")
	run(t, dir, "git", "config", "user.name", "Test")
	run(t, dir, "git", "add", ".")
	run(t, dir, "git", "commit", "-m", "initial commit")
}

// GitOutput runs a git command in dir and returns its stdout.
func GitOutput(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		t.Fatalf("git %v failed: %v", args, err)
	}
	return string(out)
}

func run(t *testing.T, dir string, name string, args ...string) {
	t.Helper()
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("command %s %v failed: %v", name, args, err)
	}
}
