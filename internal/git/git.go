package git

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// IsInstalled reports whether git is available on the system PATH.
func IsInstalled() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// IsRepo reports whether the directory is a git repository.
func IsRepo(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ".git"))
	if err != nil {
		return false
	}
	return info.IsDir()
}

// Init runs git init in the given directory.
func Init(dir string) error {
	return runQuiet(dir, "init")
}

// Add stages the given paths in the repository.
func Add(dir string, paths ...string) error {
	args := append([]string{"add", "--"}, paths...)
	return runQuiet(dir, args...)
}

// Commit creates a commit with the given message.
// If user.name or user.email is not configured, repo-local fallback values
// are set first so commits succeed on machines without a global identity.
func Commit(dir, message string) error {
	if err := ensureCommitIdentity(dir); err != nil {
		return fmt.Errorf("setting commit identity: %w", err)
	}
	return runQuiet(dir, "commit", "-m", message)
}

// Tag creates a lightweight tag pointing at HEAD.
func Tag(dir, name string) error {
	return runQuiet(dir, "tag", name)
}

// ensureCommitIdentity sets repo-local user.name/user.email if they are not configured.
func ensureCommitIdentity(dir string) error {
	if _, err := outputQuiet(dir, "config", "user.name"); err != nil {
		if err2 := runQuiet(dir, "config", "user.name", "cargobump"); err2 != nil {
			return err2
		}
	}
	if _, err := outputQuiet(dir, "config", "user.email"); err != nil {
		if err2 := runQuiet(dir, "config", "user.email", "cargobump@localhost"); err2 != nil {
			return err2
		}
	}
	return nil
}

// runQuiet executes a git command without printing stdout.
// Stderr is captured and included in the error message on failure.
func runQuiet(dir string, args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, stderr.String())
	}
	return nil
}

// outputQuiet executes a git command and returns its stdout without printing to the console.
func outputQuiet(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, stderr.String())
	}
	return stdout.String(), nil
}
