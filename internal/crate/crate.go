// Package crate resolves the file layout of a Cargo crate directory.
package crate

import (
	"fmt"
	"os"
	"path/filepath"
)

// Fixed file names of a crate directory.
const (
	ManifestName = "Cargo.toml"
	LockName     = "Cargo.lock"
)

// Context holds the resolved paths of a crate's manifest and lock file.
type Context struct {
	Dir          string
	ManifestPath string
	LockPath     string
}

// Load resolves dir into a crate context. The manifest must exist; the lock
// file is optional and its presence is checked separately via HasLock.
func Load(dir string) (*Context, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving crate directory: %w", err)
	}
	ctx := &Context{
		Dir:          abs,
		ManifestPath: filepath.Join(abs, ManifestName),
		LockPath:     filepath.Join(abs, LockName),
	}
	if _, err := os.Stat(ctx.ManifestPath); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no %s in %s", ManifestName, abs)
		}
		return nil, err
	}
	return ctx, nil
}

// HasLock reports whether the crate has a lock file on disk.
func (c *Context) HasLock() bool {
	_, err := os.Stat(c.LockPath)
	return err == nil
}
