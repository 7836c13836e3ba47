package bump

import (
	"fmt"
	"os"

	"github.com/mass10/cargobump/internal/diag"
)

// Source produces the version to write into the files, given the version
// currently declared in the manifest.
type Source func(current string, sink diag.Sink) (string, error)

// Increment derives the target version by incrementing the patch field of the
// current one. A current version without three numeric fields passes through
// unchanged.
func Increment() Source {
	return func(current string, sink diag.Sink) (string, error) {
		return IncrementPatch(current, sink)
	}
}

// Explicit uses the given version as the target, ignoring the current one.
func Explicit(version string) Source {
	return func(string, diag.Sink) (string, error) {
		return version, nil
	}
}

// Options configures a Run.
type Options struct {
	// ManifestPath is the Cargo.toml to read the current version from and
	// rewrite. It must exist.
	ManifestPath string
	// LockPath is the Cargo.lock to rewrite alongside the manifest. It is
	// skipped when empty or when no file exists at the path.
	LockPath string
	// Source derives the target version. Nil means Increment().
	Source Source
	// DryRun computes and reports changes without writing any file.
	DryRun bool
	// Sink receives diagnostic lines. Nil means diag.Discard.
	Sink diag.Sink
}

// FileChange records the rewritten lines of one file.
type FileChange struct {
	Path  string       `json:"path"`
	Lines []LineChange `json:"lines"`
}

// Result reports what a Run changed, or for dry runs, would change.
type Result struct {
	OldVersion string       `json:"old_version,omitempty"`
	NewVersion string       `json:"new_version,omitempty"`
	Updated    []FileChange `json:"updated,omitempty"`
}

// DetectVersion scans the file at path for its first version line and returns
// the declared version. The scan stops at the first hit. ok is false when no
// line declares a version.
func DetectVersion(path string, sink diag.Sink) (string, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false, fmt.Errorf("reading %s: %w", path, err)
	}
	for _, line := range splitLines(string(data)) {
		v, ok, err := ReadVersion(line, sink)
		if err != nil {
			return "", false, err
		}
		if ok {
			return v, true, nil
		}
	}
	return "", false, nil
}

// Run detects the current crate version and rewrites the manifest and lock
// file with the old version and the target derived by the source. A manifest
// without a version line is reported and leaves every file untouched.
// Failures abort the run as they are; nothing is retried or rolled back.
func Run(opts Options) (Result, error) {
	sink := opts.Sink
	if sink == nil {
		sink = diag.Discard
	}
	source := opts.Source
	if source == nil {
		source = Increment()
	}

	var res Result
	current, ok, err := DetectVersion(opts.ManifestPath, sink)
	if err != nil {
		return res, err
	}
	if !ok {
		sink.Infof("no version line in %s, nothing to do", opts.ManifestPath)
		return res, nil
	}
	res.OldVersion = current

	target, err := source(current, sink)
	if err != nil {
		return res, err
	}
	res.NewVersion = target
	sink.Infof("version %s -> %s", current, target)

	paths := []string{opts.ManifestPath}
	if opts.LockPath != "" {
		if _, err := os.Stat(opts.LockPath); err == nil {
			paths = append(paths, opts.LockPath)
		} else {
			sink.Infof("no lock file at %s, skipping", opts.LockPath)
		}
	}

	for _, path := range paths {
		var (
			changes []LineChange
			err     error
		)
		if opts.DryRun {
			changes, err = previewFile(path, current, target, sink)
		} else {
			changes, err = UpdateFile(path, current, target, sink)
		}
		if err != nil {
			return res, err
		}
		if len(changes) > 0 {
			res.Updated = append(res.Updated, FileChange{Path: path, Lines: changes})
		}
	}
	return res, nil
}
