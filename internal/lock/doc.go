// Package lock reads Cargo.lock files. A lock file repeats the crate's own
// version in its package list, which this tool keeps in step with the
// manifest.
package lock
