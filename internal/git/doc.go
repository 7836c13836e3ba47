// Package git provides a wrapper around the Git CLI commands cargobump uses
// to record a version bump as a commit and tag. It does not depend on other
// internal packages.
package git
