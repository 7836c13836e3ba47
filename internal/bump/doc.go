// Package bump implements the version rewrite pipeline. It locates the
// version declared in a Cargo manifest and substitutes a derived replacement
// into the manifest and lock file one line at a time.
package bump
