package manifest

// File represents the parts of a Cargo.toml this tool reads. Tables other
// than [package] are ignored; the rewrite pipeline never goes through this
// model, it exists for inspection and validation.
type File struct {
	Package Package `toml:"package"`
}

// Package mirrors the [package] table of a Cargo manifest.
type Package struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
	Edition string `toml:"edition"`
}
