package lock

// File represents the parts of a Cargo.lock this tool reads.
type File struct {
	Version  int       `toml:"version"`
	Packages []Package `toml:"package"`
}

// Package records one locked package entry.
type Package struct {
	Name         string   `toml:"name"`
	Version      string   `toml:"version"`
	Source       string   `toml:"source"`
	Checksum     string   `toml:"checksum"`
	Dependencies []string `toml:"dependencies"`
}

// FindPackage returns the locked entry for the named package.
func (f *File) FindPackage(name string) (*Package, bool) {
	for i := range f.Packages {
		if f.Packages[i].Name == name {
			return &f.Packages[i], true
		}
	}
	return nil, false
}
