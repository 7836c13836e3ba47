package lock

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Load reads a Cargo.lock file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading lock file: %w", err)
	}
	return Parse(data)
}

// Parse parses Cargo.lock content. Lock files are generated, so no
// validation beyond well-formed TOML is applied.
func Parse(data []byte) (*File, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing lock TOML: %w", err)
	}
	return &f, nil
}
