package bump

import (
	"fmt"
	"math"
	"strconv"

	"github.com/mass10/cargobump/internal/diag"
)

// patchExpr captures the three numeric fields of a MAJOR.MINOR.PATCH version.
const patchExpr = `(\d+)\.(\d+)\.(\d+)`

// IncrementPatch returns the version with its third numeric field incremented
// by one. The first two fields pass through as captured text, so spellings
// like leading zeros survive the round trip. Input without three
// dot-separated numeric fields is returned unchanged.
func IncrementPatch(version string, sink diag.Sink) (string, error) {
	groups, err := Captures(version, patchExpr, sink)
	if err != nil {
		return "", err
	}
	if len(groups) != 3 {
		return version, nil
	}
	patch, err := strconv.ParseUint(groups[2], 10, 64)
	if err != nil {
		return "", fmt.Errorf("parsing patch field %q: %w", groups[2], err)
	}
	if patch == math.MaxUint64 {
		return "", fmt.Errorf("incrementing patch field %q: value out of range", groups[2])
	}
	return fmt.Sprintf("%s.%s.%d", groups[0], groups[1], patch+1), nil
}
