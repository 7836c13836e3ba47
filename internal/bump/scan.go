package bump

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mass10/cargobump/internal/diag"
)

// versionLineExpr captures the quoted value of a `version = "..."` line.
const versionLineExpr = `\s*version\s*=\s*"(.*)"`

// Captures runs one capture attempt of expr against s and returns the
// captured groups in order, without the whole-match group. A nil result means
// the expression did not match, which is an ordinary outcome; the only error
// case is a malformed expression. Every attempt is reported to the sink.
func Captures(s, expr string, sink diag.Sink) ([]string, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compiling expression %q: %w", expr, err)
	}
	m := re.FindStringSubmatch(s)
	if m == nil {
		sink.Infof("NOT MATCHED for expression [%s].", expr)
		return nil, nil
	}
	sink.Infof("MATCHED for expression [%s].", expr)
	return m[1:], nil
}

// IsVersionLine reports whether the line, once surrounding whitespace is
// trimmed, begins with the literal token "version". This is the sole test
// that decides whether a line is eligible for rewriting.
func IsVersionLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "version")
}

// ReadVersion extracts the quoted version value from a version line. The
// second return value reports whether a version was found; lines that fail
// the version-line test, or whose capture comes back empty, report false.
func ReadVersion(line string, sink diag.Sink) (string, bool, error) {
	if !IsVersionLine(line) {
		return "", false, nil
	}
	groups, err := Captures(line, versionLineExpr, sink)
	if err != nil {
		return "", false, err
	}
	if len(groups) != 1 || groups[0] == "" {
		return "", false, nil
	}
	return groups[0], true, nil
}
