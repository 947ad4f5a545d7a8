// Package version compares dotted version identifiers for upgrade gate checks.
package version

import (
	"strconv"
	"strings"
)

// Less reports whether current orders strictly before required.
//
// Each identifier is parsed by stripping an optional leading "v" and splitting
// on "." and "-"; segments compare positionally as integers, non-numeric
// segments coerce to 0, and missing trailing segments compare as 0. This is a
// deliberately loose comparator for gate checks, not full semver precedence:
// pre-release ordering edge cases are out of scope.
func Less(current string, required string) bool {
	a := segments(current)
	b := segments(required)
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		av := segmentAt(a, i)
		bv := segmentAt(b, i)
		if av < bv {
			return true
		}
		if av > bv {
			return false
		}
	}
	return false
}

// segments splits a version identifier into its raw components.
func segments(raw string) []string {
	trimmed := strings.TrimPrefix(strings.TrimSpace(raw), "v")
	if trimmed == "" {
		return nil
	}
	return strings.FieldsFunc(trimmed, func(r rune) bool {
		return r == '.' || r == '-'
	})
}

// segmentAt returns the numeric value of segment i, treating absent or
// non-numeric segments as 0.
func segmentAt(parts []string, i int) int {
	if i >= len(parts) {
		return 0
	}
	value, err := strconv.Atoi(parts[i])
	if err != nil {
		return 0
	}
	return value
}
