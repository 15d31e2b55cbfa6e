// Package backendver resolves and compares the backend's reported version.
//
// The comparator is intentionally not full semver: the backend publishes
// dotted-integer versions, optionally prefixed with "v" and suffixed with a
// prerelease tag, and tools are gated on numeric component order only.
package backendver

import (
	"strconv"
	"strings"
)

// Compare orders two version strings component-wise. It returns -1, 0 or 1.
//
// Normalization: a leading "v" and anything from the first "-" on are
// stripped, the rest is split on "." into integers, and the shorter side is
// padded with zeros. So "1.2" == "1.2.0" and "v1.10.0-dev.3" > "1.9.9".
func Compare(a, b string) int {
	av := components(a)
	bv := components(b)

	for len(av) < len(bv) {
		av = append(av, 0)
	}
	for len(bv) < len(av) {
		bv = append(bv, 0)
	}

	for i := range av {
		switch {
		case av[i] < bv[i]:
			return -1
		case av[i] > bv[i]:
			return 1
		}
	}
	return 0
}

// LessThan reports whether a orders strictly before b.
func LessThan(a, b string) bool {
	return Compare(a, b) < 0
}

// AtLeast reports whether a orders at or after b.
func AtLeast(a, b string) bool {
	return Compare(a, b) >= 0
}

func components(s string) []int {
	s = strings.TrimPrefix(s, "v")
	if i := strings.IndexByte(s, '-'); i >= 0 {
		s = s[:i]
	}

	parts := strings.Split(s, ".")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			n = 0
		}
		out = append(out, n)
	}
	return out
}
