// Package cachepref describes cudaFuncCache preferences.
package cachepref

import (
	"fmt"
	"strings"
)

// Preference is a cudaFuncCache value.
type Preference int

const (
	PreferNone Preference = iota
	PreferShared
	PreferL1
)

var descriptions = [...]string{
	PreferNone:   "Default function cache configuration, no preference",
	PreferShared: "Prefer larger shared memory and smaller L1 cache",
	PreferL1:     "Prefer larger L1 cache and smaller shared memory",
}

var names = [...]string{
	PreferNone:   "cudaFuncCachePreferNone",
	PreferShared: "cudaFuncCachePreferShared",
	PreferL1:     "cudaFuncCachePreferL1",
}

// Describe returns the description of p. It panics when p is not one of the
// defined preferences.
func Describe(p Preference) string {
	if p < 0 || int(p) >= len(descriptions) {
		panic(fmt.Sprintf("cachepref: preference %d out of range [0, %d)", int(p), len(descriptions)))
	}
	return descriptions[p]
}

// Valid reports whether p is one of the defined preferences.
func (p Preference) Valid() bool {
	return p >= 0 && int(p) < len(descriptions)
}

func (p Preference) String() string {
	if !p.Valid() {
		return fmt.Sprintf("cudaFuncCache(%d)", int(p))
	}
	return names[p]
}

// All returns the defined preferences in ordinal order.
func All() []Preference {
	out := make([]Preference, len(descriptions))
	for i := range out {
		out[i] = Preference(i)
	}
	return out
}

// Parse accepts a short name (none, default, shared, l1), the runtime
// identifier, or the ordinal.
func Parse(s string) (Preference, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	switch key {
	case "none", "default", "0", "cudafunccacheprefernone":
		return PreferNone, nil
	case "shared", "1", "cudafunccacheprefershared":
		return PreferShared, nil
	case "l1", "2", "cudafunccachepreferl1":
		return PreferL1, nil
	default:
		return 0, fmt.Errorf("unknown cache preference %q (expected none, shared, or l1)", s)
	}
}
