package photo

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// NameSet tracks filenames that are already taken, either present in
// the directory snapshot or claimed by an earlier entry in the same
// batch.
type NameSet map[string]struct{}

// NewNameSet builds a set containing the given names.
func NewNameSet(names ...string) NameSet {
	s := make(NameSet, len(names))
	for _, n := range names {
		s.Add(n)
	}
	return s
}

// Has reports whether name is taken.
func (s NameSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Add marks name as taken.
func (s NameSet) Add(name string) {
	s[name] = struct{}{}
}

// dupSuffixRegex matches a previously applied "-N" disambiguation
// suffix at the end of a filename stem.
var dupSuffixRegex = regexp.MustCompile(`-\d+$`)

// MakeUnique resolves candidate to a name not present in taken. A
// candidate equal to original is returned as-is even when taken:
// renaming a file to itself is a no-op, not a collision. Colliding
// names get a "-N" suffix before the extension, with any prior "-N"
// suffix stripped first.
//
// Every probe is rebuilt from the parsed (stem, ext) pair with a
// strictly increasing counter, so the loop terminates by construction.
func MakeUnique(candidate string, taken NameSet, original string) string {
	if !taken.Has(candidate) {
		return candidate
	}

	ext := filepath.Ext(candidate)
	stem := strings.TrimSuffix(candidate, ext)
	stem = dupSuffixRegex.ReplaceAllString(stem, "")

	for counter := 1; ; counter++ {
		if candidate == original {
			return candidate
		}
		candidate = fmt.Sprintf("%s-%d%s", stem, counter, ext)
		if !taken.Has(candidate) {
			return candidate
		}
	}
}
