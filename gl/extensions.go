// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ExtensionSet is the set of extension names supported by a context. It is
// filled once during adapter construction and read only afterwards.
type ExtensionSet map[string]struct{}

// ParseExtensionString builds a set from the legacy space separated
// GL_EXTENSIONS string.
func ParseExtensionString(s string) ExtensionSet {
	return ExtensionSetOf(strings.Fields(s)...)
}

// ExtensionSetOf builds a set from individually queried names. Empty names
// are skipped.
func ExtensionSetOf(names ...string) ExtensionSet {
	set := make(ExtensionSet, len(names))
	for _, n := range names {
		if n != "" {
			set[n] = struct{}{}
		}
	}
	return set
}

// Has reports whether name is in the set.
func (s ExtensionSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Sorted returns the names in the set in lexical order.
func (s ExtensionSet) Sorted() []string {
	names := maps.Keys(s)
	slices.Sort(names)
	return names
}
