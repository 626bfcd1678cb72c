// Package effects holds the set operations every effect comparison goes
// through. Two effect names are the same effect iff they normalize equal.
package effects

import (
	"sort"
	"strings"
)

// Normalize lowercases name and drops every character outside a-z
func Normalize(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Equal reports whether two effect names refer to the same effect
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// Has reports whether any member of set normalizes equal to name
func Has(set []string, name string) bool {
	key := Normalize(name)
	for _, e := range set {
		if Normalize(e) == key {
			return true
		}
	}
	return false
}

// Remove returns a new slice without the members matching name.
// Remaining members keep their relative order.
func Remove(set []string, name string) []string {
	key := Normalize(name)
	out := make([]string, 0, len(set))
	for _, e := range set {
		if Normalize(e) != key {
			out = append(out, e)
		}
	}
	return out
}

// Clone copies set so callers can mutate the result freely
func Clone(set []string) []string {
	out := make([]string, len(set))
	copy(out, set)
	return out
}

// SortedKeys returns the normalized members of set in ascending order
func SortedKeys(set []string) []string {
	keys := make([]string, len(set))
	for i, e := range set {
		keys[i] = Normalize(e)
	}
	sort.Strings(keys)
	return keys
}

// SameMultiset reports whether a and b contain the same effects with the
// same multiplicity, ignoring order, case and punctuation
func SameMultiset(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	ka, kb := SortedKeys(a), SortedKeys(b)
	for i := range ka {
		if ka[i] != kb[i] {
			return false
		}
	}
	return true
}
