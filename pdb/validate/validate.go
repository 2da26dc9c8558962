// Package validate has the character checks used by everything that
// stores a name in a pdb structure.
// A pdb file is plain ascii. We allow the printable characters and
// the space, nothing else.
package validate

import (
	"strings"
)

const (
	lowestOk  = 31  // anything at or below is a control character
	highestOk = 127 // DEL and everything beyond ascii
)

// IsAllowedChar says if a character may appear in a name in a pdb file.
func IsAllowedChar(c rune) bool { return c > lowestOk && c < highestOk }

// IsValidIdentifier is true if every character of s passes IsAllowedChar.
// An empty string is valid. Whether it should be is up to the caller.
func IsValidIdentifier(s string) bool {
	for _, c := range s {
		if !IsAllowedChar(c) {
			return false
		}
	}
	return true
}

// NormalizeIdentifier returns s trimmed and in upper case.
// ok is false if s has a bad character or nothing is left after trimming.
func NormalizeIdentifier(s string) (t string, ok bool) {
	if !IsValidIdentifier(s) {
		return "", false
	}
	t = strings.TrimSpace(s)
	if t == "" {
		return "", false
	}
	return strings.ToUpper(t), true
}

// Clean trims and upper cases without checking. Only call it on
// something that has already passed IsValidIdentifier, since ToUpper
// is only the ascii mapping for ascii input.
func Clean(s string) string { return strings.ToUpper(strings.TrimSpace(s)) }
