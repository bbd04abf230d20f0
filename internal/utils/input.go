package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeWord trims surrounding whitespace and applies canonical
// composition (NFC). Every piece of user text headed for the word list goes
// through here first: the list compares literally and assumes its callers
// normalized consistently.
func NormalizeWord(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// IsWord reports whether s is sensible word list input: non-empty and made
// of letters, combining marks, hyphens or apostrophes.
func IsWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsMark(r) || r == '-' || r == '\'' {
			continue
		}
		return false
	}
	return true
}
