// Package strs cuts strings at separators.
package strs

import (
	"strings"
	"unicode/utf8"
)

// Until returns the part of s before the first r, or s if r does not occur.
func Until(s string, r rune) string {
	if i := strings.IndexRune(s, r); i >= 0 {
		return s[:i]
	}
	return s
}

// UntilString returns the part of s before the first sep. An empty sep or one
// that does not occur returns s.
func UntilString(s, sep string) string {
	if sep == "" {
		return s
	}
	before, _, _ := strings.Cut(s, sep)
	return before
}

// UntilFold is UntilString under Unicode case folding.
func UntilFold(s, sep string) string {
	n := utf8.RuneCountInString(sep)
	if n == 0 {
		return s
	}
	for i := range s {
		j, k := i, 0
		for k < n && j < len(s) {
			_, w := utf8.DecodeRuneInString(s[j:])
			j += w
			k++
		}
		if k < n {
			break
		}
		if strings.EqualFold(s[i:j], sep) {
			return s[:i]
		}
	}
	return s
}

// Split splits s around sep, trimming space from every field and dropping the
// empty ones.
func Split(s, sep string) []string {
	var out []string
	for _, field := range strings.Split(s, sep) {
		if field = strings.TrimSpace(field); field != "" {
			out = append(out, field)
		}
	}
	return out
}
