// Package textcase provides Unicode case folding and composition helpers
// shared by the normalization, stopword and lemmatization packages.
//
// Lowercasing uses full Unicode case mapping (final sigma, multi-rune
// expansions) rather than the per-rune mapping of unicode.ToLower.
//
// All functions are safe for concurrent use.
package textcase

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToLower returns s with full Unicode lowercase mapping applied.
// A fresh Caser is built per call because cases.Caser is stateful.
func ToLower(s string) string {
	if s == "" {
		return s
	}
	if isLowerASCII(s) {
		return s
	}
	return cases.Lower(language.Und).String(s)
}

// IsWordRune reports whether r is kept by normalization: a letter or a number.
// utf8.RuneError (invalid input bytes) is never a word rune.
func IsWordRune(r rune) bool {
	if r == utf8.RuneError {
		return false
	}
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

// isLowerASCII reports whether s consists only of ASCII bytes with no
// uppercase letters, in which case lowercasing is a no-op.
func isLowerASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= utf8.RuneSelf || ('A' <= c && c <= 'Z') {
			return false
		}
	}
	return true
}
