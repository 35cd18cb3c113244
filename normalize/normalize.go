// Package normalize reduces free text to lowercase words separated by
// single spaces.
//
// Normalize lowercases every rune, composes the text to NFC, and replaces
// every rune that is not a letter or a number with a separator. Runs of
// separators collapse to one ASCII space and the result is trimmed, so the
// output contains only lowercase letters, numbers and single spaces.
//
// Invalid UTF-8 bytes are treated as separators. Empty input, and input made
// only of punctuation or symbols, yields the empty string.
//
// All functions are safe for concurrent use by multiple goroutines.
package normalize

import (
	"strings"

	"github.com/MdImranAlam678/Keyword-Extraction-NLP/internal/textcase"
)

// Normalize lowercases s, strips punctuation and symbols, and collapses
// whitespace. The result is idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	if s == "" {
		return s
	}
	s = textcase.ComposeNFC(textcase.ToLower(s))

	var b strings.Builder
	b.Grow(len(s))

	pendingSpace := false
	for _, r := range s {
		if !textcase.IsWordRune(r) {
			pendingSpace = b.Len() > 0
			continue
		}
		if pendingSpace {
			b.WriteByte(' ')
			pendingSpace = false
		}
		b.WriteRune(r)
	}

	return b.String()
}
