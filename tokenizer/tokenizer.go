// Package tokenizer splits normalized text into word tokens.
//
// The package provides two API layers:
//
//   - Structured: Tokens returns []Token with byte offsets. The invariant
//     s[t.Start:t.End] == t.Text holds for every token.
//
//   - Convenience: Words returns []string for the common case where offsets
//     are not needed.
//
// Tokens are maximal runs of non-whitespace runes, returned in left-to-right
// order. Input is expected to come from normalize.Normalize, where every
// non-word rune has already been replaced by a space, so splitting on
// whitespace is equivalent to word-boundary tokenization.
//
// All functions are safe for concurrent use by multiple goroutines.
package tokenizer

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// avgTokenBytes is the estimated average token length including its
// separator, used to pre-allocate the token slice.
const avgTokenBytes = 6

// Token represents a word with its position in the tokenized string.
type Token struct {
	Text  string // The token text
	Start int    // Byte offset in the input string (inclusive)
	End   int    // Byte offset in the input string (exclusive)
}

// String returns a debug representation, e.g. "cat"[4:7].
func (t Token) String() string {
	return fmt.Sprintf("%q[%d:%d]", t.Text, t.Start, t.End)
}

// Tokens splits s on whitespace and returns the words with byte offsets.
// Returns nil for empty or whitespace-only input.
func Tokens(s string) []Token {
	if s == "" {
		return nil
	}

	var tokens []Token
	start := -1
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if unicode.IsSpace(r) {
			if start >= 0 {
				tokens = append(tokens, Token{Text: s[start:i], Start: start, End: i})
				start = -1
			}
		} else if start < 0 {
			if tokens == nil {
				tokens = make([]Token, 0, len(s)/avgTokenBytes+1)
			}
			start = i
		}
		i += size
	}
	if start >= 0 {
		tokens = append(tokens, Token{Text: s[start:], Start: start, End: len(s)})
	}

	return tokens
}

// Words returns the token texts of s in order.
// Returns nil for empty or whitespace-only input.
func Words(s string) []string {
	tokens := Tokens(s)
	if len(tokens) == 0 {
		return nil
	}
	words := make([]string, len(tokens))
	for i, t := range tokens {
		words[i] = t.Text
	}
	return words
}
