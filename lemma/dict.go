package lemma

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"sort"
	"strings"
)

// maxWordBytes bounds the token length the dictionary will analyze.
// Longer tokens are returned unchanged.
const maxWordBytes = 256

// Dictionary is a part-of-speech-agnostic dictionary lemmatizer.
//
// Lookup order for a token:
//  1. the irregular-form table (e.g. "children" -> "child");
//  2. the token itself when it is a known base form;
//  3. suffix detachment rules in fixed order (noun, verb, adjective), where
//     the first candidate found in the lexicon wins;
//  4. the token unchanged.
type Dictionary struct {
	lexicon    []string          // sorted base forms for binary search
	exceptions map[string]string // inflected -> base
}

// NewDictionary parses a lexicon (one base form per line) and an exceptions
// table ("<inflected> <base>" per line). Blank lines and '#' comments are
// skipped in both. exceptions may be nil.
func NewDictionary(lexicon, exceptions io.Reader) (*Dictionary, error) {
	d := &Dictionary{exceptions: make(map[string]string)}

	err := scanEntries(lexicon, func(fields []string) error {
		if len(fields) != 1 {
			return fmt.Errorf("lexicon entry %q: want one word", strings.Join(fields, " "))
		}
		d.lexicon = append(d.lexicon, fields[0])
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}
	slices.Sort(d.lexicon)
	d.lexicon = slices.Compact(d.lexicon)

	if exceptions != nil {
		err = scanEntries(exceptions, func(fields []string) error {
			if len(fields) != 2 {
				return fmt.Errorf("exception entry %q: want \"<inflected> <base>\"", strings.Join(fields, " "))
			}
			d.exceptions[fields[0]] = fields[1]
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("read exceptions: %w", err)
		}
	}

	return d, nil
}

// scanEntries calls fn with the whitespace-separated fields of every
// non-comment line of r.
func scanEntries(r io.Reader, fn func(fields []string) error) error {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := fn(strings.Fields(strings.ToLower(text))); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
	return sc.Err()
}

// Lemmatize implements Lemmatizer.
func (d *Dictionary) Lemmatize(token string) string {
	base, _ := d.Lookup(token)
	return base
}

// Lookup returns the base form of token and whether the dictionary
// recognized it. Unrecognized tokens are returned unchanged with ok false.
func (d *Dictionary) Lookup(token string) (string, bool) {
	if token == "" || len(token) > maxWordBytes {
		return token, false
	}
	if base, ok := d.exceptions[token]; ok {
		return base, true
	}
	if d.Known(token) {
		return token, true
	}

	for _, rule := range detachments {
		stem, ok := strings.CutSuffix(token, rule.suffix)
		if !ok || stem == "" {
			continue
		}
		if cand := stem + rule.replace; d.Known(cand) {
			return cand, true
		}
		if rule.replace == "" && hasDoubledFinal(stem) {
			if cand := stem[:len(stem)-1]; d.Known(cand) {
				return cand, true
			}
		}
	}

	return token, false
}

// Known reports whether word is a base form in the lexicon.
func (d *Dictionary) Known(word string) bool {
	if word == "" {
		return false
	}
	i := sort.SearchStrings(d.lexicon, word)
	return i < len(d.lexicon) && d.lexicon[i] == word
}

// Len returns the number of base forms in the lexicon.
func (d *Dictionary) Len() int {
	return len(d.lexicon)
}
