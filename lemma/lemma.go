// Package lemma reduces word tokens to a canonical base form.
//
// The capability is a single method, Lemmatize(token) string, which is total
// and pure: it never fails, and a token with no known base form is returned
// unchanged. Identity is the required default; Dictionary, Snowball and
// Chain are drop-in alternatives satisfying the same interface.
//
// Implementations built by this package are immutable after construction
// and safe for concurrent use by multiple goroutines.
//
// Input is expected to be lowercase, as produced by normalize.Normalize.
package lemma

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/MdImranAlam678/Keyword-Extraction-NLP/data"
)

// Lemmatizer maps a token to its canonical base form.
type Lemmatizer interface {
	Lemmatize(token string) string
}

// Func adapts an ordinary function to the Lemmatizer interface.
type Func func(token string) string

// Lemmatize calls f(token).
func (f Func) Lemmatize(token string) string {
	return f(token)
}

// Identity returns every token unchanged.
var Identity Lemmatizer = Func(func(token string) string { return token })

// Lookuper is implemented by lemmatizers that can tell a recognized token
// apart from a fallback. A recognized token may map to itself.
type Lookuper interface {
	Lookup(token string) (base string, ok bool)
}

// Chain tries each lemmatizer in order. A Lookuper ends the chain when it
// recognizes the token; any other lemmatizer ends it when its result differs
// from the token. When nothing applies the token is returned unchanged.
type Chain []Lemmatizer

// Lemmatize implements Lemmatizer.
func (c Chain) Lemmatize(token string) string {
	for _, l := range c {
		if l == nil {
			continue
		}
		if lk, ok := l.(Lookuper); ok {
			if base, found := lk.Lookup(token); found {
				return base
			}
			continue
		}
		if out := l.Lemmatize(token); out != token && out != "" {
			return out
		}
	}
	return token
}

// Names accepted by ByName.
const (
	NameIdentity   = "identity"
	NameDictionary = "dictionary"
	NameSnowball   = "snowball"
	NameHybrid     = "dictionary+snowball"
)

var english = sync.OnceValue(func() *Dictionary {
	d, err := NewDictionary(bytes.NewReader(data.LexiconEnglish), bytes.NewReader(data.ExceptionsEnglish))
	if err != nil {
		panic(fmt.Sprintf("lemma: embedded English dictionary: %v", err))
	}
	return d
})

// English returns the dictionary lemmatizer built from the embedded English
// lexicon and irregular-form table. It is loaded once on first use.
func English() *Dictionary {
	return english()
}

// ByName resolves a configured lemmatizer name. Matching is case-insensitive;
// an empty name selects the English dictionary.
func ByName(name string) (Lemmatizer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameIdentity, "none":
		return Identity, nil
	case NameDictionary, "":
		return English(), nil
	case NameSnowball:
		return Snowball{}, nil
	case NameHybrid:
		return Chain{English(), Snowball{}}, nil
	default:
		return nil, fmt.Errorf("unknown lemmatizer %q (want %s, %s, %s or %s)",
			name, NameIdentity, NameDictionary, NameSnowball, NameHybrid)
	}
}
