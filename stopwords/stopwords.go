// Package stopwords provides immutable stopword sets used to drop
// uninformative function words before scoring.
//
// A Set is built once (from the embedded English list, a reader, or a file)
// and never mutated afterwards, so it is safe for concurrent use by multiple
// goroutines without locking.
//
// Entries are lowercased on load. Entries containing apostrophes are kept as
// written even though normalized tokens never contain apostrophes.
package stopwords

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/MdImranAlam678/Keyword-Extraction-NLP/data"
	"github.com/MdImranAlam678/Keyword-Extraction-NLP/internal/textcase"
)

// maxLineBytes bounds a single line in a stopword file.
const maxLineBytes = 64 << 10

// Set is an immutable set of stopwords. The zero value is an empty set.
type Set struct {
	words map[string]struct{}
}

var english = sync.OnceValue(func() Set {
	set, err := Load(bytes.NewReader(data.StopwordsEnglish))
	if err != nil {
		panic(fmt.Sprintf("stopwords: embedded English list: %v", err))
	}
	return set
})

// English returns the embedded English stopword list (the NLTK corpus list).
func English() Set {
	return english()
}

// New builds a set from the given words. Words are lowercased and trimmed;
// empty entries are ignored.
func New(words ...string) Set {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		m[textcase.ToLower(w)] = struct{}{}
	}
	return Set{words: m}
}

// Load reads a newline-separated stopword list. Blank lines and lines
// starting with '#' are ignored.
func Load(r io.Reader) (Set, error) {
	var words []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := sc.Err(); err != nil {
		return Set{}, fmt.Errorf("read stopwords: %w", err)
	}
	return New(words...), nil
}

// LoadFile reads a stopword list from path. See Load for the format.
func LoadFile(path string) (Set, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return Set{}, fmt.Errorf("open stopwords file: %w", err)
	}
	defer func() { _ = f.Close() }()

	set, err := Load(f)
	if err != nil {
		return Set{}, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// Contains reports whether word is a stopword. The lookup is exact; callers
// pass already-lowercased tokens.
func (s Set) Contains(word string) bool {
	_, ok := s.words[word]
	return ok
}

// Len returns the number of distinct stopwords.
func (s Set) Len() int {
	return len(s.words)
}

// Union returns a new set holding the words of s and every other set.
// The receiver and arguments are not modified.
func (s Set) Union(others ...Set) Set {
	size := len(s.words)
	for _, o := range others {
		size += len(o.words)
	}
	m := make(map[string]struct{}, size)
	for w := range s.words {
		m[w] = struct{}{}
	}
	for _, o := range others {
		for w := range o.words {
			m[w] = struct{}{}
		}
	}
	return Set{words: m}
}

// Words returns the stopwords in ascending order.
func (s Set) Words() []string {
	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}
	slices.Sort(out)
	return out
}
