// Command lexgen generates data/lexicon_en.txt and data/exceptions_en.txt
// from a kaikki.org English dictionary dump (JSONL format).
//
// Download the dump from https://kaikki.org/dictionary/English/
// then run:
//
//	go run ./cmd/lexgen -input kaikki.org-dictionary-English.jsonl -words wordlist.txt
//
// The optional word list (one word per line) restricts the lexicon to the
// listed base forms; without it every acceptable headword is kept.
// Exceptions are the inflected forms the suffix rules of the dictionary
// lemmatizer cannot reduce on their own. Commit both output files.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/MdImranAlam678/Keyword-Extraction-NLP/internal/textcase"
	"github.com/MdImranAlam678/Keyword-Extraction-NLP/lemma"
)

const (
	defaultInput      = "data/dictionary/kaikki.org-dictionary-English.jsonl"
	defaultLexicon    = "data/lexicon_en.txt"
	defaultExceptions = "data/exceptions_en.txt"
	scannerBufSize    = 1 << 20 // 1 MB
	minLemmaRunes     = 2
)

// kaikkiEntry holds only the fields needed from each JSONL line.
type kaikkiEntry struct {
	Word   string        `json:"word"`
	POS    string        `json:"pos"`
	Forms  []kaikkiForm  `json:"forms"`
	Senses []kaikkiSense `json:"senses"`
}

type kaikkiForm struct {
	Form string   `json:"form"`
	Tags []string `json:"tags"`
}

type kaikkiSense struct {
	Tags   []string `json:"tags"`
	FormOf []struct {
		Word string `json:"word"`
	} `json:"form_of"`
}

// inflectionTags are the kaikki tags of regular inflectional forms.
var inflectionTags = []string{
	"plural", "past", "participle", "comparative", "superlative", "third-person",
}

// collected is the result of one pass over the dump.
type collected struct {
	bases map[string]struct{}
	forms map[string]string // inflected form -> base, first seen wins
}

func main() {
	inputPath := flag.String("input", defaultInput, "path to kaikki.org JSONL dump")
	wordsPath := flag.String("words", "", "optional word list restricting the base forms")
	lexiconPath := flag.String("lexicon", defaultLexicon, "output path for the lexicon")
	exceptionsPath := flag.String("exceptions", defaultExceptions, "output path for the exceptions")
	flag.Parse()

	if err := run(*inputPath, *wordsPath, *lexiconPath, *exceptionsPath); err != nil {
		fmt.Fprintf(os.Stderr, "lexgen: %v\n", err)
		os.Exit(1)
	}
}

func run(inputPath, wordsPath, lexiconPath, exceptionsPath string) error {
	var allow map[string]struct{}
	if wordsPath != "" {
		f, err := os.Open(wordsPath)
		if err != nil {
			return fmt.Errorf("open word list: %w", err)
		}
		allow, err = readWordList(f)
		_ = f.Close()
		if err != nil {
			return fmt.Errorf("read word list: %w", err)
		}
	}

	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	c, err := collect(f, allow)
	_ = f.Close()
	if err != nil {
		return err
	}

	words := c.words()
	pairs, err := c.exceptions(words)
	if err != nil {
		return err
	}

	if err := writeFile(lexiconPath, func(w io.Writer) error { return writeLexicon(w, words) }); err != nil {
		return err
	}
	if err := writeFile(exceptionsPath, func(w io.Writer) error { return writeExceptions(w, pairs) }); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Base forms:  %d -> %s\n", len(words), lexiconPath)
	fmt.Fprintf(os.Stderr, "Exceptions:  %d -> %s\n", len(pairs), exceptionsPath)
	return nil
}

func readWordList(r io.Reader) (map[string]struct{}, error) {
	allow := make(map[string]struct{})
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		w := textcase.ToLower(strings.TrimSpace(scanner.Text()))
		if w != "" && !strings.HasPrefix(w, "#") {
			allow[w] = struct{}{}
		}
	}
	return allow, scanner.Err()
}

// collect reads the dump. A headword whose senses are all form-of senses
// contributes an inflected form; any other content headword is a base form.
func collect(r io.Reader, allow map[string]struct{}) (*collected, error) {
	c := &collected{
		bases: make(map[string]struct{}),
		forms: make(map[string]string),
	}

	scanner := bufio.NewScanner(r)
	buf := make([]byte, scannerBufSize)
	scanner.Buffer(buf, scannerBufSize)

	for scanner.Scan() {
		var entry kaikkiEntry
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			// Malformed lines are rare in kaikki dumps.
			continue
		}
		if !isContentPOS(entry.POS) {
			continue
		}

		word := textcase.ToLower(entry.Word)
		if !isAcceptable(word) {
			continue
		}

		if base, ok := inflectionOf(entry.Senses); ok {
			c.addForm(word, base)
			continue
		}

		if allow != nil {
			if _, ok := allow[word]; !ok {
				continue
			}
		}
		c.bases[word] = struct{}{}
		for _, form := range entry.Forms {
			if hasInflectionTag(form.Tags) {
				c.addForm(textcase.ToLower(form.Form), word)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan input: %w", err)
	}
	return c, nil
}

func (c *collected) addForm(form, base string) {
	base = textcase.ToLower(base)
	if form == base || !isAcceptable(form) || !isAcceptable(base) {
		return
	}
	if _, ok := c.forms[form]; !ok {
		c.forms[form] = base
	}
}

func (c *collected) words() []string {
	words := make([]string, 0, len(c.bases))
	for w := range c.bases {
		words = append(words, w)
	}
	slices.Sort(words)
	return words
}

// exceptions returns the forms whose base is in the lexicon but which the
// rule-based dictionary built from words does not reduce to that base.
// Forms that are themselves base words are left out as ambiguous.
func (c *collected) exceptions(words []string) ([][2]string, error) {
	dict, err := lemma.NewDictionary(strings.NewReader(strings.Join(words, "\n")), nil)
	if err != nil {
		return nil, fmt.Errorf("build dictionary: %w", err)
	}

	var pairs [][2]string
	for form, base := range c.forms {
		if !dict.Known(base) || dict.Known(form) {
			continue
		}
		if got, _ := dict.Lookup(form); got == base {
			continue
		}
		pairs = append(pairs, [2]string{form, base})
	}
	slices.SortFunc(pairs, func(a, b [2]string) int { return strings.Compare(a[0], b[0]) })
	return pairs, nil
}

func writeFile(path string, fn func(io.Writer) error) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	w := bufio.NewWriter(out)
	if err := fn(w); err != nil {
		_ = out.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		_ = out.Close()
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return out.Close()
}

func writeLexicon(w io.Writer, words []string) error {
	if _, err := fmt.Fprint(w, "# English base forms used by the dictionary lemmatizer.\n"+
		"# Sorted in byte order, lowercase. Regenerate with cmd/lexgen.\n"); err != nil {
		return err
	}
	for _, word := range words {
		if _, err := fmt.Fprintln(w, word); err != nil {
			return err
		}
	}
	return nil
}

func writeExceptions(w io.Writer, pairs [][2]string) error {
	if _, err := fmt.Fprint(w, "# Irregular English inflections: \"<inflected> <base>\".\n"+
		"# Generated by cmd/lexgen.\n"); err != nil {
		return err
	}
	for _, p := range pairs {
		if _, err := fmt.Fprintf(w, "%s %s\n", p[0], p[1]); err != nil {
			return err
		}
	}
	return nil
}

// isContentPOS reports whether a kaikki POS tag names an open word class.
func isContentPOS(pos string) bool {
	switch pos {
	case "noun", "verb", "adj", "adv":
		return true
	}
	return false
}

// inflectionOf returns the base word when every sense is an inflectional
// form-of sense.
func inflectionOf(senses []kaikkiSense) (string, bool) {
	if len(senses) == 0 {
		return "", false
	}
	var base string
	for _, s := range senses {
		if len(s.FormOf) == 0 || !hasInflectionTag(s.Tags) {
			return "", false
		}
		if base == "" {
			base = s.FormOf[0].Word
		}
	}
	return base, base != ""
}

func hasInflectionTag(tags []string) bool {
	for _, t := range tags {
		if slices.Contains(inflectionTags, t) {
			return true
		}
	}
	return false
}

// isAcceptable reports whether a lowercased word is suitable for the
// lexicon: ASCII letters only, at least minLemmaRunes long.
func isAcceptable(word string) bool {
	if len(word) < minLemmaRunes {
		return false
	}
	for i := 0; i < len(word); i++ {
		if word[i] < 'a' || word[i] > 'z' {
			return false
		}
	}
	return true
}
