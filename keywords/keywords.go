// Package keywords extracts the most salient single-word terms from a short
// piece of English text.
//
// The pipeline is:
//
//	normalize -> tokenize -> filter (stopwords, short tokens) -> lemmatize
//	-> score -> rank
//
// Two scoring methods are provided:
//
//   - TFIDF (default): the input is treated as a corpus of one document.
//     Smoothed IDF, ln((1+N)/(1+df)) + 1, is the same constant for every term,
//     so ranking is decided by term frequency alone. Weights are
//     L2-normalized, so scores lie in (0, 1].
//   - TextRank: terms are ranked by PageRank over a co-occurrence graph
//     (window of 3), then L2-normalized.
//
// At most MaxFeatures distinct terms (1000 by default) take part in scoring:
// the vocabulary is sorted alphabetically and only its first MaxFeatures
// entries survive. Results are ordered by score descending, ties broken by
// ascending term, and reported scores are rounded to 6 decimal places.
// Ranking always uses the unrounded scores.
//
// An Extractor is immutable after New and safe for concurrent use by
// multiple goroutines. Extraction never fails: empty input, input made of
// stopwords only, and unknown words all produce a valid (possibly nil)
// result.
package keywords

import (
	"sync"
	"unicode/utf8"

	"github.com/MdImranAlam678/Keyword-Extraction-NLP/lemma"
	"github.com/MdImranAlam678/Keyword-Extraction-NLP/normalize"
	"github.com/MdImranAlam678/Keyword-Extraction-NLP/stopwords"
	"github.com/MdImranAlam678/Keyword-Extraction-NLP/tokenizer"
)

// Keyword is a single extracted term with its score.
type Keyword struct {
	Term  string  `json:"keyword"`
	Score float64 `json:"score"` // rounded to 6 decimal places
	Count int     `json:"-"`     // occurrences in the input after lemmatization
}

// Extractor runs the extraction pipeline with a fixed set of linguistic
// resources and parameters.
type Extractor struct {
	stopwords     stopwords.Set
	lemmatizer    lemma.Lemmatizer
	minTermLength int
	maxFeatures   int
	defaultTopN   int
	retainIDF     bool
	method        Method
}

// New returns an Extractor using the English stopword list, the English
// dictionary lemmatizer and TF-IDF scoring, modified by opts.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		stopwords:     stopwords.English(),
		lemmatizer:    lemma.English(),
		minTermLength: DefaultMinTermLength,
		maxFeatures:   DefaultMaxFeatures,
		defaultTopN:   DefaultTopN,
		retainIDF:     true,
		method:        TFIDF,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Method returns the scoring method of e.
func (e *Extractor) Method() Method {
	return e.method
}

// Terms returns the lemmatized terms of text in input order, after
// stopword and length filtering. This is the sequence the scorer consumes.
// Returns nil when no term survives.
func (e *Extractor) Terms(text string) []string {
	words := tokenizer.Words(normalize.Normalize(text))
	if len(words) == 0 {
		return nil
	}

	var terms []string
	for _, w := range words {
		if utf8.RuneCountInString(w) < e.minTermLength {
			continue
		}
		if e.stopwords.Contains(w) {
			continue
		}
		term := e.lemmatizer.Lemmatize(w)
		if term == "" {
			term = w
		}
		terms = append(terms, term)
	}

	return terms
}

// Extract returns up to topN keywords of text, best first.
// A non-positive topN selects the extractor's default (10 unless configured).
// Returns nil when no term survives filtering.
func (e *Extractor) Extract(text string, topN int) []Keyword {
	terms := e.Terms(text)
	if len(terms) == 0 {
		return nil
	}
	if topN <= 0 {
		topN = e.defaultTopN
	}

	var candidates []scoredTerm
	switch e.method {
	case TextRank:
		candidates = scoreTextRank(terms, e.maxFeatures)
	default:
		candidates = scoreTFIDF(terms, e.maxFeatures, e.retainIDF)
	}

	return rank(candidates, topN)
}

var defaultExtractor = sync.OnceValue(func() *Extractor { return New() })

// Extract runs the default English TF-IDF extractor.
func Extract(text string, topN int) []Keyword {
	return defaultExtractor().Extract(text, topN)
}

// Keywords returns the terms of the top 10 keywords of text using the
// default extractor. Convenience wrapper over Extract.
// Returns nil when no keywords are found.
func Keywords(text string) []string {
	kws := Extract(text, DefaultTopN)
	if len(kws) == 0 {
		return nil
	}
	result := make([]string, len(kws))
	for i, kw := range kws {
		result[i] = kw.Term
	}
	return result
}
