package keywords

import (
	"fmt"
	"strings"

	"github.com/MdImranAlam678/Keyword-Extraction-NLP/lemma"
	"github.com/MdImranAlam678/Keyword-Extraction-NLP/stopwords"
)

const (
	DefaultTopN          = 10   // result size when the caller's topN is not positive
	DefaultMinTermLength = 3    // tokens with fewer runes are dropped
	DefaultMaxFeatures   = 1000 // distinct terms eligible for scoring
)

// Method selects the scoring algorithm.
type Method int

const (
	TFIDF    Method = iota // single-document TF-IDF with L2 normalization
	TextRank               // co-occurrence graph ranked by PageRank
)

// String returns the configuration name of the method.
func (m Method) String() string {
	switch m {
	case TFIDF:
		return "tfidf"
	case TextRank:
		return "textrank"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod resolves a configuration name. Matching is case-insensitive;
// the empty string selects TFIDF.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tfidf", "tf-idf", "":
		return TFIDF, nil
	case "textrank":
		return TextRank, nil
	default:
		return TFIDF, fmt.Errorf("unknown method %q (want tfidf or textrank)", s)
	}
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithStopwords replaces the stopword set.
func WithStopwords(set stopwords.Set) Option {
	return func(e *Extractor) { e.stopwords = set }
}

// WithLemmatizer replaces the lemmatizer. A nil lemmatizer selects lemma.Identity.
func WithLemmatizer(l lemma.Lemmatizer) Option {
	return func(e *Extractor) {
		if l == nil {
			l = lemma.Identity
		}
		e.lemmatizer = l
	}
}

// WithMinTermLength sets the minimum token length in runes. Values below 1
// are ignored.
func WithMinTermLength(n int) Option {
	return func(e *Extractor) {
		if n >= 1 {
			e.minTermLength = n
		}
	}
}

// WithMaxFeatures caps the number of distinct terms eligible for scoring.
// Values below 1 are ignored.
func WithMaxFeatures(n int) Option {
	return func(e *Extractor) {
		if n >= 1 {
			e.maxFeatures = n
		}
	}
}

// WithDefaultTopN sets the result size used when Extract receives a
// non-positive topN. Values below 1 are ignored.
func WithDefaultTopN(n int) Option {
	return func(e *Extractor) {
		if n >= 1 {
			e.defaultTopN = n
		}
	}
}

// WithRetainIDF controls whether the smoothed IDF factor is applied before
// normalization. It does not affect ranking or normalized scores.
func WithRetainIDF(retain bool) Option {
	return func(e *Extractor) { e.retainIDF = retain }
}

// WithMethod selects the scoring algorithm.
func WithMethod(m Method) Option {
	return func(e *Extractor) { e.method = m }
}
