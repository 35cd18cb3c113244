package keywords

import (
	"math"
	"slices"
)

// corpusSize is the number of documents in the scoring corpus: the input
// text is its own corpus.
const corpusSize = 1

// scoredTerm is an unrounded score used during ranking.
type scoredTerm struct {
	term  string
	score float64
	count int
}

// vocabulary counts term occurrences and returns the distinct terms in
// ascending order, truncated to maxFeatures. Counts for dropped terms stay
// in tf but are never read.
func vocabulary(terms []string, maxFeatures int) (vocab []string, tf map[string]int) {
	tf = make(map[string]int, len(terms))
	for _, t := range terms {
		tf[t]++
	}

	vocab = make([]string, 0, len(tf))
	for t := range tf {
		vocab = append(vocab, t)
	}
	slices.Sort(vocab)

	if len(vocab) > maxFeatures {
		vocab = vocab[:maxFeatures]
	}
	return vocab, tf
}

// smoothIDF is ln((1+n)/(1+df)) + 1.
func smoothIDF(n, df int) float64 {
	return math.Log(float64(1+n)/float64(1+df)) + 1
}

func scoreTFIDF(terms []string, maxFeatures int, retainIDF bool) []scoredTerm {
	vocab, tf := vocabulary(terms, maxFeatures)

	// Every vocabulary term occurs in the only document, so df == N and the
	// IDF factor is one constant for all terms.
	idf := 1.0
	if retainIDF {
		idf = smoothIDF(corpusSize, corpusSize)
	}

	result := make([]scoredTerm, len(vocab))
	weights := make([]float64, len(vocab))
	for i, t := range vocab {
		weights[i] = float64(tf[t]) * idf
		result[i] = scoredTerm{term: t, count: tf[t]}
	}

	l2Normalize(weights)
	for i := range result {
		result[i].score = weights[i]
	}
	return result
}

// l2Normalize scales v in place to unit Euclidean length.
// A zero vector is left unchanged.
func l2Normalize(v []float64) {
	var sumSq float64
	for _, x := range v {
		sumSq += x * x
	}
	if sumSq == 0 {
		return
	}
	norm := math.Sqrt(sumSq)
	for i := range v {
		v[i] /= norm
	}
}
