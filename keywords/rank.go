package keywords

import (
	"math"
	"slices"
	"strings"
)

const (
	scorePrecision = 1e6  // reported scores keep 6 decimal places
	minReported    = 1e-6 // smallest reported score; positive scores never round to zero
)

// rank orders candidates by score descending with ascending-term tie-break,
// truncates to topN and rounds the reported scores.
func rank(candidates []scoredTerm, topN int) []Keyword {
	if len(candidates) == 0 {
		return nil
	}

	slices.SortFunc(candidates, cmpScored)
	if len(candidates) > topN {
		candidates = candidates[:topN]
	}

	result := make([]Keyword, len(candidates))
	for i, c := range candidates {
		result[i] = Keyword{Term: c.term, Score: roundScore(c.score), Count: c.count}
	}
	return result
}

func cmpScored(a, b scoredTerm) int {
	if a.score != b.score {
		if a.score > b.score {
			return -1
		}
		return 1
	}
	return strings.Compare(a.term, b.term)
}

// roundScore rounds a positive score to 6 decimal places, flooring at
// minReported.
func roundScore(x float64) float64 {
	r := math.Round(x*scorePrecision) / scorePrecision
	if r < minReported {
		return minReported
	}
	return r
}
