package keywords

import (
	"math"
	"slices"
)

const (
	textrankDamping    = 0.85   // PageRank damping factor
	textrankMaxIter    = 30     // maximum PageRank iterations
	textrankEpsilon    = 0.0001 // convergence threshold
	textrankWindowSize = 3      // co-occurrence sliding window size
)

func scoreTextRank(terms []string, maxFeatures int) []scoredTerm {
	vocab, tf := vocabulary(terms, maxFeatures)

	index := make(map[string]int, len(vocab))
	for i, t := range vocab {
		index[t] = i
	}

	// Terms cut by the vocabulary cap take no part in the graph.
	seq := make([]int, 0, len(terms))
	for _, t := range terms {
		if i, ok := index[t]; ok {
			seq = append(seq, i)
		}
	}

	scores := pagerank(len(vocab), buildGraph(len(vocab), seq))
	l2Normalize(scores)

	result := make([]scoredTerm, len(vocab))
	for i, t := range vocab {
		result[i] = scoredTerm{term: t, score: scores[i], count: tf[t]}
	}
	return result
}

// edge is a neighbor index + weight pair used for deterministic iteration.
type edge struct {
	to     int
	weight float64
}

// buildGraph links every pair of distinct nodes that co-occur within the
// sliding window of seq. Adjacency lists are sorted by neighbor index.
func buildGraph(n int, seq []int) [][]edge {
	edgeMaps := make([]map[int]float64, n)
	for i := range edgeMaps {
		edgeMaps[i] = make(map[int]float64)
	}

	for i, si := range seq {
		end := min(i+textrankWindowSize, len(seq))
		for j := i + 1; j < end; j++ {
			if sj := seq[j]; si != sj {
				edgeMaps[si][sj]++
				edgeMaps[sj][si]++
			}
		}
	}

	edges := make([][]edge, n)
	for i, m := range edgeMaps {
		edges[i] = make([]edge, 0, len(m))
		for to, w := range m {
			edges[i] = append(edges[i], edge{to: to, weight: w})
		}
		slices.SortFunc(edges[i], func(a, b edge) int {
			return a.to - b.to
		})
	}

	return edges
}

func pagerank(n int, edges [][]edge) []float64 {
	if n == 0 {
		return nil
	}

	scores := make([]float64, n)
	for i := range scores {
		scores[i] = 1.0 / float64(n)
	}

	outWeight := make([]float64, n)
	for i, neighbors := range edges {
		for _, e := range neighbors {
			outWeight[i] += e.weight
		}
	}

	nf := float64(n)
	for range textrankMaxIter {
		newScores := make([]float64, n)
		maxDelta := 0.0

		for i := range n {
			sum := 0.0
			for _, e := range edges[i] {
				if outWeight[e.to] > 0 {
					sum += (e.weight / outWeight[e.to]) * scores[e.to]
				}
			}
			newScores[i] = (1-textrankDamping)/nf + textrankDamping*sum
			if delta := math.Abs(newScores[i] - scores[i]); delta > maxDelta {
				maxDelta = delta
			}
		}

		scores = newScores
		if maxDelta < textrankEpsilon {
			break
		}
	}

	return scores
}
