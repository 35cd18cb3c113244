// Command smoketest runs keyword extraction over every .txt file under a
// directory and checks the invariants that must hold for any input:
// deterministic output, scores in (0, 1], descending order with ascending
// term tie-break, no duplicate terms, at most topN results, and idempotent
// normalization.
//
//	go run ./cmd/smoketest <directory>
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MdImranAlam678/Keyword-Extraction-NLP/keywords"
	"github.com/MdImranAlam678/Keyword-Extraction-NLP/normalize"
)

const (
	maxWorkers     = 4
	expectedArgs   = 2
	topN           = 20
	bytesToKBShift = 10
)

type Stats struct {
	mu             sync.Mutex
	filesScanned   int
	totalBytes     int64
	totalTerms     int
	emptyResults   int
	failures       map[string]int // check name -> failing files
	slowest        time.Duration
	slowestPath    string
	topTermCounter map[string]int
}

type check struct {
	name string
	fn   func(text string, a, b []keywords.Keyword) bool
}

var (
	tfidf    = keywords.New()
	textrank = keywords.New(keywords.WithMethod(keywords.TextRank))
)

func main() {
	if len(os.Args) != expectedArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s <directory>\n", os.Args[0])
		os.Exit(1)
	}

	dirPath := os.Args[1]
	stats := &Stats{
		failures:       make(map[string]int),
		topTermCounter: make(map[string]int),
	}

	var filePaths []string
	err := filepath.WalkDir(dirPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".txt") {
			return nil
		}
		filePaths = append(filePaths, path)
		return nil
	})

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error walking directory: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Found %d files to process\n", len(filePaths))
	start := time.Now()

	var g errgroup.Group
	g.SetLimit(maxWorkers)
	for _, path := range filePaths {
		g.Go(func() error {
			processFile(path, stats)
			return nil
		})
	}
	_ = g.Wait()

	fmt.Fprintf(os.Stderr, "\nCompleted in %s\n\n", time.Since(start).Round(time.Millisecond))
	printStats(stats)

	if len(stats.failures) > 0 {
		os.Exit(1)
	}
}

func checks() []check {
	return []check{
		{"deterministic", func(_ string, a, b []keywords.Keyword) bool { return slices.Equal(a, b) }},
		{"bounded", func(_ string, a, _ []keywords.Keyword) bool { return len(a) <= topN }},
		{"scores", func(_ string, a, _ []keywords.Keyword) bool {
			for _, kw := range a {
				if kw.Score <= 0 || kw.Score > 1 || kw.Count <= 0 {
					return false
				}
			}
			return true
		}},
		{"ordered", func(_ string, a, _ []keywords.Keyword) bool {
			for i := 1; i < len(a); i++ {
				if a[i-1].Score < a[i].Score {
					return false
				}
			}
			return true
		}},
		{"unique", func(_ string, a, _ []keywords.Keyword) bool {
			seen := make(map[string]struct{}, len(a))
			for _, kw := range a {
				if _, dup := seen[kw.Term]; dup {
					return false
				}
				seen[kw.Term] = struct{}{}
			}
			return true
		}},
		{"normalize-idempotent", func(text string, _, _ []keywords.Keyword) bool {
			once := normalize.Normalize(text)
			return normalize.Normalize(once) == once
		}},
	}
}

func processFile(path string, stats *Stats) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
		return
	}
	text := string(data)

	fileStart := time.Now()
	a := tfidf.Extract(text, topN)
	elapsed := time.Since(fileStart)
	b := tfidf.Extract(text, topN)
	ra := textrank.Extract(text, topN)
	rb := textrank.Extract(text, topN)
	terms := len(tfidf.Terms(text))

	var failed []string
	for _, c := range checks() {
		if !c.fn(text, a, b) || !c.fn(text, ra, rb) {
			failed = append(failed, c.name)
			fmt.Fprintf(os.Stderr, "FAIL %s: %s\n", c.name, path)
		}
	}

	fmt.Fprintf(os.Stderr, "DONE  %s in %s (%d KB, %d terms)\n",
		filepath.Base(path), elapsed.Round(time.Microsecond), len(data)>>bytesToKBShift, terms)

	stats.mu.Lock()
	defer stats.mu.Unlock()

	stats.filesScanned++
	stats.totalBytes += int64(len(data))
	stats.totalTerms += terms
	if len(a) == 0 {
		stats.emptyResults++
	} else {
		stats.topTermCounter[a[0].Term]++
	}
	for _, name := range failed {
		stats.failures[name]++
	}
	if elapsed > stats.slowest {
		stats.slowest = elapsed
		stats.slowestPath = path
	}
}

func printStats(stats *Stats) {
	fmt.Printf("Files scanned:           %d\n", stats.filesScanned)
	fmt.Printf("Total bytes:             %d\n", stats.totalBytes)
	fmt.Printf("Total terms:             %d\n", stats.totalTerms)
	fmt.Printf("Empty results:           %d\n", stats.emptyResults)
	if stats.slowestPath != "" {
		fmt.Printf("Slowest extraction:      %s (%s)\n", stats.slowest.Round(time.Microsecond), stats.slowestPath)
	}
	fmt.Println()

	if len(stats.failures) == 0 {
		fmt.Println("All checks passed")
	} else {
		fmt.Println("Failed checks:")
		for _, c := range checks() {
			if n := stats.failures[c.name]; n > 0 {
				fmt.Printf("  %-22s %d files\n", c.name+":", n)
			}
		}
	}

	type termCount struct {
		term  string
		count int
	}
	var top []termCount
	for term, n := range stats.topTermCounter {
		top = append(top, termCount{term, n})
	}
	slices.SortFunc(top, func(x, y termCount) int {
		if x.count != y.count {
			return y.count - x.count
		}
		return strings.Compare(x.term, y.term)
	})
	if len(top) > 10 {
		top = top[:10]
	}
	if len(top) > 0 {
		fmt.Println()
		fmt.Println("Most frequent top keyword:")
		for _, tc := range top {
			fmt.Printf("  %-20s %d\n", tc.term, tc.count)
		}
	}
}
