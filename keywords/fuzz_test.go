package keywords

import (
	"slices"
	"testing"
)

func addSeeds(f *testing.F) {
	f.Add("The cat sat on the mat. The cat was happy.")
	f.Add("")
	f.Add("a")
	f.Add("a an the of")
	f.Add("data data data")
	f.Add("\xff\xfe")
	f.Add("\x00")
	f.Add("open-source snake_case")
	f.Add("Caf\u00e9 na\u00efve")
}

func FuzzExtract(f *testing.F) {
	addSeeds(f)

	f.Fuzz(func(t *testing.T, text string) {
		a := Extract(text, 5)
		b := Extract(text, 5)
		if !slices.Equal(a, b) {
			t.Errorf("non-deterministic:\n  a = %v\n  b = %v", a, b)
		}
		if len(a) > 5 {
			t.Errorf("Extract returned %d keywords, want <= 5", len(a))
		}
		for i, kw := range a {
			if kw.Term == "" {
				t.Errorf("[%d] empty term", i)
			}
			if kw.Score <= 0 || kw.Score > 1 {
				t.Errorf("[%d].Score = %f, want in (0, 1]", i, kw.Score)
			}
			if i > 0 && a[i-1].Score < kw.Score {
				t.Errorf("order violated at %d: %v before %v", i, a[i-1], kw)
			}
		}
	})
}

func FuzzExtractTextRank(f *testing.F) {
	addSeeds(f)
	e := New(WithMethod(TextRank))

	f.Fuzz(func(t *testing.T, text string) {
		a := e.Extract(text, 5)
		b := e.Extract(text, 5)
		if !slices.Equal(a, b) {
			t.Errorf("non-deterministic:\n  a = %v\n  b = %v", a, b)
		}
		for i, kw := range a {
			if kw.Score <= 0 || kw.Score > 1 {
				t.Errorf("[%d].Score = %f, want in (0, 1]", i, kw.Score)
			}
		}
	})
}

func FuzzKeywords(f *testing.F) {
	addSeeds(f)

	f.Fuzz(func(t *testing.T, text string) {
		a := Keywords(text)
		b := Keywords(text)
		if !slices.Equal(a, b) {
			t.Errorf("non-deterministic:\n  a = %v\n  b = %v", a, b)
		}
	})
}
