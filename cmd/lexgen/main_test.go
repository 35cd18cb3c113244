package main

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dump = `{"word": "cat", "pos": "noun", "forms": [{"form": "cats", "tags": ["plural"]}]}
{"word": "mouse", "pos": "noun", "forms": [{"form": "mice", "tags": ["plural"]}]}
{"word": "mice", "pos": "noun", "senses": [{"tags": ["form-of", "plural"], "form_of": [{"word": "mouse"}]}]}
{"word": "go", "pos": "verb", "forms": [{"form": "went", "tags": ["past"]}, {"form": "gone", "tags": ["past", "participle"]}, {"form": "goes", "tags": ["present", "singular", "third-person"]}]}
{"word": "run", "pos": "verb", "forms": [{"form": "running", "tags": ["present", "participle"]}, {"form": "ran", "tags": ["past"]}]}
{"word": "ran", "pos": "verb", "senses": [{"tags": ["form-of", "past"], "form_of": [{"word": "run"}]}]}
{"word": "New York", "pos": "name"}
{"word": "the", "pos": "article"}
{"word": "Café", "pos": "noun"}
not json at all
{"word": "x", "pos": "noun"}
{"word": "Happy", "pos": "adj", "forms": [{"form": "happier", "tags": ["comparative"]}]}
`

func TestCollect(t *testing.T) {
	t.Parallel()

	c, err := collect(strings.NewReader(dump), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"cat", "go", "happy", "mouse", "run"}, c.words())
	assert.Equal(t, "mouse", c.forms["mice"])
	assert.Equal(t, "run", c.forms["ran"])
	assert.Equal(t, "go", c.forms["went"])
	assert.Equal(t, "cat", c.forms["cats"])
}

func TestCollectWithWordList(t *testing.T) {
	t.Parallel()

	allow, err := readWordList(strings.NewReader("# common words\nCat\nrun\n\n"))
	require.NoError(t, err)

	c, err := collect(strings.NewReader(dump), allow)
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "run"}, c.words())
}

func TestExceptions(t *testing.T) {
	t.Parallel()

	c, err := collect(strings.NewReader(dump), nil)
	require.NoError(t, err)

	pairs, err := c.exceptions(c.words())
	require.NoError(t, err)

	var forms []string
	for _, p := range pairs {
		forms = append(forms, p[0]+" "+p[1])
	}
	// cats, running, goes and happier are reduced by the suffix rules.
	assert.Equal(t, []string{"gone go", "mice mouse", "ran run", "went go"}, forms)
	assert.True(t, slices.IsSortedFunc(pairs, func(a, b [2]string) int { return strings.Compare(a[0], b[0]) }))
}

func TestWriteOutputs(t *testing.T) {
	t.Parallel()

	var lex, exc bytes.Buffer
	require.NoError(t, writeLexicon(&lex, []string{"cat", "dog"}))
	require.NoError(t, writeExceptions(&exc, [][2]string{{"mice", "mouse"}}))

	assert.True(t, strings.HasSuffix(lex.String(), "cat\ndog\n"))
	assert.True(t, strings.HasPrefix(lex.String(), "#"))
	assert.True(t, strings.HasSuffix(exc.String(), "mice mouse\n"))
}

func TestRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "dump.jsonl")
	require.NoError(t, os.WriteFile(input, []byte(dump), 0o644))
	lexPath := filepath.Join(dir, "lexicon.txt")
	excPath := filepath.Join(dir, "exceptions.txt")

	require.NoError(t, run(input, "", lexPath, excPath))

	lex, err := os.ReadFile(lexPath)
	require.NoError(t, err)
	assert.Contains(t, string(lex), "\nmouse\n")

	exc, err := os.ReadFile(excPath)
	require.NoError(t, err)
	assert.Contains(t, string(exc), "went go\n")

	require.Error(t, run(filepath.Join(dir, "missing.jsonl"), "", lexPath, excPath))
}

func TestIsAcceptable(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"cat":      true,
		"go":       true,
		"x":        false,
		"new york": false,
		"café":     false,
		"o'clock":  false,
		"mp3":      false,
	}
	for word, want := range tests {
		assert.Equal(t, want, isAcceptable(word), "isAcceptable(%q)", word)
	}
}
