package lemma

// detachment removes suffix from a word and appends replace.
type detachment struct {
	suffix  string
	replace string
}

// detachments are tried in order; the first candidate present in the
// lexicon wins. Within each group the longer, more specific suffixes come
// first, and e-restoring verb rules precede plain stripping ("hoped" ->
// "hope", not "hop").
var detachments = []detachment{
	// Nouns
	{"ches", "ch"},
	{"shes", "sh"},
	{"ses", "s"},
	{"xes", "x"},
	{"zes", "z"},
	{"ves", "f"},
	{"ies", "y"},
	{"men", "man"},
	{"s", ""},

	// Verbs
	{"es", "e"},
	{"es", ""},
	{"ied", "y"},
	{"ed", "e"},
	{"ed", ""},
	{"ying", "ie"},
	{"ing", "e"},
	{"ing", ""},

	// Adjectives
	{"iest", "y"},
	{"ier", "y"},
	{"est", "e"},
	{"est", ""},
	{"er", "e"},
	{"er", ""},
}

// hasDoubledFinal reports whether s ends in a doubled ASCII consonant,
// as in "runn" (running) or "stopp" (stopped).
func hasDoubledFinal(s string) bool {
	n := len(s)
	if n < 3 {
		return false
	}
	c := s[n-1]
	if c != s[n-2] || c < 'a' || c > 'z' {
		return false
	}
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return false
	}
	return true
}
