package lemma

import (
	"strings"
	"testing"
)

func TestDictionaryEnglish(t *testing.T) {
	t.Parallel()

	d := English()
	tests := []struct {
		input string
		want  string
	}{
		// Known base forms are kept.
		{"cat", "cat"},
		{"sat", "sat"},
		{"mat", "mat"},
		{"happy", "happy"},
		{"data", "data"},
		{"news", "news"},
		{"series", "series"},
		{"analysis", "analysis"},

		// Irregular forms.
		{"children", "child"},
		{"women", "woman"},
		{"mice", "mouse"},
		{"criteria", "criterion"},
		{"went", "go"},
		{"written", "write"},
		{"better", "good"},

		// Noun detachment.
		{"cats", "cat"},
		{"glasses", "glass"},
		{"boxes", "box"},
		{"churches", "church"},
		{"cities", "city"},
		{"shelves", "shelf"},
		{"processes", "process"},
		{"uses", "use"},

		// Verb detachment.
		{"hoped", "hope"},
		{"making", "make"},
		{"running", "run"},
		{"stopped", "stop"},
		{"studied", "study"},
		{"lying", "lie"},
		{"tested", "test"},

		// Adjective detachment.
		{"happier", "happy"},
		{"bigger", "big"},
		{"larger", "large"},
		{"smallest", "small"},

		// Unknown words pass through.
		{"zyzzyva", "zyzzyva"},
		{"thus", "thus"},
		{"bus", "bus"},
		{"kubernetes", "kubernetes"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := d.Lemmatize(tt.input); got != tt.want {
			t.Errorf("English().Lemmatize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestDictionaryLookup(t *testing.T) {
	t.Parallel()

	d := English()
	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"cat", "cat", true},
		{"cats", "cat", true},
		{"children", "child", true},
		{"zyzzyva", "zyzzyva", false},
		{"", "", false},
		{strings.Repeat("s", maxWordBytes+1), strings.Repeat("s", maxWordBytes+1), false},
	}

	for _, tt := range tests {
		got, ok := d.Lookup(tt.input)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Lookup(%.20q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestNewDictionary(t *testing.T) {
	t.Parallel()

	lexicon := "# base forms\nzebra\napple\n\napple\nMango\n"
	exceptions := "# irregular\ngeese goose\n"

	d, err := NewDictionary(strings.NewReader(lexicon), strings.NewReader(exceptions))
	if err != nil {
		t.Fatalf("NewDictionary() error = %v", err)
	}
	if got, want := d.Len(), 3; got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
	for _, w := range []string{"apple", "mango", "zebra"} {
		if !d.Known(w) {
			t.Errorf("Known(%q) = false, want true", w)
		}
	}
	if d.Known("") || d.Known("banana") {
		t.Error("Known reported a word missing from the lexicon")
	}
	if got := d.Lemmatize("geese"); got != "goose" {
		t.Errorf("Lemmatize(geese) = %q, want goose", got)
	}
	if got := d.Lemmatize("apples"); got != "apple" {
		t.Errorf("Lemmatize(apples) = %q, want apple", got)
	}
}

func TestNewDictionaryNilExceptions(t *testing.T) {
	t.Parallel()

	d, err := NewDictionary(strings.NewReader("word\n"), nil)
	if err != nil {
		t.Fatalf("NewDictionary() error = %v", err)
	}
	if got := d.Lemmatize("words"); got != "word" {
		t.Errorf("Lemmatize(words) = %q, want word", got)
	}
}

func TestNewDictionaryMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		lexicon    string
		exceptions string
	}{
		{"two words on a lexicon line", "good word\n", ""},
		{"one word on an exception line", "word\n", "geese\n"},
		{"three words on an exception line", "word\n", "a b c\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewDictionary(strings.NewReader(tt.lexicon), strings.NewReader(tt.exceptions))
			if err == nil {
				t.Fatal("NewDictionary() error = nil, want error")
			}
			if !strings.Contains(err.Error(), "line 1") {
				t.Errorf("error %q does not name the line", err)
			}
		})
	}
}

func TestHasDoubledFinal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"runn", true},
		{"stopp", true},
		{"bigg", true},
		{"see", false},
		{"fee", false},
		{"nn", false},
		{"run", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := hasDoubledFinal(tt.input); got != tt.want {
			t.Errorf("hasDoubledFinal(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
