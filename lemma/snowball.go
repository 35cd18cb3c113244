package lemma

import "github.com/kljensen/snowball"

// Snowball reduces tokens with the English Porter2 (Snowball) stemmer.
// Stems are not always dictionary words ("happy" -> "happi"), so Snowball
// trades readability for recall on vocabulary the dictionary lacks.
type Snowball struct{}

// Lemmatize implements Lemmatizer. Stemmer errors fall back to the token.
func (Snowball) Lemmatize(token string) string {
	if token == "" || len(token) > maxWordBytes {
		return token
	}
	stem, err := snowball.Stem(token, "english", true)
	if err != nil || stem == "" {
		return token
	}
	return stem
}
