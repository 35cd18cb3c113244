// Package data embeds the linguistic resources loaded at process start.
//
// Files are plain UTF-8, one entry per line. Lines starting with '#' and
// blank lines are comments.
//
//   - stopwords_en.txt: English function words (the NLTK English list).
//   - lexicon_en.txt: known English base forms, sorted, one per line.
//   - exceptions_en.txt: irregular inflections, "<inflected> <base>" per line.
package data

import _ "embed"

//go:embed stopwords_en.txt
var StopwordsEnglish []byte

//go:embed lexicon_en.txt
var LexiconEnglish []byte

//go:embed exceptions_en.txt
var ExceptionsEnglish []byte
