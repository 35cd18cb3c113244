package textcase

import "golang.org/x/text/unicode/norm"

// ComposeNFC returns s in Unicode normalization form C, so that a base
// letter followed by combining marks (e.g. "é") becomes a single
// precomposed letter ("é") before classification.
func ComposeNFC(s string) string {
	if norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(s)
}
