package model

import "strings"

// punctuation is the ASCII punctuation set stripped during normalization.
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Normalize prepares a name for use as a comparison key.
//
// It removes ASCII punctuation, trims surrounding whitespace and lower-cases
// the result, so that "Rock 'n' Roll", "Rock n Roll" and "rock n roll " all
// map to the same key. The same policy is applied while building a catalog
// and while comparing two catalogs; display names keep their original
// spelling.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 128 && strings.ContainsRune(punctuation, r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.ToLower(strings.TrimSpace(b.String()))
}
