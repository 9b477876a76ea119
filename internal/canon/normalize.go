// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package canon

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonWord = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// Normalize folds accents, lower-cases s, and collapses every run of
// characters that are neither letters nor digits into a single "_".
// Normalize is idempotent.
func Normalize(s string) string {
	folded, _, err := transform.String(foldAccents(), s)
	if err != nil {
		folded = s
	}
	return nonWord.ReplaceAllString(strings.ToLower(folded), "_")
}

// foldAccents builds a fresh transformer; transform.Chain values are stateful
// and must not be shared across goroutines.
func foldAccents() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}
