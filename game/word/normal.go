package word

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// accentFold decomposes combined characters and drops the combining
// marks, e.g. ô -> o.
var accentFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func fold(s string) string {
	out, _, err := transform.String(accentFold, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

// wordSeparators are the characters Normalize collapses to a hyphen:
// space, hyphen, ASCII and typographic apostrophes, period, comma,
// parentheses and slash.
const wordSeparators = " -'’.,()/"

// Normalize produces the guessable form of a phrase-like word: lowercase
// ASCII letters with runs of separators collapsed to a single hyphen and
// "&" spelled out as "and". Every other character is dropped.
// Normalize is idempotent.
func Normalize(s string) string {
	s = strings.ReplaceAll(fold(s), "&", " and ")
	var b strings.Builder
	b.Grow(len(s))
	hyphen := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
			hyphen = false
		case strings.ContainsRune(wordSeparators, r):
			if !hyphen {
				b.WriteByte('-')
				hyphen = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

// CountryToken produces the guess token for a country name: accents are
// stripped and everything except ASCII letters is dropped entirely,
// e.g. "Côte d'Ivoire" -> "cotedivoire".
func CountryToken(s string) string {
	var b strings.Builder
	for _, r := range fold(s) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
