package classifier

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Normalize lowercases text and composes accents, so "AÑADIR" and a
// decomposed "añadir" compare equal to "añadir".
func Normalize(text string) string {
	return cases.Lower(language.Und).String(norm.NFC.String(text))
}

// Words splits normalized text into runs of letters, digits and underscores
func Words(text string) []string {
	return strings.FieldsFunc(Normalize(text), func(r rune) bool {
		return !isWordRune(r)
	})
}

// Terms returns the vectorizer tokens of text: words of at least two runes
func Terms(text string) []string {
	words := Words(text)
	terms := words[:0]
	for _, w := range words {
		if utf8.RuneCountInString(w) >= 2 {
			terms = append(terms, w)
		}
	}
	return terms
}

// Capitalize upper-cases the first letter and lower-cases the rest
func Capitalize(word string) string {
	if word == "" {
		return word
	}
	r, size := utf8.DecodeRuneInString(word)
	return cases.Upper(language.Und).String(string(r)) + cases.Lower(language.Und).String(word[size:])
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
