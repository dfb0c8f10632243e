package utils

import (
	"strings"
	"unicode"
)

// Capitalize upper-cases the first letter of each word and lower-cases the
// rest, collapsing surrounding whitespace. Empty or blank input yields "".
func Capitalize(text string) string {
	words := strings.Fields(text)
	for i, word := range words {
		runes := []rune(strings.ToLower(word))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// NormalizeEmail trims and lower-cases an email for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
