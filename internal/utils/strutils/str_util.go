package strutils

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToTitleCase returns the string with the first letter of each word capitalized.
// e.g. "hello world" → "Hello World"
func ToTitleCase(s string) string {
	caser := cases.Title(language.English)

	return caser.String(strings.ToLower(s))
}

// Capitalize returns the string with only the first character uppercased.
// e.g. "hello world" → "Hello world"
func Capitalize(s string) string {
	if s == "" {
		return s
	}

	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}

// SplitCamelCase inserts spaces at lower-to-upper transitions and capitalizes
// the first word.
// e.g. "computerSystem" → "Computer System", "usedPercent" → "Used Percent"
func SplitCamelCase(s string) string {
	if s == "" {
		return s
	}

	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) && unicode.IsLower(runes[i-1]) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}

	return Capitalize(b.String())
}
