// Package textnorm folds Vietnamese and general Unicode text for
// diacritic-insensitive matching.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize strips diacritics and lowercases text.
// It decomposes to NFD, removes combining marks, maps đ/Đ to d/D
// (those letters do not decompose), and lowercases the result.
// Empty input yields an empty string.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	decomposed := norm.NFD.String(text)

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		switch r {
		case 'đ':
			b.WriteRune('d')
		case 'Đ':
			b.WriteRune('D')
		default:
			b.WriteRune(r)
		}
	}

	return strings.ToLower(b.String())
}

// Tokens normalizes text and splits it on whitespace.
func Tokens(text string) []string {
	return strings.Fields(Normalize(text))
}
