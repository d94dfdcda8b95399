package casing

import (
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Words splits s into its words: maximal runs of Unicode letters and numbers.
// Whitespace, underscores, hyphens and any other rune that is not part of a
// word mark a boundary, and a run of boundaries counts once. Combining marks
// stay with the word they follow.
//
// The input is NFC-normalized first, so "e\u0301" and "\u00e9" produce the
// same word.
func Words(s string) []string {
	s = norm.NFC.String(s)

	var words []string
	start := -1
	for i, r := range s {
		switch {
		case isWordChar(r):
			if start < 0 {
				start = i
			}
		case start >= 0 && unicode.IsMark(r):
			// Part of the current word.
		default:
			if start >= 0 {
				words = append(words, s[start:i])
				start = -1
			}
		}
	}
	if start >= 0 {
		words = append(words, s[start:])
	}

	return words
}

// isWordChar reports whether r can start or continue a word.
func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}
