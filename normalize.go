package inkan

import (
	"strings"

	"golang.org/x/text/width"
)

// Normalize maps halfwidth Latin letters A-Z and a-z to their fullwidth
// forms so they match the width of CJK characters. Digits, symbols,
// non-Latin scripts and already fullwidth characters are unchanged.
func Normalize(s string) string {
	if strings.IndexFunc(s, isHalfwidthLetter) < 0 {
		return s
	}
	return strings.Map(widenLetter, s)
}

func widenLetter(r rune) rune {
	if !isHalfwidthLetter(r) {
		return r
	}
	// Every ASCII letter has a fullwidth counterpart in the width tables.
	return width.LookupRune(r).Wide()
}

func isHalfwidthLetter(r rune) bool {
	return ('A' <= r && r <= 'Z') || ('a' <= r && r <= 'z')
}
