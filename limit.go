package inkan

import (
	"unicode/utf16"

	"github.com/go-text/typesetting/segmenter"
)

// Limit returns the first maxLen UTF-16 code units of s.
//
// Truncation does not respect grapheme clusters. A surrogate pair cut at
// the boundary leaves a lone high surrogate, which decodes to U+FFFD.
func Limit(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	units := utf16.Encode([]rune(s))
	if len(units) <= maxLen {
		return s
	}
	return string(utf16.Decode(units[:maxLen]))
}

// LimitGraphemes returns the first maxLen grapheme clusters of s.
// Combining sequences and emoji clusters are never split.
func LimitGraphemes(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}

	var seg segmenter.Segmenter
	seg.Init(runes)
	it := seg.GraphemeIterator()

	end, n := 0, 0
	for n < maxLen && it.Next() {
		g := it.Grapheme()
		end = g.Offset + len(g.Text)
		n++
	}
	return string(runes[:end])
}

// limit applies the truncation selected by mode.
func limit(s string, maxLen int, mode TruncateMode) string {
	if mode == TruncateGraphemes {
		return LimitGraphemes(s, maxLen)
	}
	return Limit(s, maxLen)
}

// Prepare returns the text a render call draws: s normalized and
// truncated to cfg.MaxCharacters.
func Prepare(s string, cfg Config) string {
	return limit(Normalize(s), cfg.MaxCharacters, cfg.Truncation)
}

// Characters splits prepared text into the units assigned to wedges.
// In grapheme mode a wedge holds a whole cluster, otherwise one rune.
func Characters(s string, mode TruncateMode) []string {
	if s == "" {
		return nil
	}
	if mode == TruncateGraphemes {
		runes := []rune(s)
		var seg segmenter.Segmenter
		seg.Init(runes)
		it := seg.GraphemeIterator()
		var out []string
		for it.Next() {
			out = append(out, string(it.Grapheme().Text))
		}
		return out
	}
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
