package core

import (
	"strings"
	"unicode"
)

// emojiRanges is the deny list of code points removed from every displayed
// string. The embedded PDF fonts have no glyphs for them. Typographic
// punctuation (dashes, quotes, bullets, arrows) is deliberately absent.
var emojiRanges = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x200d, Hi: 0x200d, Stride: 1}, // zero width joiner
		{Lo: 0x231a, Hi: 0x231b, Stride: 1},
		{Lo: 0x23e9, Hi: 0x23f3, Stride: 1},
		{Lo: 0x23f8, Hi: 0x23fa, Stride: 1},
		{Lo: 0x2600, Hi: 0x26ff, Stride: 1}, // misc symbols
		{Lo: 0x2700, Hi: 0x27bf, Stride: 1}, // dingbats
		{Lo: 0x2b50, Hi: 0x2b50, Stride: 1},
		{Lo: 0xfe00, Hi: 0xfe0f, Stride: 1}, // variation selectors
	},
	R32: []unicode.Range32{
		{Lo: 0x1f1e0, Hi: 0x1f1ff, Stride: 1}, // regional indicators
		{Lo: 0x1f300, Hi: 0x1f5ff, Stride: 1}, // pictographs
		{Lo: 0x1f600, Hi: 0x1f64f, Stride: 1}, // emoticons
		{Lo: 0x1f680, Hi: 0x1f6ff, Stride: 1}, // transport and map
		{Lo: 0x1f900, Hi: 0x1f9ff, Stride: 1}, // supplemental symbols
		{Lo: 0x1fa70, Hi: 0x1faff, Stride: 1},
	},
}

// StripEmojis removes emoji code points and trims surrounding space.
func StripEmojis(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.Is(emojiRanges, r) {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}

// Lookup returns the content authored for a chapter title. Titles are
// compared case-sensitively after emoji stripping on both sides. A miss is
// not an error: callers render generic text instead.
func (g *Guide) Lookup(title string) (ChapterContent, bool) {
	if g == nil || g.Content == nil {
		return ChapterContent{}, false
	}
	key := StripEmojis(title)
	if c, ok := g.Content[key]; ok {
		return c, true
	}
	// Several keys can strip to the same title; the lowest one wins.
	best, found := "", false
	for k := range g.Content {
		if StripEmojis(k) == key && (!found || k < best) {
			best, found = k, true
		}
	}
	if !found {
		return ChapterContent{}, false
	}
	return g.Content[best], true
}
