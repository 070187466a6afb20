// Package script decomposes input text into an ordered codepoint sequence and
// classifies each codepoint's Unicode script. The codepoint index is the
// position space the rest of the engine operates in: lattice nodes are
// indexes into the sequence produced here.
package script

import (
	"unicode"
	"unicode/utf8"
)

// Script names reported by Of. Only scripts with romanization rules are
// distinguished; everything else collapses into Common or Unknown.
const (
	Latin      = "Latin"
	Greek      = "Greek"
	Cyrillic   = "Cyrillic"
	Armenian   = "Armenian"
	Georgian   = "Georgian"
	Arabic     = "Arabic"
	Hebrew     = "Hebrew"
	Devanagari = "Devanagari"
	Bengali    = "Bengali"
	Thai       = "Thai"
	Hangul     = "Hangul"
	Hiragana   = "Hiragana"
	Katakana   = "Katakana"
	Han        = "Han"
	Common     = "Common"
	Unknown    = "Unknown"
)

// known is checked in rough frequency order for the inputs this engine sees.
var known = []string{
	Latin,
	Han,
	Hiragana,
	Katakana,
	Hangul,
	Cyrillic,
	Arabic,
	Greek,
	Hebrew,
	Devanagari,
	Bengali,
	Thai,
	Armenian,
	Georgian,
}

// Token is one codepoint of the input together with its script class.
type Token struct {
	Rune   rune
	Script string
}

// Of returns the script class for a single codepoint.
func Of(r rune) string {
	if r < utf8.RuneSelf {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
			return Latin
		default:
			return Common
		}
	}
	for _, name := range known {
		if unicode.Is(unicode.Scripts[name], r) {
			return name
		}
	}
	if unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsDigit(r) || unicode.IsSymbol(r) {
		return Common
	}
	return Unknown
}

// Tokenize decodes text into its codepoint sequence. Invalid UTF-8 bytes
// decode to U+FFFD and are carried through rather than rejected; the
// fallback edges downstream absorb them.
func Tokenize(text string) []Token {
	toks := make([]Token, 0, len(text))
	for _, r := range text {
		toks = append(toks, Token{Rune: r, Script: Of(r)})
	}
	return toks
}

// Runes projects a token sequence back to its codepoints.
func Runes(toks []Token) []rune {
	rs := make([]rune, len(toks))
	for i, t := range toks {
		rs[i] = t.Rune
	}
	return rs
}
