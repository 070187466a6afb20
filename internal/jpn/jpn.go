// Package jpn supplies kanji readings for lcode "jpn" via kagome
// morphological analysis. Pinyin readings are wrong for Japanese text, so
// the engine swaps in per-token katakana readings wherever the analyzer
// produces one.
package jpn

import (
	"fmt"
	"unicode"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// Segment is one analyzed token span, in codepoint offsets, with its
// katakana reading.
type Segment struct {
	Start   int
	End     int
	Reading string
}

// Analyzer wraps a kagome tokenizer over the embedded IPA dictionary.
type Analyzer struct {
	t *tokenizer.Tokenizer
}

// New builds the analyzer. The IPA dictionary is embedded in the module, so
// this needs no external files; it is still expensive enough that callers
// should construct lazily.
func New() (*Analyzer, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("initializing kagome tokenizer: %w", err)
	}
	return &Analyzer{t: t}, nil
}

// Readings analyzes text and returns a segment for every token that
// contains at least one Han codepoint and has a dictionary reading. Tokens
// that are pure kana or carry no reading are left for the static rules.
func (a *Analyzer) Readings(text string) []Segment {
	var segs []Segment
	for _, tok := range a.t.Tokenize(text) {
		if !containsHan(tok.Surface) {
			continue
		}
		reading, ok := tok.Reading()
		if !ok || reading == "" || reading == "*" {
			continue
		}
		segs = append(segs, Segment{Start: tok.Start, End: tok.End, Reading: reading})
	}
	return segs
}

func containsHan(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Han, r) {
			return true
		}
	}
	return false
}
