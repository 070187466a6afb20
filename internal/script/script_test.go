package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOf(t *testing.T) {
	cases := []struct {
		r    rune
		want string
	}{
		{'a', Latin},
		{'Z', Latin},
		{'7', Common},
		{' ', Common},
		{'.', Common},
		{'α', Greek},
		{'Ж', Cyrillic},
		{'ա', Armenian},
		{'ქ', Georgian},
		{'ب', Arabic},
		{'ש', Hebrew},
		{'न', Devanagari},
		{'ব', Bengali},
		{'ก', Thai},
		{'한', Hangul},
		{'ひ', Hiragana},
		{'カ', Katakana},
		{'日', Han},
		// Script-native digits keep their script class; numeral handling
		// keys on digit metadata, not on the script tag.
		{'٣', Arabic},
		{'४', Devanagari},
		{'→', Common},
		{'é', Latin}, // é
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Of(c.r), "Of(%q)", c.r)
	}
}

func TestTokenizePositionsAreCodepoints(t *testing.T) {
	toks := Tokenize("aΩ🚀")
	assert.Len(t, toks, 3)
	assert.Equal(t, 'a', toks[0].Rune)
	assert.Equal(t, 'Ω', toks[1].Rune)
	assert.Equal(t, '🚀', toks[2].Rune)
}

func TestTokenizeInvalidUTF8(t *testing.T) {
	toks := Tokenize("a\xffb")
	assert.Len(t, toks, 3)
	assert.Equal(t, '�', toks[1].Rune)
}

func TestTokenizeEmpty(t *testing.T) {
	assert.Empty(t, Tokenize(""))
}

func TestRunesRoundTrip(t *testing.T) {
	text := "Αθήνα 日本"
	assert.Equal(t, []rune(text), Runes(Tokenize(text)))
}
