package uroman

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// One engine for the whole package: construction loads the rule store and
// the instance is safe for concurrent use.
var engine = New()

func TestRomanizeScripts(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"greek", "Ελλάδα", "Ellada"},
		{"greek city", "Αθήνα", "Athina"},
		{"cyrillic", "Москва", "Moskva"},
		{"armenian", "Հայաստան", "Hayastan"},
		{"arabic", "مرحبا", "mrhba"},
		{"hebrew", "שלום", "shlvm"},
		{"devanagari", "नमस्ते", "namaste"},
		{"korean", "안녕", "annyeong"},
		{"korean name", "페이커", "peikeo"},
		{"hiragana", "こんにちは", "kon'nichiha"},
		{"hiragana sokuon", "きっぷ", "kippu"},
		{"hiragana digraph", "きゃく", "kyaku"},
		{"katakana long vowel", "コーヒー", "koohii"},
		{"chinese", "你好", "nihao"},
		{"chinese city", "北京", "beijing"},
		{"latin passthrough", "Hello", "Hello"},
		{"mixed", "Hello Москва", "Hello Moskva"},
		{"cjk punctuation", "です。", "desu."},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.Romanize(tt.input))
		})
	}
}

func TestLanguageOverride(t *testing.T) {
	// Ancient Greek reads beta as b, eta as e.
	res, err := engine.RomanizeWithFormat("βήτα", "grc", FormatStr)
	require.NoError(t, err)
	assert.Equal(t, "beta", res.Str)

	res, err = engine.RomanizeWithFormat("βήτα", "", FormatStr)
	require.NoError(t, err)
	assert.Equal(t, "vita", res.Str)

	// Ukrainian reads г as h, и as y.
	res, err = engine.RomanizeWithFormat("Галичина", "ukr", FormatStr)
	require.NoError(t, err)
	assert.Equal(t, "Halychyna", res.Str)

	res, err = engine.RomanizeWithFormat("Галичина", "", FormatStr)
	require.NoError(t, err)
	assert.Equal(t, "Galichina", res.Str)
}

func TestLCodeNormalization(t *testing.T) {
	// Two-letter codes canonicalize to their ISO 639-3 form.
	iso2, err := engine.RomanizeWithFormat("Галичина", "uk", FormatStr)
	require.NoError(t, err)
	iso3, err := engine.RomanizeWithFormat("Галичина", "ukr", FormatStr)
	require.NoError(t, err)
	assert.Equal(t, iso3.Str, iso2.Str)
}

func TestUnknownLCodeFailsOpen(t *testing.T) {
	res, err := engine.RomanizeWithFormat("Москва", "zz-bogus", FormatStr)
	require.NoError(t, err)
	assert.Equal(t, "Moskva", res.Str)
}

func TestFallbackCoverage(t *testing.T) {
	res, err := engine.RomanizeWithFormat("ABC", "", FormatEdges)
	require.NoError(t, err)
	require.Len(t, res.Edges, 3)
	for i, e := range res.Edges {
		assert.Equal(t, i, e.Start)
		assert.Equal(t, i+1, e.End)
		assert.Equal(t, "unmatched", e.Type)
		assert.False(t, e.IsNumeric)
		assert.Nil(t, e.Value)
		assert.Nil(t, e.OrigText)
	}
	assert.Equal(t, "ABC", engine.Romanize("ABC"))
}

func TestFullCoverageTiling(t *testing.T) {
	inputs := []string{"Ελλάδα", "مرحبا ٤٢", "こんにちは、世界。", "a�b", "三百二十一"}
	for _, input := range inputs {
		res, err := engine.RomanizeWithFormat(input, "", FormatEdges)
		require.NoError(t, err)
		at := 0
		for _, e := range res.Edges {
			require.Equal(t, at, e.Start, "gap or overlap in %q", input)
			require.Greater(t, e.End, e.Start)
			at = e.End
		}
		require.Equal(t, len([]rune(input)), at, "path must cover %q", input)
	}
}

func TestNumericDigits(t *testing.T) {
	res, err := engine.RomanizeWithFormat("١٢٣", "", FormatEdges)
	require.NoError(t, err)
	require.Len(t, res.Edges, 1)

	e := res.Edges[0]
	assert.Equal(t, 0, e.Start)
	assert.Equal(t, 3, e.End)
	assert.Equal(t, "123", e.Text)
	assert.Equal(t, "numeral", e.Type)
	assert.True(t, e.IsNumeric)
	require.NotNil(t, e.Value)
	assert.Equal(t, 123.0, *e.Value)
	require.NotNil(t, e.OrigText)
	assert.Equal(t, "١٢٣", *e.OrigText)
}

func TestNumericLeadingZeros(t *testing.T) {
	res, err := engine.RomanizeWithFormat("००७", "", FormatEdges)
	require.NoError(t, err)
	require.Len(t, res.Edges, 1)
	assert.Equal(t, "007", res.Edges[0].Text)
	require.NotNil(t, res.Edges[0].Value)
	assert.Equal(t, 7.0, *res.Edges[0].Value)
}

func TestNumericHanWords(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"三百二十一", 321},
		{"一千九百九十九", 1999},
		{"二万三千", 23000},
		{"十", 10},
		{"一九九九", 1999},
	}
	for _, tt := range tests {
		res, err := engine.RomanizeWithFormat(tt.input, "", FormatEdges)
		require.NoError(t, err)
		require.Len(t, res.Edges, 1, "input %q", tt.input)
		e := res.Edges[0]
		assert.True(t, e.IsNumeric)
		require.NotNil(t, e.Value)
		assert.Equal(t, tt.want, *e.Value)
		require.NotNil(t, e.OrigText)
		assert.Equal(t, tt.input, *e.OrigText)
	}
}

func TestNumericRoundTrip(t *testing.T) {
	input := "٤٢ apples and 三百二十一 oranges"
	res, err := engine.RomanizeWithFormat(input, "", FormatEdges)
	require.NoError(t, err)
	rs := []rune(input)
	for _, e := range res.Edges {
		if !e.IsNumeric {
			assert.Nil(t, e.Value)
			assert.Nil(t, e.OrigText)
			continue
		}
		require.NotNil(t, e.OrigText)
		assert.Equal(t, string(rs[e.Start:e.End]), *e.OrigText)
	}
}

func TestFormatConsistency(t *testing.T) {
	input := "Москва 2024 東京"
	str, err := engine.RomanizeWithFormat(input, "", FormatStr)
	require.NoError(t, err)
	edges, err := engine.RomanizeWithFormat(input, "", FormatEdges)
	require.NoError(t, err)

	var b strings.Builder
	for _, e := range edges.Edges {
		b.WriteString(e.Text)
	}
	assert.Equal(t, str.Str, b.String())
}

func TestEdgesSubsetOfLattice(t *testing.T) {
	input := "Αθήνα ١٢٣"
	edges, err := engine.RomanizeWithFormat(input, "", FormatEdges)
	require.NoError(t, err)
	lat, err := engine.RomanizeWithFormat(input, "", FormatLattice)
	require.NoError(t, err)

	type triple struct {
		start, end int
		text       string
	}
	all := make(map[triple]bool)
	for _, e := range lat.Edges {
		all[triple{e.Start, e.End, e.Text}] = true
	}
	for _, e := range edges.Edges {
		assert.True(t, all[triple{e.Start, e.End, e.Text}],
			"path edge [%d,%d) %q missing from lattice", e.Start, e.End, e.Text)
	}
}

func TestAltsFollowPathBoundaries(t *testing.T) {
	edges, err := engine.RomanizeWithFormat("βήτα", "", FormatEdges)
	require.NoError(t, err)
	alts, err := engine.RomanizeWithFormat("βήτα", "", FormatAlts)
	require.NoError(t, err)

	starts := make(map[int]bool)
	for _, e := range edges.Edges {
		starts[e.Start] = true
	}
	require.NotEmpty(t, alts.Edges)
	for _, e := range alts.Edges {
		assert.True(t, starts[e.Start], "alt at %d not on a path start", e.Start)
	}
	// The winner leads its position group.
	assert.Equal(t, edges.Edges[0].Text, alts.Edges[0].Text)
}

func TestInvalidFormat(t *testing.T) {
	_, err := ParseFormat("bogus")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = engine.RomanizeWithFormat("text", "", RomFormat(99))
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestDeterminism(t *testing.T) {
	input := "Ελλάδα こんにちは ١٢٣"
	first, err := engine.RomanizeWithFormat(input, "", FormatLattice)
	require.NoError(t, err)
	for range 5 {
		again, err := engine.RomanizeWithFormat(input, "", FormatLattice)
		require.NoError(t, err)
		assert.Equal(t, first.String(), again.String())
	}
}

func TestRomanizeEscaped(t *testing.T) {
	res, err := engine.RomanizeEscaped(`\u0416`, "", FormatStr)
	require.NoError(t, err)
	assert.Equal(t, "Zh", res.Str)

	// Surrogate halves combine into a single codepoint before romanization,
	// so the emoji occupies one lattice position.
	res, err = engine.RomanizeEscaped(`\ud83d\ude00`, "", FormatEdges)
	require.NoError(t, err)
	require.Len(t, res.Edges, 1)
	assert.Equal(t, "😀", res.Edges[0].Text)
}

func TestJapaneseReadings(t *testing.T) {
	res, err := engine.RomanizeWithFormat("日本語", "jpn", FormatStr)
	require.NoError(t, err)
	assert.Equal(t, "nihongo", res.Str)

	// Without the language code, kanji fall back to pinyin readings.
	res, err = engine.RomanizeWithFormat("日本語", "", FormatStr)
	require.NoError(t, err)
	assert.NotEqual(t, "nihongo", res.Str)
	assert.NotEmpty(t, res.Str)
}

func TestRomanizeFile(t *testing.T) {
	in := strings.NewReader("Москва\nΑθήνα\n")
	var out bytes.Buffer
	err := engine.RomanizeFile(in, &out, FileOptions{Format: FormatStr})
	require.NoError(t, err)
	assert.Equal(t, "Moskva\nAthina\n", out.String())
}

func TestRomanizeFileEdgesJSON(t *testing.T) {
	in := strings.NewReader("٤٢\n\n")
	var out bytes.Buffer
	err := engine.RomanizeFile(in, &out, FileOptions{Format: FormatEdges})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"is_numeric":true`)
	assert.Contains(t, lines[0], `"value":42`)
	assert.Equal(t, "[]", lines[1])
}

func TestRomanizeFileDecodeUnicode(t *testing.T) {
	in := strings.NewReader(`\u041C\u043E\u0441\u043A\u0432\u0430` + "\n")
	var out bytes.Buffer
	err := engine.RomanizeFile(in, &out, FileOptions{Format: FormatStr, DecodeUnicode: true})
	require.NoError(t, err)
	assert.Equal(t, "Moskva\n", out.String())
}

func TestRomanizeFileInvalidFormat(t *testing.T) {
	err := engine.RomanizeFile(strings.NewReader("x"), &bytes.Buffer{}, FileOptions{Format: RomFormat(42)})
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestConcurrentCalls(t *testing.T) {
	done := make(chan string, 8)
	for range 8 {
		go func() {
			done <- engine.Romanize("Москва こんにちは ١٢٣")
		}()
	}
	first := <-done
	for range 7 {
		assert.Equal(t, first, <-done)
	}
}
