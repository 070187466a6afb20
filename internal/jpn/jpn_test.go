package jpn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	a, err := New()
	require.NoError(t, err)
	return a
}

func TestReadingsKanjiToken(t *testing.T) {
	a := newAnalyzer(t)
	segs := a.Readings("日本語")
	require.NotEmpty(t, segs)
	assert.Equal(t, 0, segs[0].Start)
	assert.NotEmpty(t, segs[0].Reading)
	// Offsets are codepoint positions into the input.
	last := segs[len(segs)-1]
	assert.LessOrEqual(t, last.End, 3)
}

func TestReadingsSkipsPureKana(t *testing.T) {
	a := newAnalyzer(t)
	assert.Empty(t, a.Readings("こんにちは"))
}

func TestReadingsSkipsNonJapanese(t *testing.T) {
	a := newAnalyzer(t)
	assert.Empty(t, a.Readings("hello world"))
}

func TestReadingsMixedText(t *testing.T) {
	a := newAnalyzer(t)
	segs := a.Readings("私はカレーです")
	require.NotEmpty(t, segs)
	// Only the kanji token gets a segment; 私 sits at position 0.
	assert.Equal(t, 0, segs[0].Start)
	assert.Equal(t, 1, segs[0].End)
	assert.Equal(t, "ワタシ", segs[0].Reading)
}
