package rules

// Hangul syllables decompose arithmetically, so they are romanized by a
// provider instead of an 11,172-entry table. Revised Romanization of Korean.

const (
	hangulBase = 0xAC00
	hangulEnd  = 0xD7A3
	jongN      = 28
	jungN      = 21
)

var (
	choseong = []string{
		"g", "kk", "n", "d", "tt", "r", "m", "b", "pp",
		"s", "ss", "", "j", "jj", "ch", "k", "t", "p", "h",
	}
	jungseong = []string{
		"a", "ae", "ya", "yae", "eo", "e", "yeo", "ye", "o",
		"wa", "wae", "oe", "yo", "u", "wo", "we", "wi", "yu",
		"eu", "ui", "i",
	}
	jongseong = []string{
		"", "g", "kk", "gs", "n", "nj", "nh", "d", "l", "lg",
		"lm", "lb", "ls", "lt", "lp", "lh", "m", "b", "bs",
		"s", "ss", "ng", "j", "ch", "k", "t", "p", "h",
	}
)

type hangulProvider struct{}

func newHangulProvider() *hangulProvider { return &hangulProvider{} }

func (*hangulProvider) Name() string { return "hangul" }

func (*hangulProvider) Match(_ rune, window []rune, _ string) []Match {
	r := window[0]
	if r < hangulBase || r > hangulEnd {
		// Isolated jamo fall through to the fallback edge.
		return nil
	}
	code := int(r) - hangulBase
	jong := code % jongN
	jung := (code / jongN) % jungN
	cho := code / (jongN * jungN)
	return []Match{{
		Len:      1,
		Rom:      choseong[cho] + jungseong[jung] + jongseong[jong],
		Type:     TypeLetter,
		Priority: PrioLetter,
	}}
}
