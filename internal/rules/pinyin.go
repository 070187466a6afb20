package rules

import (
	"unicode"

	"github.com/mozillazg/go-pinyin"
)

// Han codepoints romanize through go-pinyin. Heteronyms are resolved by
// taking the most common reading; tone marks are dropped.
type pinyinProvider struct {
	args pinyin.Args
}

func newPinyinProvider() *pinyinProvider {
	args := pinyin.NewArgs()
	args.Style = pinyin.Normal
	return &pinyinProvider{args: args}
}

func (*pinyinProvider) Name() string { return "pinyin" }

func (p *pinyinProvider) Match(_ rune, window []rune, _ string) []Match {
	r := window[0]
	if !unicode.Is(unicode.Han, r) {
		return nil
	}
	py := pinyin.SinglePinyin(r, p.args)
	if len(py) == 0 {
		return nil
	}
	return []Match{{
		Len:      1,
		Rom:      py[0],
		Type:     TypeLetter,
		Priority: PrioLetter,
	}}
}
