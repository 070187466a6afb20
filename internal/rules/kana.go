package rules

import (
	"sort"
	"strings"
)

// Hiragana base table (Hepburn). Katakana rules are derived by shifting each
// codepoint in U+3041..U+3096 up by 0x60 into the katakana block.
var hiragana = map[string]string{
	"あ": "a", "い": "i", "う": "u", "え": "e", "お": "o",
	"か": "ka", "き": "ki", "く": "ku", "け": "ke", "こ": "ko",
	"さ": "sa", "し": "shi", "す": "su", "せ": "se", "そ": "so",
	"た": "ta", "ち": "chi", "つ": "tsu", "て": "te", "と": "to",
	"な": "na", "に": "ni", "ぬ": "nu", "ね": "ne", "の": "no",
	"は": "ha", "ひ": "hi", "ふ": "fu", "へ": "he", "ほ": "ho",
	"ま": "ma", "み": "mi", "む": "mu", "め": "me", "も": "mo",
	"や": "ya", "ゆ": "yu", "よ": "yo",
	"ら": "ra", "り": "ri", "る": "ru", "れ": "re", "ろ": "ro",
	"わ": "wa", "ゐ": "wi", "ゑ": "we", "を": "wo", "ん": "n",
	"が": "ga", "ぎ": "gi", "ぐ": "gu", "げ": "ge", "ご": "go",
	"ざ": "za", "じ": "ji", "ず": "zu", "ぜ": "ze", "ぞ": "zo",
	"だ": "da", "ぢ": "ji", "づ": "zu", "で": "de", "ど": "do",
	"ば": "ba", "び": "bi", "ぶ": "bu", "べ": "be", "ぼ": "bo",
	"ぱ": "pa", "ぴ": "pi", "ぷ": "pu", "ぺ": "pe", "ぽ": "po",
	"ぁ": "a", "ぃ": "i", "ぅ": "u", "ぇ": "e", "ぉ": "o",
	"ゃ": "ya", "ゅ": "yu", "ょ": "yo", "ゎ": "wa", "ゔ": "vu",
	// yōon digraphs
	"きゃ": "kya", "きゅ": "kyu", "きょ": "kyo",
	"しゃ": "sha", "しゅ": "shu", "しょ": "sho",
	"ちゃ": "cha", "ちゅ": "chu", "ちょ": "cho",
	"にゃ": "nya", "にゅ": "nyu", "にょ": "nyo",
	"ひゃ": "hya", "ひゅ": "hyu", "ひょ": "hyo",
	"みゃ": "mya", "みゅ": "myu", "みょ": "myo",
	"りゃ": "rya", "りゅ": "ryu", "りょ": "ryo",
	"ぎゃ": "gya", "ぎゅ": "gyu", "ぎょ": "gyo",
	"じゃ": "ja", "じゅ": "ju", "じょ": "jo",
	"びゃ": "bya", "びゅ": "byu", "びょ": "byo",
	"ぴゃ": "pya", "ぴゅ": "pyu", "ぴょ": "pyo",
}

const (
	hiraganaLo = 0x3041
	hiraganaHi = 0x3096
	kataShift  = 0x60
	sokuonHira = 'っ'
	sokuonKata = 'ッ'
	moraicNHi  = 'ん'
	moraicNKa  = 'ン'
	choon      = 'ー'
)

func (s *Store) loadKana() {
	hira := expandKanaTable(hiragana, false)
	kata := expandKanaTable(hiragana, true)

	s.addMap("", TypeLetter, PrioLetter, hira)
	s.addMap("", TypeLetter, PrioLetter, kata)

	// Katakana long-vowel mark extends the previous mora's vowel:
	// カー -> "kaa". A chōon with no kana before it contributes nothing.
	long := make(map[string]string, len(kata))
	for k, v := range kata {
		if v == "" || !strings.ContainsRune("aeiou", rune(v[len(v)-1])) {
			continue
		}
		long[k+string(choon)] = v + v[len(v)-1:]
	}
	s.addMap("", TypeLetter, PrioLetter, long)
	s.add(Rule{Pattern: []rune{choon}, Rom: "", Type: TypeLetter, Priority: prioLow})
}

// expandKanaTable derives the sokuon (doubled consonant) and moraic-n
// (apostrophe before vowels, y, n) patterns from the base table, optionally
// shifted into the katakana block.
func expandKanaTable(base map[string]string, katakana bool) map[string]string {
	keys := make([]string, 0, len(base))
	for k := range base {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	sokuon, moraicN := sokuonHira, moraicNHi
	if katakana {
		sokuon, moraicN = sokuonKata, moraicNKa
	}

	out := make(map[string]string, 4*len(base))
	for _, k := range keys {
		rom := base[k]
		pat := k
		if katakana {
			pat = toKatakana(k)
		}
		out[pat] = rom
		if rom == "" {
			continue
		}
		switch rom[0] {
		case 'a', 'e', 'i', 'o', 'u', 'y', 'n':
			// Moraic n needs an apostrophe before vowels, y and n:
			// んに -> "n'ni", distinguishing it from な-row syllables.
			if pat != string(moraicN) {
				out[string(moraicN)+pat] = "n'" + rom
			}
		default:
			// Sokuon geminates the following consonant; ch geminates as tch.
			doubled := rom[:1] + rom
			if strings.HasPrefix(rom, "ch") {
				doubled = "t" + rom
			}
			out[string(sokuon)+pat] = doubled
		}
	}
	return out
}

func toKatakana(kana string) string {
	rs := []rune(kana)
	for i, r := range rs {
		if r >= hiraganaLo && r <= hiraganaHi {
			rs[i] = r + kataShift
		}
	}
	return string(rs)
}
