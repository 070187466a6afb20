package rules

import (
	"strings"
	"unicode"
)

// Letter tables for the cased alphabetic scripts. Lowercase forms are
// declared; uppercase variants are derived with a title-cased romanization.

var greekLetters = map[string]string{
	"α": "a", "β": "v", "γ": "g", "δ": "d", "ε": "e", "ζ": "z",
	"η": "i", "θ": "th", "ι": "i", "κ": "k", "λ": "l", "μ": "m",
	"ν": "n", "ξ": "x", "ο": "o", "π": "p", "ρ": "r", "σ": "s",
	"ς": "s", "τ": "t", "υ": "y", "φ": "f", "χ": "ch", "ψ": "ps",
	"ω": "o",
	"ά": "a", "έ": "e", "ή": "i", "ί": "i", "ό": "o", "ύ": "y",
	"ώ": "o", "ϊ": "i", "ϋ": "y", "ΐ": "i", "ΰ": "y",
	// digraphs
	"ου": "ou", "ού": "ou", "αι": "ai", "ει": "ei", "οι": "oi",
	"μπ": "b", "ντ": "d", "γγ": "ng", "γκ": "gk",
}

// Ancient Greek reads beta as b and eta as e.
var greekAncient = map[string]string{
	"β": "b", "η": "e", "ή": "e", "υ": "u", "ύ": "u", "φ": "ph", "χ": "kh",
}

var cyrillicLetters = map[string]string{
	"а": "a", "б": "b", "в": "v", "г": "g", "д": "d", "е": "e",
	"ё": "yo", "ж": "zh", "з": "z", "и": "i", "й": "y", "к": "k",
	"л": "l", "м": "m", "н": "n", "о": "o", "п": "p", "р": "r",
	"с": "s", "т": "t", "у": "u", "ф": "f", "х": "kh", "ц": "ts",
	"ч": "ch", "ш": "sh", "щ": "shch", "ъ": "", "ы": "y", "ь": "",
	"э": "e", "ю": "yu", "я": "ya",
	// Ukrainian, Belarusian, Serbian letters
	"і": "i", "ї": "yi", "є": "ye", "ґ": "g", "ў": "u",
	"ђ": "dj", "ј": "j", "љ": "lj", "њ": "nj", "ћ": "c", "џ": "dz",
}

// Ukrainian reads г as h and и as y.
var cyrillicUkrainian = map[string]string{
	"г": "h", "и": "y",
}

var armenianLetters = map[string]string{
	"ա": "a", "բ": "b", "գ": "g", "դ": "d", "ե": "e", "զ": "z",
	"է": "e", "ը": "e", "թ": "t", "ժ": "zh", "ի": "i", "լ": "l",
	"խ": "kh", "ծ": "ts", "կ": "k", "հ": "h", "ձ": "dz", "ղ": "gh",
	"ճ": "ch", "մ": "m", "յ": "y", "ն": "n", "շ": "sh", "ո": "o",
	"չ": "ch", "պ": "p", "ջ": "j", "ռ": "r", "ս": "s", "վ": "v",
	"տ": "t", "ր": "r", "ց": "ts", "ւ": "w", "փ": "p", "ք": "k",
	"օ": "o", "ֆ": "f",
	"ու": "u", "եւ": "ev",
}

var arabicLetters = map[string]string{
	"ا": "a", "ب": "b", "ت": "t", "ث": "th", "ج": "j", "ح": "h",
	"خ": "kh", "د": "d", "ذ": "dh", "ر": "r", "ز": "z", "س": "s",
	"ش": "sh", "ص": "s", "ض": "d", "ط": "t", "ظ": "z", "ع": "'",
	"غ": "gh", "ف": "f", "ق": "q", "ك": "k", "ل": "l", "م": "m",
	"ن": "n", "ه": "h", "و": "w", "ي": "y", "ء": "'", "آ": "a",
	"أ": "a", "إ": "i", "ؤ": "w", "ئ": "y", "ى": "a",
	// Persian and Urdu extensions
	"پ": "p", "چ": "ch", "ژ": "zh", "گ": "g", "ک": "k", "ی": "y",
	// harakat
	"َ": "a", "ِ": "i", "ُ": "u", "ْ": "", "ّ": "",
}

// Persian reads waw as v.
var arabicPersian = map[string]string{
	"و": "v",
}

var hebrewLetters = map[string]string{
	"א": "'", "ב": "v", "ג": "g", "ד": "d", "ה": "h", "ו": "v",
	"ז": "z", "ח": "ch", "ט": "t", "י": "y", "כ": "k", "ך": "kh",
	"ל": "l", "מ": "m", "ם": "m", "נ": "n", "ן": "n", "ס": "s",
	"ע": "'", "פ": "p", "ף": "f", "צ": "ts", "ץ": "ts", "ק": "k",
	"ר": "r", "ש": "sh", "ת": "t",
}

var punctuation = map[string]string{
	"。": ".", "、": ",", "，": ",", "．": ".",
	"：": ":", "；": ";", "？": "?", "！": "!",
	"（": "(", "）": ")", "「": "\"", "」": "\"",
	"『": "\"", "』": "\"", "・": " ", "　": " ",
	"،": ",", "؛": ";", "؟": "?", "।": ".",
	"॥": ".", "«": "\"", "»": "\"",
}

func (s *Store) loadLetters() {
	s.addCased("", greekLetters)
	s.addCased("grc", greekAncient)
	s.addCased("", cyrillicLetters)
	s.addCased("ukr", cyrillicUkrainian)
	s.addCased("", armenianLetters)
	s.addMap("", TypeLetter, PrioLetter, arabicLetters)
	s.addMap("fas", TypeLetter, PrioLetter, arabicPersian)
	s.addMap("", TypeLetter, PrioLetter, hebrewLetters)

	// Word-final ta marbuta reads as h, elsewhere as t.
	s.add(Rule{Pattern: []rune("ة"), Rom: "t", Type: TypeLetter, Priority: PrioLetter})
	s.add(Rule{Pattern: []rune("ة"), Rom: "h", Type: TypeLetter, Priority: PrioLetter + 1, After: CtxBoundary})
}

// addCased loads a lowercase table and derives uppercase rules from it, so
// that "Москва" romanizes as "Moskva" rather than "moskva".
func (s *Store) addCased(lcode string, m map[string]string) {
	s.addMap(lcode, TypeLetter, PrioLetter, m)
	upper := make(map[string]string, len(m))
	for k, v := range m {
		u := upperPattern(k)
		if u == k {
			continue
		}
		upper[u] = titleRom(v)
	}
	s.addMap(lcode, TypeLetter, PrioLetter, upper)
}

func upperPattern(p string) string {
	rs := []rune(p)
	// Only the first codepoint is uppercased: digraphs like ου appear
	// title-cased (Ου) at word starts far more often than fully uppercased.
	rs[0] = unicode.ToUpper(rs[0])
	return string(rs)
}

func titleRom(rom string) string {
	if rom == "" {
		return ""
	}
	return strings.ToUpper(rom[:1]) + rom[1:]
}

func (s *Store) loadPunctuation() {
	s.addMap("", TypePunct, PrioLetter, punctuation)
}
