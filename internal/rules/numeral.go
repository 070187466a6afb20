package rules

// Numeral sub-rule set. The numeric evaluator uses these to find maximal
// digit and number-word spans and to synthesize their values; the per-digit
// rules below only provide the letter-level alternatives in the lattice.

// digitZeros lists the zero codepoint of every supported decimal digit
// block. Digits within one block are contiguous.
var digitZeros = []rune{
	0x0030, // ASCII
	0x0660, // Arabic-Indic
	0x06F0, // Extended Arabic-Indic
	0x0966, // Devanagari
	0x09E6, // Bengali
	0x0A66, // Gurmukhi
	0x0AE6, // Gujarati
	0x0B66, // Oriya
	0x0BE6, // Tamil
	0x0C66, // Telugu
	0x0CE6, // Kannada
	0x0D66, // Malayalam
	0x0E50, // Thai
	0x0ED0, // Lao
	0x0F20, // Tibetan
	0x1040, // Myanmar
	0x17E0, // Khmer
	0xFF10, // Fullwidth
}

// DigitInfo reports the value and block zero of a decimal digit codepoint.
func DigitInfo(r rune) (value int, zero rune, ok bool) {
	for _, z := range digitZeros {
		if r >= z && r <= z+9 {
			return int(r - z), z, true
		}
	}
	return 0, 0, false
}

// Han numeral digits and multipliers.
var hanDigits = map[rune]float64{
	'〇': 0, '零': 0, '一': 1, '二': 2, '三': 3, '四': 4,
	'五': 5, '六': 6, '七': 7, '八': 8, '九': 9,
}

var hanMultipliers = map[rune]float64{
	'十': 10, '百': 100, '千': 1000,
	'万': 10000, '萬': 10000, '億': 1e8, '亿': 1e8,
}

// IsHanNumeral reports whether r participates in Han number words.
func IsHanNumeral(r rune) bool {
	if _, ok := hanDigits[r]; ok {
		return true
	}
	_, ok := hanMultipliers[r]
	return ok
}

// HanNumeralValue evaluates a Han number word. Sequences without
// multipliers read positionally (一九九九 = 1999); otherwise standard
// multiplier algebra applies (三百二十一 = 321, 二万三千 = 23000).
func HanNumeralValue(rs []rune) (float64, bool) {
	if len(rs) == 0 {
		return 0, false
	}
	positional := true
	for _, r := range rs {
		if _, ok := hanMultipliers[r]; ok {
			positional = false
			break
		}
	}
	if positional {
		v := 0.0
		for _, r := range rs {
			v = v*10 + hanDigits[r]
		}
		return v, true
	}

	var total, section, small float64
	for _, r := range rs {
		if d, ok := hanDigits[r]; ok {
			small = small*10 + d
			continue
		}
		m := hanMultipliers[r]
		if m < 10000 {
			if small == 0 {
				small = 1
			}
			section += small * m
			small = 0
			continue
		}
		section += small
		if section == 0 {
			section = 1
		}
		total += section * m
		section, small = 0, 0
	}
	return total + section + small, true
}

func (s *Store) loadDigits() {
	for _, z := range digitZeros {
		for d := rune(0); d <= 9; d++ {
			s.add(Rule{
				Pattern:  []rune{z + d},
				Rom:      string('0' + d),
				Type:     TypeNumeral,
				Priority: PrioLetter,
			})
		}
	}
}
