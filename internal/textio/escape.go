// Package textio holds the engine-agnostic text preprocessing helpers: the
// \uXXXX escape decoder applied before text reaches the engine. The engine
// itself never sees escape syntax.
package textio

import (
	"strconv"
	"strings"
	"unicode/utf16"
)

// DecodeEscapes replaces \uXXXX and \UXXXXXXXX escape sequences with the
// codepoints they denote. Adjacent \uXXXX surrogate halves combine into one
// codepoint. Malformed escapes are left verbatim; decoding never fails.
func DecodeEscapes(s string) string {
	if !strings.Contains(s, `\u`) && !strings.Contains(s, `\U`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, n, ok := decodeAt(s[i:])
		if !ok {
			b.WriteByte(s[i])
			i++
			continue
		}
		b.WriteRune(r)
		i += n
	}
	return b.String()
}

func decodeAt(s string) (rune, int, bool) {
	if len(s) < 2 || s[0] != '\\' {
		return 0, 0, false
	}
	switch s[1] {
	case 'u':
		v, ok := hexRune(s, 6)
		if !ok {
			return 0, 0, false
		}
		if utf16.IsSurrogate(rune(v)) {
			if len(s) >= 12 && s[6] == '\\' && s[7] == 'u' {
				if lo, ok := hexRune(s[6:], 6); ok {
					if r := utf16.DecodeRune(rune(v), rune(lo)); r != 0xFFFD {
						return r, 12, true
					}
				}
			}
			// Unpaired surrogate: treat as an unmatched codepoint
			// downstream rather than failing.
			return 0xFFFD, 6, true
		}
		return rune(v), 6, true
	case 'U':
		v, ok := hexRune(s, 10)
		if !ok || v > 0x10FFFF {
			return 0, 0, false
		}
		return rune(v), 10, true
	}
	return 0, 0, false
}

// hexRune parses s[2:width] as hex, requiring exactly width-2 hex digits.
func hexRune(s string, width int) (uint32, bool) {
	if len(s) < width {
		return 0, false
	}
	v, err := strconv.ParseUint(s[2:width], 16, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}
