package lattice

import (
	"strconv"

	"github.com/jusunglee/uroman/internal/rules"
	"github.com/jusunglee/uroman/internal/script"
)

// TypeNumeral tags edges carrying a synthesized numeric value.
const TypeNumeral = rules.TypeNumeral

type numSpan struct {
	start, end int
	value      float64
	text       string
}

// EvaluateNumerals finds maximal digit runs and Han number words, removes
// any edge that straddles a span boundary, and adds one numeric edge per
// span carrying the computed value and the original source substring. An
// edge fully inside a span stays in the lattice as an alternative; the cost
// model makes the combined span win path selection.
func EvaluateNumerals(l *Lattice, toks []script.Token) {
	rs := script.Runes(toks)
	spans := digitSpans(rs)
	spans = append(spans, hanSpans(rs)...)

	for _, sp := range spans {
		l.removeStraddling(sp.start, sp.end)
		v := sp.value
		orig := string(rs[sp.start:sp.end])
		l.add(Edge{
			Start:     sp.start,
			End:       sp.end,
			Text:      sp.text,
			Type:      TypeNumeral,
			IsNumeric: true,
			Value:     &v,
			OrigText:  &orig,
			cost:      perRune*(sp.end-sp.start) + penaltyGeneral - prioWeight*prioNumeric,
			priority:  prioNumeric,
			seq:       1 << 22,
		})
	}
}

// digitSpans returns maximal runs of decimal digits from a single digit
// block. The rendered text preserves leading zeros; the value is the
// positional reading.
func digitSpans(rs []rune) []numSpan {
	var spans []numSpan
	for i := 0; i < len(rs); {
		v, zero, ok := rules.DigitInfo(rs[i])
		if !ok {
			i++
			continue
		}
		value := float64(v)
		text := []byte{byte('0' + v)}
		j := i + 1
		for j < len(rs) {
			v2, zero2, ok2 := rules.DigitInfo(rs[j])
			if !ok2 || zero2 != zero {
				break
			}
			value = value*10 + float64(v2)
			text = append(text, byte('0'+v2))
			j++
		}
		spans = append(spans, numSpan{start: i, end: j, value: value, text: string(text)})
		i = j
	}
	return spans
}

// hanSpans returns maximal runs of Han numeral codepoints with their
// evaluated values, rendered as ASCII decimals.
func hanSpans(rs []rune) []numSpan {
	var spans []numSpan
	for i := 0; i < len(rs); {
		if !rules.IsHanNumeral(rs[i]) {
			i++
			continue
		}
		j := i + 1
		for j < len(rs) && rules.IsHanNumeral(rs[j]) {
			j++
		}
		if v, ok := rules.HanNumeralValue(rs[i:j]); ok {
			spans = append(spans, numSpan{
				start: i, end: j, value: v,
				text: strconv.FormatFloat(v, 'f', -1, 64),
			})
		}
		i = j
	}
	return spans
}

// removeStraddling drops edges that partially overlap [s,e): every
// surviving edge is fully inside or fully outside the numeric span.
func (l *Lattice) removeStraddling(s, e int) {
	for p := range l.starts {
		kept := l.starts[p][:0]
		for _, edge := range l.starts[p] {
			overlaps := max(edge.Start, s) < min(edge.End, e)
			inside := edge.Start >= s && edge.End <= e
			if overlaps && !inside {
				continue
			}
			kept = append(kept, edge)
		}
		l.starts[p] = kept
	}
}
