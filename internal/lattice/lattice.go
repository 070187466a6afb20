// Package lattice builds the per-call romanization lattice: a DAG over
// codepoint positions 0..N whose edges are candidate transliteration spans.
// Edges only ever point forward (End > Start), which keeps the graph acyclic
// and the best-path computation a single topological sweep.
package lattice

import (
	"errors"

	"github.com/jusunglee/uroman/internal/rules"
	"github.com/jusunglee/uroman/internal/script"
)

// ErrNoPath signals an internal inconsistency: no edge chain covers the
// whole input. The fallback edges make this unreachable in practice.
var ErrNoPath = errors.New("lattice has no full-coverage path")

// TypeUnmatched tags fallback edges that copy a codepoint verbatim.
const TypeUnmatched = "unmatched"

// Edge cost model. Every full tiling of [0,N) pays perRune*N in base cost,
// so the scope penalties and priority bonus are what decide between
// competing tilings; the per-edge scope penalty also makes longer matches
// (fewer edges) cheaper.
const (
	perRune         = 100
	penaltyGeneral  = 10
	penaltyFallback = 900
	bonusLang       = -20
	prioWeight      = 5
)

// prioNumeric outranks the per-digit alternatives so a synthesized numeric
// span always wins path selection over its piecewise reading.
const prioNumeric = 10

// Edge is one candidate transliteration covering [Start,End). Produced once
// by the matcher or the numeric evaluator, immutable afterwards.
type Edge struct {
	Start     int      `json:"start"`
	End       int      `json:"end"`
	Text      string   `json:"text"`
	Type      string   `json:"type"`
	IsNumeric bool     `json:"is_numeric"`
	Value     *float64 `json:"value,omitempty"`
	OrigText  *string  `json:"orig_text,omitempty"`

	cost     int
	priority int
	seq      int
	fallback bool
}

// Lattice indexes all candidate edges by start position. Owned by a single
// romanization call; never shared.
type Lattice struct {
	N      int
	starts [][]Edge
}

// Build runs the rule matcher at every position and folds the candidates
// into a lattice. Every position gets a fallback edge copying its codepoint,
// so full coverage is guaranteed by construction. injected carries
// pre-romanized spans from language analyzers (kanji readings); they join
// the candidate set like any other edge.
func Build(toks []script.Token, store *rules.Store, lcode string, injected []Edge) *Lattice {
	n := len(toks)
	l := &Lattice{N: n, starts: make([][]Edge, n)}
	rs := script.Runes(toks)

	for i := 0; i < n; i++ {
		var prev rune
		if i > 0 {
			prev = rs[i-1]
		}
		for _, m := range store.Lookup(prev, rs[i:], lcode) {
			l.add(edgeFromMatch(i, m))
		}
		l.add(Edge{
			Start:    i,
			End:      i + 1,
			Text:     string(rs[i]),
			Type:     TypeUnmatched,
			cost:     perRune + penaltyFallback,
			seq:      1 << 30,
			fallback: true,
		})
	}
	for _, e := range injected {
		if e.Start < 0 || e.End > n || e.End <= e.Start {
			continue
		}
		l.add(e)
	}
	return l
}

func edgeFromMatch(start int, m rules.Match) Edge {
	scopePen := penaltyGeneral
	if m.LangSpecific {
		scopePen = bonusLang
	}
	return Edge{
		Start:    start,
		End:      start + m.Len,
		Text:     m.Rom,
		Type:     m.Type,
		cost:     perRune*m.Len + scopePen - prioWeight*m.Priority,
		priority: m.Priority,
		seq:      m.Seq,
	}
}

// Injected builds a language-analyzer edge, weighted like a
// language-specific rule match.
func Injected(start, end int, text string) Edge {
	return Edge{
		Start:    start,
		End:      end,
		Text:     text,
		Type:     rules.TypeLetter,
		cost:     perRune*(end-start) + bonusLang - prioWeight*rules.PrioLetter,
		priority: rules.PrioLetter,
		seq:      1 << 21,
	}
}

// add appends an edge unless an identical (start, end, text) triple is
// already present.
func (l *Lattice) add(e Edge) {
	for _, have := range l.starts[e.Start] {
		if have.End == e.End && have.Text == e.Text {
			return
		}
	}
	l.starts[e.Start] = append(l.starts[e.Start], e)
}

// At returns the candidate edges starting at position p, in insertion order.
func (l *Lattice) At(p int) []Edge {
	if p < 0 || p >= len(l.starts) {
		return nil
	}
	return l.starts[p]
}
