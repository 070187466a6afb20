package uroman

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jusunglee/uroman/internal/lattice"
)

// Edge is one transliteration span: [Start,End) in codepoint offsets, the
// romanized text, a type tag ("letter", "numeral", "punct", "unmatched"),
// and for numeric edges the synthesized value plus the original substring.
type Edge = lattice.Edge

// TypeUnmatched is the type tag of fallback edges that copy a codepoint
// verbatim because no rule matched it.
const TypeUnmatched = lattice.TypeUnmatched

// RomFormat selects the output shape of a romanization call.
type RomFormat int

const (
	// FormatStr returns the flattened best-path string.
	FormatStr RomFormat = iota
	// FormatEdges returns the best path's edges in order.
	FormatEdges
	// FormatAlts returns, per best-path position, the competing edges
	// whose spans are consistent with the path's boundaries.
	FormatAlts
	// FormatLattice returns the full edge set with no path selection.
	FormatLattice
)

// ErrInvalidFormat rejects unrecognized format selectors before any engine
// work is done.
var ErrInvalidFormat = errors.New("invalid format: must be 'str', 'edges', 'alts', or 'lattice'")

// ErrInternalInconsistency reports a lattice with no full-coverage path.
// The fallback-edge guarantee makes this a defect signal, never a normal
// outcome for any input.
var ErrInternalInconsistency = errors.New("internal inconsistency: no full-coverage path")

// ParseFormat maps the wire-level format names to RomFormat values.
func ParseFormat(s string) (RomFormat, error) {
	switch s {
	case "str":
		return FormatStr, nil
	case "edges":
		return FormatEdges, nil
	case "alts":
		return FormatAlts, nil
	case "lattice":
		return FormatLattice, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
}

func (f RomFormat) String() string {
	switch f {
	case FormatStr:
		return "str"
	case FormatEdges:
		return "edges"
	case FormatAlts:
		return "alts"
	case FormatLattice:
		return "lattice"
	}
	return fmt.Sprintf("RomFormat(%d)", int(f))
}

func (f RomFormat) valid() bool {
	return f >= FormatStr && f <= FormatLattice
}

// Result is the output of one romanization call: Str for FormatStr, Edges
// for every other format.
type Result struct {
	Format RomFormat
	Str    string
	Edges  []Edge
}

// String renders the result for line-oriented output: the romanized string
// for FormatStr, a JSON edge array otherwise.
func (r Result) String() string {
	if r.Format == FormatStr {
		return r.Str
	}
	edges := r.Edges
	if edges == nil {
		edges = []Edge{}
	}
	b, err := json.Marshal(edges)
	if err != nil {
		return ""
	}
	return string(b)
}
