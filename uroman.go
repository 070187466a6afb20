// Package uroman romanizes text in arbitrary scripts into Latin script. It
// builds a lattice of candidate transliteration spans over the input's
// codepoints, selects a best full-coverage path, and exposes the flattened
// string, the winning edges, per-position alternatives, or the whole
// lattice.
//
//	ur := uroman.New()
//	ur.Romanize("こんにちは") // "kon'nichiha"
//
// Romanization never fails on input content: codepoints with no matching
// rule pass through on fallback edges. A Uroman instance is safe for
// concurrent use; the rule store is immutable after New and every call owns
// its lattice.
package uroman

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/language"

	"github.com/jusunglee/uroman/internal/jpn"
	"github.com/jusunglee/uroman/internal/lattice"
	"github.com/jusunglee/uroman/internal/rules"
	"github.com/jusunglee/uroman/internal/script"
	"github.com/jusunglee/uroman/internal/textio"
)

// Uroman is the romanization engine: an immutable rule store plus a lazily
// constructed Japanese analyzer.
type Uroman struct {
	store *rules.Store

	jpnOnce sync.Once
	jpnAna  *jpn.Analyzer
	jpnErr  error
}

// New builds an engine with the built-in rule store.
func New() *Uroman {
	return &Uroman{store: rules.NewStore()}
}

// Romanize returns the canonical romanization of text with no language
// disambiguation.
func (u *Uroman) Romanize(text string) string {
	res, err := u.RomanizeWithFormat(text, "", FormatStr)
	if err != nil {
		// Only reachable through an internal inconsistency.
		return ""
	}
	return res.Str
}

// RomanizeWithFormat romanizes text, optionally scoped to an ISO 639 code
// (two- and three-letter codes both accepted), in the requested output
// shape. Unknown lcodes fail open to the general rules.
func (u *Uroman) RomanizeWithFormat(text, lcode string, format RomFormat) (Result, error) {
	if !format.valid() {
		return Result{}, fmt.Errorf("%w: %q", ErrInvalidFormat, format)
	}
	lcode = normalizeLCode(lcode)

	toks := script.Tokenize(text)
	injected := u.japaneseReadings(text, toks, lcode)
	lat := lattice.Build(toks, u.store, lcode, injected)
	lattice.EvaluateNumerals(lat, toks)

	path, err := lat.BestPath()
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInternalInconsistency, err)
	}

	res := Result{Format: format}
	switch format {
	case FormatStr:
		res.Str = lattice.RenderString(path)
	case FormatEdges:
		res.Edges = lattice.RenderEdges(path)
	case FormatAlts:
		res.Edges = lat.RenderAlts(path)
	case FormatLattice:
		res.Edges = lat.RenderAll()
	}
	return res, nil
}

// RomanizeEscaped decodes \uXXXX and \UXXXXXXXX escape sequences in text
// before romanizing. The engine itself is escape-agnostic.
func (u *Uroman) RomanizeEscaped(text, lcode string, format RomFormat) (Result, error) {
	return u.RomanizeWithFormat(textio.DecodeEscapes(text), lcode, format)
}

// japaneseReadings returns injected edges carrying kagome readings for
// kanji spans when lcode is jpn. Analyzer initialization failure falls open
// to the general rules.
func (u *Uroman) japaneseReadings(text string, toks []script.Token, lcode string) []lattice.Edge {
	if lcode != "jpn" || !hasHan(toks) {
		return nil
	}
	u.jpnOnce.Do(func() {
		u.jpnAna, u.jpnErr = jpn.New()
	})
	if u.jpnErr != nil {
		return nil
	}
	var edges []lattice.Edge
	for _, seg := range u.jpnAna.Readings(text) {
		rom := u.romanizePlain(seg.Reading)
		if rom == "" {
			continue
		}
		edges = append(edges, lattice.Injected(seg.Start, seg.End, rom))
	}
	return edges
}

// romanizePlain runs the core pipeline with no lcode and no injection; used
// to romanize katakana readings.
func (u *Uroman) romanizePlain(text string) string {
	toks := script.Tokenize(text)
	lat := lattice.Build(toks, u.store, "", nil)
	path, err := lat.BestPath()
	if err != nil {
		return ""
	}
	return lattice.RenderString(path)
}

func hasHan(toks []script.Token) bool {
	for _, t := range toks {
		if t.Script == script.Han {
			return true
		}
	}
	return false
}

// normalizeLCode canonicalizes a language code to its ISO 639-3 form so
// rule scopes match regardless of whether callers pass "uk" or "ukr".
// Unparseable codes pass through lowercased and simply select no
// language-specific rules.
func normalizeLCode(lcode string) string {
	if lcode == "" {
		return ""
	}
	lcode = strings.ToLower(strings.TrimSpace(lcode))
	tag, err := language.Parse(lcode)
	if err != nil {
		return lcode
	}
	base, conf := tag.Base()
	if conf == language.No {
		return lcode
	}
	return base.ISO3()
}
