// Package rules holds the immutable transliteration rule store: static
// pattern rules loaded at construction, algorithmic providers for scripts
// that are cheaper to romanize by decomposition than by table (Hangul, Han),
// and the numeral sub-rule set used by the numeric evaluator.
//
// The store is built once and never mutated afterwards, so concurrent
// lookups from multiple romanization calls need no locking.
package rules

import (
	"sort"
	"unicode"
)

// Rule types carried through to edge tags.
const (
	TypeLetter  = "letter"
	TypeNumeral = "numeral"
	TypePunct   = "punct"
)

// Default rule priorities. Declared rules mostly share PrioLetter; the
// priority field exists for targeted overrides such as the word-final
// ta-marbuta rule.
const (
	prioLow    = 1
	PrioLetter = 2
)

// Ctx constrains what may surround a pattern for the rule to fire.
type Ctx uint8

const (
	// CtxAny places no constraint on the neighboring codepoint.
	CtxAny Ctx = iota
	// CtxBoundary requires a word boundary: a non-letter codepoint or the
	// edge of the input.
	CtxBoundary
)

// Rule is one immutable transliteration rule. Rules are owned by the Store
// and never change after load.
type Rule struct {
	Pattern  []rune
	Rom      string
	LCode    string // "" for script-general rules
	Type     string
	Priority int
	Before   Ctx
	After    Ctx

	seq int // declaration order, assigned by the store
}

// Match is one candidate produced by a lookup: a rule (or provider) whose
// pattern matches the window starting at its first codepoint.
type Match struct {
	Len          int
	Rom          string
	Type         string
	Priority     int
	LangSpecific bool
	Seq          int
}

// Provider synthesizes matches for codepoints the static tables do not
// enumerate, such as Hangul syllable decomposition and pinyin readings.
type Provider interface {
	Name() string
	Match(prev rune, window []rune, lcode string) []Match
}

// providerSeqBase keeps provider matches after declared rules when every
// other tie-break is equal.
const providerSeqBase = 1 << 20

// Store is the indexed, read-only rule collection.
type Store struct {
	general   map[rune][]*Rule
	byLang    map[string]map[rune][]*Rule
	providers []Provider
	nextSeq   int
}

// NewStore builds the store with the built-in rule set and providers.
func NewStore() *Store {
	s := &Store{
		general: make(map[rune][]*Rule),
		byLang:  make(map[string]map[rune][]*Rule),
	}
	s.loadLetters()
	s.loadKana()
	s.loadDevanagari()
	s.loadPunctuation()
	s.loadDigits()
	s.providers = []Provider{newHangulProvider(), newPinyinProvider()}
	return s
}

func (s *Store) add(r Rule) {
	if len(r.Pattern) == 0 {
		return
	}
	r.seq = s.nextSeq
	s.nextSeq++
	first := r.Pattern[0]
	if r.LCode != "" {
		bucket, ok := s.byLang[r.LCode]
		if !ok {
			bucket = make(map[rune][]*Rule)
			s.byLang[r.LCode] = bucket
		}
		bucket[first] = append(bucket[first], &r)
		return
	}
	s.general[first] = append(s.general[first], &r)
}

// addMap loads a pattern->romanization table. Keys are sorted first so that
// declaration order (and with it the final tie-break) is reproducible.
func (s *Store) addMap(lcode, typ string, priority int, m map[string]string) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		s.add(Rule{Pattern: []rune(k), Rom: m[k], LCode: lcode, Type: typ, Priority: priority})
	}
}

// Lookup returns every candidate whose pattern matches the start of window.
// prev is the codepoint before the window (0 at the start of input). Results
// are ordered language-specific first, then longer patterns, then higher
// priority, then declaration order.
func (s *Store) Lookup(prev rune, window []rune, lcode string) []Match {
	if len(window) == 0 {
		return nil
	}
	var out []Match
	if lcode != "" {
		if bucket, ok := s.byLang[lcode]; ok {
			out = s.collect(out, bucket[window[0]], prev, window, true)
		}
	}
	out = s.collect(out, s.general[window[0]], prev, window, false)
	for i, p := range s.providers {
		for _, m := range p.Match(prev, window, lcode) {
			m.Seq = providerSeqBase + i
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.LangSpecific != b.LangSpecific {
			return a.LangSpecific
		}
		if a.Len != b.Len {
			return a.Len > b.Len
		}
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		return a.Seq < b.Seq
	})
	return out
}

func (s *Store) collect(out []Match, rules []*Rule, prev rune, window []rune, langSpecific bool) []Match {
	for _, r := range rules {
		if !patternMatches(r.Pattern, window) {
			continue
		}
		if r.Before == CtxBoundary && !isBoundary(prev) {
			continue
		}
		if r.After == CtxBoundary {
			var next rune
			if len(window) > len(r.Pattern) {
				next = window[len(r.Pattern)]
			}
			if !isBoundary(next) {
				continue
			}
		}
		out = append(out, Match{
			Len:          len(r.Pattern),
			Rom:          r.Rom,
			Type:         r.Type,
			Priority:     r.Priority,
			LangSpecific: langSpecific,
			Seq:          r.seq,
		})
	}
	return out
}

func patternMatches(pattern, window []rune) bool {
	if len(pattern) > len(window) {
		return false
	}
	for i, r := range pattern {
		if window[i] != r {
			return false
		}
	}
	return true
}

func isBoundary(r rune) bool {
	return r == 0 || !unicode.IsLetter(r)
}
