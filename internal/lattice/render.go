package lattice

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// The four output shapes all project the same lattice and selected path;
// nothing is recomputed per format.

// RenderString concatenates the selected path's edge texts: the canonical
// romanization.
func RenderString(path []Edge) string {
	return strings.Join(lo.Map(path, func(e Edge, _ int) string { return e.Text }), "")
}

// RenderEdges returns the selected path's edges in order.
func RenderEdges(path []Edge) []Edge {
	out := make([]Edge, len(path))
	copy(out, path)
	return out
}

// RenderAlts returns, for each start position on the selected path, the
// candidate edges at that position whose end also falls on a path boundary,
// cheapest first. The winner leads its group, followed by the alternatives
// the path selection rejected; edges crossing into a neighboring span are
// excluded so the groups stay consistent with the path's segmentation.
func (l *Lattice) RenderAlts(path []Edge) []Edge {
	boundary := make(map[int]bool, len(path)+1)
	boundary[0] = true
	for _, pe := range path {
		boundary[pe.End] = true
	}
	var out []Edge
	for _, pe := range path {
		var alts []Edge
		for _, e := range l.starts[pe.Start] {
			if boundary[e.End] {
				alts = append(alts, e)
			}
		}
		sort.SliceStable(alts, func(i, j int) bool {
			if alts[i].cost != alts[j].cost {
				return alts[i].cost < alts[j].cost
			}
			return tieBetter(&alts[i], &alts[j])
		})
		out = append(out, alts...)
	}
	return out
}

// RenderAll returns the entire edge set with no path selection applied.
func (l *Lattice) RenderAll() []Edge {
	var out []Edge
	for p := range l.starts {
		out = append(out, l.starts[p]...)
	}
	return out
}
