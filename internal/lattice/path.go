package lattice

import "math"

// BestPath computes the minimum-cost edge sequence tiling [0,N). One
// forward sweep suffices because edges only go forward. Ties are broken the
// same way lookups order candidates: longer match, then higher priority,
// then earlier declaration, with fallback edges last.
func (l *Lattice) BestPath() ([]Edge, error) {
	n := l.N
	if n == 0 {
		return nil, nil
	}

	dist := make([]int, n+1)
	pred := make([]*Edge, n+1)
	for i := 1; i <= n; i++ {
		dist[i] = math.MaxInt
	}

	for i := 0; i < n; i++ {
		if dist[i] == math.MaxInt {
			continue
		}
		for j := range l.starts[i] {
			e := &l.starts[i][j]
			nd := dist[i] + e.cost
			switch {
			case nd < dist[e.End]:
				dist[e.End] = nd
				pred[e.End] = e
			case nd == dist[e.End] && tieBetter(e, pred[e.End]):
				pred[e.End] = e
			}
		}
	}

	if pred[n] == nil {
		return nil, ErrNoPath
	}

	var path []Edge
	for at := n; at > 0; {
		e := pred[at]
		if e == nil {
			return nil, ErrNoPath
		}
		path = append(path, *e)
		at = e.Start
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

func tieBetter(a, b *Edge) bool {
	if b == nil {
		return true
	}
	if a.fallback != b.fallback {
		return b.fallback
	}
	if al, bl := a.End-a.Start, b.End-b.Start; al != bl {
		return al > bl
	}
	if a.priority != b.priority {
		return a.priority > b.priority
	}
	return a.seq < b.seq
}
