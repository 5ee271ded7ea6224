package ghl

import (
	"github.com/hublabel/hl/graph"
	"github.com/hublabel/hl/labeling"
)

// proxyLabeling wraps a labeling.Labeling with an O(1) "is v already
// in u's label" lookup, so AMDS center-graph searches can skip
// vertices that would add nothing to the labeling.
type proxyLabeling struct {
	lab     *labeling.Labeling
	n       int
	inLabel [2][][]bool // inLabel[forwardIdx][v][u]
}

func forwardIdx(forward bool) int {
	if forward {
		return 1
	}
	return 0
}

func newProxyLabeling(n int) *proxyLabeling {
	p := &proxyLabeling{n: n}
	for s := 0; s < 2; s++ {
		p.inLabel[s] = make([][]bool, n)
		for v := 0; v < n; v++ {
			p.inLabel[s][v] = make([]bool, n)
		}
	}
	return p
}

// setLabeling resets the proxy's membership tracking and attaches lab
// as the labeling it mirrors, clearing lab itself.
func (p *proxyLabeling) setLabeling(lab *labeling.Labeling) {
	p.clear()
	lab.Clear()
	p.lab = lab
}

// add records that v belongs in u's forward (or reverse) label at
// distance d, unless it is already there.
func (p *proxyLabeling) add(u graph.Vertex, forward bool, v graph.Vertex, d graph.Distance) {
	s := forwardIdx(forward)
	if !p.inLabel[s][v][u] {
		p.lab.Add(u, forward, v, d)
		p.inLabel[s][v][u] = true
	}
}

// size returns u's current forward (or reverse) label list length.
func (p *proxyLabeling) size(u graph.Vertex, forward bool) int {
	if forward {
		return len(p.lab.Forward(u))
	}
	return len(p.lab.Reverse(u))
}

// isInLabel reports whether v is already in u's forward (or reverse)
// label.
func (p *proxyLabeling) isInLabel(u graph.Vertex, forward bool, v graph.Vertex) bool {
	return p.inLabel[forwardIdx(forward)][v][u]
}

func (p *proxyLabeling) clear() {
	for s := 0; s < 2; s++ {
		for v := 0; v < p.n; v++ {
			row := p.inLabel[s][v]
			for u := range row {
				row[u] = false
			}
		}
	}
}
