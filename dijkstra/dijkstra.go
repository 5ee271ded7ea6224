// Package dijkstra implements a reusable single-source shortest-path
// engine over graph.Graph, reset in O(dirty) between runs rather than
// O(n), so that running it once per vertex (as hub-labeling
// construction does) costs O(sum of dirty sizes), not O(n^2).
package dijkstra

import (
	"fmt"

	"github.com/hublabel/hl/graph"
	"github.com/hublabel/hl/heap"
)

// defaultArity is the branching factor used for the internal priority
// queue; 4 matches the original reference implementation's default.
const defaultArity = 4

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithUSPTieBreak enables the unique-shortest-path tie-break rule used
// by the UHHL construction: among equal-distance candidates, prefer
// fewer hops, then a smaller parent id. Without this option, ties are
// broken arbitrarily by relaxation order, and the resulting shortest
// path tree need not be the same across runs or unique.
func WithUSPTieBreak() Option {
	return func(e *Engine) { e.usp = true }
}

// Engine computes single-source shortest paths over a fixed graph. A
// zero Engine is not usable; construct one with New.
type Engine struct {
	g     *graph.Graph
	usp   bool
	queue *heap.Heap[graph.Distance]

	distance []graph.Distance
	parent   []graph.Vertex
	hops     []int // only meaningful when usp is set

	dirty   []graph.Vertex
	isDirty []bool
}

// New returns an Engine bound to g, ready to run from any source.
func New(g *graph.Graph, opts ...Option) *Engine {
	n := g.N()
	e := &Engine{
		g:        g,
		queue:    heap.New[graph.Distance](n, defaultArity),
		distance: make([]graph.Distance, n),
		parent:   make([]graph.Vertex, n),
		hops:     make([]int, n),
		isDirty:  make([]bool, n),
	}
	for i := range e.distance {
		e.distance[i] = graph.Infinity
		e.parent[i] = graph.None
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Distance returns the last computed distance to v, or graph.Infinity
// if v was not reached by the most recent Run.
func (e *Engine) Distance(v graph.Vertex) graph.Distance { return e.distance[v] }

// Parent returns v's parent in the shortest-path tree built by the
// most recent Run, or graph.None if v is the source or unreached.
func (e *Engine) Parent(v graph.Vertex) graph.Vertex { return e.parent[v] }

// clear resets only the vertices touched since the previous Run,
// restoring distance/parent/hops to their "unreached" state in
// O(len(dirty)).
func (e *Engine) clear() {
	for _, v := range e.dirty {
		e.distance[v] = graph.Infinity
		e.parent[v] = graph.None
		e.hops[v] = 0
		e.isDirty[v] = false
	}
	e.dirty = e.dirty[:0]
	e.queue.Clear()
}

func (e *Engine) update(v graph.Vertex, d graph.Distance, p graph.Vertex, hops int) {
	e.distance[v] = d
	e.parent[v] = p
	e.hops[v] = hops
	if !e.isDirty[v] {
		e.isDirty[v] = true
		e.dirty = append(e.dirty, v)
	}
	_ = e.queue.Update(int(v), d)
}

// Run computes shortest-path distances from s, following forward arcs
// when forward is true and reverse arcs otherwise. It panics if a
// relaxation does not strictly increase the distance or reaches
// graph.Infinity, mirroring the original's assert(dd > d && dd < infty):
// besides an overflow of graph.Distance, this also rejects any
// zero-length arc on a path from s.
func (e *Engine) Run(s graph.Vertex, forward bool) {
	e.clear()
	e.update(s, 0, graph.None, 0)

	for {
		uID, d, ok := e.queue.Pop()
		if !ok {
			break
		}
		u := graph.Vertex(uID)
		if d > e.distance[u] {
			continue // stale entry already superseded
		}
		for _, a := range e.g.Side(u, forward) {
			dd := d + a.Length
			if dd <= d || dd >= graph.Infinity {
				panic(fmt.Sprintf("dijkstra: relaxation overflow at vertex %d", u))
			}
			if e.shouldRelax(u, a.Head, dd) {
				e.update(a.Head, dd, u, e.hops[u]+1)
			}
		}
	}
}

// shouldRelax decides whether the candidate distance dd via u improves
// on head's current best. Without USP tie-breaking this is a strict
// improvement test; with it, equal distances are broken by fewer hops
// then by smaller parent id, guaranteeing a unique shortest-path tree
// when the underlying graph has unique shortest distances.
func (e *Engine) shouldRelax(u, head graph.Vertex, dd graph.Distance) bool {
	if dd < e.distance[head] {
		return true
	}
	if !e.usp || dd != e.distance[head] {
		return false
	}
	hu, hh := e.hops[u]+1, e.hops[head]
	if hu != hh {
		return hu < hh
	}
	return u < e.parent[head]
}
