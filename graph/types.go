// Package graph provides an immutable, compressed representation of a
// weighted directed (or mixed directed/undirected) graph, tuned for
// repeated single-source shortest-path queries over the same topology.
//
// A Graph is built once via Builder and never mutated afterwards: all
// arcs incident to a vertex are stored contiguously, split into a
// reverse-only run, a bidirectional run, and a forward-only run, so
// that iterating "all arcs usable for a forward relaxation" or "all
// arcs usable for a reverse relaxation" from a vertex is a single
// contiguous slice with no branching per arc.
package graph

import "errors"

// Vertex identifies a graph vertex by its dense index in [0, N).
type Vertex int

// Distance is an arc length or shortest-path distance. Finite values
// are non-negative; None and Infinity are reserved sentinels.
type Distance int64

const (
	// None is the sentinel "no such vertex" / "no parent" value.
	None Vertex = -1

	// Infinity represents an unreachable distance. It is chosen well
	// below the overflow point of Distance so that Infinity plus any
	// single finite arc length still does not overflow; callers that
	// relax an edge must still assert the sum did not overflow before
	// trusting it (see dijkstra.Engine.Run).
	Infinity Distance = 1 << 55
)

// ErrNegativeLength is returned when a caller attempts to add an arc
// with a negative length; this module only supports non-negative
// weights, as required by Dijkstra-based construction.
var ErrNegativeLength = errors.New("graph: arc length must be non-negative")

// ErrVertexOutOfRange is returned when a vertex index is outside [0, N).
var ErrVertexOutOfRange = errors.New("graph: vertex out of range")

// Arc is one directed edge endpoint as stored in a vertex's adjacency
// run: Head is the other endpoint, Length its weight, and Forward/
// Reverse record whether this stored arc should be followed when
// relaxing forward (owner -> Head) and/or reverse (Head -> owner)
// respectively. An arc with both flags set represents either a true
// undirected edge or a pair of anti-parallel directed edges of equal
// length collapsed into one record.
type Arc struct {
	Head    Vertex
	Length  Distance
	Forward bool
	Reverse bool
}

// Graph is an immutable compressed-arc graph over vertices [0, N).
type Graph struct {
	n    int
	arcs []Arc

	// fwdBegin/fwdEnd and revBegin/revEnd index into arcs per vertex.
	fwdBegin, fwdEnd []int
	revBegin, revEnd []int
}

// N returns the number of vertices.
func (g *Graph) N() int { return g.n }

// M returns the number of stored arcs. Every arc is stored once at each
// endpoint, so a single directed arc or undirected edge between u and v
// counts 2 here; a pair of anti-parallel arcs of equal length also
// counts 2, since it merges into one bidirectional record per endpoint.
func (g *Graph) M() int { return len(g.arcs) }

// Forward returns the contiguous slice of arcs to follow when relaxing
// forward from v: bidirectional arcs followed by forward-only arcs,
// per the storage invariant established at construction.
func (g *Graph) Forward(v Vertex) []Arc {
	return g.arcs[g.fwdBegin[v]:g.fwdEnd[v]]
}

// Reverse returns the contiguous slice of arcs to follow when relaxing
// in the reverse direction from v: reverse-only arcs followed by
// bidirectional arcs.
func (g *Graph) Reverse(v Vertex) []Arc {
	return g.arcs[g.revBegin[v]:g.revEnd[v]]
}

// Side returns Forward(v) when forward is true, Reverse(v) otherwise.
// It exists so call sites parameterized on direction (dijkstra.Engine,
// sp.Table) do not need their own branch.
func (g *Graph) Side(v Vertex, forward bool) []Arc {
	if forward {
		return g.Forward(v)
	}
	return g.Reverse(v)
}

// Degree returns the number of arcs incident to v, counting a
// bidirectional/undirected arc once per side, matching the "total
// degree" notion used by degree-based orderings (order.ByDegree).
func (g *Graph) Degree(v Vertex) int {
	return len(g.Forward(v)) + len(g.Reverse(v))
}
