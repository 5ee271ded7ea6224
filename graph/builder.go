package graph

import "sort"

// Builder accumulates arcs and produces an immutable Graph. A zero
// Builder is not usable; construct one with NewBuilder.
//
// Usage:
//
//	b := graph.NewBuilder(n)
//	for _, e := range edges {
//		if err := b.AddArc(e.U, e.V, e.W, e.Undirected); err != nil {
//			return err
//		}
//	}
//	g, err := b.Build()
type Builder struct {
	n   int
	tmp []tmpArc
}

type tmpArc struct {
	owner   Vertex
	head    Vertex
	length  Distance
	forward bool
	reverse bool
}

// NewBuilder returns a Builder for a graph with n vertices, indexed
// [0, n).
func NewBuilder(n int) *Builder {
	return &Builder{n: n}
}

// AddArc records one edge between u and v of the given non-negative
// length. When undirected is false the edge is directed u -> v; when
// true it is usable in both directions. AddArc never errors on
// duplicate or dominated arcs: those are resolved during Build.
func (b *Builder) AddArc(u, v Vertex, length Distance, undirected bool) error {
	if u < 0 || int(u) >= b.n || v < 0 || int(v) >= b.n {
		return ErrVertexOutOfRange
	}
	if length < 0 {
		return ErrNegativeLength
	}
	b.tmp = append(b.tmp,
		tmpArc{owner: u, head: v, length: length, forward: true, reverse: undirected},
		tmpArc{owner: v, head: u, length: length, forward: undirected, reverse: true},
	)
	return nil
}

// dedupKey groups arcs that describe the exact same directed role
// (owner, head, forward, reverse) so that duplicate insertions of the
// same edge collapse to the shorter of the two lengths: a longer arc
// between the same ordered pair in the same role is always dominated
// for shortest-path purposes and can be dropped outright.
type dedupKey struct {
	owner, head      Vertex
	forward, reverse bool
}

// Build finalizes the accumulated arcs into a Graph. It:
//
//  1. collapses duplicate (owner, head, forward, reverse) entries to
//     the minimum length among them (domination removal);
//  2. merges a forward-only and a reverse-only entry that share
//     (owner, head) and an equal length into one bidirectional arc;
//  3. sorts each owner's arcs into reverse-only, then bidirectional,
//     then forward-only runs, and records the per-vertex index ranges
//     used by Forward/Reverse.
func (b *Builder) Build() (*Graph, error) {
	// Stage 1: domination removal.
	best := make(map[dedupKey]Distance, len(b.tmp))
	order := make([]dedupKey, 0, len(b.tmp))
	for _, a := range b.tmp {
		k := dedupKey{a.owner, a.head, a.forward, a.reverse}
		if cur, ok := best[k]; !ok {
			best[k] = a.length
			order = append(order, k)
		} else if a.length < cur {
			best[k] = a.length
		}
	}

	// Stage 2: merge forward-only/reverse-only pairs of equal length
	// that share (owner, head) into one bidirectional record.
	type pairKey struct{ owner, head Vertex }
	byPair := make(map[pairKey][]dedupKey)
	for _, k := range order {
		byPair[pairKey{k.owner, k.head}] = append(byPair[pairKey{k.owner, k.head}], k)
	}

	merged := make([]tmpArc, 0, len(order))
	consumed := make(map[dedupKey]bool, len(order))
	for _, k := range order {
		if consumed[k] {
			continue
		}
		consumed[k] = true
		length := best[k]
		fwd, rev := k.forward, k.reverse
		for _, other := range byPair[pairKey{k.owner, k.head}] {
			if consumed[other] {
				continue
			}
			if best[other] == length && (other.forward != fwd || other.reverse != rev) {
				fwd = fwd || other.forward
				rev = rev || other.reverse
				consumed[other] = true
			}
		}
		merged = append(merged, tmpArc{owner: k.owner, head: k.head, length: length, forward: fwd, reverse: rev})
	}

	// Stage 3: group by owner, sort each group reverse-only < bidirectional
	// < forward-only, then lay out the flat arcs slice and index ranges.
	byOwner := make([][]tmpArc, b.n)
	for _, a := range merged {
		byOwner[a.owner] = append(byOwner[a.owner], a)
	}

	g := &Graph{
		n:        b.n,
		fwdBegin: make([]int, b.n),
		fwdEnd:   make([]int, b.n),
		revBegin: make([]int, b.n),
		revEnd:   make([]int, b.n),
	}
	g.arcs = make([]Arc, 0, len(merged))

	for v := 0; v < b.n; v++ {
		group := byOwner[v]
		sort.SliceStable(group, func(i, j int) bool {
			return direction(group[i]) < direction(group[j])
		})

		revStart := len(g.arcs)
		for _, a := range group {
			g.arcs = append(g.arcs, Arc{Head: a.head, Length: a.length, Forward: a.forward, Reverse: a.reverse})
		}
		revEnd := revStart
		for revEnd < len(g.arcs) && g.arcs[revEnd].Reverse {
			revEnd++
		}

		g.revBegin[v] = revStart
		g.revEnd[v] = revEnd
		g.fwdBegin[v] = firstForward(g.arcs, revStart, len(g.arcs))
		g.fwdEnd[v] = len(g.arcs)
	}

	return g, nil
}

// direction assigns a sort rank so that, within one owner's group,
// reverse-only arcs (0) precede bidirectional arcs (1), which precede
// forward-only arcs (2).
func direction(a tmpArc) int {
	switch {
	case a.reverse && !a.forward:
		return 0
	case a.reverse && a.forward:
		return 1
	default:
		return 2
	}
}

// firstForward returns the index of the first arc with Forward set in
// arcs[lo:hi), or hi if none.
func firstForward(arcs []Arc, lo, hi int) int {
	for i := lo; i < hi; i++ {
		if arcs[i].Forward {
			return i
		}
	}
	return hi
}
