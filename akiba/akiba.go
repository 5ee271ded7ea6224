// Package akiba implements the pruned-Dijkstra hub-labeling
// construction algorithm: given a fixed vertex order, it runs one
// Dijkstra per rank, pruning any relaxation already covered by a
// higher-ranked hub's label. Labels accumulate with the rank as the
// hub identifier, which keeps every vertex's label list naturally
// sorted without a separate Sort pass, since ranks are visited in
// increasing order.
package akiba

import (
	"fmt"

	"github.com/hublabel/hl/graph"
	"github.com/hublabel/hl/heap"
	"github.com/hublabel/hl/labeling"
)

const defaultArity = 4

// Builder runs the pruned-Dijkstra construction over a fixed graph,
// reusing its internal heap and distance array across both directions
// of every rank the way dijkstra.Engine does.
type Builder struct {
	g       *graph.Graph
	queue   *heap.Heap[graph.Distance]
	distance []graph.Distance
	dirty    []graph.Vertex
	isDirty  []bool
}

// New returns a Builder bound to g.
func New(g *graph.Graph) *Builder {
	n := g.N()
	b := &Builder{
		g:        g,
		queue:    heap.New[graph.Distance](n, defaultArity),
		distance: make([]graph.Distance, n),
		isDirty:  make([]bool, n),
	}
	for i := range b.distance {
		b.distance[i] = graph.Infinity
	}
	return b
}

func (b *Builder) clear() {
	for _, v := range b.dirty {
		b.distance[v] = graph.Infinity
		b.isDirty[v] = false
	}
	b.dirty = b.dirty[:0]
	b.queue.Clear()
}

func (b *Builder) update(v graph.Vertex, d graph.Distance) {
	b.distance[v] = d
	if !b.isDirty[v] {
		b.isDirty[v] = true
		b.dirty = append(b.dirty, v)
	}
	_ = b.queue.Update(int(v), d)
}

// Run builds lab from order: order must be a permutation of [0, n),
// assigning the hub identifier i to order[i]. It clears lab first.
func (b *Builder) Run(order []graph.Vertex, lab *labeling.Labeling) error {
	if len(order) != b.g.N() {
		return fmt.Errorf("akiba: order length %d does not match graph size %d", len(order), b.g.N())
	}
	lab.Clear()
	for i, v := range order {
		b.iteration(graph.Vertex(i), v, false, lab)
		b.iteration(graph.Vertex(i), v, true, lab)
	}
	return nil
}

// iteration runs one pruned Dijkstra from v in the given direction,
// recording hub rank into every vertex it reaches on the opposite
// label side, and pruning any relaxation already covered by an
// earlier (lower-ranked, hence already-inserted) hub.
func (b *Builder) iteration(rank, v graph.Vertex, forward bool, lab *labeling.Labeling) {
	b.clear()
	b.update(v, 0)

	for {
		u, d, ok := b.queue.Pop()
		if !ok {
			break
		}
		uv := graph.Vertex(u)
		if d > b.distance[uv] {
			continue
		}
		lab.Add(uv, !forward, rank, d)

		for _, a := range b.g.Side(uv, forward) {
			dd := d + a.Length
			if dd <= d || dd >= graph.Infinity {
				panic(fmt.Sprintf("akiba: relaxation overflow at vertex %d", uv))
			}
			if dd < b.distance[a.Head] && dd < lab.Query(v, a.Head, forward) {
				b.update(a.Head, dd)
			}
		}
	}
}
