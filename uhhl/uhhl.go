// Package uhhl implements the unique-shortest-path specialization of
// the greedy hierarchical hub-labeling construction: when the
// underlying graph has a unique shortest path between every reachable
// pair (guaranteed by dijkstra's USP tie-break), a vertex's set of
// shortest-path descendants forms an actual tree rather than a DAG,
// and the coverage contribution of every node in that tree can be
// folded bottom-up in one linear pass (subtree counting) instead of
// the ancestor-walk hhl needs per descendant. This trades a constant
// factor of implementation complexity for an asymptotically cheaper
// cover update.
package uhhl

import (
	"errors"
	"fmt"
	"sync"

	"github.com/hublabel/hl/graph"
	"github.com/hublabel/hl/heap"
	"github.com/hublabel/hl/labeling"
	"github.com/hublabel/hl/sp"
)

// WeightKind selects the greedy objective used to rank candidate hubs.
// It mirrors hhl.WeightKind; the two are kept as distinct types since
// they are never interchanged across packages.
type WeightKind int

const (
	PathGreedy  WeightKind = iota
	LabelGreedy
)

// ErrUnknownWeightKind is returned by New for any kind outside the
// two constants above.
var ErrUnknownWeightKind = errors.New("uhhl: unknown weight kind")

const heapArity = 4

// Option configures a Builder.
type Option func(*Builder)

// WithWorkers sets the goroutine count used for the all-pairs table
// build and each round's cover update. The default is 1.
func WithWorkers(workers int) Option {
	return func(b *Builder) {
		if workers > 0 {
			b.workers = workers
		}
	}
}

// Builder runs the greedy USP hub-labeling construction over a fixed
// graph.
type Builder struct {
	g       *graph.Graph
	kind    WeightKind
	workers int
}

// New returns a Builder for g using the given weight kind.
func New(g *graph.Graph, kind WeightKind, opts ...Option) (*Builder, error) {
	if kind != PathGreedy && kind != LabelGreedy {
		return nil, ErrUnknownWeightKind
	}
	b := &Builder{g: g, kind: kind, workers: 1}
	for _, o := range opts {
		o(b)
	}
	return b, nil
}

// weight mirrors hhl's weight: dividing by coverSize==0 yields +Inf,
// ranking a fully-covered vertex last rather than first in the
// min-heap, matching the original's 1.0/cover_size[v] behavior.
func weight(kind WeightKind, coverSize, spSize int) float64 {
	if kind == PathGreedy {
		return 1 / float64(coverSize)
	}
	return float64(spSize) / float64(coverSize)
}

func (b *Builder) partition(n int, fn func(worker, v int)) {
	if b.workers < 1 {
		b.workers = 1
	}
	var wg sync.WaitGroup
	for w := 0; w < b.workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for v := worker; v < n; v += b.workers {
				fn(worker, v)
			}
		}(w)
	}
	wg.Wait()
}

// subtreeFold walks d (a list returned by table.Descendants(apex, apex,
// forward) or table.Descendants(apex, w, forward), apex's own tree or
// one of its subtrees) from the end backwards, accumulating each
// node's subtree size bottom-up using apex's parent table, and calls
// visit(q, size) for every node once its own subtree size is final.
// Because Descendants returns nodes in BFS order, every node's parent
// always appears earlier in d, so a single backward pass suffices.
func subtreeFold(table *sp.Table, apex graph.Vertex, forward bool, d []graph.Vertex, scratch []int, visit func(q graph.Vertex, size int, isRoot bool)) {
	for i := len(d) - 1; i >= 0; i-- {
		q := d[i]
		scratch[q]++
		visit(q, scratch[q], i == 0)
		if i > 0 {
			p := table.Parent(apex, q, forward)
			scratch[p] += scratch[q]
		}
		scratch[q] = 0
	}
}

// Run selects hubs one at a time in greedy order, filling lab and
// returning the resulting selection order.
func (b *Builder) Run(lab *labeling.Labeling) ([]graph.Vertex, error) {
	n := b.g.N()
	table := sp.Build(b.g, true, b.workers)
	lab.Clear()

	coverSize := make([]int, n)
	spSize := make([]int, n)

	scratches := make([][]int, b.workers)
	spScratches := make([]*sp.Scratch, b.workers)
	for i := range scratches {
		scratches[i] = make([]int, n)
		spScratches[i] = sp.NewScratch(n)
	}
	diffs0 := make([][]int, b.workers)
	for i := range diffs0 {
		diffs0[i] = make([]int, n)
	}

	b.partition(n, func(worker, si int) {
		s := graph.Vertex(si)
		d := table.Descendants(s, s, true, spScratches[worker])
		subtreeFold(table, s, true, d, scratches[worker], func(q graph.Vertex, size int, isRoot bool) {
			diffs0[worker][q] += size
		})
		spSize[si] = len(d) + len(table.Descendants(s, s, false, spScratches[worker]))
	})
	for worker := range diffs0 {
		for q := 0; q < n; q++ {
			coverSize[q] += diffs0[worker][q]
		}
	}

	q := heap.New[float64](n, heapArity)
	for v := 0; v < n; v++ {
		_ = q.Update(v, weight(b.kind, coverSize[v], spSize[v]))
	}

	order := make([]graph.Vertex, n)
	selected := make([]bool, n)
	mainScratch := sp.NewScratch(n)

	for rank := 0; rank < n; rank++ {
		wID, _, ok := q.Pop()
		if !ok {
			return nil, fmt.Errorf("uhhl: heap exhausted before selecting all hubs")
		}
		w := graph.Vertex(wID)
		order[rank] = w
		selected[w] = true

		for _, forward := range [2]bool{false, true} {
			for _, d := range table.Descendants(w, w, forward, mainScratch) {
				dist := table.Distance(w, d)
				if !forward {
					dist = table.Distance(d, w)
				}
				lab.Add(d, !forward, graph.Vertex(rank), dist)
			}
		}

		diffs := make([][]int, b.workers)
		for i := range diffs {
			diffs[i] = make([]int, n)
		}

		for _, forward := range [2]bool{false, true} {
			b.partition(n, func(worker, vi int) {
				v := graph.Vertex(vi)
				d := table.Descendants(v, w, forward, spScratches[worker])
				spSize[vi] -= len(d)
				subtreeFold(table, v, forward, d, scratches[worker], func(q graph.Vertex, size int, isRoot bool) {
					if !isRoot || forward {
						diffs[worker][q] -= size
					}
					if forward {
						table.SetCover(v, q)
					}
				})
			})
		}

		for worker := range diffs {
			for y := 0; y < n; y++ {
				coverSize[y] += diffs[worker][y]
			}
		}
		if coverSize[w] != 0 || spSize[w] != 0 {
			panic(fmt.Sprintf("uhhl: invariant violated: cover/sp size of selected hub %d did not reach zero (cover=%d sp=%d)", w, coverSize[w], spSize[w]))
		}

		for v := 0; v < n; v++ {
			if selected[v] {
				continue
			}
			_ = q.Update(v, weight(b.kind, coverSize[v], spSize[v]))
		}
	}

	lab.Sort()
	return order, nil
}
