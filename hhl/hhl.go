// Package hhl implements the general-graph greedy hierarchical
// hub-labeling construction: repeatedly select the vertex of minimum
// weight as the next hub, add its shortest-path-tree labels, and
// update every other vertex's remaining cover/weight before selecting
// again. The cover update for one hub is split into a reverse pass and
// a forward pass separated by a barrier, because the forward pass
// writes cover entries the reverse pass (of a different vertex, in the
// same round) may still be reading.
package hhl

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
type WeightKind int

const (
	// PathGreedy ranks by 1 / coverSize: maximize the number of pairs
	// covered per hub.
	PathGreedy WeightKind = iota
	// LabelGreedy ranks by spSize / coverSize: maximize covered pairs
	// per unit of label growth the hub itself would add.
	LabelGreedy
)

// ErrUnknownWeightKind is returned by New when kind is not one of the
// constants above; unlike the original's inconsistent handling (one
// weight function has no default case, the other asserts), this
// package always rejects an invalid kind at construction.
var ErrUnknownWeightKind = errors.New("hhl: unknown weight kind")

const heapArity = 4

// Option configures a Builder.
type Option func(*Builder)

// WithWorkers sets the goroutine count used for the all-pairs distance
// table and for each iteration's parallel cover update. The default is 1.
func WithWorkers(workers int) Option {
	return func(b *Builder) {
		if workers > 0 {
			b.workers = workers
		}
	}
}

// Builder runs the greedy HHL construction over a fixed graph.
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

// weight mirrors the original's weight(v, type): dividing by a
// coverSize of zero yields +Inf (Go's float64 division by zero, like
// C++'s, does not panic), which ranks a fully-covered vertex last in
// the min-heap rather than first. A vertex only reaches coverSize==0
// once every pair it could cover already has a hub; it still needs to
// be selected eventually so its own label entries get written, but
// only after every vertex that still has covering work to do.
func weight(kind WeightKind, coverSize, spSize int) float64 {
	switch kind {
	case PathGreedy:
		return 1 / float64(coverSize)
	default: // LabelGreedy
		return float64(spSize) / float64(coverSize)
	}
}

// partition deals [0, n) round-robin across b.workers goroutines
// (worker w gets w, w+workers, ...) and runs them concurrently, blocking until all finish — the same
// WaitGroup-per-worker idiom used by sp.Build. fn receives its own
// worker index so callers can index into a per-worker scratch pool
// without sharing state across goroutines.
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

// Run selects hubs one at a time in greedy order, filling lab and
// returning the resulting selection order (order[i] is the i-th hub
// chosen, which also becomes its rank/hub id in lab).
func (b *Builder) Run(lab *labeling.Labeling) ([]graph.Vertex, error) {
	n := b.g.N()
	table := sp.Build(b.g, false, b.workers)
	lab.Clear()

	coverSize := make([]int, n)
	spSize := make([]int, n)

	scratches := make([]*sp.Scratch, b.workers)
	for i := range scratches {
		scratches[i] = sp.NewScratch(n)
	}

	b.partition(n, func(worker, vi int) {
		v := graph.Vertex(vi)
		scratch := scratches[worker]
		for u := 0; u < n; u++ {
			d := table.Descendants(graph.Vertex(u), v, true, scratch)
			coverSize[vi] += len(d)
			if u == vi {
				spSize[vi] += len(d)
			}
		}
		spSize[vi] += len(table.Descendants(v, v, false, scratch))
	})

	q := heap.New[float64](n, heapArity)
	for v := 0; v < n; v++ {
		_ = q.Update(v, weight(b.kind, coverSize[v], spSize[v])) // v always in range
	}

	order := make([]graph.Vertex, n)
	selected := make([]bool, n)
	mainScratch := sp.NewScratch(n)

	for rank := 0; rank < n; rank++ {
		wID, _, ok := q.Pop()
		if !ok {
			return nil, fmt.Errorf("hhl: heap exhausted before selecting all hubs")
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
				scratch := scratches[worker]
				d := table.Descendants(v, w, forward, scratch)
				spSize[vi] -= len(d)
				if forward {
					for _, x := range d {
						for _, y := range table.Ascendants(v, x, forward, scratch) {
							diffs[worker][y]++
						}
						table.SetCover(v, x)
					}
				}
			})
		}

		for worker := range diffs {
			for y := 0; y < n; y++ {
				coverSize[y] -= diffs[worker][y]
			}
		}
		if coverSize[w] != 0 || spSize[w] != 0 {
			panic(fmt.Sprintf("hhl: invariant violated: cover/sp size of selected hub %d did not reach zero (cover=%d sp=%d)", w, coverSize[w], spSize[w]))
		}

		for v := 0; v < n; v++ {
			if selected[v] {
				continue
			}
			_ = q.Update(v, weight(b.kind, coverSize[v], spSize[v])) // v always in range
		}
	}

	lab.Sort()
	return order, nil
}
