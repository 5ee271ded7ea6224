// Package ghl implements the GHLp (general greedy hub labeling,
// p-norm) construction: instead of selecting one hub vertex per round
// like hhl/uhhl, it selects one "center graph" (a vertex v plus every
// shortest path through v) per round, covers the densest affordable
// subgraph of that center graph — found by an approximate maximum
// density subgraph (AMDS) search — and lazily re-evaluates only the
// vertex whose density estimate may have gone stale, bounded by a
// staleness factor alpha. This gives an O(log n)-approximation-optimal
// labeling at a fraction of the cost of re-scanning every vertex every
// round.
package ghl

import (
	"math"
	"sort"
	"sync"

	"github.com/hublabel/hl/graph"
	"github.com/hublabel/hl/heap"
	"github.com/hublabel/hl/labeling"
	"github.com/hublabel/hl/sp"
)

const (
	outerArity = 4
	amdsArity  = 4
)

// Option configures a Builder.
type Option func(*Builder)

// WithWorkers sets the goroutine count used for the distance table
// build and for the batched lazy-update loop. The default is 1, which
// also selects the fully sequential reference path (runSequential)
// over the batched one.
func WithWorkers(workers int) Option {
	return func(b *Builder) {
		if workers > 0 {
			b.workers = workers
		}
	}
}

// WithAlpha sets the staleness bound: a center graph's cached density
// is trusted until a fresh AMDS search proves it has dropped by more
// than a factor of alpha. Must be > 1; the default is 1.1.
func WithAlpha(alpha float64) Option {
	return func(b *Builder) {
		if alpha > 1 {
			b.alpha = alpha
		}
	}
}

// WithP sets the p-norm exponent used for vertex weighting. The
// default is 1, which reduces the marginal weight of adding v to a
// label from size s to the original's unweighted pow(s+1,1)-pow(s,1)=1.
func WithP(p float64) Option {
	return func(b *Builder) { b.p = p }
}

// Builder runs the greedy GHLp construction over a fixed graph.
type Builder struct {
	g       *graph.Graph
	workers int
	alpha   float64
	p       float64
}

// New returns a Builder for g.
func New(g *graph.Graph, opts ...Option) *Builder {
	b := &Builder{g: g, workers: 1, alpha: 1.1, p: 1.0}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Run builds a GHLp labeling into lab. It dispatches to the batched,
// multi-goroutine lazy-update loop when workers > 1, or to the fully
// sequential reference path otherwise; both implement the same
// algorithm and produce a valid (though not necessarily
// bit-identical) labeling.
func (b *Builder) Run(lab *labeling.Labeling) {
	n := b.g.N()
	table := sp.Build(b.g, false, b.workers)
	proxy := newProxyLabeling(n)
	proxy.setLabeling(lab)

	density := make([]float64, n)
	outer := heap.New[float64](n, outerArity)

	amdsPool := make([]*amds, b.workers)
	for i := range amdsPool {
		amdsPool[i] = newAMDS(n, table, proxy)
	}

	var mu sync.Mutex
	b.partitionWorkers(n, func(worker, v int) {
		r := amdsPool[worker].run(graph.Vertex(v), b.p, math.MaxFloat64)
		mu.Lock()
		density[v] = r
		_ = outer.Update(v, 1/r)
		mu.Unlock()
	})

	if b.workers <= 1 {
		b.runSequential(outer, amdsPool[0], density, table)
	} else {
		b.runBatched(outer, amdsPool, density, table)
	}

	lab.Sort()
}

// runSequential mirrors the original's single-threaded reference
// path: pop one center graph at a time, re-run its AMDS search with a
// staleness floor, and commit the cover only if the refreshed density
// still exceeds that floor by more than floating-point noise.
func (b *Builder) runSequential(outer *heap.Heap[float64], a *amds, density []float64, table *sp.Table) {
	for outer.Len() > 0 {
		v, _, ok := outer.Pop()
		if !ok {
			break
		}
		floor := density[v] / b.alpha
		r := a.run(graph.Vertex(v), b.p, floor)
		if r <= epsilon {
			continue
		}
		density[v] = r
		_ = outer.Update(v, 1/r)
		if r-floor > epsilon {
			increaseCover(table, a, graph.Vertex(v))
		}
	}
}

// epsilon mirrors std::numeric_limits<double>::epsilon() as used for
// the original's floating-point staleness comparisons.
const epsilon = 2.220446049250313e-16

// runBatched mirrors the original's multi-thread lazy-update loop:
// each round pops up to b.workers center graphs, refreshes every one
// of them concurrently against its own staleness floor (density[v] /
// alpha, captured before density[v] is overwritten — the same
// pre-update floor runSequential compares against), re-sorts the
// refreshed batch by density, and commits the cover of only the
// single best-refreshed center graph in the batch — exactly one
// cover-increasing write per round, avoiding the need to reconcile
// conflicting cover updates from several center graphs at once.
func (b *Builder) runBatched(outer *heap.Heap[float64], amdsPool []*amds, density []float64, table *sp.Table) {
	type slot struct {
		v       graph.Vertex
		present bool
		r       float64
		floor   float64
		worker  int
	}

	for outer.Len() > 0 {
		batch := make([]slot, b.workers)
		for i := 0; i < b.workers && outer.Len() > 0; i++ {
			id, _, ok := outer.Pop()
			if !ok {
				break
			}
			batch[i] = slot{v: graph.Vertex(id), present: true, worker: i}
		}

		var wg sync.WaitGroup
		for i := range batch {
			if !batch[i].present {
				continue
			}
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				v := batch[i].v
				batch[i].floor = density[v] / b.alpha
				batch[i].r = amdsPool[i].run(v, b.p, batch[i].floor)
			}(i)
		}
		wg.Wait()

		sort.SliceStable(batch, func(i, j int) bool { return batch[i].r > batch[j].r })

		for i := range batch {
			if !batch[i].present || batch[i].r <= epsilon {
				continue
			}
			v := batch[i].v
			density[v] = batch[i].r
			_ = outer.Update(int(v), 1/density[v])
		}

		if len(batch) > 0 && batch[0].present {
			if batch[0].r-batch[0].floor > epsilon {
				increaseCover(table, amdsPool[batch[0].worker], batch[0].v)
			}
		}
	}
}

// partitionWorkers splits [0, n) across b.workers goroutines, each
// calling fn with its own worker index and assigned vertex, blocking
// until all finish — the same WaitGroup-per-worker idiom used by
// sp.Build, hhl.Builder, and uhhl.Builder.
func (b *Builder) partitionWorkers(n int, fn func(worker, v int)) {
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

// increaseCover adds v's center graph's densest-subgraph membership
// (as last computed by a.run) to proxy's labels and the table's cover
// matrix.
func increaseCover(table *sp.Table, a *amds, v graph.Vertex) {
	for _, forward := range [2]bool{false, true} {
		for u := 0; u < a.n; u++ {
			uu := graph.Vertex(u)
			if !a.isIn(uu, forward) {
				continue
			}
			dist := table.Distance(uu, v)
			if !forward {
				dist = table.Distance(v, uu)
			}
			a.proxy.add(uu, forward, v, dist)
			if !forward {
				continue
			}
			for _, w := range table.Descendants(uu, v, true, a.scratch) {
				if a.isIn(w, false) {
					table.SetCover(uu, w)
				}
			}
		}
	}
}
