package ghl

import (
	"math"

	"github.com/hublabel/hl/graph"
	"github.com/hublabel/hl/heap"
	"github.com/hublabel/hl/sp"
)

// amds finds the approximate maximum density subgraph of a vertex's
// center graph: the set of (vertex, side) pairs from the shortest-path
// DAGs through that vertex whose edge-to-vertex-weight ratio is
// highest, found by repeatedly discarding the single
// lowest-ratio-contributing vertex (Charikar's greedy peeling,
// generalized from unweighted density to the p-norm vertex weight
// used here). It reuses the id-doubling trick (id = u, or u+n for the
// forward side) to pack both sides of the center graph into one heap.
type amds struct {
	n       int
	table   *sp.Table
	proxy   *proxyLabeling
	queue   *heap.Heap[float64]
	scratch *sp.Scratch

	degree [2][]int
	inSet  [2][]bool
}

// newAMDS returns an amds instance with its own Descendants scratch:
// callers running several amds instances concurrently (one per
// worker, as ghl.Builder.Run does) must never share one instance
// across goroutines, but distinct instances are independent.
func newAMDS(n int, table *sp.Table, proxy *proxyLabeling) *amds {
	a := &amds{n: n, table: table, proxy: proxy, queue: heap.New[float64](2*n, amdsArity), scratch: sp.NewScratch(n)}
	for s := 0; s < 2; s++ {
		a.degree[s] = make([]int, n)
		a.inSet[s] = make([]bool, n)
	}
	return a
}

// weight returns the p-norm marginal cost of adding v to u's forward
// (or reverse) label, given its current size: pow(size+1,p)-pow(size,p).
func (a *amds) weight(u graph.Vertex, forward bool, p float64) float64 {
	base := float64(a.proxy.size(u, forward))
	return math.Pow(base+1, p) - math.Pow(base, p)
}

func ratio(edges int, verticesWeight float64) float64 {
	if edges == 0 {
		return 0
	}
	if verticesWeight == 0 {
		return math.MaxFloat64
	}
	return float64(edges) / verticesWeight
}

func (a *amds) id(u graph.Vertex, forward bool) int {
	if forward {
		return int(u) + a.n
	}
	return int(u)
}

// isIn reports whether u (on the given side) survived the most recent
// run's peeling, i.e. is part of the densest subgraph found.
func (a *amds) isIn(u graph.Vertex, forward bool) bool {
	return a.inSet[forwardIdx(forward)][u]
}

// run finds the density of v's center graph's approximate maximum
// density subgraph, or of the first subgraph found whose density
// exceeds limit (in which case peeling stops early and the returned
// value is only a lower bound on the true maximum).
func (a *amds) run(v graph.Vertex, p float64, limit float64) float64 {
	a.queue.Clear()
	edges := 0
	verticesWeight := 0.0

	for u := 0; u < a.n; u++ {
		for _, forward := range [2]bool{false, true} {
			descendants := a.table.Descendants(graph.Vertex(u), v, forward, a.scratch)
			cnt := 0
			for _, w := range descendants {
				if !a.table.GetCover(graph.Vertex(u), w, forward) {
					cnt++
				}
			}
			fi := forwardIdx(forward)
			a.degree[fi][u] = cnt
			a.inSet[fi][u] = cnt > 0
			if forward {
				edges += cnt
			}
			if cnt > 0 && !a.proxy.isInLabel(graph.Vertex(u), forward, v) {
				uw := a.weight(graph.Vertex(u), forward, p)
				_ = a.queue.Update(a.id(graph.Vertex(u), forward), float64(cnt)/uw)
				verticesWeight += uw
			}
		}
	}

	r := ratio(edges, verticesWeight)
	best := r
	for a.queue.Len() > 0 && r < limit {
		id, _, ok := a.queue.Pop()
		if !ok {
			break
		}
		forward := id >= a.n
		u := id
		if forward {
			u -= a.n
		}
		fi := forwardIdx(forward)
		a.inSet[fi][u] = false
		edges -= a.degree[fi][u]
		verticesWeight -= a.weight(graph.Vertex(u), forward, p)

		descendants := a.table.Descendants(graph.Vertex(u), v, forward, a.scratch)
		for _, w := range descendants {
			ofi := forwardIdx(!forward)
			if !a.inSet[ofi][w] || a.table.GetCover(graph.Vertex(u), w, forward) {
				continue
			}
			a.degree[ofi][w]--
			ww := a.weight(w, !forward, p)
			if a.degree[ofi][w] == 0 {
				a.inSet[ofi][w] = false
			}
			if !a.proxy.isInLabel(w, !forward, v) {
				wid := a.id(w, !forward)
				if a.degree[ofi][w] == 0 {
					a.queue.Extract(wid)
					verticesWeight -= ww
				} else {
					_ = a.queue.Update(wid, float64(a.degree[ofi][w])/ww)
				}
			}
		}

		r = ratio(edges, verticesWeight)
		if r > best {
			best = r
		}
	}
	return best
}
