// Package sp provides the shared shortest-path table used by the
// greedy hub-labeling builders (hhl, uhhl, ghl): an all-pairs distance
// matrix, a cover matrix tracking which ordered pairs are already
// served by a selected hub, and — in USP mode — a unique-shortest-path
// parent tree used to enumerate descendants/ascendants in time
// proportional to the subtree visited rather than to n.
package sp

import (
	"sync"

	"github.com/hublabel/hl/dijkstra"
	"github.com/hublabel/hl/graph"
)

// Table holds the precomputed distance (and, in USP mode, parent)
// information a greedy builder needs, plus the cover matrix it
// maintains as hubs are selected.
type Table struct {
	g   *graph.Graph
	n   int
	usp bool

	// dist[s][v] is the shortest forward distance s -> v. Because this
	// is a full matrix, the reverse distance v -> u is read as dist[v][u]
	// from the same table: no second matrix is kept.
	dist [][]graph.Distance

	// parent[0][s][v] / parent[1][s][v] are v's parent in the reverse /
	// forward unique-shortest-path tree rooted at s. Populated only
	// when usp is true.
	parent [2][][]graph.Vertex

	// cover[u][v] is 1 once some selected hub covers the ordered pair
	// (u, v); mutated during the two-phase barrier update in hhl/uhhl,
	// which guarantees no concurrent writer touches the same row two
	// goroutines are reading in the same phase, and by ghl's cover
	// commit, which runs on a single goroutine.
	cover [][]int32
}

// Build computes the all-pairs distance table (and, if usp, the
// unique-shortest-path parent trees) by running one Dijkstra instance
// per worker over a partition of the n sources, following the plain
// goroutine/WaitGroup concurrency idiom used throughout this module.
func Build(g *graph.Graph, usp bool, workers int) *Table {
	n := g.N()
	t := &Table{g: g, n: n, usp: usp}
	t.dist = make([][]graph.Distance, n)
	t.cover = make([][]int32, n)
	for i := range t.dist {
		t.dist[i] = make([]graph.Distance, n)
		t.cover[i] = make([]int32, n)
	}
	if usp {
		for side := 0; side < 2; side++ {
			t.parent[side] = make([][]graph.Vertex, n)
			for i := range t.parent[side] {
				t.parent[side][i] = make([]graph.Vertex, n)
			}
		}
	}

	if workers < 1 {
		workers = 1
	}
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			var opts []dijkstra.Option
			if usp {
				opts = append(opts, dijkstra.WithUSPTieBreak())
			}
			fwd := dijkstra.New(g, opts...)
			var rev *dijkstra.Engine
			if usp {
				rev = dijkstra.New(g, opts...)
			}
			for s := worker; s < n; s += workers {
				sv := graph.Vertex(s)
				fwd.Run(sv, true)
				for v := 0; v < n; v++ {
					t.dist[s][v] = fwd.Distance(graph.Vertex(v))
				}
				if usp {
					for v := 0; v < n; v++ {
						t.parent[1][s][v] = fwd.Parent(graph.Vertex(v))
					}
					rev.Run(sv, false)
					for v := 0; v < n; v++ {
						t.parent[0][s][v] = rev.Parent(graph.Vertex(v))
					}
				}
			}
		}(w)
	}
	wg.Wait()
	return t
}

// N returns the number of vertices.
func (t *Table) N() int { return t.n }

// Distance returns the shortest forward distance from a to b.
func (t *Table) Distance(a, b graph.Vertex) graph.Distance { return t.dist[a][b] }

// parentSide maps the forward flag to the parent-table side index,
// matching the convention used by dist: side 1 is the forward tree,
// side 0 the reverse tree.
func parentSide(forward bool) int {
	if forward {
		return 1
	}
	return 0
}

// isPath reports whether extending a shortest path from apex through v
// to w via an arc of the given length stays on a shortest path from
// apex, in the forward (or reverse, if !forward) direction. In USP
// mode this is an O(1) parent-table lookup; otherwise it is an O(1)
// distance-sum check against the full matrix (valid because the
// shortest-path DAG from apex can branch, so no single parent exists).
func (t *Table) isPath(apex, v, w graph.Vertex, length graph.Distance, forward bool) bool {
	if t.usp {
		return t.parent[parentSide(forward)][apex][w] == v
	}
	if forward {
		return t.dist[apex][w] == t.dist[apex][v]+length
	}
	return t.dist[w][apex] == t.dist[v][apex]+length
}

// Parent returns v's parent in apex's unique-shortest-path tree, on
// the forward (or reverse) side. It is only meaningful when the table
// was built with usp=true; on a non-USP table it always returns
// graph.None.
func (t *Table) Parent(apex, v graph.Vertex, forward bool) graph.Vertex {
	if !t.usp {
		return graph.None
	}
	return t.parent[parentSide(forward)][apex][v]
}

// USP reports whether this table was built in unique-shortest-path
// mode.
func (t *Table) USP() bool { return t.usp }

// GetCover reports whether the ordered pair (u, v) — read forward as
// u -> v, or reverse as v -> u when forward is false — is already
// covered by a previously selected hub.
func (t *Table) GetCover(u, v graph.Vertex, forward bool) bool {
	if forward {
		return t.cover[u][v] != 0
	}
	return t.cover[v][u] != 0
}

// SetCover marks the ordered pair (u, v) as covered.
func (t *Table) SetCover(u, v graph.Vertex) {
	t.cover[u][v] = 1
}

// ClearCover zeroes the entire cover matrix, e.g. before rerunning a
// builder with a different order.
func (t *Table) ClearCover() {
	for i := range t.cover {
		for j := range t.cover[i] {
			t.cover[i][j] = 0
		}
	}
}

// Scratch is per-goroutine working memory for Descendants/Ascendants: a
// visited marker reused across calls via a generation stamp rather
// than re-zeroed every call. Callers processing vertices in parallel
// must give each goroutine its own Scratch and never share one across
// concurrently-running goroutines, mirroring the per-thread
// visited_pt scratch arrays in the reference implementation (one per
// OpenMP thread, reset in O(visited) rather than O(n) between calls).
type Scratch struct {
	gen   []int32
	stamp int32
}

// NewScratch returns a Scratch usable with a Table over n vertices.
func NewScratch(n int) *Scratch {
	return &Scratch{gen: make([]int32, n)}
}

func (s *Scratch) start() { s.stamp++ }

func (s *Scratch) visit(v graph.Vertex) { s.gen[v] = s.stamp }

func (s *Scratch) visited(v graph.Vertex) bool { return s.gen[v] == s.stamp }

// blocked reports whether a descendant/ascendant walk rooted at v
// should return empty immediately: v is already covered for the
// (apex, v) pair, or (apex != v and) v is unreached from apex in the
// given direction. In USP mode "unreached" is "has no parent"; in
// general mode it is "distance is infinite" — both match the
// reference SP::get_descendants/get_ascendants entry guard.
func (t *Table) blocked(apex, v graph.Vertex, forward bool) bool {
	if t.GetCover(apex, v, forward) {
		return true
	}
	if apex == v {
		return false
	}
	if t.usp {
		return t.Parent(apex, v, forward) == graph.None
	}
	if forward {
		return t.dist[apex][v] >= graph.Infinity
	}
	return t.dist[v][apex] >= graph.Infinity
}

// Descendants enumerates, starting from v itself, every vertex
// reachable by repeatedly following an arc on the forward (or reverse,
// if !forward) side that both continues a shortest path from apex and
// is not yet covered for the (apex, ·) pair in that direction. The
// result always includes v as its first element, unless v itself is
// blocked (already covered, or unreached from apex), in which case it
// is empty.
//
// In USP mode this walks exactly the subtree of apex's unique
// shortest-path tree rooted at v; in general mode it walks the
// (possibly branching, possibly larger) set of vertices reachable by
// any shortest-path-preserving continuation — a vertex reachable via
// two distinct branches of the DAG is visited, and counted, once,
// using scratch to deduplicate within this call. scratch must not be
// shared with another goroutine calling Descendants/Ascendants
// concurrently.
func (t *Table) Descendants(apex, v graph.Vertex, forward bool, scratch *Scratch) []graph.Vertex {
	if t.blocked(apex, v, forward) {
		return nil
	}
	scratch.start()
	scratch.visit(v)
	result := []graph.Vertex{v}
	queue := []graph.Vertex{v}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, a := range t.g.Side(cur, forward) {
			head := a.Head
			if scratch.visited(head) {
				continue
			}
			if t.GetCover(apex, head, forward) {
				continue
			}
			if !t.isPath(apex, cur, head, a.Length, forward) {
				continue
			}
			scratch.visit(head)
			result = append(result, head)
			queue = append(queue, head)
		}
	}
	return result
}

// Ascendants is the mirror of Descendants: starting from v, it walks
// the opposite-side arcs to enumerate every vertex w such that v (or
// an already-found ascendant) is reached from w by a shortest-path
// continuation from apex. Unlike Descendants it does not re-check
// coverage at every step, only at the root v — matching the
// reference SP::get_ascendants, which has no per-neighbour get_cover
// call. scratch must not be shared with another goroutine calling
// Descendants/Ascendants concurrently.
func (t *Table) Ascendants(apex, v graph.Vertex, forward bool, scratch *Scratch) []graph.Vertex {
	if t.blocked(apex, v, forward) {
		return nil
	}
	scratch.start()
	scratch.visit(v)
	result := []graph.Vertex{v}
	queue := []graph.Vertex{v}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, a := range t.g.Side(cur, !forward) {
			head := a.Head
			if scratch.visited(head) {
				continue
			}
			if !t.isPath(apex, head, cur, a.Length, forward) {
				continue
			}
			scratch.visit(head)
			result = append(result, head)
			queue = append(queue, head)
		}
	}
	return result
}
