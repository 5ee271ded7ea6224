// Package labelcheck cross-validates a constructed labeling.Labeling
// against direct Dijkstra runs over the same graph: every query a
// labeling can answer must match the true shortest-path distance, or
// the labeling was built incorrectly.
package labelcheck

import (
	"sync"

	"github.com/hublabel/hl/dijkstra"
	"github.com/hublabel/hl/graph"
	"github.com/hublabel/hl/labeling"
)

// Option configures a Checker.
type Option func(*Checker)

// WithWorkers sets the goroutine count used to check disjoint,
// round-robin vertex subsets concurrently. The default is 1.
func WithWorkers(workers int) Option {
	return func(c *Checker) {
		if workers > 0 {
			c.workers = workers
		}
	}
}

// Checker validates labelings built over a fixed graph.
type Checker struct {
	g       *graph.Graph
	workers int
}

// New returns a Checker for g.
func New(g *graph.Graph, opts ...Option) *Checker {
	c := &Checker{g: g, workers: 1}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Run reports whether every query lab can answer over g's vertices
// matches the distance found by an independent Dijkstra run, checking
// both the forward and reverse side of every vertex.
func (c *Checker) Run(lab *labeling.Labeling) bool {
	n := c.g.N()
	if c.workers < 1 {
		c.workers = 1
	}

	ok := true
	var mu sync.Mutex
	var wg sync.WaitGroup
	for w := 0; w < c.workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			eng := dijkstra.New(c.g)
			local := true
			for v := worker; v < n; v += c.workers {
				sv := graph.Vertex(v)
				for _, forward := range [2]bool{false, true} {
					eng.Run(sv, forward)
					for u := 0; u < n; u++ {
						uv := graph.Vertex(u)
						if eng.Distance(uv) != lab.Query(sv, uv, forward) {
							local = false
						}
					}
				}
			}
			if !local {
				mu.Lock()
				ok = false
				mu.Unlock()
			}
		}(w)
	}
	wg.Wait()
	return ok
}
