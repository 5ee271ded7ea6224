// Package graphgen builds small fixed-shape and randomized graphs
// directly through graph.Builder, adapted from the teacher module's
// shape-constructor library but narrowed to the shapes this repo's
// own test fixtures need: path, cycle, star, complete, and two random
// generators used to cross-check the sp distance table beyond
// hand-written fixtures.
package graphgen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/hublabel/hl/graph"
)

// ErrTooFewVertices is returned when n is below a generator's minimum.
var ErrTooFewVertices = errors.New("graphgen: too few vertices")

// ErrInvalidProbability is returned when an edge probability lies
// outside [0, 1].
var ErrInvalidProbability = errors.New("graphgen: probability must be in [0, 1]")

// ErrInvalidDegree is returned when a regular-graph degree is outside
// [0, n) or n*degree is odd.
var ErrInvalidDegree = errors.New("graphgen: invalid degree")

// ErrConstructFailed is returned when a randomized generator exhausts
// its retry budget without producing a graph satisfying its mode
// constraints.
var ErrConstructFailed = errors.New("graphgen: failed to construct graph")

const maxStubMatchingAttempts = 8

// Path returns a simple directed path 0 -> 1 -> ... -> (n-1) with
// every arc the given length.
func Path(n int, length graph.Distance) (*graph.Graph, error) {
	if n < 2 {
		return nil, fmt.Errorf("graphgen: Path: n=%d < 2: %w", n, ErrTooFewVertices)
	}
	b := graph.NewBuilder(n)
	for i := 1; i < n; i++ {
		if err := b.AddArc(graph.Vertex(i-1), graph.Vertex(i), length, false); err != nil {
			return nil, fmt.Errorf("graphgen: Path: %w", err)
		}
	}
	return b.Build()
}

// Cycle returns a directed ring 0 -> 1 -> ... -> (n-1) -> 0 with every
// arc the given length.
func Cycle(n int, length graph.Distance) (*graph.Graph, error) {
	if n < 2 {
		return nil, fmt.Errorf("graphgen: Cycle: n=%d < 2: %w", n, ErrTooFewVertices)
	}
	b := graph.NewBuilder(n)
	for i := 0; i < n; i++ {
		if err := b.AddArc(graph.Vertex(i), graph.Vertex((i+1)%n), length, false); err != nil {
			return nil, fmt.Errorf("graphgen: Cycle: %w", err)
		}
	}
	return b.Build()
}

// Star returns an undirected star with vertex 0 as the center and
// `leaves` outer vertices, every arc the given length.
func Star(leaves int, length graph.Distance) (*graph.Graph, error) {
	if leaves < 1 {
		return nil, fmt.Errorf("graphgen: Star: leaves=%d < 1: %w", leaves, ErrTooFewVertices)
	}
	b := graph.NewBuilder(leaves + 1)
	for i := 1; i <= leaves; i++ {
		if err := b.AddArc(0, graph.Vertex(i), length, true); err != nil {
			return nil, fmt.Errorf("graphgen: Star: %w", err)
		}
	}
	return b.Build()
}

// Complete returns the complete graph on n vertices, undirected if
// undirected is true (one bidirectional arc per pair) or directed
// (both orderings added separately) otherwise, every arc the given
// length.
func Complete(n int, length graph.Distance, undirected bool) (*graph.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("graphgen: Complete: n=%d < 1: %w", n, ErrTooFewVertices)
	}
	b := graph.NewBuilder(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := b.AddArc(graph.Vertex(i), graph.Vertex(j), length, undirected); err != nil {
				return nil, fmt.Errorf("graphgen: Complete: %w", err)
			}
			if !undirected {
				if err := b.AddArc(graph.Vertex(j), graph.Vertex(i), length, false); err != nil {
					return nil, fmt.Errorf("graphgen: Complete: %w", err)
				}
			}
		}
	}
	return b.Build()
}

// RandomSparse samples an Erdos-Renyi-like graph over n vertices,
// including each ordered pair (i, j), i != j, independently with
// probability p, weighting every included arc uniformly at random in
// [1, maxLength]. Deterministic for a fixed seed.
func RandomSparse(n int, p float64, maxLength graph.Distance, seed int64) (*graph.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("graphgen: RandomSparse: n=%d < 1: %w", n, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("graphgen: RandomSparse: p=%.6f: %w", p, ErrInvalidProbability)
	}
	rng := rand.New(rand.NewSource(seed))
	b := graph.NewBuilder(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if rng.Float64() >= p {
				continue
			}
			length := graph.Distance(1 + rng.Int63n(int64(maxLength)))
			if err := b.AddArc(graph.Vertex(i), graph.Vertex(j), length, false); err != nil {
				return nil, fmt.Errorf("graphgen: RandomSparse: %w", err)
			}
		}
	}
	return b.Build()
}

// RandomRegular builds an undirected d-regular simple graph over n
// vertices via stub-matching with bounded retries, weighting every
// edge uniformly at random in [1, maxLength]. Deterministic for a
// fixed seed.
func RandomRegular(n, degree int, maxLength graph.Distance, seed int64) (*graph.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("graphgen: RandomRegular: n=%d < 1: %w", n, ErrTooFewVertices)
	}
	if degree < 0 || degree >= n || (n*degree)%2 != 0 {
		return nil, fmt.Errorf("graphgen: RandomRegular: n=%d degree=%d: %w", n, degree, ErrInvalidDegree)
	}
	rng := rand.New(rand.NewSource(seed))

	stubCount := n * degree
	stubs := make([]int, stubCount)
	for i, pos := 0, 0; i < n; i++ {
		for k := 0; k < degree; k++ {
			stubs[pos] = i
			pos++
		}
	}

	for attempt := 0; attempt < maxStubMatchingAttempts; attempt++ {
		rng.Shuffle(stubCount, func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

		valid := true
		seen := make(map[[2]int]struct{}, stubCount/2)
		for i := 0; i < stubCount; i += 2 {
			u, v := stubs[i], stubs[i+1]
			if u == v {
				valid = false
				break
			}
			if u > v {
				u, v = v, u
			}
			key := [2]int{u, v}
			if _, dup := seen[key]; dup {
				valid = false
				break
			}
			seen[key] = struct{}{}
		}
		if !valid {
			continue
		}

		b := graph.NewBuilder(n)
		for i := 0; i < stubCount; i += 2 {
			u, v := stubs[i], stubs[i+1]
			length := graph.Distance(1 + rng.Int63n(int64(maxLength)))
			if err := b.AddArc(graph.Vertex(u), graph.Vertex(v), length, true); err != nil {
				return nil, fmt.Errorf("graphgen: RandomRegular: %w", err)
			}
		}
		return b.Build()
	}

	return nil, fmt.Errorf("graphgen: RandomRegular: n=%d degree=%d after %d attempts: %w", n, degree, maxStubMatchingAttempts, ErrConstructFailed)
}
