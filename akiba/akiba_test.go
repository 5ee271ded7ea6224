package akiba_test

import (
	"testing"

	"github.com/hublabel/hl/akiba"
	"github.com/hublabel/hl/graph"
	"github.com/hublabel/hl/labeling"
	"github.com/stretchr/testify/require"
)

func ring(t *testing.T, n int) *graph.Graph {
	b := graph.NewBuilder(n)
	for i := 0; i < n; i++ {
		require.NoError(t, b.AddArc(graph.Vertex(i), graph.Vertex((i+1)%n), 1, true))
	}
	g, err := b.Build()
	require.NoError(t, err)
	return g
}

func directDistances(t *testing.T, g *graph.Graph, forward bool) [][]graph.Distance {
	n := g.N()
	out := make([][]graph.Distance, n)
	for s := 0; s < n; s++ {
		out[s] = make([]graph.Distance, n)
		// Simple BFS since all weights are 1 here.
		dist := make([]graph.Distance, n)
		for i := range dist {
			dist[i] = graph.Infinity
		}
		dist[s] = 0
		queue := []graph.Vertex{graph.Vertex(s)}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, a := range g.Side(u, forward) {
				if dist[u]+a.Length < dist[a.Head] {
					dist[a.Head] = dist[u] + a.Length
					queue = append(queue, a.Head)
				}
			}
		}
		out[s] = dist
	}
	return out
}

func TestBuilder_Run_MatchesDirectDistances(t *testing.T) {
	g := ring(t, 6)
	order := []graph.Vertex{0, 1, 2, 3, 4, 5}

	lab := labeling.New(g.N())
	require.NoError(t, akiba.New(g).Run(order, lab))

	want := directDistances(t, g, true)
	for u := 0; u < g.N(); u++ {
		for v := 0; v < g.N(); v++ {
			require.Equalf(t, want[u][v], lab.Query(graph.Vertex(u), graph.Vertex(v), true),
				"query(%d,%d) mismatch", u, v)
		}
	}
}

func TestBuilder_Run_RejectsWrongOrderLength(t *testing.T) {
	g := ring(t, 4)
	lab := labeling.New(g.N())
	err := akiba.New(g).Run([]graph.Vertex{0, 1}, lab)
	require.Error(t, err)
}

func TestBuilder_Run_OnDirectedPathMatchesOneDirection(t *testing.T) {
	b := graph.NewBuilder(4)
	require.NoError(t, b.AddArc(0, 1, 2, false))
	require.NoError(t, b.AddArc(1, 2, 3, false))
	require.NoError(t, b.AddArc(2, 3, 1, false))
	g, err := b.Build()
	require.NoError(t, err)

	lab := labeling.New(4)
	require.NoError(t, akiba.New(g).Run([]graph.Vertex{0, 1, 2, 3}, lab))

	require.EqualValues(t, 6, lab.Query(0, 3, true))
	require.Equal(t, graph.Infinity, lab.Query(3, 0, true))
}
