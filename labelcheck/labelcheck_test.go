package labelcheck_test

import (
	"testing"

	"github.com/hublabel/hl/akiba"
	"github.com/hublabel/hl/graph"
	"github.com/hublabel/hl/labelcheck"
	"github.com/hublabel/hl/labeling"
	"github.com/hublabel/hl/order"
	"github.com/stretchr/testify/require"
)

func ring(t *testing.T, n int) *graph.Graph {
	b := graph.NewBuilder(n)
	for i := 0; i < n; i++ {
		require.NoError(t, b.AddArc(graph.Vertex(i), graph.Vertex((i+1)%n), 1, false))
	}
	g, err := b.Build()
	require.NoError(t, err)
	return g
}

func TestChecker_Run_AcceptsCorrectlyBuiltLabeling(t *testing.T) {
	g := ring(t, 6)
	ord := order.ByDegree(g)
	lab := labeling.New(g.N())
	require.NoError(t, akiba.New(g).Run(ord, lab))

	c := labelcheck.New(g, labelcheck.WithWorkers(2))
	require.True(t, c.Run(lab))
}

func TestChecker_Run_RejectsCorruptedLabeling(t *testing.T) {
	g := ring(t, 6)
	ord := order.ByDegree(g)
	lab := labeling.New(g.N())
	require.NoError(t, akiba.New(g).Run(ord, lab))

	// Corrupt one forward label entry's distance so it no longer
	// matches the real shortest path.
	entries := lab.Forward(0)
	require.NotEmpty(t, entries)
	entries[0].Dist += 1000

	c := labelcheck.New(g)
	require.False(t, c.Run(lab))
}
