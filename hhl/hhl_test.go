package hhl_test

import (
	"testing"

	"github.com/hublabel/hl/graph"
	"github.com/hublabel/hl/hhl"
	"github.com/hublabel/hl/labeling"
	"github.com/stretchr/testify/require"
)

func starGraph(t *testing.T, leaves int) *graph.Graph {
	b := graph.NewBuilder(leaves + 1)
	for i := 1; i <= leaves; i++ {
		require.NoError(t, b.AddArc(0, graph.Vertex(i), 1, true))
	}
	g, err := b.Build()
	require.NoError(t, err)
	return g
}

func TestNew_RejectsUnknownWeightKind(t *testing.T) {
	g := starGraph(t, 3)
	_, err := hhl.New(g, hhl.WeightKind(99))
	require.ErrorIs(t, err, hhl.ErrUnknownWeightKind)
}

func TestBuilder_Run_PathGreedy_StarGraphQueriesMatchDirectPaths(t *testing.T) {
	g := starGraph(t, 5)
	b, err := hhl.New(g, hhl.PathGreedy, hhl.WithWorkers(2))
	require.NoError(t, err)

	lab := labeling.New(g.N())
	order, err := b.Run(lab)
	require.NoError(t, err)
	require.Len(t, order, g.N())

	// Every leaf pair must report distance 2 (through the center), and
	// every center-leaf pair must report distance 1.
	for i := 1; i <= 5; i++ {
		require.EqualValues(t, 1, lab.Query(0, graph.Vertex(i), true))
		for j := 1; j <= 5; j++ {
			if i == j {
				continue
			}
			require.EqualValuesf(t, 2, lab.Query(graph.Vertex(i), graph.Vertex(j), true), "leaf %d -> leaf %d", i, j)
		}
	}
}

func TestBuilder_Run_LabelGreedy_TriangleQueriesMatchDirectPaths(t *testing.T) {
	b := graph.NewBuilder(3)
	require.NoError(t, b.AddArc(0, 1, 4, false))
	require.NoError(t, b.AddArc(1, 2, 1, false))
	require.NoError(t, b.AddArc(0, 2, 9, false))
	g, err := b.Build()
	require.NoError(t, err)

	builder, err := hhl.New(g, hhl.LabelGreedy)
	require.NoError(t, err)
	lab := labeling.New(g.N())
	_, err = builder.Run(lab)
	require.NoError(t, err)

	require.EqualValues(t, 4, lab.Query(0, 1, true))
	require.EqualValues(t, 5, lab.Query(0, 2, true)) // via vertex 1, not the direct length-9 arc
	require.EqualValues(t, 1, lab.Query(1, 2, true))
}

func TestBuilder_Run_DiamondWithTwoEqualShortestPaths(t *testing.T) {
	// 0->1->3 and 0->2->3 are both length 2: a non-USP diamond. The
	// general builder must place a hub covering both branches so that
	// the labeling still answers the query correctly, even though
	// neither branch alone lies on every shortest 0->3 path.
	b := graph.NewBuilder(4)
	require.NoError(t, b.AddArc(0, 1, 1, false))
	require.NoError(t, b.AddArc(1, 3, 1, false))
	require.NoError(t, b.AddArc(0, 2, 1, false))
	require.NoError(t, b.AddArc(2, 3, 1, false))
	g, err := b.Build()
	require.NoError(t, err)

	builder, err := hhl.New(g, hhl.PathGreedy)
	require.NoError(t, err)
	lab := labeling.New(g.N())
	_, err = builder.Run(lab)
	require.NoError(t, err)

	require.EqualValues(t, 2, lab.Query(0, 3, true))
	require.EqualValues(t, 1, lab.Query(0, 1, true))
	require.EqualValues(t, 1, lab.Query(0, 2, true))
	require.EqualValues(t, 1, lab.Query(1, 3, true))
	require.EqualValues(t, 1, lab.Query(2, 3, true))
}
