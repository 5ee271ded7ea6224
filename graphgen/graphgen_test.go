package graphgen_test

import (
	"testing"

	"github.com/hublabel/hl/graph"
	"github.com/hublabel/hl/graphgen"
	"github.com/stretchr/testify/require"
)

func TestPath_RejectsTooFewVertices(t *testing.T) {
	_, err := graphgen.Path(1, 1)
	require.ErrorIs(t, err, graphgen.ErrTooFewVertices)
}

func TestPath_BuildsChainOfArcs(t *testing.T) {
	g, err := graphgen.Path(4, 3)
	require.NoError(t, err)
	require.Equal(t, 4, g.N())
	require.Equal(t, 6, g.M()) // 3 arcs, each stored at both endpoints
	require.Len(t, g.Forward(0), 1)
	require.Len(t, g.Forward(3), 0)
}

func TestCycle_EveryVertexHasOneOutArc(t *testing.T) {
	g, err := graphgen.Cycle(5, 2)
	require.NoError(t, err)
	for v := 0; v < 5; v++ {
		require.Lenf(t, g.Forward(graph.Vertex(v)), 1, "vertex %d", v)
	}
}

func TestStar_CenterReachesEveryLeaf(t *testing.T) {
	g, err := graphgen.Star(4, 1)
	require.NoError(t, err)
	require.Equal(t, 5, g.N())
	require.Len(t, g.Forward(0), 4)
}

func TestComplete_UndirectedHasOneBidirectionalArcPerPair(t *testing.T) {
	g, err := graphgen.Complete(4, 1, true)
	require.NoError(t, err)
	// Each of the 4 vertices is incident to 3 bidirectional arcs, and
	// Degree counts a bidirectional arc once per side.
	for v := 0; v < 4; v++ {
		require.Equal(t, 6, g.Degree(graph.Vertex(v)))
	}
}

func TestComplete_DirectedHasBothOrderingsPerPair(t *testing.T) {
	g, err := graphgen.Complete(4, 1, false)
	require.NoError(t, err)
	for v := 0; v < 4; v++ {
		require.Len(t, g.Forward(graph.Vertex(v)), 3)
		require.Len(t, g.Reverse(graph.Vertex(v)), 3)
	}
}

func TestRandomSparse_RejectsInvalidProbability(t *testing.T) {
	_, err := graphgen.RandomSparse(5, 1.5, 10, 1)
	require.ErrorIs(t, err, graphgen.ErrInvalidProbability)
}

func TestRandomSparse_IsDeterministicForFixedSeed(t *testing.T) {
	g1, err := graphgen.RandomSparse(20, 0.3, 50, 42)
	require.NoError(t, err)
	g2, err := graphgen.RandomSparse(20, 0.3, 50, 42)
	require.NoError(t, err)
	require.Equal(t, g1.M(), g2.M())
	for v := 0; v < 20; v++ {
		require.Equal(t, len(g1.Forward(graph.Vertex(v))), len(g2.Forward(graph.Vertex(v))))
	}
}

func TestRandomRegular_RejectsOddTotalDegree(t *testing.T) {
	_, err := graphgen.RandomRegular(5, 3, 10, 1) // 5*3=15 is odd
	require.ErrorIs(t, err, graphgen.ErrInvalidDegree)
}

func TestRandomRegular_EveryVertexHasExactDegree(t *testing.T) {
	g, err := graphgen.RandomRegular(6, 3, 20, 7)
	require.NoError(t, err)
	for v := 0; v < 6; v++ {
		// 3 undirected edges, each counted once per side by Degree.
		require.Equalf(t, 2*3, g.Degree(graph.Vertex(v)), "vertex %d", v)
	}
}
