package dijkstra_test

import (
	"testing"

	"github.com/hublabel/hl/dijkstra"
	"github.com/hublabel/hl/graph"
	"github.com/stretchr/testify/require"
)

func triangleGraph(t *testing.T) *graph.Graph {
	b := graph.NewBuilder(3)
	require.NoError(t, b.AddArc(0, 1, 4, false))
	require.NoError(t, b.AddArc(1, 2, 1, false))
	require.NoError(t, b.AddArc(0, 2, 9, false))
	g, err := b.Build()
	require.NoError(t, err)
	return g
}

func TestEngine_ForwardShortestPath(t *testing.T) {
	g := triangleGraph(t)
	e := dijkstra.New(g)
	e.Run(0, true)

	require.EqualValues(t, 0, e.Distance(0))
	require.EqualValues(t, 4, e.Distance(1))
	require.EqualValues(t, 5, e.Distance(2)) // via 1, not the direct 9-length arc
	require.Equal(t, graph.Vertex(1), e.Parent(2))
}

func TestEngine_ReverseDirectionUsesIncomingArcs(t *testing.T) {
	g := triangleGraph(t)
	e := dijkstra.New(g)
	e.Run(2, false)

	require.EqualValues(t, 0, e.Distance(2))
	require.EqualValues(t, 1, e.Distance(1))
	require.EqualValues(t, 5, e.Distance(0))
}

func TestEngine_UnreachableVertexStaysInfinite(t *testing.T) {
	b := graph.NewBuilder(2)
	g, err := b.Build()
	require.NoError(t, err)

	e := dijkstra.New(g)
	e.Run(0, true)
	require.Equal(t, graph.Infinity, e.Distance(1))
	require.Equal(t, graph.None, e.Parent(1))
}

func TestEngine_ReusedAcrossRunsClearsOnlyDirtyState(t *testing.T) {
	g := triangleGraph(t)
	e := dijkstra.New(g)

	e.Run(0, true)
	require.EqualValues(t, 5, e.Distance(2))

	e.Run(1, true)
	require.EqualValues(t, 0, e.Distance(1))
	require.EqualValues(t, 1, e.Distance(2))
	require.Equal(t, graph.Infinity, e.Distance(0)) // unreachable from 1 forward
}

func TestEngine_USPTieBreakPrefersFewerHopsThenSmallerParent(t *testing.T) {
	// Two equal-length paths from 0 to 3: via 1 (1 hop after 0) and via 2.
	// 0->1->3 length 2+1=3, 0->2->3 length 1+2=3: same distance, but the
	// first hop differs, so hop count alone does not disambiguate; break
	// on smaller parent id at the tie.
	b := graph.NewBuilder(4)
	require.NoError(t, b.AddArc(0, 1, 2, false))
	require.NoError(t, b.AddArc(0, 2, 1, false))
	require.NoError(t, b.AddArc(1, 3, 1, false))
	require.NoError(t, b.AddArc(2, 3, 2, false))
	g, err := b.Build()
	require.NoError(t, err)

	e := dijkstra.New(g, dijkstra.WithUSPTieBreak())
	e.Run(0, true)
	require.EqualValues(t, 3, e.Distance(3))
	require.Equal(t, graph.Vertex(1), e.Parent(3))
}
