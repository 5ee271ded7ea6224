package order_test

import (
	"bytes"
	"testing"

	"github.com/hublabel/hl/graph"
	"github.com/hublabel/hl/order"
	"github.com/stretchr/testify/require"
)

func TestWriteRead_RoundTrip(t *testing.T) {
	want := []graph.Vertex{2, 0, 1}
	var buf bytes.Buffer
	require.NoError(t, order.Write(&buf, want))

	got, err := order.Read(&buf)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestByDegree_SortsHighestFirst(t *testing.T) {
	b := graph.NewBuilder(4)
	require.NoError(t, b.AddArc(0, 1, 1, true))
	require.NoError(t, b.AddArc(0, 2, 1, true))
	require.NoError(t, b.AddArc(0, 3, 1, true))
	require.NoError(t, b.AddArc(1, 2, 1, true))
	g, err := b.Build()
	require.NoError(t, err)

	ordered := order.ByDegree(g)
	require.Equal(t, graph.Vertex(0), ordered[0]) // degree 3, highest
}

func TestByDegree_TiesBreakByDecreasingVertexID(t *testing.T) {
	b := graph.NewBuilder(3) // all isolated, degree 0
	g, err := b.Build()
	require.NoError(t, err)

	require.Equal(t, []graph.Vertex{2, 1, 0}, order.ByDegree(g))
}
