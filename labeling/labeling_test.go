package labeling_test

import (
	"bytes"
	"testing"

	"github.com/hublabel/hl/graph"
	"github.com/hublabel/hl/labeling"
	"github.com/stretchr/testify/require"
)

func TestLabeling_QueryMergesCommonHub(t *testing.T) {
	l := labeling.New(3)
	// hub 2 covers 0 -> 1: dist(0,2)=3 on 0's forward list,
	// dist(2,1)=4 on 1's reverse list.
	l.Add(0, true, 2, 3)
	l.Add(1, false, 2, 4)

	require.EqualValues(t, 7, l.Query(0, 1, true))
}

func TestLabeling_QueryNoCommonHubIsInfinite(t *testing.T) {
	l := labeling.New(2)
	l.Add(0, true, 5, 1)
	l.Add(1, false, 6, 1)
	require.Equal(t, graph.Infinity, l.Query(0, 1, true))
}

func TestLabeling_QueryTakesMinimumOverMultipleHubs(t *testing.T) {
	l := labeling.New(2)
	l.Add(0, true, 1, 10)
	l.Add(0, true, 2, 2)
	l.Add(1, false, 1, 10)
	l.Add(1, false, 2, 3)

	require.EqualValues(t, 5, l.Query(0, 1, true))
}

func TestLabeling_SortMakesOutOfOrderAddsQueryable(t *testing.T) {
	l := labeling.New(2)
	l.Add(0, true, 5, 9)
	l.Add(0, true, 1, 1)
	l.Add(1, false, 1, 1)
	l.Add(1, false, 5, 9)
	l.Sort()

	require.EqualValues(t, 2, l.Query(0, 1, true))
}

func TestLabeling_AverageAndMaxSize(t *testing.T) {
	l := labeling.New(2)
	l.Add(0, true, 1, 1)
	l.Add(0, false, 1, 1)
	l.Add(1, true, 0, 1)

	require.Equal(t, 1, l.MaxSize())
	require.InDelta(t, 0.75, l.AverageSize(), 1e-9)
}

func TestLabeling_WriteReadRoundTrip(t *testing.T) {
	l := labeling.New(2)
	l.Add(0, true, 1, 4)
	l.Add(1, false, 0, 4)
	l.Add(1, false, 1, 0) // 1 is its own hub, shared with 0's forward list

	var buf bytes.Buffer
	require.NoError(t, l.Write(&buf))

	got, err := labeling.Read(&buf, 2)
	require.NoError(t, err)
	require.EqualValues(t, 4, got.Query(0, 1, true))
}

func TestLabeling_ReadRejectsVertexCountMismatch(t *testing.T) {
	l := labeling.New(1)
	var buf bytes.Buffer
	require.NoError(t, l.Write(&buf))

	_, err := labeling.Read(&buf, 2)
	require.Error(t, err)
}

func TestLabeling_ClearEmptiesAllLists(t *testing.T) {
	l := labeling.New(1)
	l.Add(0, true, 0, 0)
	l.Clear()
	require.Empty(t, l.Forward(0))
	require.Equal(t, 0, l.MaxSize())
}
