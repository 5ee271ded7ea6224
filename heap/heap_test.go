package heap_test

import (
	"math/rand"
	"testing"

	"github.com/hublabel/hl/heap"
	"github.com/stretchr/testify/require"
)

func TestHeap_PopsInSortedOrder(t *testing.T) {
	h := heap.New[int](5, 4)
	require.NoError(t, h.Update(0, 5))
	require.NoError(t, h.Update(1, 1))
	require.NoError(t, h.Update(2, 3))
	require.NoError(t, h.Update(3, 2))
	require.NoError(t, h.Update(4, 4))

	var got []int
	for !h.Empty() {
		id, _, ok := h.Pop()
		require.True(t, ok)
		got = append(got, id)
	}
	require.Equal(t, []int{1, 3, 2, 4, 0}, got)
}

func TestHeap_UpdateExistingKeyReordersHeap(t *testing.T) {
	h := heap.New[int](3, 2)
	require.NoError(t, h.Update(0, 10))
	require.NoError(t, h.Update(1, 20))
	require.NoError(t, h.Update(2, 30))

	require.NoError(t, h.Update(2, 1)) // lower id 2's key below everything
	id, key, ok := h.Top()
	require.True(t, ok)
	require.Equal(t, 2, id)
	require.Equal(t, 1, key)
}

func TestHeap_ExtractArbitraryID(t *testing.T) {
	h := heap.New[int](4, 3)
	for i, k := range []int{9, 1, 5, 3} {
		require.NoError(t, h.Update(i, k))
	}
	h.Extract(0)
	require.False(t, h.Contains(0))
	require.Equal(t, 3, h.Len())

	id, _, _ := h.Pop()
	require.Equal(t, 1, id)
}

func TestHeap_ClearOnlyTouchesPresentIDs(t *testing.T) {
	h := heap.New[int](100, 4)
	require.NoError(t, h.Update(5, 1))
	require.NoError(t, h.Update(7, 2))
	h.Clear()
	require.True(t, h.Empty())
	require.False(t, h.Contains(5))
	require.False(t, h.Contains(7))

	require.NoError(t, h.Update(5, 99))
	id, key, ok := h.Pop()
	require.True(t, ok)
	require.Equal(t, 5, id)
	require.Equal(t, 99, key)
}

func TestHeap_ExtractThenReinsertIsConsistent(t *testing.T) {
	h := heap.New[int](1, 4)
	require.NoError(t, h.Update(0, 3))
	h.Extract(0)
	require.False(t, h.Contains(0))
	require.NoError(t, h.Update(0, 7))
	key, ok := h.Key(0)
	require.True(t, ok)
	require.Equal(t, 7, key)
}

func TestHeap_RandomizedMatchesSort(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const n = 200
	h := heap.New[int](n, 4)
	keys := make([]int, n)
	for i := 0; i < n; i++ {
		keys[i] = rng.Intn(1000)
		require.NoError(t, h.Update(i, keys[i]))
	}

	prev := -1
	count := 0
	for !h.Empty() {
		_, k, ok := h.Pop()
		require.True(t, ok)
		require.GreaterOrEqual(t, k, prev)
		prev = k
		count++
	}
	require.Equal(t, n, count)
}
