package matrix_test

import (
	"math"
	"testing"

	"github.com/hublabel/hl/matrix"
	"github.com/stretchr/testify/require"
)

func TestDense_SetAt_RoundTrip(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 2, 4.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 4.5, v)
}

func TestDense_RejectsOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

func TestNewDense_RejectsNonPositiveDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_CloneIsIndependent(t *testing.T) {
	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1))
	c := m.Clone()
	require.NoError(t, m.Set(0, 0, 2))
	v, _ := c.At(0, 0)
	require.Equal(t, 1.0, v)
}

func inf() float64 { return math.Inf(1) }

func TestFloydWarshall_MatchesDirectPathsOnTriangle(t *testing.T) {
	// 0 -> 1 (4), 1 -> 2 (1), 0 -> 2 (9): the shortest 0->2 route goes
	// through 1 (length 5), not the direct length-9 arc.
	m, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i == j {
				continue
			}
			require.NoError(t, m.Set(i, j, inf()))
		}
	}
	require.NoError(t, m.Set(0, 1, 4))
	require.NoError(t, m.Set(1, 2, 1))
	require.NoError(t, m.Set(0, 2, 9))

	require.NoError(t, matrix.FloydWarshall(m))

	d02, _ := m.At(0, 2)
	require.Equal(t, 5.0, d02)
	d01, _ := m.At(0, 1)
	require.Equal(t, 4.0, d01)
	d10, _ := m.At(1, 0)
	require.True(t, math.IsInf(d10, 1))
}

func TestFloydWarshall_RejectsNonSquare(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.ErrorIs(t, matrix.FloydWarshall(m), matrix.ErrDimensionMismatch)
}
