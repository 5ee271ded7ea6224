package matrix

import (
	"errors"
	"fmt"
	"math"
)

// ErrDimensionMismatch indicates a non-square matrix was passed where
// a square one was required.
var ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

// FloydWarshall computes all-pairs shortest paths in-place on m.
//
// Contract:
//   - m must be square (n x n).
//   - +Inf denotes "no edge" off-diagonal; the diagonal must be 0
//     before calling.
//
// Loop order is fixed (k -> i -> j) for deterministic accumulation.
// Time: O(n^3); extra space: O(1).
func FloydWarshall(m *Dense) error {
	if m.Rows() != m.Cols() {
		return fmt.Errorf("matrix: FloydWarshall: %dx%d: %w", m.Rows(), m.Cols(), ErrDimensionMismatch)
	}

	n := m.r
	data := m.data

	for k := 0; k < n; k++ {
		baseK := k * n
		for i := 0; i < n; i++ {
			ik := data[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			baseI := i * n
			for j := 0; j < n; j++ {
				kj := data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				if cand := ik + kj; cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}
	return nil
}
