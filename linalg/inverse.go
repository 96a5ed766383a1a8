package linalg

import (
	"fmt"
	"math"
)

// ridgeEpsilon is added to the diagonal of a near-singular matrix on the
// single regularization retry described in spec §4.2 step 2.
const ridgeEpsilon = 1e-6

// singularPivotTolerance is the smallest admissible magnitude for a pivot
// during Gauss-Jordan elimination; anything smaller is treated as a zero
// pivot (numerically singular).
const singularPivotTolerance = 1e-12

// Inverse returns the inverse of the square matrix m.
//
// Stage 1 (Validate): ensure m is square.
// Stage 2 (Execute): Gauss-Jordan elimination with partial pivoting on an
// augmented [m | I] system.
// Stage 3 (Retry): on a singular pivot, add ridgeEpsilon to the original
// diagonal and retry once.
// Stage 4 (Finalize): return ErrSingular if still degenerate.
//
// Complexity: O(n^3) time, O(n^2) memory, where n = m.Rows().
func Inverse(m *Dense) (*Dense, error) {
	if m.Rows() != m.Cols() {
		return nil, fmt.Errorf("Inverse: %dx%d: %w", m.Rows(), m.Cols(), ErrNonSquare)
	}

	inv, err := gaussJordanInverse(m)
	if err == nil {
		return inv, nil
	}

	// Stage 3: ridge-regularize the diagonal and retry exactly once.
	ridged := m.Clone()
	n := m.Rows()
	for i := 0; i < n; i++ {
		v := ridged.MustAt(i, i)
		_ = ridged.Set(i, i, v+ridgeEpsilon)
	}
	inv, err = gaussJordanInverse(ridged)
	if err != nil {
		return nil, fmt.Errorf("Inverse: %w", ErrSingular)
	}
	return inv, nil
}

// gaussJordanInverse performs the elimination itself, operating on a local
// augmented [A | I] buffer so the caller's matrix is never mutated.
//
// Complexity: O(n^3).
func gaussJordanInverse(m *Dense) (*Dense, error) {
	n := m.Rows()

	// augmented holds n rows of 2n columns: [A | I].
	augmented := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, 2*n)
		for j := 0; j < n; j++ {
			row[j] = m.MustAt(i, j)
		}
		row[n+i] = 1.0
		augmented[i] = row
	}

	for col := 0; col < n; col++ {
		// Partial pivoting: find the row with the largest magnitude in this column.
		pivotRow := col
		best := math.Abs(augmented[col][col])
		for r := col + 1; r < n; r++ {
			if v := math.Abs(augmented[r][col]); v > best {
				best = v
				pivotRow = r
			}
		}
		if best < singularPivotTolerance {
			return nil, ErrSingular
		}
		if pivotRow != col {
			augmented[col], augmented[pivotRow] = augmented[pivotRow], augmented[col]
		}

		pivot := augmented[col][col]
		for j := 0; j < 2*n; j++ {
			augmented[col][j] /= pivot
		}

		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			factor := augmented[r][col]
			if factor == 0 {
				continue
			}
			for j := 0; j < 2*n; j++ {
				augmented[r][j] -= factor * augmented[col][j]
			}
		}
	}

	out, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			_ = out.Set(i, j, augmented[i][n+j])
		}
	}
	return out, nil
}
