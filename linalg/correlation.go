package linalg

import (
	"fmt"
	"math"
)

// Correlation computes the p×p Pearson correlation matrix of data, where
// data[v] holds the n samples of variable v (p rows, n columns — the
// variables-by-samples orientation spec §6 fixes for the engine). The
// diagonal is exactly 1; off-diagonal entries are mirrored symmetrically.
//
// Stage 1 (Validate): every row must have the same length n, n > 1.
// Stage 2 (Prepare): compute per-variable mean and standard deviation once.
// Stage 3 (Execute): accumulate Σ(x-meanX)(y-meanY) for each pair i<j and
// normalize by (n-1)*stdX*stdY; mirror to (j,i).
// Stage 4 (Finalize): write 1.0 on the diagonal.
//
// A variable with zero variance yields a zero correlation against every
// other variable (degenerate column policy, matching impl_statistics.go's
// Correlation convention for degenerate std).
//
// Complexity: O(p^2 * n) time, O(p^2) memory for the result.
func Correlation(data [][]float64) (*Dense, error) {
	p := len(data)
	if p == 0 {
		return nil, fmt.Errorf("Correlation: %w", ErrInvalidDimensions)
	}
	n := len(data[0])
	for v := 1; v < p; v++ {
		if len(data[v]) != n {
			return nil, fmt.Errorf("Correlation: row %d has length %d, want %d: %w", v, len(data[v]), n, ErrDimensionMismatch)
		}
	}
	if n < 2 {
		return nil, fmt.Errorf("Correlation: need at least 2 samples, got %d: %w", n, ErrInvalidDimensions)
	}

	means := make([]float64, p)
	stds := make([]float64, p)
	for v := 0; v < p; v++ {
		var sum float64
		for _, x := range data[v] {
			sum += x
		}
		mean := sum / float64(n)
		means[v] = mean

		var sq float64
		for _, x := range data[v] {
			d := x - mean
			sq += d * d
		}
		stds[v] = math.Sqrt(sq)
	}

	out, err := NewDense(p, p)
	if err != nil {
		return nil, err
	}
	for i := 0; i < p; i++ {
		_ = out.Set(i, i, 1.0)
		for j := 0; j < i; j++ {
			var cov float64
			if stds[i] > 0 && stds[j] > 0 {
				for k := 0; k < n; k++ {
					cov += (data[i][k] - means[i]) * (data[j][k] - means[j])
				}
				cov /= stds[i] * stds[j]
			}
			_ = out.Set(i, j, cov)
			_ = out.Set(j, i, cov)
		}
	}
	return out, nil
}
