package indeptest

import (
	"math"

	"github.com/kkrpk/lock-free-pc-MDF/linalg"
)

// clampEpsilon is the ε of spec §4.2 step 4: r is clamped to [-1+ε, 1-ε]
// before the Fisher-z transform, since z is undefined at r = ±1.
const clampEpsilon = 1e-7

// GaussTest is the Fisher-z Gaussian conditional independence test. It is
// constructed once per run from the sample count and correlation matrix
// (spec §4.6(a): "Construct IndepTestGauss with (n, C)") and is safe for
// concurrent use by every worker, since Test only reads its fields.
type GaussTest struct {
	n    int
	corr *linalg.Dense
}

// New builds a GaussTest over the given sample count and correlation
// matrix. Both are treated as immutable for the lifetime of the test.
func New(n int, corr *linalg.Dense) *GaussTest {
	return &GaussTest{n: n, corr: corr}
}

// Test computes the Fisher-z p-value for the partial correlation ρ_{ij·S},
// following spec §4.2 steps 1-7 exactly.
//
// Returns ErrCannotTest when |S|+2 > n-1 (step: edge case, insufficient
// degrees of freedom) or when the {i,j}∪S submatrix remains singular after
// linalg.Inverse's ridge-regularization retry.
func (g *GaussTest) Test(i, j int, s []int) (float64, error) {
	k := len(s) + 2
	if k > g.n-1 {
		return 0, ErrCannotTest
	}

	// Step 1: M is the principal submatrix of C indexed by {i,j}∪S, in that order.
	idx := make([]int, 0, k)
	idx = append(idx, i, j)
	idx = append(idx, s...)
	m, err := g.corr.Submatrix(idx)
	if err != nil {
		return 0, ErrCannotTest
	}

	// Step 2: invert M (ridge-regularized fallback handled inside Inverse).
	p, err := linalg.Inverse(m)
	if err != nil {
		return 0, ErrCannotTest
	}

	// Step 3: partial correlation r = -P01 / sqrt(P00 * P11).
	p00, err := p.At(0, 0)
	if err != nil {
		return 0, ErrCannotTest
	}
	p11, err := p.At(1, 1)
	if err != nil {
		return 0, ErrCannotTest
	}
	p01, err := p.At(0, 1)
	if err != nil {
		return 0, ErrCannotTest
	}
	denom := math.Sqrt(p00 * p11)
	if denom == 0 || math.IsNaN(denom) || math.IsInf(denom, 0) {
		return 0, ErrCannotTest
	}
	r := -p01 / denom

	// Step 4: clamp r to [-1+ε, 1-ε].
	if r > 1-clampEpsilon {
		r = 1 - clampEpsilon
	}
	if r < -1+clampEpsilon {
		r = -1 + clampEpsilon
	}

	// Step 5: Fisher z = 1/2 * ln((1+r)/(1-r)).
	z := 0.5 * math.Log((1+r)/(1-r))

	// Step 6: test statistic T = sqrt(n - |S| - 3) * |z|.
	dof := float64(g.n - len(s) - 3)
	if dof < 0 {
		return 0, ErrCannotTest
	}
	t := math.Sqrt(dof) * math.Abs(z)

	// Step 7: p-value = 2*(1 - Φ(T)), Φ the standard normal CDF.
	pvalue := 2 * (1 - standardNormalCDF(t))
	return pvalue, nil
}

// standardNormalCDF computes Φ(x) via the error function, math.Erf giving
// full float64 precision without a series expansion of our own.
func standardNormalCDF(x float64) float64 {
	return 0.5 * (1 + math.Erf(x/math.Sqrt2))
}
