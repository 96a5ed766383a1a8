package engine_test

import (
	"math"
	"math/rand"
)

// defaultRNGSeed mirrors tsp/rng.go's fixed "zero" seed convention: a
// single deterministic source so every test run produces byte-identical
// synthetic data.
const defaultRNGSeed int64 = 1

func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// independentGaussians returns a p×n matrix of iid standard normal samples
// (spec §8 scenario 1: C = I).
func independentGaussians(p, n int, seed int64) [][]float64 {
	rng := rngFromSeed(seed)
	data := make([][]float64, p)
	for v := 0; v < p; v++ {
		row := make([]float64, n)
		for k := 0; k < n; k++ {
			row[k] = rng.NormFloat64()
		}
		data[v] = row
	}
	return data
}

// chainGaussians returns a p×n matrix generated as a first-order Markov
// chain x0 -> x1 -> ... -> x(p-1), each step x[i] = rho*x[i-1] +
// sqrt(1-rho^2)*noise, reproducing spec §8 scenario 2's chain structure:
// C_{i,i+1} = rho, and x[i] conditionally independent of x[i-2] given
// x[i-1].
func chainGaussians(p, n int, rho float64, seed int64) [][]float64 {
	rng := rngFromSeed(seed)
	data := make([][]float64, p)
	data[0] = make([]float64, n)
	for k := 0; k < n; k++ {
		data[0][k] = rng.NormFloat64()
	}
	scale := sqrtOneMinus(rho)
	for v := 1; v < p; v++ {
		row := make([]float64, n)
		for k := 0; k < n; k++ {
			row[k] = rho*data[v-1][k] + scale*rng.NormFloat64()
		}
		data[v] = row
	}
	return data
}

// forkGaussians returns a p×n matrix with x1, x2, ... each an independent
// noisy copy of a shared parent x0, reproducing spec §8 scenario 3's fork
// structure: Corr(1,2|0) = 0.
func forkGaussians(p, n int, rho float64, seed int64) [][]float64 {
	rng := rngFromSeed(seed)
	data := make([][]float64, p)
	data[0] = make([]float64, n)
	for k := 0; k < n; k++ {
		data[0][k] = rng.NormFloat64()
	}
	scale := sqrtOneMinus(rho)
	for v := 1; v < p; v++ {
		row := make([]float64, n)
		for k := 0; k < n; k++ {
			row[k] = rho*data[0][k] + scale*rng.NormFloat64()
		}
		data[v] = row
	}
	return data
}

func sqrtOneMinus(rho float64) float64 {
	v := 1 - rho*rho
	if v < 0 {
		v = 0
	}
	return math.Sqrt(v)
}
