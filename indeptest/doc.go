// Package indeptest implements the Fisher-z Gaussian conditional
// independence test of spec §4.2: given (i, j, S) and the precomputed
// correlation matrix, it returns the p-value for the partial correlation
// ρ_{ij·S}.
//
// Rejection convention (load-bearing, see spec §4.2's closing note): a
// LARGE p-value means the test FAILS to reject independence, which means
// the edge is DELETED. An implementation that inverts this convention
// silently inverts the whole algorithm's semantics.
package indeptest
