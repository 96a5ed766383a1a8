// Package linalg provides the small, dense linear-algebra primitives the
// PC-skeleton engine needs: a row-major Dense matrix, Pearson correlation
// between data rows (one row per variable), and a Gauss-Jordan inverse with a ridge-regularized
// fallback for near-singular submatrices.
//
// The package intentionally covers only what indeptest and engine consume —
// it is not a general-purpose matrix library.
package linalg
