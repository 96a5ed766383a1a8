package linalg

import "errors"

// Sentinel errors for the linalg package. Callers should use errors.Is to
// branch on semantics rather than matching strings.
var (
	// ErrInvalidDimensions indicates requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("linalg: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates a row or column index outside the valid range.
	ErrIndexOutOfBounds = errors.New("linalg: index out of bounds")

	// ErrNonSquare indicates a square matrix was required but the input was not.
	ErrNonSquare = errors.New("linalg: matrix is not square")

	// ErrDimensionMismatch indicates incompatible operand shapes.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrSingular indicates a matrix is numerically singular even after the
	// ridge-regularization retry.
	ErrSingular = errors.New("linalg: matrix is singular")
)
