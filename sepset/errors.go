package sepset

import "errors"

// Sentinel errors for the sepset package.
var (
	// ErrInvalidVariableCount indicates New was asked for p < 2.
	ErrInvalidVariableCount = errors.New("sepset: variable count must be >= 2")

	// ErrVertexOutOfRange indicates an operation referenced a vertex outside [0, p).
	ErrVertexOutOfRange = errors.New("sepset: vertex index out of range")
)
