package pcgraph

import "errors"

// Sentinel errors for the pcgraph package.
var (
	// ErrInvalidVariableCount indicates NewEmpty or NewComplete was asked for p < 2.
	ErrInvalidVariableCount = errors.New("pcgraph: variable count must be >= 2")

	// ErrVertexOutOfRange indicates an operation referenced a vertex outside [0, p).
	ErrVertexOutOfRange = errors.New("pcgraph: vertex index out of range")

	// ErrAsymmetricAdjacency signals the symmetry invariant (P1) was violated:
	// j appeared in adj(i) without the mirrored i in adj(j). This is an
	// InternalAssertionFailure per spec §7: a bug, not a recoverable condition.
	ErrAsymmetricAdjacency = errors.New("pcgraph: symmetry invariant violated")

	// ErrSelfLoop signals the no-self-loops invariant (P2) was violated.
	ErrSelfLoop = errors.New("pcgraph: self-loop invariant violated")
)
