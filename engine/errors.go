package engine

import "errors"

// Sentinel errors for the engine package.
var (
	// ErrInvalidAlpha indicates α was not in (0, 1).
	ErrInvalidAlpha = errors.New("engine: alpha must be in (0, 1)")

	// ErrInvalidWorkerCount indicates K < 1.
	ErrInvalidWorkerCount = errors.New("engine: worker count must be >= 1")

	// ErrInvalidSampleCount indicates n <= 3, too few samples for the
	// Fisher-z degrees-of-freedom term to ever be non-negative beyond level 0.
	ErrInvalidSampleCount = errors.New("engine: sample count must be > 3")

	// ErrNonRectangularData indicates the input rows do not all share the
	// same sample count.
	ErrNonRectangularData = errors.New("engine: data rows must have equal length")

	// ErrTooFewVariables indicates p < 2.
	ErrTooFewVariables = errors.New("engine: need at least 2 variables")

	// ErrInternalInvariant signals an error reported by pcgraph or sepset
	// during the run (such as an out-of-range vertex) or a P1/P2 violation
	// found by the graph check after the last level — a bug, not a
	// recoverable condition (spec §7's InternalAssertionFailure class). The
	// run aborts.
	ErrInternalInvariant = errors.New("engine: internal invariant violated")
)
