// Package pcskeleton estimates the skeleton of a causal Bayesian network
// from continuous observational data using the constraint-based PC
// algorithm: a level-by-level parallel edge-elimination engine over a
// shared mutable graph.
//
// The core lives in these subpackages:
//
//	linalg/    — dense matrices, Gauss-Jordan inverse, Pearson correlation
//	pcgraph/   — concurrent sorted-adjacency undirected graph
//	sepset/    — write-once-per-pair separation-set store
//	indeptest/ — Fisher-z Gaussian conditional-independence test
//	workqueue/ — non-blocking MPMC queue of candidate-edge instructions
//	worker/    — subset enumeration and per-instruction test execution
//	stats/     — per-worker counters, aggregated by the engine
//	engine/    — the outer level loop: correlation, level-0 screening,
//	             level ℓ = 1, 2, … fill/spawn/barrier/promote cycle
//
// Parsing, logging, and result serialization are collaborators, not core
// concerns:
//
//	datasource/     — CSV → matrix loading
//	resultio/       — JSON/YAML result serialization
//	cmd/pcskeleton/ — a thin CLI wiring the two together
//
// The dual-graph invariant — a read-only frozen graph from the previous
// level and a mutable working graph for the current one, promoted at each
// level's barrier — is what lets many workers test candidate edges
// concurrently without the order of completion changing the output.
//
//	go get github.com/kkrpk/lock-free-pc-MDF/engine
package pcskeleton
