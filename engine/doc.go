// Package engine implements the outer level loop of the PC-skeleton
// algorithm: correlation bootstrap, level-0 marginal screening, and the
// level ℓ = 1, 2, … fill/spawn/barrier/promote cycle that drives worker.Worker
// over pcgraph.Graph, sepset.Matrix and workqueue.Queue until no vertex can
// support another level of conditioning.
//
// Engine owns every piece of shared state for the duration of a run; it
// never hands a back-reference to itself to a Worker (see worker.Context).
package engine
