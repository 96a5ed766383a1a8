// Package worker implements the per-instruction test execution of spec
// §4.4: enumerate conditioning subsets of the current level's cardinality
// from the frozen adjacency, run the Gaussian independence test, and on
// the first rejection delete the edge from the working graph and publish
// the witness.
//
// A Worker holds no back-reference to its engine (spec §9's "Cyclic
// ownership" note): it is handed an immutable Context (α, the level, and the
// test, which carries n and the correlation matrix) plus the frozen graph,
// working graph, and separation matrix it
// needs, and nothing else.
package worker
