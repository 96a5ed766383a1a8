// Package pcgraph provides the undirected adjacency structure over variable
// indices [0, p) used by the PC-skeleton engine.
//
// Each vertex owns a sorted []int neighbor slice guarded by its own
// sync.Mutex (per-vertex locking, never a whole-graph lock — mirroring the
// teacher's per-concern sync.RWMutex discipline, generalized here to a
// per-vertex stripe since DeleteEdge must be safe under concurrent
// invocation from many workers on the same working graph).
//
// Graph is exclusively owned by engine.Engine, which publishes an immutable
// snapshot (via Clone) at each level boundary — see the dual-graph
// invariant in the package-level docs of the module's root package.
package pcgraph
