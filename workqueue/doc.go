// Package workqueue implements the multi-producer/multi-consumer queue of
// spec §4.3: Enqueue never blocks, TryDequeue returns immediately with
// (zero, false) when empty rather than blocking.
//
// Spec §4.3 explicitly leaves the implementation free ("lock-free ring,
// mutex + deque, etc."); this package takes the correctness-first choice of
// a single mutex guarding a growable slice with a read index, since the Engine always
// fully populates the queue before spawning workers (spec §4.3's "Engine
// fully populates the queue before spawning workers" discipline), so the
// queue sees no producer/consumer contention in practice — only
// consumer/consumer contention on TryDequeue, which a single mutex handles
// without the complexity of a lock-free structure.
package workqueue
