// Package stats holds the per-worker counters of spec §3 and their
// Engine-level aggregation, grounded on original_source/skeleton.cpp's
// Statistics struct (dequed_elements, deleted_edges, test_count,
// sum_time_gaus, sum_time_queue_element).
//
// Collection is cheap enough (a handful of int64/time.Duration fields per
// worker per level) that engine.Engine always allocates and updates
// Counters, rather than gating it behind spec §3's "optional, behind a
// compile-time flag" clause — a caller who doesn't want the numbers simply
// ignores Result.Totals.
package stats
