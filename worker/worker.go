package worker

import (
	"errors"
	"time"

	"github.com/kkrpk/lock-free-pc-MDF/indeptest"
	"github.com/kkrpk/lock-free-pc-MDF/pcgraph"
	"github.com/kkrpk/lock-free-pc-MDF/sepset"
	"github.com/kkrpk/lock-free-pc-MDF/stats"
	"github.com/kkrpk/lock-free-pc-MDF/workqueue"
)

// Worker consumes TestInstructions from a shared Queue, enumerating
// conditioning subsets against the frozen graph and mutating the working
// graph and separation matrix, exactly per spec §4.4. A Worker has no
// knowledge of the Engine that created it (spec §9).
type Worker struct {
	ctx     Context
	frozen  *pcgraph.Graph
	working *pcgraph.Graph
	sep     *sepset.Matrix
	counts  *stats.Counters
}

// New constructs a Worker for one level. frozen is read-only for the
// duration of the level; working and sep are shared and mutated by every
// worker in the pool. counts may be nil if the caller does not want
// statistics collected (spec §3's optional-by-flag clause).
func New(ctx Context, frozen, working *pcgraph.Graph, sep *sepset.Matrix, counts *stats.Counters) *Worker {
	if counts == nil {
		counts = &stats.Counters{}
	}
	return &Worker{ctx: ctx, frozen: frozen, working: working, sep: sep, counts: counts}
}

// Run drains q until TryDequeue reports empty, processing each instruction
// per spec §4.4. It returns only an InternalAssertionFailure-class error
// (spec §7): anything else (degree underflow, singular conditioning) is
// recovered internally and only visible through Counters.
func (w *Worker) Run(q *workqueue.Queue) error {
	for {
		dequeueStart := time.Now()
		ti, ok := q.TryDequeue()
		if !ok {
			return nil
		}
		w.counts.RecordDequeue(time.Since(dequeueStart))
		if err := w.processInstruction(ti.X, ti.Y); err != nil {
			return err
		}
	}
}

// Counters exposes the worker's accumulated statistics for Engine-level
// aggregation at the level barrier.
func (w *Worker) Counters() *stats.Counters { return w.counts }

// processInstruction implements spec §4.4 steps 1-5 for one (x, y) pair.
func (w *Worker) processInstruction(x, y int) error {
	// Step 1: A = neighbors_frozen(x) \ {y}.
	frozenNeighbors, err := w.frozen.Neighbors(x)
	if err != nil {
		// An in-range vertex never fails Neighbors(); reaching here means
		// the Engine enqueued an out-of-range index, a bug per spec §7's
		// InternalAssertionFailure class, not a recoverable condition.
		return err
	}
	a := removeValue(frozenNeighbors, y)

	// Step 2: DegreeUnderflow — expected, skip silently (spec §7).
	if len(a) < w.ctx.Level {
		return nil
	}

	// Step 3-4: enumerate subsets of size ℓ in lexicographic order and test.
	Subsets(a, w.ctx.Level, func(s []int) bool {
		// Step 4 (pre-check): another worker may have already deleted
		// {x,y}; stop enumerating once that happens.
		stillPresent, hasErr := w.working.HasEdge(x, y)
		if hasErr != nil {
			return true
		}
		if !stillPresent {
			return true
		}

		testStart := time.Now()
		p, testErr := w.ctx.Test.Test(x, y, s)
		if testErr != nil {
			w.counts.RecordTest(time.Since(testStart), false)
			if errors.Is(testErr, indeptest.ErrCannotTest) {
				// SingularConditioning: treated as "not deleting", keep
				// enumerating the remaining subsets (spec §4.2, §7).
				return false
			}
			return false
		}

		if p >= w.ctx.Alpha {
			_ = w.working.DeleteEdge(x, y)
			_, _ = w.sep.SetIfEmpty(x, y, s)
			w.counts.RecordTest(time.Since(testStart), true)
			return true // break out of the subset loop (spec §4.4 step 4c)
		}
		w.counts.RecordTest(time.Since(testStart), false)
		return false
	})

	return nil
}

func removeValue(sorted []int, v int) []int {
	out := make([]int, 0, len(sorted))
	for _, x := range sorted {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}
