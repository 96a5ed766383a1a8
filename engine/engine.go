package engine

import (
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kkrpk/lock-free-pc-MDF/indeptest"
	"github.com/kkrpk/lock-free-pc-MDF/linalg"
	"github.com/kkrpk/lock-free-pc-MDF/pcgraph"
	"github.com/kkrpk/lock-free-pc-MDF/sepset"
	"github.com/kkrpk/lock-free-pc-MDF/stats"
	"github.com/kkrpk/lock-free-pc-MDF/worker"
	"github.com/kkrpk/lock-free-pc-MDF/workqueue"
)

// Config holds the engine's construction-time parameters, named by spec §6
// ("Inputs (from collaborators)"): α, K, plus the Logger collaborator
// boundary of SPEC_FULL.md §2.
type Config struct {
	Alpha   float64
	Workers int
	Logger  Logger
}

// Engine is the outer level loop of spec §4.6. One Engine runs one skeleton
// estimation from a data matrix to completion; it holds no per-run state
// between calls to Run.
type Engine struct {
	cfg Config
}

// New validates cfg and returns an Engine. InvalidInput conditions (spec
// §7) are reported here, at construction, fatally.
func New(cfg Config) (*Engine, error) {
	if cfg.Alpha <= 0 || cfg.Alpha >= 1 {
		return nil, ErrInvalidAlpha
	}
	if cfg.Workers < 1 {
		return nil, ErrInvalidWorkerCount
	}
	if cfg.Logger == nil {
		cfg.Logger = noopLogger{}
	}
	return &Engine{cfg: cfg}, nil
}

// Result is everything surrendered to the caller at termination (spec §3
// "Lifecycle", §6 "Outputs"): the final graph, the separation witnesses,
// and run-wide statistics.
type Result struct {
	Graph  *pcgraph.Graph
	SepSet *sepset.Matrix
	Totals *stats.Totals
	// Levels is the highest conditioning-set cardinality ℓ actually
	// processed; 0 if the run terminated after level-0 screening alone
	// (spec §8 scenario 4: "terminates without entering level 1").
	Levels int
}

// Run estimates the skeleton of data, a p×n matrix (variables × samples,
// spec §6's fixed convention). It implements spec §4.6 phases (a)-(c) in
// full: correlation bootstrap, level-0 marginal screening, and the
// fill/spawn/barrier/promote cycle for ℓ = 1, 2, ….
func (e *Engine) Run(data [][]float64) (*Result, error) {
	p, n, err := validateData(data)
	if err != nil {
		return nil, err
	}

	// Phase (a): correlation, then construct IndepTestGauss(n, C).
	corr, err := linalg.Correlation(data)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	test := indeptest.New(n, corr)

	graph, err := pcgraph.NewComplete(p)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	sep, err := sepset.New(p)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	totals := &stats.Totals{}

	// Phase (b): level 0, S = ∅ for every pair i < j.
	level0 := &stats.Counters{}
	for i := 0; i < p; i++ {
		for j := i + 1; j < p; j++ {
			start := time.Now()
			pv, terr := test.Test(i, j, nil)
			if terr != nil {
				// SingularConditioning at level 0: abandon this pair, do not delete.
				level0.RecordTest(time.Since(start), false)
				continue
			}
			deleted := pv >= e.cfg.Alpha
			level0.RecordTest(time.Since(start), deleted)
			if deleted {
				if err := graph.DeleteEdge(i, j); err != nil {
					return nil, fmt.Errorf("engine: level 0: %w", ErrInternalInvariant)
				}
				if _, err := sep.SetIfEmpty(i, j, []int{}); err != nil {
					return nil, fmt.Errorf("engine: level 0: %w", ErrInternalInvariant)
				}
			}
		}
	}
	totals.Add(level0)
	e.cfg.Logger.Printf("level 0: %d pairs screened, %d deleted", p*(p-1)/2, level0.EdgesDeleted)

	frozen := graph
	working := frozen.Clone()

	// nodes_to_test, step (c).1, seeded for ℓ=1.
	nodesToTest := make([]int, 0, p)
	for v := 0; v < p; v++ {
		cnt, err := frozen.NeighborCount(v)
		if err != nil {
			return nil, fmt.Errorf("engine: %w", ErrInternalInvariant)
		}
		if cnt-1 >= 1 {
			nodesToTest = append(nodesToTest, v)
		}
	}

	level := 1
	levelsCompleted := 0
	for len(nodesToTest) > 0 {
		q, err := e.fillQueue(frozen, nodesToTest, level)
		if err != nil {
			return nil, err
		}
		queued := q.Len()
		if queued == 0 {
			break
		}

		levelCounts, err := e.runLevel(frozen, working, sep, test, level, q)
		if err != nil {
			return nil, err
		}
		for _, c := range levelCounts {
			totals.Add(c)
		}
		e.cfg.Logger.Printf("level %d: %d instructions queued, %d tests performed", level, queued, sumTests(levelCounts))

		frozen = working.Clone()

		// Step (c).6: prune nodes whose neighbor count fell below ℓ+1.
		filtered := nodesToTest[:0]
		for _, v := range nodesToTest {
			cnt, err := frozen.NeighborCount(v)
			if err != nil {
				return nil, fmt.Errorf("engine: %w", ErrInternalInvariant)
			}
			if cnt >= level+1 {
				filtered = append(filtered, v)
			}
		}
		nodesToTest = filtered
		levelsCompleted = level
		level++
	}

	if err := frozen.CheckInvariants(); err != nil {
		return nil, fmt.Errorf("engine: %w: %v", ErrInternalInvariant, err)
	}

	return &Result{Graph: frozen, SepSet: sep, Totals: totals, Levels: levelsCompleted}, nil
}

// fillQueue implements spec §4.6 step (c).2: for each x in nodesToTest, each
// neighbor y of x (read from the frozen graph) is enqueued as (x, y) iff
// y < x or y does not qualify for this level itself (NeighborCount(y)-1 <
// level). When both endpoints qualify, the edge is enqueued once, by its
// higher-index endpoint; when only one qualifies, that endpoint enqueues
// it. A vertex still in nodesToTest that does not qualify itself can add a
// duplicate (x, y), which the worker skips as a degree underflow.
func (e *Engine) fillQueue(frozen *pcgraph.Graph, nodesToTest []int, level int) (*workqueue.Queue, error) {
	q := workqueue.New(len(nodesToTest) * 4)
	for _, x := range nodesToTest {
		nbrs, err := frozen.Neighbors(x)
		if err != nil {
			return nil, fmt.Errorf("engine: %w", ErrInternalInvariant)
		}
		for _, y := range nbrs {
			yCount, err := frozen.NeighborCount(y)
			if err != nil {
				return nil, fmt.Errorf("engine: %w", ErrInternalInvariant)
			}
			if y < x || yCount-1 < level {
				q.Enqueue(workqueue.Instruction{X: x, Y: y})
			}
		}
	}
	return q, nil
}

// runLevel implements spec §4.6 steps (c).4-5: spawn K workers over q and
// barrier-join them via errgroup.Group, the idiomatic Go shape for "spawn
// K, wait for all" (grounded in jinterlante1206-AleutianLocal's use of
// errgroup around its own worker pool). Returns each worker's Counters for
// the caller to fold into run-wide Totals.
func (e *Engine) runLevel(frozen, working *pcgraph.Graph, sep *sepset.Matrix, test *indeptest.GaussTest, level int, q *workqueue.Queue) ([]*stats.Counters, error) {
	counts := make([]*stats.Counters, e.cfg.Workers)
	var g errgroup.Group
	for k := 0; k < e.cfg.Workers; k++ {
		c := &stats.Counters{}
		counts[k] = c
		ctx := worker.Context{Alpha: e.cfg.Alpha, Level: level, Test: test}
		w := worker.New(ctx, frozen, working, sep, c)
		g.Go(func() error {
			return w.Run(q)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("engine: level %d: %w: %v", level, ErrInternalInvariant, err)
	}
	return counts, nil
}

func sumTests(counts []*stats.Counters) int64 {
	var total int64
	for _, c := range counts {
		total += c.TestsPerformed
	}
	return total
}

func validateData(data [][]float64) (p, n int, err error) {
	p = len(data)
	if p < 2 {
		return 0, 0, ErrTooFewVariables
	}
	n = len(data[0])
	for _, row := range data {
		if len(row) != n {
			return 0, 0, ErrNonRectangularData
		}
	}
	if n <= 3 {
		return 0, 0, ErrInvalidSampleCount
	}
	return p, n, nil
}
