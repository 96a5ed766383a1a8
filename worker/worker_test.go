package worker_test

import (
	"testing"

	"github.com/kkrpk/lock-free-pc-MDF/indeptest"
	"github.com/kkrpk/lock-free-pc-MDF/linalg"
	"github.com/kkrpk/lock-free-pc-MDF/pcgraph"
	"github.com/kkrpk/lock-free-pc-MDF/sepset"
	"github.com/kkrpk/lock-free-pc-MDF/stats"
	"github.com/kkrpk/lock-free-pc-MDF/worker"
	"github.com/kkrpk/lock-free-pc-MDF/workqueue"
	"github.com/stretchr/testify/require"
)

func corrFrom(t *testing.T, rows [][]float64) *linalg.Dense {
	t.Helper()
	n := len(rows)
	m, err := linalg.NewDense(n, n)
	require.NoError(t, err)
	for i, row := range rows {
		for j, v := range row {
			require.NoError(t, m.Set(i, j, v))
		}
	}
	return m
}

// TestRunDeletesIndependentEdge exercises the whole spec §4.4 pipeline for
// a single level-0 instruction on a nearly-independent pair: the worker
// should delete {0,1} and publish the empty witness.
func TestRunDeletesIndependentEdge(t *testing.T) {
	corr := corrFrom(t, [][]float64{
		{1.0, 0.0, 0.3},
		{0.0, 1.0, 0.3},
		{0.3, 0.3, 1.0},
	})
	test := indeptest.New(10000, corr)

	frozen, err := pcgraph.NewComplete(3)
	require.NoError(t, err)
	working := frozen.Clone()
	sep, err := sepset.New(3)
	require.NoError(t, err)

	q := workqueue.New(1)
	q.Enqueue(workqueue.Instruction{X: 0, Y: 1})

	ctx := worker.Context{Alpha: 0.05, Level: 0, Test: test}
	w := worker.New(ctx, frozen, working, sep, &stats.Counters{})
	require.NoError(t, w.Run(q))

	has, err := working.HasEdge(0, 1)
	require.NoError(t, err)
	require.False(t, has)

	s, ok, err := sep.Get(0, 1)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, s, 0)

	require.Equal(t, int64(1), w.Counters().TestsPerformed)
	require.Equal(t, int64(1), w.Counters().EdgesDeleted)
}

// TestRunKeepsDependentEdge checks the converse: a strongly correlated pair
// must survive.
func TestRunKeepsDependentEdge(t *testing.T) {
	corr := corrFrom(t, [][]float64{
		{1.0, 0.95},
		{0.95, 1.0},
	})
	test := indeptest.New(10000, corr)

	frozen, err := pcgraph.NewComplete(2)
	require.NoError(t, err)
	working := frozen.Clone()
	sep, err := sepset.New(2)
	require.NoError(t, err)

	q := workqueue.New(1)
	q.Enqueue(workqueue.Instruction{X: 0, Y: 1})

	ctx := worker.Context{Alpha: 0.05, Level: 0, Test: test}
	w := worker.New(ctx, frozen, working, sep, nil)
	require.NoError(t, w.Run(q))

	has, err := working.HasEdge(0, 1)
	require.NoError(t, err)
	require.True(t, has)

	_, ok, err := sep.Get(0, 1)
	require.NoError(t, err)
	require.False(t, ok)
}

// TestRunSkipsOnDegreeUnderflow verifies spec §4.4 step 2: if |A| < level the
// instruction is skipped silently, leaving both graph and stats untouched
// beyond the dequeue itself.
func TestRunSkipsOnDegreeUnderflow(t *testing.T) {
	corr := corrFrom(t, [][]float64{
		{1.0, 0.0, 0.0},
		{0.0, 1.0, 0.0},
		{0.0, 0.0, 1.0},
	})
	test := indeptest.New(10000, corr)

	// Build a path 0-1, 1-2 so vertex 0 has only one neighbor (1); at level 1,
	// A = neighbors_frozen(0) \ {1} = ∅, which is < level(1).
	frozen, err := pcgraph.NewEmpty(3)
	require.NoError(t, err)
	require.NoError(t, frozen.AddEdge(0, 1))
	require.NoError(t, frozen.AddEdge(1, 2))
	working := frozen.Clone()
	sep, err := sepset.New(3)
	require.NoError(t, err)

	q := workqueue.New(1)
	q.Enqueue(workqueue.Instruction{X: 0, Y: 1})

	counts := &stats.Counters{}
	ctx := worker.Context{Alpha: 0.05, Level: 1, Test: test}
	w := worker.New(ctx, frozen, working, sep, counts)
	require.NoError(t, w.Run(q))

	has, err := working.HasEdge(0, 1)
	require.NoError(t, err)
	require.True(t, has, "degree underflow must not touch the edge")
	require.Equal(t, int64(0), counts.TestsPerformed)
}

// TestRunStopsEnumeratingOnceEdgeAlreadyDeleted verifies spec §4.4 step 4's
// "if edge {x,y} has already been deleted from the working graph, stop"
// clause: pre-deleting the edge before Run should short-circuit immediately
// without running any test.
func TestRunStopsEnumeratingOnceEdgeAlreadyDeleted(t *testing.T) {
	corr := corrFrom(t, [][]float64{
		{1.0, 0.0},
		{0.0, 1.0},
	})
	test := indeptest.New(10000, corr)

	frozen, err := pcgraph.NewComplete(2)
	require.NoError(t, err)
	working := frozen.Clone()
	require.NoError(t, working.DeleteEdge(0, 1))
	sep, err := sepset.New(2)
	require.NoError(t, err)

	q := workqueue.New(1)
	q.Enqueue(workqueue.Instruction{X: 0, Y: 1})

	counts := &stats.Counters{}
	ctx := worker.Context{Alpha: 0.05, Level: 0, Test: test}
	w := worker.New(ctx, frozen, working, sep, counts)
	require.NoError(t, w.Run(q))

	require.Equal(t, int64(0), counts.TestsPerformed, "already-deleted edge must short-circuit before any test")
}
