package workqueue_test

import (
	"sync"
	"testing"

	"github.com/kkrpk/lock-free-pc-MDF/workqueue"
	"github.com/stretchr/testify/require"
)

// TestTryDequeueOnEmptyReturnsFalse verifies the non-blocking contract of spec §4.3.
func TestTryDequeueOnEmptyReturnsFalse(t *testing.T) {
	q := workqueue.New(0)
	_, ok := q.TryDequeue()
	require.False(t, ok)
}

// TestEnqueueThenDequeueFIFOish verifies basic fill-then-drain behavior.
func TestEnqueueThenDequeueFIFOish(t *testing.T) {
	q := workqueue.New(4)
	q.Enqueue(workqueue.Instruction{X: 1, Y: 2})
	q.Enqueue(workqueue.Instruction{X: 3, Y: 4})

	require.Equal(t, 2, q.Len())

	ti, ok := q.TryDequeue()
	require.True(t, ok)
	require.Equal(t, workqueue.Instruction{X: 1, Y: 2}, ti)

	ti, ok = q.TryDequeue()
	require.True(t, ok)
	require.Equal(t, workqueue.Instruction{X: 3, Y: 4}, ti)

	_, ok = q.TryDequeue()
	require.False(t, ok)
}

// TestConcurrentDrainDeliversEveryInstructionExactlyOnce verifies the MPMC
// contract: many consumers draining concurrently must together receive
// every enqueued instruction exactly once, with no duplicates or losses
// (spec §5's "lock-free MPMC" row).
func TestConcurrentDrainDeliversEveryInstructionExactlyOnce(t *testing.T) {
	const total = 5000
	const consumers = 16

	q := workqueue.New(total)
	for i := 0; i < total; i++ {
		q.Enqueue(workqueue.Instruction{X: i, Y: i})
	}

	var mu sync.Mutex
	seen := make(map[int]int, total)
	var wg sync.WaitGroup
	wg.Add(consumers)
	for c := 0; c < consumers; c++ {
		go func() {
			defer wg.Done()
			for {
				ti, ok := q.TryDequeue()
				if !ok {
					return
				}
				mu.Lock()
				seen[ti.X]++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Len(t, seen, total)
	for i := 0; i < total; i++ {
		require.Equal(t, 1, seen[i], "instruction %d must be delivered exactly once", i)
	}
}

// TestConcurrentEnqueueDuringDrain exercises producers and consumers
// running at once, matching spec §4.3's "workers must tolerate spurious
// empty returns while the producer is still filling" clause, even though
// the Engine itself always fills before spawning.
func TestConcurrentEnqueueDuringDrain(t *testing.T) {
	const total = 2000
	q := workqueue.New(0)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < total; i++ {
			q.Enqueue(workqueue.Instruction{X: i})
		}
	}()

	drained := 0
	var mu sync.Mutex
	wg.Add(4)
	for c := 0; c < 4; c++ {
		go func() {
			defer wg.Done()
			for {
				_, ok := q.TryDequeue()
				if ok {
					mu.Lock()
					drained++
					mu.Unlock()
				} else if q.Len() == 0 {
					return
				}
			}
		}()
	}
	wg.Wait()

	require.LessOrEqual(t, drained, total)
}
