package sepset

import (
	"fmt"
	"sync"
)

// Matrix is the concurrent separation-set store described by spec §4.5.
// Entries are stored in both (i,j) and (j,i) slots so Get is symmetric; a
// per-vertex stripe of mutexes (the same ascending-order-locking discipline
// as pcgraph.Graph.DeleteEdge) guards each row, giving SetIfEmpty the
// first-writer-wins CAS semantics spec §9 calls for without a whole-matrix
// lock on the hot path.
type Matrix struct {
	p     int
	mu    []sync.Mutex
	slots [][]int // flat p*p, slots[i*p+j] = witness for pair (i,j), nil if unset
}

// New returns an empty p×p separation-set store.
func New(p int) (*Matrix, error) {
	if p < 2 {
		return nil, fmt.Errorf("sepset: %w", ErrInvalidVariableCount)
	}
	return &Matrix{
		p:     p,
		mu:    make([]sync.Mutex, p),
		slots: make([][]int, p*p),
	}, nil
}

func (m *Matrix) checkRange(v int) error {
	if v < 0 || v >= m.p {
		return fmt.Errorf("sepset: vertex %d: %w", v, ErrVertexOutOfRange)
	}
	return nil
}

// SetIfEmpty installs s as the witness for the unordered pair {i,j} iff no
// witness has been recorded yet for that pair. If another worker already
// wrote a witness, s is discarded — first-writer-wins (spec §4.5, §9).
//
// Returns true if s was installed, false if a witness already existed.
func (m *Matrix) SetIfEmpty(i, j int, s []int) (bool, error) {
	if err := m.checkRange(i); err != nil {
		return false, err
	}
	if err := m.checkRange(j); err != nil {
		return false, err
	}
	lo, hi := i, j
	if lo > hi {
		lo, hi = hi, lo
	}
	m.mu[lo].Lock()
	m.mu[hi].Lock()
	defer m.mu[hi].Unlock()
	defer m.mu[lo].Unlock()

	if m.slots[i*m.p+j] != nil {
		return false, nil
	}
	witness := make([]int, len(s))
	copy(witness, s)
	m.slots[i*m.p+j] = witness
	m.slots[j*m.p+i] = witness
	return true, nil
}

// Get returns the witness recorded for {i,j}, or (nil, false) if no witness
// was recorded. A pair deleted at level 0 has an empty witness: Get returns
// a non-nil, zero-length slice and true.
func (m *Matrix) Get(i, j int) ([]int, bool, error) {
	if err := m.checkRange(i); err != nil {
		return nil, false, err
	}
	if err := m.checkRange(j); err != nil {
		return nil, false, err
	}
	lo, hi := i, j
	if lo > hi {
		lo, hi = hi, lo
	}
	m.mu[lo].Lock()
	defer m.mu[lo].Unlock()
	if lo != hi {
		m.mu[hi].Lock()
		defer m.mu[hi].Unlock()
	}

	s := m.slots[i*m.p+j]
	if s == nil {
		return nil, false, nil
	}
	out := make([]int, len(s))
	copy(out, s)
	return out, true, nil
}
