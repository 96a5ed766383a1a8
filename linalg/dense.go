package linalg

import "fmt"

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major square-or-rectangular matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int
	data []float64
}

// NewDense creates an r×c Dense matrix initialized to zeros.
//
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return the new Dense.
//
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or reports out-of-bounds.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, denseErrorf("indexOf", row, col, ErrIndexOutOfBounds)
	}
	if col < 0 || col >= m.c {
		return 0, denseErrorf("indexOf", row, col, ErrIndexOutOfBounds)
	}
	return row*m.c + col, nil
}

// At retrieves the element at (row, col). Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}
	return m.data[idx], nil
}

// MustAt retrieves the element at (row, col) without its own bounds check:
// it panics only when row*Cols()+col falls outside the backing slice.
// Reserved for hot loops (Gauss-Jordan inversion) where indices are
// already validated by the caller's own bounds.
func (m *Dense) MustAt(row, col int) float64 {
	return m.data[row*m.c+col]
}

// Set assigns v at (row, col). Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v
	return nil
}

// Clone returns a deep copy of the matrix. Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return &Dense{r: m.r, c: m.c, data: data}
}

// Submatrix extracts the principal submatrix indexed by idx (in the given
// order, on both rows and columns) into a freshly allocated square Dense.
// Used by indeptest to carve out the {i, j} ∪ S block of the correlation
// matrix. Complexity: O(len(idx)^2).
func (m *Dense) Submatrix(idx []int) (*Dense, error) {
	k := len(idx)
	out, err := NewDense(k, k)
	if err != nil {
		return nil, err
	}
	for a := 0; a < k; a++ {
		for b := 0; b < k; b++ {
			v, err := m.At(idx[a], idx[b])
			if err != nil {
				return nil, fmt.Errorf("Submatrix: %w", err)
			}
			_ = out.Set(a, b, v)
		}
	}
	return out, nil
}

// ToRows copies m into a [][]float64 of m.Rows() row slices, the shape
// engine.Run and linalg.Correlation consume. Used at the collaborator
// boundary (datasource) where a loaded matrix must be handed to the core
// as plain rows rather than a Dense. Complexity: O(r*c).
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}
	return out
}
