package factor

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
var ErrInvalidDimensions = errors.New("factor: dimensions must be > 0")

// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
var ErrIndexOutOfBounds = errors.New("factor: index out of bounds")

// ErrRowLength indicates that a row slice does not match the factor count.
var ErrRowLength = errors.New("factor: row length mismatch")

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows (entities), c is columns (latent factors), and data holds
// r*c elements in row-major order.
type Dense struct {
	r, c int
	data []float64
}

// New creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func New(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of entity rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of latent factors. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf("At", row, col, ErrIndexOutOfBounds)
	}

	return m.data[row*m.c+col], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return denseErrorf("Set", row, col, ErrIndexOutOfBounds)
	}
	m.data[row*m.c+col] = v

	return nil
}

// Row returns the latent vector of the given entity as a direct view
// into the backing storage: writes through the slice are visible in
// the matrix. The ALS optimizer relies on this to read fixed-side
// vectors without copying.
// Complexity: O(1).
func (m *Dense) Row(row int) ([]float64, error) {
	if row < 0 || row >= m.r {
		return nil, denseErrorf("Row", row, 0, ErrIndexOutOfBounds)
	}

	return m.data[row*m.c : (row+1)*m.c], nil
}

// SetRow overwrites the latent vector of the given entity with vals.
// vals must have exactly Cols() elements; it is copied, so the caller
// may reuse the slice.
// Complexity: O(c).
func (m *Dense) SetRow(row int, vals []float64) error {
	if row < 0 || row >= m.r {
		return denseErrorf("SetRow", row, 0, ErrIndexOutOfBounds)
	}
	if len(vals) != m.c {
		return denseErrorf("SetRow", row, len(vals), ErrRowLength)
	}
	copy(m.data[row*m.c:(row+1)*m.c], vals)

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var s string
	for i := 0; i < m.r; i++ {
		s += "["
		for j := 0; j < m.c; j++ {
			s += fmt.Sprintf("%g", m.data[i*m.c+j])
			if j < m.c-1 {
				s += ", "
			}
		}
		s += "]\n"
	}

	return s
}
