package sparse

import (
	"fmt"
	"sort"
	"sync"
)

// Bool is an immutable boolean matrix in compressed-sparse-row form.
// rowPtr has length rows+1; colIdx[rowPtr[r]:rowPtr[r+1]] holds the
// sorted, duplicate-free column indices of row r.
type Bool struct {
	rows, cols int
	rowPtr     []int
	colIdx     []int

	tOnce sync.Once
	t     *Bool // cached transpose, built on first Transposed() call
}

// NewBool builds a rows×cols boolean matrix from a list of (row, col)
// entries. Duplicate entries collapse to a single observation.
//
// Stage 1 (Validate): rows, cols > 0 and every entry in range.
// Stage 2 (Prepare):  bucket entries per row.
// Stage 3 (Finalize): sort and dedupe each row, flatten into CSR.
// Complexity: O(rows + nnz·log nnz) time, O(rows + nnz) memory.
func NewBool(rows, cols int, entries [][2]int) (*Bool, error) {
	// Validate shape before touching any entry.
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewBool(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	// Bucket column indices per row, rejecting out-of-range pairs.
	buckets := make([][]int, rows)
	for n, e := range entries {
		r, c := e[0], e[1]
		if r < 0 || r >= rows {
			return nil, fmt.Errorf("NewBool: entry %d row %d: %w", n, r, ErrOutOfRange)
		}
		if c < 0 || c >= cols {
			return nil, fmt.Errorf("NewBool: entry %d col %d: %w", n, c, ErrOutOfRange)
		}
		buckets[r] = append(buckets[r], c)
	}

	// Sort and dedupe each row, then flatten into CSR arrays.
	rowPtr := make([]int, rows+1)
	colIdx := make([]int, 0, len(entries))
	var r, k, last int
	for r = 0; r < rows; r++ {
		rowPtr[r] = len(colIdx)
		b := buckets[r]
		sort.Ints(b)
		last = -1
		for k = 0; k < len(b); k++ {
			if b[k] == last {
				continue // collapse duplicate observation
			}
			colIdx = append(colIdx, b[k])
			last = b[k]
		}
	}
	rowPtr[rows] = len(colIdx)

	return &Bool{rows: rows, cols: cols, rowPtr: rowPtr, colIdx: colIdx}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Bool) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Bool) Cols() int { return m.cols }

// NNZ returns the number of observed (non-zero) entries. Complexity: O(1).
func (m *Bool) NNZ() int { return len(m.colIdx) }

// RowEntries returns the sorted column indices of the observed entries
// in row r. The returned slice is a view into the shared CSR index;
// callers must not mutate it.
// Complexity: O(1).
func (m *Bool) RowEntries(r int) ([]int, error) {
	if r < 0 || r >= m.rows {
		return nil, fmt.Errorf("RowEntries(%d): %w", r, ErrOutOfRange)
	}

	return m.colIdx[m.rowPtr[r]:m.rowPtr[r+1]], nil
}

// Has reports whether entry (r, c) is observed, via binary search on
// the row's sorted index. Complexity: O(log |row|).
func (m *Bool) Has(r, c int) (bool, error) {
	row, err := m.RowEntries(r)
	if err != nil {
		return false, err
	}
	if c < 0 || c >= m.cols {
		return false, fmt.Errorf("Has(%d,%d): %w", r, c, ErrOutOfRange)
	}
	i := sort.SearchInts(row, c)

	return i < len(row) && row[i] == c, nil
}

// Transposed returns the cols×rows transpose of m. The transpose is
// materialized on the first call and cached; subsequent calls (from
// any goroutine) return the same instance. The transpose of the
// transpose is the original matrix.
// Complexity: O(rows + nnz) first call, O(1) afterwards.
func (m *Bool) Transposed() *Bool {
	m.tOnce.Do(func() {
		// Counting pass: entries per column become rows of the transpose.
		rowPtr := make([]int, m.cols+1)
		for _, c := range m.colIdx {
			rowPtr[c+1]++
		}
		for c := 0; c < m.cols; c++ {
			rowPtr[c+1] += rowPtr[c]
		}

		// Fill pass: walking rows in order yields sorted indices per
		// transposed row without any extra sort.
		colIdx := make([]int, len(m.colIdx))
		next := make([]int, m.cols)
		copy(next, rowPtr[:m.cols])
		var r, k int
		for r = 0; r < m.rows; r++ {
			for k = m.rowPtr[r]; k < m.rowPtr[r+1]; k++ {
				c := m.colIdx[k]
				colIdx[next[c]] = r
				next[c]++
			}
		}

		t := &Bool{rows: m.cols, cols: m.rows, rowPtr: rowPtr, colIdx: colIdx}
		t.t = m
		t.tOnce.Do(func() {}) // mark the back-reference as resolved
		m.t = t
	})

	return m.t
}

// String implements fmt.Stringer for debugging; rows are rendered as
// index lists. Complexity: O(rows + nnz).
func (m *Bool) String() string {
	s := fmt.Sprintf("sparse.Bool %dx%d nnz=%d\n", m.rows, m.cols, len(m.colIdx))
	for r := 0; r < m.rows; r++ {
		s += fmt.Sprintf("%d: %v\n", r, m.colIdx[m.rowPtr[r]:m.rowPtr[r+1]])
	}

	return s
}
