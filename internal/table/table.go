// Package table provides the dense integer DP table shared by the
// sequence algorithms (lcs, lps).
//
// Storage is a single row-major buffer with offset i*cols + j, allocated
// once per call and discarded with the Table. Accessors do not bounds-check
// beyond what the slice itself does: every caller fills cells in a fixed
// order and only reads cells it has already written.
//
// Complexity:
//   - New: O(rows*cols) zero-init; At/Set: O(1); Slices: O(rows*cols).
package table

// Table is a rows×cols grid of ints in row-major order.
type Table struct {
	rows, cols int
	data       []int // len == rows*cols
}

// New allocates a zero-filled rows×cols table.
// Negative dimensions are clamped to zero, yielding an empty table.
func New(rows, cols int) *Table {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}

	return &Table{rows: rows, cols: cols, data: make([]int, rows*cols)}
}

// Rows returns the number of rows.
func (t *Table) Rows() int { return t.rows }

// Cols returns the number of columns.
func (t *Table) Cols() int { return t.cols }

// At returns cell (i, j).
func (t *Table) At(i, j int) int {
	return t.data[i*t.cols+j]
}

// Set writes v into cell (i, j).
func (t *Table) Set(i, j, v int) {
	t.data[i*t.cols+j] = v
}

// Row returns a no-copy view of row i; writes through the view mutate t.
func (t *Table) Row(i int) []int {
	off := i * t.cols

	return t.data[off : off+t.cols : off+t.cols]
}

// Slices materializes the table as a freshly allocated [][]int so the
// caller owns the result independently of t.
func (t *Table) Slices() [][]int {
	out := make([][]int, t.rows)
	for i := 0; i < t.rows; i++ {
		row := make([]int, t.cols)
		copy(row, t.Row(i))
		out[i] = row
	}

	return out
}
