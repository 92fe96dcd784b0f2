package raster

// Dense is a row-major grid of T values held in a single flat slice, the
// same layout matrix.Dense uses for its float64 tables.
type Dense[T any] struct {
	r, c int
	data []T
}

// NewDense creates a rows×cols Dense[T] grid, zero-valued for T.
// Complexity: O(rows*cols).
func NewDense[T any](rows, cols int) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// NewDenseFromRows builds a Dense[T] from a rectangular slice of rows.
// Returns ErrInvalidDimensions if rows is empty, its first row is empty, or
// rows are ragged.
func NewDenseFromRows[T any](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	cols := len(rows[0])
	d, err := NewDense[T](len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, ErrInvalidDimensions
		}
		copy(d.data[i*cols:(i+1)*cols], row)
	}

	return d, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (d *Dense[T]) Rows() int { return d.r }

// Cols returns the number of columns. Complexity: O(1).
func (d *Dense[T]) Cols() int { return d.c }

// Len returns Rows()*Cols(). Complexity: O(1).
func (d *Dense[T]) Len() int { return d.r * d.c }

func (d *Dense[T]) index(row, col int) int { return row*d.c + col }

// At returns the element at (row, col). Out-of-range indices panic, matching
// slice indexing semantics; callers that need bounds errors validate against
// Rows()/Cols() first, as distance.DistanceTransform does.
func (d *Dense[T]) At(row, col int) T { return d.data[d.index(row, col)] }

// Set assigns v at (row, col).
func (d *Dense[T]) Set(row, col int, v T) { d.data[d.index(row, col)] = v }

// AtIndex returns the element at row-major linear index i.
func (d *Dense[T]) AtIndex(i int) T { return d.data[i] }

// SetIndex assigns v at row-major linear index i.
func (d *Dense[T]) SetIndex(i int, v T) { d.data[i] = v }

// Raw returns the backing flat slice in row-major order. Mutating it
// mutates the raster; used by tests that want to assert on the whole grid
// at once.
func (d *Dense[T]) Raw() []T { return d.data }
