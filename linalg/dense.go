package linalg

import "fmt"

// denseErrorf wraps an underlying error with Dense method context.
// Example message shape: "Dense.At(3,7): linalg: index out of range".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major dense matrix of float64.
// r, c are dimensions; data holds r*c elements in row-major order.
type Dense struct {
	r, c int
	data []float64
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Returns ErrInvalidDimensions if r<=0 or c<=0.
// Complexity: O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat offset for (row,col); validates bounds.
// method names the calling Dense method in the error.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At returns the element at (row,col).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v to (row,col).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of m.
func (m *Dense) Clone() *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	copy(out.data, m.data)

	return out
}

// NewDiagonal builds an n×n Dense matrix with diag on the main diagonal
// and zero elsewhere.
func NewDiagonal(diag []float64) *Dense {
	n := len(diag)
	out := &Dense{r: n, c: n, data: make([]float64, n*n)}
	for i := 0; i < n; i++ {
		out.data[i*n+i] = diag[i]
	}

	return out
}

// String renders the matrix for debugging.
func (m *Dense) String() string {
	s := ""
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			s += fmt.Sprintf("%10.4f", m.data[i*m.c+j])
		}
		s += "\n"
	}

	return s
}
