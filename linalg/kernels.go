package linalg

import "fmt"

const opInverse = "Inverse"
const opDiagInverse = "DiagInverse"
const opMul = "Mul"
const opMatVec = "MatVec"
const opTranspose = "Transpose"

func kernelErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// DiagInverse returns the inverse of a diagonal matrix: a new Dense whose
// diagonal holds 1/M[i][i] and whose off-diagonal entries are zero.
//
// Contract: m must be square. Off-diagonal entries of m are not inspected;
// callers are responsible for only using this on matrices that are
// diagonal by construction (the link-resistance matrix A).
//
// Fails with ErrNonSquare if m is not square, and ErrSingular if any
// diagonal entry is zero.
func DiagInverse(m *Dense) (*Dense, error) {
	if m.r != m.c {
		return nil, kernelErrorf(opDiagInverse, ErrNonSquare)
	}

	out, err := NewDense(m.r, m.c)
	if err != nil {
		return nil, kernelErrorf(opDiagInverse, err)
	}
	for i := 0; i < m.r; i++ {
		d := m.data[i*m.c+i]
		if d == 0 {
			return nil, kernelErrorf(opDiagInverse, ErrSingular)
		}
		out.data[i*m.c+i] = 1.0 / d
	}

	return out, nil
}

// Inverse computes M^-1 via Gauss-Jordan elimination on the augmented
// matrix [M | I], with no pivoting: the pivot at each step is M[i][i]
// exactly as it stands after prior eliminations. On a zero pivot this
// fails with ErrSingular rather than searching for a nonzero row to swap
// in — see the module's design notes on why pivoting is intentionally
// absent.
//
// Contract: m must be square.
// Complexity: O(n^3) time, O(n^2) space.
func Inverse(m *Dense) (*Dense, error) {
	if m.r != m.c {
		return nil, kernelErrorf(opInverse, ErrNonSquare)
	}
	n := m.r

	// aug holds [M | I], n rows by 2n columns, row-major.
	width := 2 * n
	aug := make([]float64, n*width)
	for i := 0; i < n; i++ {
		copy(aug[i*width:i*width+n], m.data[i*n:i*n+n])
		aug[i*width+n+i] = 1.0
	}

	for i := 0; i < n; i++ {
		pivot := aug[i*width+i]
		if pivot == 0 {
			return nil, kernelErrorf(opInverse, ErrSingular)
		}

		// Normalize row i so that aug[i][i] == 1.
		rowI := i * width
		for j := 0; j < width; j++ {
			aug[rowI+j] /= pivot
		}

		// Eliminate column i from every other row.
		for r := 0; r < n; r++ {
			if r == i {
				continue
			}
			factor := aug[r*width+i]
			if factor == 0 {
				continue
			}
			rowR := r * width
			for j := 0; j < width; j++ {
				aug[rowR+j] -= factor * aug[rowI+j]
			}
		}
	}

	out, err := NewDense(n, n)
	if err != nil {
		return nil, kernelErrorf(opInverse, err)
	}
	for i := 0; i < n; i++ {
		copy(out.data[i*n:i*n+n], aug[i*width+n:i*width+width])
	}

	return out, nil
}

// Mul computes c = a * b.
//
// Contract: a.Cols() must equal b.Rows().
// Complexity: O(r*n*c) time.
func Mul(a, b *Dense) (*Dense, error) {
	if a.c != b.r {
		return nil, kernelErrorf(opMul, ErrDimensionMismatch)
	}

	out, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, kernelErrorf(opMul, err)
	}

	for i := 0; i < a.r; i++ {
		rowA := i * a.c
		rowOut := i * b.c
		for k := 0; k < a.c; k++ {
			av := a.data[rowA+k]
			if av == 0 {
				continue
			}
			rowB := k * b.c
			for j := 0; j < b.c; j++ {
				out.data[rowOut+j] += av * b.data[rowB+j]
			}
		}
	}

	return out, nil
}

// MatVec computes y = m * x.
//
// Contract: len(x) must equal m.Cols().
func MatVec(m *Dense, x []float64) ([]float64, error) {
	if len(x) != m.c {
		return nil, kernelErrorf(opMatVec, ErrDimensionMismatch)
	}

	y := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		base := i * m.c
		var acc float64
		for j := 0; j < m.c; j++ {
			acc += m.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// Transpose returns a new Dense with rows and columns swapped.
func Transpose(m *Dense) (*Dense, error) {
	out, err := NewDense(m.c, m.r)
	if err != nil {
		return nil, kernelErrorf(opTranspose, err)
	}

	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[base+j]
		}
	}

	return out, nil
}

// SubVec returns a - b element-wise.
func SubVec(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, kernelErrorf("SubVec", ErrDimensionMismatch)
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}

	return out, nil
}

// AddVec returns a + b element-wise.
func AddVec(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, kernelErrorf("AddVec", ErrDimensionMismatch)
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}

	return out, nil
}

// ScaleVec returns alpha*x element-wise.
func ScaleVec(x []float64, alpha float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = alpha * v
	}

	return out
}
