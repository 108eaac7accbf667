package linalg_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdahmani/atakoris/linalg"
)

func denseFrom(t *testing.T, rows, cols int, vals []float64) *linalg.Dense {
	t.Helper()
	m, err := linalg.NewDense(rows, cols)
	require.NoError(t, err)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			require.NoError(t, m.Set(i, j, vals[i*cols+j]))
		}
	}

	return m
}

func TestInverseIdentity(t *testing.T) {
	m := denseFrom(t, 2, 2, []float64{1, 0, 0, 1})
	inv, err := linalg.Inverse(m)
	require.NoError(t, err)
	assert.Equal(t, 1.0, mustAt(t, inv, 0, 0))
	assert.Equal(t, 0.0, mustAt(t, inv, 0, 1))
	assert.Equal(t, 0.0, mustAt(t, inv, 1, 0))
	assert.Equal(t, 1.0, mustAt(t, inv, 1, 1))
}

func TestInverseKnown(t *testing.T) {
	// [[4,7],[2,6]]^-1 = 1/10 * [[6,-7],[-2,4]]
	m := denseFrom(t, 2, 2, []float64{4, 7, 2, 6})
	inv, err := linalg.Inverse(m)
	require.NoError(t, err)
	assert.InDelta(t, 0.6, mustAt(t, inv, 0, 0), 1e-9)
	assert.InDelta(t, -0.7, mustAt(t, inv, 0, 1), 1e-9)
	assert.InDelta(t, -0.2, mustAt(t, inv, 1, 0), 1e-9)
	assert.InDelta(t, 0.4, mustAt(t, inv, 1, 1), 1e-9)
}

func TestInverseSingular(t *testing.T) {
	m := denseFrom(t, 2, 2, []float64{0, 1, 1, 1})
	_, err := linalg.Inverse(m)
	assert.True(t, errors.Is(err, linalg.ErrSingular))
}

func TestInverseNonSquare(t *testing.T) {
	m, err := linalg.NewDense(2, 3)
	require.NoError(t, err)
	_, err = linalg.Inverse(m)
	assert.True(t, errors.Is(err, linalg.ErrNonSquare))
}

func TestDiagInverse(t *testing.T) {
	m := denseFrom(t, 3, 3, []float64{
		2, 0, 0,
		0, 4, 0,
		0, 0, 5,
	})
	inv, err := linalg.DiagInverse(m)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, mustAt(t, inv, 0, 0), 1e-12)
	assert.InDelta(t, 0.25, mustAt(t, inv, 1, 1), 1e-12)
	assert.InDelta(t, 0.2, mustAt(t, inv, 2, 2), 1e-12)
}

func TestDiagInverseZeroPivot(t *testing.T) {
	m := denseFrom(t, 2, 2, []float64{0, 0, 0, 1})
	_, err := linalg.DiagInverse(m)
	assert.True(t, errors.Is(err, linalg.ErrSingular))
}

func TestMul(t *testing.T) {
	a := denseFrom(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := denseFrom(t, 3, 2, []float64{7, 8, 9, 10, 11, 12})
	c, err := linalg.Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Rows())
	assert.Equal(t, 2, c.Cols())
	assert.InDelta(t, 58, mustAt(t, c, 0, 0), 1e-12)
	assert.InDelta(t, 64, mustAt(t, c, 0, 1), 1e-12)
	assert.InDelta(t, 139, mustAt(t, c, 1, 0), 1e-12)
	assert.InDelta(t, 154, mustAt(t, c, 1, 1), 1e-12)
}

func TestMulDimensionMismatch(t *testing.T) {
	a := denseFrom(t, 2, 2, []float64{1, 2, 3, 4})
	b := denseFrom(t, 3, 2, []float64{1, 2, 3, 4, 5, 6})
	_, err := linalg.Mul(a, b)
	assert.True(t, errors.Is(err, linalg.ErrDimensionMismatch))
}

func TestMatVec(t *testing.T) {
	m := denseFrom(t, 2, 2, []float64{1, 2, 3, 4})
	y, err := linalg.MatVec(m, []float64{5, 6})
	require.NoError(t, err)
	assert.InDelta(t, 17, y[0], 1e-12)
	assert.InDelta(t, 39, y[1], 1e-12)
}

func TestTranspose(t *testing.T) {
	m := denseFrom(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	tr, err := linalg.Transpose(m)
	require.NoError(t, err)
	assert.Equal(t, 3, tr.Rows())
	assert.Equal(t, 2, tr.Cols())
	assert.InDelta(t, 6, mustAt(t, tr, 2, 1), 1e-12)
}

func TestNewDiagonal(t *testing.T) {
	d := linalg.NewDiagonal([]float64{1, 2, 3})
	assert.InDelta(t, 2.0, mustAt(t, d, 1, 1), 1e-12)
	assert.InDelta(t, 0.0, mustAt(t, d, 0, 1), 1e-12)
}

func TestVecOps(t *testing.T) {
	sum, err := linalg.AddVec([]float64{1, 2}, []float64{3, 4})
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 6}, sum)

	diff, err := linalg.SubVec([]float64{3, 4}, []float64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 2}, diff)

	scaled := linalg.ScaleVec([]float64{1, -2}, 3)
	assert.Equal(t, []float64{3, -6}, scaled)
}

func mustAt(t *testing.T, m *linalg.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)
	if math.IsNaN(v) {
		t.Fatalf("NaN at (%d,%d)", i, j)
	}

	return v
}
