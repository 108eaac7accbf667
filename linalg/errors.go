// Package linalg provides the dense linear-algebra kernels used by the
// hydraulic solver: a row-major Dense matrix, Gauss-Jordan inversion,
// diagonal inversion, matrix/vector products, and transpose.
//
// All algorithms return these sentinels rather than panicking; callers
// compare with errors.Is. Wrap with fmt.Errorf("ctx: %w", ErrX) at outer
// boundaries when context is useful.
package linalg

import "errors"

var (
	// ErrInvalidDimensions is returned when a requested shape is non-positive.
	ErrInvalidDimensions = errors.New("linalg: dimensions must be > 0")

	// ErrOutOfRange indicates an index outside the valid bounds of a matrix.
	ErrOutOfRange = errors.New("linalg: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("linalg: matrix is not square")

	// ErrSingular is returned when a zero pivot is encountered during
	// Gauss-Jordan elimination. No pivoting is performed, by design.
	ErrSingular = errors.New("linalg: singular matrix (zero pivot)")
)
