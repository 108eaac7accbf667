// Package coeff implements the multilinear method's per-iteration
// coefficient update: given the previous iteration's trial flow for
// every link, it produces the diagonal resistance matrix A and the
// intercept vector B that the driver solves against this round.
//
// Errors:
//
//	ErrInvalidM - the discretization parameter m is < 1.
package coeff

import "errors"

// ErrInvalidM is returned when the discretization parameter m is < 1.
var ErrInvalidM = errors.New("coeff: m must be >= 1")
