// Package solver implements the multilinear driver: the outer iteration
// that alternates coefficient updates, a diagonal-plus-general linear
// solve, and a convergence test, per Moosavian (2017).
//
// Errors:
//
//	ErrStructural    - fewer than two demand nodes, or zero links.
//	ErrNumeric       - a singular pivot or dimension mismatch in the
//	                   linear-algebra kernels.
//	ErrNonConvergence - the iteration cap was reached without meeting the
//	                   objective error; recoverable — the network still
//	                   holds the best-effort result.
package solver

import "errors"

// ErrStructural wraps network.Validate failures: fatal, the analysis
// never starts.
var ErrStructural = errors.New("solver: structural error")

// ErrNumeric wraps a linear-algebra kernel failure (singular pivot,
// dimension mismatch): fatal, the analysis aborts mid-flight.
var ErrNumeric = errors.New("solver: numeric error")

// ErrNonConvergence indicates the iteration cap was reached without
// meeting the objective error. The network has already been written
// with the best-effort heads/flows; the caller decides how to react.
var ErrNonConvergence = errors.New("solver: iteration cap reached without convergence")

// MaxIterations is the hard iteration cap per analysis (spec 4.5).
const MaxIterations = 20
