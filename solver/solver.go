package solver

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/sdahmani/atakoris/coeff"
	"github.com/sdahmani/atakoris/incidence"
	"github.com/sdahmani/atakoris/linalg"
	"github.com/sdahmani/atakoris/network"
	"github.com/sdahmani/atakoris/reach"
	"github.com/sdahmani/atakoris/result"
)

// Solver is transient, one-per-analysis state: it borrows a network for
// the duration of Compute and writes results back into it on success (or
// on non-convergence, best-effort). No state outlives one Compute call
// beyond the observable-outcome fields below.
type Solver struct {
	network *network.Network

	m              int
	objectiveError float64
	log            *zap.SugaredLogger

	iterations *int
	finalErrQ  *float64
	finalErrH  *float64
	elapsed    *time.Duration
}

// New binds a Solver to network, applying any Options. Defaults: m=100,
// objectiveError=1e-3, a no-op logger.
func New(n *network.Network, opts ...Option) *Solver {
	s := &Solver{
		network:        n,
		m:              100,
		objectiveError: 1e-3,
		log:            zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// SetMParameter overrides the discretization parameter after
// construction, matching the source API's setter-based configuration
// style (spec 6).
func (s *Solver) SetMParameter(m int) {
	WithM(m)(s)
}

// SetObjectiveError overrides the convergence tolerance after
// construction.
func (s *Solver) SetObjectiveError(eps float64) {
	WithObjectiveError(eps)(s)
}

// FinalIterations returns the iteration count of the most recent Compute
// call, or nil if Compute has not yet run.
func (s *Solver) FinalIterations() *int { return s.iterations }

// FinalErrors returns (errQ, errH) from the most recent Compute call, or
// nils if Compute has not yet run.
func (s *Solver) FinalErrors() (*float64, *float64) { return s.finalErrQ, s.finalErrH }

// TimeAnalysis returns the wall-clock duration of the most recent Compute
// call, or nil if Compute has not yet run.
func (s *Solver) TimeAnalysis() *time.Duration { return s.elapsed }

// Compute runs one full analysis: Init -> (Update A,B -> Solve ->
// Convergence test)* -> Terminate (spec 4.5). It mutates s.network in
// place on success, populating Head on every junction and Flow on every
// link. On ErrNonConvergence the network is still populated with the
// best-effort result from the final iteration; the caller decides how to
// react.
func (s *Solver) Compute() (*network.Network, error) {
	start := time.Now()
	n := s.network

	if err := n.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStructural, err)
	}

	if unreached := reach.Reachable(n); len(unreached) > 0 {
		return nil, fmt.Errorf("%w: demand node(s) %v unreachable from any fixed-head node", ErrStructural, unreached)
	}
	if undeliverable := reach.Feasible(n); len(undeliverable) > 0 {
		s.log.Warnw("junction(s) undeliverable under current link statuses", "junctions", undeliverable)
	}
	if achieved, demand := reach.MaxSupply(n); achieved < demand-network.FlowEpsilon {
		s.log.Warnw("topology cannot simultaneously carry all demand under current link statuses", "achieved", achieved, "demand", demand)
	}

	asm, err := incidence.Assemble(n)
	if err != nil {
		return nil, fmt.Errorf("%w: assemble: %v", ErrNumeric, err)
	}

	a12, err := linalg.Transpose(asm.A21)
	if err != nil {
		return nil, fmt.Errorf("%w: transpose A21: %v", ErrNumeric, err)
	}

	if s.m < 1 {
		return nil, fmt.Errorf("%w: %v", ErrNumeric, coeff.ErrInvalidM)
	}

	nj := asm.A21.Rows()
	nl := asm.A21.Cols()
	qMax := n.QMax()

	flowsQ := make([]float64, nl)
	for i := range flowsQ {
		flowsQ[i] = qMax
	}
	previousQ := make([]float64, nl)
	previousH := make([]float64, nj)

	s.log.Infow("starting analysis", "junctions", nj, "links", nl, "qMax", qMax)

	itermax := MaxIterations
	extended := false
	iter := 0
	var headsH, newQ []float64
	var errQ, errH float64
	var converged bool

	for {
		var coefs *coeff.Coefficients
		if iter == 0 {
			// Iteration 0 per spec 4.4 is a direct formula, not the
			// segment-slope linearization Update applies from iteration 1
			// onward.
			coefs = coeff.Initial(n, qMax)
		} else {
			var err error
			coefs, err = coeff.Update(n, flowsQ, qMax, s.m)
			if err != nil {
				return nil, fmt.Errorf("%w: coefficient update: %v", ErrNumeric, err)
			}
		}

		aDiag := linalg.NewDiagonal(coefs.A)
		invA, err := linalg.DiagInverse(aDiag)
		if err != nil {
			return nil, fmt.Errorf("%w: diagonal inverse: %v", ErrNumeric, err)
		}

		v1, err := linalg.Mul(asm.A21, invA)
		if err != nil {
			return nil, fmt.Errorf("%w: A21*Ainv: %v", ErrNumeric, err)
		}
		v, err := linalg.Mul(v1, a12)
		if err != nil {
			return nil, fmt.Errorf("%w: V assembly: %v", ErrNumeric, err)
		}

		tmpC, err := linalg.MatVec(asm.A10, asm.H0)
		if err != nil {
			return nil, fmt.Errorf("%w: A10*h0: %v", ErrNumeric, err)
		}
		c := make([]float64, nl)
		for i := 0; i < nl; i++ {
			c[i] = -coefs.B[i] - tmpC[i]
		}

		invV, err := linalg.Inverse(v)
		if err != nil {
			return nil, fmt.Errorf("%w: invert V: %v", ErrNumeric, err)
		}

		rhs, err := linalg.MatVec(v1, c)
		if err != nil {
			return nil, fmt.Errorf("%w: A21*Ainv*C: %v", ErrNumeric, err)
		}
		for i := 0; i < nj; i++ {
			rhs[i] -= asm.Q[i]
		}

		headsH, err = linalg.MatVec(invV, rhs)
		if err != nil {
			return nil, fmt.Errorf("%w: solve heads: %v", ErrNumeric, err)
		}

		tmpQL, err := linalg.MatVec(invA, c)
		if err != nil {
			return nil, fmt.Errorf("%w: Ainv*C: %v", ErrNumeric, err)
		}
		tmpQM, err := linalg.Mul(invA, a12)
		if err != nil {
			return nil, fmt.Errorf("%w: Ainv*A12: %v", ErrNumeric, err)
		}
		tmpQR, err := linalg.MatVec(tmpQM, headsH)
		if err != nil {
			return nil, fmt.Errorf("%w: Ainv*A12*H: %v", ErrNumeric, err)
		}
		newQ = make([]float64, nl)
		for i := 0; i < nl; i++ {
			newQ[i] = tmpQL[i] - tmpQR[i]
		}

		errQ = relativeError(newQ, previousQ)
		converged = errQ <= s.objectiveError
		if converged {
			errH = relativeError(headsH, previousH)
			converged = errH <= s.objectiveError
		}

		copy(previousQ, newQ)
		copy(previousH, headsH)
		flowsQ = newQ
		iter++

		s.log.Debugw("iteration complete", "iter", iter, "errQ", errQ, "errH", errH)

		if converged {
			break
		}
		if iter >= itermax {
			if !extended && n.Options.UnbalancedPolicy.ContinueIterations > 0 {
				itermax += n.Options.UnbalancedPolicy.ContinueIterations
				extended = true
				continue
			}
			break
		}
	}

	result.Write(n, headsH, newQ)

	elapsed := time.Since(start)
	s.iterations = &iter
	s.finalErrQ = &errQ
	s.finalErrH = &errH
	s.elapsed = &elapsed

	if !converged {
		s.log.Warnw("analysis did not converge", "iterations", iter, "errQ", errQ, "errH", errH)

		return n, fmt.Errorf("%w: after %d iterations (errQ=%g errH=%g)", ErrNonConvergence, iter, errQ, errH)
	}

	s.log.Infow("analysis converged", "iterations", iter, "errQ", errQ, "errH", errH, "elapsed", elapsed)

	return n, nil
}

// relativeError implements spec 4.6: sum|x_new-x_prev| / sum|x_new|. A
// zero-sum denominator (every entry of x_new is zero) is treated as
// converged (error 0) rather than dividing by zero.
func relativeError(xNew, xPrev []float64) float64 {
	var num, den float64
	for i := range xNew {
		diff := xNew[i] - xPrev[i]
		if diff < 0 {
			diff = -diff
		}
		num += diff

		v := xNew[i]
		if v < 0 {
			v = -v
		}
		den += v
	}
	if den == 0 {
		return 0
	}

	return num / den
}
