package coeff

import (
	"math"

	"github.com/sdahmani/atakoris/network"
)

// HWExponent is the Hazen-Williams head-loss exponent n = 1.852.
const HWExponent = 1.852

// segment holds the piecewise-linear secant placed under a trial flow
// magnitude: [a,b] is the ΔQ-wide bracket containing |Q|, and slope is
// the secant slope of x^n over that bracket.
type segment struct {
	a, b, slope float64
}

// placeSegment finds the ΔQ-wide bracket [a, a+ΔQ) containing |q| and
// returns its secant slope of x^n, per spec 4.4:
//
//	k = floor(|q| / ΔQ); a = k*ΔQ; b = a + ΔQ; slope = (b^n - a^n)/(b-a)
func placeSegment(q, deltaQ, exponent float64) segment {
	absQ := math.Abs(q)
	k := int(absQ / deltaQ)
	a := float64(k) * deltaQ
	b := a + deltaQ

	return segment{a: a, b: b, slope: (math.Pow(b, exponent) - math.Pow(a, exponent)) / (b - a)}
}

func sign(q float64) float64 {
	if q < 0 {
		return -1
	}

	return 1
}

// Coefficients holds the diagonal resistance matrix A (stored as a
// vector, since A is diagonal by construction — spec 9) and the
// intercept vector B, both length N_L, ordered pipes, pumps, valves.
type Coefficients struct {
	A []float64
	B []float64
}

// Initial returns the iteration-0 coefficients: R_pipe(Q_max)*Q_max on
// pipe diagonals, a sentinel 1.0 on pump diagonals, and valve
// resistance-at-Q_max on valve diagonals, with B all zero — per spec
// 4.4's description of the initial state before any trial-flow-driven
// linearization has run.
func Initial(n *network.Network, qMax float64) *Coefficients {
	nl := n.NumLinks()
	c := &Coefficients{A: make([]float64, nl), B: make([]float64, nl)}

	idx := 0
	for _, p := range n.Pipes {
		c.A[idx] = p.Resistance(qMax) * qMax
		idx++
	}
	for range n.Pumps {
		c.A[idx] = 1.0
		idx++
	}
	for _, v := range n.Valves {
		c.A[idx] = v.ResistedFlow(qMax)
		idx++
	}

	return c
}

// Update recomputes A and B from the previous iteration's trial flow
// vector q (SI, signed, ordered pipes-then-pumps-then-valves), per spec
// 4.4:
//
//	Pipes: A[i] = R(Q_i)*slope,  B[i] = -sign(Q_i)*R(Q_i)*(slope*a - a^n)
//	Pumps: A[i] = -(alpha*slope+beta), B[i] = alpha*(slope*a - a^2) - gamma
//	Valves: same form as pipes, with R(Q) = the valve's resistance law.
//
// A pump whose Status is Closed, or whose flow magnitude falls below
// network.FlowEpsilon (Closed-for-this-iteration), gets the sentinel
// 1e20 resistance from spec 4.1, with a zero intercept.
func Update(n *network.Network, q []float64, qMax float64, m int) (*Coefficients, error) {
	if m < 1 {
		return nil, ErrInvalidM
	}
	deltaQ := qMax / float64(m)
	if deltaQ == 0 {
		deltaQ = 1
	}

	nl := n.NumLinks()
	c := &Coefficients{A: make([]float64, nl), B: make([]float64, nl)}

	idx := 0
	for _, p := range n.Pipes {
		qi := q[idx]
		seg := placeSegment(qi, deltaQ, HWExponent)
		r := p.Resistance(qi)
		c.A[idx] = r * seg.slope
		c.B[idx] = -sign(qi) * r * (seg.slope*seg.a - math.Pow(seg.a, HWExponent))
		idx++
	}

	for _, pu := range n.Pumps {
		qi := q[idx]
		if pu.Status == network.Closed || math.Abs(qi) < network.FlowEpsilon {
			// Closed (or closed-for-this-iteration) sentinel per spec 4.1.
			c.A[idx] = 1e20
			c.B[idx] = 0
			idx++
			continue
		}
		seg := placeSegment(qi, deltaQ, HWExponent)
		c.A[idx] = -(pu.Alpha*seg.slope + pu.Beta)
		c.B[idx] = pu.Alpha*(seg.slope*seg.a-seg.a*seg.a) - pu.Gamma
		idx++
	}

	for _, v := range n.Valves {
		qi := q[idx]
		seg := placeSegment(qi, deltaQ, HWExponent)
		r := valveResistance(v, qi, qMax)
		c.A[idx] = r * seg.slope
		c.B[idx] = -sign(qi) * r * (seg.slope*seg.a - math.Pow(seg.a, HWExponent))
		idx++
	}

	return c, nil
}

// valveResistance returns R(Q) = k*|Q|, the valve's resistance law per
// spec 4.4 (same form as a pipe's R(Q), which also scales with the trial
// flow rather than staying a bare k-value), falling back to the
// Q_max-normalized rate when q is too small to divide by safely.
func valveResistance(v *network.Valve, q, qMax float64) float64 {
	if q < -network.FlowEpsilon || q > network.FlowEpsilon {
		return v.ResistedFlow(q) / q * math.Abs(q)
	}

	return v.ResistedFlow(qMax) / qMax * math.Abs(qMax)
}
