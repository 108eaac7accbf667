// Package incidence builds the four arrays the multilinear solver needs
// out of a network.Network: the demand-node incidence matrix A21, the
// fixed-head incidence matrix A10, the fixed-head vector h0, and the
// demand vector q. It is pure and deterministic: the same network always
// produces the same arrays, in SI units.
package incidence

import (
	"github.com/sdahmani/atakoris/linalg"
	"github.com/sdahmani/atakoris/network"
)

// srcMark is placed at a link's start-node row (outgoing end).
const srcMark = -1.0

// dstMark is placed at a link's end-node row (incoming end).
const dstMark = +1.0

// linkEndpoints is the ordered, flattened view of every link's (start,
// end) pair, in the fixed column order pipes-then-pumps-then-valves that
// every array in this package respects.
type linkEndpoints struct {
	start, end string
}

// orderedLinks returns every link's endpoints in declaration order,
// pipes first, then pumps, then valves — the column order A21 and the
// row order of A10 both use.
func orderedLinks(n *network.Network) []linkEndpoints {
	out := make([]linkEndpoints, 0, n.NumLinks())
	for _, p := range n.Pipes {
		out = append(out, linkEndpoints{p.Start, p.End})
	}
	for _, p := range n.Pumps {
		out = append(out, linkEndpoints{p.Start, p.End})
	}
	for _, v := range n.Valves {
		out = append(out, linkEndpoints{v.Start, v.End})
	}

	return out
}

// Assembled holds the four arrays produced by Assemble, all in SI units.
type Assembled struct {
	A21 *linalg.Dense // N_j x N_L
	A10 *linalg.Dense // N_L x N_0
	H0  []float64     // length N_0, tanks then reservoirs
	Q   []float64     // length N_j
}

// Assemble builds A21, A10, h0 and q from n, which must already have
// passed network.Network.Validate.
//
// Column order of A21 and row order of A10: pipes, then pumps, then
// valves, each in declaration order. Column order of A10: tanks, then
// reservoirs, in declaration order. Row order of A21: junctions in
// declaration order.
//
// Guarantees: every column of A21 has at most one +1 and at most one -1
// (a link connects exactly two distinct nodes); a link incident on a
// fixed-head node contributes to A10 only, never to A21.
func Assemble(n *network.Network) (*Assembled, error) {
	nj := n.NumJunctions()
	nl := n.NumLinks()
	n0 := n.NumFixedHeadNodes()

	junctionIdx := make(map[string]int, nj)
	for i, j := range n.Junctions {
		junctionIdx[j.ID] = i
	}

	fixedIdx := make(map[string]int, n0)
	h0 := make([]float64, n0)
	row := 0
	for _, t := range n.Tanks {
		fixedIdx[t.ID] = row
		h0[row] = t.Head()
		row++
	}
	for _, r := range n.Reservoirs {
		fixedIdx[r.ID] = row
		h0[row] = r.Head
		row++
	}

	a21, err := linalg.NewDense(max1(nj), max1(nl))
	if err != nil {
		return nil, err
	}
	a10, err := linalg.NewDense(max1(nl), max1(n0))
	if err != nil {
		return nil, err
	}

	for col, le := range orderedLinks(n) {
		if ji, ok := junctionIdx[le.start]; ok {
			_ = a21.Set(ji, col, srcMark)
		} else if fi, ok := fixedIdx[le.start]; ok {
			_ = a10.Set(col, fi, srcMark)
		}

		if ji, ok := junctionIdx[le.end]; ok {
			_ = a21.Set(ji, col, dstMark)
		} else if fi, ok := fixedIdx[le.end]; ok {
			_ = a10.Set(col, fi, dstMark)
		}
	}

	mult := n.Options.FlowUnit.Multiplier() * n.Options.DemandMultiplier
	q := make([]float64, nj)
	for i, j := range n.Junctions {
		q[i] = j.Demand * mult
	}

	return &Assembled{A21: a21, A10: a10, H0: h0, Q: q}, nil
}

// max1 guards NewDense's positive-dimension requirement for the
// structurally-impossible (but defensively handled) zero case.
func max1(n int) int {
	if n < 1 {
		return 1
	}

	return n
}
