// Package result writes a converged (or best-effort, on non-convergence)
// solver state back onto a network.Network's entities, in the network's
// declared flow unit rather than the solver's internal SI.
package result

import "github.com/sdahmani/atakoris/network"

// Write maps heads onto junctions and flows onto links (pipes, then
// pumps at offset N_pipe, then valves at offset N_pipe+N_pump), dividing
// every flow by the flow-unit multiplier to restore the user's unit.
//
// heads has length N_j, flows has length N_L, both ordered exactly as
// incidence.Assemble produced its matrices.
func Write(n *network.Network, heads, flows []float64) {
	mult := n.Options.FlowUnit.Multiplier()

	for i, j := range n.Junctions {
		h := heads[i]
		j.Head = &h
	}

	k := 0
	for _, p := range n.Pipes {
		f := flows[k] / mult
		p.Flow = &f
		k++
	}
	for _, pu := range n.Pumps {
		f := flows[k] / mult
		pu.Flow = &f
		k++
	}
	for _, v := range n.Valves {
		f := flows[k] / mult
		v.Flow = &f
		k++
	}
}
