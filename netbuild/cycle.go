package netbuild

import (
	"fmt"

	"github.com/sdahmani/atakoris/network"
)

const minCycleNodes = 3

// CycleLoop builds the WDN analogue of a ring main: reservoir "R0" feeds
// junction "J1", junctions J1..J(n-1) form a simple cycle (n-1 ≥ 3
// junctions, so n ≥ 4), and the cycle's closing pipe J(n-1)->J1 gives
// every junction two independent paths back to the source — the
// redundant "loop" topology real distribution systems use for
// reliability, as opposed to Path's single point of failure per branch.
func CycleLoop(n int, opts ...Option) (*network.Network, error) {
	if n < minCycleNodes+1 {
		return nil, fmt.Errorf("netbuild.CycleLoop: n=%d < %d: %w", n, minCycleNodes+1, ErrTooFewNodes)
	}
	cfg := resolve(opts)

	net := network.New("cycle-loop")
	net.Reservoirs = append(net.Reservoirs, &network.Reservoir{ID: "R0", Head: cfg.ReservoirHead})
	for i := 1; i < n; i++ {
		net.Junctions = append(net.Junctions, &network.Junction{
			ID:        junctionID(i),
			Elevation: cfg.ElevationFn(i - 1),
			Demand:    cfg.DemandFn(i - 1),
		})
	}

	net.Pipes = append(net.Pipes, pipe(1, "R0", junctionID(1), cfg))
	pipeIdx := 2
	for i := 2; i < n; i++ {
		net.Pipes = append(net.Pipes, pipe(pipeIdx, junctionID(i-1), junctionID(i), cfg))
		pipeIdx++
	}
	// Close the ring: last junction back to the first.
	net.Pipes = append(net.Pipes, pipe(pipeIdx, junctionID(n-1), junctionID(1), cfg))

	return net, nil
}
