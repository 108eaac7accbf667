package netbuild

import (
	"fmt"

	"github.com/sdahmani/atakoris/network"
)

const minStarNodes = 2

// Star builds a reservoir "R0" at the hub, directly feeding n-1 junction
// leaves "J1".."J(n-1)" each through its own pipe, n ≥ 2.
func Star(n int, opts ...Option) (*network.Network, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("netbuild.Star: n=%d < %d: %w", n, minStarNodes, ErrTooFewNodes)
	}
	cfg := resolve(opts)

	net := network.New("star")
	net.Reservoirs = append(net.Reservoirs, &network.Reservoir{ID: "R0", Head: cfg.ReservoirHead})
	for i := 1; i < n; i++ {
		net.Junctions = append(net.Junctions, &network.Junction{
			ID:        junctionID(i),
			Elevation: cfg.ElevationFn(i - 1),
			Demand:    cfg.DemandFn(i - 1),
		})
		net.Pipes = append(net.Pipes, pipe(i, "R0", junctionID(i), cfg))
	}

	return net, nil
}
