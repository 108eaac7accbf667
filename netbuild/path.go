package netbuild

import (
	"fmt"

	"github.com/sdahmani/atakoris/network"
)

const minPathNodes = 2

// Path builds a single-source branch: reservoir "R0" feeding junctions
// "J1".."J(n-1)" in a straight line, n ≥ 2. Pipe i connects node i-1 to
// node i, for i in [1, n-1].
func Path(n int, opts ...Option) (*network.Network, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("netbuild.Path: n=%d < %d: %w", n, minPathNodes, ErrTooFewNodes)
	}
	cfg := resolve(opts)

	net := network.New("path")
	net.Reservoirs = append(net.Reservoirs, &network.Reservoir{ID: "R0", Head: cfg.ReservoirHead})
	for i := 1; i < n; i++ {
		net.Junctions = append(net.Junctions, &network.Junction{
			ID:        junctionID(i),
			Elevation: cfg.ElevationFn(i - 1),
			Demand:    cfg.DemandFn(i - 1),
		})
	}

	for i := 1; i < n; i++ {
		net.Pipes = append(net.Pipes, pipe(i, nodeID(i-1), junctionID(i), cfg))
	}

	return net, nil
}

// nodeID returns "R0" for index 0 (the reservoir) and "Ji" otherwise.
func nodeID(i int) string {
	if i == 0 {
		return "R0"
	}

	return junctionID(i)
}

func junctionID(i int) string { return fmt.Sprintf("J%d", i) }

func pipe(i int, start, end string, cfg Config) *network.Pipe {
	return &network.Pipe{
		ID:        fmt.Sprintf("P%d", i),
		Start:     start,
		End:       end,
		Length:    cfg.Length,
		Diameter:  cfg.Diameter,
		Roughness: cfg.Roughness,
		Status:    network.Open,
	}
}
