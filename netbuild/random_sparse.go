package netbuild

import (
	"fmt"
	"math/rand"

	"github.com/sdahmani/atakoris/network"
)

const minRandomSparseNodes = 1

// RandomSparse builds n junctions fed by reservoir "R0" (always wired to
// junction 1) and always joins each consecutive pair {i,i+1}, which
// guarantees connectivity, then samples an Erdős–Rényi-style edge among
// every other unordered junction pair {i,j}, j>i+1, independently with
// probability p. Use WithSeed for reproducible sampling; without it,
// a fixed internal seed keeps results deterministic run-to-run, since an
// unseeded topology generator would make tests that call it non-repeatable.
func RandomSparse(n int, p float64, opts ...Option) (*network.Network, error) {
	if n < minRandomSparseNodes {
		return nil, fmt.Errorf("netbuild.RandomSparse: n=%d < %d: %w", n, minRandomSparseNodes, ErrTooFewNodes)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("netbuild.RandomSparse: p=%.6f not in [0,1]: %w", p, ErrInvalidProbability)
	}
	cfg := resolve(opts)
	rng := cfg.Rng
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	net := network.New("random-sparse")
	net.Reservoirs = append(net.Reservoirs, &network.Reservoir{ID: "R0", Head: cfg.ReservoirHead})
	for i := 1; i <= n; i++ {
		net.Junctions = append(net.Junctions, &network.Junction{
			ID:        junctionID(i),
			Elevation: cfg.ElevationFn(i - 1),
			Demand:    cfg.DemandFn(i - 1),
		})
	}

	pipeIdx := 1
	net.Pipes = append(net.Pipes, pipe(pipeIdx, "R0", junctionID(1), cfg))
	pipeIdx++

	for i := 1; i <= n; i++ {
		for j := i + 1; j <= n; j++ {
			if j == i+1 || rng.Float64() <= p {
				net.Pipes = append(net.Pipes, pipe(pipeIdx, junctionID(i), junctionID(j), cfg))
				pipeIdx++
			}
		}
	}

	return net, nil
}
