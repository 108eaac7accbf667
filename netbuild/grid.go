package netbuild

import (
	"fmt"

	"github.com/sdahmani/atakoris/network"
)

const minGridDim = 1

// gridIDFmt mirrors the coordinate scheme "r,c" (row-major), a fixed
// exception to the index-based "Ji" naming every other constructor uses
// — the 2D position is meaningful for a grid and worth keeping visible
// in the ID.
const gridIDFmt = "J%d,%d"

// Grid builds a rows×cols 4-neighborhood orthogonal mesh of junctions
// with IDs "Jr,c" (row-major), feeding it from a single reservoir "R0"
// attached at the (0,0) corner. rows, cols ≥ 1.
func Grid(rows, cols int, opts ...Option) (*network.Network, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("netbuild.Grid: rows=%d cols=%d (each must be >= %d): %w",
			rows, cols, minGridDim, ErrTooFewNodes)
	}
	cfg := resolve(opts)

	net := network.New("grid")
	net.Reservoirs = append(net.Reservoirs, &network.Reservoir{ID: "R0", Head: cfg.ReservoirHead})

	index := 0
	idOf := func(r, c int) string { return fmt.Sprintf(gridIDFmt, r, c) }
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if r == 0 && c == 0 {
				continue // corner cell is the reservoir's feed point, not a junction
			}
			net.Junctions = append(net.Junctions, &network.Junction{
				ID:        idOf(r, c),
				Elevation: cfg.ElevationFn(index),
				Demand:    cfg.DemandFn(index),
			})
			index++
		}
	}

	pipeIdx := 0
	addPipe := func(start, end string) {
		pipeIdx++
		net.Pipes = append(net.Pipes, pipe(pipeIdx, start, end, cfg))
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := idOf(r, c)
			if r == 0 && c == 0 {
				u = "R0"
			}
			if c+1 < cols {
				addPipe(u, idOf(r, c+1))
			}
			if r+1 < rows {
				addPipe(u, idOf(r+1, c))
			}
		}
	}

	return net, nil
}
