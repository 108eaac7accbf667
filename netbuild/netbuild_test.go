package netbuild_test

import (
	"errors"
	"testing"

	"github.com/sdahmani/atakoris/netbuild"
)

func TestPathShape(t *testing.T) {
	n, err := netbuild.Path(4)
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	if len(n.Junctions) != 3 || len(n.Pipes) != 3 || len(n.Reservoirs) != 1 {
		t.Fatalf("Path(4) = %d junctions, %d pipes, %d reservoirs; want 3,3,1",
			len(n.Junctions), len(n.Pipes), len(n.Reservoirs))
	}
	if err := n.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestPathTooFewNodes(t *testing.T) {
	if _, err := netbuild.Path(1); !errors.Is(err, netbuild.ErrTooFewNodes) {
		t.Fatalf("expected ErrTooFewNodes, got %v", err)
	}
}

func TestStarShape(t *testing.T) {
	n, err := netbuild.Star(5)
	if err != nil {
		t.Fatalf("Star: %v", err)
	}
	if len(n.Junctions) != 4 || len(n.Pipes) != 4 {
		t.Fatalf("Star(5) = %d junctions, %d pipes; want 4,4", len(n.Junctions), len(n.Pipes))
	}
	for _, p := range n.Pipes {
		if p.Start != "R0" {
			t.Fatalf("pipe %s should start at R0, got %s", p.ID, p.Start)
		}
	}
}

func TestCycleLoopClosesRing(t *testing.T) {
	n, err := netbuild.CycleLoop(5)
	if err != nil {
		t.Fatalf("CycleLoop: %v", err)
	}
	// 4 junctions (J1..J4), pipes: R0-J1, J1-J2, J2-J3, J3-J4, J4-J1 = 5 pipes.
	if len(n.Junctions) != 4 || len(n.Pipes) != 5 {
		t.Fatalf("CycleLoop(5) = %d junctions, %d pipes; want 4,5", len(n.Junctions), len(n.Pipes))
	}
	last := n.Pipes[len(n.Pipes)-1]
	if last.Start != "J4" || last.End != "J1" {
		t.Fatalf("closing pipe = %s->%s, want J4->J1", last.Start, last.End)
	}
}

func TestGridShape(t *testing.T) {
	n, err := netbuild.Grid(2, 3)
	if err != nil {
		t.Fatalf("Grid: %v", err)
	}
	// 2x3 = 6 cells, minus the reservoir's corner = 5 junctions.
	if len(n.Junctions) != 5 {
		t.Fatalf("len(Junctions) = %d, want 5", len(n.Junctions))
	}
	// Edges: horizontal (cols-1)*rows=2*2=4, vertical (rows-1)*cols=1*3=3 -> 7.
	if len(n.Pipes) != 7 {
		t.Fatalf("len(Pipes) = %d, want 7", len(n.Pipes))
	}
	if err := n.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestRandomSparseDeterministic(t *testing.T) {
	a, err := netbuild.RandomSparse(10, 0.3, netbuild.WithSeed(42))
	if err != nil {
		t.Fatalf("RandomSparse: %v", err)
	}
	b, err := netbuild.RandomSparse(10, 0.3, netbuild.WithSeed(42))
	if err != nil {
		t.Fatalf("RandomSparse: %v", err)
	}
	if len(a.Pipes) != len(b.Pipes) {
		t.Fatalf("same seed produced different pipe counts: %d vs %d", len(a.Pipes), len(b.Pipes))
	}
	for i := range a.Pipes {
		if a.Pipes[i].Start != b.Pipes[i].Start || a.Pipes[i].End != b.Pipes[i].End {
			t.Fatalf("pipe %d differs between runs: %+v vs %+v", i, a.Pipes[i], b.Pipes[i])
		}
	}
}

func TestRandomSparseInvalidProbability(t *testing.T) {
	if _, err := netbuild.RandomSparse(5, 1.5); !errors.Is(err, netbuild.ErrInvalidProbability) {
		t.Fatalf("expected ErrInvalidProbability, got %v", err)
	}
}

func TestWithDemandAndElevationOptions(t *testing.T) {
	n, err := netbuild.Path(3,
		netbuild.WithDemand(func(i int) float64 { return float64(i) * 0.5 }),
		netbuild.WithElevation(func(i int) float64 { return float64(i) * 2 }),
	)
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	if n.Junctions[0].Demand != 0 || n.Junctions[1].Demand != 0.5 {
		t.Fatalf("demands = %v, %v; want 0, 0.5", n.Junctions[0].Demand, n.Junctions[1].Demand)
	}
	if n.Junctions[0].Elevation != 0 || n.Junctions[1].Elevation != 2 {
		t.Fatalf("elevations = %v, %v; want 0, 2", n.Junctions[0].Elevation, n.Junctions[1].Elevation)
	}
}
