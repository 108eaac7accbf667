package incidence_test

import (
	"math"
	"testing"

	"github.com/sdahmani/atakoris/incidence"
	"github.com/sdahmani/atakoris/network"
)

func triangleNetwork() *network.Network {
	n := network.New("triangle")
	n.Options.FlowUnit = network.Lps
	n.Reservoirs = append(n.Reservoirs, &network.Reservoir{ID: "R1", Head: 100})
	n.Junctions = append(n.Junctions,
		&network.Junction{ID: "J1", Demand: 20},
		&network.Junction{ID: "J2", Demand: 10},
	)
	n.Pipes = append(n.Pipes,
		&network.Pipe{ID: "P1", Start: "R1", End: "J1", Length: 100, Diameter: 100, Roughness: 130, Status: network.Open},
		&network.Pipe{ID: "P2", Start: "J1", End: "J2", Length: 100, Diameter: 100, Roughness: 130, Status: network.Open},
		&network.Pipe{ID: "P3", Start: "J2", End: "R1", Length: 100, Diameter: 100, Roughness: 130, Status: network.Open},
	)

	return n
}

func TestAssembleShapes(t *testing.T) {
	n := triangleNetwork()
	a, err := incidence.Assemble(n)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if a.A21.Rows() != 2 || a.A21.Cols() != 3 {
		t.Fatalf("A21 shape = %dx%d, want 2x3", a.A21.Rows(), a.A21.Cols())
	}
	if a.A10.Rows() != 3 || a.A10.Cols() != 1 {
		t.Fatalf("A10 shape = %dx%d, want 3x1", a.A10.Rows(), a.A10.Cols())
	}
	if len(a.H0) != 1 || a.H0[0] != 100 {
		t.Fatalf("H0 = %v, want [100]", a.H0)
	}
}

func TestAssembleQIsSIConverted(t *testing.T) {
	n := triangleNetwork()
	a, err := incidence.Assemble(n)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	want := 20 * network.Lps.Multiplier()
	if math.Abs(a.Q[0]-want) > 1e-12 {
		t.Fatalf("Q[0] = %v, want %v", a.Q[0], want)
	}
}

func TestIncidenceColumnSumsToZero(t *testing.T) {
	// Invariant 1: every column of [A21;A10] sums to zero — for each
	// link, its A21 column entries plus its A10 row entries must cancel,
	// since a link touches exactly two nodes with opposite signs.
	n := triangleNetwork()
	a, err := incidence.Assemble(n)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	for link := 0; link < a.A21.Cols(); link++ {
		var sum float64
		for row := 0; row < a.A21.Rows(); row++ {
			v, _ := a.A21.At(row, link)
			sum += v
		}
		for col := 0; col < a.A10.Cols(); col++ {
			v, _ := a.A10.At(link, col)
			sum += v
		}
		if sum != 0 {
			t.Fatalf("link %d incidence does not sum to zero: %v", link, sum)
		}
	}
}

func TestLinkNotIncidentOnFixedHeadNodeOnlyInA10(t *testing.T) {
	n := triangleNetwork()
	a, err := incidence.Assemble(n)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	// Pipe 0 connects R1 (fixed head) to J1 (junction): column 0 of A21
	// must have exactly one nonzero entry (J1's row), and A10 row 0 must
	// have exactly one nonzero entry (R1's column).
	nonzero21 := 0
	for row := 0; row < a.A21.Rows(); row++ {
		v, _ := a.A21.At(row, 0)
		if v != 0 {
			nonzero21++
		}
	}
	if nonzero21 != 1 {
		t.Fatalf("expected exactly one nonzero in A21 column 0, got %d", nonzero21)
	}
	nonzero10 := 0
	for col := 0; col < a.A10.Cols(); col++ {
		v, _ := a.A10.At(0, col)
		if v != 0 {
			nonzero10++
		}
	}
	if nonzero10 != 1 {
		t.Fatalf("expected exactly one nonzero in A10 row 0, got %d", nonzero10)
	}
}

func TestSignSymmetrySwappingEndpoints(t *testing.T) {
	// Invariant 2: swapping start/end negates the link's entries; checked
	// here on its A21 entry at junction row 0.
	n1 := triangleNetwork()
	a1, err := incidence.Assemble(n1)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	n2 := triangleNetwork()
	n2.Pipes[0].Start, n2.Pipes[0].End = n2.Pipes[0].End, n2.Pipes[0].Start
	a2, err := incidence.Assemble(n2)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	v1, _ := a1.A21.At(0, 0)
	v2, _ := a2.A21.At(0, 0)
	if v1 != -v2 {
		t.Fatalf("expected negated A21 entry after endpoint swap: %v vs %v", v1, v2)
	}
}
