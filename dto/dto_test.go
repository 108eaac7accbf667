package dto_test

import (
	"testing"

	"github.com/sdahmani/atakoris/dto"
	"github.com/sdahmani/atakoris/network"
)

func sampleNetwork() *network.Network {
	n := network.New("sample")
	n.Options.FlowUnit = network.Gpm
	n.Options.HeadlossFormula = network.HW
	n.Options.Trials = 40
	n.Options.Accuracy = 1e-4
	n.Options.DemandMultiplier = 1.0

	head := 12.5
	n.Junctions = []*network.Junction{
		{ID: "J1", Elevation: 10, Demand: 0.01, Position: &network.Position{X: 1, Y: 2}, Head: &head},
	}
	n.Reservoirs = []*network.Reservoir{
		{ID: "R1", Head: 100},
	}
	n.Tanks = []*network.Tank{
		{ID: "T1", Elevation: 20, InitialLevel: 5},
	}
	flow := 0.02
	n.Pipes = []*network.Pipe{
		{ID: "P1", Start: "R1", End: "J1", Length: 100, Diameter: 200, Roughness: 130, Status: network.Open, Flow: &flow},
	}
	n.Pumps = []*network.Pump{
		{ID: "PU1", Start: "R1", End: "T1", Alpha: 1, Beta: 2, Gamma: 3, Status: network.Open},
	}
	n.Valves = []*network.Valve{
		{ID: "V1", Start: "T1", End: "J1", Type: network.PRV, KValue: 5, Status: network.Closed},
	}

	return n
}

func TestFromNetworkToNetworkRoundTrip(t *testing.T) {
	n := sampleNetwork()
	d := dto.FromNetwork(n)

	if len(d.Junctions) != 1 || d.Junctions[0].ID != "J1" {
		t.Fatalf("unexpected junctions: %+v", d.Junctions)
	}
	if d.Junctions[0].Head == nil || *d.Junctions[0].Head != 12.5 {
		t.Fatalf("expected head 12.5, got %+v", d.Junctions[0].Head)
	}
	if d.Valves[0].Type != "PRV" {
		t.Fatalf("expected PRV, got %s", d.Valves[0].Type)
	}
	if d.Valves[0].Status != "Closed" {
		t.Fatalf("expected Closed, got %s", d.Valves[0].Status)
	}

	back := d.ToNetwork()
	if len(back.Junctions) != 1 || back.Junctions[0].ID != "J1" {
		t.Fatalf("unexpected round-tripped junctions: %+v", back.Junctions)
	}
	if back.Junctions[0].Position == nil || back.Junctions[0].Position.X != 1 || back.Junctions[0].Position.Y != 2 {
		t.Fatalf("expected position (1,2), got %+v", back.Junctions[0].Position)
	}
	if back.Valves[0].Type != network.PRV {
		t.Fatalf("expected PRV, got %v", back.Valves[0].Type)
	}
	if back.Valves[0].Status != network.Closed {
		t.Fatalf("expected Closed, got %v", back.Valves[0].Status)
	}
	if back.Pipes[0].Flow == nil || *back.Pipes[0].Flow != 0.02 {
		t.Fatalf("expected flow 0.02, got %+v", back.Pipes[0].Flow)
	}
	if back.Options.FlowUnit != network.Gpm {
		t.Fatalf("expected Gpm, got %v", back.Options.FlowUnit)
	}
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	n := sampleNetwork()
	b, err := dto.Marshal(n)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	back, err := dto.Unmarshal(b)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back.Title != "sample" {
		t.Fatalf("expected title sample, got %q", back.Title)
	}
	if len(back.Pipes) != 1 || back.Pipes[0].ID != "P1" {
		t.Fatalf("unexpected pipes: %+v", back.Pipes)
	}
}

func TestToNetworkFillsDefaultsWhenOptionsZero(t *testing.T) {
	d := dto.Network{Title: "empty"}
	n := d.ToNetwork()

	def := network.DefaultOptions()
	if n.Options.Trials != def.Trials {
		t.Fatalf("expected default trials %d, got %d", def.Trials, n.Options.Trials)
	}
	if n.Options.Accuracy != def.Accuracy {
		t.Fatalf("expected default accuracy %v, got %v", def.Accuracy, n.Options.Accuracy)
	}
	if n.Options.DemandMultiplier != def.DemandMultiplier {
		t.Fatalf("expected default demand multiplier %v, got %v", def.DemandMultiplier, n.Options.DemandMultiplier)
	}
}

func TestParseValveTypeUnrecognizedDefaultsToGPV(t *testing.T) {
	if got := network.ParseValveType("nonsense"); got != network.GPV {
		t.Fatalf("expected GPV, got %v", got)
	}
	if got := network.ParseValveType("PRV"); got != network.PRV {
		t.Fatalf("expected PRV, got %v", got)
	}
}
