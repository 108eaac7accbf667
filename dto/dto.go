// Package dto defines a JSON-serializable boundary representation of a
// network.Network, for embedding in request/response bodies, CLI batch
// output, or any other external surface that should not depend on the
// internal entity types directly.
//
// This mirrors the FFI boundary the original implementation exposed
// (ffi_dto::NetworkDto) but covers every entity kind rather than
// junctions alone — the original DTO's other fields were commented out
// as not-yet-implemented; this module implements all of them.
package dto

import (
	"encoding/json"
	"fmt"

	"github.com/sdahmani/atakoris/network"
)

// Position mirrors network.Position.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Junction mirrors network.Junction, with Head present only after a
// solve.
type Junction struct {
	ID        string    `json:"id"`
	Elevation float64   `json:"elevation"`
	Demand    float64   `json:"demand"`
	Pattern   string    `json:"pattern,omitempty"`
	Position  *Position `json:"position,omitempty"`
	Head      *float64  `json:"head,omitempty"`
}

// Tank mirrors network.Tank.
type Tank struct {
	ID           string    `json:"id"`
	Elevation    float64   `json:"elevation"`
	InitialLevel float64   `json:"initial_level"`
	Position     *Position `json:"position,omitempty"`
}

// Reservoir mirrors network.Reservoir.
type Reservoir struct {
	ID       string    `json:"id"`
	Head     float64   `json:"head"`
	Pattern  string    `json:"pattern,omitempty"`
	Position *Position `json:"position,omitempty"`
}

// Pipe mirrors network.Pipe, with Flow present only after a solve.
type Pipe struct {
	ID         string   `json:"id"`
	Start      string   `json:"start"`
	End        string   `json:"end"`
	Length     float64  `json:"length"`
	Diameter   float64  `json:"diameter"`
	Roughness  float64  `json:"roughness"`
	MinorLoss  float64  `json:"minor_loss,omitempty"`
	CheckValve bool     `json:"check_valve,omitempty"`
	Status     string   `json:"status"`
	Flow       *float64 `json:"flow,omitempty"`
}

// Pump mirrors network.Pump.
type Pump struct {
	ID          string   `json:"id"`
	Start       string   `json:"start"`
	End         string   `json:"end"`
	Alpha       float64  `json:"alpha,omitempty"`
	Beta        float64  `json:"beta,omitempty"`
	Gamma       float64  `json:"gamma,omitempty"`
	PowerRating float64  `json:"power_rating,omitempty"`
	Status      string   `json:"status"`
	Flow        *float64 `json:"flow,omitempty"`
}

// Valve mirrors network.Valve.
type Valve struct {
	ID     string   `json:"id"`
	Start  string   `json:"start"`
	End    string   `json:"end"`
	Type   string   `json:"type"`
	KValue float64  `json:"k_value"`
	Status string   `json:"status"`
	Flow   *float64 `json:"flow,omitempty"`
}

// Options carries a subset of network.Options. Viscosity,
// UnbalancedPolicy and EmitterExponent are not carried: ToNetwork leaves
// Viscosity and EmitterExponent at zero and sets UnbalancedPolicy to
// network.StopAtMax.
type Options struct {
	FlowUnit         string  `json:"flow_unit"`
	HeadlossFormula  string  `json:"headloss_formula"`
	Trials           int     `json:"trials,omitempty"`
	Accuracy         float64 `json:"accuracy,omitempty"`
	Pattern          string  `json:"pattern,omitempty"`
	DemandMultiplier float64 `json:"demand_multiplier,omitempty"`
}

// Network is the full JSON boundary representation of a
// network.Network, title through options, solved or unsolved.
type Network struct {
	Title      string      `json:"title"`
	Junctions  []Junction  `json:"junctions,omitempty"`
	Tanks      []Tank      `json:"tanks,omitempty"`
	Reservoirs []Reservoir `json:"reservoirs,omitempty"`
	Pipes      []Pipe      `json:"pipes,omitempty"`
	Pumps      []Pump      `json:"pumps,omitempty"`
	Valves     []Valve     `json:"valves,omitempty"`
	Options    Options     `json:"options"`
}

func position(p *network.Position) *Position {
	if p == nil {
		return nil
	}

	return &Position{X: p.X, Y: p.Y}
}

func toNetworkPosition(p *Position) *network.Position {
	if p == nil {
		return nil
	}

	return &network.Position{X: p.X, Y: p.Y}
}

// FromNetwork converts an internal network.Network into its JSON
// boundary representation, carrying Head/Flow results when present.
func FromNetwork(n *network.Network) Network {
	d := Network{
		Title: n.Title,
		Options: Options{
			FlowUnit:         n.Options.FlowUnit.String(),
			HeadlossFormula:  n.Options.HeadlossFormula.String(),
			Trials:           n.Options.Trials,
			Accuracy:         n.Options.Accuracy,
			Pattern:          n.Options.Pattern,
			DemandMultiplier: n.Options.DemandMultiplier,
		},
	}

	for _, j := range n.Junctions {
		d.Junctions = append(d.Junctions, Junction{
			ID: j.ID, Elevation: j.Elevation, Demand: j.Demand, Pattern: j.Pattern,
			Position: position(j.Position), Head: j.Head,
		})
	}
	for _, t := range n.Tanks {
		d.Tanks = append(d.Tanks, Tank{
			ID: t.ID, Elevation: t.Elevation, InitialLevel: t.InitialLevel, Position: position(t.Position),
		})
	}
	for _, r := range n.Reservoirs {
		d.Reservoirs = append(d.Reservoirs, Reservoir{
			ID: r.ID, Head: r.Head, Pattern: r.Pattern, Position: position(r.Position),
		})
	}
	for _, p := range n.Pipes {
		d.Pipes = append(d.Pipes, Pipe{
			ID: p.ID, Start: p.Start, End: p.End, Length: p.Length, Diameter: p.Diameter,
			Roughness: p.Roughness, MinorLoss: p.MinorLoss, CheckValve: p.CheckValve,
			Status: p.Status.String(), Flow: p.Flow,
		})
	}
	for _, pu := range n.Pumps {
		d.Pumps = append(d.Pumps, Pump{
			ID: pu.ID, Start: pu.Start, End: pu.End, Alpha: pu.Alpha, Beta: pu.Beta, Gamma: pu.Gamma,
			PowerRating: pu.PowerRating, Status: pu.Status.String(), Flow: pu.Flow,
		})
	}
	for _, v := range n.Valves {
		d.Valves = append(d.Valves, Valve{
			ID: v.ID, Start: v.Start, End: v.End, Type: v.Type.String(), KValue: v.KValue,
			Status: v.Status.String(), Flow: v.Flow,
		})
	}

	return d
}

// ToNetwork converts a JSON boundary Network back into the internal
// representation, re-resolving enum-like string fields (flow unit,
// headloss formula, link status, valve type) via the same tolerant
// parsers the .inp reader uses.
func (d Network) ToNetwork() *network.Network {
	n := network.New(d.Title)
	n.Options = network.Options{
		FlowUnit:         network.ParseFlowUnit(d.Options.FlowUnit),
		HeadlossFormula:  network.ParseHeadlossFormula(d.Options.HeadlossFormula),
		Trials:           d.Options.Trials,
		Accuracy:         d.Options.Accuracy,
		Pattern:          d.Options.Pattern,
		DemandMultiplier: d.Options.DemandMultiplier,
		UnbalancedPolicy: network.StopAtMax,
	}
	if n.Options.Trials == 0 {
		n.Options.Trials = network.DefaultOptions().Trials
	}
	if n.Options.Accuracy == 0 {
		n.Options.Accuracy = network.DefaultOptions().Accuracy
	}
	if n.Options.DemandMultiplier == 0 {
		n.Options.DemandMultiplier = network.DefaultOptions().DemandMultiplier
	}

	for _, j := range d.Junctions {
		n.Junctions = append(n.Junctions, &network.Junction{
			ID: j.ID, Elevation: j.Elevation, Demand: j.Demand, Pattern: j.Pattern,
			Position: toNetworkPosition(j.Position), Head: j.Head,
		})
	}
	for _, t := range d.Tanks {
		n.Tanks = append(n.Tanks, &network.Tank{
			ID: t.ID, Elevation: t.Elevation, InitialLevel: t.InitialLevel, Position: toNetworkPosition(t.Position),
		})
	}
	for _, r := range d.Reservoirs {
		n.Reservoirs = append(n.Reservoirs, &network.Reservoir{
			ID: r.ID, Head: r.Head, Pattern: r.Pattern, Position: toNetworkPosition(r.Position),
		})
	}
	for _, p := range d.Pipes {
		n.Pipes = append(n.Pipes, &network.Pipe{
			ID: p.ID, Start: p.Start, End: p.End, Length: p.Length, Diameter: p.Diameter,
			Roughness: p.Roughness, MinorLoss: p.MinorLoss, CheckValve: p.CheckValve,
			Status: network.ParseStatus(p.Status), Flow: p.Flow,
		})
	}
	for _, pu := range d.Pumps {
		n.Pumps = append(n.Pumps, &network.Pump{
			ID: pu.ID, Start: pu.Start, End: pu.End, Alpha: pu.Alpha, Beta: pu.Beta, Gamma: pu.Gamma,
			PowerRating: pu.PowerRating, Status: network.ParseStatus(pu.Status), Flow: pu.Flow,
		})
	}
	for _, v := range d.Valves {
		n.Valves = append(n.Valves, &network.Valve{
			ID: v.ID, Start: v.Start, End: v.End, Type: network.ParseValveType(v.Type), KValue: v.KValue,
			Status: network.ParseStatus(v.Status), Flow: v.Flow,
		})
	}

	return n
}

// Marshal renders n as indented JSON.
func Marshal(n *network.Network) ([]byte, error) {
	b, err := json.MarshalIndent(FromNetwork(n), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("dto.Marshal: %w", err)
	}

	return b, nil
}

// Unmarshal parses JSON produced by Marshal (or any compatible document)
// back into a *network.Network.
func Unmarshal(data []byte) (*network.Network, error) {
	var d Network
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("dto.Unmarshal: %w", err)
	}

	return d.ToNetwork(), nil
}
