package network

import "fmt"

// Network aggregates a water distribution network's entities and the
// options governing its analysis. It is constructed once — by the inp
// parser or by netbuild — and mutated exactly once by a successful
// solver run, which populates Head on every Junction and Flow on every
// Pipe/Pump/Valve. No other code path should mutate a Network mid-flight.
type Network struct {
	Title string

	Junctions  []*Junction
	Tanks      []*Tank
	Reservoirs []*Reservoir

	Pipes  []*Pipe
	Pumps  []*Pump
	Valves []*Valve

	Options Options
}

// New returns an empty Network with default Options.
func New(title string) *Network {
	return &Network{Title: title, Options: DefaultOptions()}
}

// NumJunctions, NumTanks, NumReservoirs, NumPipes, NumPumps, NumValves
// are cheap accessors used throughout the assembler and driver instead of
// repeated len() calls at call sites, matching the teacher's habit of
// exposing named counts on aggregate structs.
func (n *Network) NumJunctions() int  { return len(n.Junctions) }
func (n *Network) NumTanks() int      { return len(n.Tanks) }
func (n *Network) NumReservoirs() int { return len(n.Reservoirs) }
func (n *Network) NumPipes() int      { return len(n.Pipes) }
func (n *Network) NumPumps() int      { return len(n.Pumps) }
func (n *Network) NumValves() int     { return len(n.Valves) }

// NumLinks returns the total link count across all three link kinds.
func (n *Network) NumLinks() int {
	return n.NumPipes() + n.NumPumps() + n.NumValves()
}

// NumFixedHeadNodes returns the total fixed-head node count (tanks +
// reservoirs).
func (n *Network) NumFixedHeadNodes() int {
	return n.NumTanks() + n.NumReservoirs()
}

// Validate checks the structural invariants spec.md requires before an
// analysis may proceed: unique ids, link endpoints referencing existing
// nodes, start != end, pipe geometry minimums, and the "at least two demand
// nodes, at least one link" structural floor.
func (n *Network) Validate() error {
	ids := make(map[string]struct{})
	addID := func(id string) error {
		if _, dup := ids[id]; dup {
			return fmt.Errorf("%s: %w", id, ErrDuplicateID)
		}
		ids[id] = struct{}{}

		return nil
	}

	for _, j := range n.Junctions {
		if err := addID(j.ID); err != nil {
			return err
		}
	}
	for _, t := range n.Tanks {
		if err := addID(t.ID); err != nil {
			return err
		}
	}
	for _, r := range n.Reservoirs {
		if err := addID(r.ID); err != nil {
			return err
		}
	}

	if n.NumJunctions() < 2 {
		return ErrTooFewDemandNodes
	}
	if n.NumLinks() == 0 {
		return ErrNoLinks
	}

	checkEndpoints := func(id, start, end string) error {
		if start == end {
			return fmt.Errorf("%s: %w", id, ErrSelfLoop)
		}
		if _, ok := ids[start]; !ok {
			return fmt.Errorf("%s: start %q: %w", id, start, ErrUnknownNode)
		}
		if _, ok := ids[end]; !ok {
			return fmt.Errorf("%s: end %q: %w", id, end, ErrUnknownNode)
		}

		return nil
	}

	for _, p := range n.Pipes {
		if err := checkEndpoints(p.ID, p.Start, p.End); err != nil {
			return err
		}
		if p.Length < 1 {
			return fmt.Errorf("%s: %w", p.ID, ErrInvalidLength)
		}
		if p.Diameter < 1 {
			return fmt.Errorf("%s: %w", p.ID, ErrInvalidDiameter)
		}
		if p.Roughness < 1e-5 {
			return fmt.Errorf("%s: %w", p.ID, ErrInvalidRoughness)
		}
	}
	for _, p := range n.Pumps {
		if err := checkEndpoints(p.ID, p.Start, p.End); err != nil {
			return err
		}
	}
	for _, v := range n.Valves {
		if err := checkEndpoints(v.ID, v.Start, v.End); err != nil {
			return err
		}
	}

	return nil
}

// QMax returns the sum of every junction's demand converted to SI
// (m^3/s) — the discretization anchor Q_max used by the coefficient
// updater.
func (n *Network) QMax() float64 {
	mult := n.Options.FlowUnit.Multiplier()
	var sum float64
	for _, j := range n.Junctions {
		sum += j.Demand * mult * n.Options.DemandMultiplier
	}

	return sum
}
