// Package reach runs pre-solve structural diagnostics over a network: a
// pure-topology reachability sweep from every fixed-head node, and a
// status-aware feasibility sweep that additionally respects Closed links.
// Both are advisory — callers decide whether an unreached or undeliverable
// junction should abort the analysis or merely be logged.
package reach

// source is the synthetic super-source id joined to every tank and
// reservoir; chosen to be vanishingly unlikely to collide with a real
// network entity ID.
const source = "\x00super-source\x00"

// sink is the synthetic super-sink id used by MaxSupply, joined to every
// junction with capacity equal to its demand.
const sink = "\x00super-sink\x00"

// infCap stands in for an unbounded edge capacity (super-source edges and
// Open links in MaxSupply); large enough that it never binds ahead of a
// real demand.
const infCap = 1e15
