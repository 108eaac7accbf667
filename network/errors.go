// Package network defines the water-distribution-network entity model:
// nodes (Junction, Tank, Reservoir), links (Pipe, Pump, Valve), the
// Options bundle that selects units and tolerances, and the Network
// aggregate itself.
//
// Errors:
//
//	ErrDuplicateID     - a node or link ID collides with an existing one.
//	ErrUnknownNode     - a link references a node ID that does not exist.
//	ErrSelfLoop        - a link's start and end are the same node.
//	ErrInvalidLength   - a pipe's length is below the minimum (1 m).
//	ErrInvalidDiameter - a pipe's diameter is below the minimum (1 mm).
//	ErrInvalidRoughness - a pipe's roughness is below the minimum (1e-5).
//	ErrTooFewDemandNodes - fewer than two junctions (structural).
//	ErrNoLinks         - zero links (structural).
package network

import "errors"

var (
	// ErrDuplicateID indicates a node or link ID collides with one already present.
	ErrDuplicateID = errors.New("network: duplicate id")

	// ErrUnknownNode indicates a link references a node id that does not exist.
	ErrUnknownNode = errors.New("network: unknown node id")

	// ErrSelfLoop indicates a link's start and end refer to the same node.
	ErrSelfLoop = errors.New("network: link start equals end")

	// ErrInvalidLength indicates a pipe length below the 1 m minimum.
	ErrInvalidLength = errors.New("network: pipe length must be >= 1 m")

	// ErrInvalidDiameter indicates a pipe diameter below the 1 mm minimum.
	ErrInvalidDiameter = errors.New("network: pipe diameter must be >= 1 mm")

	// ErrInvalidRoughness indicates a pipe roughness below the 1e-5 minimum.
	ErrInvalidRoughness = errors.New("network: pipe roughness must be >= 1e-5")

	// ErrTooFewDemandNodes indicates fewer than two junctions were supplied.
	ErrTooFewDemandNodes = errors.New("network: fewer than two demand nodes")

	// ErrNoLinks indicates the network has no links at all.
	ErrNoLinks = errors.New("network: no links")
)
