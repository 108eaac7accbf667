// Package design offers a pipe-diameter sizing advisor: given a set of
// candidate diameters, it computes the minimum spanning tree of the
// pipe-length graph via Prim's algorithm and recommends the largest
// candidate for MST ("backbone") pipes and the smallest for the rest,
// a common first-pass heuristic before running the full hydraulic
// solver on a proposed design.
package design

import "errors"

// ErrNoCandidates means the candidate diameter list was empty.
var ErrNoCandidates = errors.New("design: candidate diameter list is empty")

// ErrDisconnected means the pipe-length graph has no spanning tree: some
// pipe-bearing node cannot be reached from the Prim root.
var ErrDisconnected = errors.New("design: pipe graph is disconnected")

// ErrNoPipes means the network has no pipes to size.
var ErrNoPipes = errors.New("design: network has no pipes")
