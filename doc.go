// Package atakoris is a steady-state hydraulic network analyzer for Go.
//
// It solves demand-driven flow in a water distribution network — nodes
// with known elevation/demand or fixed head, links with a resistance or
// energy-curve law — using the multilinear method: the piecewise-linear
// head-loss law is secant-linearized every iteration and solved as a
// dense linear system until flows and heads stop moving.
//
// Everything is organized under domain subpackages:
//
//	network/   — node/link entity types, validation, unit conversion
//	incidence/ — builds the A21/A10 incidence arrays from a network
//	coeff/     — the piecewise-linear coefficient update (the linearization step)
//	linalg/    — dense matrix type, Gauss-Jordan inverse, matrix/vector ops
//	solver/    — the multilinear driver: Init -> (Update -> Solve -> Converge?)* -> Write
//	result/    — writes solved heads/flows back onto the network
//	reach/     — pre-solve structural diagnostics (reachability, feasibility, max-flow bound)
//	inp/       — EPANET .inp file parser
//	netbuild/  — synthetic topology constructors (path, star, loop, grid, random sparse)
//	design/    — MST-based pipe-diameter sizing advisor
//	dto/       — JSON boundary representation of a network
//
// See cmd/atakoris for the CLI front end.
package atakoris
