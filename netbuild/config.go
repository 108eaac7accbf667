// Package netbuild provides deterministic, functional-option topology
// constructors for water distribution networks, for tests, benchmarks,
// and exploratory "what if" scenarios where a hand-authored .inp file
// would be overkill.
//
// Every constructor attaches exactly one network.Reservoir as the fixed
// head source and wires the remaining nodes as network.Junction entities
// connected by network.Pipe links with configurable but uniform geometry;
// only junction demand and elevation can vary per index.
package netbuild

import "math/rand"

// Option customizes a Config before a topology constructor runs.
type Option func(*Config)

// Config holds every knob a topology constructor reads. Unset fields
// fall back to DefaultConfig's values applied first by every exported
// constructor.
type Config struct {
	ReservoirHead float64
	Length        float64
	Diameter      float64
	Roughness     float64
	DemandFn      func(index int) float64
	ElevationFn   func(index int) float64
	Rng           *rand.Rand
}

// DefaultConfig returns sane defaults: a 50 m reservoir head, 100 m long
// 200 mm pipes at a Hazen-Williams C of 130, flat-zero elevation, and a
// constant per-junction demand of 0.01 in the network's flow unit (LPS
// by default) — deliberately generic numbers a
// caller is expected to override via options for anything resembling a
// real network.
func DefaultConfig() Config {
	return Config{
		ReservoirHead: 50,
		Length:        100,
		Diameter:      200,
		Roughness:     130,
		DemandFn:      func(int) float64 { return 0.01 },
		ElevationFn:   func(int) float64 { return 0 },
	}
}

func resolve(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithReservoirHead overrides the fixed-head source's head.
func WithReservoirHead(h float64) Option {
	return func(c *Config) { c.ReservoirHead = h }
}

// WithPipeDefaults overrides the uniform length/diameter/roughness every
// generated pipe gets.
func WithPipeDefaults(length, diameter, roughness float64) Option {
	return func(c *Config) {
		c.Length = length
		c.Diameter = diameter
		c.Roughness = roughness
	}
}

// WithDemand injects a per-junction-index demand function. index counts
// junctions only (the reservoir is not indexed).
func WithDemand(fn func(index int) float64) Option {
	return func(c *Config) {
		if fn != nil {
			c.DemandFn = fn
		}
	}
}

// WithElevation injects a per-junction-index elevation function.
func WithElevation(fn func(index int) float64) Option {
	return func(c *Config) {
		if fn != nil {
			c.ElevationFn = fn
		}
	}
}

// WithSeed seeds RandomSparse's edge-inclusion RNG for reproducibility.
// Constructors that don't consult randomness ignore this option.
func WithSeed(seed int64) Option {
	return func(c *Config) { c.Rng = rand.New(rand.NewSource(seed)) }
}
