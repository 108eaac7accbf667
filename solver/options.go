package solver

import "go.uber.org/zap"

// Option configures a Solver at construction time, following the
// functional-options pattern used throughout this codebase's ancestry.
type Option func(*Solver)

// WithM overrides the flow-discretization parameter (default 100). Values
// below 1 are clamped to 1.
func WithM(m int) Option {
	return func(s *Solver) {
		if m < 1 {
			m = 1
		}
		s.m = m
	}
}

// WithObjectiveError overrides the convergence tolerance (default 1e-3).
// Values at or below zero are clamped to a tiny positive floor rather
// than accepted verbatim, since zero would make convergence unreachable.
func WithObjectiveError(eps float64) Option {
	return func(s *Solver) {
		if eps <= 0 {
			eps = 1e-13
		}
		s.objectiveError = eps
	}
}

// WithLogger attaches a structured logger; nil (the default) installs a
// no-op logger so the solver never depends on logging being configured.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(s *Solver) {
		if l == nil {
			l = zap.NewNop().Sugar()
		}
		s.log = l
	}
}
