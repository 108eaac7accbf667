package solver_test

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/stat"

	"github.com/sdahmani/atakoris/netbuild"
	"github.com/sdahmani/atakoris/solver"
)

// TestIdempotenceOfResultWriteBack checks invariant 6: computing on an
// already-solved network reproduces the same heads/flows. The second
// Compute does not reuse the written-back result: it starts its trial
// flow from Q_max exactly like the first and repeats the full iteration,
// so its iteration count is not compared here; it converges to the same
// fixed point, so heads/flows match to within 1e-9.
func TestIdempotenceOfResultWriteBack(t *testing.T) {
	n := triangleS1()
	s1 := solver.New(n)
	first, err := s1.Compute()
	if err != nil {
		t.Fatalf("first Compute: %v", err)
	}
	firstHeads := headByID(first)
	firstFlows := pipeFlowByID(first)

	s2 := solver.New(n)
	second, err := s2.Compute()
	if err != nil {
		t.Fatalf("second Compute: %v", err)
	}

	for id, h := range headByID(second) {
		if diff := math.Abs(h - firstHeads[id]); diff > 1e-9 {
			t.Errorf("head %s differs across runs by %g", id, diff)
		}
	}
	for id, f := range pipeFlowByID(second) {
		if diff := math.Abs(f - firstFlows[id]); diff > 1e-9 {
			t.Errorf("flow %s differs across runs by %g", id, diff)
		}
	}
}

// TestMonotoneConvergenceOnSeededEnsemble checks invariant 7 on a seeded
// ensemble of random-sparse networks (netbuild.RandomSparse, a different
// seed per member so the ensemble covers varied topologies): every
// member's reported errQ is small and within the iteration cap, and the
// ensemble's mean errQ (computed with gonum/stat) is well inside the
// objective tolerance rather than trending upward as topology size
// grows — the practical reading of "non-increasing in expectation" for
// a solver that only reports end-of-run error, not a per-iteration
// trace.
func TestMonotoneConvergenceOnSeededEnsemble(t *testing.T) {
	const members = 8
	errs := make([]float64, 0, members)

	for seed := int64(1); seed <= members; seed++ {
		n, err := netbuild.RandomSparse(5, 0.5,
			netbuild.WithSeed(seed),
			netbuild.WithDemand(func(i int) float64 { return 0.005 + 0.002*float64(i) }),
		)
		if err != nil {
			t.Fatalf("seed %d: RandomSparse: %v", seed, err)
		}

		s := solver.New(n)
		_, err = s.Compute()
		if err != nil {
			t.Fatalf("seed %d: Compute: %v", seed, err)
		}
		errQ, _ := s.FinalErrors()
		if errQ == nil || *errQ > 1e-3 {
			t.Errorf("seed %d: expected errQ <= 1e-3, got %v", seed, errQ)
		}
		errs = append(errs, *errQ)
	}

	mean := stat.Mean(errs, nil)
	if mean > 1e-3 {
		t.Errorf("ensemble mean errQ %g exceeds objective tolerance 1e-3", mean)
	}
	if math.IsNaN(mean) {
		t.Fatalf("ensemble mean errQ is NaN")
	}
}
