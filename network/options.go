package network

// FlowUnit is a closed enumeration of the flow units the input format may
// declare. Each has a fixed multiplier converting a value expressed in
// that unit into SI cubic meters per second; the solver core operates
// exclusively in SI, converting at the assembler boundary and back at the
// result-writer boundary.
type FlowUnit int

const (
	Cfs  FlowUnit = iota // cubic feet per second
	Gpm                  // gallons per minute
	Mgd                  // million gallons per day
	Imgd                 // imperial million gallons per day
	Afd                  // acre-feet per day
	Lps                  // liters per second
	Lpm                  // liters per minute
	Mld                  // million liters per day
	Cms                  // cubic meters per second
	Cmh                  // cubic meters per hour
	Cmd                  // cubic meters per day
)

// siMultiplier maps one unit of FlowUnit to its SI (m^3/s) equivalent.
var siMultiplier = map[FlowUnit]float64{
	Cfs:  0.0283168,
	Gpm:  6.30902e-5,
	Mgd:  0.0438126,
	Imgd: 0.0526168,
	Afd:  0.0142764,
	Lps:  0.001,
	Lpm:  1.6667e-5,
	Mld:  0.0115741,
	Cms:  1.0,
	Cmh:  2.77778e-4,
	Cmd:  1.15741e-5,
}

// Multiplier returns the SI (m^3/s per unit) conversion factor for u. An
// unrecognized value (never produced by ParseFlowUnit) yields 1.0, the
// identity — callers constructing FlowUnit values directly are expected to
// use one of the named constants.
func (u FlowUnit) Multiplier() float64 {
	if m, ok := siMultiplier[u]; ok {
		return m
	}

	return 1.0
}

func (u FlowUnit) String() string {
	switch u {
	case Cfs:
		return "CFS"
	case Gpm:
		return "GPM"
	case Mgd:
		return "MGD"
	case Imgd:
		return "IMGD"
	case Afd:
		return "AFD"
	case Lps:
		return "LPS"
	case Lpm:
		return "LPM"
	case Mld:
		return "MLD"
	case Cms:
		return "CMS"
	case Cmh:
		return "CMH"
	case Cmd:
		return "CMD"
	default:
		return "LPS"
	}
}

// ParseFlowUnit maps an EPANET [OPTIONS] Units token to a FlowUnit,
// defaulting to Lps (spec Open Question 3) for anything unrecognized.
func ParseFlowUnit(tok string) FlowUnit {
	switch tok {
	case "CFS":
		return Cfs
	case "GPM":
		return Gpm
	case "MGD":
		return Mgd
	case "IMGD":
		return Imgd
	case "AFD":
		return Afd
	case "LPS":
		return Lps
	case "LPM":
		return Lpm
	case "MLD":
		return Mld
	case "CMS":
		return Cms
	case "CMH":
		return Cmh
	case "CMD":
		return Cmd
	default:
		return Lps
	}
}

// HeadlossFormula selects the head-loss law. Only Hazen-Williams (HW) is
// implemented by the coefficient updater; the others are recognized at
// parse time so [OPTIONS] round-trips cleanly. The solver does not read
// this field: it applies Hazen-Williams whichever formula is selected,
// and selecting DW or CM raises no error.
type HeadlossFormula int

const (
	HW HeadlossFormula = iota // Hazen-Williams
	DW                        // Darcy-Weisbach
	CM                        // Chezy-Manning
)

// ParseHeadlossFormula maps an EPANET [OPTIONS] Headloss token.
func ParseHeadlossFormula(tok string) HeadlossFormula {
	switch tok {
	case "D-W":
		return DW
	case "C-M":
		return CM
	default:
		return HW
	}
}

// String returns the EPANET [OPTIONS] Headloss token for f, the inverse
// of ParseHeadlossFormula.
func (f HeadlossFormula) String() string {
	switch f {
	case DW:
		return "D-W"
	case CM:
		return "C-M"
	default:
		return "H-W"
	}
}

// UnbalancedPolicy governs what happens when the iteration cap is reached
// without convergence (spec Open Question 2, mirroring the original's
// Unbalanced{StopIter, ContinueIter(usize)}).
type UnbalancedPolicy struct {
	// ContinueIterations, when > 0, keeps iterating this many additional
	// rounds past the cap instead of stopping immediately at the cap.
	ContinueIterations int
}

// StopAtMax is the default unbalanced policy: return NonConvergence as
// soon as the iteration cap is reached.
var StopAtMax = UnbalancedPolicy{ContinueIterations: 0}

// ContinueFor builds a policy that continues n additional iterations past
// the cap before giving up.
func ContinueFor(n int) UnbalancedPolicy {
	return UnbalancedPolicy{ContinueIterations: n}
}

// Options bundles every tunable that is not a structural part of the
// network graph itself.
type Options struct {
	FlowUnit         FlowUnit
	HeadlossFormula  HeadlossFormula
	Viscosity        float64
	Trials           int
	Accuracy         float64
	UnbalancedPolicy UnbalancedPolicy
	Pattern          string
	DemandMultiplier float64
	EmitterExponent  float64
}

// DefaultOptions returns the spec's default Options: Hazen-Williams,
// accuracy 1e-4, trials 40, demand multiplier 1, stop-at-max unbalanced
// policy.
func DefaultOptions() Options {
	return Options{
		FlowUnit:         Lps,
		HeadlossFormula:  HW,
		Trials:           40,
		Accuracy:         1e-4,
		UnbalancedPolicy: StopAtMax,
		DemandMultiplier: 1.0,
	}
}
