package network

import "math"

// LinkStatus is Open or Closed. Per the input file contract, any token
// other than the case-sensitive literal "Open" is treated as Closed.
type LinkStatus int

const (
	// Open links participate normally in the incidence/resistance model.
	Open LinkStatus = iota
	// Closed links are assigned sentinel-infinite resistance instead of
	// being removed from the topology.
	Closed
)

func (s LinkStatus) String() string {
	if s == Open {
		return "Open"
	}

	return "Closed"
}

// ParseStatus implements the file-format's case-sensitive convention:
// exactly "Open" maps to Open, everything else (including "open", "OPEN",
// "Closed", "") maps to Closed.
func ParseStatus(tok string) LinkStatus {
	if tok == "Open" {
		return Open
	}

	return Closed
}

// ValveType distinguishes the valve-specific resistance laws.
type ValveType int

const (
	FCV ValveType = iota // Flow Control Valve
	PBV                  // Pressure Breaker Valve
	PRV                  // Pressure Reducing Valve
	TCV                  // Throttle Control Valve
	PSV                  // Pressure Sustaining Valve
	GPV                  // General Purpose Valve
)

func (v ValveType) String() string {
	switch v {
	case FCV:
		return "FCV"
	case PBV:
		return "PBV"
	case PRV:
		return "PRV"
	case TCV:
		return "TCV"
	case PSV:
		return "PSV"
	case GPV:
		return "GPV"
	default:
		return "Unknown"
	}
}

// ParseValveType resolves a valve-type token (as found in a DTO or a
// future parser extension) to a ValveType, defaulting to GPV for any
// unrecognized token rather than failing — a DTO roundtrip should never
// abort on a forward-compatible or slightly malformed type name.
func ParseValveType(tok string) ValveType {
	switch tok {
	case "FCV":
		return FCV
	case "PBV":
		return PBV
	case "PRV":
		return PRV
	case "TCV":
		return TCV
	case "PSV":
		return PSV
	default:
		return GPV
	}
}

// LinkKind tags which concrete link variant a Link value holds.
type LinkKind int

const (
	LinkPipe LinkKind = iota
	LinkPump
	LinkValve
)

// CHW is the Hazen-Williams constant used throughout the pipe resistance
// formula.
const CHW = 10.65

// FlowEpsilon is the magnitude below which a trial flow is treated as
// effectively zero — used to force pumps Closed and to select valve
// back-flow sentinels.
const FlowEpsilon = 1e-6

// Pipe is a gravity/friction link. Length is stored in meters, Diameter
// in millimeters (per the 1mm-clamp interpretation fixed by the spec),
// Roughness is the unitless Hazen-Williams C-factor.
type Pipe struct {
	ID         string
	Start, End string
	Length     float64 // m, Validate rejects < 1
	Diameter   float64 // mm, Validate rejects < 1 (i.e. 0.001 m)
	Roughness  float64 // C-factor, Validate rejects < 1e-5
	MinorLoss  float64
	CheckValve bool
	Status     LinkStatus

	// Flow is nil until the solver writes a result, in the network's
	// declared flow unit (not SI).
	Flow *float64
}

// Resistance returns the Hazen-Williams resistance coefficient R such that
// headloss = R * |Q|^1.852, or the sentinel 99.99^20 if the pipe is
// Closed, or has a check valve and the trial flow q (SI, signed) is
// negative.
func (p *Pipe) Resistance(q float64) float64 {
	if p.Status == Closed {
		return math.Pow(99.99, 20)
	}
	if p.CheckValve && q < 0 {
		return math.Pow(99.99, 20)
	}

	dM := p.Diameter * 0.001

	return (CHW * p.Length) / (math.Pow(p.Roughness, 1.852) * math.Pow(dM, 4.8704))
}

// Pump is a quadratic-curve energy-adding link: H(Q) = alpha*Q^2 + beta*Q
// + gamma. If Alpha == 0 and PowerRating != 0 the curve falls back to the
// constant-power form H(Q) = power / (9.81 * max(|Q|, FlowEpsilon)).
type Pump struct {
	ID           string
	Start, End   string
	Alpha, Beta, Gamma float64
	PowerRating  float64
	Status       LinkStatus

	Flow *float64
}

// HeadAt evaluates the pump curve at flow q (SI).
func (p *Pump) HeadAt(q float64) float64 {
	if p.Alpha == 0 && p.PowerRating != 0 {
		denom := math.Max(math.Abs(q), FlowEpsilon)

		return p.PowerRating / (9.81 * denom)
	}

	return p.Alpha*q*q + p.Beta*q + p.Gamma
}

// Valve enforces a resistance law selected by Type; k-value semantics
// vary by type, but all are applied as R*Q = KValue*Q in the open case.
type Valve struct {
	ID         string
	Start, End string
	Type       ValveType
	KValue     float64
	Status     LinkStatus

	Flow *float64
}

// ResistedFlow returns R(q)*q for the valve at trial flow q (SI, signed).
//
// Open FCV: k*q when q > 0, else sentinel-infinite (10^15, the same
// magnitude as the closed-valve "tiny trickle" sentinel below).
// Open (other types): k*q unconditionally.
// Closed: 10^15 ("tiny trickle") when |q| < FlowEpsilon, else 10^25
// ("blocked") — the closed valve is never truly rigid, to preserve
// matrix solvability by construction.
func (v *Valve) ResistedFlow(q float64) float64 {
	if v.Status == Open {
		if v.Type == FCV {
			if q > 0 {
				return v.KValue * q
			}

			return math.Pow(10, 15)
		}

		return v.KValue * q
	}

	if math.Abs(q) < FlowEpsilon {
		return math.Pow(10, 15)
	}

	return math.Pow(10, 25)
}
