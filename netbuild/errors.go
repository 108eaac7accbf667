package netbuild

import "errors"

// ErrTooFewNodes is returned when a constructor's node count is below
// the topology's minimum (2 for Path/Star, 4 for CycleLoop, 1x1 implied
// minimum for Grid).
var ErrTooFewNodes = errors.New("netbuild: too few nodes for this topology")

// ErrInvalidProbability is returned by RandomSparse when p is outside
// [0, 1].
var ErrInvalidProbability = errors.New("netbuild: probability must be in [0,1]")
