package curve

import "errors"

// ErrInvalidInput indicates a PositionAt call with input outside [0, 1], or
// a SolveWhere call naming an axis the curve does not have.
var ErrInvalidInput = errors.New("curve: input outside [0, 1] or axis missing from a control point")

// ErrNonMonotonicAxis indicates SolveWhere was called against an axis whose
// monotonicity over t ∈ [0, 1] is None.
var ErrNonMonotonicAxis = errors.New("curve: axis is not monotone over [0, 1]")

// ErrRootUnsolvable indicates SolveWhere found no parameter in [0, 1]
// mapping the requested axis to the requested position.
var ErrRootUnsolvable = errors.New("curve: no parameter in [0, 1] solves for the requested position")

// ErrAxisMismatch indicates the per-axis control sequences chunk into
// different numbers of cubic segments, so they can't share one parameter
// domain.
var ErrAxisMismatch = errors.New("curve: axes chunk into different segment counts")
