// Package curve assembles per-axis cubic chains produced by package spline
// into a single parametric curve, keyed by axis name. It evaluates the
// curve at a parameter (optionally length-normalized via an eagerly built
// arc-length table) and inverts a chosen axis to recover the parameter
// that produces a requested coordinate.
package curve

import (
	"sort"

	"github.com/zedseven/splinecore/interval"
	"github.com/zedseven/splinecore/polynomial"
	"github.com/zedseven/splinecore/precision"
	"github.com/zedseven/splinecore/spline"
)

// Curve holds one cubic chain per axis, all chunked to the same number of
// segments, plus an eagerly built arc-length lookup table.
type Curve struct {
	axes      []string
	chains    map[string][]polynomial.Cubic
	segments  int
	table     lengthTable
	Precision int
}

// chainBuilder is the shape shared by the spline package's *Chain
// constructors.
type chainBuilder func(controls []float64) ([]polynomial.Cubic, error)

// newCurve builds chains for every axis in points with build, verifies they
// all chunk into the same segment count, and eagerly constructs the
// arc-length table.
func newCurve(points map[string][]float64, build chainBuilder, prec ...int) (Curve, error) {
	p := precision.Default
	if len(prec) > 0 {
		p = prec[0]
	}

	axes := make([]string, 0, len(points))
	for axis := range points {
		axes = append(axes, axis)
	}
	sort.Strings(axes)

	chains := make(map[string][]polynomial.Cubic, len(axes))
	segments := -1
	for _, axis := range axes {
		chain, err := build(points[axis])
		if err != nil {
			return Curve{}, err
		}
		if segments == -1 {
			segments = len(chain)
		} else if len(chain) != segments {
			return Curve{}, ErrAxisMismatch
		}
		chains[axis] = chain
	}

	c := Curve{axes: axes, chains: chains, segments: segments, Precision: p}
	c.table = buildLengthTable(c)
	return c, nil
}

// CreateBezierCurve builds a curve whose every axis is chunked as a Bezier
// control sequence [p0, p1, p2, p3, p4, ...] (stride 3).
func CreateBezierCurve(points map[string][]float64, prec ...int) (Curve, error) {
	return newCurve(points, spline.BezierChain, prec...)
}

// CreateHermiteCurve builds a curve whose every axis is chunked as a
// Hermite control sequence [p0, m0, p1, m1, ...] (stride 2).
func CreateHermiteCurve(points map[string][]float64, prec ...int) (Curve, error) {
	return newCurve(points, spline.HermiteChain, prec...)
}

// CreateCardinalCurve builds a curve whose every axis is chunked as a
// Cardinal(a) control sequence, endpoints duplicated to interpolate them.
func CreateCardinalCurve(a float64, points map[string][]float64, prec ...int) (Curve, error) {
	return newCurve(points, func(controls []float64) ([]polynomial.Cubic, error) {
		return spline.CardinalChain(a, controls)
	}, prec...)
}

// CreateCatmullRomCurve builds a curve whose every axis is chunked as a
// Catmull-Rom control sequence, endpoints duplicated to interpolate them.
func CreateCatmullRomCurve(points map[string][]float64, prec ...int) (Curve, error) {
	return newCurve(points, spline.CatmullRomChain, prec...)
}

// CreateBasisCurve builds a curve whose every axis is chunked as a uniform
// B-spline control sequence, endpoints triplicated so the curve touches
// them.
func CreateBasisCurve(points map[string][]float64, prec ...int) (Curve, error) {
	return newCurve(points, spline.BasisChain, prec...)
}

// Axes returns the curve's axis names in sorted order.
func (c Curve) Axes() []string {
	return c.axes
}

// segmentAt locates which segment global t ∈ [0, 1] falls in, and the
// local parameter within that segment.
func (c Curve) segmentAt(t float64) (idx int, local float64) {
	idx = spline.SegmentIndex(t, c.segments)
	local = spline.LocalParameter(t, idx, c.segments)
	return idx, local
}

// evaluate returns every axis's value at global parameter t.
func (c Curve) evaluate(t float64) map[string]float64 {
	idx, local := c.segmentAt(t)
	out := make(map[string]float64, len(c.axes))
	for _, axis := range c.axes {
		out[axis] = c.chains[axis][idx].Solve(local)
	}
	return out
}

// PositionAt evaluates the curve at a parameter that blends the raw input
// and its length-normalized lookup: t = (1 − normalize)·input +
// normalize·lookup(input). normalize = 0 evaluates at the raw input (no
// arc-length correction) and normalize = 1 at the fully length-normalized
// parameter; prec overrides the curve's rounding precision for the result.
func (c Curve) PositionAt(input float64, normalize float64, prec ...int) (map[string]float64, error) {
	if input < 0 || input > 1 {
		return nil, ErrInvalidInput
	}
	p := c.Precision
	if len(prec) > 0 {
		p = prec[0]
	}

	t := (1-normalize)*input + normalize*c.table.lookup(input)
	raw := c.evaluate(t)
	out := make(map[string]float64, len(raw))
	for axis, v := range raw {
		out[axis] = precision.Round(v, p)
	}
	return out, nil
}

// SolveWhere finds the parameter t ∈ [0, 1] at which axis equals position,
// and returns every axis's value at that t. It requires axis to be
// strictly monotone (or constant) across the whole curve; a piecewise
// direction change fails with ErrNonMonotonicAxis. Among chunks with a hit,
// the first (lowest t) is used.
func (c Curve) SolveWhere(axis string, position float64, prec ...int) (map[string]float64, error) {
	chain, ok := c.chains[axis]
	if !ok {
		return nil, ErrInvalidInput
	}
	if !c.axisMonotone(chain) {
		return nil, ErrNonMonotonicAxis
	}

	unit, _ := interval.New(0, 1)
	for i, seg := range chain {
		roots := unit.Filter(seg.SolveInverse(position))
		if len(roots) == 0 {
			continue
		}
		t := (float64(i) + roots[0]) / float64(c.segments)
		p := c.Precision
		if len(prec) > 0 {
			p = prec[0]
		}
		raw := c.evaluate(t)
		out := make(map[string]float64, len(raw))
		for a, v := range raw {
			out[a] = precision.Round(v, p)
		}
		return out, nil
	}
	return nil, ErrRootUnsolvable
}

// axisMonotone reports whether chain's segments all agree on a single
// non-None monotonicity direction over their local [0, 1] domain.
func (c Curve) axisMonotone(chain []polynomial.Cubic) bool {
	unit, _ := interval.New(0, 1)
	var overall polynomial.Monotonicity
	for i, seg := range chain {
		m := seg.Monotonicity(unit)
		if m == polynomial.None {
			return false
		}
		if i == 0 {
			overall = m
			continue
		}
		if m != polynomial.Constant && overall != polynomial.Constant && m != overall {
			return false
		}
		if overall == polynomial.Constant {
			overall = m
		}
	}
	return true
}
