// Package polynomial implements Linear, Quadratic, and Cubic polynomials:
// evaluation, inverse evaluation (root-finding), calculus, monotonicity,
// domain/range, and arc length. Degree-degenerate cases (a cubic whose
// leading coefficient is zero, and so on) dispatch explicitly to the
// lower-degree implementation rather than relying on the closed-form
// formulas to degrade gracefully — they don't.
//
// Linear, Quadratic, and Cubic live in one package (rather than one file
// each importing the others) because Quadratic.Antiderivative constructs a
// Cubic and Cubic.Derivative constructs a Quadratic: keeping the three
// degrees together avoids a forward-declaration problem a systems language
// would otherwise have with that mutual reference.
package polynomial

import (
	"math"

	"github.com/zedseven/splinecore/interval"
	"github.com/zedseven/splinecore/precision"
	"github.com/zedseven/splinecore/vector"
)

// Linear is the polynomial p(x) = C0 + C1·x.
type Linear struct {
	C0, C1    float64
	Precision int
}

// NewLinear constructs a Linear.
func NewLinear(c0, c1 float64, prec ...int) Linear {
	precision.AssertFinite("polynomial.NewLinear", c0, c1)
	return Linear{C0: c0, C1: c1, Precision: resolvePrecision(prec)}
}

// LinearFromVector builds a Linear from a 2-component control vector
// (C0, C1).
func LinearFromVector(v vector.Vector2) Linear {
	return NewLinear(v.V0, v.V1, v.Precision)
}

// Solve evaluates p at x.
func (p Linear) Solve(x float64) float64 {
	return precision.Round(p.C0+p.C1*x, p.Precision)
}

// SolveInverse returns the root of p(x) = y. When C1 = 0 the equation is
// either unsatisfiable or universally satisfied; either way, there is no
// single root to report, so SolveInverse returns nil.
func (p Linear) SolveInverse(y float64) []float64 {
	if p.C1 == 0 {
		return nil
	}
	return []float64{precision.Round((y-p.C0)/p.C1, p.Precision)}
}

// Root returns the root of p, i.e. SolveInverse(0).
func (p Linear) Root() []float64 {
	return p.SolveInverse(0)
}

// Derivative returns p's derivative, the constant function C1 represented
// as a Linear with a zero slope.
func (p Linear) Derivative() Linear {
	return NewLinear(p.C1, 0, p.Precision)
}

// Antiderivative returns an antiderivative of p with Antiderivative(k).C0
// == k.
func (p Linear) Antiderivative(k float64) Quadratic {
	return NewQuadratic(k, p.C0, p.C1/2, p.Precision)
}

// Monotonicity classifies p over its entire domain.
func (p Linear) Monotonicity() Monotonicity {
	switch {
	case p.C1 > 0:
		return Increasing
	case p.C1 < 0:
		return Decreasing
	default:
		return Constant
	}
}

// Domain returns the x-interval that maps onto yRange, or ok=false when p
// is constant (C1 = 0), in which case there is no well-defined domain for
// a non-degenerate range.
func (p Linear) Domain(yRange interval.Interval) (result interval.Interval, ok bool) {
	if p.C1 == 0 {
		return interval.Interval{}, false
	}
	xs := p.SolveInverse(yRange.Start)
	xe := p.SolveInverse(yRange.End)
	return interval.FromMinMax(xs[0], xe[0]), true
}

// Range returns the y-interval p maps xDomain onto.
func (p Linear) Range(xDomain interval.Interval) interval.Interval {
	return interval.FromMinMax(p.Solve(xDomain.Start), p.Solve(xDomain.End))
}

// Length returns the arc length of p's graph over xDomain.
func (p Linear) Length(xDomain interval.Interval) float64 {
	return precision.Round(math.Sqrt(1+p.C1*p.C1)*xDomain.Size(), p.Precision)
}
