package polynomial

import (
	"math"

	"github.com/zedseven/splinecore/interval"
	"github.com/zedseven/splinecore/precision"
	"github.com/zedseven/splinecore/vector"
)

// Quadratic is the polynomial p(x) = C0 + C1·x + C2·x².
type Quadratic struct {
	C0, C1, C2 float64
	Precision  int
}

// NewQuadratic constructs a Quadratic.
func NewQuadratic(c0, c1, c2 float64, prec ...int) Quadratic {
	precision.AssertFinite("polynomial.NewQuadratic", c0, c1, c2)
	return Quadratic{C0: c0, C1: c1, C2: c2, Precision: resolvePrecision(prec)}
}

// QuadraticFromVector builds a Quadratic from a 3-component control vector
// (C0, C1, C2).
func QuadraticFromVector(v vector.Vector3) Quadratic {
	return NewQuadratic(v.V0, v.V1, v.V2, v.Precision)
}

// Solve evaluates p at x.
func (p Quadratic) Solve(x float64) float64 {
	return precision.Round(p.C0+p.C1*x+p.C2*x*x, p.Precision)
}

// SolveInverse returns the ascending, duplicate-collapsed roots of
// p(x) = y. When C2 = 0, it delegates to the equivalent Linear.
func (p Quadratic) SolveInverse(y float64) []float64 {
	if p.C2 == 0 {
		return NewLinear(p.C0, p.C1, p.Precision).SolveInverse(y)
	}
	d := p.C1*p.C1 - 4*p.C2*(p.C0-y)
	switch {
	case d < 0:
		return nil
	case d == 0:
		return []float64{precision.Round(-p.C1/(2*p.C2), p.Precision)}
	default:
		sq := math.Sqrt(d)
		r1 := precision.Round((-p.C1-sq)/(2*p.C2), p.Precision)
		r2 := precision.Round((-p.C1+sq)/(2*p.C2), p.Precision)
		if r1 > r2 {
			r1, r2 = r2, r1
		}
		return dedupeSorted([]float64{r1, r2})
	}
}

// Derivative returns p's derivative, C1 + 2·C2·x.
func (p Quadratic) Derivative() Linear {
	return NewLinear(p.C1, 2*p.C2, p.Precision)
}

// Antiderivative returns an antiderivative of p with Antiderivative(k).C0
// == k.
func (p Quadratic) Antiderivative(k float64) Cubic {
	return NewCubic(k, p.C0, p.C1/2, p.C2/3, p.Precision)
}

// Extreme returns the parameter value where p's derivative vanishes. It
// returns ok=false only when p is entirely constant (C1 = C2 = 0); when p
// is linear (C2 = 0, C1 != 0) it reports an extreme of 0, matching the
// convention spec.md specifies for that degenerate case.
func (p Quadratic) Extreme() (x float64, ok bool) {
	switch {
	case p.C1 == 0 && p.C2 == 0:
		return 0, false
	case p.C2 == 0:
		return 0, true
	default:
		return precision.Round(-p.C1/(2*p.C2), p.Precision), true
	}
}

// Monotonicity classifies p over i, or over its entire domain when i is
// omitted.
func (p Quadratic) Monotonicity(i ...interval.Interval) Monotonicity {
	if p.C1 == 0 && p.C2 == 0 {
		return Constant
	}
	if p.C2 == 0 {
		return NewLinear(p.C0, p.C1, p.Precision).Monotonicity()
	}
	if len(i) == 0 {
		return None
	}
	iv := i[0]
	if iv.Size() == 0 {
		return Constant
	}
	extreme, _ := p.Extreme()
	if iv.Contains(extreme, interval.ContainsOptions{IncludeStart: false, IncludeEnd: false}) {
		return None
	}
	return FromComparison(p.Solve(iv.Start), p.Solve(iv.End))
}

// Domain returns the x-interval that maps onto yRange, collected from the
// inverse solutions at yRange's endpoints. ok is false when neither
// endpoint has any preimage.
func (p Quadratic) Domain(yRange interval.Interval) (result interval.Interval, ok bool) {
	rs := append(p.SolveInverse(yRange.Start), p.SolveInverse(yRange.End)...)
	if len(rs) == 0 {
		return interval.Interval{}, false
	}
	return interval.FromMinMax(rs...), true
}

// Range returns the y-interval p maps xDomain onto, accounting for the
// extreme when it falls inside xDomain.
func (p Quadratic) Range(xDomain interval.Interval) interval.Interval {
	vals := []float64{p.Solve(xDomain.Start), p.Solve(xDomain.End)}
	if e, ok := p.Extreme(); ok && xDomain.Contains(e) {
		vals = append(vals, p.Solve(e))
	}
	return interval.FromMinMax(vals...)
}

// Length returns the arc length of p's graph over xDomain, via a closed
// form. When C2 = 0 it delegates to the equivalent Linear.
func (p Quadratic) Length(xDomain interval.Interval) float64 {
	if xDomain.Size() == 0 {
		return 0
	}
	if p.C2 == 0 {
		return NewLinear(p.C0, p.C1, p.Precision).Length(xDomain)
	}
	f := func(x float64) float64 {
		d := p.C1 + 2*p.C2*x
		s := math.Sqrt(1 + d*d)
		return (d*s + math.Log(math.Abs(d+s))) / (4 * p.C2)
	}
	return precision.Round(f(xDomain.End)-f(xDomain.Start), p.Precision)
}
