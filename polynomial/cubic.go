package polynomial

import (
	"math"
	"sort"

	"github.com/zedseven/splinecore/interval"
	"github.com/zedseven/splinecore/precision"
	"github.com/zedseven/splinecore/vector"
)

// Cubic is the polynomial p(x) = C0 + C1·x + C2·x² + C3·x³.
type Cubic struct {
	C0, C1, C2, C3 float64
	Precision      int
}

// NewCubic constructs a Cubic.
func NewCubic(c0, c1, c2, c3 float64, prec ...int) Cubic {
	precision.AssertFinite("polynomial.NewCubic", c0, c1, c2, c3)
	return Cubic{C0: c0, C1: c1, C2: c2, C3: c3, Precision: resolvePrecision(prec)}
}

// CubicFromVector builds a Cubic from a 4-component coefficient vector
// (C0, C1, C2, C3) — the shape a spline characteristic matrix produces.
func CubicFromVector(v vector.Vector4) Cubic {
	return NewCubic(v.V0, v.V1, v.V2, v.V3, v.Precision)
}

// Solve evaluates p at x.
func (p Cubic) Solve(x float64) float64 {
	return precision.Round(p.C0+p.C1*x+p.C2*x*x+p.C3*x*x*x, p.Precision)
}

// SolveInverse returns the ascending, duplicate-collapsed real roots of
// p(x) = y. When C3 = 0, it delegates to the equivalent Quadratic.
//
// Otherwise it substitutes the depressed cubic t³ + pt + q = 0 (x = t -
// C2/(3·C3)) and classifies by the discriminant Δ = -4p³ - 27q², using the
// trigonometric method for three distinct roots, Cardano's formula for one
// real root, and the degenerate double/triple-root formulas at Δ = 0.
func (p Cubic) SolveInverse(y float64) []float64 {
	if p.C3 == 0 {
		return NewQuadratic(p.C0, p.C1, p.C2, p.Precision).SolveInverse(y)
	}

	b := p.C2 / p.C3
	c := p.C1 / p.C3
	d := (p.C0 - y) / p.C3

	pp := c - b*b/3
	qq := 2*b*b*b/27 - b*c/3 + d

	disc := -4*pp*pp*pp - 27*qq*qq

	var ts []float64
	switch {
	case disc > 0:
		r := math.Sqrt(-pp / 3)
		theta := math.Acos(clampUnit((3*qq)/(2*pp)*math.Sqrt(-3/pp))) / 3
		for k := 0; k < 3; k++ {
			ts = append(ts, 2*r*math.Cos(theta-2*math.Pi*float64(k)/3))
		}
	case disc == 0 && pp == 0 && qq == 0:
		ts = []float64{0}
	case disc == 0:
		ts = []float64{3 * qq / pp, -3 * qq / (2 * pp)}
	default:
		sq := math.Sqrt(qq*qq/4 + pp*pp*pp/27)
		ts = []float64{cbrt(-qq/2+sq) + cbrt(-qq/2-sq)}
	}

	roots := make([]float64, len(ts))
	for i, t := range ts {
		roots[i] = precision.Round(t-b/3, p.Precision)
	}
	sort.Float64s(roots)
	return dedupeSorted(roots)
}

func cbrt(x float64) float64 { return math.Cbrt(x) }

// Derivative returns p's derivative, C1 + 2·C2·x + 3·C3·x².
func (p Cubic) Derivative() Quadratic {
	return NewQuadratic(p.C1, 2*p.C2, 3*p.C3, p.Precision)
}

// Extrema returns the roots of p's derivative: the parameter values where
// p's slope vanishes (0, 1, or 2 of them).
func (p Cubic) Extrema() []float64 {
	return p.Derivative().SolveInverse(0)
}

// Monotonicity classifies p over i, or over its entire domain when i is
// omitted. If any extremum of p lies strictly inside i, the interval
// straddles a turning point and the result is None; an extremum exactly at
// an endpoint of i does not make the result None.
func (p Cubic) Monotonicity(i ...interval.Interval) Monotonicity {
	if p.C3 == 0 {
		return NewQuadratic(p.C0, p.C1, p.C2, p.Precision).Monotonicity(i...)
	}
	if len(i) == 0 {
		return None
	}
	iv := i[0]
	if iv.Size() == 0 {
		return Constant
	}
	for _, e := range p.Extrema() {
		if iv.Contains(e, interval.ContainsOptions{IncludeStart: false, IncludeEnd: false}) {
			return None
		}
	}
	return FromComparison(p.Solve(iv.Start), p.Solve(iv.End))
}

// Domain returns the x-interval that maps onto yRange, collected from the
// inverse solutions at yRange's endpoints. ok is false when neither
// endpoint has any preimage.
func (p Cubic) Domain(yRange interval.Interval) (result interval.Interval, ok bool) {
	if p.C3 == 0 {
		return NewQuadratic(p.C0, p.C1, p.C2, p.Precision).Domain(yRange)
	}
	rs := append(p.SolveInverse(yRange.Start), p.SolveInverse(yRange.End)...)
	if len(rs) == 0 {
		return interval.Interval{}, false
	}
	return interval.FromMinMax(rs...), true
}

// Range returns the y-interval p maps xDomain onto, accounting for any
// extrema that fall inside xDomain.
func (p Cubic) Range(xDomain interval.Interval) interval.Interval {
	if p.C3 == 0 {
		return NewQuadratic(p.C0, p.C1, p.C2, p.Precision).Range(xDomain)
	}
	vals := []float64{p.Solve(xDomain.Start), p.Solve(xDomain.End)}
	for _, e := range p.Extrema() {
		if xDomain.Contains(e) {
			vals = append(vals, p.Solve(e))
		}
	}
	return interval.FromMinMax(vals...)
}

// Length returns the arc length of p's graph over xDomain, via fixed
// 9-point Gauss-Legendre quadrature of ∫√(1 + p'(x)²) dx. When C3 = 0 it
// delegates to the equivalent Quadratic, which has a closed form.
func (p Cubic) Length(xDomain interval.Interval) float64 {
	if p.C3 == 0 {
		return NewQuadratic(p.C0, p.C1, p.C2, p.Precision).Length(xDomain)
	}
	if xDomain.Size() == 0 {
		return 0
	}
	deriv := p.Derivative()
	mid := 0.5 * (xDomain.Start + xDomain.End)
	half := 0.5 * xDomain.Size()

	var sum float64
	for _, wn := range gaussLegendre9 {
		weight, node := wn[0], wn[1]
		x := mid + half*node
		dx := deriv.Solve(x)
		sum += weight * math.Sqrt(1+dx*dx)
	}
	return precision.Round(sum*half, p.Precision)
}
