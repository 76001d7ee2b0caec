// Package interval implements the closed interval [start, end] used
// throughout this module as a domain and range type for polynomials and
// curves.
package interval

import (
	"github.com/zedseven/splinecore/precision"
)

// Interval is an immutable closed interval [Start, End], with Start <= End.
type Interval struct {
	Start, End float64
	Precision  int
}

// New constructs an Interval. It fails with ErrInvalidInterval when end <
// start.
func New(start, end float64, prec ...int) (Interval, error) {
	precision.AssertFinite("interval.New", start, end)
	if end < start {
		return Interval{}, ErrInvalidInterval
	}
	return Interval{Start: start, End: end, Precision: resolve(prec)}, nil
}

// NewPoint constructs a zero-size Interval [value, value].
func NewPoint(value float64, prec ...int) Interval {
	iv, _ := New(value, value, prec...)
	return iv
}

// FromMinMax constructs the interval [min(values), max(values)].
//
// It panics if values is empty: there is no interval to build from zero
// endpoints.
func FromMinMax(values ...float64) Interval {
	if len(values) == 0 {
		panic("interval.FromMinMax: no values given")
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		precision.AssertFinite("interval.FromMinMax", v)
		lo = min(lo, v)
		hi = max(hi, v)
	}
	iv, _ := New(lo, hi)
	return iv
}

// Size returns End - Start.
func (i Interval) Size() float64 {
	return precision.Round(i.End-i.Start, i.Precision)
}

// ContainsOptions configures the inclusivity of Contains' endpoint checks.
type ContainsOptions struct {
	IncludeStart bool
	IncludeEnd   bool
}

// DefaultContainsOptions includes both endpoints, matching spec.md's default
// membership test.
var DefaultContainsOptions = ContainsOptions{IncludeStart: true, IncludeEnd: true}

// Contains reports whether x lies within i, honoring opts' endpoint
// inclusivity. Pass no opts to use DefaultContainsOptions.
func (i Interval) Contains(x float64, opts ...ContainsOptions) bool {
	o := DefaultContainsOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	lowOK := x > i.Start || (o.IncludeStart && x == i.Start)
	highOK := x < i.End || (o.IncludeEnd && x == i.End)
	return lowOK && highOK
}

// Clamp restricts x to [i.Start, i.End].
func (i Interval) Clamp(x float64) float64 {
	return precision.Round(min(max(x, i.Start), i.End), i.Precision)
}

// Lerp maps t ∈ [0, 1] linearly onto i: Start + t*Size().
func (i Interval) Lerp(t float64) float64 {
	return precision.Round(i.Start+t*i.Size(), i.Precision)
}

// Normalize maps x in i onto [0, 1]: the inverse of Lerp.
func (i Interval) Normalize(x float64) float64 {
	return precision.Round((x-i.Start)/i.Size(), i.Precision)
}

// Remap maps x from one interval onto another: to.Lerp(from.Normalize(x)).
func Remap(x float64, from, to Interval) float64 {
	return to.Lerp(from.Normalize(x))
}

// Filter returns the subsequence of seq whose elements lie in i, preserving
// order.
func (i Interval) Filter(seq []float64) []float64 {
	out := make([]float64, 0, len(seq))
	for _, x := range seq {
		if i.Contains(x) {
			out = append(out, x)
		}
	}
	return out
}

func resolve(prec []int) int {
	if len(prec) > 0 {
		return prec[0]
	}
	return precision.Default
}
