package curve

import (
	"sort"

	"github.com/zedseven/splinecore/interval"
)

// lengthTable maps a uniformly-sampled parameter t ∈ [0, 1] to its
// cumulative arc-length fraction s ∈ [0, 1], and inverts s back to t by
// binary search plus linear interpolation between knots.
type lengthTable struct {
	ts []float64
	ss []float64
}

// samplesPerSegment controls the length table's resolution: more samples
// per segment give a finer-grained inversion at the cost of more up-front
// arc-length evaluations.
const samplesPerSegment = 8

// buildLengthTable eagerly samples c's cumulative arc length — summed
// across every axis, per spec — at a resolution proportional to c's
// segment count.
func buildLengthTable(c Curve) lengthTable {
	resolution := c.segments * samplesPerSegment
	if resolution < 1 {
		resolution = 1
	}

	prefix := axisPrefixLengths(c)

	ts := make([]float64, resolution+1)
	raw := make([]float64, resolution+1)
	for k := 0; k <= resolution; k++ {
		t := float64(k) / float64(resolution)
		ts[k] = t
		raw[k] = cumulativeLength(c, prefix, t)
	}

	total := raw[resolution]
	ss := make([]float64, resolution+1)
	for k, r := range raw {
		if total == 0 {
			ss[k] = ts[k] // degenerate zero-length curve: fall back to identity
			continue
		}
		ss[k] = r / total
	}

	return lengthTable{ts: ts, ss: ss}
}

// axisPrefixLengths returns, per axis, the cumulative arc length of every
// segment strictly before it: prefix[axis][i] is the summed length of
// segments 0..i-1.
func axisPrefixLengths(c Curve) map[string][]float64 {
	unit, _ := interval.New(0, 1)
	prefix := make(map[string][]float64, len(c.axes))
	for _, axis := range c.axes {
		chain := c.chains[axis]
		p := make([]float64, len(chain)+1)
		for i, seg := range chain {
			p[i+1] = p[i] + seg.Length(unit)
		}
		prefix[axis] = p
	}
	return prefix
}

// cumulativeLength sums, across every axis, the arc length accrued from
// t=0 up to t.
func cumulativeLength(c Curve, prefix map[string][]float64, t float64) float64 {
	idx, local := c.segmentAt(t)
	local = min(max(local, 0), 1)
	partial, _ := interval.New(0, local)

	var total float64
	for _, axis := range c.axes {
		total += prefix[axis][idx] + c.chains[axis][idx].Length(partial)
	}
	return total
}

// lookup returns the parameter t whose cumulative length fraction is s,
// via binary search on the monotone s column plus linear interpolation.
func (lt lengthTable) lookup(s float64) float64 {
	s = min(max(s, 0), 1)
	n := len(lt.ss)
	i := sort.Search(n, func(i int) bool { return lt.ss[i] >= s })
	if i == 0 {
		return lt.ts[0]
	}
	if i >= n {
		return lt.ts[n-1]
	}
	lo, hi := lt.ss[i-1], lt.ss[i]
	if hi == lo {
		return lt.ts[i]
	}
	frac := (s - lo) / (hi - lo)
	return lt.ts[i-1] + frac*(lt.ts[i]-lt.ts[i-1])
}
