package polynomial

import "github.com/zedseven/splinecore/precision"

func resolvePrecision(prec []int) int {
	if len(prec) > 0 {
		return prec[0]
	}
	return precision.Default
}

// dedupeSorted removes exact-tie duplicates from an ascending-sorted slice,
// as spec.md requires for root sequences: "duplicate roots collapsed to a
// single entry when the discriminant is exactly zero."
func dedupeSorted(xs []float64) []float64 {
	if len(xs) == 0 {
		return xs
	}
	out := xs[:1]
	for _, x := range xs[1:] {
		if x != out[len(out)-1] {
			out = append(out, x)
		}
	}
	return out
}

func clampUnit(x float64) float64 {
	switch {
	case x > 1:
		return 1
	case x < -1:
		return -1
	default:
		return x
	}
}
