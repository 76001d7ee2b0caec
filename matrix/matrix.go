package matrix

import "github.com/zedseven/splinecore/precision"

func resolve(prec []int) int {
	if len(prec) > 0 {
		return prec[0]
	}
	return precision.Default
}
