package spline

import (
	"github.com/zedseven/splinecore/matrix"
	"github.com/zedseven/splinecore/polynomial"
	"github.com/zedseven/splinecore/vector"
)

// ChunkCoefficients combines a characteristic matrix with a control
// sequence to produce an ordered chain of cubic polynomials, one per
// chunk: for chunk vector p, the coefficient vector is m·p.
func ChunkCoefficients(m matrix.Matrix4x4, controls []float64, stride int) ([]polynomial.Cubic, error) {
	chunks, err := ToCubicScalars(controls, stride)
	if err != nil {
		return nil, err
	}
	chain := make([]polynomial.Cubic, len(chunks))
	for i, ch := range chunks {
		p := vector.NewVector4(ch[0], ch[1], ch[2], ch[3])
		coeffs := m.VectorProductLeft(p)
		chain[i] = polynomial.CubicFromVector(coeffs)
	}
	return chain, nil
}

// BezierChain builds the cubic chain for a Bezier control sequence
// [p0, p1, p2, p3, p4, p5, p6, ...] (stride 3).
func BezierChain(controls []float64) ([]polynomial.Cubic, error) {
	return ChunkCoefficients(Bezier(), controls, StrideBezier)
}

// HermiteChain builds the cubic chain for a Hermite control sequence
// [p0, m0, p1, m1, p2, m2, ...] (stride 2).
func HermiteChain(controls []float64) ([]polynomial.Cubic, error) {
	return ChunkCoefficients(Hermite(), controls, StrideHermite)
}

// CardinalChain builds the cubic chain for a Cardinal(a) control sequence,
// duplicating the first and last control point so the curve interpolates
// them.
func CardinalChain(a float64, controls []float64) ([]polynomial.Cubic, error) {
	return ChunkCoefficients(Cardinal(a), DuplicateEndpoints(controls, 1), StrideCardinal)
}

// CatmullRomChain builds the cubic chain for a Catmull-Rom control
// sequence, duplicating the first and last control point so the curve
// interpolates them.
func CatmullRomChain(controls []float64) ([]polynomial.Cubic, error) {
	return ChunkCoefficients(CatmullRom(), DuplicateEndpoints(controls, 1), StrideCatmullRom)
}

// BasisChain builds the cubic chain for a basis/B-spline control sequence,
// triplicating the first and last control point so the curve touches them.
func BasisChain(controls []float64) ([]polynomial.Cubic, error) {
	return ChunkCoefficients(Basis(), DuplicateEndpoints(controls, 2), StrideBasis)
}

// LocalParameter reparametrizes global t ∈ [0, 1] into the local parameter
// of chunk index i of n total chunks: (t - i/n) * n.
func LocalParameter(t float64, i, n int) float64 {
	return (t - float64(i)/float64(n)) * float64(n)
}

// SegmentIndex returns which of n uniformly spaced chunks global t ∈ [0, 1]
// falls into, clamped to [0, n-1].
func SegmentIndex(t float64, n int) int {
	if n <= 1 {
		return 0
	}
	idx := int(t * float64(n))
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
