// Package spline implements the fixed characteristic matrices for the five
// supported control-point families (Bezier, Hermite, Cardinal, Catmull-Rom,
// and B-spline/basis), the chunking of a flat control sequence into
// per-segment windows, and the factory that combines the two into an
// ordered chain of cubic polynomials.
package spline

import "github.com/zedseven/splinecore/matrix"

// Bezier returns the characteristic matrix for cubic Bezier segments,
// operating on the control vector [p0, p1, p2, p3] with stride 3.
func Bezier() matrix.Matrix4x4 {
	return matrix.NewMatrix4x4(
		1, 0, 0, 0,
		-3, 3, 0, 0,
		3, -6, 3, 0,
		-1, 3, -3, 1,
	)
}

// Hermite returns the characteristic matrix for cubic Hermite segments,
// operating on the control vector [p0, m0, p1, m1] with stride 2.
func Hermite() matrix.Matrix4x4 {
	return matrix.NewMatrix4x4(
		1, 0, 0, 0,
		0, 1, 0, 0,
		-3, -2, 3, -1,
		2, 1, -2, 1,
	)
}

// Cardinal returns the characteristic matrix for the Cardinal spline
// family with tension parameter a, operating on a stride-1 control window.
func Cardinal(a float64) matrix.Matrix4x4 {
	return matrix.NewMatrix4x4(
		0, 1, 0, 0,
		-a, 0, a, 0,
		2*a, a-3, 3-2*a, -a,
		-a, 2-a, a-2, a,
	)
}

// CatmullRom returns the characteristic matrix for the Catmull-Rom spline,
// Cardinal with a = 0.5.
func CatmullRom() matrix.Matrix4x4 {
	return Cardinal(0.5)
}

// Basis returns the characteristic matrix for the uniform B-spline/basis
// family, operating on a stride-1 control window.
func Basis() matrix.Matrix4x4 {
	const s = 1.0 / 6.0
	return matrix.NewMatrix4x4(
		1*s, 4*s, 1*s, 0,
		-3*s, 0, 3*s, 0,
		3*s, -6*s, 3*s, 0,
		-1*s, 3*s, -3*s, 1*s,
	)
}

// Stride constants used by the family-specific chunking helpers.
const (
	StrideBezier     = 3
	StrideHermite    = 2
	StrideCardinal   = 1
	StrideCatmullRom = 1
	StrideBasis      = 1
)
