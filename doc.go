// Package splinecore is a closed-form algebraic engine for parametric
// cubic splines over arbitrary labeled axes.
//
// Given control points in N-dimensional space, it builds a curve that can
// be evaluated at a parameter t, inverted on a monotonic axis to recover t
// from a coordinate, and sampled by arc length rather than by raw
// parameter. Everything here is closed-form or fixed-order quadrature:
// there is no iterative root-finding, no arbitrary-precision arithmetic,
// and no adaptive integration.
//
// # Subpackages
//
//	precision/  — decimal rounding and precision propagation shared by every numeric type
//	vector/     — fixed-size Vector2, Vector3, Vector4
//	matrix/     — fixed-size Matrix2x2, Matrix3x3, Matrix4x4, with Cramer's-rule solving
//	interval/   — the closed interval [start, end] used as a domain and range type
//	polynomial/ — Linear, Quadratic, Cubic: evaluation, inverse evaluation, calculus, arc length
//	spline/     — the five characteristic matrices (Bezier, Hermite, Cardinal, Catmull-Rom, basis) and control-point chunking
//	curve/      — multi-axis curves built from spline chains, with eager arc-length tables
//
// # Data flow
//
// Raw control scalars are chunked into overlapping 4-element windows (see
// [spline.ToCubicScalars]); each window is multiplied by a characteristic
// matrix (see [spline.Bezier], [spline.Hermite], [spline.Cardinal],
// [spline.CatmullRom], [spline.Basis]) to produce a [polynomial.Cubic]'s
// coefficients. A [curve.Curve] holds one such chain per axis and
// dispatches evaluation, inversion, and arc-length lookup coordinate-wise.
//
// # Degree degeneracy
//
// A cubic whose leading coefficient is zero delegates to the equivalent
// quadratic, which in turn delegates to the equivalent linear polynomial
// when its own leading coefficient is zero. This applies uniformly across
// solving, differentiation, monotonicity, domain/range, and arc length.
//
// # Precision
//
// The New* constructors and the curve package's Create* constructors accept
// an optional trailing precision argument (defaulting to
// [precision.Default]); the *FromVector constructors take the vector's
// precision, and [interval.FromMinMax] always uses the default. Derived values combine their
// operands' precisions via [precision.Combine] and are rounded with
// [precision.Round] before being returned.
package splinecore
