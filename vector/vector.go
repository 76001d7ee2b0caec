// Package vector implements immutable fixed-size numeric tuples (Vector2,
// Vector3, Vector4), the control-point building blocks the spline and
// matrix packages operate on.
package vector

import "github.com/zedseven/splinecore/precision"

// Vector2 is an immutable two-component tuple.
type Vector2 struct {
	V0, V1    float64
	Precision int
}

// NewVector2 constructs a Vector2. If precision is omitted, it defaults to
// precision.Default.
func NewVector2(v0, v1 float64, prec ...int) Vector2 {
	precision.AssertFinite("vector.NewVector2", v0, v1)
	return Vector2{V0: v0, V1: v1, Precision: resolve(prec)}
}

// Vector2FromArray constructs a Vector2 from a 2-element array.
func Vector2FromArray(a [2]float64, prec ...int) Vector2 {
	return NewVector2(a[0], a[1], prec...)
}

// Components returns the vector's components in order.
func (v Vector2) Components() []float64 { return []float64{v.V0, v.V1} }

// Dot returns the dot product of v and o.
func (v Vector2) Dot(o Vector2) float64 {
	return precision.Round(v.V0*o.V0+v.V1*o.V1, precision.Combine(v.Precision, o.Precision))
}

// Equal reports whether v and o have identical components (identity
// predicate, ignoring precision).
func (v Vector2) Equal(o Vector2) bool {
	return v.V0 == o.V0 && v.V1 == o.V1
}

// Vector3 is an immutable three-component tuple.
type Vector3 struct {
	V0, V1, V2 float64
	Precision  int
}

// NewVector3 constructs a Vector3.
func NewVector3(v0, v1, v2 float64, prec ...int) Vector3 {
	precision.AssertFinite("vector.NewVector3", v0, v1, v2)
	return Vector3{V0: v0, V1: v1, V2: v2, Precision: resolve(prec)}
}

// Vector3FromArray constructs a Vector3 from a 3-element array.
func Vector3FromArray(a [3]float64, prec ...int) Vector3 {
	return NewVector3(a[0], a[1], a[2], prec...)
}

// Components returns the vector's components in order.
func (v Vector3) Components() []float64 { return []float64{v.V0, v.V1, v.V2} }

// Dot returns the dot product of v and o.
func (v Vector3) Dot(o Vector3) float64 {
	sum := v.V0*o.V0 + v.V1*o.V1 + v.V2*o.V2
	return precision.Round(sum, precision.Combine(v.Precision, o.Precision))
}

// Equal reports whether v and o have identical components.
func (v Vector3) Equal(o Vector3) bool {
	return v.V0 == o.V0 && v.V1 == o.V1 && v.V2 == o.V2
}

// Vector4 is an immutable four-component tuple. It is the shape a
// characteristic matrix consumes and produces: a cubic's control vector
// and its coefficient vector are both Vector4 values.
type Vector4 struct {
	V0, V1, V2, V3 float64
	Precision      int
}

// NewVector4 constructs a Vector4.
func NewVector4(v0, v1, v2, v3 float64, prec ...int) Vector4 {
	precision.AssertFinite("vector.NewVector4", v0, v1, v2, v3)
	return Vector4{V0: v0, V1: v1, V2: v2, V3: v3, Precision: resolve(prec)}
}

// Vector4FromArray constructs a Vector4 from a 4-element array.
func Vector4FromArray(a [4]float64, prec ...int) Vector4 {
	return NewVector4(a[0], a[1], a[2], a[3], prec...)
}

// Components returns the vector's components in order.
func (v Vector4) Components() []float64 { return []float64{v.V0, v.V1, v.V2, v.V3} }

// Dot returns the dot product of v and o.
func (v Vector4) Dot(o Vector4) float64 {
	sum := v.V0*o.V0 + v.V1*o.V1 + v.V2*o.V2 + v.V3*o.V3
	return precision.Round(sum, precision.Combine(v.Precision, o.Precision))
}

// Equal reports whether v and o have identical components.
func (v Vector4) Equal(o Vector4) bool {
	return v.V0 == o.V0 && v.V1 == o.V1 && v.V2 == o.V2 && v.V3 == o.V3
}

func resolve(prec []int) int {
	if len(prec) > 0 {
		return prec[0]
	}
	return precision.Default
}
