package matrix

import (
	"math"

	"github.com/zedseven/splinecore/precision"
	"github.com/zedseven/splinecore/vector"
)

// Matrix4x4 is an immutable 4×4 matrix with row-major entries M<row><col>.
// This is the shape of a spline characteristic matrix: it maps a 4-control
// vector to the coefficient vector of a cubic polynomial.
type Matrix4x4 struct {
	M00, M01, M02, M03 float64
	M10, M11, M12, M13 float64
	M20, M21, M22, M23 float64
	M30, M31, M32, M33 float64

	Precision int
}

// NewMatrix4x4 constructs a Matrix4x4 from its entries in row-major order.
func NewMatrix4x4(
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23,
	m30, m31, m32, m33 float64,
	prec ...int,
) Matrix4x4 {
	precision.AssertFinite("matrix.NewMatrix4x4",
		m00, m01, m02, m03, m10, m11, m12, m13,
		m20, m21, m22, m23, m30, m31, m32, m33)
	return Matrix4x4{
		M00: m00, M01: m01, M02: m02, M03: m03,
		M10: m10, M11: m11, M12: m12, M13: m13,
		M20: m20, M21: m21, M22: m22, M23: m23,
		M30: m30, M31: m31, M32: m32, M33: m33,
		Precision: resolve(prec),
	}
}

// FromRows4x4 builds a Matrix4x4 from its four row vectors.
func FromRows4x4(r0, r1, r2, r3 vector.Vector4, prec ...int) Matrix4x4 {
	p := prec
	if len(p) == 0 {
		p = []int{precision.Combine(precision.Combine(r0.Precision, r1.Precision), precision.Combine(r2.Precision, r3.Precision))}
	}
	return NewMatrix4x4(
		r0.V0, r0.V1, r0.V2, r0.V3,
		r1.V0, r1.V1, r1.V2, r1.V3,
		r2.V0, r2.V1, r2.V2, r2.V3,
		r3.V0, r3.V1, r3.V2, r3.V3,
		p...,
	)
}

// FromColumns4x4 builds a Matrix4x4 from its four column vectors.
func FromColumns4x4(c0, c1, c2, c3 vector.Vector4, prec ...int) Matrix4x4 {
	p := prec
	if len(p) == 0 {
		p = []int{precision.Combine(precision.Combine(c0.Precision, c1.Precision), precision.Combine(c2.Precision, c3.Precision))}
	}
	return NewMatrix4x4(
		c0.V0, c1.V0, c2.V0, c3.V0,
		c0.V1, c1.V1, c2.V1, c3.V1,
		c0.V2, c1.V2, c2.V2, c3.V2,
		c0.V3, c1.V3, c2.V3, c3.V3,
		p...,
	)
}

// ToRows returns the matrix's rows as vectors.
func (m Matrix4x4) ToRows() [4]vector.Vector4 {
	return [4]vector.Vector4{
		vector.NewVector4(m.M00, m.M01, m.M02, m.M03, m.Precision),
		vector.NewVector4(m.M10, m.M11, m.M12, m.M13, m.Precision),
		vector.NewVector4(m.M20, m.M21, m.M22, m.M23, m.Precision),
		vector.NewVector4(m.M30, m.M31, m.M32, m.M33, m.Precision),
	}
}

// ToColumns returns the matrix's columns as vectors.
func (m Matrix4x4) ToColumns() [4]vector.Vector4 {
	return [4]vector.Vector4{
		vector.NewVector4(m.M00, m.M10, m.M20, m.M30, m.Precision),
		vector.NewVector4(m.M01, m.M11, m.M21, m.M31, m.Precision),
		vector.NewVector4(m.M02, m.M12, m.M22, m.M32, m.Precision),
		vector.NewVector4(m.M03, m.M13, m.M23, m.M33, m.Precision),
	}
}

// SetRow returns a copy of m with row idx (0..3) replaced by r.
func (m Matrix4x4) SetRow(idx int, r vector.Vector4) Matrix4x4 {
	switch idx {
	case 0:
		m.M00, m.M01, m.M02, m.M03 = r.V0, r.V1, r.V2, r.V3
	case 1:
		m.M10, m.M11, m.M12, m.M13 = r.V0, r.V1, r.V2, r.V3
	case 2:
		m.M20, m.M21, m.M22, m.M23 = r.V0, r.V1, r.V2, r.V3
	case 3:
		m.M30, m.M31, m.M32, m.M33 = r.V0, r.V1, r.V2, r.V3
	default:
		panic("matrix.Matrix4x4.SetRow: row index out of range")
	}
	return m
}

// SetColumn returns a copy of m with column idx (0..3) replaced by c.
func (m Matrix4x4) SetColumn(idx int, c vector.Vector4) Matrix4x4 {
	switch idx {
	case 0:
		m.M00, m.M10, m.M20, m.M30 = c.V0, c.V1, c.V2, c.V3
	case 1:
		m.M01, m.M11, m.M21, m.M31 = c.V0, c.V1, c.V2, c.V3
	case 2:
		m.M02, m.M12, m.M22, m.M32 = c.V0, c.V1, c.V2, c.V3
	case 3:
		m.M03, m.M13, m.M23, m.M33 = c.V0, c.V1, c.V2, c.V3
	default:
		panic("matrix.Matrix4x4.SetColumn: column index out of range")
	}
	return m
}

// Minor returns the 3×3 matrix obtained by deleting row and col from m.
func (m Matrix4x4) Minor(row, col int) Matrix3x3 {
	rows := m.ToRows()
	var entries [9]float64
	i := 0
	for r := 0; r < 4; r++ {
		if r == row {
			continue
		}
		comps := rows[r].Components()
		for c := 0; c < 4; c++ {
			if c == col {
				continue
			}
			entries[i] = comps[c]
			i++
		}
	}
	return NewMatrix3x3(
		entries[0], entries[1], entries[2],
		entries[3], entries[4], entries[5],
		entries[6], entries[7], entries[8],
		m.Precision,
	)
}

// Determinant returns the determinant of m via cofactor expansion along the
// first row.
func (m Matrix4x4) Determinant() float64 {
	det := m.M00*m.Minor(0, 0).Determinant() -
		m.M01*m.Minor(0, 1).Determinant() +
		m.M02*m.Minor(0, 2).Determinant() -
		m.M03*m.Minor(0, 3).Determinant()
	return precision.Round(det, m.Precision)
}

// Valid reports whether all 16 entries of m are present (the zero value is
// a legitimate, if degenerate, matrix) and finite. This replaces the
// tautological isMatrix4x4 check from the original source (see DESIGN.md):
// rather than testing only that a value is *some* object, it requires every
// entry to be a real, finite number.
func (m Matrix4x4) Valid() bool {
	entries := [16]float64{
		m.M00, m.M01, m.M02, m.M03,
		m.M10, m.M11, m.M12, m.M13,
		m.M20, m.M21, m.M22, m.M23,
		m.M30, m.M31, m.M32, m.M33,
	}
	for _, e := range entries {
		if math.IsNaN(e) || math.IsInf(e, 0) {
			return false
		}
	}
	return true
}

// VectorProductLeft computes M·v.
func (m Matrix4x4) VectorProductLeft(v vector.Vector4) vector.Vector4 {
	p := precision.Combine(m.Precision, v.Precision)
	return vector.NewVector4(
		precision.Round(m.M00*v.V0+m.M01*v.V1+m.M02*v.V2+m.M03*v.V3, p),
		precision.Round(m.M10*v.V0+m.M11*v.V1+m.M12*v.V2+m.M13*v.V3, p),
		precision.Round(m.M20*v.V0+m.M21*v.V1+m.M22*v.V2+m.M23*v.V3, p),
		precision.Round(m.M30*v.V0+m.M31*v.V1+m.M32*v.V2+m.M33*v.V3, p),
		p,
	)
}

// VectorProductRight computes v·M.
func (m Matrix4x4) VectorProductRight(v vector.Vector4) vector.Vector4 {
	p := precision.Combine(m.Precision, v.Precision)
	return vector.NewVector4(
		precision.Round(v.V0*m.M00+v.V1*m.M10+v.V2*m.M20+v.V3*m.M30, p),
		precision.Round(v.V0*m.M01+v.V1*m.M11+v.V2*m.M21+v.V3*m.M31, p),
		precision.Round(v.V0*m.M02+v.V1*m.M12+v.V2*m.M22+v.V3*m.M32, p),
		precision.Round(v.V0*m.M03+v.V1*m.M13+v.V2*m.M23+v.V3*m.M33, p),
		p,
	)
}

// SolveSystem solves M·x = v for x via Cramer's rule. It fails with
// ErrSingularMatrix when det(M) rounds to zero.
func (m Matrix4x4) SolveSystem(v vector.Vector4) (vector.Vector4, error) {
	det := m.Determinant()
	if det == 0 {
		return vector.Vector4{}, ErrSingularMatrix
	}
	p := precision.Combine(m.Precision, v.Precision)
	mx := m.SetColumn(0, v)
	my := m.SetColumn(1, v)
	mz := m.SetColumn(2, v)
	mw := m.SetColumn(3, v)
	return vector.NewVector4(
		precision.Round(mx.Determinant()/det, p),
		precision.Round(my.Determinant()/det, p),
		precision.Round(mz.Determinant()/det, p),
		precision.Round(mw.Determinant()/det, p),
		p,
	), nil
}
