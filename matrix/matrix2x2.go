package matrix

import (
	"github.com/zedseven/splinecore/precision"
	"github.com/zedseven/splinecore/vector"
)

// Matrix2x2 is an immutable 2×2 matrix with row-major entries M<row><col>.
type Matrix2x2 struct {
	M00, M01 float64
	M10, M11 float64

	Precision int
}

// NewMatrix2x2 constructs a Matrix2x2 from its entries in row-major order.
func NewMatrix2x2(m00, m01, m10, m11 float64, prec ...int) Matrix2x2 {
	precision.AssertFinite("matrix.NewMatrix2x2", m00, m01, m10, m11)
	return Matrix2x2{M00: m00, M01: m01, M10: m10, M11: m11, Precision: resolve(prec)}
}

// FromRows2x2 builds a Matrix2x2 from its two row vectors.
func FromRows2x2(r0, r1 vector.Vector2, prec ...int) Matrix2x2 {
	p := prec
	if len(p) == 0 {
		p = []int{precision.Combine(r0.Precision, r1.Precision)}
	}
	return NewMatrix2x2(r0.V0, r0.V1, r1.V0, r1.V1, p...)
}

// FromColumns2x2 builds a Matrix2x2 from its two column vectors.
func FromColumns2x2(c0, c1 vector.Vector2, prec ...int) Matrix2x2 {
	p := prec
	if len(p) == 0 {
		p = []int{precision.Combine(c0.Precision, c1.Precision)}
	}
	return NewMatrix2x2(c0.V0, c1.V0, c0.V1, c1.V1, p...)
}

// ToRows returns the matrix's rows as vectors.
func (m Matrix2x2) ToRows() [2]vector.Vector2 {
	return [2]vector.Vector2{
		vector.NewVector2(m.M00, m.M01, m.Precision),
		vector.NewVector2(m.M10, m.M11, m.Precision),
	}
}

// ToColumns returns the matrix's columns as vectors.
func (m Matrix2x2) ToColumns() [2]vector.Vector2 {
	return [2]vector.Vector2{
		vector.NewVector2(m.M00, m.M10, m.Precision),
		vector.NewVector2(m.M01, m.M11, m.Precision),
	}
}

// SetRow returns a copy of m with row idx (0 or 1) replaced by r.
func (m Matrix2x2) SetRow(idx int, r vector.Vector2) Matrix2x2 {
	switch idx {
	case 0:
		m.M00, m.M01 = r.V0, r.V1
	case 1:
		m.M10, m.M11 = r.V0, r.V1
	default:
		panic("matrix.Matrix2x2.SetRow: row index out of range")
	}
	return m
}

// SetColumn returns a copy of m with column idx (0 or 1) replaced by c.
func (m Matrix2x2) SetColumn(idx int, c vector.Vector2) Matrix2x2 {
	switch idx {
	case 0:
		m.M00, m.M10 = c.V0, c.V1
	case 1:
		m.M01, m.M11 = c.V0, c.V1
	default:
		panic("matrix.Matrix2x2.SetColumn: column index out of range")
	}
	return m
}

// Determinant returns the determinant of m.
func (m Matrix2x2) Determinant() float64 {
	return precision.Round(m.M00*m.M11-m.M01*m.M10, m.Precision)
}

// VectorProductLeft computes M·v.
func (m Matrix2x2) VectorProductLeft(v vector.Vector2) vector.Vector2 {
	p := precision.Combine(m.Precision, v.Precision)
	return vector.NewVector2(
		precision.Round(m.M00*v.V0+m.M01*v.V1, p),
		precision.Round(m.M10*v.V0+m.M11*v.V1, p),
		p,
	)
}

// VectorProductRight computes v·M.
func (m Matrix2x2) VectorProductRight(v vector.Vector2) vector.Vector2 {
	p := precision.Combine(m.Precision, v.Precision)
	return vector.NewVector2(
		precision.Round(v.V0*m.M00+v.V1*m.M10, p),
		precision.Round(v.V0*m.M01+v.V1*m.M11, p),
		p,
	)
}

// SolveSystem solves M·x = v for x via Cramer's rule. It fails with
// ErrSingularMatrix when det(M) rounds to zero.
func (m Matrix2x2) SolveSystem(v vector.Vector2) (vector.Vector2, error) {
	det := m.Determinant()
	if det == 0 {
		return vector.Vector2{}, ErrSingularMatrix
	}
	p := precision.Combine(m.Precision, v.Precision)
	mx := m.SetColumn(0, v)
	my := m.SetColumn(1, v)
	return vector.NewVector2(
		precision.Round(mx.Determinant()/det, p),
		precision.Round(my.Determinant()/det, p),
		p,
	), nil
}
