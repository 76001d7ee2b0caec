package matrix

import (
	"github.com/zedseven/splinecore/precision"
	"github.com/zedseven/splinecore/vector"
)

// Matrix3x3 is an immutable 3×3 matrix with row-major entries M<row><col>.
type Matrix3x3 struct {
	M00, M01, M02 float64
	M10, M11, M12 float64
	M20, M21, M22 float64

	Precision int
}

// NewMatrix3x3 constructs a Matrix3x3 from its entries in row-major order.
func NewMatrix3x3(m00, m01, m02, m10, m11, m12, m20, m21, m22 float64, prec ...int) Matrix3x3 {
	precision.AssertFinite("matrix.NewMatrix3x3", m00, m01, m02, m10, m11, m12, m20, m21, m22)
	return Matrix3x3{
		M00: m00, M01: m01, M02: m02,
		M10: m10, M11: m11, M12: m12,
		M20: m20, M21: m21, M22: m22,
		Precision: resolve(prec),
	}
}

// FromRows3x3 builds a Matrix3x3 from its three row vectors.
func FromRows3x3(r0, r1, r2 vector.Vector3, prec ...int) Matrix3x3 {
	p := prec
	if len(p) == 0 {
		p = []int{precision.Combine(precision.Combine(r0.Precision, r1.Precision), r2.Precision)}
	}
	return NewMatrix3x3(
		r0.V0, r0.V1, r0.V2,
		r1.V0, r1.V1, r1.V2,
		r2.V0, r2.V1, r2.V2,
		p...,
	)
}

// FromColumns3x3 builds a Matrix3x3 from its three column vectors.
func FromColumns3x3(c0, c1, c2 vector.Vector3, prec ...int) Matrix3x3 {
	p := prec
	if len(p) == 0 {
		p = []int{precision.Combine(precision.Combine(c0.Precision, c1.Precision), c2.Precision)}
	}
	return NewMatrix3x3(
		c0.V0, c1.V0, c2.V0,
		c0.V1, c1.V1, c2.V1,
		c0.V2, c1.V2, c2.V2,
		p...,
	)
}

// ToRows returns the matrix's rows as vectors.
func (m Matrix3x3) ToRows() [3]vector.Vector3 {
	return [3]vector.Vector3{
		vector.NewVector3(m.M00, m.M01, m.M02, m.Precision),
		vector.NewVector3(m.M10, m.M11, m.M12, m.Precision),
		vector.NewVector3(m.M20, m.M21, m.M22, m.Precision),
	}
}

// ToColumns returns the matrix's columns as vectors.
func (m Matrix3x3) ToColumns() [3]vector.Vector3 {
	return [3]vector.Vector3{
		vector.NewVector3(m.M00, m.M10, m.M20, m.Precision),
		vector.NewVector3(m.M01, m.M11, m.M21, m.Precision),
		vector.NewVector3(m.M02, m.M12, m.M22, m.Precision),
	}
}

// SetRow returns a copy of m with row idx (0..2) replaced by r.
func (m Matrix3x3) SetRow(idx int, r vector.Vector3) Matrix3x3 {
	switch idx {
	case 0:
		m.M00, m.M01, m.M02 = r.V0, r.V1, r.V2
	case 1:
		m.M10, m.M11, m.M12 = r.V0, r.V1, r.V2
	case 2:
		m.M20, m.M21, m.M22 = r.V0, r.V1, r.V2
	default:
		panic("matrix.Matrix3x3.SetRow: row index out of range")
	}
	return m
}

// SetColumn returns a copy of m with column idx (0..2) replaced by c.
func (m Matrix3x3) SetColumn(idx int, c vector.Vector3) Matrix3x3 {
	switch idx {
	case 0:
		m.M00, m.M10, m.M20 = c.V0, c.V1, c.V2
	case 1:
		m.M01, m.M11, m.M21 = c.V0, c.V1, c.V2
	case 2:
		m.M02, m.M12, m.M22 = c.V0, c.V1, c.V2
	default:
		panic("matrix.Matrix3x3.SetColumn: column index out of range")
	}
	return m
}

// Minor returns the 2×2 matrix obtained by deleting row and col from m.
func (m Matrix3x3) Minor(row, col int) Matrix2x2 {
	rows := m.ToRows()
	var entries [4]float64
	i := 0
	for r := 0; r < 3; r++ {
		if r == row {
			continue
		}
		comps := rows[r].Components()
		for c := 0; c < 3; c++ {
			if c == col {
				continue
			}
			entries[i] = comps[c]
			i++
		}
	}
	return NewMatrix2x2(entries[0], entries[1], entries[2], entries[3], m.Precision)
}

// Determinant returns the determinant of m via cofactor expansion along the
// first row.
func (m Matrix3x3) Determinant() float64 {
	det := m.M00*m.Minor(0, 0).Determinant() -
		m.M01*m.Minor(0, 1).Determinant() +
		m.M02*m.Minor(0, 2).Determinant()
	return precision.Round(det, m.Precision)
}

// VectorProductLeft computes M·v.
func (m Matrix3x3) VectorProductLeft(v vector.Vector3) vector.Vector3 {
	p := precision.Combine(m.Precision, v.Precision)
	return vector.NewVector3(
		precision.Round(m.M00*v.V0+m.M01*v.V1+m.M02*v.V2, p),
		precision.Round(m.M10*v.V0+m.M11*v.V1+m.M12*v.V2, p),
		precision.Round(m.M20*v.V0+m.M21*v.V1+m.M22*v.V2, p),
		p,
	)
}

// VectorProductRight computes v·M.
func (m Matrix3x3) VectorProductRight(v vector.Vector3) vector.Vector3 {
	p := precision.Combine(m.Precision, v.Precision)
	return vector.NewVector3(
		precision.Round(v.V0*m.M00+v.V1*m.M10+v.V2*m.M20, p),
		precision.Round(v.V0*m.M01+v.V1*m.M11+v.V2*m.M21, p),
		precision.Round(v.V0*m.M02+v.V1*m.M12+v.V2*m.M22, p),
		p,
	)
}

// SolveSystem solves M·x = v for x via Cramer's rule. It fails with
// ErrSingularMatrix when det(M) rounds to zero.
func (m Matrix3x3) SolveSystem(v vector.Vector3) (vector.Vector3, error) {
	det := m.Determinant()
	if det == 0 {
		return vector.Vector3{}, ErrSingularMatrix
	}
	p := precision.Combine(m.Precision, v.Precision)
	mx := m.SetColumn(0, v)
	my := m.SetColumn(1, v)
	mz := m.SetColumn(2, v)
	return vector.NewVector3(
		precision.Round(mx.Determinant()/det, p),
		precision.Round(my.Determinant()/det, p),
		precision.Round(mz.Determinant()/det, p),
		p,
	), nil
}
