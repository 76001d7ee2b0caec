package matrix

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/zedseven/splinecore/vector"
)

func TestMatrix2x2Determinant(t *testing.T) {
	m := NewMatrix2x2(1, 2, 3, 4)
	if got, want := m.Determinant(), -2.0; got != want {
		t.Errorf("Determinant() = %v, want %v", got, want)
	}
}

func TestMatrix2x2SolveSystem(t *testing.T) {
	// x + 2y = 5, 3x + 4y = 6 -> x=-4, y=4.5
	m := NewMatrix2x2(1, 2, 3, 4)
	v := vector.NewVector2(5, 6)
	x, err := m.SolveSystem(v)
	if err != nil {
		t.Fatalf("SolveSystem: %v", err)
	}
	want := vector.NewVector2(-4, 4.5)
	if d := cmp.Diff(want, x, cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Error(d)
	}
}

func TestMatrix2x2SolveSystemSingular(t *testing.T) {
	m := NewMatrix2x2(1, 2, 2, 4)
	if _, err := m.SolveSystem(vector.NewVector2(1, 1)); err != ErrSingularMatrix {
		t.Errorf("SolveSystem() err = %v, want ErrSingularMatrix", err)
	}
}

func TestMatrix3x3Minor(t *testing.T) {
	m := NewMatrix3x3(
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	)
	got := m.Minor(1, 1)
	want := NewMatrix2x2(1, 3, 7, 9)
	if d := cmp.Diff(want, got, cmpopts.IgnoreFields(Matrix2x2{}, "Precision")); d != "" {
		t.Error(d)
	}
}

func TestMatrix3x3Determinant(t *testing.T) {
	m := NewMatrix3x3(
		6, 1, 1,
		4, -2, 5,
		2, 8, 7,
	)
	if got, want := m.Determinant(), -306.0; got != want {
		t.Errorf("Determinant() = %v, want %v", got, want)
	}
}

func TestMatrix4x4VectorProductLeft(t *testing.T) {
	identity := NewMatrix4x4(
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
	v := vector.NewVector4(1, 2, 3, 4)
	got := identity.VectorProductLeft(v)
	if !got.Equal(v) {
		t.Errorf("identity.VectorProductLeft(v) = %+v, want %+v", got, v)
	}
}

func TestMatrix4x4Valid(t *testing.T) {
	m := NewMatrix4x4(
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
	if !m.Valid() {
		t.Error("expected identity matrix to be valid")
	}
}

func TestMatrix4x4SolveSystem(t *testing.T) {
	m := NewMatrix4x4(
		1, 0, 0, 0,
		0, 2, 0, 0,
		0, 0, 3, 0,
		0, 0, 0, 4,
	)
	v := vector.NewVector4(2, 4, 9, 8)
	x, err := m.SolveSystem(v)
	if err != nil {
		t.Fatalf("SolveSystem: %v", err)
	}
	want := vector.NewVector4(2, 2, 3, 2)
	if d := cmp.Diff(want, x, cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Error(d)
	}
}
