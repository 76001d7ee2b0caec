package vector

import "testing"

func TestVector2Dot(t *testing.T) {
	a := NewVector2(1, 2, 8)
	b := NewVector2(3, 4, 12)
	if got, want := a.Dot(b), 11.0; got != want {
		t.Errorf("Dot() = %v, want %v", got, want)
	}
}

func TestVector2FromArray(t *testing.T) {
	v := Vector2FromArray([2]float64{5, 6})
	if v.V0 != 5 || v.V1 != 6 {
		t.Errorf("FromArray = %+v, want {5 6}", v)
	}
	if !v.Equal(NewVector2(5, 6)) {
		t.Errorf("Equal() should hold for identical components")
	}
}

func TestVector3Dot(t *testing.T) {
	a := NewVector3(1, 0, 0)
	b := NewVector3(0, 1, 0)
	if got := a.Dot(b); got != 0 {
		t.Errorf("Dot() = %v, want 0", got)
	}
}

func TestVector4Components(t *testing.T) {
	v := NewVector4(1, 2, 3, 4)
	got := v.Components()
	want := []float64{1, 2, 3, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Components()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestVectorPrecisionCombine(t *testing.T) {
	a := NewVector4(1.123456789, 0, 0, 0, 3)
	b := NewVector4(1, 0, 0, 0, 12)
	got := a.Dot(b)
	want := 1.123
	if got != want {
		t.Errorf("Dot() = %v, want %v", got, want)
	}
}

func TestAssertFinitePanicsOnConstruct(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic constructing vector with NaN component")
		}
	}()
	NewVector2(0, 0.0/zero())
}

func zero() float64 { return 0 }
