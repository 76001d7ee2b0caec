package polynomial

import (
	"math"
	"testing"

	"github.com/zedseven/splinecore/interval"
)

func TestLinearSolve(t *testing.T) {
	p := NewLinear(1, 2)
	if got, want := p.Solve(3), 7.0; got != want {
		t.Errorf("Solve(3) = %v, want %v", got, want)
	}
}

func TestLinearSolveInverse(t *testing.T) {
	p := NewLinear(1, 2)
	got := p.SolveInverse(7)
	want := []float64{3}
	if len(got) != 1 || got[0] != want[0] {
		t.Errorf("SolveInverse(7) = %v, want %v", got, want)
	}

	constant := NewLinear(5, 0)
	if got := constant.SolveInverse(5); got != nil {
		t.Errorf("SolveInverse on constant line = %v, want nil", got)
	}
}

func TestLinearDerivativeAntiderivative(t *testing.T) {
	p := NewLinear(3, 4)
	d := p.Derivative()
	if d.C0 != 4 || d.C1 != 0 {
		t.Errorf("Derivative() = %+v, want {4 0 ...}", d)
	}
	a := p.Antiderivative(10)
	if a.C0 != 10 {
		t.Errorf("Antiderivative(10).C0 = %v, want 10", a.C0)
	}
	if got := p.Solve(0); got != a.Derivative().Solve(0) {
		t.Errorf("derivative(antiderivative(p)) should round-trip to p")
	}
}

func TestLinearMonotonicity(t *testing.T) {
	if got := NewLinear(0, 2).Monotonicity(); got != Increasing {
		t.Errorf("Monotonicity() = %v, want Increasing", got)
	}
	if got := NewLinear(0, -2).Monotonicity(); got != Decreasing {
		t.Errorf("Monotonicity() = %v, want Decreasing", got)
	}
	if got := NewLinear(0, 0).Monotonicity(); got != Constant {
		t.Errorf("Monotonicity() = %v, want Constant", got)
	}
}

func TestLinearLength(t *testing.T) {
	p := NewLinear(0, 1)
	dom, _ := interval.New(0, 1)
	if got, want := p.Length(dom), math.Sqrt(2); math.Abs(got-want) > 1e-9 {
		t.Errorf("Length() = %v, want %v", got, want)
	}
}
