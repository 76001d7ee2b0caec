package precision

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestRound(t *testing.T) {
	tests := []struct {
		value  float64
		places int
		want   float64
	}{
		{1.2345, 2, 1.23},
		{1.2355, 2, 1.24},
		{-1.2355, 2, -1.24},
		{0.125, 2, 0.13},
		{-0.125, 2, -0.13},
		{1.23456789, Max, 1.23456789},
		{1.23456789, Max + 4, 1.23456789},
	}
	for _, tt := range tests {
		got := Round(tt.value, tt.places)
		if d := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 1e-12)); d != "" {
			t.Errorf("Round(%v, %v): %s", tt.value, tt.places, d)
		}
	}
}

func TestRoundNegativePlaces(t *testing.T) {
	if got := Round(0, -1); got != 0 {
		t.Errorf("Round with negative places: got %v, want 0", got)
	}
}

func TestCombine(t *testing.T) {
	if got := Combine(8, 12); got != 8 {
		t.Errorf("Combine(8, 12) = %v, want 8", got)
	}
	if got := Combine(12, 8); got != 8 {
		t.Errorf("Combine(12, 8) = %v, want 8", got)
	}
}

func TestAssertFiniteOK(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("unexpected panic: %v", r)
		}
	}()
	AssertFinite("test", 1.0, 2.0, -3.5)
}

func TestAssertFinitePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on non-finite input")
		}
	}()
	AssertFinite("test", math.NaN())
}
