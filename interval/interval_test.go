package interval

import "testing"

func TestNewInvalid(t *testing.T) {
	if _, err := New(2, 1); err != ErrInvalidInterval {
		t.Errorf("New(2, 1) err = %v, want ErrInvalidInterval", err)
	}
}

func TestSizeAndContains(t *testing.T) {
	i, err := New(0, 10)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := i.Size(), 10.0; got != want {
		t.Errorf("Size() = %v, want %v", got, want)
	}
	if !i.Contains(0) || !i.Contains(10) || !i.Contains(5) {
		t.Error("expected 0, 5, 10 to be contained by default (inclusive)")
	}
	if i.Contains(0, ContainsOptions{IncludeStart: false, IncludeEnd: true}) {
		t.Error("expected start to be excluded")
	}
	if i.Contains(-1) || i.Contains(11) {
		t.Error("expected out-of-range values to be excluded")
	}
}

func TestClampLerpNormalize(t *testing.T) {
	i, _ := New(0, 2)
	if got := i.Clamp(5); got != 2 {
		t.Errorf("Clamp(5) = %v, want 2", got)
	}
	if got := i.Clamp(-5); got != 0 {
		t.Errorf("Clamp(-5) = %v, want 0", got)
	}
	if got := i.Lerp(0.5); got != 1 {
		t.Errorf("Lerp(0.5) = %v, want 1", got)
	}
	if got := i.Normalize(1); got != 0.5 {
		t.Errorf("Normalize(1) = %v, want 0.5", got)
	}
}

func TestRemap(t *testing.T) {
	from, _ := New(0, 1)
	to, _ := New(0, 2)
	if got, want := Remap(0.5, from, to), 1.0; got != want {
		t.Errorf("Remap() = %v, want %v", got, want)
	}
}

func TestFilter(t *testing.T) {
	i, _ := New(0, 10)
	got := i.Filter([]float64{-5, 0, 3, 10, 15})
	want := []float64{0, 3, 10}
	if len(got) != len(want) {
		t.Fatalf("Filter() = %v, want %v", got, want)
	}
	for idx := range want {
		if got[idx] != want[idx] {
			t.Errorf("Filter()[%d] = %v, want %v", idx, got[idx], want[idx])
		}
	}
}

func TestFromMinMax(t *testing.T) {
	i := FromMinMax(3, -1, 5, 0)
	if i.Start != -1 || i.End != 5 {
		t.Errorf("FromMinMax() = %+v, want {-1 5 ...}", i)
	}
}
