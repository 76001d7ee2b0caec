package curve

import "testing"

func TestCreateBezierCurveAxisMismatch(t *testing.T) {
	points := map[string][]float64{
		"x": {0, 1, 2, 3},
		"y": {0, 1, 2, 3, 4, 5, 6}, // two segments, mismatched with x's one
	}
	if _, err := CreateBezierCurve(points); err != ErrAxisMismatch {
		t.Errorf("err = %v, want ErrAxisMismatch", err)
	}
}

func TestPositionAtInvalidInput(t *testing.T) {
	c, err := CreateBezierCurve(map[string][]float64{"x": {0, 1, 2, 3}})
	if err != nil {
		t.Fatalf("CreateBezierCurve: %v", err)
	}
	if _, err := c.PositionAt(-0.1, 0); err != ErrInvalidInput {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
	if _, err := c.PositionAt(1.1, 0); err != ErrInvalidInput {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}

func TestPositionAtLinearBezier(t *testing.T) {
	// Evenly spaced, collinear control points degenerate a cubic Bezier
	// into the straight line p(u) = 3u.
	c, err := CreateBezierCurve(map[string][]float64{"x": {0, 1, 2, 3}})
	if err != nil {
		t.Fatalf("CreateBezierCurve: %v", err)
	}
	got, err := c.PositionAt(0.5, 0)
	if err != nil {
		t.Fatalf("PositionAt: %v", err)
	}
	if want := 1.5; got["x"] != want {
		t.Errorf("x = %v, want %v", got["x"], want)
	}
}

func TestPositionAtEndpoints(t *testing.T) {
	c, err := CreateBezierCurve(map[string][]float64{"x": {0, 1, 2, 3}, "y": {5, 5, 5, 5}})
	if err != nil {
		t.Fatalf("CreateBezierCurve: %v", err)
	}
	start, err := c.PositionAt(0, 0)
	if err != nil {
		t.Fatalf("PositionAt(0): %v", err)
	}
	if start["x"] != 0 || start["y"] != 5 {
		t.Errorf("start = %v, want {x:0 y:5}", start)
	}
	end, err := c.PositionAt(1, 0)
	if err != nil {
		t.Fatalf("PositionAt(1): %v", err)
	}
	if end["x"] != 3 || end["y"] != 5 {
		t.Errorf("end = %v, want {x:3 y:5}", end)
	}
}

func TestSolveWhereMonotonicAxis(t *testing.T) {
	c, err := CreateBezierCurve(map[string][]float64{
		"x": {0, 1, 2, 3},
		"y": {0, 5, -5, 0},
	})
	if err != nil {
		t.Fatalf("CreateBezierCurve: %v", err)
	}
	got, err := c.SolveWhere("x", 1.5)
	if err != nil {
		t.Fatalf("SolveWhere: %v", err)
	}
	want, err := c.PositionAt(0.5, 0)
	if err != nil {
		t.Fatalf("PositionAt: %v", err)
	}
	if got["x"] != want["x"] {
		t.Errorf("SolveWhere x = %v, want %v", got["x"], want["x"])
	}
}

func TestSolveWhereNonMonotonicAxis(t *testing.T) {
	c, err := CreateBezierCurve(map[string][]float64{
		"x": {0, 1, 2, 3},
		"y": {0, 5, -5, 0},
	})
	if err != nil {
		t.Fatalf("CreateBezierCurve: %v", err)
	}
	if _, err := c.SolveWhere("y", 0); err != ErrNonMonotonicAxis {
		t.Errorf("err = %v, want ErrNonMonotonicAxis", err)
	}
}

func TestSolveWhereUnknownAxis(t *testing.T) {
	c, err := CreateBezierCurve(map[string][]float64{"x": {0, 1, 2, 3}})
	if err != nil {
		t.Fatalf("CreateBezierCurve: %v", err)
	}
	if _, err := c.SolveWhere("z", 0); err != ErrInvalidInput {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}

func TestSolveWhereRootUnsolvable(t *testing.T) {
	c, err := CreateBezierCurve(map[string][]float64{"x": {0, 1, 2, 3}})
	if err != nil {
		t.Fatalf("CreateBezierCurve: %v", err)
	}
	if _, err := c.SolveWhere("x", 100); err != ErrRootUnsolvable {
		t.Errorf("err = %v, want ErrRootUnsolvable", err)
	}
}

func TestAxes(t *testing.T) {
	c, err := CreateBezierCurve(map[string][]float64{"x": {0, 1, 2, 3}, "y": {0, 1, 2, 3}})
	if err != nil {
		t.Fatalf("CreateBezierCurve: %v", err)
	}
	axes := c.Axes()
	if len(axes) != 2 || axes[0] != "x" || axes[1] != "y" {
		t.Errorf("Axes() = %v, want sorted [x y]", axes)
	}
}

func TestPositionAtNormalizedMatchesRawOnConstantSpeedCurve(t *testing.T) {
	// A straight line traverses arc length linearly with t, so raw and
	// length-normalized parametrization coincide.
	c, err := CreateBezierCurve(map[string][]float64{"x": {0, 1, 2, 3}})
	if err != nil {
		t.Fatalf("CreateBezierCurve: %v", err)
	}
	raw, err := c.PositionAt(0.5, 0)
	if err != nil {
		t.Fatalf("PositionAt raw: %v", err)
	}
	normalized, err := c.PositionAt(0.5, 1)
	if err != nil {
		t.Fatalf("PositionAt normalized: %v", err)
	}
	if diff := raw["x"] - normalized["x"]; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("raw x = %v, normalized x = %v, want approximately equal", raw["x"], normalized["x"])
	}
}
