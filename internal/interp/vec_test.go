package interp

import (
	"math"
	"testing"

	"github.com/san-kum/atomviz/internal/geom"
)

func TestDiagonal(t *testing.T) {
	d := Diagonal{Motion: JerkAverageVelocity(1)}
	from := geom.Position{X: 0, Y: 0}
	to := geom.Position{X: 3, Y: 4}

	if got := d.Duration(from, to); math.Abs(got-5) > 1e-9 {
		t.Errorf("duration = %.6f, want 5", got)
	}

	// Midpoint of the motion lies on the straight line between the endpoints.
	mid := d.Interpolate(0.5, from, to)
	want := geom.Position{X: 1.5, Y: 2}
	if math.Abs(mid.X-want.X) > 1e-9 || math.Abs(mid.Y-want.Y) > 1e-9 {
		t.Errorf("midpoint = %+v, want %+v", mid, want)
	}

	if got := d.Interpolate(1, from, to); math.Abs(got.X-3) > 1e-9 || math.Abs(got.Y-4) > 1e-9 {
		t.Errorf("endpoint = %+v, want %+v", got, to)
	}
	if got := d.Interpolate(0.3, from, from); got != from {
		t.Errorf("zero-length move should stay at %+v, got %+v", from, got)
	}
}

func TestComponentWise(t *testing.T) {
	c := ComponentWise{Motion: JerkAverageVelocity(1)}
	from := geom.Position{X: 0, Y: 0}
	to := geom.Position{X: 10, Y: 5}

	// The slower axis dominates the total duration.
	if got := c.Duration(from, to); math.Abs(got-10) > 1e-9 {
		t.Errorf("duration = %.6f, want 10", got)
	}

	// The faster axis finishes early: y is done by fraction 0.5.
	half := c.Interpolate(0.5, from, to)
	if math.Abs(half.Y-5) > 1e-9 {
		t.Errorf("y at fraction 0.5 = %.6f, want 5", half.Y)
	}
	if math.Abs(half.X-5) > 1e-9 {
		t.Errorf("x at fraction 0.5 = %.6f, want 5", half.X)
	}

	end := c.Interpolate(1, from, to)
	if math.Abs(end.X-10) > 1e-9 || math.Abs(end.Y-5) > 1e-9 {
		t.Errorf("endpoint = %+v, want %+v", end, to)
	}
}

func TestComponentWiseDegenerateAxis(t *testing.T) {
	c := ComponentWise{Motion: JerkAverageVelocity(2)}
	from := geom.Position{X: 1, Y: 3}
	to := geom.Position{X: 1, Y: 9}

	if got := c.Interpolate(0.5, from, to); math.Abs(got.X-1) > 1e-9 {
		t.Errorf("stationary axis moved: %+v", got)
	}
}
