package interp

import (
	"math"
	"testing"

	"github.com/san-kum/atomviz/internal/geom"
)

func TestConstant(t *testing.T) {
	fn := Constant[bool]()
	for _, f := range []float64{0, 0.25, 0.5, 1} {
		if !fn.Eval(f, false, true) {
			t.Errorf("fraction %.2f: expected to-value", f)
		}
	}
	if fn.Endpoint != To {
		t.Error("constant should end at the to-value")
	}
}

func TestLinearFloat(t *testing.T) {
	fn := Linear(LerpFloat)
	tests := []struct {
		fraction, from, to, want float64
	}{
		{0, 2, 10, 2},
		{0.5, 2, 10, 6},
		{1, 2, 10, 10},
		{0.25, 0, 8, 2},
	}
	for _, tt := range tests {
		if got := fn.Eval(tt.fraction, tt.from, tt.to); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("linear(%.2f, %.1f, %.1f) = %.4f, want %.4f", tt.fraction, tt.from, tt.to, got, tt.want)
		}
	}
}

func TestTriangle(t *testing.T) {
	fn := Triangle(LerpFloat)
	if fn.Endpoint != From {
		t.Fatal("triangle must loop back to the from-value")
	}
	tests := []struct {
		fraction, want float64
	}{
		{0, 0},
		{0.25, 4},
		{0.5, 8},
		{0.75, 4},
		{1, 0},
	}
	for _, tt := range tests {
		if got := fn.Eval(tt.fraction, 0, 8); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("triangle(%.2f) = %.4f, want %.4f", tt.fraction, got, tt.want)
		}
	}
}

func TestCubicEndpoints(t *testing.T) {
	fn := Cubic(LerpFloat)
	if got := fn.Eval(0, 1, 9); got != 1 {
		t.Errorf("cubic(0) = %.4f, want 1", got)
	}
	if got := fn.Eval(1, 1, 9); got != 9 {
		t.Errorf("cubic(1) = %.4f, want 9", got)
	}
	if got := fn.Eval(0.5, 0, 1); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("cubic(0.5) = %.4f, want 0.5", got)
	}
}

func TestCubicMonotonic(t *testing.T) {
	fn := Cubic(LerpFloat)
	prev := math.Inf(-1)
	for i := 0; i <= 100; i++ {
		got := fn.Eval(float64(i)/100, 0, 10)
		if got < prev {
			t.Fatalf("cubic not monotonic at fraction %.2f: %.6f < %.6f", float64(i)/100, got, prev)
		}
		prev = got
	}
}

func TestLerpPosition(t *testing.T) {
	got := LerpPosition(0.5, geom.Position{X: 0, Y: 2}, geom.Position{X: 4, Y: 6})
	want := geom.Position{X: 2, Y: 4}
	if got != want {
		t.Errorf("lerp = %+v, want %+v", got, want)
	}
}

func TestLerpColor(t *testing.T) {
	got := LerpColor(0.5, geom.Color{0, 0, 0, 0}, geom.Color{200, 100, 50, 254})
	want := geom.Color{100, 50, 25, 127}
	if got != want {
		t.Errorf("lerp = %v, want %v", got, want)
	}
}
