package timeline

import (
	"math"
	"math/rand"
	"testing"

	"github.com/san-kum/atomviz/internal/interp"
)

func TestAddKeepsOrder(t *testing.T) {
	tl := New(0.0, interp.Linear(interp.LerpFloat))
	times := []float64{5, 1, 9, 3, 3, 7, 0}
	for _, at := range times {
		tl.Add(at, 1, at)
	}

	kfs := tl.Keyframes()
	if len(kfs) != len(times) {
		t.Fatalf("expected %d keyframes, got %d", len(times), len(kfs))
	}
	for i := 1; i < len(kfs); i++ {
		if kfs[i].Time < kfs[i-1].Time {
			t.Fatalf("keyframes out of order at %d: %.1f < %.1f", i, kfs[i].Time, kfs[i-1].Time)
		}
	}
}

func TestAddRandomOrderProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	tl := New(0.0, interp.Constant[float64]())
	for i := 0; i < 200; i++ {
		tl.Add(rng.Float64()*100, 0, float64(i))
	}
	kfs := tl.Keyframes()
	for i := 1; i < len(kfs); i++ {
		if kfs[i].Time < kfs[i-1].Time {
			t.Fatalf("keyframes out of order at %d", i)
		}
	}
}

func TestDefaultBeforeFirstKeyframe(t *testing.T) {
	tl := New(3.5, interp.Linear(interp.LerpFloat))
	tl.Add(10, 2, 8)

	for _, at := range []float64{-100, 0, 9.999} {
		if got := tl.Get(at); got != 3.5 {
			t.Errorf("get(%.3f) = %.3f, want default 3.5", at, got)
		}
	}
}

func TestTriangleLoopback(t *testing.T) {
	tl := New(0.0, interp.Triangle(interp.LerpFloat))
	tl.Add(10, 4, 8)

	tests := []struct {
		at, want float64
	}{
		{10, 0},
		{11, 4},
		{12, 8},
		{13, 4},
		{14, 0},
		{100, 0}, // held after the pulse
	}
	for _, tt := range tests {
		if got := tl.Get(tt.at); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("get(%.1f) = %.4f, want %.4f", tt.at, got, tt.want)
		}
	}
}

func TestEndpointPolicy(t *testing.T) {
	// With a loop-back function each pulse starts from the default, not
	// from the previous keyframe's peak.
	tri := New(1.0, interp.Triangle(interp.LerpFloat))
	tri.Add(0, 2, 10)
	tri.Add(5, 2, 6)
	if got := tri.Get(5); math.Abs(got-1) > 1e-12 {
		t.Errorf("triangle from-value should be the default: got %.4f, want 1", got)
	}

	lin := New(1.0, interp.Linear(interp.LerpFloat))
	lin.Add(0, 2, 10)
	lin.Add(5, 2, 6)
	if got := lin.Get(5); math.Abs(got-10) > 1e-12 {
		t.Errorf("linear from-value should be the previous target: got %.4f, want 10", got)
	}
}

func TestCubicMonotonicOverKeyframe(t *testing.T) {
	tl := New(2.0, interp.Cubic(interp.LerpFloat))
	tl.Add(1, 4, 12)

	prev := math.Inf(-1)
	for i := 0; i <= 80; i++ {
		at := 1 + float64(i)*0.05
		got := tl.Get(at)
		if got < prev {
			t.Fatalf("not non-decreasing at t=%.2f", at)
		}
		prev = got
	}
	if got := tl.Get(1); got != 2 {
		t.Errorf("get(t0) = %.4f, want default 2", got)
	}
	if got := tl.Get(5); got != 12 {
		t.Errorf("get(t0+dur) = %.4f, want 12", got)
	}
}

func TestZeroDurationIsInstant(t *testing.T) {
	tl := New(false, interp.Constant[bool]())
	tl.Add(3, 0, true)

	if tl.Get(2.999) {
		t.Error("value changed before the keyframe")
	}
	if !tl.Get(3) {
		t.Error("zero-duration keyframe must apply at its start time")
	}
}

// Two keyframes at the same time are kept in insertion order; sampling at
// that time sees the last-inserted one.
func TestEqualTimeTieBreak(t *testing.T) {
	tl := New(0.0, interp.Constant[float64]())
	tl.Add(1, 0, 2)
	tl.Add(1, 0, 3)

	kfs := tl.Keyframes()
	if kfs[0].Value != 2 || kfs[1].Value != 3 {
		t.Fatalf("ties must keep insertion order, got %v", kfs)
	}
	if got := tl.Get(1); got != 3 {
		t.Errorf("get(1) = %.1f, want 3", got)
	}
}
