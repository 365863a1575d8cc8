package geom

import (
	"math"
	"testing"
)

func TestPositionOps(t *testing.T) {
	a := Position{X: 3, Y: 4}
	if got := a.Length(); got != 5 {
		t.Errorf("length = %v, want 5", got)
	}
	if got := a.Distance(Position{X: 3, Y: 0}); got != 4 {
		t.Errorf("distance = %v, want 4", got)
	}
	if got := a.Unit(); math.Abs(got.Length()-1) > 1e-12 {
		t.Errorf("unit length = %v, want 1", got.Length())
	}
	if got := (Position{}).Unit(); got != (Position{}) {
		t.Errorf("unit of zero vector = %v, want zero", got)
	}
	if got := a.Add(Position{X: 1, Y: 1}).Sub(a); got != (Position{X: 1, Y: 1}) {
		t.Errorf("add/sub roundtrip = %v", got)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{From: Position{X: 0, Y: 0}, To: Position{X: 10, Y: 10}}
	for _, p := range []Position{{0, 0}, {10, 10}, {5, 5}, {0, 10}} {
		if !r.Contains(p) {
			t.Errorf("rect must contain %v (borders inclusive)", p)
		}
	}
	for _, p := range []Position{{-0.1, 5}, {5, 10.1}, {11, 11}} {
		if r.Contains(p) {
			t.Errorf("rect must not contain %v", p)
		}
	}
}

func TestColorOver(t *testing.T) {
	base := Color{100, 100, 100, 255}

	if got := (Color{}).Over(base); got != base {
		t.Errorf("transparent over base = %v, want base", got)
	}
	if got := (Color{255, 0, 0, 255}).Over(base); got != (Color{255, 0, 0, 255}) {
		t.Errorf("opaque over base = %v, want source", got)
	}

	// Half-transparent red over opaque gray mixes the channels.
	got := Color{255, 0, 0, 127}.Over(base)
	if got[3] != 255 {
		t.Errorf("alpha = %d, want 255", got[3])
	}
	if got[0] <= got[1] || got[1] != got[2] {
		t.Errorf("blend = %v, want red-dominant gray mix", got)
	}
	if got := (Color{}).Over(Color{}); got != (Color{}) {
		t.Errorf("transparent over transparent = %v", got)
	}
}
