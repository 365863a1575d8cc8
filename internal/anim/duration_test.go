package anim

import (
	"math"
	"testing"

	"github.com/san-kum/atomviz/internal/config"
	"github.com/san-kum/atomviz/internal/geom"
	"github.com/san-kum/atomviz/internal/program"
)

func testMachine() *config.MachineConfig {
	m := config.DefaultMachine()
	m.Zones["zone0"] = geom.Rect{From: geom.Position{X: 0, Y: 0}, To: geom.Position{X: 10, Y: 10}}
	m.Time = config.OperationTimes{Load: 5, Store: 2, Rz: 1, Ry: 1.5, Cz: 0.5, Unit: "us"}
	m.Movement = config.Movement{
		Acceleration: config.Acceleration{Up: 1, Down: 1},
		Speed:        1,
		Profile:      config.ProfileTrapezoid,
	}
	m.Distance = config.Distances{Interaction: 2}
	return m
}

func position(x, y float64) *geom.Position {
	return &geom.Position{X: x, Y: y}
}

func TestTrapezoidDurationTriangularProfile(t *testing.T) {
	// Short moves never reach max speed: duration = 2·sqrt(2d/(aUp+aDown)).
	got := trapezoidDuration(2, 1, 1, 10)
	want := 2 * math.Sqrt(2)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("duration = %.6f, want %.6f", got, want)
	}
}

func TestTrapezoidDurationWithCruise(t *testing.T) {
	// d=4, a=1, v=1: accelerate 1, cruise 3, decelerate 1.
	got := trapezoidDuration(4, 1, 1, 1)
	if math.Abs(got-5) > 1e-9 {
		t.Errorf("duration = %.6f, want 5", got)
	}
}

func TestTrapezoidBoundaryContinuity(t *testing.T) {
	// At d = v²/a both formula branches agree.
	a, v := 1.0, 1.0
	d := v * v / a

	triangular := 2 * math.Sqrt(2*d/(a+a))
	cruise := d - a/2*(v/a)*(v/a) - a/2*(v/a)*(v/a)
	trapezoid := v/a + cruise/v + v/a

	if math.Abs(triangular-trapezoid) > 1e-9 {
		t.Fatalf("branches disagree at boundary: %.6f vs %.6f", triangular, trapezoid)
	}
	if got := trapezoidDuration(d, a, a, v); math.Abs(got-triangular) > 1e-9 {
		t.Errorf("duration = %.6f, want %.6f", got, triangular)
	}
}

func TestMoveDurationSymmetry(t *testing.T) {
	machine := testMachine()
	a := geom.Position{X: 1, Y: 2}
	b := geom.Position{X: 7, Y: -3}

	forward := moveDuration(a.Distance(b), machine.Movement)
	backward := moveDuration(b.Distance(a), machine.Movement)
	if forward != backward {
		t.Errorf("move duration not distance-symmetric: %.6f vs %.6f", forward, backward)
	}
}

func TestMoveDurationJerkProfile(t *testing.T) {
	m := config.Movement{
		Acceleration: config.Acceleration{Up: 1, Down: 1},
		Speed:        3,
		Profile:      config.ProfileJerk,
	}
	// Constant-jerk with peak velocity v: T = 3d/(2v).
	if got := moveDuration(6, m); math.Abs(got-3) > 1e-9 {
		t.Errorf("duration = %.6f, want 3", got)
	}
}

func TestMoveUnknownAtomFallsBackToZero(t *testing.T) {
	var missed []string
	a := New(testMachine(), testVisual(), program.Instructions{
		Setup: []program.AtomPlacement{{ID: "atom0"}},
	}, WithDiagnostics(func(kind, id string) {
		missed = append(missed, kind+":"+id)
	}))

	op := program.TimedInstruction{Kind: program.OpMove, ID: "ghost", Position: position(5, 5)}
	if got := a.instructionDuration(op, 0); got != 0 {
		t.Errorf("unknown atom must yield zero duration, got %.4f", got)
	}
	if len(missed) != 1 || missed[0] != "atom:ghost" {
		t.Errorf("diagnostic hook not invoked: %v", missed)
	}
}

func TestFixedDurations(t *testing.T) {
	a := New(testMachine(), testVisual(), program.Instructions{
		Setup: []program.AtomPlacement{{ID: "atom0"}},
	})

	tests := []struct {
		kind program.OpKind
		want float64
	}{
		{program.OpLoad, 5},
		{program.OpStore, 2},
		{program.OpRz, 1},
		{program.OpRy, 1.5},
		{program.OpCz, 0.5},
	}
	for _, tt := range tests {
		op := program.TimedInstruction{Kind: tt.kind, ID: "atom0"}
		if got := a.instructionDuration(op, 0); got != tt.want {
			t.Errorf("%s duration = %.2f, want %.2f", tt.kind, got, tt.want)
		}
	}
}
