package anim

import (
	"math"

	"github.com/san-kum/atomviz/internal/config"
	"github.com/san-kum/atomviz/internal/interp"
	"github.com/san-kum/atomviz/internal/program"
)

// instructionDuration computes how long an instruction takes when starting
// at the passed time. Fixed-time operations use the machine constants; moves
// derive their duration from the machine's movement kinematics and the
// atom's current position. An unknown atom id yields zero.
func (a *Animator) instructionDuration(op program.TimedInstruction, start float64) float64 {
	switch op.Kind {
	case program.OpLoad:
		return a.machine.Time.Load
	case program.OpStore:
		return a.machine.Time.Store
	case program.OpRz:
		return a.machine.Time.Rz
	case program.OpRy:
		return a.machine.Time.Ry
	case program.OpCz:
		return a.machine.Time.Cz
	case program.OpMove:
		atom := a.atomByID(op.ID)
		if atom == nil || op.Position == nil {
			a.miss("atom", op.ID)
			return 0
		}
		from := atom.Timelines.Position.Get(start)
		return moveDuration(from.Distance(*op.Position), a.machine.Movement)
	}
	return 0
}

// moveDuration derives the time a physical move over the passed distance
// takes under the configured movement model.
func moveDuration(distance float64, m config.Movement) float64 {
	if m.Profile == config.ProfileJerk {
		return interp.JerkPeakVelocity(m.Speed).Duration(0, distance)
	}
	return trapezoidDuration(distance, m.Acceleration.Up, m.Acceleration.Down, m.Speed)
}

// trapezoidDuration models acceleration to at most the maximum speed
// followed by deceleration. If the accelerate/decelerate phases meet before
// the speed cap is reached, the velocity profile is triangular.
func trapezoidDuration(distance, aUp, aDown, speedMax float64) float64 {
	tUp := speedMax / aUp
	tDown := speedMax / aDown

	// Intersection time of the start and stop quadratics:
	// aUp/2·t² = distance - aDown/2·t²
	tIntersect := math.Sqrt(2 * distance / (aUp + aDown))
	if tIntersect <= tUp && tIntersect <= tDown {
		return 2 * tIntersect
	}

	distanceAtMaxSpeed := distance - aUp/2*tUp*tUp - aDown/2*tDown*tDown
	return tUp + distanceAtMaxSpeed/speedMax + tDown
}
