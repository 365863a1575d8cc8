package interp

import "math"

// ScalarMotion is a scalar interpolation that also knows how long the
// modeled move takes, so schedulers can derive instruction durations from it.
type ScalarMotion interface {
	// Duration returns the total time the move from from to to requires.
	Duration(from, to float64) float64
	// Interpolate evaluates the motion at the normalized fraction.
	Interpolate(fraction, from, to float64) float64
}

type jerkMode int

const (
	jerkFixed jerkMode = iota
	jerkPeakVelocity
	jerkAverageVelocity
)

// ConstantJerk models 1-D motion under a constant jerk magnitude: the
// movement starts and ends at rest, is symmetric about its midpoint, and
// follows s(t) = -j/6·t³ + v0·t + s0 for t in [-T/2, T/2].
//
// The free parameter is fixed by one of three constraints: the jerk itself,
// the peak velocity reached at the midpoint, or the average velocity over
// the whole move.
type ConstantJerk struct {
	mode  jerkMode
	value float64
}

// JerkFixed models motion with the given constant jerk magnitude.
func JerkFixed(jerk float64) ConstantJerk {
	return ConstantJerk{mode: jerkFixed, value: jerk}
}

// JerkPeakVelocity models motion that reaches the given velocity at its midpoint.
func JerkPeakVelocity(v float64) ConstantJerk {
	return ConstantJerk{mode: jerkPeakVelocity, value: v}
}

// JerkAverageVelocity models motion with the given average velocity.
func JerkAverageVelocity(v float64) ConstantJerk {
	return ConstantJerk{mode: jerkAverageVelocity, value: v}
}

// params derives (jerk, total time, midpoint, midpoint velocity) for a move
// from start to finish. Requires start < finish.
func (c ConstantJerk) params(start, finish float64) (jerk, tTotal, s0, v0 float64) {
	d := finish - start
	switch c.mode {
	case jerkFixed:
		// d = j·T³/12
		jerk = c.value
		tTotal = math.Cbrt(12 * d / jerk)
	case jerkPeakVelocity:
		// v_peak = j·T²/8 and d = j·T³/12 give T = 3d/(2·v_peak)
		tTotal = 3 * d / (2 * c.value)
		jerk = 8 * c.value / (tTotal * tTotal)
	case jerkAverageVelocity:
		tTotal = d / c.value
		jerk = 12 * d / (tTotal * tTotal * tTotal)
	}
	s0 = (start + finish) / 2
	v0 = jerk * tTotal * tTotal / 8
	return
}

// Duration returns the total time the move requires.
func (c ConstantJerk) Duration(from, to float64) float64 {
	if from == to {
		return 0
	}
	if from > to {
		from, to = -from, -to
	}
	_, tTotal, _, _ := c.params(from, to)
	return tTotal
}

// Interpolate evaluates the motion position at the normalized fraction.
func (c ConstantJerk) Interpolate(fraction, from, to float64) float64 {
	if from == to {
		return from
	}
	if from > to {
		return -c.Interpolate(fraction, -from, -to)
	}
	jerk, tTotal, s0, v0 := c.params(from, to)
	t := (fraction - 0.5) * tTotal
	return -jerk/6*t*t*t + v0*t + s0
}

// Func wraps the motion as an interpolation strategy.
func (c ConstantJerk) Func() Func[float64] {
	return Func[float64]{Eval: c.Interpolate}
}
