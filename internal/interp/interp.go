// Package interp provides the interpolation strategies used by attribute
// timelines: stateless functions mapping a normalized progress fraction and
// two endpoint values to an output value.
package interp

import "github.com/san-kum/atomviz/internal/geom"

// Endpoint describes where an interpolation strategy ends up at fraction 1.
type Endpoint int

const (
	// To means the interpolation finishes at the to-value (the common case).
	To Endpoint = iota
	// From means the interpolation loops back to the from-value by the end.
	From
)

// Pick returns from or to depending on the endpoint.
func (e Endpoint) Pick(from, to float64) float64 {
	if e == From {
		return from
	}
	return to
}

// Func is an interpolation strategy over values of type T.
type Func[T any] struct {
	Endpoint Endpoint
	Eval     func(fraction float64, from, to T) T
}

// LerpFunc linearly mixes two values of type T by a weight in [0,1].
type LerpFunc[T any] func(t float64, from, to T) T

func LerpFloat(t float64, from, to float64) float64 {
	return from*(1-t) + to*t
}

func LerpPosition(t float64, from, to geom.Position) geom.Position {
	return from.Scale(1 - t).Add(to.Scale(t))
}

func LerpColor(t float64, from, to geom.Color) geom.Color {
	var c geom.Color
	for i := range c {
		c[i] = uint8(float64(from[i])*(1-t) + float64(to[i])*t)
	}
	return c
}

// Constant ignores the fraction and always yields the to-value,
// producing a step change at the keyframe's start.
func Constant[T any]() Func[T] {
	return Func[T]{Eval: func(_ float64, _, to T) T { return to }}
}

// Linear interpolates linearly between from and to using the passed lerp.
func Linear[T any](lerp LerpFunc[T]) Func[T] {
	return Func[T]{Eval: func(f float64, from, to T) T { return lerp(f, from, to) }}
}

// Triangle ramps from→to over the first half and back to→from over the
// second, yielding a symmetric pulse that always returns to the start value.
func Triangle[T any](lerp LerpFunc[T]) Func[T] {
	return Func[T]{
		Endpoint: From,
		Eval: func(f float64, from, to T) T {
			f *= 2
			if f >= 1 {
				f = 2 - f
			}
			return lerp(f, from, to)
		},
	}
}

// Cubic applies the easeInOutCubic curve to the fraction before linear
// interpolation, so transitions accelerate in and decelerate out.
func Cubic[T any](lerp LerpFunc[T]) Func[T] {
	return Func[T]{Eval: func(f float64, from, to T) T {
		return lerp(easeInOutCubic(f), from, to)
	}}
}

// easeInOutCubic, from easings.net.
func easeInOutCubic(f float64) float64 {
	if f < 0.5 {
		return 4 * f * f * f
	}
	g := -2*f + 2
	return 1 - g*g*g/2
}
