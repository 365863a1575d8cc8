// Package timeline implements a sparse keyframe store with interpolated
// sampling. A keyframe's value starts taking effect at its time, interpolates
// over its duration, and is then held until the next keyframe. If a keyframe
// starts while an earlier one is still interpolating, the new keyframe takes
// precedence.
package timeline

import (
	"sort"

	"github.com/san-kum/atomviz/internal/interp"
)

// Keyframe is a single transition: Value is the target reached at
// Time+Duration. Keyframes are ordered by Time only.
type Keyframe[T any] struct {
	Time     float64
	Duration float64
	Value    T
}

// Timeline holds keyframes for one attribute, kept time-ascending, plus a
// default value that is valid from -inf until the first keyframe.
type Timeline[T any] struct {
	keyframes []Keyframe[T]
	def       T
	fn        interp.Func[T]
}

// New creates a Timeline with the passed default value and interpolation
// strategy.
func New[T any](def T, fn interp.Func[T]) *Timeline[T] {
	return &Timeline[T]{def: def, fn: fn}
}

// Add inserts a keyframe, maintaining time-ascending order. Keyframes with
// equal times keep insertion order (FIFO).
func (tl *Timeline[T]) Add(time, duration float64, value T) *Timeline[T] {
	idx := sort.Search(len(tl.keyframes), func(i int) bool {
		return tl.keyframes[i].Time > time
	})
	tl.keyframes = append(tl.keyframes, Keyframe[T]{})
	copy(tl.keyframes[idx+1:], tl.keyframes[idx:])
	tl.keyframes[idx] = Keyframe[T]{Time: time, Duration: duration, Value: value}
	return tl
}

// Get samples the timeline at the passed time.
func (tl *Timeline[T]) Get(time float64) T {
	idx := sort.Search(len(tl.keyframes), func(i int) bool {
		return tl.keyframes[i].Time > time
	}) - 1
	if idx < 0 {
		return tl.def
	}
	kf := tl.keyframes[idx]
	from := tl.def
	if idx > 0 && tl.fn.Endpoint == interp.To {
		from = tl.keyframes[idx-1].Value
	}
	fraction := 1.0
	if kf.Duration > 0 {
		fraction = (time - kf.Time) / kf.Duration
		if fraction > 1 {
			fraction = 1
		}
	}
	return tl.fn.Eval(fraction, from, kf.Value)
}

// Default returns the value valid before the first keyframe.
func (tl *Timeline[T]) Default() T {
	return tl.def
}

// Len returns the number of keyframes.
func (tl *Timeline[T]) Len() int {
	return len(tl.keyframes)
}

// Keyframes returns the keyframes in time-ascending order. The returned
// slice is the timeline's backing store and must not be modified.
func (tl *Timeline[T]) Keyframes() []Keyframe[T] {
	return tl.keyframes
}
