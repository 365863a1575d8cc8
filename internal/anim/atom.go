// Package anim contains the animation core: it schedules a program's
// instruction stream into per-atom keyframe timelines and answers
// time-indexed state queries.
package anim

import (
	"github.com/san-kum/atomviz/internal/geom"
	"github.com/san-kum/atomviz/internal/interp"
	"github.com/san-kum/atomviz/internal/timeline"
)

// AtomTimelines groups the four attribute timelines that together define one
// atom's visual state.
type AtomTimelines struct {
	Position     *timeline.Timeline[geom.Position]
	OverlayColor *timeline.Timeline[geom.Color]
	Size         *timeline.Timeline[float64]
	Shuttling    *timeline.Timeline[bool]
}

// NewAtomTimelines creates the timelines from the passed default values.
func NewAtomTimelines(position geom.Position, overlay geom.Color, size float64, shuttling bool) AtomTimelines {
	return AtomTimelines{
		Position:     timeline.New(position, interp.Cubic(interp.LerpPosition)),
		OverlayColor: timeline.New(overlay, interp.Triangle(interp.LerpColor)),
		Size:         timeline.New(size, interp.Triangle(interp.LerpFloat)),
		Shuttling:    timeline.New(shuttling, interp.Constant[bool]()),
	}
}

// Get samples all four timelines at the passed time.
func (t *AtomTimelines) Get(time float64) (geom.Position, geom.Color, float64, bool) {
	return t.Position.Get(time), t.OverlayColor.Get(time), t.Size.Get(time), t.Shuttling.Get(time)
}

// Atom is one animated atom: created once per setup entry, mutated only
// during scheduling, immutable thereafter.
type Atom struct {
	ID        string
	Name      string
	Timelines AtomTimelines
}
