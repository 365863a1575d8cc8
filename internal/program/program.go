// Package program defines the instruction model consumed by the animator:
// atom placements and a time-ordered stream of quantum operations, grouped
// into relative timelines anchored at absolute times.
package program

import "github.com/san-kum/atomviz/internal/geom"

// OpKind enumerates the timed operations.
type OpKind int

const (
	OpLoad OpKind = iota
	OpStore
	OpMove
	OpRz
	OpRy
	OpCz
)

func (k OpKind) String() string {
	switch k {
	case OpLoad:
		return "load"
	case OpStore:
		return "store"
	case OpMove:
		return "move"
	case OpRz:
		return "rz"
	case OpRy:
		return "ry"
	case OpCz:
		return "cz"
	}
	return "unknown"
}

// TimedInstruction is one timed operation. ID names an atom for
// load/store/move and an atom or zone for the gate operations. Position is
// required for move, optional for load/store, and unused otherwise. Value
// carries the rotation angle for rz/ry; it does not influence animation.
type TimedInstruction struct {
	Kind     OpKind
	ID       string
	Position *geom.Position
	Value    float64
}

// AtomPlacement sets up one atom at its initial position.
type AtomPlacement struct {
	ID       string
	Position geom.Position
}

// GroupEntry is one instruction inside a relative group. Offset is relative
// to the group's start when FromStart is set, otherwise to the previous
// entry's completion.
type GroupEntry struct {
	FromStart bool
	Offset    float64
	Op        TimedInstruction
}

// TimelineEntry anchors a relative group at an absolute time.
type TimelineEntry struct {
	At    float64
	Group []GroupEntry
}

// Instructions is a complete program: directives, setup, and the absolute
// timeline of instruction groups (ordered by anchor time).
type Instructions struct {
	Targets  []string
	Setup    []AtomPlacement
	Timeline []TimelineEntry
}
