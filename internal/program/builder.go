package program

import "sort"

// TimeSpec describes how an instruction's time anchor is interpreted:
// either as an absolute global time, or relative to the enclosing group's
// start (FromStart) or the previous instruction's completion.
type TimeSpec struct {
	Absolute  bool
	FromStart bool
	Negative  bool
}

// Builder assembles Instructions from a stream of placements and timed
// instructions, resolving relative time anchors into grouped timelines.
type Builder struct {
	ins  Instructions
	prev int
}

func NewBuilder() *Builder {
	return &Builder{prev: -1}
}

// Target records a machine target directive.
func (b *Builder) Target(id string) *Builder {
	b.ins.Targets = append(b.ins.Targets, id)
	return b
}

// Atom places an atom during setup.
func (b *Builder) Atom(id string, pos [2]float64) *Builder {
	b.ins.Setup = append(b.ins.Setup, AtomPlacement{
		ID:       id,
		Position: positionOf(pos),
	})
	return b
}

// Add appends a timed instruction. An absolute time opens a new group
// anchored at that time; a relative time extends the previously opened
// group (or opens one at the offset if none exists yet).
func (b *Builder) Add(spec TimeSpec, time float64, op TimedInstruction) *Builder {
	if spec.Absolute {
		b.ins.Timeline = append(b.ins.Timeline, TimelineEntry{
			At:    time,
			Group: []GroupEntry{{FromStart: true, Offset: 0, Op: op}},
		})
		b.prev = len(b.ins.Timeline) - 1
		return b
	}
	if spec.Negative {
		time = -time
	}
	entry := GroupEntry{FromStart: spec.FromStart, Offset: time, Op: op}
	if b.prev >= 0 {
		b.ins.Timeline[b.prev].Group = append(b.ins.Timeline[b.prev].Group, entry)
		return b
	}
	b.ins.Timeline = append(b.ins.Timeline, TimelineEntry{At: time, Group: []GroupEntry{entry}})
	b.prev = len(b.ins.Timeline) - 1
	return b
}

// Build returns the assembled program with groups ordered by anchor time.
func (b *Builder) Build() Instructions {
	sort.SliceStable(b.ins.Timeline, func(i, j int) bool {
		return b.ins.Timeline[i].At < b.ins.Timeline[j].At
	})
	return b.ins
}
