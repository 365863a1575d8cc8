package anim

import (
	"sort"

	"github.com/san-kum/atomviz/internal/config"
	"github.com/san-kum/atomviz/internal/geom"
	"github.com/san-kum/atomviz/internal/program"
	"github.com/san-kum/atomviz/internal/scene"
)

// MissFunc is an optional diagnostic hook invoked when an instruction
// references an unknown atom or zone. The animation itself tolerates such
// references silently (they produce zero-effect results); the hook lets
// callers surface them.
type MissFunc func(kind, id string)

// Option configures an Animator during construction.
type Option func(*Animator)

// WithDiagnostics attaches a missing-reference hook.
func WithDiagnostics(fn MissFunc) Option {
	return func(a *Animator) { a.onMiss = fn }
}

// Animator owns the scheduled atom timelines and the derived static scene
// configuration. It is immutable after construction; State and Config are
// read-only queries and safe for concurrent use.
type Animator struct {
	atoms    []*Atom
	config   *scene.Config
	duration float64

	machine *config.MachineConfig
	visual  *config.VisualConfig
	onMiss  MissFunc
}

// pendingGroup is a relative instruction group waiting in the scheduler
// queue, keyed by the time its next instruction becomes eligible.
type pendingGroup struct {
	at      float64
	entries []program.GroupEntry
}

// New schedules the program and derives the static scene configuration.
func New(machine *config.MachineConfig, visual *config.VisualConfig, input program.Instructions, opts ...Option) *Animator {
	a := &Animator{machine: machine, visual: visual}
	for _, opt := range opts {
		opt(a)
	}

	for _, placement := range input.Setup {
		a.atoms = append(a.atoms, &Atom{
			ID:   placement.ID,
			Name: visual.Atom.DisplayName(placement.ID),
			Timelines: NewAtomTimelines(
				placement.Position,
				geom.Color{},
				visual.Atom.Radius,
				false,
			),
		})
	}

	// Pending groups ordered by eligibility time; reinsertion happens after
	// equal keys, so ties keep their arrival order.
	queue := make([]pendingGroup, 0, len(input.Timeline))
	for _, entry := range input.Timeline {
		queue = enqueue(queue, pendingGroup{at: entry.At, entries: entry.Group})
	}

	var contentSize geom.Position
	var total float64

	for len(queue) > 0 {
		group := queue[0]
		queue = queue[1:]
		if len(group.entries) == 0 {
			continue
		}
		entry := group.entries[0]
		group.entries = group.entries[1:]

		start := group.at + entry.Offset
		duration := a.instructionDuration(entry.Op, start)

		if p := destination(entry.Op); p != nil {
			contentSize.X = max(contentSize.X, p.X)
			contentSize.Y = max(contentSize.Y, p.Y)
		}

		for _, atom := range a.targeted(entry.Op, start) {
			a.insertAnimation(&atom.Timelines, entry.Op, start, duration)
		}

		total = max(total, start+duration)

		if len(group.entries) > 0 {
			group.at = start + duration
			if group.entries[0].FromStart {
				group.at = start
			}
			queue = enqueue(queue, group)
		}
	}

	a.duration = total
	a.config = buildSceneConfig(machine, visual, contentSize)
	return a
}

// enqueue inserts the group keeping the queue sorted by eligibility time,
// after any groups with an equal key.
func enqueue(queue []pendingGroup, g pendingGroup) []pendingGroup {
	idx := sort.Search(len(queue), func(i int) bool { return queue[i].at > g.at })
	queue = append(queue, pendingGroup{})
	copy(queue[idx+1:], queue[idx:])
	queue[idx] = g
	return queue
}

// insertAnimation records an instruction's attribute changes as keyframes.
func (a *Animator) insertAnimation(tl *AtomTimelines, op program.TimedInstruction, start, duration float64) {
	switch op.Kind {
	case program.OpLoad:
		tl.Shuttling.Add(start, 0, true)
		if op.Position != nil {
			tl.Position.Add(start, duration, *op.Position)
		}
	case program.OpStore:
		tl.Shuttling.Add(start+duration, 0, false)
		if op.Position != nil {
			tl.Position.Add(start, duration, *op.Position)
		}
	case program.OpMove:
		if op.Position != nil {
			tl.Position.Add(start, duration, *op.Position)
		}
	case program.OpRz:
		a.addOperation(tl, start, duration, a.visual.Operation.Rz)
	case program.OpRy:
		a.addOperation(tl, start, duration, a.visual.Operation.Ry)
	case program.OpCz:
		a.addOperation(tl, start, duration, a.visual.Operation.Cz)
	}
}

func (a *Animator) addOperation(tl *AtomTimelines, start, duration float64, style config.OperationStyle) {
	tl.OverlayColor.Add(start, duration, style.Color)
	tl.Size.Add(start, duration, style.EffectiveRadius(a.visual.Atom.Radius))
}

// destination returns the position an instruction moves toward, if any.
func destination(op program.TimedInstruction) *geom.Position {
	switch op.Kind {
	case program.OpLoad, program.OpStore, program.OpMove:
		return op.Position
	}
	return nil
}

func (a *Animator) miss(kind, id string) {
	if a.onMiss != nil {
		a.onMiss(kind, id)
	}
}

// Config returns the static scene configuration.
func (a *Animator) Config() *scene.Config {
	return a.config
}

// Duration returns the total animation length.
func (a *Animator) Duration() float64 {
	return a.duration
}

// Background returns the viewport background color.
func (a *Animator) Background() geom.Color {
	return a.visual.Viewport.Color
}

// Atoms returns the number of animated atoms.
func (a *Animator) Atoms() int {
	return len(a.atoms)
}
