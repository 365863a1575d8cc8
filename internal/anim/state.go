package anim

import (
	"fmt"

	"github.com/san-kum/atomviz/internal/scene"
)

// State samples every atom's timelines at the passed time. The overlay
// color is composited over the trapped or shuttling base color. Calls are
// deterministic: the same time on the same Animator yields identical output.
func (a *Animator) State(time float64) *scene.State {
	st := &scene.State{
		Atoms: make([]scene.AtomState, 0, len(a.atoms)),
		Time:  fmt.Sprintf("%s%.1f %s", a.visual.Time.Prefix, time, a.machine.Time.Unit),
	}
	for _, atom := range a.atoms {
		position, overlay, size, shuttling := atom.Timelines.Get(time)
		base := a.visual.Atom.Trapped
		if shuttling {
			base = a.visual.Atom.Shuttling
		}
		st.Atoms = append(st.Atoms, scene.AtomState{
			Position: position,
			Color:    overlay.Over(base),
			Size:     size,
			Shuttle:  shuttling,
			Label:    atom.Name,
		})
	}
	return st
}
