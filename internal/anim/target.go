package anim

import (
	"slices"

	"github.com/san-kum/atomviz/internal/geom"
	"github.com/san-kum/atomviz/internal/program"
)

// targeted returns the atoms an instruction mutates at its start time.
// Load/store/move address a single atom by id. Rz/ry address every atom
// inside the named zone plus the atom with a matching id, falling back to
// id-only matching when no such zone exists. Cz requires a zone and targets
// every pair of atoms inside it that is within interaction distance; an
// unknown zone targets nothing.
func (a *Animator) targeted(op program.TimedInstruction, start float64) []*Atom {
	type matchKind int
	const (
		matchID matchKind = iota
		matchIDOrZone
		matchIndex
		matchNone
	)

	kind := matchID
	var zone geom.Rect
	var indices []int

	switch op.Kind {
	case program.OpLoad, program.OpStore, program.OpMove:
		kind = matchID
	case program.OpRz, program.OpRy:
		z, ok := a.machine.Zones[op.ID]
		if ok {
			kind = matchIDOrZone
			zone = z
		}
	case program.OpCz:
		z, ok := a.machine.Zones[op.ID]
		if !ok {
			a.miss("zone", op.ID)
			kind = matchNone
			break
		}
		kind = matchIndex
		indices = a.interactingPairs(z, start)
	}

	var out []*Atom
	for idx, atom := range a.atoms {
		hit := false
		switch kind {
		case matchID:
			hit = atom.ID == op.ID
		case matchIDOrZone:
			hit = atom.ID == op.ID || a.inZone(atom, zone, start)
		case matchIndex:
			hit = slices.Contains(indices, idx)
		}
		if hit {
			out = append(out, atom)
		}
	}
	return out
}

// interactingPairs collects the indices of all atoms inside the zone that
// are within interaction distance of another atom in the zone. Both members
// of each qualifying pair are appended; with the machine's two-atom gate
// clusters no index appears twice.
func (a *Animator) interactingPairs(zone geom.Rect, start float64) []int {
	type placed struct {
		idx int
		pos geom.Position
	}
	var inZone []placed
	for idx, atom := range a.atoms {
		if a.inZone(atom, zone, start) {
			inZone = append(inZone, placed{idx, atom.Timelines.Position.Get(start)})
		}
	}

	maxDist := a.machine.Distance.Interaction
	targets := make([]int, 0, len(inZone))
	for i := 0; i < len(inZone); i++ {
		for j := i + 1; j < len(inZone); j++ {
			if inZone[i].pos.Distance(inZone[j].pos) <= maxDist {
				targets = append(targets, inZone[i].idx, inZone[j].idx)
			}
		}
	}
	return targets
}

func (a *Animator) inZone(atom *Atom, zone geom.Rect, time float64) bool {
	return zone.Contains(atom.Timelines.Position.Get(time))
}

func (a *Animator) atomByID(id string) *Atom {
	for _, atom := range a.atoms {
		if atom.ID == id {
			return atom
		}
	}
	return nil
}
