package config

import (
	"sort"

	"github.com/san-kum/atomviz/internal/geom"
)

// Presets are the machines bundled with the binary, selectable by name
// wherever a machine file path is accepted.
var Presets = map[string]*MachineConfig{
	"compact": {
		Name: "compact demo machine",
		Zones: map[string]geom.Rect{
			"zone0": {From: geom.Position{X: 0, Y: 0}, To: geom.Position{X: 20, Y: 20}},
		},
		Traps: []geom.Position{
			{X: 2, Y: 2}, {X: 6, Y: 2}, {X: 10, Y: 2},
			{X: 2, Y: 6}, {X: 6, Y: 6}, {X: 10, Y: 6},
		},
		Time: OperationTimes{Load: 20, Store: 20, Rz: 2, Ry: 2, Cz: 1, Unit: "us"},
		Movement: Movement{
			Acceleration: Acceleration{Up: 2, Down: 2},
			Speed:        4,
			Profile:      ProfileTrapezoid,
		},
		Distance: Distances{Interaction: 2},
	},
	"zoned": {
		Name: "storage and interaction zones",
		Zones: map[string]geom.Rect{
			"storage":     {From: geom.Position{X: 0, Y: 0}, To: geom.Position{X: 40, Y: 10}},
			"interaction": {From: geom.Position{X: 0, Y: 14}, To: geom.Position{X: 40, Y: 24}},
		},
		Traps: []geom.Position{
			{X: 4, Y: 4}, {X: 12, Y: 4}, {X: 20, Y: 4}, {X: 28, Y: 4}, {X: 36, Y: 4},
		},
		Time: OperationTimes{Load: 25, Store: 25, Rz: 3, Ry: 3, Cz: 1.5, Unit: "us"},
		Movement: Movement{
			Acceleration: Acceleration{Up: 1.5, Down: 1.5},
			Speed:        3,
			Profile:      ProfileTrapezoid,
		},
		Distance: Distances{Interaction: 3},
	},
	"smooth": {
		Name: "jerk-limited shuttling",
		Zones: map[string]geom.Rect{
			"zone0": {From: geom.Position{X: 0, Y: 0}, To: geom.Position{X: 30, Y: 30}},
		},
		Time: OperationTimes{Load: 15, Store: 15, Rz: 2, Ry: 2, Cz: 1, Unit: "us"},
		Movement: Movement{
			Acceleration: Acceleration{Up: 1, Down: 1},
			Speed:        2,
			Profile:      ProfileJerk,
		},
		Distance: Distances{Interaction: 2},
	},
}

// GetPreset returns the named builtin machine, or nil.
func GetPreset(name string) *MachineConfig {
	return Presets[name]
}

// ListPresets returns the builtin machine names, sorted.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
