// Package config holds the machine and visual configuration consumed by the
// animator, with YAML loading and defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/atomviz/internal/geom"
)

// Move duration models.
const (
	ProfileTrapezoid = "trapezoid"
	ProfileJerk      = "jerk"
)

// MachineConfig describes the physical machine: zone geometry, trap
// positions, fixed operation times, and movement kinematics.
type MachineConfig struct {
	Name     string
	Zones    map[string]geom.Rect
	Traps    []geom.Position
	Time     OperationTimes
	Movement Movement
	Distance Distances
}

// OperationTimes are the fixed durations of the non-move operations,
// in machine time units.
type OperationTimes struct {
	Load  float64 `yaml:"load"`
	Store float64 `yaml:"store"`
	Rz    float64 `yaml:"rz"`
	Ry    float64 `yaml:"ry"`
	Cz    float64 `yaml:"cz"`
	Unit  string  `yaml:"unit"`
}

// Movement holds the kinematic parameters of atom shuttling.
type Movement struct {
	Acceleration Acceleration `yaml:"acceleration"`
	Speed        float64      `yaml:"speed"`
	// Profile selects the move duration model: trapezoid (default) or jerk.
	Profile string `yaml:"profile"`
}

type Acceleration struct {
	Up   float64 `yaml:"up"`
	Down float64 `yaml:"down"`
}

type Distances struct {
	Interaction float64 `yaml:"interaction"`
}

type machineYAML struct {
	Name     string              `yaml:"name"`
	Zones    map[string]rectYAML `yaml:"zones"`
	Traps    [][2]float64        `yaml:"traps"`
	Time     OperationTimes      `yaml:"time"`
	Movement Movement            `yaml:"movement"`
	Distance Distances           `yaml:"distance"`
}

type rectYAML struct {
	From [2]float64 `yaml:"from"`
	To   [2]float64 `yaml:"to"`
}

// DefaultMachine returns a machine with benign defaults; loading merges the
// file on top of these.
func DefaultMachine() *MachineConfig {
	return &MachineConfig{
		Zones: map[string]geom.Rect{},
		Time:  OperationTimes{Load: 1, Store: 1, Rz: 1, Ry: 1, Cz: 1, Unit: "us"},
		Movement: Movement{
			Acceleration: Acceleration{Up: 1, Down: 1},
			Speed:        1,
			Profile:      ProfileTrapezoid,
		},
		Distance: Distances{Interaction: 1},
	}
}

// LoadMachine reads a machine configuration from a YAML file.
func LoadMachine(path string) (*MachineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseMachine(data)
}

// ParseMachine decodes a machine configuration document.
func ParseMachine(data []byte) (*MachineConfig, error) {
	def := DefaultMachine()
	raw := machineYAML{
		Time:     def.Time,
		Movement: def.Movement,
		Distance: def.Distance,
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse machine config: %w", err)
	}
	if raw.Movement.Profile != ProfileTrapezoid && raw.Movement.Profile != ProfileJerk {
		return nil, fmt.Errorf("unknown movement profile %q", raw.Movement.Profile)
	}

	cfg := &MachineConfig{
		Name:     raw.Name,
		Zones:    make(map[string]geom.Rect, len(raw.Zones)),
		Time:     raw.Time,
		Movement: raw.Movement,
		Distance: raw.Distance,
	}
	for id, z := range raw.Zones {
		cfg.Zones[id] = geom.Rect{
			From: geom.Position{X: z.From[0], Y: z.From[1]},
			To:   geom.Position{X: z.To[0], Y: z.To[1]},
		}
	}
	for _, t := range raw.Traps {
		cfg.Traps = append(cfg.Traps, geom.Position{X: t[0], Y: t[1]})
	}
	return cfg, nil
}
