package program

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/atomviz/internal/geom"
)

type programYAML struct {
	Targets []string   `yaml:"targets"`
	Atoms   []atomYAML `yaml:"atoms"`
	Program []stepYAML `yaml:"program"`
}

type atomYAML struct {
	ID string     `yaml:"id"`
	At [2]float64 `yaml:"at"`
}

// stepYAML is one program step. Exactly one of time/after/sync anchors it:
// time is absolute, after is relative to the previous step's completion,
// sync is relative to the enclosing group's start.
type stepYAML struct {
	Time  *float64    `yaml:"time"`
	After *float64    `yaml:"after"`
	Sync  *float64    `yaml:"sync"`
	Op    string      `yaml:"op"`
	ID    string      `yaml:"id"`
	To    *[2]float64 `yaml:"to"`
	Value float64     `yaml:"value"`
}

// Load reads a program from a YAML file.
func Load(path string) (Instructions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Instructions{}, err
	}
	return Parse(data)
}

// Parse decodes a YAML program document.
func Parse(data []byte) (Instructions, error) {
	var doc programYAML
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Instructions{}, fmt.Errorf("parse program: %w", err)
	}

	b := NewBuilder()
	for _, t := range doc.Targets {
		b.Target(t)
	}
	for _, a := range doc.Atoms {
		b.Atom(a.ID, a.At)
	}
	for i, s := range doc.Program {
		op, err := s.instruction()
		if err != nil {
			return Instructions{}, fmt.Errorf("program step %d: %w", i, err)
		}
		spec, t, err := s.anchor()
		if err != nil {
			return Instructions{}, fmt.Errorf("program step %d: %w", i, err)
		}
		b.Add(spec, t, op)
	}
	return b.Build(), nil
}

func (s stepYAML) anchor() (TimeSpec, float64, error) {
	switch {
	case s.Time != nil:
		return TimeSpec{Absolute: true}, *s.Time, nil
	case s.Sync != nil:
		t := *s.Sync
		spec := TimeSpec{FromStart: true}
		if t < 0 {
			spec.Negative = true
			t = -t
		}
		return spec, t, nil
	case s.After != nil:
		t := *s.After
		var spec TimeSpec
		if t < 0 {
			spec.Negative = true
			t = -t
		}
		return spec, t, nil
	default:
		// Unanchored steps chain directly after the previous one.
		return TimeSpec{}, 0, nil
	}
}

func (s stepYAML) instruction() (TimedInstruction, error) {
	var kind OpKind
	needsTo := false
	switch s.Op {
	case "load":
		kind = OpLoad
	case "store":
		kind = OpStore
	case "move":
		kind = OpMove
		needsTo = true
	case "rz":
		kind = OpRz
	case "ry":
		kind = OpRy
	case "cz":
		kind = OpCz
	default:
		return TimedInstruction{}, fmt.Errorf("unknown operation %q", s.Op)
	}
	if s.ID == "" {
		return TimedInstruction{}, fmt.Errorf("operation %q is missing an id", s.Op)
	}
	if needsTo && s.To == nil {
		return TimedInstruction{}, fmt.Errorf("operation %q requires a destination", s.Op)
	}
	op := TimedInstruction{Kind: kind, ID: s.ID, Value: s.Value}
	if s.To != nil {
		p := positionOf(*s.To)
		op.Position = &p
	}
	return op, nil
}

func positionOf(p [2]float64) geom.Position {
	return geom.Position{X: p[0], Y: p[1]}
}
