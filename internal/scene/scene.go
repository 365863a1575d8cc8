// Package scene defines the output contract of the animator: the static,
// time-independent Config computed once at construction, and the State
// snapshot produced for every sampled time. Renderers consume these and
// never call back into the animator internals.
package scene

import "github.com/san-kum/atomviz/internal/geom"

// HPosition and VPosition place axis legends relative to the grid.
type HPosition int

const (
	Left HPosition = iota
	Right
)

type VPosition int

const (
	Bottom VPosition = iota
	Top
)

type FontConfig struct {
	Size   float64
	Color  geom.Color
	Family string
}

type LineConfig struct {
	Width         float64
	SegmentLength float64
	Duty          float64
	Color         geom.Color
}

type GridLegendConfig struct {
	Step     geom.Position
	Font     FontConfig
	Labels   [2]string
	Position struct {
		V VPosition
		H HPosition
	}
}

type GridConfig struct {
	Step   geom.Position
	Line   LineConfig
	Legend GridLegendConfig
}

type TrapConfig struct {
	Positions []geom.Position
	Radius    float64
	LineWidth float64
	Color     geom.Color
}

type ZoneConfig struct {
	Start geom.Position
	Size  geom.Position
	Line  LineConfig
}

type AtomsConfig struct {
	Label   FontConfig
	Shuttle LineConfig
}

type LegendEntry struct {
	Text  string
	Color *geom.Color
}

type LegendSection struct {
	Name    string
	Entries []LegendEntry
}

type LegendConfig struct {
	Font              FontConfig
	HeadingSkip       float64
	EntrySkip         float64
	ColorCircleRadius float64
	ColorPadding      float64
	Sections          []LegendSection
}

type TimeConfig struct {
	Font FontConfig
}

// Config is the static scene description derived from machine and visual
// configuration; it carries no timing information.
type Config struct {
	Grid        GridConfig
	Traps       TrapConfig
	Zones       []ZoneConfig
	Atoms       AtomsConfig
	ContentSize geom.Position
	Legend      LegendConfig
	Time        TimeConfig
}

// AtomState is one atom's visual state at a sampled time.
type AtomState struct {
	Position geom.Position
	Color    geom.Color
	Size     float64
	Shuttle  bool
	Label    string
}

// State is the full scene snapshot at one sampled time.
type State struct {
	Atoms []AtomState
	Time  string
}
