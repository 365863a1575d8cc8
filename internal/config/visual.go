package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/san-kum/atomviz/internal/geom"
)

// VisualConfig is the presentation style: colors, radii, fonts, legend and
// grid styling. It only influences keyframe values, never timing.
type VisualConfig struct {
	Atom       AtomVisual
	Zone       ZoneVisual
	Operation  OperationVisual
	Machine    MachineVisual
	Coordinate CoordinateVisual
	Sidebar    SidebarVisual
	Time       TimeVisual
	Viewport   ViewportVisual
}

type FontStyle struct {
	Size   float64
	Color  geom.Color
	Family string
}

type LineStyle struct {
	Thickness  float64
	DashLength float64
	DashDuty   float64
}

// NameRule maps atom ids to display labels via regex replacement.
type NameRule struct {
	Pattern *regexp.Regexp
	Replace string
}

type AtomVisual struct {
	Radius    float64
	Trapped   geom.Color
	Shuttling geom.Color
	LabelFont FontStyle
	NameRules []NameRule
}

// DisplayName derives an atom's label from its id using the first matching
// name rule; ids without a matching rule get an empty label.
func (a AtomVisual) DisplayName(id string) string {
	for _, r := range a.NameRules {
		if r.Pattern.MatchString(id) {
			return r.Pattern.ReplaceAllString(id, r.Replace)
		}
	}
	return ""
}

type LegendToggle struct {
	Display bool
	Title   string
}

// ZoneStyle styles all zones whose id matches Pattern.
type ZoneStyle struct {
	Pattern *regexp.Regexp
	Name    string
	Color   geom.Color
	Line    LineStyle
}

type ZoneVisual struct {
	Legend LegendToggle
	Styles []ZoneStyle
}

// StyleFor returns the first style matching the zone id, or nil.
func (z ZoneVisual) StyleFor(id string) *ZoneStyle {
	for i := range z.Styles {
		if z.Styles[i].Pattern.MatchString(id) {
			return &z.Styles[i]
		}
	}
	return nil
}

// OperationStyle is the flash style of one gate operation. A nil Radius
// falls back to the atom radius.
type OperationStyle struct {
	Name   string
	Color  geom.Color
	Radius *float64
}

func (o OperationStyle) EffectiveRadius(atomRadius float64) float64 {
	if o.Radius != nil {
		return *o.Radius
	}
	return atomRadius
}

type OperationVisual struct {
	Legend LegendToggle
	Rz     OperationStyle
	Ry     OperationStyle
	Cz     OperationStyle
}

type TrapVisual struct {
	Name   string
	Radius float64
	Color  geom.Color
}

type ShuttleVisual struct {
	Name  string
	Color geom.Color
	Line  LineStyle
}

type MachineVisual struct {
	Legend  LegendToggle
	Trap    TrapVisual
	Shuttle ShuttleVisual
}

// Axis label placement.
const (
	PositionBottom = "bottom"
	PositionTop    = "top"
	PositionLeft   = "left"
	PositionRight  = "right"
)

type AxisNumbers struct {
	Distance float64
	Position string
}

type CoordinateVisual struct {
	TickX      float64
	TickY      float64
	TickLine   LineStyle
	TickColor  geom.Color
	NumberX    AxisNumbers
	NumberY    AxisNumbers
	NumberFont FontStyle
	AxisX      string
	AxisY      string
}

type SidebarVisual struct {
	Font FontStyle
}

type TimeVisual struct {
	Font   FontStyle
	Prefix string
}

type ViewportVisual struct {
	Color geom.Color
}

// ParseColor parses "#rrggbb" or "#rrggbbaa" hex notation. An empty string
// is fully transparent black.
func ParseColor(s string) (geom.Color, error) {
	if s == "" {
		return geom.Color{}, nil
	}
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 && len(h) != 8 {
		return geom.Color{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 64)
	if err != nil {
		return geom.Color{}, fmt.Errorf("invalid color %q", s)
	}
	if len(h) == 6 {
		v = v<<8 | 0xff
	}
	return geom.Color{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}
