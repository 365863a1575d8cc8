package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/atomviz/internal/geom"
)

type visualYAML struct {
	Atom struct {
		Radius    float64    `yaml:"radius"`
		Trapped   string     `yaml:"trapped"`
		Shuttling string     `yaml:"shuttling"`
		Label     fontYAML   `yaml:"label"`
		Names     []nameYAML `yaml:"names"`
	} `yaml:"atom"`
	Zones struct {
		Legend legendYAML      `yaml:"legend"`
		Styles []zoneStyleYAML `yaml:"styles"`
	} `yaml:"zones"`
	Operations struct {
		Legend legendYAML `yaml:"legend"`
		Rz     opYAML     `yaml:"rz"`
		Ry     opYAML     `yaml:"ry"`
		Cz     opYAML     `yaml:"cz"`
	} `yaml:"operations"`
	Machine struct {
		Legend legendYAML `yaml:"legend"`
		Trap   struct {
			Name   string  `yaml:"name"`
			Radius float64 `yaml:"radius"`
			Color  string  `yaml:"color"`
		} `yaml:"trap"`
		Shuttle struct {
			Name  string   `yaml:"name"`
			Color string   `yaml:"color"`
			Line  lineYAML `yaml:"line"`
		} `yaml:"shuttle"`
	} `yaml:"machine"`
	Coordinate struct {
		Tick struct {
			X     float64  `yaml:"x"`
			Y     float64  `yaml:"y"`
			Line  lineYAML `yaml:"line"`
			Color string   `yaml:"color"`
		} `yaml:"tick"`
		Numbers struct {
			X    axisYAML `yaml:"x"`
			Y    axisYAML `yaml:"y"`
			Font fontYAML `yaml:"font"`
		} `yaml:"numbers"`
		Axis struct {
			X string `yaml:"x"`
			Y string `yaml:"y"`
		} `yaml:"axis"`
	} `yaml:"coordinate"`
	Sidebar struct {
		Font fontYAML `yaml:"font"`
	} `yaml:"sidebar"`
	Time struct {
		Font   fontYAML `yaml:"font"`
		Prefix string   `yaml:"prefix"`
	} `yaml:"time"`
	Viewport struct {
		Color string `yaml:"color"`
	} `yaml:"viewport"`
}

type fontYAML struct {
	Size   float64 `yaml:"size"`
	Color  string  `yaml:"color"`
	Family string  `yaml:"family"`
}

type lineYAML struct {
	Thickness  float64 `yaml:"thickness"`
	DashLength float64 `yaml:"dash_length"`
	DashDuty   float64 `yaml:"dash_duty"`
}

type legendYAML struct {
	Display bool   `yaml:"display"`
	Title   string `yaml:"title"`
}

type nameYAML struct {
	Pattern string `yaml:"pattern"`
	Replace string `yaml:"replace"`
}

type zoneStyleYAML struct {
	Pattern string   `yaml:"pattern"`
	Name    string   `yaml:"name"`
	Color   string   `yaml:"color"`
	Line    lineYAML `yaml:"line"`
}

type opYAML struct {
	Name   string   `yaml:"name"`
	Color  string   `yaml:"color"`
	Radius *float64 `yaml:"radius"`
}

type axisYAML struct {
	Distance float64 `yaml:"distance"`
	Position string  `yaml:"position"`
}

// DefaultVisual returns a usable style without any file.
func DefaultVisual() *VisualConfig {
	font := FontStyle{Size: 12, Color: geom.Color{255, 255, 255, 255}, Family: "sans-serif"}
	return &VisualConfig{
		Atom: AtomVisual{
			Radius:    0.3,
			Trapped:   geom.Color{85, 170, 255, 255},
			Shuttling: geom.Color{255, 170, 0, 255},
			LabelFont: font,
		},
		Zone: ZoneVisual{Legend: LegendToggle{Display: true, Title: "Zones"}},
		Operation: OperationVisual{
			Legend: LegendToggle{Display: true, Title: "Operations"},
			Rz:     OperationStyle{Name: "rz", Color: geom.Color{255, 0, 128, 192}},
			Ry:     OperationStyle{Name: "ry", Color: geom.Color{0, 255, 128, 192}},
			Cz:     OperationStyle{Name: "cz", Color: geom.Color{128, 0, 255, 192}},
		},
		Machine: MachineVisual{
			Legend:  LegendToggle{Display: true, Title: "Machine"},
			Trap:    TrapVisual{Name: "trap", Radius: 0.4, Color: geom.Color{128, 128, 128, 255}},
			Shuttle: ShuttleVisual{Name: "shuttle", Color: geom.Color{255, 170, 0, 255}, Line: LineStyle{Thickness: 1, DashLength: 2, DashDuty: 0.5}},
		},
		Coordinate: CoordinateVisual{
			TickX:      1,
			TickY:      1,
			TickLine:   LineStyle{Thickness: 0.5, DashLength: 1, DashDuty: 0.5},
			TickColor:  geom.Color{64, 64, 64, 255},
			NumberX:    AxisNumbers{Distance: 5, Position: PositionBottom},
			NumberY:    AxisNumbers{Distance: 5, Position: PositionLeft},
			NumberFont: font,
			AxisX:      "x",
			AxisY:      "y",
		},
		Sidebar:  SidebarVisual{Font: font},
		Time:     TimeVisual{Font: font, Prefix: "t = "},
		Viewport: ViewportVisual{Color: geom.Color{10, 10, 10, 255}},
	}
}

// LoadVisual reads a visual configuration from a YAML file.
func LoadVisual(path string) (*VisualConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseVisual(data)
}

// ParseVisual decodes a visual configuration document on top of the defaults.
func ParseVisual(data []byte) (*VisualConfig, error) {
	var raw visualYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse visual config: %w", err)
	}

	cfg := DefaultVisual()
	var err error

	if raw.Atom.Radius > 0 {
		cfg.Atom.Radius = raw.Atom.Radius
	}
	if cfg.Atom.Trapped, err = colorOr(raw.Atom.Trapped, cfg.Atom.Trapped); err != nil {
		return nil, err
	}
	if cfg.Atom.Shuttling, err = colorOr(raw.Atom.Shuttling, cfg.Atom.Shuttling); err != nil {
		return nil, err
	}
	if cfg.Atom.LabelFont, err = fontOr(raw.Atom.Label, cfg.Atom.LabelFont); err != nil {
		return nil, err
	}
	for _, n := range raw.Atom.Names {
		re, err := regexp.Compile(n.Pattern)
		if err != nil {
			return nil, fmt.Errorf("atom name pattern %q: %w", n.Pattern, err)
		}
		cfg.Atom.NameRules = append(cfg.Atom.NameRules, NameRule{Pattern: re, Replace: n.Replace})
	}

	cfg.Zone.Legend = legendOr(raw.Zones.Legend, cfg.Zone.Legend)
	for _, z := range raw.Zones.Styles {
		re, err := regexp.Compile(z.Pattern)
		if err != nil {
			return nil, fmt.Errorf("zone pattern %q: %w", z.Pattern, err)
		}
		c, err := ParseColor(z.Color)
		if err != nil {
			return nil, err
		}
		cfg.Zone.Styles = append(cfg.Zone.Styles, ZoneStyle{
			Pattern: re,
			Name:    z.Name,
			Color:   c,
			Line:    lineOf(z.Line),
		})
	}

	cfg.Operation.Legend = legendOr(raw.Operations.Legend, cfg.Operation.Legend)
	if cfg.Operation.Rz, err = opOr(raw.Operations.Rz, cfg.Operation.Rz); err != nil {
		return nil, err
	}
	if cfg.Operation.Ry, err = opOr(raw.Operations.Ry, cfg.Operation.Ry); err != nil {
		return nil, err
	}
	if cfg.Operation.Cz, err = opOr(raw.Operations.Cz, cfg.Operation.Cz); err != nil {
		return nil, err
	}

	cfg.Machine.Legend = legendOr(raw.Machine.Legend, cfg.Machine.Legend)
	if raw.Machine.Trap.Name != "" {
		cfg.Machine.Trap.Name = raw.Machine.Trap.Name
	}
	if raw.Machine.Trap.Radius > 0 {
		cfg.Machine.Trap.Radius = raw.Machine.Trap.Radius
	}
	if cfg.Machine.Trap.Color, err = colorOr(raw.Machine.Trap.Color, cfg.Machine.Trap.Color); err != nil {
		return nil, err
	}
	if raw.Machine.Shuttle.Name != "" {
		cfg.Machine.Shuttle.Name = raw.Machine.Shuttle.Name
	}
	if cfg.Machine.Shuttle.Color, err = colorOr(raw.Machine.Shuttle.Color, cfg.Machine.Shuttle.Color); err != nil {
		return nil, err
	}
	if raw.Machine.Shuttle.Line != (lineYAML{}) {
		cfg.Machine.Shuttle.Line = lineOf(raw.Machine.Shuttle.Line)
	}

	if raw.Coordinate.Tick.X > 0 {
		cfg.Coordinate.TickX = raw.Coordinate.Tick.X
	}
	if raw.Coordinate.Tick.Y > 0 {
		cfg.Coordinate.TickY = raw.Coordinate.Tick.Y
	}
	if raw.Coordinate.Tick.Line != (lineYAML{}) {
		cfg.Coordinate.TickLine = lineOf(raw.Coordinate.Tick.Line)
	}
	if cfg.Coordinate.TickColor, err = colorOr(raw.Coordinate.Tick.Color, cfg.Coordinate.TickColor); err != nil {
		return nil, err
	}
	if raw.Coordinate.Numbers.X.Distance > 0 {
		cfg.Coordinate.NumberX.Distance = raw.Coordinate.Numbers.X.Distance
	}
	if raw.Coordinate.Numbers.X.Position != "" {
		cfg.Coordinate.NumberX.Position = raw.Coordinate.Numbers.X.Position
	}
	if raw.Coordinate.Numbers.Y.Distance > 0 {
		cfg.Coordinate.NumberY.Distance = raw.Coordinate.Numbers.Y.Distance
	}
	if raw.Coordinate.Numbers.Y.Position != "" {
		cfg.Coordinate.NumberY.Position = raw.Coordinate.Numbers.Y.Position
	}
	if cfg.Coordinate.NumberFont, err = fontOr(raw.Coordinate.Numbers.Font, cfg.Coordinate.NumberFont); err != nil {
		return nil, err
	}
	if raw.Coordinate.Axis.X != "" {
		cfg.Coordinate.AxisX = raw.Coordinate.Axis.X
	}
	if raw.Coordinate.Axis.Y != "" {
		cfg.Coordinate.AxisY = raw.Coordinate.Axis.Y
	}

	if cfg.Sidebar.Font, err = fontOr(raw.Sidebar.Font, cfg.Sidebar.Font); err != nil {
		return nil, err
	}
	if cfg.Time.Font, err = fontOr(raw.Time.Font, cfg.Time.Font); err != nil {
		return nil, err
	}
	if raw.Time.Prefix != "" {
		cfg.Time.Prefix = raw.Time.Prefix
	}
	if cfg.Viewport.Color, err = colorOr(raw.Viewport.Color, cfg.Viewport.Color); err != nil {
		return nil, err
	}

	return cfg, nil
}

func colorOr(s string, def geom.Color) (geom.Color, error) {
	if s == "" {
		return def, nil
	}
	return ParseColor(s)
}

func fontOr(f fontYAML, def FontStyle) (FontStyle, error) {
	out := def
	if f.Size > 0 {
		out.Size = f.Size
	}
	if f.Family != "" {
		out.Family = f.Family
	}
	c, err := colorOr(f.Color, def.Color)
	if err != nil {
		return out, err
	}
	out.Color = c
	return out, nil
}

func legendOr(l legendYAML, def LegendToggle) LegendToggle {
	if l == (legendYAML{}) {
		return def
	}
	return LegendToggle{Display: l.Display, Title: l.Title}
}

func lineOf(l lineYAML) LineStyle {
	return LineStyle{Thickness: l.Thickness, DashLength: l.DashLength, DashDuty: l.DashDuty}
}

func opOr(o opYAML, def OperationStyle) (OperationStyle, error) {
	out := def
	if o.Name != "" {
		out.Name = o.Name
	}
	c, err := colorOr(o.Color, def.Color)
	if err != nil {
		return out, err
	}
	out.Color = c
	if o.Radius != nil {
		out.Radius = o.Radius
	}
	return out, nil
}
