package anim

import (
	"sort"

	"github.com/san-kum/atomviz/internal/config"
	"github.com/san-kum/atomviz/internal/geom"
	"github.com/san-kum/atomviz/internal/scene"
)

// buildSceneConfig derives the static scene description from the machine
// and visual configuration. It has no timing dependency.
func buildSceneConfig(machine *config.MachineConfig, visual *config.VisualConfig, contentSize geom.Position) *scene.Config {
	cfg := &scene.Config{
		Grid: scene.GridConfig{
			Step: geom.Position{X: visual.Coordinate.TickX, Y: visual.Coordinate.TickY},
			Line: lineConfig(visual.Coordinate.TickLine, visual.Coordinate.TickColor),
			Legend: scene.GridLegendConfig{
				Step: geom.Position{
					X: visual.Coordinate.NumberX.Distance,
					Y: visual.Coordinate.NumberY.Distance,
				},
				Font:   fontConfig(visual.Coordinate.NumberFont),
				Labels: [2]string{visual.Coordinate.AxisX, visual.Coordinate.AxisY},
			},
		},
		Traps: scene.TrapConfig{
			Positions: machine.Traps,
			Radius:    visual.Machine.Trap.Radius,
			LineWidth: 1,
			Color:     visual.Machine.Trap.Color,
		},
		Atoms: scene.AtomsConfig{
			Label:   fontConfig(visual.Atom.LabelFont),
			Shuttle: lineConfig(visual.Machine.Shuttle.Line, visual.Machine.Shuttle.Color),
		},
		ContentSize: contentSize,
		Legend: scene.LegendConfig{
			Font:              fontConfig(visual.Sidebar.Font),
			HeadingSkip:       visual.Sidebar.Font.Size * 1.6,
			EntrySkip:         visual.Sidebar.Font.Size * 1.4,
			ColorCircleRadius: visual.Sidebar.Font.Size / 2,
			ColorPadding:      visual.Sidebar.Font.Size / 2,
			Sections:          legendSections(machine, visual),
		},
		Time: scene.TimeConfig{Font: fontConfig(visual.Time.Font)},
	}
	if visual.Coordinate.NumberX.Position == config.PositionTop {
		cfg.Grid.Legend.Position.V = scene.Top
	}
	if visual.Coordinate.NumberY.Position == config.PositionRight {
		cfg.Grid.Legend.Position.H = scene.Right
	}

	for _, id := range sortedZoneIDs(machine) {
		zone := machine.Zones[id]
		zc := scene.ZoneConfig{Start: zone.From, Size: zone.Size()}
		if style := visual.Zone.StyleFor(id); style != nil {
			zc.Line = scene.LineConfig{
				Width:         style.Line.Thickness,
				SegmentLength: style.Line.DashLength,
				Duty:          style.Line.DashDuty,
				Color:         style.Color,
			}
		}
		cfg.Zones = append(cfg.Zones, zc)
	}
	return cfg
}

func legendSections(machine *config.MachineConfig, visual *config.VisualConfig) []scene.LegendSection {
	var sections []scene.LegendSection

	if visual.Zone.Legend.Display {
		section := scene.LegendSection{Name: visual.Zone.Legend.Title}
		for _, id := range sortedZoneIDs(machine) {
			style := visual.Zone.StyleFor(id)
			if style == nil || style.Name == "" {
				continue
			}
			c := style.Color
			name := style.Pattern.ReplaceAllString(id, style.Name)
			section.Entries = append(section.Entries, scene.LegendEntry{Text: name, Color: &c})
		}
		sections = append(sections, section)
	}

	if visual.Operation.Legend.Display {
		section := scene.LegendSection{Name: visual.Operation.Legend.Title}
		for _, op := range []config.OperationStyle{visual.Operation.Rz, visual.Operation.Ry, visual.Operation.Cz} {
			if op.Name == "" {
				continue
			}
			c := op.Color
			section.Entries = append(section.Entries, scene.LegendEntry{Text: op.Name, Color: &c})
		}
		sections = append(sections, section)
	}

	if visual.Machine.Legend.Display {
		section := scene.LegendSection{Name: visual.Machine.Legend.Title}
		for _, e := range []struct {
			name  string
			color geom.Color
		}{
			{visual.Machine.Trap.Name, visual.Atom.Trapped},
			{visual.Machine.Shuttle.Name, visual.Atom.Shuttling},
		} {
			if e.name == "" {
				continue
			}
			c := e.color
			section.Entries = append(section.Entries, scene.LegendEntry{Text: e.name, Color: &c})
		}
		sections = append(sections, section)
	}

	return sections
}

// sortedZoneIDs gives zone iteration a stable order.
func sortedZoneIDs(machine *config.MachineConfig) []string {
	ids := make([]string, 0, len(machine.Zones))
	for id := range machine.Zones {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func fontConfig(f config.FontStyle) scene.FontConfig {
	return scene.FontConfig{Size: f.Size, Color: f.Color, Family: f.Family}
}

func lineConfig(l config.LineStyle, c geom.Color) scene.LineConfig {
	return scene.LineConfig{Width: l.Thickness, SegmentLength: l.DashLength, Duty: l.DashDuty, Color: c}
}
