package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/atomviz/internal/geom"
	"github.com/san-kum/atomviz/internal/scene"
)

// SVGRenderer renders scene snapshots as standalone SVG documents.
type SVGRenderer struct {
	cfg        *scene.Config
	background geom.Color
	width      int
	height     int
	min        geom.Position
	scale      float64
}

// NewSVGRenderer frames the scene content into an SVG viewport of the
// passed pixel dimensions.
func NewSVGRenderer(cfg *scene.Config, background geom.Color, width, height int) *SVGRenderer {
	min := geom.Position{}
	max := cfg.ContentSize
	for _, z := range cfg.Zones {
		min.X = math.Min(min.X, z.Start.X)
		min.Y = math.Min(min.Y, z.Start.Y)
		max.X = math.Max(max.X, z.Start.X+z.Size.X)
		max.Y = math.Max(max.Y, z.Start.Y+z.Size.Y)
	}
	for _, t := range cfg.Traps.Positions {
		max.X = math.Max(max.X, t.X)
		max.Y = math.Max(max.Y, t.Y)
	}
	span := max.Sub(min)
	if span.X == 0 {
		span.X = 1
	}
	if span.Y == 0 {
		span.Y = 1
	}
	min = min.Sub(span.Scale(0.05))
	max = max.Add(span.Scale(0.05))
	span = max.Sub(min)

	return &SVGRenderer{
		cfg:        cfg,
		background: background,
		width:      width,
		height:     height,
		min:        min,
		scale:      math.Min(float64(width)/span.X, float64(height)/span.Y),
	}
}

func (r *SVGRenderer) point(p geom.Position) (float64, float64) {
	return (p.X - r.min.X) * r.scale, float64(r.height) - (p.Y-r.min.Y)*r.scale
}

// Frame renders one snapshot.
func (r *SVGRenderer) Frame(st *scene.State) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, r.width, r.height, r.width, r.height, svgColor(r.background))

	for _, z := range r.cfg.Zones {
		x, y := r.point(z.Start.Add(geom.Position{Y: z.Size.Y}))
		fmt.Fprintf(&sb,
			`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="%s" stroke-width="%.1f"/>`+"\n",
			x, y, z.Size.X*r.scale, z.Size.Y*r.scale, svgColor(z.Line.Color), math.Max(z.Line.Width, 0.5))
	}
	for _, t := range r.cfg.Traps.Positions {
		x, y := r.point(t)
		fmt.Fprintf(&sb,
			`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="%s" stroke-width="%.1f"/>`+"\n",
			x, y, r.cfg.Traps.Radius*r.scale, svgColor(r.cfg.Traps.Color), r.cfg.Traps.LineWidth)
	}
	for _, atom := range st.Atoms {
		x, y := r.point(atom.Position)
		radius := atom.Size * r.scale
		if atom.Shuttle {
			fmt.Fprintf(&sb,
				`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="%s" stroke-dasharray="4 2"/>`+"\n",
				x, y, radius, svgColor(atom.Color))
		} else {
			fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>`+"\n",
				x, y, radius, svgColor(atom.Color))
		}
		if atom.Label != "" {
			fmt.Fprintf(&sb, `<text x="%.1f" y="%.1f" font-size="%.1f" fill="%s">%s</text>`+"\n",
				x+radius+2, y, r.cfg.Atoms.Label.Size, svgColor(r.cfg.Atoms.Label.Color), atom.Label)
		}
	}

	fmt.Fprintf(&sb, `<text x="4" y="%.1f" font-size="%.1f" fill="%s">%s</text>`+"\n",
		float64(r.height)-4, r.cfg.Time.Font.Size, svgColor(r.cfg.Time.Font.Color), st.Time)

	sb.WriteString("</svg>\n")
	return sb.String()
}

func svgColor(c geom.Color) string {
	return fmt.Sprintf("rgba(%d,%d,%d,%.3f)", c[0], c[1], c[2], float64(c[3])/255)
}
