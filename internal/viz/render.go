package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/atomviz/internal/geom"
	"github.com/san-kum/atomviz/internal/scene"
)

// Viewport maps machine coordinates into canvas sub-pixel coordinates,
// flipping the y-axis so machine-y grows upward on screen.
type Viewport struct {
	min, max geom.Position
	w, h     int
	scale    float64
}

// NewViewport frames the scene's content (zones, traps, content size) into
// a canvas of the passed character dimensions, with a small margin.
func NewViewport(cfg *scene.Config, widthChars, heightChars int) Viewport {
	min := geom.Position{}
	max := cfg.ContentSize
	for _, z := range cfg.Zones {
		min.X = math.Min(min.X, z.Start.X)
		min.Y = math.Min(min.Y, z.Start.Y)
		max.X = math.Max(max.X, z.Start.X+z.Size.X)
		max.Y = math.Max(max.Y, z.Start.Y+z.Size.Y)
	}
	for _, t := range cfg.Traps.Positions {
		min.X = math.Min(min.X, t.X)
		min.Y = math.Min(min.Y, t.Y)
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

	w := widthChars * 2
	h := heightChars * 4
	scale := math.Min(float64(w)/span.X, float64(h)/span.Y)
	return Viewport{min: min, max: max, w: w, h: h, scale: scale}
}

// Point maps a machine position to sub-pixel coordinates.
func (v Viewport) Point(p geom.Position) (int, int) {
	x := (p.X - v.min.X) * v.scale
	y := (p.Y - v.min.Y) * v.scale
	return int(math.Round(x)), v.h - 1 - int(math.Round(y))
}

// Radius maps a machine length to sub-pixels.
func (v Viewport) Radius(r float64) int {
	px := int(math.Round(r * v.scale))
	if px < 1 {
		px = 1
	}
	return px
}

// Renderer draws scene snapshots onto a braille canvas and composes the
// frame with a legend sidebar and time label.
type Renderer struct {
	cfg      *scene.Config
	canvas   *Canvas
	viewport Viewport
}

func NewRenderer(cfg *scene.Config, widthChars, heightChars int) *Renderer {
	return &Renderer{
		cfg:      cfg,
		canvas:   NewCanvas(widthChars, heightChars),
		viewport: NewViewport(cfg, widthChars, heightChars),
	}
}

// Frame renders one snapshot as a styled terminal frame.
func (r *Renderer) Frame(st *scene.State) string {
	r.canvas.Clear()

	for _, z := range r.cfg.Zones {
		x0, y0 := r.viewport.Point(z.Start)
		x1, y1 := r.viewport.Point(z.Start.Add(z.Size))
		r.canvas.DrawRect(x0, y0, x1, y1)
	}
	for _, t := range r.cfg.Traps.Positions {
		x, y := r.viewport.Point(t)
		r.canvas.DrawCircle(x, y, r.viewport.Radius(r.cfg.Traps.Radius))
	}
	for _, atom := range st.Atoms {
		x, y := r.viewport.Point(atom.Position)
		radius := r.viewport.Radius(atom.Size)
		if atom.Shuttle {
			r.canvas.DrawCircle(x, y, radius)
		} else {
			r.canvas.FillCircle(x, y, radius)
		}
	}

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		CanvasStyle.Render(r.canvas.String()),
		r.sidebar(st),
	)
	return lipgloss.JoinVertical(lipgloss.Left, body, TimeStyle.Render(st.Time))
}

func (r *Renderer) sidebar(st *scene.State) string {
	var b strings.Builder
	for _, section := range r.cfg.Legend.Sections {
		if len(section.Entries) == 0 {
			continue
		}
		b.WriteString(HeadingStyle.Render(section.Name) + "\n")
		for _, entry := range section.Entries {
			if entry.Color != nil {
				b.WriteString(colorDot(*entry.Color) + " ")
			}
			b.WriteString(EntryStyle.Render(entry.Text) + "\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(HeadingStyle.Render("Atoms") + "\n")
	for _, atom := range st.Atoms {
		label := atom.Label
		if label == "" {
			label = "·"
		}
		state := "trapped"
		if atom.Shuttle {
			state = "shuttling"
		}
		b.WriteString(colorDot(atom.Color) + " " + EntryStyle.Render(fmt.Sprintf("%s (%s)", label, state)) + "\n")
	}
	return SidebarStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func colorDot(c geom.Color) string {
	return lipgloss.NewStyle().Foreground(TermColor(c)).Render("●")
}

// TermColor converts an RGBA color to a lipgloss hex color, dropping alpha.
func TermColor(c geom.Color) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2]))
}
