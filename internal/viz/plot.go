package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/atomviz/internal/anim"
)

// TrajectoryPlot renders an atom's x and y coordinates over the whole
// animation as terminal line graphs.
func TrajectoryPlot(a *anim.Animator, atomIndex, samples, width, height int) (string, error) {
	if samples < 2 {
		samples = 2
	}
	xs := make([]float64, 0, samples)
	ys := make([]float64, 0, samples)
	step := a.Duration() / float64(samples-1)
	for i := 0; i < samples; i++ {
		st := a.State(float64(i) * step)
		if atomIndex < 0 || atomIndex >= len(st.Atoms) {
			return "", fmt.Errorf("atom index %d out of range (%d atoms)", atomIndex, len(st.Atoms))
		}
		p := st.Atoms[atomIndex].Position
		xs = append(xs, p.X)
		ys = append(ys, p.Y)
	}

	gx := asciigraph.Plot(xs,
		asciigraph.Width(width), asciigraph.Height(height),
		asciigraph.Caption("x position over time"))
	gy := asciigraph.Plot(ys,
		asciigraph.Width(width), asciigraph.Height(height),
		asciigraph.Caption("y position over time"))
	return gx + "\n\n" + gy + "\n", nil
}
