package interp

import (
	"math"

	"github.com/san-kum/atomviz/internal/geom"
)

// PositionMotion is a 2-D motion model with a derivable duration.
type PositionMotion interface {
	Duration(from, to geom.Position) float64
	Interpolate(fraction float64, from, to geom.Position) geom.Position
}

// Diagonal lifts a scalar motion to 2-D by projecting onto the straight
// line between the endpoints: the scalar motion runs over the Euclidean
// distance and the point is reconstructed along the direction vector.
type Diagonal struct {
	Motion ScalarMotion
}

func (d Diagonal) Duration(from, to geom.Position) float64 {
	return d.Motion.Duration(0, from.Distance(to))
}

func (d Diagonal) Interpolate(fraction float64, from, to geom.Position) geom.Position {
	dist := from.Distance(to)
	if dist == 0 {
		return from
	}
	s := d.Motion.Interpolate(fraction, 0, dist)
	return from.Add(to.Sub(from).Unit().Scale(s))
}

// Func wraps the motion as an interpolation strategy over positions.
func (d Diagonal) Func() Func[geom.Position] {
	return Func[geom.Position]{Eval: d.Interpolate}
}

// ComponentWise lifts a scalar motion to 2-D by interpolating the axes
// independently while synchronizing their completion: the slower axis sets
// the effective duration and the faster axis's fraction is rescaled so both
// arrive together.
type ComponentWise struct {
	Motion ScalarMotion
}

func (c ComponentWise) Duration(from, to geom.Position) float64 {
	return math.Max(c.Motion.Duration(from.X, to.X), c.Motion.Duration(from.Y, to.Y))
}

func (c ComponentWise) Interpolate(fraction float64, from, to geom.Position) geom.Position {
	tx := c.Motion.Duration(from.X, to.X)
	ty := c.Motion.Duration(from.Y, to.Y)
	tLong := math.Max(tx, ty)
	return geom.Position{
		X: c.Motion.Interpolate(axisFraction(fraction, tLong, tx), from.X, to.X),
		Y: c.Motion.Interpolate(axisFraction(fraction, tLong, ty), from.Y, to.Y),
	}
}

// Func wraps the motion as an interpolation strategy over positions.
func (c ComponentWise) Func() Func[geom.Position] {
	return Func[geom.Position]{Eval: c.Interpolate}
}

func axisFraction(fraction, tLong, tAxis float64) float64 {
	if tAxis == 0 {
		return 1
	}
	return math.Min(fraction*tLong/tAxis, 1)
}
