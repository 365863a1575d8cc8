package geom

import "math"

// Position is a point in machine coordinates.
type Position struct {
	X, Y float64
}

func (p Position) Add(q Position) Position     { return Position{p.X + q.X, p.Y + q.Y} }
func (p Position) Sub(q Position) Position     { return Position{p.X - q.X, p.Y - q.Y} }
func (p Position) Scale(s float64) Position    { return Position{p.X * s, p.Y * s} }
func (p Position) Length() float64             { return math.Hypot(p.X, p.Y) }
func (p Position) Distance(q Position) float64 { return p.Sub(q).Length() }

// Unit returns the unit vector of p, or the zero vector if p has zero length.
func (p Position) Unit() Position {
	l := p.Length()
	if l == 0 {
		return Position{}
	}
	return p.Scale(1 / l)
}

// Rect is an axis-aligned rectangle spanning From to To.
type Rect struct {
	From, To Position
}

// Contains reports whether p lies inside the rectangle, borders inclusive.
func (r Rect) Contains(p Position) bool {
	return p.X >= r.From.X && p.Y >= r.From.Y && p.X <= r.To.X && p.Y <= r.To.Y
}

// Size returns the extent of the rectangle.
func (r Rect) Size() Position {
	return r.To.Sub(r.From)
}
