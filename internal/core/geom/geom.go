// Package geom holds the 2D primitives shared by the road network, the path
// builder and the renderer.
package geom

import "math"

// Point represents a 2D point in world space (origin at map center, y up).
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Scale returns p scaled by s on both axes.
func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Distance calculates the Euclidean distance between two points
func Distance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Point) Point {
	return a.Add(b).Scale(0.5)
}

// Orientation returns atan2(from.Y-to.Y, from.X-to.X), the angle of the vector
// pointing from to back at from. Coincident points yield 0.
func Orientation(from, to Point) float64 {
	d := from.Sub(to)
	if d.X == 0 && d.Y == 0 {
		return 0
	}
	return math.Atan2(d.Y, d.X)
}

// Rect is an axis-aligned rectangle described by its center and size.
type Rect struct {
	Center Point
	W, H   float64
}

// Min returns the bottom-left corner.
func (r Rect) Min() Point {
	return Point{r.Center.X - r.W/2, r.Center.Y - r.H/2}
}

// Max returns the top-right corner.
func (r Rect) Max() Point {
	return Point{r.Center.X + r.W/2, r.Center.Y + r.H/2}
}

// Contains reports whether p lies inside r (edges included).
func (r Rect) Contains(p Point) bool {
	lo, hi := r.Min(), r.Max()
	return p.X >= lo.X && p.X <= hi.X && p.Y >= lo.Y && p.Y <= hi.Y
}

// BoundsOf returns the smallest Rect containing every point. An empty input
// yields the zero Rect.
func BoundsOf(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	lo, hi := pts[0], pts[0]
	for _, p := range pts[1:] {
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
	}
	return Rect{
		Center: Midpoint(lo, hi),
		W:      hi.X - lo.X,
		H:      hi.Y - lo.Y,
	}
}
