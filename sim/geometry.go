package sim

import "math"

// Vec2 is a point or direction on the field
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }

// Len returns the euclidean length of v
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Normalize returns the unit vector of v, or the zero vector when v has no length
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l < distanceEpsilon {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Rect is an axis-aligned box anchored at its top-left corner
type Rect struct {
	X, Y, W, H float64
}

// Center returns the middle of the box
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.W/2, r.Y + r.H/2}
}

// Intersects reports whether two boxes overlap. Touching edges do not count.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

// Inset shrinks the box by dx on the left and right and dy on the top and bottom.
// The result never has a negative extent.
func (r Rect) Inset(dx, dy float64) Rect {
	out := Rect{X: r.X + dx, Y: r.Y + dy, W: r.W - 2*dx, H: r.H - 2*dy}
	if out.W < 0 {
		out.X, out.W = r.X+r.W/2, 0
	}
	if out.H < 0 {
		out.Y, out.H = r.Y+r.H/2, 0
	}
	return out
}

// Shape is a collision footprint: either a circle (Radii.X is the radius) or an
// axis-aligned ellipse with half-extents Radii.
type Shape struct {
	Center Vec2
	Radii  Vec2
	Circle bool
}

// EllipseOf approximates a box by the ellipse inscribed in it
func EllipseOf(r Rect) Shape {
	return Shape{Center: r.Center(), Radii: Vec2{r.W / 2, r.H / 2}}
}

// CircleAt builds a circular footprint
func CircleAt(center Vec2, radius float64) Shape {
	return Shape{Center: center, Radii: Vec2{radius, radius}, Circle: true}
}

// distanceEpsilon guards divisions by vector lengths
const distanceEpsilon = 1e-9

// Overlaps reports whether two footprints intersect: the distance between the
// centers must be strictly less than the sum of both radii measured along the
// line joining them.
func Overlaps(a, b Shape) bool {
	dir := b.Center.Sub(a.Center)
	dist := dir.Len()
	return dist < a.radiusAlong(dir)+b.radiusAlong(dir)
}

// radiusAlong returns the distance from the shape's center to its boundary in
// direction dir. Ellipses are measured by scaling dir into the ellipse's local
// unit space, then projecting the boundary point back.
func (s Shape) radiusAlong(dir Vec2) float64 {
	if s.Circle {
		return s.Radii.X
	}
	l := dir.Len()
	if l < distanceEpsilon || s.Radii.X <= 0 || s.Radii.Y <= 0 {
		return math.Max(s.Radii.X, s.Radii.Y)
	}
	ux, uy := dir.X/l, dir.Y/l

	// local ellipse space: the boundary lies at magnitude 1
	local := math.Hypot(ux/s.Radii.X, uy/s.Radii.Y)

	// back to field space
	return math.Hypot(ux/local, uy/local)
}
