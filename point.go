package morph

import (
	"fmt"
	"math"
)

// Point is a 2D coordinate. Points are plain values; the engine mutates them
// in place only through explicit buffer slices (see [ContourBuffer]), never
// behind the caller's back.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

func (pt Point) Translate(o Vec2) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// Sub computes p−o.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point{
		X: pt.X + (o.X-pt.X)*t,
		Y: pt.Y + (o.Y-pt.Y)*t,
	}
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return math.Hypot(x, y)
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return x*x + y*y
}

// AngleAbout returns the angle of pt as seen from center, in radians in
// [0, 2π). Zero is north (negative Y in a y-down space) and angles grow
// clockwise, matching the rotation convention used by shape states.
func (pt Point) AngleAbout(center Point) float64 {
	dx := pt.X - center.X
	dy := pt.Y - center.Y
	th := math.Atan2(dx, -dy)
	if th < 0 {
		th += 2 * math.Pi
	}
	return th
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}
