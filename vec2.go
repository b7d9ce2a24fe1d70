package morph

import (
	"fmt"
	"math"
)

// Vec2 is a 2D vector, the result of subtracting two points.
type Vec2 struct {
	X float64
	Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 {
	return Vec2{
		X: x,
		Y: y,
	}
}

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the cross product of v and o.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Hypot returns the magnitude of the vector.
func (v Vec2) Hypot() float64 {
	return math.Hypot(v.X, v.Y)
}

// Hypot2 returns the squared magnitude of the vector.
func (v Vec2) Hypot2() float64 {
	return v.Dot(v)
}

// Negate returns the vector pointing the opposite way.
func (v Vec2) Negate() Vec2 {
	return Vec2{
		X: -v.X,
		Y: -v.Y,
	}
}

// Normalize returns a unit vector pointing the same way as v.
func (v Vec2) Normalize() Vec2 {
	h := v.Hypot()
	return Vec2{
		X: v.X / h,
		Y: v.Y / h,
	}
}

// Lerp linearly interpolates between two vectors.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{
		X: v.X + (o.X-v.X)*t,
		Y: v.Y + (o.Y-v.Y)*t,
	}
}
