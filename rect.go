package morph

// Rect is an axis-aligned rectangle, used for loop and contour bounds.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1,
// ensuring that width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// Abs returns a new rectangle with the same extents as r, but ensuring that
// width and height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

// Width returns the rectangle's width, defined as X1 − X0.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height, defined as Y1 − Y0.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 &&
		pt.X < r.X1 &&
		pt.Y >= r.Y0 &&
		pt.Y < r.Y1
}

// Union returns the smallest rectangle enclosing r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}
