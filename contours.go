package morph

import "fmt"

// Contours describes a single shape as one outer loop plus zero or more hole
// loops. The outer loop should wind counter-clockwise and holes clockwise;
// hole order is significant for loop mapping but not for rendering.
type Contours struct {
	Outer Loop
	Holes []Loop
}

// NewContours returns contours over outer and holes. If any hole is present,
// the outer loop and all holes must be closed.
func NewContours(outer Loop, holes []Loop) (Contours, error) {
	if len(holes) > 0 && !outer.Closed {
		return Contours{}, fmt.Errorf("morph: outer contour must be closed when holes are present")
	}
	for i, h := range holes {
		if !h.Closed {
			return Contours{}, fmt.Errorf("morph: hole %d must be closed", i)
		}
	}
	return Contours{Outer: outer, Holes: holes}, nil
}

// SingleLoop returns contours with no holes around a single loop.
func SingleLoop(pts []Point, closed bool) Contours {
	return Contours{Outer: NewLoop(pts, closed)}
}

// Clone returns a deep copy of the contours.
func (c Contours) Clone() Contours {
	out := Contours{Outer: c.Outer.Clone()}
	if len(c.Holes) > 0 {
		out.Holes = make([]Loop, len(c.Holes))
		for i, h := range c.Holes {
			out.Holes[i] = h.Clone()
		}
	}
	return out
}

// IsEmpty reports whether the contours have no outer vertices.
func (c Contours) IsEmpty() bool {
	return len(c.Outer.Pts) == 0
}

// Centroid returns the centroid of the outer loop.
func (c Contours) Centroid() Point {
	return c.Outer.Centroid()
}

// Bounds returns the bounding box of the outer loop.
func (c Contours) Bounds() Rect {
	return c.Outer.Bounds()
}

// TotalVertices returns the vertex count summed over the outer loop and all
// holes.
func (c Contours) TotalVertices() int {
	n := c.Outer.Len()
	for _, h := range c.Holes {
		n += h.Len()
	}
	return n
}
