package morph

import "math"

// A Loop is an ordered sequence of vertices forming an open chain or a
// closed cycle. A closed loop stores each vertex exactly once; the closing
// edge from the last vertex back to the first is implicit. Every operation
// (centroid, area, alignment, interpolation) relies on this, so no step may
// duplicate or drop a vertex to "close" a loop.
type Loop struct {
	Pts    []Point
	Closed bool
}

// NewLoop returns a loop over pts. The slice is used directly, not copied.
func NewLoop(pts []Point, closed bool) Loop {
	return Loop{Pts: pts, Closed: closed}
}

// Len returns the number of vertices in the loop.
func (l Loop) Len() int {
	return len(l.Pts)
}

// Clone returns a loop with a freshly allocated copy of the vertices.
func (l Loop) Clone() Loop {
	pts := make([]Point, len(l.Pts))
	copy(pts, l.Pts)
	return Loop{Pts: pts, Closed: l.Closed}
}

// Centroid returns the geometric center of the loop.
//
// Closed loops use the signed-area polygon formula so that vertex spacing
// does not bias the result; open loops (and degenerate closed ones) use the
// vertex mean.
func (l Loop) Centroid() Point {
	n := len(l.Pts)
	if n == 0 {
		return Point{}
	}
	if !l.Closed {
		return vertexMean(l.Pts)
	}

	var area, cx, cy float64
	for i, v1 := range l.Pts {
		v2 := l.Pts[(i+1)%n]
		cross := v1.X*v2.Y - v2.X*v1.Y
		area += cross
		cx += (v1.X + v2.X) * cross
		cy += (v1.Y + v2.Y) * cross
	}
	if math.Abs(area) < 1e-10 {
		// Degenerate polygon, e.g. a zero-loop.
		return vertexMean(l.Pts)
	}
	area *= 0.5
	return Point{
		X: cx / (6 * area),
		Y: cy / (6 * area),
	}
}

// Area returns the signed area of the loop: positive for counter-clockwise
// winding, negative for clockwise, zero for open loops.
func (l Loop) Area() float64 {
	if !l.Closed || len(l.Pts) < 3 {
		return 0
	}
	var area float64
	n := len(l.Pts)
	for i, v1 := range l.Pts {
		v2 := l.Pts[(i+1)%n]
		area += v1.X*v2.Y - v2.X*v1.Y
	}
	return area * 0.5
}

// IsClockwise reports whether the loop winds clockwise (negative area).
func (l Loop) IsClockwise() bool {
	return l.Area() < 0
}

// Bounds returns the bounding box of the vertices.
func (l Loop) Bounds() Rect {
	if len(l.Pts) == 0 {
		return Rect{}
	}
	r := Rect{l.Pts[0].X, l.Pts[0].Y, l.Pts[0].X, l.Pts[0].Y}
	for _, pt := range l.Pts[1:] {
		r.X0 = min(r.X0, pt.X)
		r.Y0 = min(r.Y0, pt.Y)
		r.X1 = max(r.X1, pt.X)
		r.Y1 = max(r.Y1, pt.Y)
	}
	return r
}

// Reverse returns a new loop with the vertex order reversed.
func (l Loop) Reverse() Loop {
	pts := make([]Point, len(l.Pts))
	for i, pt := range l.Pts {
		pts[len(pts)-1-i] = pt
	}
	return Loop{Pts: pts, Closed: l.Closed}
}

func vertexMean(pts []Point) Point {
	var sx, sy float64
	for _, pt := range pts {
		sx += pt.X
		sy += pt.Y
	}
	n := float64(len(pts))
	return Point{X: sx / n, Y: sy / n}
}

// rotateSlice rotates pts left by offset positions in place, using the
// three-reversal algorithm: O(n) time, O(1) space.
func rotateSlice(pts []Point, offset int) {
	n := len(pts)
	if n == 0 {
		return
	}
	offset %= n
	if offset < 0 {
		offset += n
	}
	if offset == 0 {
		return
	}
	reverseRange(pts, 0, offset)
	reverseRange(pts, offset, n)
	reverseRange(pts, 0, n)
}

func reverseRange(pts []Point, lo, hi int) {
	for lo < hi-1 {
		pts[lo], pts[hi-1] = pts[hi-1], pts[lo]
		lo++
		hi--
	}
}
