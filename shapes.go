package morph

import "math"

// Shape samplers. Morphing requires equal vertex counts on both sides of a
// transition, so every sampler takes the vertex count from the caller
// instead of choosing its own resolution.

// Circle samples n vertices of a circle, starting at north and proceeding
// clockwise (y-down).
func Circle(center Point, r float64, n int) Loop {
	return Ellipse(center, r, r, n)
}

// Ellipse samples n vertices of an axis-aligned ellipse with radii rx and
// ry, starting at north and proceeding clockwise.
func Ellipse(center Point, rx, ry float64, n int) Loop {
	pts := make([]Point, n)
	for i := range pts {
		th := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Pt(center.X+rx*math.Sin(th), center.Y-ry*math.Cos(th))
	}
	return Loop{Pts: pts, Closed: true}
}

// Rectangle samples n vertices evenly spaced along a rectangle's perimeter,
// starting at the top-left corner and proceeding clockwise. The four corners
// are only hit exactly when n is a multiple of the side ratios; for morphing
// against curved shapes the even spacing matters more than sharp corners.
func Rectangle(r Rect, n int) Loop {
	r = r.Abs()
	corners := [4]Point{
		Pt(r.X0, r.Y0),
		Pt(r.X1, r.Y0),
		Pt(r.X1, r.Y1),
		Pt(r.X0, r.Y1),
	}
	perimeter := 2 * (r.Width() + r.Height())
	pts := make([]Point, n)
	if perimeter == 0 {
		for i := range pts {
			pts[i] = corners[0]
		}
		return Loop{Pts: pts, Closed: true}
	}
	for i := range pts {
		d := perimeter * float64(i) / float64(n)
		for e := 0; e < 4; e++ {
			a, b := corners[e], corners[(e+1)%4]
			edge := a.Distance(b)
			if d <= edge || e == 3 {
				if edge == 0 {
					pts[i] = a
				} else {
					pts[i] = a.Lerp(b, d/edge)
				}
				break
			}
			d -= edge
		}
	}
	return Loop{Pts: pts, Closed: true}
}

// RegularPolygon returns a regular polygon with the given number of sides,
// one vertex at north, proceeding clockwise.
func RegularPolygon(center Point, r float64, sides int) Loop {
	return Ellipse(center, r, r, sides)
}

// Star returns a star with the given number of points, alternating between
// the outer and inner radius, first outer vertex at north, clockwise. The
// result has 2*points vertices.
func Star(center Point, outerR, innerR float64, points int) Loop {
	pts := make([]Point, 2*points)
	for i := range pts {
		r := outerR
		if i%2 == 1 {
			r = innerR
		}
		th := math.Pi * float64(i) / float64(points)
		pts[i] = Pt(center.X+r*math.Sin(th), center.Y-r*math.Cos(th))
	}
	return Loop{Pts: pts, Closed: true}
}

// Astroid samples n vertices of an astroid (a four-cusped hypocycloid) of
// radius r, starting at north, clockwise.
func Astroid(center Point, r float64, n int) Loop {
	pts := make([]Point, n)
	for i := range pts {
		th := 2 * math.Pi * float64(i) / float64(n)
		s, c := math.Sin(th), math.Cos(th)
		pts[i] = Pt(center.X+r*s*s*s, center.Y-r*c*c*c)
	}
	return Loop{Pts: pts, Closed: true}
}
