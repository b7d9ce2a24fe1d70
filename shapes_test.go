package morph

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCircle(t *testing.T) {
	c := Circle(Pt(50, 50), 40, 64)
	if !c.Closed || c.Len() != 64 {
		t.Fatalf("got closed=%v len=%d", c.Closed, c.Len())
	}
	// First vertex at north, proceeding clockwise.
	diff(t, Pt(50, 10), c.Pts[0], cmpopts.EquateApprox(0, 1e-9))
	if c.Pts[1].X <= 50 {
		t.Error("second vertex should be east of north, i.e. clockwise")
	}
	for i, pt := range c.Pts {
		if d := pt.Distance(Pt(50, 50)); math.Abs(d-40) > 1e-9 {
			t.Fatalf("vertex %d at distance %v, want 40", i, d)
		}
	}
	diff(t, Pt(50, 50), c.Centroid(), cmpopts.EquateApprox(0, 1e-9))
}

func TestEllipse(t *testing.T) {
	e := Ellipse(Pt(0, 0), 4, 2, 16)
	diff(t, Pt(0, -2), e.Pts[0], cmpopts.EquateApprox(0, 1e-9))
	diff(t, Pt(4, 0), e.Pts[4], cmpopts.EquateApprox(0, 1e-9))
	b := e.Bounds()
	diff(t, Rect{X0: -4, Y0: -2, X1: 4, Y1: 2}, b, cmpopts.EquateApprox(0, 1e-9))
}

func TestRectangle(t *testing.T) {
	got := Rectangle(Rect{X0: 0, Y0: 0, X1: 4, Y1: 2}, 12)
	want := []Point{
		Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0),
		Pt(4, 0), Pt(4, 1),
		Pt(4, 2), Pt(3, 2), Pt(2, 2), Pt(1, 2),
		Pt(0, 2), Pt(0, 1),
	}
	diff(t, want, got.Pts, cmpopts.EquateApprox(0, 1e-9))
	if !got.Closed {
		t.Error("rectangle loop must be closed")
	}
}

func TestRegularPolygonAndStar(t *testing.T) {
	p := RegularPolygon(Pt(0, 0), 1, 6)
	if p.Len() != 6 {
		t.Fatalf("got %d vertices, want 6", p.Len())
	}
	diff(t, Pt(0, -1), p.Pts[0], cmpopts.EquateApprox(0, 1e-9))

	s := Star(Pt(0, 0), 2, 1, 5)
	if s.Len() != 10 {
		t.Fatalf("got %d vertices, want 10", s.Len())
	}
	diff(t, Pt(0, -2), s.Pts[0], cmpopts.EquateApprox(0, 1e-9))
	for i, pt := range s.Pts {
		want := 2.0
		if i%2 == 1 {
			want = 1.0
		}
		if d := pt.Distance(Pt(0, 0)); math.Abs(d-want) > 1e-9 {
			t.Fatalf("vertex %d at distance %v, want %v", i, d, want)
		}
	}
}

func TestAstroid(t *testing.T) {
	a := Astroid(Pt(0, 0), 2, 32)
	if a.Len() != 32 || !a.Closed {
		t.Fatalf("got closed=%v len=%d", a.Closed, a.Len())
	}
	// Cusps at the four compass points.
	diff(t, Pt(0, -2), a.Pts[0], cmpopts.EquateApprox(0, 1e-9))
	diff(t, Pt(2, 0), a.Pts[8], cmpopts.EquateApprox(0, 1e-9))
	// Strictly inside the bounding circle between cusps.
	if d := a.Pts[4].Distance(Pt(0, 0)); d >= 2 {
		t.Errorf("got distance %v between cusps, want < 2", d)
	}
}
