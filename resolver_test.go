package morph

import (
	"testing"

	"github.com/dorjeduck/morph/ease"
)

func TestEasingResolverPriority(t *testing.T) {
	st := &ShapeState{
		Easing: map[string]ease.Func{"opacity": ease.InCubic, "x": ease.InQuad},
	}
	r := &EasingResolver{Segment: map[string]ease.Func{"opacity": ease.OutQuad}}

	// Segment override wins over instance and type default.
	if got := r.Resolve("opacity", st)(0.5); got != ease.OutQuad(0.5) {
		t.Errorf("got %v, want segment override", got)
	}
	// Instance override wins over type default and linear.
	if got := r.Resolve("x", st)(0.5); got != ease.InQuad(0.5) {
		t.Errorf("got %v, want instance override", got)
	}
	// Type default when nothing overrides.
	plain := &ShapeState{}
	if got := r.Resolve("opacity", plain); got(0.25) != ease.InOutQuad(0.25) {
		t.Error("want type default for opacity")
	}
	// Linear as the last resort.
	if got := r.Resolve("x", plain); got(0.3) != 0.3 {
		t.Error("want linear fallback")
	}
	// A nil resolver still resolves.
	var nilr *EasingResolver
	if got := nilr.Resolve("x", plain); got(0.3) != 0.3 {
		t.Error("want linear fallback from nil resolver")
	}
}

func TestShapeStateRoundTrip(t *testing.T) {
	s := &ShapeState{X: 1, Y: 2, Scale: 3, Rotation: 4, Opacity: 0.5, Kind: "star"}
	for _, f := range s.Fields() {
		v := s.Value(f)
		if v == nil {
			t.Fatalf("no value for field %q", f)
		}
		if err := s.SetValue(f, v); err != nil {
			t.Fatalf("%s: %v", f, err)
		}
	}
	if err := s.SetValue("nope", 1.0); err == nil {
		t.Error("expected error for unknown field")
	}

	if !s.IsAngle("rotation") || s.IsAngle("x") {
		t.Error("rotation is the only angle field")
	}
	if !s.IsNonInterpolatable("kind") || s.IsNonInterpolatable("opacity") {
		t.Error("kind is the only non-interpolatable field")
	}
}

func TestShapeStateClone(t *testing.T) {
	s := &ShapeState{
		X:      1,
		Shape:  SingleLoop([]Point{Pt(0, 0), Pt(1, 0), Pt(1, 1)}, true),
		Easing: map[string]ease.Func{"x": ease.InQuad},
	}
	c := s.Clone().(*ShapeState)

	c.Shape.Outer.Pts[0] = Pt(9, 9)
	c.Easing["y"] = ease.OutQuad

	diff(t, Pt(0, 0), s.Shape.Outer.Pts[0])
	if _, ok := s.Easing["y"]; ok {
		t.Error("clone shares the easing map")
	}
}
