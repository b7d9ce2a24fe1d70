package morph

import (
	"github.com/sirupsen/logrus"
)

// Engine interpolates values and whole states between keyframes.
//
// The zero value is usable; NewEngine additionally wires the standard logrus
// logger. Buffer, when set, backs contour interpolation with reusable
// storage (see [ContourBuffer]); results are value-identical with or without
// it. An Engine with a Buffer is not safe for concurrent use.
type Engine struct {
	Resolver *EasingResolver
	Logger   logrus.FieldLogger
	Buffer   *ContourBuffer
}

// NewEngine returns an Engine logging through the standard logrus logger.
func NewEngine() *Engine {
	return &Engine{Logger: logrus.StandardLogger()}
}

// InterpolateValue blends two values of the same dynamic type at eased time
// t. Dispatch is by type: Contours morph vertex-wise, Colors blend in CIE
// Lab, float64s lerp (shortest-path when isAngle), and every other type
// steps from v1 to v2 at t = 0.5.
func (e *Engine) InterpolateValue(v1, v2 any, t float64, isAngle bool) (any, error) {
	switch a := v1.(type) {
	case Contours:
		b, ok := v2.(Contours)
		if !ok {
			return Step(v1, v2, t), nil
		}
		return e.InterpolateContours(a, b, t)
	case Color:
		b, ok := v2.(Color)
		if !ok {
			return Step(v1, v2, t), nil
		}
		return a.Lerp(b, t), nil
	case float64:
		b, ok := v2.(float64)
		if !ok {
			return Step(v1, v2, t), nil
		}
		if isAngle {
			return AngleLerp(a, b, t), nil
		}
		return Lerp(a, b, t), nil
	default:
		return Step(v1, v2, t), nil
	}
}

// InterpolateContours blends two contour sets vertex-wise at eased time t.
//
// The outer loops must have equal vertex counts (the shape generator's job);
// a mismatch is a *LengthMismatchError. The result's outer loop is closed
// only when both inputs are closed. Hole lists are assumed pre-matched by a
// loop mapper: matched holes must also agree on vertex count, and a
// hole-count mismatch degrades the whole value to a step at t = 0.5 with a
// logged warning, since dropping or inventing holes mid-transition would be
// worse than a visible pop.
func (e *Engine) InterpolateContours(c1, c2 Contours, t float64) (Contours, error) {
	if c1.IsEmpty() != c2.IsEmpty() {
		// One side has no geometry at all. A single malformed pair must not
		// abort a whole scene render.
		if e.Logger != nil {
			e.Logger.WithFields(logrus.Fields{
				"vertices1": len(c1.Outer.Pts),
				"vertices2": len(c2.Outer.Pts),
			}).Warn("morph: contours empty on one side, stepping instead of interpolating")
		}
		return Step(c1, c2, t).Clone(), nil
	}
	if len(c1.Outer.Pts) != len(c2.Outer.Pts) {
		return Contours{}, &LengthMismatchError{Len1: len(c1.Outer.Pts), Len2: len(c2.Outer.Pts)}
	}
	if len(c1.Holes) != len(c2.Holes) {
		if e.Logger != nil {
			e.Logger.WithFields(logrus.Fields{
				"holes1": len(c1.Holes),
				"holes2": len(c2.Holes),
			}).Warn("morph: hole counts differ, stepping instead of interpolating")
		}
		return Step(c1, c2, t).Clone(), nil
	}
	for i := range c1.Holes {
		if len(c1.Holes[i].Pts) != len(c2.Holes[i].Pts) {
			return Contours{}, &LengthMismatchError{Len1: len(c1.Holes[i].Pts), Len2: len(c2.Holes[i].Pts)}
		}
	}

	var out Contours
	if e.Buffer != nil {
		out.Outer.Pts = e.Buffer.outerFor(len(c1.Outer.Pts))
		if len(c1.Holes) > 0 {
			sizes := make([]int, len(c1.Holes))
			for i, h := range c1.Holes {
				sizes[i] = len(h.Pts)
			}
			holePts := e.Buffer.holesFor(sizes)
			out.Holes = make([]Loop, len(c1.Holes))
			for i := range out.Holes {
				out.Holes[i].Pts = holePts[i]
			}
		}
	} else {
		out.Outer.Pts = make([]Point, len(c1.Outer.Pts))
		if len(c1.Holes) > 0 {
			out.Holes = make([]Loop, len(c1.Holes))
			for i, h := range c1.Holes {
				out.Holes[i].Pts = make([]Point, len(h.Pts))
			}
		}
	}

	lerpPoints(out.Outer.Pts, c1.Outer.Pts, c2.Outer.Pts, t)
	out.Outer.Closed = c1.Outer.Closed && c2.Outer.Closed
	for i := range out.Holes {
		lerpPoints(out.Holes[i].Pts, c1.Holes[i].Pts, c2.Holes[i].Pts, t)
		out.Holes[i].Closed = true
	}
	return out, nil
}

// lerpPoints interpolates a and b element-wise into dst. The endpoints copy
// verbatim so t = 0 and t = 1 reproduce the inputs bit-exactly.
func lerpPoints(dst, a, b []Point, t float64) {
	switch t {
	case 0:
		copy(dst, a)
	case 1:
		copy(dst, b)
	default:
		for i := range dst {
			dst[i] = a[i].Lerp(b[i], t)
		}
	}
}

// EasedState interpolates two states of the same concrete type at raw time
// t, applying per-field easing via the engine's resolver. The result is a
// clone of s1 for t < 0.5 and of s2 otherwise, with every interpolatable
// field overwritten; externally managed fields keep the clone's value, and
// non-interpolatable fields step at t = 0.5 without easing.
func (e *Engine) EasedState(s1, s2 State, t float64) (State, error) {
	var out State
	if t < 0.5 {
		out = s1.Clone()
	} else {
		out = s2.Clone()
	}

	for _, field := range s1.Fields() {
		if s1.IsExternal(field) {
			continue
		}
		v1 := s1.Value(field)
		v2 := s2.Value(field)

		if s1.IsNonInterpolatable(field) {
			if err := out.SetValue(field, Step(v1, v2, t)); err != nil {
				return nil, err
			}
			continue
		}
		if v1 == nil || v2 == nil {
			continue
		}

		fn := e.Resolver.Resolve(field, s1)
		v, err := e.InterpolateValue(v1, v2, fn(t), s1.IsAngle(field))
		if err != nil {
			return nil, err
		}
		if err := out.SetValue(field, v); err != nil {
			return nil, err
		}
	}
	return out, nil
}
