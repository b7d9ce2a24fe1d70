package morph

import "github.com/dorjeduck/morph/ease"

// A State is a snapshot of an animated object's interpolatable fields at one
// keyframe. The engine interpolates two states of the same concrete type
// field by field; see [Engine.EasedState].
//
// Field names double as the keys for easing resolution. Implementations
// report per-field metadata the engine cannot infer from the value alone:
// whether a numeric field is an angle, whether a field must never be
// interpolated, and whether a field is managed outside the engine entirely.
type State interface {
	// Fields lists the field names of this state type, in a stable order.
	Fields() []string
	// Value returns the current value of a field.
	Value(field string) any
	// SetValue overwrites a field. The value has the same dynamic type as
	// the one Value returns for that field.
	SetValue(field string, v any) error
	// IsAngle reports whether a float64 field is an angle in degrees and
	// should interpolate along the shortest path.
	IsAngle(field string) bool
	// IsNonInterpolatable reports whether a field must step at the midpoint
	// instead of blending.
	IsNonInterpolatable(field string) bool
	// IsExternal reports whether a field is managed outside the engine and
	// must be left untouched by EasedState.
	IsExternal(field string) bool
	// EasingFor returns this instance's easing override for a field, if any.
	EasingFor(field string) (ease.Func, bool)
	// DefaultEasing returns the state type's default easing for a field, if
	// any.
	DefaultEasing(field string) (ease.Func, bool)
	// Clone returns a deep copy. EasedState never mutates its inputs.
	Clone() State
}

// ShapeState is a ready-made [State] for a filled, stroked shape: position,
// scale, rotation, opacity, two colors, and the shape's contours. Kind is
// structural and steps rather than blends. Easing holds per-instance easing
// overrides keyed by field name.
type ShapeState struct {
	X, Y     float64
	Scale    float64
	Rotation float64 // degrees
	Opacity  float64
	Fill     Color
	Stroke   Color
	Shape    Contours
	Kind     string
	Easing   map[string]ease.Func
}

var shapeStateFields = []string{
	"x", "y", "scale", "rotation", "opacity", "fill", "stroke", "shape", "kind",
}

// shapeStateDefaults is the type-level easing table, overridable per
// instance and per segment.
var shapeStateDefaults = map[string]ease.Func{
	"opacity": ease.InOutQuad,
}

func (s *ShapeState) Fields() []string { return shapeStateFields }

func (s *ShapeState) Value(field string) any {
	switch field {
	case "x":
		return s.X
	case "y":
		return s.Y
	case "scale":
		return s.Scale
	case "rotation":
		return s.Rotation
	case "opacity":
		return s.Opacity
	case "fill":
		return s.Fill
	case "stroke":
		return s.Stroke
	case "shape":
		return s.Shape
	case "kind":
		return s.Kind
	}
	return nil
}

func (s *ShapeState) SetValue(field string, v any) error {
	switch field {
	case "x":
		s.X = v.(float64)
	case "y":
		s.Y = v.(float64)
	case "scale":
		s.Scale = v.(float64)
	case "rotation":
		s.Rotation = v.(float64)
	case "opacity":
		s.Opacity = v.(float64)
	case "fill":
		s.Fill = v.(Color)
	case "stroke":
		s.Stroke = v.(Color)
	case "shape":
		s.Shape = v.(Contours)
	case "kind":
		s.Kind = v.(string)
	default:
		return &UnknownFieldError{Field: field}
	}
	return nil
}

func (s *ShapeState) IsAngle(field string) bool { return field == "rotation" }

func (s *ShapeState) IsNonInterpolatable(field string) bool { return field == "kind" }

func (s *ShapeState) IsExternal(field string) bool { return false }

func (s *ShapeState) EasingFor(field string) (ease.Func, bool) {
	f, ok := s.Easing[field]
	return f, ok
}

func (s *ShapeState) DefaultEasing(field string) (ease.Func, bool) {
	f, ok := shapeStateDefaults[field]
	return f, ok
}

func (s *ShapeState) Clone() State {
	c := *s
	c.Shape = s.Shape.Clone()
	if s.Easing != nil {
		c.Easing = make(map[string]ease.Func, len(s.Easing))
		for k, v := range s.Easing {
			c.Easing[k] = v
		}
	}
	return &c
}

// An UnknownFieldError reports a field name a state type does not have.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return "morph: unknown state field " + e.Field
}
