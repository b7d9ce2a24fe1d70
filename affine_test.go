package morph

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestRotateDegrees(t *testing.T) {
	// Positive rotation is clockwise in a y-down space.
	got := Pt(1, -1).Transform(RotateDegrees(90))
	diff(t, Pt(1, 1), got, cmpopts.EquateApprox(0, 1e-12))
}

func TestTransformInPlace(t *testing.T) {
	pts := []Point{Pt(1, 0), Pt(0, 1)}
	TransformInPlace(pts, Translate(Vec(2, 3)))
	diff(t, []Point{Pt(3, 3), Pt(2, 4)}, pts)
}
