package morph

import (
	"errors"
	"fmt"
)

// A LengthMismatchError reports two vertex or hole lists whose lengths
// differ where a 1:1 correspondence is required. Counts are never silently
// truncated; equalizing them is the shape generator's job.
type LengthMismatchError struct {
	Len1, Len2 int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("morph: vertex lists must have same length: %d != %d", e.Len1, e.Len2)
}

// ErrNoSolver is returned by the Hungarian mapper when no assignment solver
// has been supplied. The greedy, clustering, discrete, and simple strategies
// work without one.
var ErrNoSolver = errors.New("morph: hungarian mapper requires an assignment solver (see the assign package); use greedy, clustering, discrete, or simple instead")

// Context carries the world-orientation and topology of a pair of shapes
// being aligned. Rotations are in degrees: vertices are stored in local
// coordinates, but alignment must be computed in world orientation.
type Context struct {
	Rotation1 float64
	Rotation2 float64
	Closed1   bool
	Closed2   bool
}

// An Aligner reorders (and possibly reverses) the second of two equal-length
// vertex sequences so that index i of both sequences corresponds, for
// twist-free 1:1 interpolation. The first sequence is returned unchanged;
// the second is returned as a reordered copy (or the original slice when no
// reordering was needed).
type Aligner interface {
	Align(verts1, verts2 []Point, ctx Context) ([]Point, []Point, error)
}

// NewAligner selects the alignment strategy for a pair of shapes:
// [SequentialAligner] for open↔open, [AngularAligner] for closed↔closed and
// [EuclideanAligner] for the mixed cases.
func NewAligner(closed1, closed2 bool, norm Norm) Aligner {
	switch {
	case !closed1 && !closed2:
		return SequentialAligner{}
	case closed1 && closed2:
		return AngularAligner{Norm: norm}
	default:
		return EuclideanAligner{Norm: norm}
	}
}

// rotatedCopies returns working copies of both vertex lists with the world
// rotations applied. When neither shape is rotated the originals are
// returned to avoid the copies.
func rotatedCopies(verts1, verts2 []Point, rot1, rot2 float64) ([]Point, []Point) {
	if rot1 == 0 && rot2 == 0 {
		return verts1, verts2
	}
	w1 := make([]Point, len(verts1))
	copy(w1, verts1)
	w2 := make([]Point, len(verts2))
	copy(w2, verts2)
	if rot1 != 0 {
		TransformInPlace(w1, RotateDegrees(rot1))
	}
	if rot2 != 0 {
		TransformInPlace(w2, RotateDegrees(rot2))
	}
	return w1, w2
}
