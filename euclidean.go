package morph

import "fmt"

// EuclideanAligner aligns an open shape with a closed one.
//
// Angular alignment makes no sense for an open chain, so the closed shape is
// rotated through all cyclic offsets and scored by straight-line distance
// against the fixed open shape. Closed loops store each vertex once, so
// applying the winning offset is a pure reordering and loses nothing.
type EuclideanAligner struct {
	Norm Norm
	// Distance, when non-nil, replaces the built-in norm scoring.
	Distance PointDistanceFunc
}

func (a EuclideanAligner) Align(verts1, verts2 []Point, ctx Context) ([]Point, []Point, error) {
	if len(verts1) != len(verts2) {
		return nil, nil, &LengthMismatchError{Len1: len(verts1), Len2: len(verts2)}
	}
	if ctx.Closed1 == ctx.Closed2 {
		return nil, nil, fmt.Errorf("morph: euclidean aligner requires exactly one open and one closed shape")
	}
	if len(verts1) == 0 {
		return verts1, verts2, nil
	}

	w1, w2 := rotatedCopies(verts1, verts2, ctx.Rotation1, ctx.Rotation2)

	// Orient the scan so the open shape is fixed and the closed one rotates.
	openWork, closedWork := w1, w2
	closedOrig := verts2
	swapped := false
	if ctx.Closed1 {
		openWork, closedWork = w2, w1
		closedOrig = verts1
		swapped = true
	}

	dist := a.Distance
	if dist == nil {
		dist = pointNormDistance(a.Norm)
	}

	bestOffset := 0
	bestDist := dist(openWork, closedWork, 0)
	for offset := 1; offset < len(closedWork); offset++ {
		if d := dist(openWork, closedWork, offset); d < bestDist {
			bestDist = d
			bestOffset = offset
		}
	}

	aligned := make([]Point, len(closedOrig))
	copy(aligned, closedOrig)
	rotateSlice(aligned, bestOffset)

	if swapped {
		return aligned, verts2, nil
	}
	return verts1, aligned, nil
}
