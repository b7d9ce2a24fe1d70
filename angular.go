package morph

// AngularAligner aligns two closed vertex cycles by their centroid-relative
// angular positions.
//
// Both vertex lists are brought into world orientation, each vertex's angle
// about its own shape's centroid is computed, and all n cyclic offsets of
// the second list are scored against the first; the offset with the minimal
// aggregated angular distance wins. Angular distance always takes the
// shortest circular path. O(n²) in the vertex count, which stays cheap for
// the tens-to-low-hundreds of vertices morphable shapes carry.
type AngularAligner struct {
	Norm Norm
	// Distance, when non-nil, replaces the built-in norm scoring.
	Distance AngleDistanceFunc
}

func (a AngularAligner) Align(verts1, verts2 []Point, ctx Context) ([]Point, []Point, error) {
	if len(verts1) != len(verts2) {
		return nil, nil, &LengthMismatchError{Len1: len(verts1), Len2: len(verts2)}
	}
	if len(verts1) == 0 {
		return verts1, verts2, nil
	}

	w1, w2 := rotatedCopies(verts1, verts2, ctx.Rotation1, ctx.Rotation2)
	c1 := vertexMean(w1)
	c2 := vertexMean(w2)

	angles1 := make([]float64, len(w1))
	angles2 := make([]float64, len(w2))
	for i := range w1 {
		angles1[i] = w1[i].AngleAbout(c1)
		angles2[i] = w2[i].AngleAbout(c2)
	}

	dist := a.Distance
	if dist == nil {
		dist = angleNormDistance(a.Norm)
	}

	bestOffset := 0
	bestDist := dist(angles1, angles2, 0)
	for offset := 1; offset < len(angles2); offset++ {
		if d := dist(angles1, angles2, offset); d < bestDist {
			bestDist = d
			bestOffset = offset
		}
	}

	if bestOffset == 0 {
		return verts1, verts2, nil
	}
	aligned := make([]Point, len(verts2))
	copy(aligned, verts2)
	rotateSlice(aligned, bestOffset)
	return verts1, aligned, nil
}
