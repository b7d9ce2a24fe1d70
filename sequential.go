package morph

// SequentialAligner aligns two open chains. Open shapes already have a
// natural start-to-start correspondence; the only decision is whether the
// second chain should be traversed backwards, which it is when the reversed
// pairing has the smaller total euclidean distance.
type SequentialAligner struct{}

func (SequentialAligner) Align(verts1, verts2 []Point, ctx Context) ([]Point, []Point, error) {
	if len(verts1) != len(verts2) {
		return nil, nil, &LengthMismatchError{Len1: len(verts1), Len2: len(verts2)}
	}

	var forward, reversed float64
	n := len(verts1)
	for i := range verts1 {
		forward += verts1[i].Distance(verts2[i])
		reversed += verts1[i].Distance(verts2[n-1-i])
	}

	if reversed < forward {
		rev := make([]Point, n)
		for i, pt := range verts2 {
			rev[n-1-i] = pt
		}
		return verts1, rev, nil
	}
	return verts1, verts2, nil
}
