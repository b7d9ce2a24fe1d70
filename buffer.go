package morph

// A ContourBuffer provides reusable backing storage for contour
// interpolation, so per-frame calls allocate nothing once the buffer has
// grown to fit. Slices grow as needed and never shrink; a single buffer can
// serve transitions of varying size. Not safe for concurrent use, and the
// result of an interpolation into a buffer is only valid until the buffer's
// next use.
type ContourBuffer struct {
	outer []Point
	holes [][]Point
}

// outerFor returns the outer-point slice, resized to n.
func (b *ContourBuffer) outerFor(n int) []Point {
	if cap(b.outer) < n {
		b.outer = make([]Point, n)
	}
	b.outer = b.outer[:n]
	return b.outer
}

// holesFor returns count hole-point slices, each resized to the matching
// entry of sizes.
func (b *ContourBuffer) holesFor(sizes []int) [][]Point {
	if cap(b.holes) < len(sizes) {
		holes := make([][]Point, len(sizes))
		copy(holes, b.holes[:cap(b.holes)])
		b.holes = holes
	}
	b.holes = b.holes[:len(sizes)]
	for i, n := range sizes {
		if cap(b.holes[i]) < n {
			b.holes[i] = make([]Point, n)
		}
		b.holes[i] = b.holes[i][:n]
	}
	return b.holes
}
