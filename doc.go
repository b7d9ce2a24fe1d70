// Package morph establishes correspondence between vector shapes and
// interpolates between them, for parametric animation of polygons and
// polylines.
//
// Morphing one shape into another breaks into three problems, each with its
// own abstraction:
//
//   - Vertex alignment ([Aligner]): given two equal-length vertex sequences,
//     find the cyclic offset (and possibly direction) that pairs them with
//     the least total travel, so the morph does not twist.
//   - Loop mapping ([LoopMapper]): given two collections of loops of
//     possibly different counts, decide which old loop becomes which new
//     loop, inserting degenerate zero-loops where loops appear or disappear.
//   - Interpolation ([Engine]): blend aligned geometry, colors (in CIE Lab),
//     angles (shortest path), and scalars at an eased time, field by field
//     over a [State].
//
// The coordinate system is y-down with angles measured clockwise from
// north, matching common 2D canvas conventions. Vertex counts are never
// equalized here; generating both sides of a transition at the same
// resolution is the shape generator's job (see Circle, Rectangle and
// friends).
//
// Splitting one loop into several via spatial clustering is deliberately
// not attempted: [ClusteringMapper] clusters only when merging and falls
// back to greedy nearest-source matching when the destination side is
// larger.
package morph
