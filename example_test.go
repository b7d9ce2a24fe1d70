package morph_test

import (
	"fmt"

	"github.com/dorjeduck/morph"
)

// Morph a circle halfway into a rectangle: sample both at the same vertex
// count, align the vertices, then interpolate.
func Example() {
	circle := morph.Circle(morph.Pt(50, 50), 40, 64)
	rect := morph.Rectangle(morph.Rect{X0: 10, Y0: 10, X1: 90, Y1: 90}, 64)

	aligner := morph.NewAligner(true, true, morph.NormL1)
	v1, v2, err := aligner.Align(circle.Pts, rect.Pts, morph.Context{Closed1: true, Closed2: true})
	if err != nil {
		panic(err)
	}

	engine := morph.NewEngine()
	mid, err := engine.InterpolateContours(
		morph.SingleLoop(v1, true),
		morph.SingleLoop(v2, true),
		0.5,
	)
	if err != nil {
		panic(err)
	}

	c := mid.Centroid()
	fmt.Printf("vertices: %d closed: %v centroid: (%.0f, %.0f)\n",
		mid.Outer.Len(), mid.Outer.Closed, c.X, c.Y)
	// Output:
	// vertices: 64 closed: true centroid: (50, 50)
}

// Map two collections of loops of different counts; zero-loops stand in for
// loops that appear or disappear.
func ExampleLoopMapper() {
	loops1 := []morph.Loop{
		morph.Circle(morph.Pt(0, 0), 1, 16),
		morph.Circle(morph.Pt(10, 0), 1, 16),
	}
	loops2 := []morph.Loop{
		morph.Circle(morph.Pt(5, 0), 2, 16),
	}

	mapper, err := morph.NewLoopMapper(morph.StrategyGreedy, nil)
	if err != nil {
		panic(err)
	}
	m1, m2, err := mapper.Map(loops1, loops2)
	if err != nil {
		panic(err)
	}
	fmt.Println(len(m1), len(m2))
	// Output:
	// 2 2
}
