package morph

import "fmt"

// Strategy names a loop-mapping strategy, as used in configuration.
type Strategy string

const (
	StrategySimple     Strategy = "simple"
	StrategyGreedy     Strategy = "greedy"
	StrategyDiscrete   Strategy = "discrete"
	StrategyClustering Strategy = "clustering"
	StrategyHungarian  Strategy = "hungarian"
)

// ParseStrategy converts a configuration string to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategySimple, StrategyGreedy, StrategyDiscrete, StrategyClustering, StrategyHungarian:
		return Strategy(s), nil
	default:
		return "", fmt.Errorf("morph: invalid loop mapper strategy %q (valid: simple, greedy, discrete, clustering, hungarian)", s)
	}
}

// A LoopMapper pairs two collections of loops of possibly unequal count,
// answering "which old loop becomes which new loop". The returned lists
// always have equal length; appearance and disappearance are represented by
// synthetic zero-loops. Inputs are never mutated.
type LoopMapper interface {
	Map(loops1, loops2 []Loop) (matched1, matched2 []Loop, err error)
}

// NewLoopMapper returns the mapper for a strategy name. The hungarian
// strategy requires an [AssignmentSolver] (see the assign package); the
// solver argument is ignored by the other strategies.
func NewLoopMapper(strategy Strategy, solver AssignmentSolver) (LoopMapper, error) {
	switch strategy {
	case StrategySimple:
		return SimpleMapper{}, nil
	case StrategyGreedy:
		return GreedyMapper{}, nil
	case StrategyDiscrete:
		return DiscreteMapper{}, nil
	case StrategyClustering:
		return NewClusteringMapper(), nil
	case StrategyHungarian:
		return HungarianMapper{Solver: solver}, nil
	default:
		return nil, fmt.Errorf("morph: unknown loop mapper strategy %q", strategy)
	}
}

// ZeroLoop returns a degenerate closed loop with the same vertex count as
// ref but every vertex collapsed onto ref's centroid. Interpolating toward
// or away from it reads as a pure collapse or growth in place.
func ZeroLoop(ref Loop) Loop {
	c := ref.Centroid()
	pts := make([]Point, len(ref.Pts))
	for i := range pts {
		pts[i] = c
	}
	return Loop{Pts: pts, Closed: true}
}

// zeroLoops returns one zero-loop per reference loop.
func zeroLoops(refs []Loop) []Loop {
	out := make([]Loop, len(refs))
	for i, l := range refs {
		out[i] = ZeroLoop(l)
	}
	return out
}

// mapEmptySides handles the degenerate cases shared by every strategy:
// both lists empty, or exactly one list empty (every loop on the non-empty
// side collapses to or grows from a zero-loop at its own centroid).
func mapEmptySides(loops1, loops2 []Loop) (m1, m2 []Loop, handled bool) {
	switch {
	case len(loops1) == 0 && len(loops2) == 0:
		return []Loop{}, []Loop{}, true
	case len(loops2) == 0:
		m1 = append([]Loop(nil), loops1...)
		return m1, zeroLoops(loops1), true
	case len(loops1) == 0:
		m2 = append([]Loop(nil), loops2...)
		return zeroLoops(loops2), m2, true
	}
	return nil, nil, false
}

// centroids returns the centroid of every loop.
func centroids(loops []Loop) []Point {
	out := make([]Point, len(loops))
	for i, l := range loops {
		out[i] = l.Centroid()
	}
	return out
}

// greedyMatchEqual pairs two equal-length loop lists by repeatedly assigning
// each destination to its nearest still-unused source. Greedy, not globally
// optimal.
func greedyMatchEqual(loops1, loops2 []Loop) ([]Loop, []Loop) {
	c1 := centroids(loops1)
	c2 := centroids(loops2)

	m1 := make([]Loop, 0, len(loops2))
	m2 := make([]Loop, 0, len(loops2))
	used := make([]bool, len(loops1))

	for i := range loops2 {
		best := -1
		bestDist := 0.0
		for j := range loops1 {
			if used[j] {
				continue
			}
			d := c1[j].Distance(c2[i])
			if best == -1 || d < bestDist {
				bestDist = d
				best = j
			}
		}
		if best >= 0 {
			used[best] = true
			m1 = append(m1, loops1[best])
			m2 = append(m2, loops2[i])
		}
	}
	return m1, m2
}

// nearestIndex returns the index of the point in candidates closest to pt.
func nearestIndex(pt Point, candidates []Point) int {
	best := 0
	bestDist := pt.Distance(candidates[0])
	for i, c := range candidates[1:] {
		if d := pt.Distance(c); d < bestDist {
			bestDist = d
			best = i + 1
		}
	}
	return best
}
