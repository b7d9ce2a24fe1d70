package morph

// DiscreteMapper avoids merge/split fan-in visuals: loops either move,
// shrink to zero in place, or grow from zero in place, but never share a
// partner.
//
// For n > m it selects the m sources closest to the destinations to move
// and lets the remaining n−m shrink in place; n < m is handled
// symmetrically with destinations growing in place. Selection is greedy:
// repeatedly pick the remaining candidate with the smallest
// minimum-distance to any element on the other side.
type DiscreteMapper struct{}

func (d DiscreteMapper) Map(loops1, loops2 []Loop) ([]Loop, []Loop, error) {
	if m1, m2, ok := mapEmptySides(loops1, loops2); ok {
		return m1, m2, nil
	}

	switch {
	case len(loops1) == len(loops2):
		m1, m2 := greedyMatchEqual(loops1, loops2)
		return m1, m2, nil
	case len(loops1) > len(loops2):
		return d.mapWithDisappearance(loops1, loops2)
	default:
		return d.mapWithAppearance(loops1, loops2)
	}
}

// mapWithDisappearance handles n > m: the m sources closest to the
// destinations move, the rest shrink to zero at their own positions.
func (DiscreteMapper) mapWithDisappearance(loops1, loops2 []Loop) ([]Loop, []Loop, error) {
	selected := selectClosest(centroids(loops1), centroids(loops2), len(loops2))

	moving := make([]Loop, 0, len(selected))
	for _, i := range selected {
		moving = append(moving, loops1[i])
	}
	var staying []Loop
	for i := range loops1 {
		if !containsInt(selected, i) {
			staying = append(staying, loops1[i])
		}
	}

	m1, m2 := greedyMatchEqual(moving, loops2)
	m1 = append(m1, staying...)
	m2 = append(m2, zeroLoops(staying)...)
	return m1, m2, nil
}

// mapWithAppearance handles n < m: the n destinations closest to the
// sources receive movement, the rest grow from zero at their own positions.
func (DiscreteMapper) mapWithAppearance(loops1, loops2 []Loop) ([]Loop, []Loop, error) {
	selected := selectClosest(centroids(loops2), centroids(loops1), len(loops1))

	receiving := make([]Loop, 0, len(selected))
	for _, i := range selected {
		receiving = append(receiving, loops2[i])
	}
	var appearing []Loop
	for i := range loops2 {
		if !containsInt(selected, i) {
			appearing = append(appearing, loops2[i])
		}
	}

	m1, m2 := greedyMatchEqual(loops1, receiving)
	m1 = append(m1, zeroLoops(appearing)...)
	m2 = append(m2, appearing...)
	return m1, m2, nil
}

// selectClosest greedily picks count indices from candidates, each time
// taking the remaining candidate with the smallest distance to any anchor.
func selectClosest(candidates, anchors []Point, count int) []int {
	selected := make([]int, 0, count)
	taken := make([]bool, len(candidates))

	for len(selected) < count {
		best := -1
		bestDist := 0.0
		for i, c := range candidates {
			if taken[i] {
				continue
			}
			d := c.Distance(anchors[nearestIndex(c, anchors)])
			if best == -1 || d < bestDist {
				bestDist = d
				best = i
			}
		}
		if best == -1 {
			break
		}
		taken[best] = true
		selected = append(selected, best)
	}
	return selected
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
