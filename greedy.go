package morph

// GreedyMapper matches loops by nearest centroid, O(n·m).
//
// For equal counts each loop is used exactly once (greedy, not globally
// optimal). For unequal counts the smaller side is reused: each extra loop
// on the larger side attaches to its single nearest neighbour, producing
// one-to-many merges or splits.
type GreedyMapper struct{}

func (GreedyMapper) Map(loops1, loops2 []Loop) ([]Loop, []Loop, error) {
	if m1, m2, ok := mapEmptySides(loops1, loops2); ok {
		return m1, m2, nil
	}

	switch {
	case len(loops1) == len(loops2):
		m1, m2 := greedyMatchEqual(loops1, loops2)
		return m1, m2, nil
	case len(loops1) < len(loops2):
		return greedySplit(loops1, loops2)
	default:
		return greedyMerge(loops1, loops2)
	}
}

// greedySplit handles n < m: each destination finds its nearest source, and
// sources may be reused.
func greedySplit(loops1, loops2 []Loop) ([]Loop, []Loop, error) {
	c1 := centroids(loops1)
	c2 := centroids(loops2)

	m1 := make([]Loop, len(loops2))
	m2 := make([]Loop, len(loops2))
	for i := range loops2 {
		m1[i] = loops1[nearestIndex(c2[i], c1)]
		m2[i] = loops2[i]
	}
	return m1, m2, nil
}

// greedyMerge handles n > m: each source finds its nearest destination, and
// destinations may be reused.
func greedyMerge(loops1, loops2 []Loop) ([]Loop, []Loop, error) {
	c1 := centroids(loops1)
	c2 := centroids(loops2)

	m1 := make([]Loop, len(loops1))
	m2 := make([]Loop, len(loops1))
	for i := range loops1 {
		m1[i] = loops1[i]
		m2[i] = loops2[nearestIndex(c1[i], c2)]
	}
	return m1, m2, nil
}
