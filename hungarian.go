package morph

// An AssignmentSolver solves the linear assignment problem for a square cost
// matrix, returning for each row the column assigned to it. The assign
// subpackage provides an implementation backed by the Hungarian algorithm.
type AssignmentSolver interface {
	Solve(cost [][]float64) ([]int, error)
}

// HungarianMapper matches loops by minimizing the total centroid travel
// distance over all pairings, via an external [AssignmentSolver]. Unequal
// counts are handled by replicating the smaller side round-robin until the
// matrix is square, so every replica's assignment still maps back to a real
// loop.
type HungarianMapper struct {
	Solver AssignmentSolver
}

func (h HungarianMapper) Map(loops1, loops2 []Loop) ([]Loop, []Loop, error) {
	if m1, m2, ok := mapEmptySides(loops1, loops2); ok {
		return m1, m2, nil
	}
	if h.Solver == nil {
		return nil, nil, ErrNoSolver
	}

	n, m := len(loops1), len(loops2)
	switch {
	case n == m:
		return h.mapSquare(loops1, loops2)
	case n < m:
		// Replicate sources until there is one per destination.
		srcMap := make([]int, m)
		sources := make([]Loop, m)
		for i := 0; i < m; i++ {
			srcMap[i] = i % n
			sources[i] = loops1[srcMap[i]]
		}
		return h.mapSquare(sources, loops2)
	default:
		// Replicate destinations until there is one per source.
		dstMap := make([]int, n)
		dests := make([]Loop, n)
		for i := 0; i < n; i++ {
			dstMap[i] = i % m
			dests[i] = loops2[dstMap[i]]
		}
		return h.mapSquare(loops1, dests)
	}
}

func (h HungarianMapper) mapSquare(loops1, loops2 []Loop) ([]Loop, []Loop, error) {
	c1 := centroids(loops1)
	c2 := centroids(loops2)

	cost := make([][]float64, len(c1))
	for i, a := range c1 {
		row := make([]float64, len(c2))
		for j, b := range c2 {
			row[j] = a.Distance(b)
		}
		cost[i] = row
	}

	assignment, err := h.Solver.Solve(cost)
	if err != nil {
		return nil, nil, err
	}

	m1 := make([]Loop, len(loops1))
	m2 := make([]Loop, len(loops1))
	for i, j := range assignment {
		m1[i] = loops1[i]
		m2[i] = loops2[j]
	}
	return m1, m2, nil
}
