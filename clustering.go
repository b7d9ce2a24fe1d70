package morph

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// Default clustering parameters, used by [NewClusteringMapper].
const (
	DefaultKMeansIterations = 50
	DefaultKMeansSeed       = 42
)

// ClusteringMapper groups loops spatially with k-means before matching, so
// that nearby loops merge together instead of fanning out to whichever
// destination happens to be closest individually.
//
// Merging (n > m) clusters the n source centroids into m groups (k-means++
// seeding, fixed seed for reproducible runs), optionally rebalances the
// groups, then assigns each cluster to its nearest still-unused destination;
// every loop in a cluster converges on that destination. Splitting (n < m)
// falls back to greedy nearest-source-per-destination: true bidirectional
// clustering is an open problem, see the package documentation.
type ClusteringMapper struct {
	// MaxIterations caps the k-means refinement loop.
	MaxIterations int
	// Seed seeds the k-means++ initialization. Runs with equal seeds and
	// inputs produce identical clusterings.
	Seed int64
	// Balance rebalances cluster sizes after k-means so no cluster deviates
	// from the ideal n/m size by more than 40% (or a difference of one).
	Balance bool
}

// NewClusteringMapper returns a ClusteringMapper with the default iteration
// cap, seed, and rebalancing enabled.
func NewClusteringMapper() *ClusteringMapper {
	return &ClusteringMapper{
		MaxIterations: DefaultKMeansIterations,
		Seed:          DefaultKMeansSeed,
		Balance:       true,
	}
}

func (c *ClusteringMapper) Map(loops1, loops2 []Loop) ([]Loop, []Loop, error) {
	if m1, m2, ok := mapEmptySides(loops1, loops2); ok {
		return m1, m2, nil
	}

	switch {
	case len(loops1) == len(loops2):
		m1, m2 := greedyMatchEqual(loops1, loops2)
		return m1, m2, nil
	case len(loops1) > len(loops2):
		m1, m2 := c.mapMerging(loops1, loops2)
		return m1, m2, nil
	default:
		// n < m: greedy splitting, sources reused.
		return greedySplit(loops1, loops2)
	}
}

// mapMerging clusters the n sources into m groups and sends each group to
// one destination.
func (c *ClusteringMapper) mapMerging(loops1, loops2 []Loop) ([]Loop, []Loop) {
	k := len(loops2)
	pts := centroids(loops1)
	clusters := c.kmeans(pts, k)
	if c.Balance {
		clusters = c.rebalance(pts, clusters, k)
	}

	type group struct {
		centroid Point
		loops    []Loop
	}
	var groups []group
	for ci := 0; ci < k; ci++ {
		var members []Loop
		var memberPts []Point
		for i, assigned := range clusters {
			if assigned == ci {
				members = append(members, loops1[i])
				memberPts = append(memberPts, pts[i])
			}
		}
		if len(members) > 0 {
			groups = append(groups, group{centroid: vertexMean(memberPts), loops: members})
		}
	}

	// Greedy cluster→destination assignment with used-tracking keeps the
	// mapping one-to-one.
	destPts := centroids(loops2)
	usedDest := make([]bool, len(loops2))
	var m1, m2 []Loop

	for _, g := range groups {
		best := -1
		bestDist := 0.0
		for j, dc := range destPts {
			if usedDest[j] {
				continue
			}
			d := g.centroid.Distance(dc)
			if best == -1 || d < bestDist {
				bestDist = d
				best = j
			}
		}
		if best == -1 {
			continue
		}
		usedDest[best] = true
		for _, l := range g.loops {
			m1 = append(m1, l)
			m2 = append(m2, loops2[best])
		}
	}
	return m1, m2
}

// kmeans clusters pts into k groups and returns a cluster index per point.
// With k >= len(pts) every point is its own cluster.
func (c *ClusteringMapper) kmeans(pts []Point, k int) []int {
	if k >= len(pts) {
		clusters := make([]int, len(pts))
		for i := range clusters {
			clusters[i] = i
		}
		return clusters
	}

	maxIter := c.MaxIterations
	if maxIter <= 0 {
		maxIter = DefaultKMeansIterations
	}
	rng := rand.New(rand.NewSource(c.Seed))
	centers := kmeansPlusPlusInit(rng, pts, k)

	clusters := make([]int, len(pts))
	for iter := 0; iter < maxIter; iter++ {
		for i, pt := range pts {
			clusters[i] = nearestIndex(pt, centers)
		}

		next := make([]Point, k)
		for ci := range next {
			var members []Point
			for i, assigned := range clusters {
				if assigned == ci {
					members = append(members, pts[i])
				}
			}
			if len(members) > 0 {
				next[ci] = vertexMean(members)
			} else {
				// Empty cluster keeps its previous center.
				next[ci] = centers[ci]
			}
		}

		if centersConverged(centers, next) {
			break
		}
		centers = next
	}
	return clusters
}

// kmeansPlusPlusInit picks initial centers with probability proportional to
// the squared distance from the nearest already-chosen center.
func kmeansPlusPlusInit(rng *rand.Rand, pts []Point, k int) []Point {
	centers := make([]Point, 0, k)
	centers = append(centers, pts[rng.Intn(len(pts))])

	d2 := make([]float64, len(pts))
	cum := make([]float64, len(pts))
	for len(centers) < k {
		for i, pt := range pts {
			best := math.Inf(1)
			for _, c := range centers {
				if d := pt.DistanceSquared(c); d < best {
					best = d
				}
			}
			d2[i] = best
		}
		total := floats.Sum(d2)
		if total == 0 {
			// Every point already is a center.
			centers = append(centers, pts[rng.Intn(len(pts))])
			continue
		}
		floats.CumSum(cum, d2)
		r := rng.Float64() * total
		idx := len(pts) - 1
		for i, c := range cum {
			if c >= r {
				idx = i
				break
			}
		}
		centers = append(centers, pts[idx])
	}
	return centers
}

func centersConverged(a, b []Point) bool {
	const eps = 1e-6
	for i := range a {
		if math.Abs(a[i].X-b[i].X) > eps || math.Abs(a[i].Y-b[i].Y) > eps {
			return false
		}
	}
	return true
}

// rebalance moves points from oversized clusters to undersized ones until no
// cluster's size deviates from the ideal n/k by more than the tolerance
// (40% of the ideal, or a difference of one, whichever is larger). The point
// moved is always the member of the oversized cluster closest to the target
// cluster's centroid.
func (c *ClusteringMapper) rebalance(pts []Point, clusters []int, k int) []int {
	n := len(pts)
	if n <= k {
		return clusters
	}

	ideal := float64(n) / float64(k)
	maxDev := math.Max(1, ideal*0.4)

	// Cluster centroids are computed once, up front; moving a handful of
	// points does not shift them enough to matter for target selection.
	clusterCentroids := make([]Point, k)
	for ci := 0; ci < k; ci++ {
		var members []Point
		for i, assigned := range clusters {
			if assigned == ci {
				members = append(members, pts[i])
			}
		}
		if len(members) > 0 {
			clusterCentroids[ci] = vertexMean(members)
		}
	}

	out := make([]int, len(clusters))
	copy(out, clusters)

	for iter := 0; iter < n; iter++ {
		sizes := make([]int, k)
		for _, assigned := range out {
			sizes[assigned]++
		}

		maxCluster, minCluster := 0, 0
		for ci := 1; ci < k; ci++ {
			if sizes[ci] > sizes[maxCluster] {
				maxCluster = ci
			}
			if sizes[ci] < sizes[minCluster] {
				minCluster = ci
			}
		}

		maxSize := float64(sizes[maxCluster])
		minSize := float64(sizes[minCluster])
		if maxSize-minSize <= 1 {
			break
		}
		if math.Abs(maxSize-ideal) <= maxDev && math.Abs(minSize-ideal) <= maxDev {
			break
		}

		best := -1
		bestDist := 0.0
		for i, assigned := range out {
			if assigned != maxCluster {
				continue
			}
			d := pts[i].Distance(clusterCentroids[minCluster])
			if best == -1 || d < bestDist {
				bestDist = d
				best = i
			}
		}
		if best == -1 {
			break
		}
		out[best] = minCluster
	}
	return out
}
