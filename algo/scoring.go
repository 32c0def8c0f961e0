package algo

import (
	"math"

	"github.com/hexlattice/graphbridge/engine"
	"github.com/hexlattice/graphbridge/errors"
)

// DegreeCentrality returns each vertex's degree divided by n-1, the maximum
// possible in a simple graph. A single-vertex graph scores 0.
func DegreeCentrality(g *engine.Graph) (*engine.LongDoubleMap, error) {
	scores := engine.NewLongDoubleMap(true)
	n := g.VertexCount()
	for _, v := range g.Vertices() {
		deg, err := g.DegreeOf(v)
		if err != nil {
			return nil, err
		}
		if n <= 1 {
			scores.Put(v, 0)
			continue
		}
		scores.Put(v, float64(deg)/float64(n-1))
	}
	return scores, nil
}

// ClosenessCentrality returns, per vertex, (reached-1) / sum of unit-hop
// distances to the vertices it can reach. Vertices reaching nothing score 0.
func ClosenessCentrality(g *engine.Graph) (*engine.LongDoubleMap, error) {
	scores := engine.NewLongDoubleMap(true)
	for _, source := range g.Vertices() {
		dist := map[int64]int64{source: 0}
		queue := []int64{source}
		sum := int64(0)
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			eids, err := g.OutgoingEdgesOf(u)
			if err != nil {
				return nil, err
			}
			for _, eid := range eids {
				v, err := g.OppositeOf(eid, u)
				if err != nil {
					return nil, err
				}
				if _, seen := dist[v]; seen {
					continue
				}
				dist[v] = dist[u] + 1
				sum += dist[v]
				queue = append(queue, v)
			}
		}
		reached := int64(len(dist) - 1)
		if reached == 0 || sum == 0 {
			scores.Put(source, 0)
			continue
		}
		scores.Put(source, float64(reached)/float64(sum))
	}
	return scores, nil
}

// PageRank runs power iteration with the given damping factor, stopping
// after maxIterations or when the score change drops below tolerance.
// Dangling vertices distribute their rank uniformly.
func PageRank(g *engine.Graph, damping float64, maxIterations int, tolerance float64) (*engine.LongDoubleMap, error) {
	if damping < 0 || damping >= 1 {
		return nil, errors.IllegalArgument("scoring_pagerank", "damping %v outside [0,1)", damping)
	}
	if maxIterations <= 0 {
		return nil, errors.IllegalArgument("scoring_pagerank", "non-positive iteration limit %d", maxIterations)
	}
	if tolerance < 0 {
		return nil, errors.IllegalArgument("scoring_pagerank", "negative tolerance %v", tolerance)
	}

	vertices := g.Vertices()
	n := len(vertices)
	scores := engine.NewLongDoubleMap(true)
	if n == 0 {
		return scores, nil
	}

	rank := make(map[int64]float64, n)
	for _, v := range vertices {
		rank[v] = 1.0 / float64(n)
	}

	for iter := 0; iter < maxIterations; iter++ {
		next := make(map[int64]float64, n)
		base := (1 - damping) / float64(n)
		for _, v := range vertices {
			next[v] = base
		}

		dangling := 0.0
		for _, u := range vertices {
			eids, err := g.OutgoingEdgesOf(u)
			if err != nil {
				return nil, err
			}
			if len(eids) == 0 {
				dangling += rank[u]
				continue
			}
			share := damping * rank[u] / float64(len(eids))
			for _, eid := range eids {
				v, err := g.OppositeOf(eid, u)
				if err != nil {
					return nil, err
				}
				next[v] += share
			}
		}
		if dangling > 0 {
			spread := damping * dangling / float64(n)
			for _, v := range vertices {
				next[v] += spread
			}
		}

		delta := 0.0
		for _, v := range vertices {
			delta += math.Abs(next[v] - rank[v])
		}
		rank = next
		if delta < tolerance {
			break
		}
	}

	for _, v := range vertices {
		scores.Put(v, rank[v])
	}
	return scores, nil
}
