package algo

import (
	"github.com/hexlattice/graphbridge/engine"
	"github.com/hexlattice/graphbridge/errors"
)

// GreedyVertexCover computes a vertex cover of an undirected graph by
// repeatedly taking the vertex with the best uncovered-degree-to-weight
// ratio. weights may be nil, in which case every vertex weighs 1. When a
// weight map is supplied it must cover every vertex.
//
// Returns the cover's total weight and the vertex set.
func GreedyVertexCover(g *engine.Graph, weights *engine.LongDoubleMap) (float64, *engine.LongSet, error) {
	if g.Directed() {
		return 0, nil, errors.Unsupported("vertexcover_greedy", "graph is directed")
	}

	weightOf := func(v int64) (float64, error) {
		if weights == nil {
			return 1.0, nil
		}
		w, err := weights.Get(v)
		if err != nil {
			return 0, errors.IllegalArgument("vertexcover_greedy", "no weight for vertex %d", v)
		}
		if w <= 0 {
			return 0, errors.IllegalArgument("vertexcover_greedy", "non-positive weight for vertex %d", v)
		}
		return w, nil
	}

	// Uncovered non-loop edges, tracked by id.
	uncovered := map[int64]bool{}
	for _, eid := range g.Edges() {
		rec, err := g.EdgeByID(eid)
		if err != nil {
			return 0, nil, err
		}
		if rec.Source != rec.Target {
			uncovered[eid] = true
		}
	}

	cover := engine.NewLongSet(true)
	total := 0.0

	for len(uncovered) > 0 {
		bestVertex := int64(-1)
		bestRatio := 0.0
		bestWeight := 0.0
		for _, v := range g.Vertices() {
			if cover.Contains(v) {
				continue
			}
			eids, err := g.EdgesOf(v)
			if err != nil {
				return 0, nil, err
			}
			covers := 0
			for _, eid := range eids {
				if uncovered[eid] {
					covers++
				}
			}
			if covers == 0 {
				continue
			}
			w, err := weightOf(v)
			if err != nil {
				return 0, nil, err
			}
			ratio := float64(covers) / w
			if bestVertex < 0 || ratio > bestRatio {
				bestVertex = v
				bestRatio = ratio
				bestWeight = w
			}
		}
		if bestVertex < 0 {
			break
		}

		cover.Add(bestVertex)
		total += bestWeight
		eids, err := g.EdgesOf(bestVertex)
		if err != nil {
			return 0, nil, err
		}
		for _, eid := range eids {
			delete(uncovered, eid)
		}
	}
	return total, cover, nil
}
