package algo

import (
	"sort"

	"github.com/hexlattice/graphbridge/engine"
	"github.com/hexlattice/graphbridge/errors"
)

// GreedyMaximalWeightedMatching scans edges by descending weight and keeps
// every edge whose endpoints are still free. Returns the matching's total
// weight and its edge set. Self-loops are never matched.
func GreedyMaximalWeightedMatching(g *engine.Graph) (float64, *engine.LongSet, error) {
	if g.Directed() {
		return 0, nil, errors.Unsupported("matching_greedy", "graph is directed")
	}

	type weighted struct {
		id int64
		w  float64
	}
	edges := make([]weighted, 0, g.EdgeCount())
	for _, eid := range g.Edges() {
		w, err := g.EdgeWeight(eid)
		if err != nil {
			return 0, nil, err
		}
		edges = append(edges, weighted{id: eid, w: w})
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].w != edges[j].w {
			return edges[i].w > edges[j].w
		}
		return edges[i].id < edges[j].id
	})

	matched := map[int64]bool{}
	matching := engine.NewLongSet(true)
	total := 0.0
	for _, e := range edges {
		rec, err := g.EdgeByID(e.id)
		if err != nil {
			return 0, nil, err
		}
		if rec.Source == rec.Target || matched[rec.Source] || matched[rec.Target] {
			continue
		}
		matched[rec.Source] = true
		matched[rec.Target] = true
		matching.Add(e.id)
		total += e.w
	}
	return total, matching, nil
}
