package algo

import (
	"github.com/hexlattice/graphbridge/engine"
)

// BipartitePartition two-colors the graph, ignoring edge direction. Returns
// whether the graph is bipartite and, when it is, the two vertex sides.
// A non-bipartite graph returns (false, nil, nil, nil).
func BipartitePartition(g *engine.Graph) (bool, *engine.LongSet, *engine.LongSet, error) {
	side := map[int64]int{}
	left := engine.NewLongSet(true)
	right := engine.NewLongSet(true)

	for _, start := range g.Vertices() {
		if _, seen := side[start]; seen {
			continue
		}
		side[start] = 0
		queue := []int64{start}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			neighbors, err := g.NeighborsOf(u)
			if err != nil {
				return false, nil, nil, err
			}
			for _, v := range neighbors {
				if v == u {
					return false, nil, nil, nil // self-loop is an odd cycle
				}
				if s, seen := side[v]; seen {
					if s == side[u] {
						return false, nil, nil, nil
					}
					continue
				}
				side[v] = 1 - side[u]
				queue = append(queue, v)
			}
		}
	}

	for _, v := range g.Vertices() {
		if side[v] == 0 {
			left.Add(v)
		} else {
			right.Add(v)
		}
	}
	return true, left, right, nil
}
