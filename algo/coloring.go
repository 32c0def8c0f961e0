package algo

import (
	"sort"

	"github.com/hexlattice/graphbridge/engine"
	"github.com/hexlattice/graphbridge/errors"
)

// ColoringOrder selects the vertex order used by the greedy coloring.
type ColoringOrder int

const (
	// OrderNatural colors vertices in ascending id order.
	OrderNatural ColoringOrder = iota
	// OrderLargestDegreeFirst colors high-degree vertices first.
	OrderLargestDegreeFirst
)

// GreedyColoring colors an undirected graph greedily and returns the number
// of colors used plus the vertex-to-color assignment.
func GreedyColoring(g *engine.Graph, order ColoringOrder) (int64, *engine.LongLongMap, error) {
	if g.Directed() {
		return 0, nil, errors.Unsupported("coloring_greedy", "graph is directed")
	}

	vertices := g.Vertices()
	switch order {
	case OrderNatural:
		// already ascending
	case OrderLargestDegreeFirst:
		deg := make(map[int64]int64, len(vertices))
		for _, v := range vertices {
			d, err := g.DegreeOf(v)
			if err != nil {
				return 0, nil, err
			}
			deg[v] = d
		}
		sort.SliceStable(vertices, func(i, j int) bool {
			return deg[vertices[i]] > deg[vertices[j]]
		})
	default:
		return 0, nil, errors.IllegalArgument("coloring_greedy", "unknown ordering %d", int(order))
	}

	assignment := engine.NewLongLongMap(true)
	colorOf := make(map[int64]int64, len(vertices))
	used := int64(0)

	for _, v := range vertices {
		neighbors, err := g.NeighborsOf(v)
		if err != nil {
			return 0, nil, err
		}
		taken := map[int64]bool{}
		for _, u := range neighbors {
			if c, ok := colorOf[u]; ok {
				taken[c] = true
			}
		}
		color := int64(0)
		for taken[color] {
			color++
		}
		colorOf[v] = color
		assignment.Put(v, color)
		if color+1 > used {
			used = color + 1
		}
	}
	return used, assignment, nil
}
