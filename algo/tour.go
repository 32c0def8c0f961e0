package algo

import (
	"sort"

	"github.com/hexlattice/graphbridge/engine"
	"github.com/hexlattice/graphbridge/errors"
)

// NearestNeighbourTour builds a closed tour of a complete undirected graph
// by always moving to the cheapest unvisited vertex, starting from the
// smallest vertex id.
func NearestNeighbourTour(g *engine.Graph) (*engine.GraphPath, error) {
	if err := requireCompleteTourGraph(g, "tour_nearest_neighbour"); err != nil {
		return nil, err
	}

	vertices := g.Vertices()
	start := vertices[0]
	visited := map[int64]bool{start: true}
	current := start

	path := &engine.GraphPath{Start: start, End: start, Vertices: []int64{start}}

	for len(visited) < len(vertices) {
		bestVertex := int64(-1)
		bestEdge := int64(-1)
		bestWeight := 0.0
		for _, v := range vertices {
			if visited[v] {
				continue
			}
			eid, w, err := cheapestEdgeBetween(g, current, v)
			if err != nil {
				return nil, err
			}
			if bestVertex < 0 || w < bestWeight {
				bestVertex, bestEdge, bestWeight = v, eid, w
			}
		}
		visited[bestVertex] = true
		path.Vertices = append(path.Vertices, bestVertex)
		path.Edges = append(path.Edges, bestEdge)
		path.Weight += bestWeight
		current = bestVertex
	}

	// Close the tour.
	if len(vertices) > 1 {
		eid, w, err := cheapestEdgeBetween(g, current, start)
		if err != nil {
			return nil, err
		}
		path.Vertices = append(path.Vertices, start)
		path.Edges = append(path.Edges, eid)
		path.Weight += w
	}
	return path, nil
}

// GreedyEdgeTour builds a closed tour of a complete undirected graph by
// taking edges in ascending weight order while they keep every vertex at
// degree two or less and close no premature cycle.
func GreedyEdgeTour(g *engine.Graph) (*engine.GraphPath, error) {
	if err := requireCompleteTourGraph(g, "tour_greedy_edge"); err != nil {
		return nil, err
	}

	vertices := g.Vertices()
	n := len(vertices)
	if n == 1 {
		return &engine.GraphPath{Start: vertices[0], End: vertices[0], Vertices: vertices}, nil
	}
	if n == 2 {
		// Two vertices: out and back over the cheapest edge.
		eid, w, err := cheapestEdgeBetween(g, vertices[0], vertices[1])
		if err != nil {
			return nil, err
		}
		return &engine.GraphPath{
			Start:    vertices[0],
			End:      vertices[0],
			Vertices: []int64{vertices[0], vertices[1], vertices[0]},
			Edges:    []int64{eid, eid},
			Weight:   2 * w,
		}, nil
	}

	type weighted struct {
		id   int64
		u, v int64
		w    float64
	}
	var edges []weighted
	for _, eid := range g.Edges() {
		rec, err := g.EdgeByID(eid)
		if err != nil {
			return nil, err
		}
		if rec.Source == rec.Target {
			continue
		}
		w, err := g.EdgeWeight(eid)
		if err != nil {
			return nil, err
		}
		edges = append(edges, weighted{id: eid, u: rec.Source, v: rec.Target, w: w})
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].w != edges[j].w {
			return edges[i].w < edges[j].w
		}
		return edges[i].id < edges[j].id
	})

	degree := map[int64]int{}
	dsu := newUnionFind(vertices)
	chosen := map[int64][]int64{} // vertex -> chosen edge ids
	taken := 0
	for _, e := range edges {
		if taken == n {
			break
		}
		if degree[e.u] >= 2 || degree[e.v] >= 2 {
			continue
		}
		// The final edge may close the single Hamiltonian cycle.
		if dsu.find(e.u) == dsu.find(e.v) && taken != n-1 {
			continue
		}
		dsu.union(e.u, e.v)
		degree[e.u]++
		degree[e.v]++
		chosen[e.u] = append(chosen[e.u], e.id)
		chosen[e.v] = append(chosen[e.v], e.id)
		taken++
	}
	if taken != n {
		return nil, errors.IllegalArgument("tour_greedy_edge", "could not close a tour")
	}

	// Walk the cycle starting from the smallest vertex.
	start := vertices[0]
	path := &engine.GraphPath{Start: start, End: start, Vertices: []int64{start}}
	current := start
	var lastEdge int64 = -1
	for i := 0; i < taken; i++ {
		var nextEdge int64 = -1
		for _, eid := range chosen[current] {
			if eid != lastEdge {
				nextEdge = eid
				break
			}
		}
		next, err := g.OppositeOf(nextEdge, current)
		if err != nil {
			return nil, err
		}
		w, err := g.EdgeWeight(nextEdge)
		if err != nil {
			return nil, err
		}
		path.Vertices = append(path.Vertices, next)
		path.Edges = append(path.Edges, nextEdge)
		path.Weight += w
		lastEdge = nextEdge
		current = next
	}
	return path, nil
}

func requireCompleteTourGraph(g *engine.Graph, op string) error {
	if g.Directed() {
		return errors.Unsupported(op, "graph is directed")
	}
	vertices := g.Vertices()
	if len(vertices) == 0 {
		return errors.IllegalArgument(op, "graph is empty")
	}
	for i, u := range vertices {
		for _, v := range vertices[i+1:] {
			if !g.ContainsEdgeBetween(u, v) {
				return errors.IllegalArgument(op, "graph is not complete: no edge between %d and %d", u, v)
			}
		}
	}
	return nil
}

func cheapestEdgeBetween(g *engine.Graph, u, v int64) (int64, float64, error) {
	best := int64(-1)
	bestWeight := 0.0
	for _, eid := range g.EdgesBetween(u, v) {
		w, err := g.EdgeWeight(eid)
		if err != nil {
			return 0, 0, err
		}
		if best < 0 || w < bestWeight {
			best, bestWeight = eid, w
		}
	}
	if best < 0 {
		return 0, 0, errors.IllegalArgument("tour", "no edge between %d and %d", u, v)
	}
	return best, bestWeight, nil
}
