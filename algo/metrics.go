package algo

import (
	"container/heap"
	"math"

	"github.com/hexlattice/graphbridge/engine"
	"github.com/hexlattice/graphbridge/errors"
)

// shortestDistances runs single-source Dijkstra and returns the distance to
// every reachable vertex.
func shortestDistances(g *engine.Graph, op string, source int64) (map[int64]float64, error) {
	dist := map[int64]float64{source: 0}
	done := map[int64]bool{}

	pq := &vertexQueue{{vertex: source, priority: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*vertexItem)
		u := item.vertex
		if done[u] {
			continue
		}
		done[u] = true

		eids, err := g.OutgoingEdgesOf(u)
		if err != nil {
			return nil, err
		}
		for _, eid := range eids {
			w, err := g.EdgeWeight(eid)
			if err != nil {
				return nil, err
			}
			if w < 0 {
				return nil, errors.IllegalArgument(op, "negative weight on edge %d", eid)
			}
			v, err := g.OppositeOf(eid, u)
			if err != nil {
				return nil, err
			}
			if done[v] {
				continue
			}
			alt := dist[u] + w
			if old, seen := dist[v]; !seen || alt < old {
				dist[v] = alt
				heap.Push(pq, &vertexItem{vertex: v, priority: alt})
			}
		}
	}
	return dist, nil
}

func eccentricities(g *engine.Graph, op string) (map[int64]float64, error) {
	vs := g.Vertices()
	ecc := make(map[int64]float64, len(vs))
	for _, u := range vs {
		dist, err := shortestDistances(g, op, u)
		if err != nil {
			return nil, err
		}
		worst := 0.0
		for _, v := range vs {
			d, reached := dist[v]
			if !reached {
				worst = math.Inf(1)
				break
			}
			if d > worst {
				worst = d
			}
		}
		ecc[u] = worst
	}
	return ecc, nil
}

// Diameter computes the largest eccentricity: the longest shortest path in
// the graph. Empty graphs measure 0; disconnected graphs measure infinite.
func Diameter(g *engine.Graph) (float64, error) {
	if g.VertexCount() == 0 {
		return 0, nil
	}
	ecc, err := eccentricities(g, "metrics_diameter")
	if err != nil {
		return 0, err
	}
	d := 0.0
	for _, e := range ecc {
		if e > d {
			d = e
		}
	}
	return d, nil
}

// Radius computes the smallest eccentricity. Empty graphs measure 0;
// disconnected graphs measure infinite.
func Radius(g *engine.Graph) (float64, error) {
	if g.VertexCount() == 0 {
		return 0, nil
	}
	ecc, err := eccentricities(g, "metrics_radius")
	if err != nil {
		return 0, err
	}
	r := math.Inf(1)
	for _, e := range ecc {
		if e < r {
			r = e
		}
	}
	return r, nil
}

// Girth computes the number of edges on a shortest cycle. Self loops give
// girth 1, parallel undirected edges give girth 2, and acyclic graphs have
// infinite girth. On directed graphs cycles must respect edge direction.
func Girth(g *engine.Graph) (float64, error) {
	for _, eid := range g.Edges() {
		e, err := g.EdgeByID(eid)
		if err != nil {
			return 0, err
		}
		if e.Source == e.Target {
			return 1, nil
		}
	}

	if g.Directed() {
		return directedGirth(g)
	}
	return undirectedGirth(g)
}

func undirectedGirth(g *engine.Graph) (float64, error) {
	// A parallel pair is the shortest possible loop-free cycle.
	if g.AllowsMultipleEdges() {
		for _, eid := range g.Edges() {
			e, err := g.EdgeByID(eid)
			if err != nil {
				return 0, err
			}
			if len(g.EdgesBetween(e.Source, e.Target)) > 1 {
				return 2, nil
			}
		}
	}

	best := math.Inf(1)
	for _, root := range g.Vertices() {
		dist := map[int64]int64{root: 0}
		parentEdge := map[int64]int64{root: -1}
		queue := []int64{root}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			if float64(dist[u]) >= best/2 {
				continue
			}
			eids, err := g.EdgesOf(u)
			if err != nil {
				return 0, err
			}
			for _, eid := range eids {
				if eid == parentEdge[u] {
					continue
				}
				v, err := g.OppositeOf(eid, u)
				if err != nil {
					return 0, err
				}
				if dv, seen := dist[v]; seen {
					if cycle := float64(dist[u] + dv + 1); cycle < best {
						best = cycle
					}
					continue
				}
				dist[v] = dist[u] + 1
				parentEdge[v] = eid
				queue = append(queue, v)
			}
		}
	}
	return best, nil
}

func directedGirth(g *engine.Graph) (float64, error) {
	best := math.Inf(1)
	for _, root := range g.Vertices() {
		dist := map[int64]int64{root: 0}
		queue := []int64{root}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			if float64(dist[u]+1) >= best {
				continue
			}
			eids, err := g.OutgoingEdgesOf(u)
			if err != nil {
				return 0, err
			}
			for _, eid := range eids {
				e, err := g.EdgeByID(eid)
				if err != nil {
					return 0, err
				}
				if e.Target == root {
					if cycle := float64(dist[u] + 1); cycle < best {
						best = cycle
					}
					continue
				}
				if _, seen := dist[e.Target]; !seen {
					dist[e.Target] = dist[u] + 1
					queue = append(queue, e.Target)
				}
			}
		}
	}
	return best, nil
}

// CountTriangles counts the triangles of an undirected graph. Each triangle
// is counted once regardless of edge multiplicity.
func CountTriangles(g *engine.Graph) (int64, error) {
	if g.Directed() {
		return 0, errors.Unsupported("metrics_triangles", "graph is directed")
	}

	adj := map[int64]map[int64]bool{}
	for _, v := range g.Vertices() {
		neighbors, err := g.NeighborsOf(v)
		if err != nil {
			return 0, err
		}
		set := make(map[int64]bool, len(neighbors))
		for _, u := range neighbors {
			if u != v {
				set[u] = true
			}
		}
		adj[v] = set
	}

	var triple int64
	for u, set := range adj {
		for v := range set {
			if v <= u {
				continue
			}
			for w := range adj[v] {
				if w > v && set[w] {
					triple++
				}
			}
		}
	}
	return triple, nil
}
