package algo

import (
	"container/heap"

	"github.com/hexlattice/graphbridge/engine"
	"github.com/hexlattice/graphbridge/errors"
)

// DijkstraShortestPath computes a minimum-weight path from source to target.
// Returns (nil, nil) when target is unreachable. Fails with illegal-argument
// on unknown vertices or negative edge weights.
func DijkstraShortestPath(g *engine.Graph, source, target int64) (*engine.GraphPath, error) {
	if !g.ContainsVertex(source) {
		return nil, errors.IllegalArgument("shortestpath_dijkstra", "no such vertex %d", source)
	}
	if !g.ContainsVertex(target) {
		return nil, errors.IllegalArgument("shortestpath_dijkstra", "no such vertex %d", target)
	}

	dist := map[int64]float64{source: 0}
	prevEdge := map[int64]int64{}
	prevVertex := map[int64]int64{}
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
		if u == target {
			break
		}

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
				return nil, errors.IllegalArgument("shortestpath_dijkstra", "negative weight on edge %d", eid)
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
				prevEdge[v] = eid
				prevVertex[v] = u
				heap.Push(pq, &vertexItem{vertex: v, priority: alt})
			}
		}
	}

	if !done[target] {
		return nil, nil
	}
	return assemblePath(source, target, dist[target], prevEdge, prevVertex), nil
}

// BFSShortestPath computes a minimum-hop path from source to target,
// treating every edge as unit weight. Returns (nil, nil) when unreachable.
func BFSShortestPath(g *engine.Graph, source, target int64) (*engine.GraphPath, error) {
	if !g.ContainsVertex(source) {
		return nil, errors.IllegalArgument("shortestpath_bfs", "no such vertex %d", source)
	}
	if !g.ContainsVertex(target) {
		return nil, errors.IllegalArgument("shortestpath_bfs", "no such vertex %d", target)
	}

	if source == target {
		return &engine.GraphPath{Start: source, End: target, Vertices: []int64{source}}, nil
	}

	prevEdge := map[int64]int64{}
	prevVertex := map[int64]int64{}
	visited := map[int64]bool{source: true}
	queue := []int64{source}

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
			if visited[v] {
				continue
			}
			visited[v] = true
			prevEdge[v] = eid
			prevVertex[v] = u
			if v == target {
				hops := float64(pathLen(source, target, prevVertex))
				return assemblePath(source, target, hops, prevEdge, prevVertex), nil
			}
			queue = append(queue, v)
		}
	}
	return nil, nil
}

func pathLen(source, target int64, prevVertex map[int64]int64) int {
	n := 0
	for v := target; v != source; v = prevVertex[v] {
		n++
	}
	return n
}

func assemblePath(source, target int64, weight float64, prevEdge, prevVertex map[int64]int64) *engine.GraphPath {
	var edges, vertices []int64
	for v := target; v != source; v = prevVertex[v] {
		edges = append(edges, prevEdge[v])
		vertices = append(vertices, v)
	}
	vertices = append(vertices, source)

	// Collected back-to-front; reverse in place.
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}
	for i, j := 0, len(vertices)-1; i < j; i, j = i+1, j-1 {
		vertices[i], vertices[j] = vertices[j], vertices[i]
	}

	return &engine.GraphPath{
		Start:    source,
		End:      target,
		Vertices: vertices,
		Edges:    edges,
		Weight:   weight,
	}
}

type vertexItem struct {
	vertex   int64
	priority float64
}

type vertexQueue []*vertexItem

func (q vertexQueue) Len() int           { return len(q) }
func (q vertexQueue) Less(i, j int) bool { return q[i].priority < q[j].priority }
func (q vertexQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *vertexQueue) Push(x any)        { *q = append(*q, x.(*vertexItem)) }
func (q *vertexQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}
