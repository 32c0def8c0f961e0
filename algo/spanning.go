package algo

import (
	"container/heap"
	"sort"

	"github.com/hexlattice/graphbridge/engine"
	"github.com/hexlattice/graphbridge/errors"
)

// KruskalMST computes a minimum spanning forest of an undirected graph and
// returns its total weight plus the chosen edge set.
func KruskalMST(g *engine.Graph) (float64, *engine.LongSet, error) {
	if g.Directed() {
		return 0, nil, errors.Unsupported("spanning_kruskal", "graph is directed")
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
			return edges[i].w < edges[j].w
		}
		return edges[i].id < edges[j].id
	})

	dsu := newUnionFind(g.Vertices())
	tree := engine.NewLongSet(true)
	total := 0.0
	for _, e := range edges {
		rec, err := g.EdgeByID(e.id)
		if err != nil {
			return 0, nil, err
		}
		if dsu.union(rec.Source, rec.Target) {
			tree.Add(e.id)
			total += e.w
		}
	}
	return total, tree, nil
}

// PrimMST computes a minimum spanning forest of an undirected graph with
// Prim's algorithm, restarting from each unreached vertex.
func PrimMST(g *engine.Graph) (float64, *engine.LongSet, error) {
	if g.Directed() {
		return 0, nil, errors.Unsupported("spanning_prim", "graph is directed")
	}

	inTree := map[int64]bool{}
	tree := engine.NewLongSet(true)
	total := 0.0

	for _, root := range g.Vertices() {
		if inTree[root] {
			continue
		}
		inTree[root] = true

		pq := &edgeQueue{}
		heap.Init(pq)
		if err := pushIncident(g, pq, root); err != nil {
			return 0, nil, err
		}

		for pq.Len() > 0 {
			item := heap.Pop(pq).(*edgeItem)
			rec, err := g.EdgeByID(item.edge)
			if err != nil {
				return 0, nil, err
			}
			var next int64
			switch {
			case !inTree[rec.Source]:
				next = rec.Source
			case !inTree[rec.Target]:
				next = rec.Target
			default:
				continue
			}
			inTree[next] = true
			tree.Add(item.edge)
			total += item.weight
			if err := pushIncident(g, pq, next); err != nil {
				return 0, nil, err
			}
		}
	}
	return total, tree, nil
}

func pushIncident(g *engine.Graph, pq *edgeQueue, v int64) error {
	eids, err := g.EdgesOf(v)
	if err != nil {
		return err
	}
	for _, eid := range eids {
		w, err := g.EdgeWeight(eid)
		if err != nil {
			return err
		}
		heap.Push(pq, &edgeItem{edge: eid, weight: w})
	}
	return nil
}

type edgeItem struct {
	edge   int64
	weight float64
}

type edgeQueue []*edgeItem

func (q edgeQueue) Len() int { return len(q) }
func (q edgeQueue) Less(i, j int) bool {
	if q[i].weight != q[j].weight {
		return q[i].weight < q[j].weight
	}
	return q[i].edge < q[j].edge
}
func (q edgeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *edgeQueue) Push(x any)   { *q = append(*q, x.(*edgeItem)) }
func (q *edgeQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}

type unionFind struct {
	parent map[int64]int64
	rank   map[int64]int
}

func newUnionFind(vertices []int64) *unionFind {
	u := &unionFind{
		parent: make(map[int64]int64, len(vertices)),
		rank:   make(map[int64]int, len(vertices)),
	}
	for _, v := range vertices {
		u.parent[v] = v
	}
	return u
}

func (u *unionFind) find(v int64) int64 {
	for u.parent[v] != v {
		u.parent[v] = u.parent[u.parent[v]]
		v = u.parent[v]
	}
	return v
}

// union merges the sets of a and b, reporting whether they were distinct.
func (u *unionFind) union(a, b int64) bool {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return false
	}
	if u.rank[ra] < u.rank[rb] {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
	if u.rank[ra] == u.rank[rb] {
		u.rank[ra]++
	}
	return true
}
