package algo

import (
	"github.com/hexlattice/graphbridge/engine"
	"github.com/hexlattice/graphbridge/errors"
)

// MaximumClique finds a maximum clique of an undirected graph with
// Bron-Kerbosch search and pivoting. Exponential in the worst case; there is
// no caller-side abort once invoked.
func MaximumClique(g *engine.Graph) (*engine.LongSet, error) {
	if g.Directed() {
		return nil, errors.Unsupported("clique_maximum", "graph is directed")
	}

	adj, err := neighborSets(g)
	if err != nil {
		return nil, err
	}

	var best []int64
	var expand func(r, p, x []int64)
	expand = func(r, p, x []int64) {
		if len(p) == 0 && len(x) == 0 {
			if len(r) > len(best) {
				best = append([]int64(nil), r...)
			}
			return
		}
		if len(r)+len(p) <= len(best) {
			return // cannot beat the incumbent
		}

		pivot := choosePivot(p, x, adj)
		var candidates []int64
		for _, v := range p {
			if !adj[pivot][v] {
				candidates = append(candidates, v)
			}
		}
		for _, v := range candidates {
			expand(
				append(append([]int64(nil), r...), v),
				intersect(p, adj[v]),
				intersect(x, adj[v]),
			)
			p = remove(p, v)
			x = append(x, v)
		}
	}
	expand(nil, g.Vertices(), nil)

	clique := engine.NewLongSet(true)
	for _, v := range best {
		clique.Add(v)
	}
	return clique, nil
}

// GreedyMaximalClique grows a maximal clique from the highest-degree vertex.
// Cheap, but only maximal, not maximum.
func GreedyMaximalClique(g *engine.Graph) (*engine.LongSet, error) {
	if g.Directed() {
		return nil, errors.Unsupported("clique_greedy", "graph is directed")
	}

	adj, err := neighborSets(g)
	if err != nil {
		return nil, err
	}

	clique := engine.NewLongSet(true)
	vertices := g.Vertices()
	if len(vertices) == 0 {
		return clique, nil
	}

	seed := vertices[0]
	for _, v := range vertices {
		if len(adj[v]) > len(adj[seed]) {
			seed = v
		}
	}
	clique.Add(seed)

	for _, v := range vertices {
		if v == seed {
			continue
		}
		joins := true
		for _, c := range clique.Values() {
			if !adj[v][c] {
				joins = false
				break
			}
		}
		if joins {
			clique.Add(v)
		}
	}
	return clique, nil
}

// neighborSets builds a membership map per vertex, excluding self-loops.
func neighborSets(g *engine.Graph) (map[int64]map[int64]bool, error) {
	adj := make(map[int64]map[int64]bool, g.VertexCount())
	for _, v := range g.Vertices() {
		neighbors, err := g.NeighborsOf(v)
		if err != nil {
			return nil, err
		}
		set := make(map[int64]bool, len(neighbors))
		for _, u := range neighbors {
			if u != v {
				set[u] = true
			}
		}
		adj[v] = set
	}
	return adj, nil
}

func choosePivot(p, x []int64, adj map[int64]map[int64]bool) int64 {
	var pivot int64
	best := -1
	for _, cand := range p {
		if n := len(adj[cand]); n > best {
			best = n
			pivot = cand
		}
	}
	for _, cand := range x {
		if n := len(adj[cand]); n > best {
			best = n
			pivot = cand
		}
	}
	return pivot
}

func intersect(items []int64, member map[int64]bool) []int64 {
	var out []int64
	for _, v := range items {
		if member[v] {
			out = append(out, v)
		}
	}
	return out
}

func remove(items []int64, v int64) []int64 {
	out := items[:0]
	for _, u := range items {
		if u != v {
			out = append(out, u)
		}
	}
	return out
}
