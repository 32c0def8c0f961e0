package algo

import (
	"sort"

	"github.com/hexlattice/graphbridge/engine"
	"github.com/hexlattice/graphbridge/errors"
)

// WeaklyConnectedComponents computes connected components, ignoring edge
// direction. Each component is an ordered vertex set; components are listed
// by their smallest vertex id.
func WeaklyConnectedComponents(g *engine.Graph) ([]*engine.LongSet, error) {
	visited := map[int64]bool{}
	var components []*engine.LongSet

	for _, start := range g.Vertices() {
		if visited[start] {
			continue
		}
		comp := engine.NewLongSet(true)
		queue := []int64{start}
		visited[start] = true
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			comp.Add(u)
			neighbors, err := g.NeighborsOf(u)
			if err != nil {
				return nil, err
			}
			for _, v := range neighbors {
				if !visited[v] {
					visited[v] = true
					queue = append(queue, v)
				}
			}
		}
		components = append(components, comp)
	}
	return components, nil
}

// IsWeaklyConnected reports whether the graph has exactly one weak
// component. The empty graph is not connected.
func IsWeaklyConnected(g *engine.Graph) (bool, error) {
	components, err := WeaklyConnectedComponents(g)
	if err != nil {
		return false, err
	}
	return len(components) == 1, nil
}

// StronglyConnectedComponents computes strongly connected components with
// Kosaraju's two-pass algorithm. The graph must be directed.
func StronglyConnectedComponents(g *engine.Graph) ([]*engine.LongSet, error) {
	if !g.Directed() {
		return nil, errors.Unsupported("connectivity_strong", "graph is undirected")
	}

	// First pass: vertices by finish time.
	visited := map[int64]bool{}
	var order []int64
	var finish func(u int64) error
	finish = func(u int64) error {
		visited[u] = true
		eids, err := g.OutgoingEdgesOf(u)
		if err != nil {
			return err
		}
		for _, eid := range eids {
			v, err := g.OppositeOf(eid, u)
			if err != nil {
				return err
			}
			if !visited[v] {
				if err := finish(v); err != nil {
					return err
				}
			}
		}
		order = append(order, u)
		return nil
	}
	for _, u := range g.Vertices() {
		if !visited[u] {
			if err := finish(u); err != nil {
				return nil, err
			}
		}
	}

	// Second pass: reverse-graph DFS in reverse finish order.
	assigned := map[int64]bool{}
	var components []*engine.LongSet
	for i := len(order) - 1; i >= 0; i-- {
		root := order[i]
		if assigned[root] {
			continue
		}
		comp := engine.NewLongSet(true)
		stack := []int64{root}
		assigned[root] = true
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp.Add(u)
			eids, err := g.IncomingEdgesOf(u)
			if err != nil {
				return nil, err
			}
			for _, eid := range eids {
				v, err := g.OppositeOf(eid, u)
				if err != nil {
					return nil, err
				}
				if !assigned[v] {
					assigned[v] = true
					stack = append(stack, v)
				}
			}
		}
		components = append(components, comp)
	}

	sort.Slice(components, func(i, j int) bool {
		return minOf(components[i]) < minOf(components[j])
	})
	return components, nil
}

// IsStronglyConnected reports whether the directed graph has exactly one
// strong component. The empty graph is not connected.
func IsStronglyConnected(g *engine.Graph) (bool, error) {
	components, err := StronglyConnectedComponents(g)
	if err != nil {
		return false, err
	}
	return len(components) == 1, nil
}

func minOf(s *engine.LongSet) int64 {
	min := int64(0)
	for i, v := range s.Values() {
		if i == 0 || v < min {
			min = v
		}
	}
	return min
}
