package algo

import (
	"math"
	"sort"

	"github.com/hexlattice/graphbridge/engine"
	"github.com/hexlattice/graphbridge/errors"
)

// MinSTCut computes a minimum-capacity source-sink cut. The cut weight
// equals the maximum flow; the returned set is the source side.
func MinSTCut(g *engine.Graph, source, sink int64) (float64, *engine.LongSet, error) {
	res, err := PushRelabelMaxFlow(g, source, sink)
	if err != nil {
		return 0, nil, err
	}
	return res.Value, res.SourcePartition, nil
}

// MinCutStoerWagner computes a global minimum cut of an undirected graph
// with the Stoer-Wagner contraction algorithm. Returns the cut weight and
// one side of the cut.
func MinCutStoerWagner(g *engine.Graph) (float64, *engine.LongSet, error) {
	const op = "cut_stoer_wagner"
	if g.Directed() {
		return 0, nil, errors.Unsupported(op, "graph is directed")
	}
	if g.VertexCount() < 2 {
		return 0, nil, errors.IllegalArgument(op, "graph needs at least two vertices")
	}

	// Collapse parallel edges into a weight matrix; self loops never cross
	// a cut.
	weight := map[int64]map[int64]float64{}
	vertices := g.Vertices()
	for _, v := range vertices {
		weight[v] = map[int64]float64{}
	}
	for _, eid := range g.Edges() {
		e, err := g.EdgeByID(eid)
		if err != nil {
			return 0, nil, err
		}
		w, err := g.EdgeWeight(eid)
		if err != nil {
			return 0, nil, err
		}
		if w < 0 {
			return 0, nil, errors.IllegalArgument(op, "negative weight on edge %d", eid)
		}
		if e.Source == e.Target {
			continue
		}
		weight[e.Source][e.Target] += w
		weight[e.Target][e.Source] += w
	}

	group := map[int64][]int64{}
	for _, v := range vertices {
		group[v] = []int64{v}
	}

	best := math.Inf(1)
	var bestGroup []int64
	for len(vertices) > 1 {
		// Maximum adjacency order; the last two vertices define the cut
		// of the phase.
		attach := map[int64]float64{}
		added := map[int64]bool{}
		var prev, last int64
		for range vertices {
			next := int64(-1)
			for _, v := range vertices {
				if added[v] {
					continue
				}
				if next == -1 || attach[v] > attach[next] {
					next = v
				}
			}
			added[next] = true
			prev, last = last, next
			for t, w := range weight[next] {
				if !added[t] {
					attach[t] += w
				}
			}
		}

		if attach[last] < best {
			best = attach[last]
			bestGroup = append([]int64(nil), group[last]...)
		}

		// Contract last into prev.
		group[prev] = append(group[prev], group[last]...)
		delete(group, last)
		for t, w := range weight[last] {
			if t == prev {
				continue
			}
			weight[prev][t] += w
			weight[t][prev] += w
		}
		for t := range weight[last] {
			delete(weight[t], last)
		}
		delete(weight, last)
		for i, v := range vertices {
			if v == last {
				vertices = append(vertices[:i], vertices[i+1:]...)
				break
			}
		}
	}

	sort.Slice(bestGroup, func(i, j int) bool { return bestGroup[i] < bestGroup[j] })
	partition := engine.NewLongSet(true)
	for _, v := range bestGroup {
		partition.Add(v)
	}
	return best, partition, nil
}

// gusfieldTree builds a flow-equivalent tree with Gusfield's method: n-1
// maximum-flow computations, each splitting a vertex from its current
// tree parent.
func gusfieldTree(g *engine.Graph, op string) (*engine.Graph, error) {
	if g.Directed() {
		return nil, errors.Unsupported(op, "graph is directed")
	}
	if g.VertexCount() < 2 {
		return nil, errors.IllegalArgument(op, "graph needs at least two vertices")
	}

	vs := g.Vertices()
	parent := map[int64]int64{}
	for _, v := range vs[1:] {
		parent[v] = vs[0]
	}
	cutWeight := map[int64]float64{}

	for i := 1; i < len(vs); i++ {
		s := vs[i]
		t := parent[s]
		res, err := DinicMaxFlow(g, s, t)
		if err != nil {
			return nil, err
		}
		cutWeight[s] = res.Value
		for j := i + 1; j < len(vs); j++ {
			v := vs[j]
			if parent[v] == t && res.SourcePartition.Contains(v) {
				parent[v] = s
			}
		}
	}

	tree := engine.NewGraph(false, true, false, false)
	for _, v := range vs {
		if err := tree.AddVertexWithID(v); err != nil {
			return nil, err
		}
	}
	for _, v := range vs[1:] {
		eid, err := tree.AddEdge(v, parent[v])
		if err != nil {
			return nil, err
		}
		if err := tree.SetEdgeWeight(eid, cutWeight[v]); err != nil {
			return nil, err
		}
	}
	return tree, nil
}

// GomoryHuTree computes a Gomory-Hu cut tree: the minimum edge weight on
// the tree path between two vertices is their minimum cut weight.
func GomoryHuTree(g *engine.Graph) (*engine.Graph, error) {
	return gusfieldTree(g, "cut_gomory_hu")
}

// EquivalentFlowTree computes a flow-equivalent tree: the minimum edge
// weight on the tree path between two vertices is their maximum flow value.
func EquivalentFlowTree(g *engine.Graph) (*engine.Graph, error) {
	return gusfieldTree(g, "maxflow_equivalent_flow_tree")
}
