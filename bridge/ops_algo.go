package bridge

import (
	"github.com/hexlattice/graphbridge/algo"
	"github.com/hexlattice/graphbridge/engine"
	"github.com/hexlattice/graphbridge/errors"
	"github.com/hexlattice/graphbridge/resource"
)

// Delegate operations. Each takes the graph handle first; results come back
// as scalars, result-bundle handles, or scalar+handle pairs. Handle checks
// happen before the delegate runs, and a failing delegate translates into a
// status on the error channel like any other failure.

func init() {
	registerShortestPath("sp_exec_dijkstra", algo.DijkstraShortestPath)
	registerShortestPath("sp_exec_bfs", algo.BFSShortestPath)

	register(OpSpec{
		Name:   "connectivity_weak_exec",
		Params: []ValueKind{KindHandle},
		Outs:   []ValueKind{KindBool, KindHandle},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			const op = "connectivity_weak_exec"
			g, err := getGraph(op, args[0].Handle())
			if err != nil {
				return nil, err
			}
			comps, err := algo.WeaklyConnectedComponents(g)
			if err != nil {
				return nil, err
			}
			itv, err := componentIteratorValue(op, comps)
			if err != nil {
				return nil, err
			}
			return []Value{BoolValue(len(comps) == 1), itv}, nil
		},
	})

	register(OpSpec{
		Name:   "connectivity_strong_exec",
		Params: []ValueKind{KindHandle},
		Outs:   []ValueKind{KindBool, KindHandle},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			const op = "connectivity_strong_exec"
			g, err := getGraph(op, args[0].Handle())
			if err != nil {
				return nil, err
			}
			comps, err := algo.StronglyConnectedComponents(g)
			if err != nil {
				return nil, err
			}
			itv, err := componentIteratorValue(op, comps)
			if err != nil {
				return nil, err
			}
			return []Value{BoolValue(len(comps) == 1), itv}, nil
		},
	})

	registerWeightedSet("mst_exec_kruskal", algo.KruskalMST)
	registerWeightedSet("mst_exec_prim", algo.PrimMST)
	registerVertexSet("clique_exec_bron_kerbosch", algo.MaximumClique)
	registerVertexSet("clique_exec_greedy", algo.GreedyMaximalClique)

	register(OpSpec{
		Name:   "coloring_exec_greedy",
		Params: []ValueKind{KindHandle, KindLong},
		Outs:   []ValueKind{KindLong, KindHandle},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			const op = "coloring_exec_greedy"
			g, err := getGraph(op, args[0].Handle())
			if err != nil {
				return nil, err
			}
			var order algo.ColoringOrder
			switch args[1].Long() {
			case 0:
				order = algo.OrderNatural
			case 1:
				order = algo.OrderLargestDegreeFirst
			default:
				return nil, errors.IllegalArgument(op, "unknown coloring order %d", args[1].Long())
			}
			colors, assignment, err := algo.GreedyColoring(g, order)
			if err != nil {
				return nil, err
			}
			h, err := insertHandle(op, resource.KindLongMap, assignment)
			if err != nil {
				return nil, err
			}
			return []Value{LongValue(colors), HandleValue(h)}, nil
		},
	})

	registerWeightedSet("matching_exec_greedy_weighted", algo.GreedyMaximalWeightedMatching)

	register(OpSpec{
		Name:   "vertexcover_exec_greedy",
		Params: []ValueKind{KindHandle},
		Outs:   []ValueKind{KindDouble, KindHandle},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			const op = "vertexcover_exec_greedy"
			g, err := getGraph(op, args[0].Handle())
			if err != nil {
				return nil, err
			}
			weight, cover, err := algo.GreedyVertexCover(g, nil)
			if err != nil {
				return nil, err
			}
			hv, err := longSetHandle(op, cover)
			if err != nil {
				return nil, err
			}
			return []Value{DoubleValue(weight), hv}, nil
		},
	})

	register(OpSpec{
		Name:   "vertexcover_exec_greedy_weighted",
		Params: []ValueKind{KindHandle, KindHandle},
		Outs:   []ValueKind{KindDouble, KindHandle},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			const op = "vertexcover_exec_greedy_weighted"
			g, err := getGraph(op, args[0].Handle())
			if err != nil {
				return nil, err
			}
			weights, err := getDoubleMap(op, args[1].Handle())
			if err != nil {
				return nil, err
			}
			weight, cover, err := algo.GreedyVertexCover(g, weights)
			if err != nil {
				return nil, err
			}
			hv, err := longSetHandle(op, cover)
			if err != nil {
				return nil, err
			}
			return []Value{DoubleValue(weight), hv}, nil
		},
	})

	registerScoring("scoring_exec_degree_centrality", algo.DegreeCentrality)
	registerScoring("scoring_exec_closeness_centrality", algo.ClosenessCentrality)

	register(OpSpec{
		Name:   "scoring_exec_pagerank",
		Params: []ValueKind{KindHandle, KindDouble, KindLong, KindDouble},
		Outs:   []ValueKind{KindHandle},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			const op = "scoring_exec_pagerank"
			g, err := getGraph(op, args[0].Handle())
			if err != nil {
				return nil, err
			}
			scores, err := algo.PageRank(g, args[1].Double(), int(args[2].Long()), args[3].Double())
			if err != nil {
				return nil, err
			}
			h, err := insertHandle(op, resource.KindDoubleMap, scores)
			if err != nil {
				return nil, err
			}
			return []Value{HandleValue(h)}, nil
		},
	})

	registerTour("tour_tsp_nearest_neighbor", algo.NearestNeighbourTour)
	registerTour("tour_tsp_greedy_heuristic", algo.GreedyEdgeTour)

	register(OpSpec{
		Name:   "partition_exec_bipartite",
		Params: []ValueKind{KindHandle},
		Outs:   []ValueKind{KindBool, KindHandle, KindHandle},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			const op = "partition_exec_bipartite"
			g, err := getGraph(op, args[0].Handle())
			if err != nil {
				return nil, err
			}
			ok, left, right, err := algo.BipartitePartition(g)
			if err != nil {
				return nil, err
			}
			if !ok {
				left = engine.NewLongSet(true)
				right = engine.NewLongSet(true)
			}
			lv, err := longSetHandle(op, left)
			if err != nil {
				return nil, err
			}
			rv, err := longSetHandle(op, right)
			if err != nil {
				return nil, err
			}
			return []Value{BoolValue(ok), lv, rv}, nil
		},
	})

	register(OpSpec{
		Name:   "generate_empty",
		Params: []ValueKind{KindHandle, KindLong},
		Outs:   nil,
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			g, err := getGraph("generate_empty", args[0].Handle())
			if err != nil {
				return nil, err
			}
			_, err = algo.GenerateEmpty(g, args[1].Long())
			return nil, err
		},
	})

	register(OpSpec{
		Name:   "generate_complete",
		Params: []ValueKind{KindHandle, KindLong},
		Outs:   nil,
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			g, err := getGraph("generate_complete", args[0].Handle())
			if err != nil {
				return nil, err
			}
			return nil, algo.GenerateComplete(g, args[1].Long())
		},
	})

	register(OpSpec{
		Name:   "generate_complete_bipartite",
		Params: []ValueKind{KindHandle, KindLong, KindLong},
		Outs:   nil,
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			g, err := getGraph("generate_complete_bipartite", args[0].Handle())
			if err != nil {
				return nil, err
			}
			return nil, algo.GenerateCompleteBipartite(g, args[1].Long(), args[2].Long())
		},
	})

	register(OpSpec{
		Name:   "generate_ring",
		Params: []ValueKind{KindHandle, KindLong},
		Outs:   nil,
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			g, err := getGraph("generate_ring", args[0].Handle())
			if err != nil {
				return nil, err
			}
			return nil, algo.GenerateRing(g, args[1].Long())
		},
	})

	register(OpSpec{
		Name:   "generate_barabasi_albert",
		Params: []ValueKind{KindHandle, KindLong, KindLong, KindLong, KindLong},
		Outs:   nil,
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			g, err := getGraph("generate_barabasi_albert", args[0].Handle())
			if err != nil {
				return nil, err
			}
			return nil, algo.GenerateBarabasiAlbert(g, args[1].Long(), args[2].Long(), args[3].Long(), args[4].Long())
		},
	})

	register(OpSpec{
		Name:   "generate_watts_strogatz",
		Params: []ValueKind{KindHandle, KindLong, KindLong, KindDouble, KindLong},
		Outs:   nil,
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			g, err := getGraph("generate_watts_strogatz", args[0].Handle())
			if err != nil {
				return nil, err
			}
			return nil, algo.GenerateWattsStrogatz(g, args[1].Long(), args[2].Long(), args[3].Double(), args[4].Long())
		},
	})

	register(OpSpec{
		Name:   "generate_kleinberg",
		Params: []ValueKind{KindHandle, KindLong, KindLong, KindDouble, KindLong},
		Outs:   nil,
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			g, err := getGraph("generate_kleinberg", args[0].Handle())
			if err != nil {
				return nil, err
			}
			return nil, algo.GenerateKleinberg(g, args[1].Long(), args[2].Long(), args[3].Double(), args[4].Long())
		},
	})

	register(OpSpec{
		Name:   "generate_gnm",
		Params: []ValueKind{KindHandle, KindLong, KindLong, KindLong},
		Outs:   nil,
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			g, err := getGraph("generate_gnm", args[0].Handle())
			if err != nil {
				return nil, err
			}
			return nil, algo.GenerateGnm(g, args[1].Long(), args[2].Long(), args[3].Long())
		},
	})

	register(OpSpec{
		Name:   "generate_gnp",
		Params: []ValueKind{KindHandle, KindLong, KindDouble, KindLong},
		Outs:   nil,
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			g, err := getGraph("generate_gnp", args[0].Handle())
			if err != nil {
				return nil, err
			}
			return nil, algo.GenerateGnp(g, args[1].Long(), args[2].Double(), args[3].Long())
		},
	})

	register(OpSpec{
		Name:   "export_dimacs",
		Params: []ValueKind{KindHandle, KindString, KindString},
		Outs:   nil,
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			g, err := getGraph("export_dimacs", args[0].Handle())
			if err != nil {
				return nil, err
			}
			return nil, algo.Export(g, args[1].Str(), algo.ExportFormat(args[2].Str()))
		},
	})
}

func registerShortestPath(name string, find func(*engine.Graph, int64, int64) (*engine.GraphPath, error)) {
	register(OpSpec{
		Name:   name,
		Params: []ValueKind{KindHandle, KindLong, KindLong},
		Outs:   []ValueKind{KindBool, KindHandle},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			g, err := getGraph(name, args[0].Handle())
			if err != nil {
				return nil, err
			}
			path, err := find(g, args[1].Long(), args[2].Long())
			if err != nil {
				return nil, err
			}
			if path == nil {
				// Unreachable target: found=false, no path handle.
				return []Value{BoolValue(false), HandleValue(0)}, nil
			}
			h, err := insertHandle(name, resource.KindPath, path)
			if err != nil {
				return nil, err
			}
			return []Value{BoolValue(true), HandleValue(h)}, nil
		},
	})
}

func registerVertexSet(name string, compute func(*engine.Graph) (*engine.LongSet, error)) {
	register(OpSpec{
		Name:   name,
		Params: []ValueKind{KindHandle},
		Outs:   []ValueKind{KindHandle},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			g, err := getGraph(name, args[0].Handle())
			if err != nil {
				return nil, err
			}
			set, err := compute(g)
			if err != nil {
				return nil, err
			}
			hv, err := longSetHandle(name, set)
			if err != nil {
				return nil, err
			}
			return []Value{hv}, nil
		},
	})
}

func registerWeightedSet(name string, compute func(*engine.Graph) (float64, *engine.LongSet, error)) {
	register(OpSpec{
		Name:   name,
		Params: []ValueKind{KindHandle},
		Outs:   []ValueKind{KindDouble, KindHandle},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			g, err := getGraph(name, args[0].Handle())
			if err != nil {
				return nil, err
			}
			weight, set, err := compute(g)
			if err != nil {
				return nil, err
			}
			hv, err := longSetHandle(name, set)
			if err != nil {
				return nil, err
			}
			return []Value{DoubleValue(weight), hv}, nil
		},
	})
}

func registerScoring(name string, compute func(*engine.Graph) (*engine.LongDoubleMap, error)) {
	register(OpSpec{
		Name:   name,
		Params: []ValueKind{KindHandle},
		Outs:   []ValueKind{KindHandle},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			g, err := getGraph(name, args[0].Handle())
			if err != nil {
				return nil, err
			}
			scores, err := compute(g)
			if err != nil {
				return nil, err
			}
			h, err := insertHandle(name, resource.KindDoubleMap, scores)
			if err != nil {
				return nil, err
			}
			return []Value{HandleValue(h)}, nil
		},
	})
}

func registerTour(name string, compute func(*engine.Graph) (*engine.GraphPath, error)) {
	register(OpSpec{
		Name:   name,
		Params: []ValueKind{KindHandle},
		Outs:   []ValueKind{KindHandle},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			g, err := getGraph(name, args[0].Handle())
			if err != nil {
				return nil, err
			}
			tour, err := compute(g)
			if err != nil {
				return nil, err
			}
			h, err := insertHandle(name, resource.KindPath, tour)
			if err != nil {
				return nil, err
			}
			return []Value{HandleValue(h)}, nil
		},
	})
}

// componentIteratorValue wraps each component set in its own handle and
// returns an object iterator over the handles.
func componentIteratorValue(op string, comps []*engine.LongSet) (Value, error) {
	handles := make([]any, len(comps))
	for i, comp := range comps {
		h, err := insertHandle(op, resource.KindLongSet, comp)
		if err != nil {
			return Value{}, err
		}
		handles[i] = h
	}
	h, err := insertHandle(op, resource.KindObjectIterator, engine.NewObjectIterator(handles))
	if err != nil {
		return Value{}, err
	}
	return HandleValue(h), nil
}

// Typed delegate entry points.

// DijkstraShortestPath finds a minimum-weight path between two vertices.
// found reports whether the target is reachable; the path handle is written
// only when it is.
func (t *Thread) DijkstraShortestPath(g resource.Handle, source, target int64, found *bool, path *resource.Handle) errors.Status {
	return t.call("sp_exec_dijkstra", []Value{HandleValue(g), LongValue(source), LongValue(target)}, found, path)
}

// BFSShortestPath finds a minimum-hop path treating every edge as unit
// weight.
func (t *Thread) BFSShortestPath(g resource.Handle, source, target int64, found *bool, path *resource.Handle) errors.Status {
	return t.call("sp_exec_bfs", []Value{HandleValue(g), LongValue(source), LongValue(target)}, found, path)
}

// WeakComponents writes whether the graph is weakly connected and a handle
// to an object iterator whose elements are component vertex-set handles.
func (t *Thread) WeakComponents(g resource.Handle, connected *bool, components *resource.Handle) errors.Status {
	return t.call("connectivity_weak_exec", []Value{HandleValue(g)}, connected, components)
}

// StrongComponents is the directed-graph analogue of WeakComponents; it
// fails with unsupported-operation on undirected graphs.
func (t *Thread) StrongComponents(g resource.Handle, connected *bool, components *resource.Handle) errors.Status {
	return t.call("connectivity_strong_exec", []Value{HandleValue(g)}, connected, components)
}

// KruskalMST writes the total weight and an edge-set handle of a minimum
// spanning tree (a forest on disconnected graphs).
func (t *Thread) KruskalMST(g resource.Handle, weight *float64, edges *resource.Handle) errors.Status {
	return t.call("mst_exec_kruskal", []Value{HandleValue(g)}, weight, edges)
}

func (t *Thread) PrimMST(g resource.Handle, weight *float64, edges *resource.Handle) errors.Status {
	return t.call("mst_exec_prim", []Value{HandleValue(g)}, weight, edges)
}

// MaximumClique writes a vertex-set handle for a maximum clique.
func (t *Thread) MaximumClique(g resource.Handle, clique *resource.Handle) errors.Status {
	return t.call("clique_exec_bron_kerbosch", []Value{HandleValue(g)}, clique)
}

func (t *Thread) GreedyMaximalClique(g resource.Handle, clique *resource.Handle) errors.Status {
	return t.call("clique_exec_greedy", []Value{HandleValue(g)}, clique)
}

// ColoringOrder values accepted by GreedyColoring.
const (
	ColoringOrderNatural            int64 = 0
	ColoringOrderLargestDegreeFirst int64 = 1
)

// GreedyColoring writes the color count and a handle to the vertex-to-color
// map.
func (t *Thread) GreedyColoring(g resource.Handle, order int64, colors *int64, assignment *resource.Handle) errors.Status {
	return t.call("coloring_exec_greedy", []Value{HandleValue(g), LongValue(order)}, colors, assignment)
}

// GreedyWeightedMatching writes the matching weight and an edge-set handle.
func (t *Thread) GreedyWeightedMatching(g resource.Handle, weight *float64, edges *resource.Handle) errors.Status {
	return t.call("matching_exec_greedy_weighted", []Value{HandleValue(g)}, weight, edges)
}

// GreedyVertexCover writes the cover weight (cardinality on unweighted
// runs) and a vertex-set handle.
func (t *Thread) GreedyVertexCover(g resource.Handle, weight *float64, cover *resource.Handle) errors.Status {
	return t.call("vertexcover_exec_greedy", []Value{HandleValue(g)}, weight, cover)
}

// GreedyWeightedVertexCover takes a long-to-double map handle assigning a
// positive weight to every vertex.
func (t *Thread) GreedyWeightedVertexCover(g, weights resource.Handle, weight *float64, cover *resource.Handle) errors.Status {
	return t.call("vertexcover_exec_greedy_weighted", []Value{HandleValue(g), HandleValue(weights)}, weight, cover)
}

// DegreeCentrality writes a handle to a vertex-to-score map.
func (t *Thread) DegreeCentrality(g resource.Handle, scores *resource.Handle) errors.Status {
	return t.call("scoring_exec_degree_centrality", []Value{HandleValue(g)}, scores)
}

func (t *Thread) ClosenessCentrality(g resource.Handle, scores *resource.Handle) errors.Status {
	return t.call("scoring_exec_closeness_centrality", []Value{HandleValue(g)}, scores)
}

func (t *Thread) PageRank(g resource.Handle, damping float64, maxIterations int64, tolerance float64, scores *resource.Handle) errors.Status {
	args := []Value{HandleValue(g), DoubleValue(damping), LongValue(maxIterations), DoubleValue(tolerance)}
	return t.call("scoring_exec_pagerank", args, scores)
}

// NearestNeighbourTour writes a path handle for a closed tour over a
// complete weighted graph.
func (t *Thread) NearestNeighbourTour(g resource.Handle, tour *resource.Handle) errors.Status {
	return t.call("tour_tsp_nearest_neighbor", []Value{HandleValue(g)}, tour)
}

func (t *Thread) GreedyEdgeTour(g resource.Handle, tour *resource.Handle) errors.Status {
	return t.call("tour_tsp_greedy_heuristic", []Value{HandleValue(g)}, tour)
}

// BipartitePartition writes whether the graph is bipartite plus two
// vertex-set handles, one per side. On a non-bipartite graph both sets are
// written and empty.
func (t *Thread) BipartitePartition(g resource.Handle, bipartite *bool, left, right *resource.Handle) errors.Status {
	return t.call("partition_exec_bipartite", []Value{HandleValue(g)}, bipartite, left, right)
}

// Generators populate an existing graph in place.

func (t *Thread) GenerateEmpty(g resource.Handle, n int64) errors.Status {
	return t.call("generate_empty", []Value{HandleValue(g), LongValue(n)})
}

func (t *Thread) GenerateComplete(g resource.Handle, n int64) errors.Status {
	return t.call("generate_complete", []Value{HandleValue(g), LongValue(n)})
}

func (t *Thread) GenerateCompleteBipartite(g resource.Handle, n1, n2 int64) errors.Status {
	return t.call("generate_complete_bipartite", []Value{HandleValue(g), LongValue(n1), LongValue(n2)})
}

func (t *Thread) GenerateRing(g resource.Handle, n int64) errors.Status {
	return t.call("generate_ring", []Value{HandleValue(g), LongValue(n)})
}

func (t *Thread) GenerateBarabasiAlbert(g resource.Handle, m0, m, n, seed int64) errors.Status {
	return t.call("generate_barabasi_albert", []Value{HandleValue(g), LongValue(m0), LongValue(m), LongValue(n), LongValue(seed)})
}

func (t *Thread) GenerateWattsStrogatz(g resource.Handle, n, k int64, p float64, seed int64) errors.Status {
	return t.call("generate_watts_strogatz", []Value{HandleValue(g), LongValue(n), LongValue(k), DoubleValue(p), LongValue(seed)})
}

func (t *Thread) GenerateKleinberg(g resource.Handle, n, q int64, r float64, seed int64) errors.Status {
	return t.call("generate_kleinberg", []Value{HandleValue(g), LongValue(n), LongValue(q), DoubleValue(r), LongValue(seed)})
}

func (t *Thread) GenerateGnm(g resource.Handle, n, m, seed int64) errors.Status {
	return t.call("generate_gnm", []Value{HandleValue(g), LongValue(n), LongValue(m), LongValue(seed)})
}

func (t *Thread) GenerateGnp(g resource.Handle, n int64, p float64, seed int64) errors.Status {
	return t.call("generate_gnp", []Value{HandleValue(g), LongValue(n), DoubleValue(p), LongValue(seed)})
}

// ExportDIMACS writes the graph to path in one of the DIMACS instance
// formats ("dimacs_sp", "dimacs_maxclique", "dimacs_coloring").
func (t *Thread) ExportDIMACS(g resource.Handle, path, format string) errors.Status {
	return t.call("export_dimacs", []Value{HandleValue(g), StringValue(path), StringValue(format)})
}
