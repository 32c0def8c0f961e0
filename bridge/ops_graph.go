package bridge

import (
	"github.com/hexlattice/graphbridge/engine"
	"github.com/hexlattice/graphbridge/errors"
	"github.com/hexlattice/graphbridge/resource"
)

// Graph entry points. Every operation takes the graph handle first, then
// vertex/edge ids and scalars, and produces at most one scalar or handle.

func init() {
	register(OpSpec{
		Name:   "graph_create",
		Params: []ValueKind{KindBool, KindBool, KindBool, KindBool},
		Outs:   []ValueKind{KindHandle},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			g := engine.NewGraph(args[0].Bool(), args[1].Bool(), args[2].Bool(), args[3].Bool())
			h, err := insertHandle("graph_create", resource.KindGraph, g)
			if err != nil {
				return nil, err
			}
			return []Value{HandleValue(h)}, nil
		},
	})

	register(OpSpec{
		Name:   "graph_vertices_count",
		Params: []ValueKind{KindHandle},
		Outs:   []ValueKind{KindLong},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			g, err := getGraph("graph_vertices_count", args[0].Handle())
			if err != nil {
				return nil, err
			}
			return []Value{LongValue(g.VertexCount())}, nil
		},
	})

	register(OpSpec{
		Name:   "graph_edges_count",
		Params: []ValueKind{KindHandle},
		Outs:   []ValueKind{KindLong},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			g, err := getGraph("graph_edges_count", args[0].Handle())
			if err != nil {
				return nil, err
			}
			return []Value{LongValue(g.EdgeCount())}, nil
		},
	})

	register(OpSpec{
		Name:   "graph_add_vertex",
		Params: []ValueKind{KindHandle},
		Outs:   []ValueKind{KindLong},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			g, err := getGraph("graph_add_vertex", args[0].Handle())
			if err != nil {
				return nil, err
			}
			return []Value{LongValue(g.AddVertex())}, nil
		},
	})

	register(OpSpec{
		Name:   "graph_add_given_vertex",
		Params: []ValueKind{KindHandle, KindLong},
		Outs:   nil,
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			g, err := getGraph("graph_add_given_vertex", args[0].Handle())
			if err != nil {
				return nil, err
			}
			return nil, g.AddVertexWithID(args[1].Long())
		},
	})

	register(OpSpec{
		Name:   "graph_remove_vertex",
		Params: []ValueKind{KindHandle, KindLong},
		Outs:   nil,
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			g, err := getGraph("graph_remove_vertex", args[0].Handle())
			if err != nil {
				return nil, err
			}
			return nil, g.RemoveVertex(args[1].Long())
		},
	})

	register(OpSpec{
		Name:   "graph_contains_vertex",
		Params: []ValueKind{KindHandle, KindLong},
		Outs:   []ValueKind{KindBool},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			g, err := getGraph("graph_contains_vertex", args[0].Handle())
			if err != nil {
				return nil, err
			}
			return []Value{BoolValue(g.ContainsVertex(args[1].Long()))}, nil
		},
	})

	register(OpSpec{
		Name:   "graph_add_edge",
		Params: []ValueKind{KindHandle, KindLong, KindLong},
		Outs:   []ValueKind{KindLong},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			g, err := getGraph("graph_add_edge", args[0].Handle())
			if err != nil {
				return nil, err
			}
			id, err := g.AddEdge(args[1].Long(), args[2].Long())
			if err != nil {
				return nil, err
			}
			return []Value{LongValue(id)}, nil
		},
	})

	register(OpSpec{
		Name:   "graph_remove_edge",
		Params: []ValueKind{KindHandle, KindLong},
		Outs:   nil,
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			g, err := getGraph("graph_remove_edge", args[0].Handle())
			if err != nil {
				return nil, err
			}
			return nil, g.RemoveEdge(args[1].Long())
		},
	})

	register(OpSpec{
		Name:   "graph_contains_edge",
		Params: []ValueKind{KindHandle, KindLong},
		Outs:   []ValueKind{KindBool},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			g, err := getGraph("graph_contains_edge", args[0].Handle())
			if err != nil {
				return nil, err
			}
			return []Value{BoolValue(g.ContainsEdge(args[1].Long()))}, nil
		},
	})

	register(OpSpec{
		Name:   "graph_contains_edge_between",
		Params: []ValueKind{KindHandle, KindLong, KindLong},
		Outs:   []ValueKind{KindBool},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			g, err := getGraph("graph_contains_edge_between", args[0].Handle())
			if err != nil {
				return nil, err
			}
			return []Value{BoolValue(g.ContainsEdgeBetween(args[1].Long(), args[2].Long()))}, nil
		},
	})

	registerDegree("graph_degree_of", (*engine.Graph).DegreeOf)
	registerDegree("graph_indegree_of", (*engine.Graph).InDegreeOf)
	registerDegree("graph_outdegree_of", (*engine.Graph).OutDegreeOf)

	register(OpSpec{
		Name:   "graph_edge_source",
		Params: []ValueKind{KindHandle, KindLong},
		Outs:   []ValueKind{KindLong},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			g, err := getGraph("graph_edge_source", args[0].Handle())
			if err != nil {
				return nil, err
			}
			e, err := g.EdgeByID(args[1].Long())
			if err != nil {
				return nil, err
			}
			return []Value{LongValue(e.Source)}, nil
		},
	})

	register(OpSpec{
		Name:   "graph_edge_target",
		Params: []ValueKind{KindHandle, KindLong},
		Outs:   []ValueKind{KindLong},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			g, err := getGraph("graph_edge_target", args[0].Handle())
			if err != nil {
				return nil, err
			}
			e, err := g.EdgeByID(args[1].Long())
			if err != nil {
				return nil, err
			}
			return []Value{LongValue(e.Target)}, nil
		},
	})

	register(OpSpec{
		Name:   "graph_edge_opposite",
		Params: []ValueKind{KindHandle, KindLong, KindLong},
		Outs:   []ValueKind{KindLong},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			g, err := getGraph("graph_edge_opposite", args[0].Handle())
			if err != nil {
				return nil, err
			}
			v, err := g.OppositeOf(args[1].Long(), args[2].Long())
			if err != nil {
				return nil, err
			}
			return []Value{LongValue(v)}, nil
		},
	})

	register(OpSpec{
		Name:   "graph_get_edge_weight",
		Params: []ValueKind{KindHandle, KindLong},
		Outs:   []ValueKind{KindDouble},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			g, err := getGraph("graph_get_edge_weight", args[0].Handle())
			if err != nil {
				return nil, err
			}
			w, err := g.EdgeWeight(args[1].Long())
			if err != nil {
				return nil, err
			}
			return []Value{DoubleValue(w)}, nil
		},
	})

	register(OpSpec{
		Name:   "graph_set_edge_weight",
		Params: []ValueKind{KindHandle, KindLong, KindDouble},
		Outs:   nil,
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			g, err := getGraph("graph_set_edge_weight", args[0].Handle())
			if err != nil {
				return nil, err
			}
			return nil, g.SetEdgeWeight(args[1].Long(), args[2].Double())
		},
	})

	registerTrait("graph_is_directed", (*engine.Graph).Directed)
	registerTrait("graph_is_weighted", (*engine.Graph).Weighted)
	registerTrait("graph_allows_selfloops", (*engine.Graph).AllowsSelfLoops)
	registerTrait("graph_allows_multipleedges", (*engine.Graph).AllowsMultipleEdges)

	register(OpSpec{
		Name:   "graph_vertex_iterator",
		Params: []ValueKind{KindHandle},
		Outs:   []ValueKind{KindHandle},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			const op = "graph_vertex_iterator"
			g, err := getGraph(op, args[0].Handle())
			if err != nil {
				return nil, err
			}
			return longIteratorValue(op, g.Vertices())
		},
	})

	register(OpSpec{
		Name:   "graph_edge_iterator",
		Params: []ValueKind{KindHandle},
		Outs:   []ValueKind{KindHandle},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			const op = "graph_edge_iterator"
			g, err := getGraph(op, args[0].Handle())
			if err != nil {
				return nil, err
			}
			return longIteratorValue(op, g.Edges())
		},
	})

	registerIncidence("graph_edges_of_iterator", (*engine.Graph).EdgesOf)
	registerIncidence("graph_outgoing_edges_iterator", (*engine.Graph).OutgoingEdgesOf)
	registerIncidence("graph_incoming_edges_iterator", (*engine.Graph).IncomingEdgesOf)
	registerIncidence("graph_neighbors_iterator", (*engine.Graph).NeighborsOf)

	register(OpSpec{
		Name:   "graph_edges_between_iterator",
		Params: []ValueKind{KindHandle, KindLong, KindLong},
		Outs:   []ValueKind{KindHandle},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			const op = "graph_edges_between_iterator"
			g, err := getGraph(op, args[0].Handle())
			if err != nil {
				return nil, err
			}
			return longIteratorValue(op, g.EdgesBetween(args[1].Long(), args[2].Long()))
		},
	})
}

func registerTrait(name string, trait func(*engine.Graph) bool) {
	register(OpSpec{
		Name:   name,
		Params: []ValueKind{KindHandle},
		Outs:   []ValueKind{KindBool},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			g, err := getGraph(name, args[0].Handle())
			if err != nil {
				return nil, err
			}
			return []Value{BoolValue(trait(g))}, nil
		},
	})
}

func registerDegree(name string, degree func(*engine.Graph, int64) (int64, error)) {
	register(OpSpec{
		Name:   name,
		Params: []ValueKind{KindHandle, KindLong},
		Outs:   []ValueKind{KindLong},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			g, err := getGraph(name, args[0].Handle())
			if err != nil {
				return nil, err
			}
			d, err := degree(g, args[1].Long())
			if err != nil {
				return nil, err
			}
			return []Value{LongValue(d)}, nil
		},
	})
}

func registerIncidence(name string, incident func(*engine.Graph, int64) ([]int64, error)) {
	register(OpSpec{
		Name:   name,
		Params: []ValueKind{KindHandle, KindLong},
		Outs:   []ValueKind{KindHandle},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			g, err := getGraph(name, args[0].Handle())
			if err != nil {
				return nil, err
			}
			ids, err := incident(g, args[1].Long())
			if err != nil {
				return nil, err
			}
			return longIteratorValue(name, ids)
		},
	})
}

func longIteratorValue(op string, items []int64) ([]Value, error) {
	h, err := insertHandle(op, resource.KindLongIterator, engine.NewLongIterator(items))
	if err != nil {
		return nil, err
	}
	return []Value{HandleValue(h)}, nil
}

// Typed graph entry points.

// CreateGraph allocates a graph with the four fixed traits and writes its
// handle into out.
func (t *Thread) CreateGraph(directed, weighted, selfLoops, multiEdges bool, out *resource.Handle) errors.Status {
	args := []Value{BoolValue(directed), BoolValue(weighted), BoolValue(selfLoops), BoolValue(multiEdges)}
	return t.call("graph_create", args, out)
}

func (t *Thread) VertexCount(g resource.Handle, out *int64) errors.Status {
	return t.call("graph_vertices_count", []Value{HandleValue(g)}, out)
}

func (t *Thread) EdgeCount(g resource.Handle, out *int64) errors.Status {
	return t.call("graph_edges_count", []Value{HandleValue(g)}, out)
}

// AddVertex adds a vertex with an engine-assigned id and writes the id.
func (t *Thread) AddVertex(g resource.Handle, out *int64) errors.Status {
	return t.call("graph_add_vertex", []Value{HandleValue(g)}, out)
}

// AddVertexWithID adds a vertex with a caller-chosen id.
func (t *Thread) AddVertexWithID(g resource.Handle, id int64) errors.Status {
	return t.call("graph_add_given_vertex", []Value{HandleValue(g), LongValue(id)})
}

func (t *Thread) RemoveVertex(g resource.Handle, id int64) errors.Status {
	return t.call("graph_remove_vertex", []Value{HandleValue(g), LongValue(id)})
}

func (t *Thread) ContainsVertex(g resource.Handle, id int64, out *bool) errors.Status {
	return t.call("graph_contains_vertex", []Value{HandleValue(g), LongValue(id)}, out)
}

// AddEdge adds an edge between two existing vertices and writes the edge id.
func (t *Thread) AddEdge(g resource.Handle, source, target int64, out *int64) errors.Status {
	return t.call("graph_add_edge", []Value{HandleValue(g), LongValue(source), LongValue(target)}, out)
}

func (t *Thread) RemoveEdge(g resource.Handle, id int64) errors.Status {
	return t.call("graph_remove_edge", []Value{HandleValue(g), LongValue(id)})
}

func (t *Thread) ContainsEdge(g resource.Handle, id int64, out *bool) errors.Status {
	return t.call("graph_contains_edge", []Value{HandleValue(g), LongValue(id)}, out)
}

func (t *Thread) ContainsEdgeBetween(g resource.Handle, source, target int64, out *bool) errors.Status {
	return t.call("graph_contains_edge_between", []Value{HandleValue(g), LongValue(source), LongValue(target)}, out)
}

func (t *Thread) DegreeOf(g resource.Handle, vertex int64, out *int64) errors.Status {
	return t.call("graph_degree_of", []Value{HandleValue(g), LongValue(vertex)}, out)
}

func (t *Thread) InDegreeOf(g resource.Handle, vertex int64, out *int64) errors.Status {
	return t.call("graph_indegree_of", []Value{HandleValue(g), LongValue(vertex)}, out)
}

func (t *Thread) OutDegreeOf(g resource.Handle, vertex int64, out *int64) errors.Status {
	return t.call("graph_outdegree_of", []Value{HandleValue(g), LongValue(vertex)}, out)
}

func (t *Thread) EdgeSource(g resource.Handle, edge int64, out *int64) errors.Status {
	return t.call("graph_edge_source", []Value{HandleValue(g), LongValue(edge)}, out)
}

func (t *Thread) EdgeTarget(g resource.Handle, edge int64, out *int64) errors.Status {
	return t.call("graph_edge_target", []Value{HandleValue(g), LongValue(edge)}, out)
}

// EdgeOpposite writes the endpoint of the edge opposite the given vertex.
func (t *Thread) EdgeOpposite(g resource.Handle, edge, vertex int64, out *int64) errors.Status {
	return t.call("graph_edge_opposite", []Value{HandleValue(g), LongValue(edge), LongValue(vertex)}, out)
}

func (t *Thread) GetEdgeWeight(g resource.Handle, edge int64, out *float64) errors.Status {
	return t.call("graph_get_edge_weight", []Value{HandleValue(g), LongValue(edge)}, out)
}

func (t *Thread) SetEdgeWeight(g resource.Handle, edge int64, weight float64) errors.Status {
	return t.call("graph_set_edge_weight", []Value{HandleValue(g), LongValue(edge), DoubleValue(weight)})
}

func (t *Thread) IsDirected(g resource.Handle, out *bool) errors.Status {
	return t.call("graph_is_directed", []Value{HandleValue(g)}, out)
}

func (t *Thread) IsWeighted(g resource.Handle, out *bool) errors.Status {
	return t.call("graph_is_weighted", []Value{HandleValue(g)}, out)
}

func (t *Thread) AllowsSelfLoops(g resource.Handle, out *bool) errors.Status {
	return t.call("graph_allows_selfloops", []Value{HandleValue(g)}, out)
}

func (t *Thread) AllowsMultipleEdges(g resource.Handle, out *bool) errors.Status {
	return t.call("graph_allows_multipleedges", []Value{HandleValue(g)}, out)
}

// VertexIterator writes a handle to a fresh iterator over all vertex ids.
func (t *Thread) VertexIterator(g resource.Handle, out *resource.Handle) errors.Status {
	return t.call("graph_vertex_iterator", []Value{HandleValue(g)}, out)
}

// EdgeIterator writes a handle to a fresh iterator over all edge ids.
func (t *Thread) EdgeIterator(g resource.Handle, out *resource.Handle) errors.Status {
	return t.call("graph_edge_iterator", []Value{HandleValue(g)}, out)
}

func (t *Thread) EdgesOfIterator(g resource.Handle, vertex int64, out *resource.Handle) errors.Status {
	return t.call("graph_edges_of_iterator", []Value{HandleValue(g), LongValue(vertex)}, out)
}

func (t *Thread) OutgoingEdgesIterator(g resource.Handle, vertex int64, out *resource.Handle) errors.Status {
	return t.call("graph_outgoing_edges_iterator", []Value{HandleValue(g), LongValue(vertex)}, out)
}

func (t *Thread) IncomingEdgesIterator(g resource.Handle, vertex int64, out *resource.Handle) errors.Status {
	return t.call("graph_incoming_edges_iterator", []Value{HandleValue(g), LongValue(vertex)}, out)
}

func (t *Thread) NeighborsIterator(g resource.Handle, vertex int64, out *resource.Handle) errors.Status {
	return t.call("graph_neighbors_iterator", []Value{HandleValue(g), LongValue(vertex)}, out)
}

func (t *Thread) EdgesBetweenIterator(g resource.Handle, source, target int64, out *resource.Handle) errors.Status {
	return t.call("graph_edges_between_iterator", []Value{HandleValue(g), LongValue(source), LongValue(target)}, out)
}
