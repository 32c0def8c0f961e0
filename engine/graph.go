package engine

import (
	"sort"

	"github.com/hexlattice/graphbridge/errors"
)

// Edge is an edge record. Weight is meaningful only on weighted graphs;
// unweighted graphs report the unit weight.
type Edge struct {
	ID     int64
	Source int64
	Target int64
	Weight float64
}

// UnitWeight is the weight reported for edges of unweighted graphs.
const UnitWeight = 1.0

type adjacency struct {
	out map[int64]struct{} // outgoing edge ids; all incident ids when undirected
	in  map[int64]struct{} // incoming edge ids; unused when undirected
}

// Graph is the engine's vertex/edge store. Vertices and edges are identified
// by int64 ids. The four traits are fixed at creation and immutable.
//
// Removed ids are never reused: the id allocators only move forward for the
// lifetime of the graph.
//
// A Graph is not internally synchronized. Concurrent use of the same graph
// must be serialized by the caller; the bridge documents the same contract
// for concurrent use of a single handle.
type Graph struct {
	directed   bool
	weighted   bool
	allowLoops bool
	allowMulti bool

	nextVertex int64
	nextEdge   int64

	vertices map[int64]*adjacency
	edges    map[int64]*Edge
}

// NewGraph creates an empty graph with the given traits.
func NewGraph(directed, weighted, allowLoops, allowMulti bool) *Graph {
	return &Graph{
		directed:   directed,
		weighted:   weighted,
		allowLoops: allowLoops,
		allowMulti: allowMulti,
		vertices:   make(map[int64]*adjacency),
		edges:      make(map[int64]*Edge),
	}
}

// Trait accessors.

func (g *Graph) Directed() bool            { return g.directed }
func (g *Graph) Weighted() bool            { return g.weighted }
func (g *Graph) AllowsSelfLoops() bool     { return g.allowLoops }
func (g *Graph) AllowsMultipleEdges() bool { return g.allowMulti }

// AddVertex adds a vertex with the next free id and returns it.
func (g *Graph) AddVertex() int64 {
	for {
		id := g.nextVertex
		g.nextVertex++
		if _, exists := g.vertices[id]; !exists {
			g.vertices[id] = newAdjacency()
			return id
		}
	}
}

// AddVertexWithID adds a vertex with a caller-chosen id.
func (g *Graph) AddVertexWithID(id int64) error {
	if id < 0 {
		return errors.IllegalArgument("graph_add_vertex", "negative vertex id %d", id)
	}
	if _, exists := g.vertices[id]; exists {
		return errors.IllegalArgument("graph_add_vertex", "vertex %d already exists", id)
	}
	g.vertices[id] = newAdjacency()
	if id >= g.nextVertex {
		g.nextVertex = id + 1
	}
	return nil
}

// RemoveVertex removes a vertex and every edge incident to it.
func (g *Graph) RemoveVertex(id int64) error {
	adj, ok := g.vertices[id]
	if !ok {
		return errors.IllegalArgument("graph_remove_vertex", "no such vertex %d", id)
	}
	for eid := range adj.out {
		g.detachEdge(eid)
	}
	for eid := range adj.in {
		g.detachEdge(eid)
	}
	delete(g.vertices, id)
	return nil
}

// ContainsVertex reports whether the vertex exists.
func (g *Graph) ContainsVertex(id int64) bool {
	_, ok := g.vertices[id]
	return ok
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int64 { return int64(len(g.vertices)) }

// Vertices returns all vertex ids in ascending order.
func (g *Graph) Vertices() []int64 {
	out := make([]int64, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// AddEdge adds an edge from u to v with unit weight and returns its id.
// Self-loops and parallel edges are rejected unless the corresponding trait
// allows them.
func (g *Graph) AddEdge(u, v int64) (int64, error) {
	if !g.ContainsVertex(u) {
		return 0, errors.IllegalArgument("graph_add_edge", "no such vertex %d", u)
	}
	if !g.ContainsVertex(v) {
		return 0, errors.IllegalArgument("graph_add_edge", "no such vertex %d", v)
	}
	if u == v && !g.allowLoops {
		return 0, errors.IllegalArgument("graph_add_edge", "self-loops not allowed")
	}
	if !g.allowMulti && g.ContainsEdgeBetween(u, v) {
		return 0, errors.IllegalArgument("graph_add_edge", "multiple edges not allowed between %d and %d", u, v)
	}

	id := g.nextEdge
	g.nextEdge++
	g.edges[id] = &Edge{ID: id, Source: u, Target: v, Weight: UnitWeight}

	if g.directed {
		g.vertices[u].out[id] = struct{}{}
		g.vertices[v].in[id] = struct{}{}
	} else {
		g.vertices[u].out[id] = struct{}{}
		g.vertices[v].out[id] = struct{}{}
	}
	return id, nil
}

// RemoveEdge removes an edge by id.
func (g *Graph) RemoveEdge(id int64) error {
	if _, ok := g.edges[id]; !ok {
		return errors.IllegalArgument("graph_remove_edge", "no such edge %d", id)
	}
	g.detachEdge(id)
	return nil
}

// ContainsEdge reports whether the edge exists.
func (g *Graph) ContainsEdge(id int64) bool {
	_, ok := g.edges[id]
	return ok
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int64 { return int64(len(g.edges)) }

// Edges returns all edge ids in ascending order.
func (g *Graph) Edges() []int64 {
	out := make([]int64, 0, len(g.edges))
	for id := range g.edges {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// EdgeByID returns the edge record for an id.
func (g *Graph) EdgeByID(id int64) (*Edge, error) {
	e, ok := g.edges[id]
	if !ok {
		return nil, errors.IllegalArgument("graph_edge", "no such edge %d", id)
	}
	return e, nil
}

// SetEdgeWeight updates an edge's weight. Unsupported on unweighted graphs.
func (g *Graph) SetEdgeWeight(id int64, w float64) error {
	e, ok := g.edges[id]
	if !ok {
		return errors.IllegalArgument("graph_set_edge_weight", "no such edge %d", id)
	}
	if !g.weighted {
		return errors.Unsupported("graph_set_edge_weight", "graph is unweighted")
	}
	e.Weight = w
	return nil
}

// EdgeWeight returns an edge's weight; unweighted graphs report UnitWeight.
func (g *Graph) EdgeWeight(id int64) (float64, error) {
	e, ok := g.edges[id]
	if !ok {
		return 0, errors.IllegalArgument("graph_edge_weight", "no such edge %d", id)
	}
	if !g.weighted {
		return UnitWeight, nil
	}
	return e.Weight, nil
}

// ContainsEdgeBetween reports whether at least one edge connects u and v.
// On undirected graphs the orientation of the query is ignored.
func (g *Graph) ContainsEdgeBetween(u, v int64) bool {
	adj, ok := g.vertices[u]
	if !ok {
		return false
	}
	for eid := range adj.out {
		e := g.edges[eid]
		if e.Source == u && e.Target == v {
			return true
		}
		if !g.directed && e.Source == v && e.Target == u {
			return true
		}
	}
	return false
}

// EdgesBetween returns the ids of all edges connecting u and v, ascending.
func (g *Graph) EdgesBetween(u, v int64) []int64 {
	adj, ok := g.vertices[u]
	if !ok {
		return nil
	}
	var out []int64
	for eid := range adj.out {
		e := g.edges[eid]
		if (e.Source == u && e.Target == v) || (!g.directed && e.Source == v && e.Target == u) {
			out = append(out, eid)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// DegreeOf returns the degree of a vertex. On undirected graphs self-loops
// count twice; on directed graphs it is the sum of in- and out-degree.
func (g *Graph) DegreeOf(id int64) (int64, error) {
	adj, ok := g.vertices[id]
	if !ok {
		return 0, errors.IllegalArgument("graph_degree", "no such vertex %d", id)
	}
	if g.directed {
		return int64(len(adj.out) + len(adj.in)), nil
	}
	deg := int64(0)
	for eid := range adj.out {
		e := g.edges[eid]
		if e.Source == e.Target {
			deg += 2
		} else {
			deg++
		}
	}
	return deg, nil
}

// InDegreeOf returns the in-degree. On undirected graphs equals DegreeOf.
func (g *Graph) InDegreeOf(id int64) (int64, error) {
	adj, ok := g.vertices[id]
	if !ok {
		return 0, errors.IllegalArgument("graph_indegree", "no such vertex %d", id)
	}
	if !g.directed {
		return g.DegreeOf(id)
	}
	return int64(len(adj.in)), nil
}

// OutDegreeOf returns the out-degree. On undirected graphs equals DegreeOf.
func (g *Graph) OutDegreeOf(id int64) (int64, error) {
	adj, ok := g.vertices[id]
	if !ok {
		return 0, errors.IllegalArgument("graph_outdegree", "no such vertex %d", id)
	}
	if !g.directed {
		return g.DegreeOf(id)
	}
	return int64(len(adj.out)), nil
}

// EdgesOf returns the ids of all edges incident to a vertex, ascending.
func (g *Graph) EdgesOf(id int64) ([]int64, error) {
	adj, ok := g.vertices[id]
	if !ok {
		return nil, errors.IllegalArgument("graph_edges_of", "no such vertex %d", id)
	}
	seen := make(map[int64]struct{}, len(adj.out)+len(adj.in))
	for eid := range adj.out {
		seen[eid] = struct{}{}
	}
	for eid := range adj.in {
		seen[eid] = struct{}{}
	}
	out := make([]int64, 0, len(seen))
	for eid := range seen {
		out = append(out, eid)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

// OutgoingEdgesOf returns outgoing edge ids, ascending. On undirected graphs
// it returns all incident edges.
func (g *Graph) OutgoingEdgesOf(id int64) ([]int64, error) {
	adj, ok := g.vertices[id]
	if !ok {
		return nil, errors.IllegalArgument("graph_out_edges_of", "no such vertex %d", id)
	}
	out := make([]int64, 0, len(adj.out))
	for eid := range adj.out {
		out = append(out, eid)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

// IncomingEdgesOf returns incoming edge ids, ascending. On undirected graphs
// it returns all incident edges.
func (g *Graph) IncomingEdgesOf(id int64) ([]int64, error) {
	adj, ok := g.vertices[id]
	if !ok {
		return nil, errors.IllegalArgument("graph_in_edges_of", "no such vertex %d", id)
	}
	if !g.directed {
		return g.OutgoingEdgesOf(id)
	}
	out := make([]int64, 0, len(adj.in))
	for eid := range adj.in {
		out = append(out, eid)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

// OppositeOf returns the endpoint of edge id that is not v.
// For self-loops it returns v itself.
func (g *Graph) OppositeOf(id, v int64) (int64, error) {
	e, ok := g.edges[id]
	if !ok {
		return 0, errors.IllegalArgument("graph_opposite", "no such edge %d", id)
	}
	switch v {
	case e.Source:
		return e.Target, nil
	case e.Target:
		return e.Source, nil
	default:
		return 0, errors.IllegalArgument("graph_opposite", "vertex %d is not an endpoint of edge %d", v, id)
	}
}

// NeighborsOf returns the distinct adjacent vertices of id, ascending.
// On directed graphs both successors and predecessors are included.
func (g *Graph) NeighborsOf(id int64) ([]int64, error) {
	eids, err := g.EdgesOf(id)
	if err != nil {
		return nil, err
	}
	seen := make(map[int64]struct{}, len(eids))
	for _, eid := range eids {
		other, _ := g.OppositeOf(eid, id)
		seen[other] = struct{}{}
	}
	out := make([]int64, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

func newAdjacency() *adjacency {
	return &adjacency{
		out: make(map[int64]struct{}),
		in:  make(map[int64]struct{}),
	}
}

// detachEdge removes an edge from the store and from both endpoints.
func (g *Graph) detachEdge(id int64) {
	e, ok := g.edges[id]
	if !ok {
		return
	}
	if adj, ok := g.vertices[e.Source]; ok {
		delete(adj.out, id)
		delete(adj.in, id)
	}
	if adj, ok := g.vertices[e.Target]; ok {
		delete(adj.out, id)
		delete(adj.in, id)
	}
	delete(g.edges, id)
}
