package engine

// GraphPath is a walk through a graph: an ordered edge sequence with its
// endpoints and accumulated weight. Paths are produced by shortest-path and
// tour delegates and exposed to callers as opaque handles with typed
// accessors.
type GraphPath struct {
	Start    int64
	End      int64
	Vertices []int64 // len(Edges)+1 entries, Start first, End last
	Edges    []int64
	Weight   float64
}

// Length returns the number of edges in the path.
func (p *GraphPath) Length() int64 { return int64(len(p.Edges)) }

// EdgeIterator returns a fresh cursor over the path's edge ids in order.
func (p *GraphPath) EdgeIterator() *LongIterator {
	items := make([]int64, len(p.Edges))
	copy(items, p.Edges)
	return NewLongIterator(items)
}

// VertexIterator returns a fresh cursor over the path's vertices in order.
func (p *GraphPath) VertexIterator() *LongIterator {
	items := make([]int64, len(p.Vertices))
	copy(items, p.Vertices)
	return NewLongIterator(items)
}
