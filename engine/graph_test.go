package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hexlattice/graphbridge/errors"
)

func TestGraph_Traits(t *testing.T) {
	g := NewGraph(true, true, false, false)
	require.True(t, g.Directed())
	require.True(t, g.Weighted())
	require.False(t, g.AllowsSelfLoops())
	require.False(t, g.AllowsMultipleEdges())
}

func TestGraph_AddRemoveVertices(t *testing.T) {
	g := NewGraph(false, false, false, false)

	a := g.AddVertex()
	b := g.AddVertex()
	require.Equal(t, int64(0), a)
	require.Equal(t, int64(1), b)
	require.Equal(t, int64(2), g.VertexCount())
	require.Equal(t, []int64{0, 1}, g.Vertices())

	require.NoError(t, g.RemoveVertex(a))
	require.False(t, g.ContainsVertex(a))
	require.Equal(t, int64(1), g.VertexCount())

	err := g.RemoveVertex(a)
	require.Equal(t, errors.StatusIllegalArgument, errors.StatusOf(err))
}

func TestGraph_VertexIDsNeverReused(t *testing.T) {
	g := NewGraph(false, false, false, false)

	a := g.AddVertex()
	require.NoError(t, g.RemoveVertex(a))
	b := g.AddVertex()
	require.NotEqual(t, a, b, "removed vertex id must not be reissued")

	require.NoError(t, g.AddVertexWithID(100))
	c := g.AddVertex()
	require.Equal(t, int64(101), c, "allocator must advance past explicit ids")
}

func TestGraph_Edges(t *testing.T) {
	g := NewGraph(true, false, false, false)
	u := g.AddVertex()
	v := g.AddVertex()

	e, err := g.AddEdge(u, v)
	require.NoError(t, err)
	require.True(t, g.ContainsEdge(e))
	require.Equal(t, int64(1), g.EdgeCount())

	rec, err := g.EdgeByID(e)
	require.NoError(t, err)
	require.Equal(t, u, rec.Source)
	require.Equal(t, v, rec.Target)

	w, err := g.EdgeWeight(e)
	require.NoError(t, err)
	require.Equal(t, UnitWeight, w)

	require.NoError(t, g.RemoveEdge(e))
	require.False(t, g.ContainsEdge(e))

	_, err = g.AddEdge(u, 99)
	require.Equal(t, errors.StatusIllegalArgument, errors.StatusOf(err))
}

func TestGraph_TraitEnforcement(t *testing.T) {
	t.Run("self loops rejected", func(t *testing.T) {
		g := NewGraph(false, false, false, false)
		v := g.AddVertex()
		_, err := g.AddEdge(v, v)
		require.Equal(t, errors.StatusIllegalArgument, errors.StatusOf(err))
	})

	t.Run("self loops allowed", func(t *testing.T) {
		g := NewGraph(false, false, true, false)
		v := g.AddVertex()
		_, err := g.AddEdge(v, v)
		require.NoError(t, err)

		deg, err := g.DegreeOf(v)
		require.NoError(t, err)
		require.Equal(t, int64(2), deg, "undirected self-loop counts twice")
	})

	t.Run("multi edges rejected", func(t *testing.T) {
		g := NewGraph(false, false, false, false)
		u, v := g.AddVertex(), g.AddVertex()
		_, err := g.AddEdge(u, v)
		require.NoError(t, err)
		_, err = g.AddEdge(v, u) // same pair, reversed orientation
		require.Equal(t, errors.StatusIllegalArgument, errors.StatusOf(err))
	})

	t.Run("multi edges allowed", func(t *testing.T) {
		g := NewGraph(false, false, false, true)
		u, v := g.AddVertex(), g.AddVertex()
		e1, err := g.AddEdge(u, v)
		require.NoError(t, err)
		e2, err := g.AddEdge(u, v)
		require.NoError(t, err)
		require.Equal(t, []int64{e1, e2}, g.EdgesBetween(u, v))
	})

	t.Run("weight on unweighted", func(t *testing.T) {
		g := NewGraph(false, false, false, false)
		u, v := g.AddVertex(), g.AddVertex()
		e, _ := g.AddEdge(u, v)
		err := g.SetEdgeWeight(e, 3.5)
		require.Equal(t, errors.StatusUnsupportedOperation, errors.StatusOf(err))
	})
}

func TestGraph_Degrees(t *testing.T) {
	g := NewGraph(true, false, false, false)
	a, b, c := g.AddVertex(), g.AddVertex(), g.AddVertex()

	_, err := g.AddEdge(a, b)
	require.NoError(t, err)
	_, err = g.AddEdge(b, c)
	require.NoError(t, err)

	in, err := g.InDegreeOf(b)
	require.NoError(t, err)
	require.Equal(t, int64(1), in)

	out, err := g.OutDegreeOf(b)
	require.NoError(t, err)
	require.Equal(t, int64(1), out)

	deg, err := g.DegreeOf(b)
	require.NoError(t, err)
	require.Equal(t, int64(2), deg)
}

func TestGraph_IncidenceQueries(t *testing.T) {
	g := NewGraph(true, false, false, false)
	a, b, c := g.AddVertex(), g.AddVertex(), g.AddVertex()

	ab, _ := g.AddEdge(a, b)
	bc, _ := g.AddEdge(b, c)
	ca, _ := g.AddEdge(c, a)

	edges, err := g.EdgesOf(b)
	require.NoError(t, err)
	require.Equal(t, []int64{ab, bc}, edges)

	outgoing, err := g.OutgoingEdgesOf(b)
	require.NoError(t, err)
	require.Equal(t, []int64{bc}, outgoing)

	incoming, err := g.IncomingEdgesOf(a)
	require.NoError(t, err)
	require.Equal(t, []int64{ca}, incoming)

	opp, err := g.OppositeOf(ab, a)
	require.NoError(t, err)
	require.Equal(t, b, opp)

	neighbors, err := g.NeighborsOf(a)
	require.NoError(t, err)
	require.Equal(t, []int64{b, c}, neighbors)
}

func TestGraph_RemoveVertexDetachesEdges(t *testing.T) {
	g := NewGraph(false, false, false, false)
	a, b, c := g.AddVertex(), g.AddVertex(), g.AddVertex()

	_, err := g.AddEdge(a, b)
	require.NoError(t, err)
	_, err = g.AddEdge(b, c)
	require.NoError(t, err)

	require.NoError(t, g.RemoveVertex(b))
	require.Equal(t, int64(0), g.EdgeCount())

	deg, err := g.DegreeOf(a)
	require.NoError(t, err)
	require.Equal(t, int64(0), deg)
}
