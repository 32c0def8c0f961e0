package algo

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hexlattice/graphbridge/engine"
	"github.com/hexlattice/graphbridge/errors"
)

func TestDijkstra_WeightedGraph(t *testing.T) {
	g := engine.NewGraph(false, true, false, false)
	a, b, c, d := g.AddVertex(), g.AddVertex(), g.AddVertex(), g.AddVertex()

	addWeighted := func(u, v int64, w float64) int64 {
		e, err := g.AddEdge(u, v)
		require.NoError(t, err)
		require.NoError(t, g.SetEdgeWeight(e, w))
		return e
	}

	addWeighted(a, b, 1)
	addWeighted(b, c, 1)
	ac := addWeighted(a, c, 5)
	cd := addWeighted(c, d, 1)

	path, err := DijkstraShortestPath(g, a, d)
	require.NoError(t, err)
	require.NotNil(t, path)
	require.Equal(t, 3.0, path.Weight)
	require.Equal(t, int64(3), path.Length())
	require.Equal(t, a, path.Start)
	require.Equal(t, d, path.End)
	require.NotContains(t, path.Edges, ac)
	require.Contains(t, path.Edges, cd)
}

func TestDijkstra_Unreachable(t *testing.T) {
	g := engine.NewGraph(true, false, false, false)
	a, b := g.AddVertex(), g.AddVertex()
	_, err := g.AddEdge(b, a) // wrong direction

	require.NoError(t, err)
	path, err := DijkstraShortestPath(g, a, b)
	require.NoError(t, err)
	require.Nil(t, path)
}

func TestDijkstra_SourceEqualsTarget(t *testing.T) {
	g := engine.NewGraph(false, false, false, false)
	a := g.AddVertex()

	path, err := DijkstraShortestPath(g, a, a)
	require.NoError(t, err)
	require.NotNil(t, path)
	require.Equal(t, int64(0), path.Length())
	require.Equal(t, 0.0, path.Weight)
}

func TestDijkstra_Validation(t *testing.T) {
	g := engine.NewGraph(false, true, false, false)
	a, b := g.AddVertex(), g.AddVertex()

	_, err := DijkstraShortestPath(g, a, 99)
	require.Equal(t, errors.StatusIllegalArgument, errors.StatusOf(err))

	e, _ := g.AddEdge(a, b)
	require.NoError(t, g.SetEdgeWeight(e, -2))
	_, err = DijkstraShortestPath(g, a, b)
	require.Equal(t, errors.StatusIllegalArgument, errors.StatusOf(err))
}

func TestBFS_UnitWeights(t *testing.T) {
	g := engine.NewGraph(true, false, false, false)
	a, b, c := g.AddVertex(), g.AddVertex(), g.AddVertex()
	_, err := g.AddEdge(a, b)
	require.NoError(t, err)
	_, err = g.AddEdge(b, c)
	require.NoError(t, err)

	path, err := BFSShortestPath(g, a, c)
	require.NoError(t, err)
	require.NotNil(t, path)
	require.Equal(t, int64(2), path.Length())
	require.Equal(t, 2.0, path.Weight)
	require.Equal(t, []int64{a, b, c}, path.Vertices)

	path, err = BFSShortestPath(g, c, a)
	require.NoError(t, err)
	require.Nil(t, path)
}
