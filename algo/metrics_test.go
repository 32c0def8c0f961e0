package algo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hexlattice/graphbridge/engine"
	"github.com/hexlattice/graphbridge/errors"
)

func TestDiameterAndRadius_Path(t *testing.T) {
	// Path on four vertices: eccentricities 3, 2, 2, 3.
	g := engine.NewGraph(false, false, false, false)
	a, b, c, d := g.AddVertex(), g.AddVertex(), g.AddVertex(), g.AddVertex()
	for _, pair := range [][2]int64{{a, b}, {b, c}, {c, d}} {
		_, err := g.AddEdge(pair[0], pair[1])
		require.NoError(t, err)
	}

	diameter, err := Diameter(g)
	require.NoError(t, err)
	require.Equal(t, 3.0, diameter)

	radius, err := Radius(g)
	require.NoError(t, err)
	require.Equal(t, 2.0, radius)
}

func TestDiameter_Weighted(t *testing.T) {
	g := weightedUndirected(t)
	a, b, c := g.AddVertex(), g.AddVertex(), g.AddVertex()
	addWeighted(t, g, a, b, 1.5)
	addWeighted(t, g, b, c, 2.5)
	addWeighted(t, g, a, c, 10)

	diameter, err := Diameter(g)
	require.NoError(t, err)
	require.Equal(t, 4.0, diameter)
}

func TestDiameterAndRadius_SpecialCases(t *testing.T) {
	empty := engine.NewGraph(false, false, false, false)
	diameter, err := Diameter(empty)
	require.NoError(t, err)
	require.Equal(t, 0.0, diameter)
	radius, err := Radius(empty)
	require.NoError(t, err)
	require.Equal(t, 0.0, radius)

	disconnected := engine.NewGraph(false, false, false, false)
	disconnected.AddVertex()
	disconnected.AddVertex()
	diameter, err = Diameter(disconnected)
	require.NoError(t, err)
	require.True(t, math.IsInf(diameter, 1))
	radius, err = Radius(disconnected)
	require.NoError(t, err)
	require.True(t, math.IsInf(radius, 1))
}

func TestGirth(t *testing.T) {
	triangle := engine.NewGraph(false, false, false, false)
	a, b, c := triangle.AddVertex(), triangle.AddVertex(), triangle.AddVertex()
	for _, pair := range [][2]int64{{a, b}, {b, c}, {a, c}} {
		_, err := triangle.AddEdge(pair[0], pair[1])
		require.NoError(t, err)
	}
	girth, err := Girth(triangle)
	require.NoError(t, err)
	require.Equal(t, 3.0, girth)

	tree := engine.NewGraph(false, false, false, false)
	x, y, z := tree.AddVertex(), tree.AddVertex(), tree.AddVertex()
	_, err = tree.AddEdge(x, y)
	require.NoError(t, err)
	_, err = tree.AddEdge(y, z)
	require.NoError(t, err)
	girth, err = Girth(tree)
	require.NoError(t, err)
	require.True(t, math.IsInf(girth, 1))
}

func TestGirth_LoopsAndParallels(t *testing.T) {
	looped := engine.NewGraph(false, false, true, false)
	v := looped.AddVertex()
	_, err := looped.AddEdge(v, v)
	require.NoError(t, err)
	girth, err := Girth(looped)
	require.NoError(t, err)
	require.Equal(t, 1.0, girth)

	multi := engine.NewGraph(false, false, false, true)
	u, w := multi.AddVertex(), multi.AddVertex()
	_, err = multi.AddEdge(u, w)
	require.NoError(t, err)
	_, err = multi.AddEdge(u, w)
	require.NoError(t, err)
	girth, err = Girth(multi)
	require.NoError(t, err)
	require.Equal(t, 2.0, girth)
}

func TestGirth_Directed(t *testing.T) {
	// An undirected reading would see a 2-cycle; the directed girth is 3.
	g := engine.NewGraph(true, false, false, false)
	a, b, c := g.AddVertex(), g.AddVertex(), g.AddVertex()
	for _, pair := range [][2]int64{{a, b}, {b, c}, {c, a}} {
		_, err := g.AddEdge(pair[0], pair[1])
		require.NoError(t, err)
	}
	girth, err := Girth(g)
	require.NoError(t, err)
	require.Equal(t, 3.0, girth)

	dag := engine.NewGraph(true, false, false, false)
	x, y := dag.AddVertex(), dag.AddVertex()
	_, err = dag.AddEdge(x, y)
	require.NoError(t, err)
	girth, err = Girth(dag)
	require.NoError(t, err)
	require.True(t, math.IsInf(girth, 1))
}

func TestCountTriangles(t *testing.T) {
	// K4 contains four triangles.
	g := engine.NewGraph(false, false, false, false)
	var vs []int64
	for i := 0; i < 4; i++ {
		vs = append(vs, g.AddVertex())
	}
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			_, err := g.AddEdge(vs[i], vs[j])
			require.NoError(t, err)
		}
	}
	count, err := CountTriangles(g)
	require.NoError(t, err)
	require.Equal(t, int64(4), count)

	directed := engine.NewGraph(true, false, false, false)
	_, err = CountTriangles(directed)
	require.Equal(t, errors.StatusUnsupportedOperation, errors.StatusOf(err))
}
