package algo

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hexlattice/graphbridge/engine"
	"github.com/hexlattice/graphbridge/errors"
)

func TestExport_DIMACSShortestPath(t *testing.T) {
	g := engine.NewGraph(true, true, false, false)
	a, b, c := g.AddVertex(), g.AddVertex(), g.AddVertex()
	e1, err := g.AddEdge(a, b)
	require.NoError(t, err)
	require.NoError(t, g.SetEdgeWeight(e1, 2.5))
	_, err = g.AddEdge(b, c)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "graph.sp")
	require.NoError(t, Export(g, path, FormatDIMACSShortestPath))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Equal(t, "p sp 3 2", lines[0])
	require.Equal(t, "a 1 2 2.5", lines[1])
	require.Equal(t, "a 2 3 1", lines[2])
}

func TestExport_DIMACSCliqueAndColoring(t *testing.T) {
	g := engine.NewGraph(false, false, false, false)
	require.NoError(t, GenerateComplete(g, 3))

	cliquePath := filepath.Join(t.TempDir(), "graph.clq")
	require.NoError(t, Export(g, cliquePath, FormatDIMACSMaxClique))
	data, err := os.ReadFile(cliquePath)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "p edge 3 3\n"))
	require.Contains(t, string(data), "e 1 2\n")

	colPath := filepath.Join(t.TempDir(), "graph.col")
	require.NoError(t, Export(g, colPath, FormatDIMACSColoring))
	data, err = os.ReadFile(colPath)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "p col 3 3\n"))
}

func TestExport_Failures(t *testing.T) {
	g := engine.NewGraph(false, false, false, false)

	err := Export(g, filepath.Join(t.TempDir(), "out"), ExportFormat("gexf"))
	require.Equal(t, errors.StatusIllegalArgument, errors.StatusOf(err))

	err = Export(g, filepath.Join(t.TempDir(), "missing", "dir", "out"), FormatDIMACSShortestPath)
	require.Equal(t, errors.StatusExportError, errors.StatusOf(err))
}
