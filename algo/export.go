package algo

import (
	"bufio"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/hexlattice/graphbridge/engine"
	"github.com/hexlattice/graphbridge/errors"
)

// ExportFormat names a textual output format.
type ExportFormat string

const (
	// FormatDIMACSShortestPath is the DIMACS shortest-path instance format
	// ("p sp ..." with weighted arc lines).
	FormatDIMACSShortestPath ExportFormat = "dimacs_sp"
	// FormatDIMACSMaxClique is the DIMACS clique instance format
	// ("p edge ...").
	FormatDIMACSMaxClique ExportFormat = "dimacs_maxclique"
	// FormatDIMACSColoring is the DIMACS coloring instance format
	// ("p col ...").
	FormatDIMACSColoring ExportFormat = "dimacs_coloring"
)

// Export writes a textual representation of the graph to path. DIMACS
// formats number vertices 1..n in ascending id order. Failures are
// classified as export errors.
func Export(g *engine.Graph, path string, format ExportFormat) error {
	const op = "export"

	var designator string
	switch format {
	case FormatDIMACSShortestPath:
		designator = "sp"
	case FormatDIMACSMaxClique:
		designator = "edge"
	case FormatDIMACSColoring:
		designator = "col"
	default:
		return errors.IllegalArgument(op, "unknown export format %q", string(format))
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Export(op, "create output file", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := writeDIMACS(w, g, designator); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return errors.Export(op, "flush output file", err)
	}
	if err := f.Close(); err != nil {
		return errors.Export(op, "close output file", err)
	}

	engine.Logger().Debug("graph exported",
		zap.String("path", path),
		zap.String("format", string(format)),
	)
	return nil
}

func writeDIMACS(w *bufio.Writer, g *engine.Graph, designator string) error {
	const op = "export"

	// DIMACS vertex numbers are 1-based and dense.
	index := make(map[int64]int64, g.VertexCount())
	for i, v := range g.Vertices() {
		index[v] = int64(i + 1)
	}

	if _, err := fmt.Fprintf(w, "p %s %d %d\n", designator, g.VertexCount(), g.EdgeCount()); err != nil {
		return errors.Export(op, "write header", err)
	}

	for _, eid := range g.Edges() {
		rec, err := g.EdgeByID(eid)
		if err != nil {
			return err
		}
		if designator == "sp" {
			weight, err := g.EdgeWeight(eid)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(w, "a %d %d %v\n", index[rec.Source], index[rec.Target], weight)
			if err != nil {
				return errors.Export(op, "write arc", err)
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "e %d %d\n", index[rec.Source], index[rec.Target]); err != nil {
			return errors.Export(op, "write edge", err)
		}
	}
	return nil
}
