package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/hexlattice/graphbridge/bridge"
	"github.com/hexlattice/graphbridge/engine"
	"github.com/hexlattice/graphbridge/errors"
	"github.com/hexlattice/graphbridge/resource"
)

func main() {
	var (
		gen         = flag.String("gen", "", "Generator (empty|complete|bipartite|ring|ba|ws|kleinberg|gnm|gnp)")
		n           = flag.Int64("n", 10, "Vertex count")
		n2          = flag.Int64("n2", 5, "Second partition size (bipartite)")
		m           = flag.Int64("m", 15, "Edge count (gnm) / edges per new vertex (ba)")
		m0          = flag.Int64("m0", 3, "Initial clique size (ba)")
		k           = flag.Int64("k", 4, "Lattice neighbourhood size (ws)")
		q           = flag.Int64("q", 2, "Long-range contacts per vertex (kleinberg)")
		p           = flag.Float64("p", 0.1, "Edge probability (gnp) / rewiring probability (ws)")
		r           = flag.Float64("r", 2.0, "Clustering exponent (kleinberg)")
		seed        = flag.Int64("seed", 1, "Generator seed")
		directed    = flag.Bool("directed", false, "Create a directed graph")
		weighted    = flag.Bool("weighted", false, "Create a weighted graph")
		exportPath  = flag.String("export", "", "Export destination path (optional)")
		format      = flag.String("format", "dimacs_sp", "Export format (dimacs_sp|dimacs_maxclique|dimacs_coloring)")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *gen == "" {
		fmt.Fprintln(os.Stderr, "Usage: graphbridge -gen <generator> [-n count] [-seed s] [-export path -format fmt]")
		fmt.Fprintln(os.Stderr, "       graphbridge -i  (interactive mode)")
		os.Exit(1)
	}

	params := genParams{
		n: *n, n2: *n2, m: *m, m0: *m0, k: *k, q: *q,
		p: *p, r: *r, seed: *seed,
		directed: *directed, weighted: *weighted,
	}
	if err := run(*gen, params, *exportPath, *format); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type genParams struct {
	n, n2, m, m0, k, q int64
	p, r               float64
	seed               int64
	directed, weighted bool
}

func run(gen string, params genParams, exportPath, format string) error {
	if err := engine.Initialize(nil); err != nil {
		return err
	}
	defer engine.Shutdown()

	th, st := bridge.Attach()
	if !st.OK() {
		return fmt.Errorf("attach: %v", st)
	}
	defer th.Detach()

	var g resource.Handle
	if err := check(th, th.CreateGraph(params.directed, params.weighted, false, false, &g), "create graph"); err != nil {
		return err
	}
	defer th.DestroyHandle(g)

	if err := generate(th, g, gen, params); err != nil {
		return err
	}
	if err := printStats(th, g, gen); err != nil {
		return err
	}

	if exportPath != "" {
		if err := check(th, th.ExportDIMACS(g, exportPath, format), "export"); err != nil {
			return err
		}
		fmt.Printf("\nExported to %s (%s)\n", exportPath, format)
	}
	return nil
}

func generate(th *bridge.Thread, g resource.Handle, gen string, p genParams) error {
	var st errors.Status
	switch gen {
	case "empty":
		st = th.GenerateEmpty(g, p.n)
	case "complete":
		st = th.GenerateComplete(g, p.n)
	case "bipartite":
		st = th.GenerateCompleteBipartite(g, p.n, p.n2)
	case "ring":
		st = th.GenerateRing(g, p.n)
	case "ba":
		st = th.GenerateBarabasiAlbert(g, p.m0, p.m, p.n, p.seed)
	case "ws":
		st = th.GenerateWattsStrogatz(g, p.n, p.k, p.p, p.seed)
	case "kleinberg":
		st = th.GenerateKleinberg(g, p.n, p.q, p.r, p.seed)
	case "gnm":
		st = th.GenerateGnm(g, p.n, p.m, p.seed)
	case "gnp":
		st = th.GenerateGnp(g, p.n, p.p, p.seed)
	default:
		return fmt.Errorf("unknown generator %q", gen)
	}
	return check(th, st, "generate "+gen)
}

func printStats(th *bridge.Thread, g resource.Handle, gen string) error {
	var vertices, edges int64
	if err := check(th, th.VertexCount(g, &vertices), "vertex count"); err != nil {
		return err
	}
	if err := check(th, th.EdgeCount(g, &edges), "edge count"); err != nil {
		return err
	}

	var connected bool
	var comps resource.Handle
	if err := check(th, th.WeakComponents(g, &connected, &comps), "connectivity"); err != nil {
		return err
	}
	count, err := drainComponents(th, comps)
	if err != nil {
		return err
	}

	fmt.Printf("Graph: %s\n", gen)
	fmt.Printf("Vertices: %d\n", vertices)
	fmt.Printf("Edges: %d\n", edges)
	fmt.Printf("Connected: %v\n", connected)
	fmt.Printf("Components: %d\n", count)
	return nil
}

// drainComponents counts the component sets and destroys every handle the
// connectivity call produced.
func drainComponents(th *bridge.Thread, it resource.Handle) (int, error) {
	defer th.DestroyHandle(it)

	count := 0
	for {
		var more bool
		if err := check(th, th.IteratorHasNext(it, &more), "component iterator"); err != nil {
			return 0, err
		}
		if !more {
			return count, nil
		}
		var comp resource.Handle
		if err := check(th, th.IteratorNextObject(it, &comp), "component iterator"); err != nil {
			return 0, err
		}
		th.DestroyHandle(comp)
		count++
	}
}

func check(th *bridge.Thread, st errors.Status, what string) error {
	if st.OK() {
		return nil
	}
	return fmt.Errorf("%s: %s", what, th.LastErrorMessage())
}
