package bridge

import (
	"math"
	"testing"

	"github.com/hexlattice/graphbridge/errors"
	"github.com/hexlattice/graphbridge/resource"
)

// Diamond network: source feeds two middle vertices that both feed the
// sink, with every arc at capacity 2. Maximum flow is 4.
func buildFlowGraph(t *testing.T, th *Thread) (resource.Handle, int64, int64) {
	t.Helper()
	var g resource.Handle
	mustOK(t, th.CreateGraph(true, true, false, false, &g), "CreateGraph")
	t.Cleanup(func() { th.DestroyHandle(g) })

	var s, a, b, sink int64
	mustOK(t, th.AddVertex(g, &s), "AddVertex")
	mustOK(t, th.AddVertex(g, &a), "AddVertex")
	mustOK(t, th.AddVertex(g, &b), "AddVertex")
	mustOK(t, th.AddVertex(g, &sink), "AddVertex")
	for _, pair := range [][2]int64{{s, a}, {s, b}, {a, sink}, {b, sink}} {
		var e int64
		mustOK(t, th.AddEdge(g, pair[0], pair[1], &e), "AddEdge")
		mustOK(t, th.SetEdgeWeight(g, e, 2), "SetEdgeWeight")
	}
	return g, s, sink
}

func TestMaxFlowOps(t *testing.T) {
	th := attach(t)
	g, s, sink := buildFlowGraph(t, th)

	var value float64
	var flows, cut resource.Handle
	mustOK(t, th.DinicMaxFlow(g, s, sink, &value, &flows, &cut), "DinicMaxFlow")
	defer th.DestroyHandle(flows)
	defer th.DestroyHandle(cut)

	if value != 4 {
		t.Fatalf("flow value %v, want 4", value)
	}

	var edges int64
	mustOK(t, th.EdgeCount(g, &edges), "EdgeCount")
	var flowCount int64
	mustOK(t, th.MapSize(flows, &flowCount), "MapSize")
	if flowCount != edges {
		t.Fatalf("flow map covers %d edges, want %d", flowCount, edges)
	}

	var inCut bool
	mustOK(t, th.SetContainsLong(cut, s, &inCut), "SetContainsLong")
	if !inCut {
		t.Fatal("source missing from cut partition")
	}
	mustOK(t, th.SetContainsLong(cut, sink, &inCut), "SetContainsLong")
	if inCut {
		t.Fatal("sink inside source partition")
	}

	var ekValue, prValue float64
	var h1, h2, h3, h4 resource.Handle
	mustOK(t, th.EdmondsKarpMaxFlow(g, s, sink, &ekValue, &h1, &h2), "EdmondsKarpMaxFlow")
	mustOK(t, th.PushRelabelMaxFlow(g, s, sink, &prValue, &h3, &h4), "PushRelabelMaxFlow")
	for _, h := range []resource.Handle{h1, h2, h3, h4} {
		mustOK(t, th.DestroyHandle(h), "DestroyHandle")
	}
	if ekValue != 4 || prValue != 4 {
		t.Fatalf("flow values %v and %v, want 4", ekValue, prValue)
	}
}

func TestMaxFlowOp_BadVertices(t *testing.T) {
	th := attach(t)
	g, s, _ := buildFlowGraph(t, th)

	var value float64
	var flows, cut resource.Handle
	if st := th.DinicMaxFlow(g, s, s, &value, &flows, &cut); st != errors.StatusIllegalArgument {
		t.Fatalf("coinciding source and sink: want %v, got %v", errors.StatusIllegalArgument, st)
	}
	if flows != 0 || cut != 0 {
		t.Fatal("output handles written on failed call")
	}
}

func TestMinCutOps(t *testing.T) {
	th := attach(t)
	g, s, sink := buildFlowGraph(t, th)

	var weight float64
	var partition resource.Handle
	mustOK(t, th.MinSTCut(g, s, sink, &weight, &partition), "MinSTCut")
	defer th.DestroyHandle(partition)
	if weight != 4 {
		t.Fatalf("cut weight %v, want 4", weight)
	}

	// Stoer-Wagner wants an undirected graph.
	var undirected resource.Handle
	mustOK(t, th.CreateGraph(false, true, false, false, &undirected), "CreateGraph")
	defer th.DestroyHandle(undirected)
	var a, b, c int64
	mustOK(t, th.AddVertex(undirected, &a), "AddVertex")
	mustOK(t, th.AddVertex(undirected, &b), "AddVertex")
	mustOK(t, th.AddVertex(undirected, &c), "AddVertex")
	var e int64
	mustOK(t, th.AddEdge(undirected, a, b, &e), "AddEdge")
	mustOK(t, th.SetEdgeWeight(undirected, e, 5), "SetEdgeWeight")
	mustOK(t, th.AddEdge(undirected, b, c, &e), "AddEdge")
	mustOK(t, th.SetEdgeWeight(undirected, e, 2), "SetEdgeWeight")

	var globalWeight float64
	var side resource.Handle
	mustOK(t, th.MinCutStoerWagner(undirected, &globalWeight, &side), "MinCutStoerWagner")
	defer th.DestroyHandle(side)
	if globalWeight != 2 {
		t.Fatalf("global min cut %v, want 2", globalWeight)
	}

	if st := th.MinCutStoerWagner(g, &globalWeight, &side); st != errors.StatusUnsupportedOperation {
		t.Fatalf("directed input: want %v, got %v", errors.StatusUnsupportedOperation, st)
	}
}

func TestGomoryHuTreeOp(t *testing.T) {
	th := attach(t)

	var g resource.Handle
	mustOK(t, th.CreateGraph(false, true, false, false, &g), "CreateGraph")
	defer th.DestroyHandle(g)
	var a, b, c int64
	mustOK(t, th.AddVertex(g, &a), "AddVertex")
	mustOK(t, th.AddVertex(g, &b), "AddVertex")
	mustOK(t, th.AddVertex(g, &c), "AddVertex")
	for _, pair := range [][2]int64{{a, b}, {b, c}, {a, c}} {
		var e int64
		mustOK(t, th.AddEdge(g, pair[0], pair[1], &e), "AddEdge")
		mustOK(t, th.SetEdgeWeight(g, e, 1), "SetEdgeWeight")
	}

	var tree resource.Handle
	mustOK(t, th.GomoryHuTree(g, &tree), "GomoryHuTree")
	defer th.DestroyHandle(tree)

	// The tree is an ordinary graph handle: two edges over three vertices,
	// each carrying a cut weight of 2.
	var n, m int64
	mustOK(t, th.VertexCount(tree, &n), "VertexCount")
	mustOK(t, th.EdgeCount(tree, &m), "EdgeCount")
	if n != 3 || m != 2 {
		t.Fatalf("tree shape %d vertices %d edges, want 3 and 2", n, m)
	}

	var equiv resource.Handle
	mustOK(t, th.EquivalentFlowTree(g, &equiv), "EquivalentFlowTree")
	mustOK(t, th.DestroyHandle(equiv), "DestroyHandle")
}

func TestMetricsOps(t *testing.T) {
	th := attach(t)

	var g resource.Handle
	mustOK(t, th.CreateGraph(false, false, false, false, &g), "CreateGraph")
	defer th.DestroyHandle(g)
	mustOK(t, th.GenerateRing(g, 5), "GenerateRing")

	var diameter, radius, girth float64
	mustOK(t, th.Diameter(g, &diameter), "Diameter")
	mustOK(t, th.Radius(g, &radius), "Radius")
	mustOK(t, th.Girth(g, &girth), "Girth")
	if diameter != 2 || radius != 2 || girth != 5 {
		t.Fatalf("ring metrics diameter=%v radius=%v girth=%v, want 2, 2, 5", diameter, radius, girth)
	}

	var triangles int64
	mustOK(t, th.CountTriangles(g, &triangles), "CountTriangles")
	if triangles != 0 {
		t.Fatalf("ring has %d triangles, want 0", triangles)
	}

	var disconnected resource.Handle
	mustOK(t, th.CreateGraph(false, false, false, false, &disconnected), "CreateGraph")
	defer th.DestroyHandle(disconnected)
	mustOK(t, th.GenerateEmpty(disconnected, 2), "GenerateEmpty")
	mustOK(t, th.Diameter(disconnected, &diameter), "Diameter")
	if !math.IsInf(diameter, 1) {
		t.Fatalf("disconnected diameter %v, want +Inf", diameter)
	}
}
