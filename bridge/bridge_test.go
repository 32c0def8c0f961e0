package bridge

import (
	"os"
	"testing"

	"github.com/hexlattice/graphbridge/engine"
	"github.com/hexlattice/graphbridge/errors"
	"github.com/hexlattice/graphbridge/resource"
)

func TestMain(m *testing.M) {
	if err := engine.Initialize(nil); err != nil {
		panic(err)
	}
	code := m.Run()
	_ = engine.Shutdown()
	os.Exit(code)
}

func attach(t *testing.T) *Thread {
	t.Helper()
	th, st := Attach()
	if !st.OK() {
		t.Fatalf("Attach: %v", st)
	}
	t.Cleanup(func() { th.Detach() })
	return th
}

func mustOK(t *testing.T, st errors.Status, op string) {
	t.Helper()
	if !st.OK() {
		t.Fatalf("%s: %v", op, st)
	}
}

func TestAttachDetach(t *testing.T) {
	th, st := Attach()
	if !st.OK() {
		t.Fatalf("Attach: %v", st)
	}
	if !th.IsAttached() {
		t.Fatal("token not attached after Attach")
	}
	if st := th.Attach(); !st.OK() {
		t.Fatalf("re-attach should be a no-op success, got %v", st)
	}
	if st := th.Detach(); !st.OK() {
		t.Fatalf("Detach: %v", st)
	}
	if th.IsAttached() {
		t.Fatal("token still attached after Detach")
	}
	if st := th.Detach(); st.OK() {
		t.Fatal("detaching a detached token should fail")
	}
}

func TestDetachedTokenFails(t *testing.T) {
	th, _ := Attach()
	mustOK(t, th.Detach(), "Detach")

	var h resource.Handle
	if st := th.CreateGraph(false, false, false, false, &h); st != errors.StatusError {
		t.Fatalf("call on detached token: want %v, got %v", errors.StatusError, st)
	}
	if h != 0 {
		t.Fatal("output slot written on failed call")
	}
}

func TestErrorChannelRoundTrip(t *testing.T) {
	th := attach(t)

	var n int64
	if st := th.VertexCount(0, &n); st != errors.StatusNullPointer {
		t.Fatalf("nil graph handle: want %v, got %v", errors.StatusNullPointer, st)
	}
	if th.LastError() != errors.StatusNullPointer {
		t.Fatalf("LastError = %v", th.LastError())
	}
	if th.LastErrorMessage() == "" {
		t.Fatal("LastErrorMessage empty after failure")
	}

	// A later success must not clear the channel.
	var g resource.Handle
	mustOK(t, th.CreateGraph(true, false, false, false, &g), "CreateGraph")
	if th.LastError() != errors.StatusNullPointer {
		t.Fatal("success cleared the error channel")
	}

	th.ClearError()
	if th.LastError() != errors.StatusSuccess || th.LastErrorMessage() != "" {
		t.Fatal("ClearError did not reset the channel")
	}

	mustOK(t, th.DestroyHandle(g), "DestroyHandle")
}

func TestEndToEndShortestPath(t *testing.T) {
	th := attach(t)

	var g resource.Handle
	mustOK(t, th.CreateGraph(true, false, false, false, &g), "CreateGraph")
	for id := int64(0); id < 3; id++ {
		mustOK(t, th.AddVertexWithID(g, id), "AddVertexWithID")
	}
	var e int64
	mustOK(t, th.AddEdge(g, 0, 1, &e), "AddEdge")
	mustOK(t, th.AddEdge(g, 1, 2, &e), "AddEdge")

	var in, out int64
	mustOK(t, th.InDegreeOf(g, 1, &in), "InDegreeOf")
	mustOK(t, th.OutDegreeOf(g, 1, &out), "OutDegreeOf")
	if in != 1 || out != 1 {
		t.Fatalf("degree of vertex 1: in=%d out=%d, want 1/1", in, out)
	}

	var found bool
	var path resource.Handle
	mustOK(t, th.DijkstraShortestPath(g, 0, 2, &found, &path), "DijkstraShortestPath")
	if !found {
		t.Fatal("path 0->2 not found")
	}
	var length int64
	var weight float64
	mustOK(t, th.PathLength(path, &length), "PathLength")
	mustOK(t, th.PathWeight(path, &weight), "PathWeight")
	if length != 2 {
		t.Fatalf("path length = %d, want 2", length)
	}
	if weight != 2.0 {
		t.Fatalf("path weight = %v, want 2.0", weight)
	}

	var start, end int64
	mustOK(t, th.PathStart(path, &start), "PathStart")
	mustOK(t, th.PathEnd(path, &end), "PathEnd")
	if start != 0 || end != 2 {
		t.Fatalf("path endpoints %d->%d, want 0->2", start, end)
	}

	mustOK(t, th.DestroyHandle(path), "DestroyHandle(path)")
	mustOK(t, th.DestroyHandle(g), "DestroyHandle(graph)")
}

func TestConnectivityScenario(t *testing.T) {
	th := attach(t)

	var g resource.Handle
	mustOK(t, th.CreateGraph(false, false, false, false, &g), "CreateGraph")
	for i := 0; i < 5; i++ {
		var id int64
		mustOK(t, th.AddVertex(g, &id), "AddVertex")
	}

	connected, comps := runWeakComponents(t, th, g)
	if connected {
		t.Fatal("edgeless 5-vertex graph reported connected")
	}
	if comps != 5 {
		t.Fatalf("component count = %d, want 5", comps)
	}

	var e int64
	for i := int64(0); i < 4; i++ {
		mustOK(t, th.AddEdge(g, i, i+1, &e), "AddEdge")
	}
	connected, comps = runWeakComponents(t, th, g)
	if !connected {
		t.Fatal("path over all vertices reported disconnected")
	}
	if comps != 1 {
		t.Fatalf("component count = %d, want 1", comps)
	}

	mustOK(t, th.DestroyHandle(g), "DestroyHandle")
}

// runWeakComponents drains the component iterator, destroying every handle
// it produced, and returns the connectivity flag and component count.
func runWeakComponents(t *testing.T, th *Thread, g resource.Handle) (bool, int) {
	t.Helper()

	var connected bool
	var it resource.Handle
	mustOK(t, th.WeakComponents(g, &connected, &it), "WeakComponents")

	count := 0
	for {
		var more bool
		mustOK(t, th.IteratorHasNext(it, &more), "IteratorHasNext")
		if !more {
			break
		}
		var comp resource.Handle
		mustOK(t, th.IteratorNextObject(it, &comp), "IteratorNextObject")
		var size int64
		mustOK(t, th.SetSize(comp, &size), "SetSize")
		if size == 0 {
			t.Fatal("empty component set")
		}
		mustOK(t, th.DestroyHandle(comp), "DestroyHandle(component)")
		count++
	}
	mustOK(t, th.DestroyHandle(it), "DestroyHandle(iterator)")
	return connected, count
}

func TestIteratorExhaustion(t *testing.T) {
	th := attach(t)

	var g resource.Handle
	mustOK(t, th.CreateGraph(false, false, false, false, &g), "CreateGraph")
	var id int64
	mustOK(t, th.AddVertex(g, &id), "AddVertex")
	mustOK(t, th.AddVertex(g, &id), "AddVertex")

	var it resource.Handle
	mustOK(t, th.VertexIterator(g, &it), "VertexIterator")

	for i := 0; i < 2; i++ {
		var more bool
		mustOK(t, th.IteratorHasNext(it, &more), "IteratorHasNext")
		if !more {
			t.Fatalf("iterator exhausted after %d of 2 elements", i)
		}
		var v int64
		mustOK(t, th.IteratorNextLong(it, &v), "IteratorNextLong")
	}

	// Exhaustion is terminal and idempotently observable.
	for i := 0; i < 3; i++ {
		var more bool
		mustOK(t, th.IteratorHasNext(it, &more), "IteratorHasNext")
		if more {
			t.Fatal("HasNext true after exhaustion")
		}
	}

	th.ClearError()
	var v int64
	if st := th.IteratorNextLong(it, &v); st != errors.StatusNoSuchElement {
		t.Fatalf("next past exhaustion: want %v, got %v", errors.StatusNoSuchElement, st)
	}
	if th.LastError() != errors.StatusNoSuchElement {
		t.Fatal("error channel not populated by exhausted next")
	}

	mustOK(t, th.DestroyHandle(it), "DestroyHandle(iterator)")
	mustOK(t, th.DestroyHandle(g), "DestroyHandle(graph)")
}

func TestSetTypeIsolation(t *testing.T) {
	th := attach(t)

	var s resource.Handle
	mustOK(t, th.CreateLongSet(true, &s), "CreateLongSet")

	var inserted bool
	if st := th.SetAddDouble(s, 2.5, &inserted); st != errors.StatusIllegalArgument {
		t.Fatalf("double add on long set: want %v, got %v", errors.StatusIllegalArgument, st)
	}
	var size int64
	mustOK(t, th.SetSize(s, &size), "SetSize")
	if size != 0 {
		t.Fatalf("failed add inserted an element, size = %d", size)
	}

	mustOK(t, th.SetAddLong(s, 7, &inserted), "SetAddLong")
	if !inserted {
		t.Fatal("first insert not reported as new")
	}
	mustOK(t, th.SetAddLong(s, 7, &inserted), "SetAddLong")
	if inserted {
		t.Fatal("duplicate insert reported as new")
	}

	mustOK(t, th.DestroyHandle(s), "DestroyHandle")
}

func TestMapViews(t *testing.T) {
	th := attach(t)

	var m resource.Handle
	mustOK(t, th.CreateDoubleMap(true, &m), "CreateDoubleMap")
	mustOK(t, th.MapPutDouble(m, 1, 0.5), "MapPutDouble")
	mustOK(t, th.MapPutDouble(m, 2, 1.5), "MapPutDouble")
	mustOK(t, th.MapPutDouble(m, 1, 2.5), "MapPutDouble") // upsert

	var size int64
	mustOK(t, th.MapSize(m, &size), "MapSize")
	if size != 2 {
		t.Fatalf("map size = %d, want 2", size)
	}
	var v float64
	mustOK(t, th.MapGetDouble(m, 1, &v), "MapGetDouble")
	if v != 2.5 {
		t.Fatalf("map[1] = %v, want 2.5 after upsert", v)
	}

	if st := th.MapGetDouble(m, 99, &v); st != errors.StatusNoSuchElement {
		t.Fatalf("absent key: want %v, got %v", errors.StatusNoSuchElement, st)
	}

	var removed float64
	mustOK(t, th.MapRemoveDouble(m, 2, &removed), "MapRemoveDouble")
	if removed != 1.5 {
		t.Fatalf("removed value = %v, want 1.5", removed)
	}

	// Long-typed access on a double-valued map is rejected.
	var lv int64
	if st := th.MapGetLong(m, 1, &lv); st != errors.StatusIllegalArgument {
		t.Fatalf("long get on double map: want %v, got %v", errors.StatusIllegalArgument, st)
	}

	mustOK(t, th.DestroyHandle(m), "DestroyHandle")
}

func TestDoubleDestroy(t *testing.T) {
	th := attach(t)

	var g resource.Handle
	mustOK(t, th.CreateGraph(false, false, false, false, &g), "CreateGraph")
	mustOK(t, th.DestroyHandle(g), "DestroyHandle")

	if st := th.DestroyHandle(g); st != errors.StatusIllegalArgument {
		t.Fatalf("second destroy: want %v, got %v", errors.StatusIllegalArgument, st)
	}
	var n int64
	if st := th.VertexCount(g, &n); st != errors.StatusIllegalArgument {
		t.Fatalf("use after destroy: want %v, got %v", errors.StatusIllegalArgument, st)
	}

	// The registry stays usable after the failed destroy.
	var g2 resource.Handle
	mustOK(t, th.CreateGraph(false, false, false, false, &g2), "CreateGraph")
	if g2 == g {
		t.Fatal("destroyed handle value reissued")
	}
	var id int64
	mustOK(t, th.AddVertex(g2, &id), "AddVertex")
	mustOK(t, th.DestroyHandle(g2), "DestroyHandle")
}

func TestHandleKindMismatch(t *testing.T) {
	th := attach(t)

	var s resource.Handle
	mustOK(t, th.CreateLongSet(false, &s), "CreateLongSet")

	var n int64
	if st := th.VertexCount(s, &n); st != errors.StatusClassCast {
		t.Fatalf("set handle as graph: want %v, got %v", errors.StatusClassCast, st)
	}

	mustOK(t, th.DestroyHandle(s), "DestroyHandle")
}

func TestInvokeDispatch(t *testing.T) {
	th := attach(t)

	if st := th.Invoke("no_such_operation", nil); st != errors.StatusIllegalArgument {
		t.Fatalf("unknown operation: want %v, got %v", errors.StatusIllegalArgument, st)
	}

	if st := th.Invoke("graph_create", []Value{BoolValue(true)}); st != errors.StatusIllegalArgument {
		t.Fatalf("arity mismatch: want %v, got %v", errors.StatusIllegalArgument, st)
	}

	args := []Value{BoolValue(true), BoolValue(false), LongValue(3), BoolValue(false)}
	if st := th.Invoke("graph_create", args); st != errors.StatusIllegalArgument {
		t.Fatalf("argument kind mismatch: want %v, got %v", errors.StatusIllegalArgument, st)
	}

	var g resource.Handle
	args = []Value{BoolValue(true), BoolValue(false), BoolValue(false), BoolValue(false)}
	if st := th.Invoke("graph_create", args, &g); !st.OK() {
		t.Fatalf("Invoke(graph_create): %v", st)
	}
	if g == 0 {
		t.Fatal("no handle written")
	}

	var directed bool
	if st := th.Invoke("graph_is_directed", []Value{HandleValue(g)}, &directed); !st.OK() {
		t.Fatalf("Invoke(graph_is_directed): %v", st)
	}
	if !directed {
		t.Fatal("trait lost through name-based dispatch")
	}

	mustOK(t, th.DestroyHandle(g), "DestroyHandle")
}

func TestOperationsCatalog(t *testing.T) {
	names := Operations()
	if len(names) == 0 {
		t.Fatal("empty operation catalog")
	}
	for _, name := range []string{"graph_create", "handles_destroy", "it_hasnext", "sp_exec_dijkstra", "export_dimacs"} {
		if _, ok := Lookup(name); !ok {
			t.Fatalf("operation %q not registered", name)
		}
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatal("catalog not sorted")
		}
	}
}
