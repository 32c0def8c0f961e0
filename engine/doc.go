// Package engine hosts the embedded graph engine: the process-wide
// lifecycle, the graph store, the typed collection views and iterators, and
// the result objects that algorithm delegates produce.
//
// The engine is a process-wide singleton with an explicit lifecycle:
//
//	engine.Initialize(nil)
//	defer engine.Shutdown()
//
// Initialize is idempotent; Shutdown is terminal — the engine cannot be
// reinitialized within the same process. All engine-resident objects that
// callers hold are reachable only through the handle table returned by
// Handles().
//
// Vertices and edges are identified by int64 ids, never by handles. A graph
// carries four immutable traits chosen at creation: directed, weighted,
// self-loops allowed, and multiple edges allowed.
package engine
