// Package resource implements the bridge's handle registry.
//
// Callers never see engine-resident objects; they see 64-bit handles issued
// by a Table. Each handle packs a slot index and the slot's generation at
// creation time:
//
//	table := resource.NewTable()
//
//	h, _ := table.Insert(resource.KindGraph, g)
//	v, kind, ok := table.Get(h)
//	_, ok = table.Remove(h) // destroys h; a second Remove fails
//
// Destroying a handle bumps the slot generation before the slot is recycled,
// so stale handles are detected in O(1) and a handle value is never issued
// twice within a table's lifetime.
//
// Handles are kind-tagged (graph, iterator, set, map, path). The table
// reports the kind on lookup; callers enforce kind agreement and surface a
// mismatch as a class-cast error.
//
// Values are not garbage collected: every handle must be removed exactly
// once, or the table closed, for engine-side memory to be reclaimed. Values
// implementing Dropper are released on Remove and Close.
package resource
