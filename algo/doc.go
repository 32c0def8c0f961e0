// Package algo implements the delegate operations invoked through the
// bridge's algorithm surface: shortest paths, connectivity, spanning trees,
// cliques, coloring, matching, vertex covers, centrality scoring, tour
// heuristics, graph generators, and textual exporters.
//
// Every function takes the engine's graph and plain parameters and returns
// engine result objects (paths, sets, maps) plus an error classified by the
// bridge's status taxonomy. The bridge wraps the results into handles; this
// package never sees handles.
//
// Algorithms iterate vertices and edges in ascending id order, so results
// are deterministic for a given graph and seed.
package algo
