// Package errors provides the closed status-code set and structured error
// type used across the graph bridge.
//
// Every bridge entry point reports its outcome as a Status. Internally,
// failures travel as *Error values carrying the status, the operation name,
// a human-readable detail, and an optional cause chain:
//
//	err := errors.IllegalArgument("graph_add_edge", "no such vertex %d", v)
//	errors.StatusOf(err) // StatusIllegalArgument
//
// All errors implement the standard error interface and support errors.Is/As.
// StatusOf maps any foreign error to StatusError, so nothing escapes the
// bridge in an unclassified form.
package errors
