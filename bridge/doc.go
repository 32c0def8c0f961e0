// Package bridge is the stable calling surface over the embedded graph
// engine. Callers attach their OS thread to obtain a Thread token, drive
// graphs and algorithm delegates through opaque handles and 64-bit ids,
// read results from typed output slots, and destroy every handle they
// received. Every entry point returns a Status; failures additionally land
// on the token's thread-local error channel.
//
// All entry points share one dispatch path through a declarative operation
// registry, so generated callers can invoke operations by name with the
// same semantics as the typed methods.
package bridge
