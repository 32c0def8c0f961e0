package bridge

import (
	"fmt"
	"sort"

	"github.com/hexlattice/graphbridge/errors"
)

// OpSpec is a strongly typed handler record: the operation identifier, its
// parameter shape, its output shape, and the delegate. The whole entry-point
// surface is declared once as a table of these records; both the typed
// wrappers and name-based dispatch route through it.
type OpSpec struct {
	Name   string
	Params []ValueKind
	Outs   []ValueKind
	Call   func(t *Thread, args []Value) ([]Value, error)
}

var registry = map[string]OpSpec{}

func register(spec OpSpec) {
	if spec.Name == "" || spec.Call == nil {
		panic("bridge: incomplete operation spec")
	}
	if _, dup := registry[spec.Name]; dup {
		panic(fmt.Sprintf("bridge: duplicate operation %q", spec.Name))
	}
	registry[spec.Name] = spec
}

// Operations returns the identifiers of every registered operation, sorted.
func Operations() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the handler record for an operation identifier.
func Lookup(name string) (OpSpec, bool) {
	spec, ok := registry[name]
	return spec, ok
}

// dispatch validates the argument shape against the operation's record and
// runs the delegate. Validation failures never reach the delegate.
func dispatch(t *Thread, name string, args []Value) ([]Value, error) {
	spec, ok := registry[name]
	if !ok {
		return nil, errors.IllegalArgument(name, "unknown operation")
	}
	if len(args) != len(spec.Params) {
		return nil, errors.IllegalArgument(name, "expected %d arguments, got %d", len(spec.Params), len(args))
	}
	for i, want := range spec.Params {
		if args[i].Kind() != want {
			return nil, errors.IllegalArgument(name, "argument %d: expected %s, got %s", i, want, args[i].Kind())
		}
	}

	results, err := spec.Call(t, args)
	if err != nil {
		return nil, err
	}
	if len(results) != len(spec.Outs) {
		return nil, errors.Internal(name, fmt.Errorf("delegate produced %d outputs, registration declares %d", len(results), len(spec.Outs)))
	}
	return results, nil
}
