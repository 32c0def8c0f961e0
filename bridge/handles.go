package bridge

import (
	"github.com/hexlattice/graphbridge/engine"
	"github.com/hexlattice/graphbridge/errors"
	"github.com/hexlattice/graphbridge/resource"
)

// Handle resolution. A zero handle is a null-reference error, an unknown or
// destroyed handle an invalid-handle error, and a live handle of the wrong
// kind a class-cast error. Sets and maps get one extra distinction: a long
// operation on a live double-typed instance (or vice versa) is an
// illegal-argument error rather than a class cast, since the instance is
// the right container family.

func lookupAny(op string, h resource.Handle) (any, resource.Kind, error) {
	if h == 0 {
		return nil, resource.KindInvalid, errors.NullPointer(op, "nil handle")
	}
	v, kind, ok := engine.Handles().Get(h)
	if !ok {
		return nil, resource.KindInvalid, errors.InvalidHandle(op, uint64(h))
	}
	return v, kind, nil
}

func lookupKind(op string, h resource.Handle, want resource.Kind) (any, error) {
	v, kind, err := lookupAny(op, h)
	if err != nil {
		return nil, err
	}
	if kind != want {
		return nil, errors.ClassCast(op, want.String(), kind.String())
	}
	return v, nil
}

func getGraph(op string, h resource.Handle) (*engine.Graph, error) {
	v, err := lookupKind(op, h, resource.KindGraph)
	if err != nil {
		return nil, err
	}
	return v.(*engine.Graph), nil
}

func getPath(op string, h resource.Handle) (*engine.GraphPath, error) {
	v, err := lookupKind(op, h, resource.KindPath)
	if err != nil {
		return nil, err
	}
	return v.(*engine.GraphPath), nil
}

func getLongSet(op string, h resource.Handle) (*engine.LongSet, error) {
	v, kind, err := lookupAny(op, h)
	if err != nil {
		return nil, err
	}
	switch kind {
	case resource.KindLongSet:
		return v.(*engine.LongSet), nil
	case resource.KindDoubleSet:
		return nil, errors.IllegalArgument(op, "long operation on double-typed set")
	default:
		return nil, errors.ClassCast(op, resource.KindLongSet.String(), kind.String())
	}
}

func getDoubleSet(op string, h resource.Handle) (*engine.DoubleSet, error) {
	v, kind, err := lookupAny(op, h)
	if err != nil {
		return nil, err
	}
	switch kind {
	case resource.KindDoubleSet:
		return v.(*engine.DoubleSet), nil
	case resource.KindLongSet:
		return nil, errors.IllegalArgument(op, "double operation on long-typed set")
	default:
		return nil, errors.ClassCast(op, resource.KindDoubleSet.String(), kind.String())
	}
}

func getLongMap(op string, h resource.Handle) (*engine.LongLongMap, error) {
	v, kind, err := lookupAny(op, h)
	if err != nil {
		return nil, err
	}
	switch kind {
	case resource.KindLongMap:
		return v.(*engine.LongLongMap), nil
	case resource.KindDoubleMap:
		return nil, errors.IllegalArgument(op, "long operation on double-valued map")
	default:
		return nil, errors.ClassCast(op, resource.KindLongMap.String(), kind.String())
	}
}

func getDoubleMap(op string, h resource.Handle) (*engine.LongDoubleMap, error) {
	v, kind, err := lookupAny(op, h)
	if err != nil {
		return nil, err
	}
	switch kind {
	case resource.KindDoubleMap:
		return v.(*engine.LongDoubleMap), nil
	case resource.KindLongMap:
		return nil, errors.IllegalArgument(op, "double operation on long-valued map")
	default:
		return nil, errors.ClassCast(op, resource.KindDoubleMap.String(), kind.String())
	}
}

func insertHandle(op string, kind resource.Kind, v any) (resource.Handle, error) {
	h, err := engine.Handles().Insert(kind, v)
	if err != nil {
		return 0, errors.Wrap(errors.StatusError, op, err, "handle registry unavailable")
	}
	return h, nil
}

// longSetHandle wraps a result vertex/edge set produced by a delegate.
func longSetHandle(op string, s *engine.LongSet) (Value, error) {
	h, err := insertHandle(op, resource.KindLongSet, s)
	if err != nil {
		return Value{}, err
	}
	return HandleValue(h), nil
}

func init() {
	register(OpSpec{
		Name:   "handles_destroy",
		Params: []ValueKind{KindHandle},
		Outs:   nil,
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			const op = "handles_destroy"
			h := args[0].Handle()
			if h == 0 {
				return nil, errors.NullPointer(op, "nil handle")
			}
			if _, ok := engine.Handles().Remove(h); !ok {
				return nil, errors.InvalidHandle(op, uint64(h))
			}
			return nil, nil
		},
	})
}

// DestroyHandle releases a handle of any kind. Destroying an already
// destroyed handle fails and leaves the registry intact.
func (t *Thread) DestroyHandle(h resource.Handle) errors.Status {
	return t.call("handles_destroy", []Value{HandleValue(h)})
}
