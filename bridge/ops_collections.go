package bridge

import (
	"github.com/hexlattice/graphbridge/engine"
	"github.com/hexlattice/graphbridge/errors"
	"github.com/hexlattice/graphbridge/resource"
)

// Iterator, set, map, and path entry points. Iterators are single pass:
// it_hasnext is a pure probe valid on every iterator kind, the it_next_*
// operations are typed to the cursor's element kind and fail with
// no-such-element once exhausted.

func init() {
	register(OpSpec{
		Name:   "it_hasnext",
		Params: []ValueKind{KindHandle},
		Outs:   []ValueKind{KindBool},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			const op = "it_hasnext"
			v, kind, err := lookupAny(op, args[0].Handle())
			if err != nil {
				return nil, err
			}
			switch it := v.(type) {
			case *engine.LongIterator:
				return []Value{BoolValue(it.HasNext())}, nil
			case *engine.DoubleIterator:
				return []Value{BoolValue(it.HasNext())}, nil
			case *engine.ObjectIterator:
				return []Value{BoolValue(it.HasNext())}, nil
			default:
				return nil, errors.ClassCast(op, "iterator", kind.String())
			}
		},
	})

	register(OpSpec{
		Name:   "it_next_long",
		Params: []ValueKind{KindHandle},
		Outs:   []ValueKind{KindLong},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			const op = "it_next_long"
			v, err := lookupKind(op, args[0].Handle(), resource.KindLongIterator)
			if err != nil {
				return nil, err
			}
			item, err := v.(*engine.LongIterator).Next()
			if err != nil {
				return nil, err
			}
			return []Value{LongValue(item)}, nil
		},
	})

	register(OpSpec{
		Name:   "it_next_double",
		Params: []ValueKind{KindHandle},
		Outs:   []ValueKind{KindDouble},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			const op = "it_next_double"
			v, err := lookupKind(op, args[0].Handle(), resource.KindDoubleIterator)
			if err != nil {
				return nil, err
			}
			item, err := v.(*engine.DoubleIterator).Next()
			if err != nil {
				return nil, err
			}
			return []Value{DoubleValue(item)}, nil
		},
	})

	register(OpSpec{
		Name:   "it_next_object",
		Params: []ValueKind{KindHandle},
		Outs:   []ValueKind{KindHandle},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			const op = "it_next_object"
			v, err := lookupKind(op, args[0].Handle(), resource.KindObjectIterator)
			if err != nil {
				return nil, err
			}
			item, err := v.(*engine.ObjectIterator).Next()
			if err != nil {
				return nil, err
			}
			h, ok := item.(resource.Handle)
			if !ok {
				return nil, errors.Internal(op, nil)
			}
			return []Value{HandleValue(h)}, nil
		},
	})

	register(OpSpec{
		Name:   "set_create_long",
		Params: []ValueKind{KindBool},
		Outs:   []ValueKind{KindHandle},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			h, err := insertHandle("set_create_long", resource.KindLongSet, engine.NewLongSet(args[0].Bool()))
			if err != nil {
				return nil, err
			}
			return []Value{HandleValue(h)}, nil
		},
	})

	register(OpSpec{
		Name:   "set_create_double",
		Params: []ValueKind{KindBool},
		Outs:   []ValueKind{KindHandle},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			h, err := insertHandle("set_create_double", resource.KindDoubleSet, engine.NewDoubleSet(args[0].Bool()))
			if err != nil {
				return nil, err
			}
			return []Value{HandleValue(h)}, nil
		},
	})

	register(OpSpec{
		Name:   "set_add_long",
		Params: []ValueKind{KindHandle, KindLong},
		Outs:   []ValueKind{KindBool},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			s, err := getLongSet("set_add_long", args[0].Handle())
			if err != nil {
				return nil, err
			}
			return []Value{BoolValue(s.Add(args[1].Long()))}, nil
		},
	})

	register(OpSpec{
		Name:   "set_add_double",
		Params: []ValueKind{KindHandle, KindDouble},
		Outs:   []ValueKind{KindBool},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			s, err := getDoubleSet("set_add_double", args[0].Handle())
			if err != nil {
				return nil, err
			}
			return []Value{BoolValue(s.Add(args[1].Double()))}, nil
		},
	})

	register(OpSpec{
		Name:   "set_remove_long",
		Params: []ValueKind{KindHandle, KindLong},
		Outs:   nil,
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			s, err := getLongSet("set_remove_long", args[0].Handle())
			if err != nil {
				return nil, err
			}
			s.Remove(args[1].Long())
			return nil, nil
		},
	})

	register(OpSpec{
		Name:   "set_remove_double",
		Params: []ValueKind{KindHandle, KindDouble},
		Outs:   nil,
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			s, err := getDoubleSet("set_remove_double", args[0].Handle())
			if err != nil {
				return nil, err
			}
			s.Remove(args[1].Double())
			return nil, nil
		},
	})

	register(OpSpec{
		Name:   "set_contains_long",
		Params: []ValueKind{KindHandle, KindLong},
		Outs:   []ValueKind{KindBool},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			s, err := getLongSet("set_contains_long", args[0].Handle())
			if err != nil {
				return nil, err
			}
			return []Value{BoolValue(s.Contains(args[1].Long()))}, nil
		},
	})

	register(OpSpec{
		Name:   "set_contains_double",
		Params: []ValueKind{KindHandle, KindDouble},
		Outs:   []ValueKind{KindBool},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			s, err := getDoubleSet("set_contains_double", args[0].Handle())
			if err != nil {
				return nil, err
			}
			return []Value{BoolValue(s.Contains(args[1].Double()))}, nil
		},
	})

	register(OpSpec{
		Name:   "set_size",
		Params: []ValueKind{KindHandle},
		Outs:   []ValueKind{KindLong},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			const op = "set_size"
			v, kind, err := lookupAny(op, args[0].Handle())
			if err != nil {
				return nil, err
			}
			switch s := v.(type) {
			case *engine.LongSet:
				return []Value{LongValue(s.Size())}, nil
			case *engine.DoubleSet:
				return []Value{LongValue(s.Size())}, nil
			default:
				return nil, errors.ClassCast(op, "set", kind.String())
			}
		},
	})

	register(OpSpec{
		Name:   "set_clear",
		Params: []ValueKind{KindHandle},
		Outs:   nil,
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			const op = "set_clear"
			v, kind, err := lookupAny(op, args[0].Handle())
			if err != nil {
				return nil, err
			}
			switch s := v.(type) {
			case *engine.LongSet:
				s.Clear()
			case *engine.DoubleSet:
				s.Clear()
			default:
				return nil, errors.ClassCast(op, "set", kind.String())
			}
			return nil, nil
		},
	})

	register(OpSpec{
		Name:   "set_iterator",
		Params: []ValueKind{KindHandle},
		Outs:   []ValueKind{KindHandle},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			const op = "set_iterator"
			v, kind, err := lookupAny(op, args[0].Handle())
			if err != nil {
				return nil, err
			}
			switch s := v.(type) {
			case *engine.LongSet:
				h, err := insertHandle(op, resource.KindLongIterator, s.Iterator())
				if err != nil {
					return nil, err
				}
				return []Value{HandleValue(h)}, nil
			case *engine.DoubleSet:
				h, err := insertHandle(op, resource.KindDoubleIterator, s.Iterator())
				if err != nil {
					return nil, err
				}
				return []Value{HandleValue(h)}, nil
			default:
				return nil, errors.ClassCast(op, "set", kind.String())
			}
		},
	})

	register(OpSpec{
		Name:   "map_create_long",
		Params: []ValueKind{KindBool},
		Outs:   []ValueKind{KindHandle},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			h, err := insertHandle("map_create_long", resource.KindLongMap, engine.NewLongLongMap(args[0].Bool()))
			if err != nil {
				return nil, err
			}
			return []Value{HandleValue(h)}, nil
		},
	})

	register(OpSpec{
		Name:   "map_create_double",
		Params: []ValueKind{KindBool},
		Outs:   []ValueKind{KindHandle},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			h, err := insertHandle("map_create_double", resource.KindDoubleMap, engine.NewLongDoubleMap(args[0].Bool()))
			if err != nil {
				return nil, err
			}
			return []Value{HandleValue(h)}, nil
		},
	})

	register(OpSpec{
		Name:   "map_put_long",
		Params: []ValueKind{KindHandle, KindLong, KindLong},
		Outs:   nil,
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			m, err := getLongMap("map_put_long", args[0].Handle())
			if err != nil {
				return nil, err
			}
			m.Put(args[1].Long(), args[2].Long())
			return nil, nil
		},
	})

	register(OpSpec{
		Name:   "map_put_double",
		Params: []ValueKind{KindHandle, KindLong, KindDouble},
		Outs:   nil,
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			m, err := getDoubleMap("map_put_double", args[0].Handle())
			if err != nil {
				return nil, err
			}
			m.Put(args[1].Long(), args[2].Double())
			return nil, nil
		},
	})

	register(OpSpec{
		Name:   "map_get_long",
		Params: []ValueKind{KindHandle, KindLong},
		Outs:   []ValueKind{KindLong},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			m, err := getLongMap("map_get_long", args[0].Handle())
			if err != nil {
				return nil, err
			}
			v, err := m.Get(args[1].Long())
			if err != nil {
				return nil, err
			}
			return []Value{LongValue(v)}, nil
		},
	})

	register(OpSpec{
		Name:   "map_get_double",
		Params: []ValueKind{KindHandle, KindLong},
		Outs:   []ValueKind{KindDouble},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			m, err := getDoubleMap("map_get_double", args[0].Handle())
			if err != nil {
				return nil, err
			}
			v, err := m.Get(args[1].Long())
			if err != nil {
				return nil, err
			}
			return []Value{DoubleValue(v)}, nil
		},
	})

	register(OpSpec{
		Name:   "map_contains_key",
		Params: []ValueKind{KindHandle, KindLong},
		Outs:   []ValueKind{KindBool},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			const op = "map_contains_key"
			v, kind, err := lookupAny(op, args[0].Handle())
			if err != nil {
				return nil, err
			}
			switch m := v.(type) {
			case *engine.LongLongMap:
				return []Value{BoolValue(m.ContainsKey(args[1].Long()))}, nil
			case *engine.LongDoubleMap:
				return []Value{BoolValue(m.ContainsKey(args[1].Long()))}, nil
			default:
				return nil, errors.ClassCast(op, "map", kind.String())
			}
		},
	})

	register(OpSpec{
		Name:   "map_remove_long",
		Params: []ValueKind{KindHandle, KindLong},
		Outs:   []ValueKind{KindLong},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			m, err := getLongMap("map_remove_long", args[0].Handle())
			if err != nil {
				return nil, err
			}
			v, err := m.Remove(args[1].Long())
			if err != nil {
				return nil, err
			}
			return []Value{LongValue(v)}, nil
		},
	})

	register(OpSpec{
		Name:   "map_remove_double",
		Params: []ValueKind{KindHandle, KindLong},
		Outs:   []ValueKind{KindDouble},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			m, err := getDoubleMap("map_remove_double", args[0].Handle())
			if err != nil {
				return nil, err
			}
			v, err := m.Remove(args[1].Long())
			if err != nil {
				return nil, err
			}
			return []Value{DoubleValue(v)}, nil
		},
	})

	register(OpSpec{
		Name:   "map_size",
		Params: []ValueKind{KindHandle},
		Outs:   []ValueKind{KindLong},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			const op = "map_size"
			v, kind, err := lookupAny(op, args[0].Handle())
			if err != nil {
				return nil, err
			}
			switch m := v.(type) {
			case *engine.LongLongMap:
				return []Value{LongValue(m.Size())}, nil
			case *engine.LongDoubleMap:
				return []Value{LongValue(m.Size())}, nil
			default:
				return nil, errors.ClassCast(op, "map", kind.String())
			}
		},
	})

	register(OpSpec{
		Name:   "map_clear",
		Params: []ValueKind{KindHandle},
		Outs:   nil,
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			const op = "map_clear"
			v, kind, err := lookupAny(op, args[0].Handle())
			if err != nil {
				return nil, err
			}
			switch m := v.(type) {
			case *engine.LongLongMap:
				m.Clear()
			case *engine.LongDoubleMap:
				m.Clear()
			default:
				return nil, errors.ClassCast(op, "map", kind.String())
			}
			return nil, nil
		},
	})

	register(OpSpec{
		Name:   "map_keys_iterator",
		Params: []ValueKind{KindHandle},
		Outs:   []ValueKind{KindHandle},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			const op = "map_keys_iterator"
			v, kind, err := lookupAny(op, args[0].Handle())
			if err != nil {
				return nil, err
			}
			var keys *engine.LongIterator
			switch m := v.(type) {
			case *engine.LongLongMap:
				keys = m.Keys()
			case *engine.LongDoubleMap:
				keys = m.Keys()
			default:
				return nil, errors.ClassCast(op, "map", kind.String())
			}
			h, err := insertHandle(op, resource.KindLongIterator, keys)
			if err != nil {
				return nil, err
			}
			return []Value{HandleValue(h)}, nil
		},
	})

	register(OpSpec{
		Name:   "map_values_iterator",
		Params: []ValueKind{KindHandle},
		Outs:   []ValueKind{KindHandle},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			const op = "map_values_iterator"
			v, kind, err := lookupAny(op, args[0].Handle())
			if err != nil {
				return nil, err
			}
			switch m := v.(type) {
			case *engine.LongLongMap:
				h, err := insertHandle(op, resource.KindLongIterator, m.Values())
				if err != nil {
					return nil, err
				}
				return []Value{HandleValue(h)}, nil
			case *engine.LongDoubleMap:
				h, err := insertHandle(op, resource.KindDoubleIterator, m.Values())
				if err != nil {
					return nil, err
				}
				return []Value{HandleValue(h)}, nil
			default:
				return nil, errors.ClassCast(op, "map", kind.String())
			}
		},
	})

	register(OpSpec{
		Name:   "path_get_weight",
		Params: []ValueKind{KindHandle},
		Outs:   []ValueKind{KindDouble},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			p, err := getPath("path_get_weight", args[0].Handle())
			if err != nil {
				return nil, err
			}
			return []Value{DoubleValue(p.Weight)}, nil
		},
	})

	register(OpSpec{
		Name:   "path_get_length",
		Params: []ValueKind{KindHandle},
		Outs:   []ValueKind{KindLong},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			p, err := getPath("path_get_length", args[0].Handle())
			if err != nil {
				return nil, err
			}
			return []Value{LongValue(p.Length())}, nil
		},
	})

	register(OpSpec{
		Name:   "path_get_start",
		Params: []ValueKind{KindHandle},
		Outs:   []ValueKind{KindLong},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			p, err := getPath("path_get_start", args[0].Handle())
			if err != nil {
				return nil, err
			}
			return []Value{LongValue(p.Start)}, nil
		},
	})

	register(OpSpec{
		Name:   "path_get_end",
		Params: []ValueKind{KindHandle},
		Outs:   []ValueKind{KindLong},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			p, err := getPath("path_get_end", args[0].Handle())
			if err != nil {
				return nil, err
			}
			return []Value{LongValue(p.End)}, nil
		},
	})

	register(OpSpec{
		Name:   "path_edge_iterator",
		Params: []ValueKind{KindHandle},
		Outs:   []ValueKind{KindHandle},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			const op = "path_edge_iterator"
			p, err := getPath(op, args[0].Handle())
			if err != nil {
				return nil, err
			}
			h, err := insertHandle(op, resource.KindLongIterator, p.EdgeIterator())
			if err != nil {
				return nil, err
			}
			return []Value{HandleValue(h)}, nil
		},
	})

	register(OpSpec{
		Name:   "path_vertex_iterator",
		Params: []ValueKind{KindHandle},
		Outs:   []ValueKind{KindHandle},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			const op = "path_vertex_iterator"
			p, err := getPath(op, args[0].Handle())
			if err != nil {
				return nil, err
			}
			h, err := insertHandle(op, resource.KindLongIterator, p.VertexIterator())
			if err != nil {
				return nil, err
			}
			return []Value{HandleValue(h)}, nil
		},
	})
}

// Typed iterator entry points.

// IteratorHasNext writes whether the iterator has another element. Pure:
// the cursor does not move.
func (t *Thread) IteratorHasNext(it resource.Handle, out *bool) errors.Status {
	return t.call("it_hasnext", []Value{HandleValue(it)}, out)
}

func (t *Thread) IteratorNextLong(it resource.Handle, out *int64) errors.Status {
	return t.call("it_next_long", []Value{HandleValue(it)}, out)
}

func (t *Thread) IteratorNextDouble(it resource.Handle, out *float64) errors.Status {
	return t.call("it_next_double", []Value{HandleValue(it)}, out)
}

// IteratorNextObject advances an object-valued iterator and writes the next
// element's handle.
func (t *Thread) IteratorNextObject(it resource.Handle, out *resource.Handle) errors.Status {
	return t.call("it_next_object", []Value{HandleValue(it)}, out)
}

// Typed set entry points.

// CreateLongSet allocates a long-typed set; ordered selects insertion-order
// iteration.
func (t *Thread) CreateLongSet(ordered bool, out *resource.Handle) errors.Status {
	return t.call("set_create_long", []Value{BoolValue(ordered)}, out)
}

func (t *Thread) CreateDoubleSet(ordered bool, out *resource.Handle) errors.Status {
	return t.call("set_create_double", []Value{BoolValue(ordered)}, out)
}

// SetAddLong inserts a value and writes whether it was newly inserted.
func (t *Thread) SetAddLong(s resource.Handle, v int64, out *bool) errors.Status {
	return t.call("set_add_long", []Value{HandleValue(s), LongValue(v)}, out)
}

func (t *Thread) SetAddDouble(s resource.Handle, v float64, out *bool) errors.Status {
	return t.call("set_add_double", []Value{HandleValue(s), DoubleValue(v)}, out)
}

func (t *Thread) SetRemoveLong(s resource.Handle, v int64) errors.Status {
	return t.call("set_remove_long", []Value{HandleValue(s), LongValue(v)})
}

func (t *Thread) SetRemoveDouble(s resource.Handle, v float64) errors.Status {
	return t.call("set_remove_double", []Value{HandleValue(s), DoubleValue(v)})
}

func (t *Thread) SetContainsLong(s resource.Handle, v int64, out *bool) errors.Status {
	return t.call("set_contains_long", []Value{HandleValue(s), LongValue(v)}, out)
}

func (t *Thread) SetContainsDouble(s resource.Handle, v float64, out *bool) errors.Status {
	return t.call("set_contains_double", []Value{HandleValue(s), DoubleValue(v)}, out)
}

func (t *Thread) SetSize(s resource.Handle, out *int64) errors.Status {
	return t.call("set_size", []Value{HandleValue(s)}, out)
}

func (t *Thread) SetClear(s resource.Handle) errors.Status {
	return t.call("set_clear", []Value{HandleValue(s)})
}

// SetIterator writes a handle to a fresh element iterator, long- or
// double-typed to match the set.
func (t *Thread) SetIterator(s resource.Handle, out *resource.Handle) errors.Status {
	return t.call("set_iterator", []Value{HandleValue(s)}, out)
}

// Typed map entry points. Keys are always long; the value domain is fixed
// per instance.

func (t *Thread) CreateLongMap(ordered bool, out *resource.Handle) errors.Status {
	return t.call("map_create_long", []Value{BoolValue(ordered)}, out)
}

func (t *Thread) CreateDoubleMap(ordered bool, out *resource.Handle) errors.Status {
	return t.call("map_create_double", []Value{BoolValue(ordered)}, out)
}

func (t *Thread) MapPutLong(m resource.Handle, key, value int64) errors.Status {
	return t.call("map_put_long", []Value{HandleValue(m), LongValue(key), LongValue(value)})
}

func (t *Thread) MapPutDouble(m resource.Handle, key int64, value float64) errors.Status {
	return t.call("map_put_double", []Value{HandleValue(m), LongValue(key), DoubleValue(value)})
}

func (t *Thread) MapGetLong(m resource.Handle, key int64, out *int64) errors.Status {
	return t.call("map_get_long", []Value{HandleValue(m), LongValue(key)}, out)
}

func (t *Thread) MapGetDouble(m resource.Handle, key int64, out *float64) errors.Status {
	return t.call("map_get_double", []Value{HandleValue(m), LongValue(key)}, out)
}

func (t *Thread) MapContainsKey(m resource.Handle, key int64, out *bool) errors.Status {
	return t.call("map_contains_key", []Value{HandleValue(m), LongValue(key)}, out)
}

// MapRemoveLong removes a key and writes the removed value; absent keys
// fail with no-such-element.
func (t *Thread) MapRemoveLong(m resource.Handle, key int64, out *int64) errors.Status {
	return t.call("map_remove_long", []Value{HandleValue(m), LongValue(key)}, out)
}

func (t *Thread) MapRemoveDouble(m resource.Handle, key int64, out *float64) errors.Status {
	return t.call("map_remove_double", []Value{HandleValue(m), LongValue(key)}, out)
}

func (t *Thread) MapSize(m resource.Handle, out *int64) errors.Status {
	return t.call("map_size", []Value{HandleValue(m)}, out)
}

func (t *Thread) MapClear(m resource.Handle) errors.Status {
	return t.call("map_clear", []Value{HandleValue(m)})
}

func (t *Thread) MapKeysIterator(m resource.Handle, out *resource.Handle) errors.Status {
	return t.call("map_keys_iterator", []Value{HandleValue(m)}, out)
}

func (t *Thread) MapValuesIterator(m resource.Handle, out *resource.Handle) errors.Status {
	return t.call("map_values_iterator", []Value{HandleValue(m)}, out)
}

// Typed path entry points.

func (t *Thread) PathWeight(p resource.Handle, out *float64) errors.Status {
	return t.call("path_get_weight", []Value{HandleValue(p)}, out)
}

// PathLength writes the number of edges on the path.
func (t *Thread) PathLength(p resource.Handle, out *int64) errors.Status {
	return t.call("path_get_length", []Value{HandleValue(p)}, out)
}

func (t *Thread) PathStart(p resource.Handle, out *int64) errors.Status {
	return t.call("path_get_start", []Value{HandleValue(p)}, out)
}

func (t *Thread) PathEnd(p resource.Handle, out *int64) errors.Status {
	return t.call("path_get_end", []Value{HandleValue(p)}, out)
}

func (t *Thread) PathEdgeIterator(p resource.Handle, out *resource.Handle) errors.Status {
	return t.call("path_edge_iterator", []Value{HandleValue(p)}, out)
}

func (t *Thread) PathVertexIterator(p resource.Handle, out *resource.Handle) errors.Status {
	return t.call("path_vertex_iterator", []Value{HandleValue(p)}, out)
}
