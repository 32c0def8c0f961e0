package engine

import (
	"github.com/emirpasic/gods/maps"
	"github.com/emirpasic/gods/maps/hashmap"
	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/hexlattice/graphbridge/errors"
)

// LongLongMap is a map view with int64 keys and int64 values.
type LongLongMap struct {
	m maps.Map
}

// NewLongLongMap creates a long-to-long map. ordered selects the
// insertion-order-preserving variant.
func NewLongLongMap(ordered bool) *LongLongMap {
	if ordered {
		return &LongLongMap{m: linkedhashmap.New()}
	}
	return &LongLongMap{m: hashmap.New()}
}

// Put upserts a key/value pair.
func (m *LongLongMap) Put(k, v int64) { m.m.Put(k, v) }

// Get returns the value for k, failing with no-such-element if absent.
func (m *LongLongMap) Get(k int64) (int64, error) {
	v, found := m.m.Get(k)
	if !found {
		return 0, errors.NoSuchElement("map_get", "no value for key %d", k)
	}
	return v.(int64), nil
}

// ContainsKey reports whether k is present.
func (m *LongLongMap) ContainsKey(k int64) bool {
	_, found := m.m.Get(k)
	return found
}

// Remove deletes k and returns the removed value, failing with
// no-such-element if absent.
func (m *LongLongMap) Remove(k int64) (int64, error) {
	v, found := m.m.Get(k)
	if !found {
		return 0, errors.NoSuchElement("map_remove", "no value for key %d", k)
	}
	m.m.Remove(k)
	return v.(int64), nil
}

// Size returns the number of entries.
func (m *LongLongMap) Size() int64 { return int64(m.m.Size()) }

// Clear removes all entries.
func (m *LongLongMap) Clear() { m.m.Clear() }

// Keys returns a fresh cursor over a snapshot of the keys.
func (m *LongLongMap) Keys() *LongIterator {
	raw := m.m.Keys()
	out := make([]int64, len(raw))
	for i, k := range raw {
		out[i] = k.(int64)
	}
	return NewLongIterator(out)
}

// Values returns a fresh cursor over a snapshot of the values.
func (m *LongLongMap) Values() *LongIterator {
	raw := m.m.Values()
	out := make([]int64, len(raw))
	for i, v := range raw {
		out[i] = v.(int64)
	}
	return NewLongIterator(out)
}

// LongDoubleMap is a map view with int64 keys and float64 values.
type LongDoubleMap struct {
	m maps.Map
}

// NewLongDoubleMap creates a long-to-double map. ordered selects the
// insertion-order-preserving variant.
func NewLongDoubleMap(ordered bool) *LongDoubleMap {
	if ordered {
		return &LongDoubleMap{m: linkedhashmap.New()}
	}
	return &LongDoubleMap{m: hashmap.New()}
}

// Put upserts a key/value pair.
func (m *LongDoubleMap) Put(k int64, v float64) { m.m.Put(k, v) }

// Get returns the value for k, failing with no-such-element if absent.
func (m *LongDoubleMap) Get(k int64) (float64, error) {
	v, found := m.m.Get(k)
	if !found {
		return 0, errors.NoSuchElement("map_get", "no value for key %d", k)
	}
	return v.(float64), nil
}

// ContainsKey reports whether k is present.
func (m *LongDoubleMap) ContainsKey(k int64) bool {
	_, found := m.m.Get(k)
	return found
}

// Remove deletes k and returns the removed value, failing with
// no-such-element if absent.
func (m *LongDoubleMap) Remove(k int64) (float64, error) {
	v, found := m.m.Get(k)
	if !found {
		return 0, errors.NoSuchElement("map_remove", "no value for key %d", k)
	}
	m.m.Remove(k)
	return v.(float64), nil
}

// Size returns the number of entries.
func (m *LongDoubleMap) Size() int64 { return int64(m.m.Size()) }

// Clear removes all entries.
func (m *LongDoubleMap) Clear() { m.m.Clear() }

// Keys returns a fresh cursor over a snapshot of the keys.
func (m *LongDoubleMap) Keys() *LongIterator {
	raw := m.m.Keys()
	out := make([]int64, len(raw))
	for i, k := range raw {
		out[i] = k.(int64)
	}
	return NewLongIterator(out)
}

// Values returns a fresh cursor over a snapshot of the values.
func (m *LongDoubleMap) Values() *DoubleIterator {
	raw := m.m.Values()
	out := make([]float64, len(raw))
	for i, v := range raw {
		out[i] = v.(float64)
	}
	return NewDoubleIterator(out)
}
