package engine

import (
	"github.com/hexlattice/graphbridge/errors"
)

// Iterators are single-pass typed cursors over engine-native sequences.
// HasNext is pure and remains false forever once the cursor is exhausted;
// Next consumes one element and fails with a no-such-element error when
// called on an exhausted cursor. Neither call requires the other.

// LongIterator is a cursor over int64 elements.
type LongIterator struct {
	items []int64
	pos   int
}

// NewLongIterator creates a cursor over a snapshot of items.
func NewLongIterator(items []int64) *LongIterator {
	return &LongIterator{items: items}
}

// HasNext reports whether an element remains.
func (it *LongIterator) HasNext() bool { return it.pos < len(it.items) }

// Next consumes and returns the next element.
func (it *LongIterator) Next() (int64, error) {
	if it.pos >= len(it.items) {
		return 0, errors.NoSuchElement("it_next", "iterator exhausted")
	}
	v := it.items[it.pos]
	it.pos++
	return v, nil
}

// DoubleIterator is a cursor over float64 elements.
type DoubleIterator struct {
	items []float64
	pos   int
}

// NewDoubleIterator creates a cursor over a snapshot of items.
func NewDoubleIterator(items []float64) *DoubleIterator {
	return &DoubleIterator{items: items}
}

// HasNext reports whether an element remains.
func (it *DoubleIterator) HasNext() bool { return it.pos < len(it.items) }

// Next consumes and returns the next element.
func (it *DoubleIterator) Next() (float64, error) {
	if it.pos >= len(it.items) {
		return 0, errors.NoSuchElement("it_next", "iterator exhausted")
	}
	v := it.items[it.pos]
	it.pos++
	return v, nil
}

// ObjectIterator is a cursor over engine-resident objects. The bridge wraps
// each element in a fresh handle as it is consumed.
type ObjectIterator struct {
	items []any
	pos   int
}

// NewObjectIterator creates a cursor over a snapshot of items.
func NewObjectIterator(items []any) *ObjectIterator {
	return &ObjectIterator{items: items}
}

// HasNext reports whether an element remains.
func (it *ObjectIterator) HasNext() bool { return it.pos < len(it.items) }

// Next consumes and returns the next element.
func (it *ObjectIterator) Next() (any, error) {
	if it.pos >= len(it.items) {
		return nil, errors.NoSuchElement("it_next", "iterator exhausted")
	}
	v := it.items[it.pos]
	it.pos++
	return v, nil
}
