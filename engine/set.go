package engine

import (
	"github.com/emirpasic/gods/sets"
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/emirpasic/gods/sets/linkedhashset"
)

// LongSet is a set view over int64 elements. The ordered variant preserves
// insertion order during iteration; the unordered variant does not.
type LongSet struct {
	set sets.Set
}

// NewLongSet creates a long-typed set. ordered selects the
// insertion-order-preserving variant.
func NewLongSet(ordered bool) *LongSet {
	if ordered {
		return &LongSet{set: linkedhashset.New()}
	}
	return &LongSet{set: hashset.New()}
}

// Add inserts v and reports whether it was newly inserted.
func (s *LongSet) Add(v int64) bool {
	if s.set.Contains(v) {
		return false
	}
	s.set.Add(v)
	return true
}

// Remove deletes v if present.
func (s *LongSet) Remove(v int64) { s.set.Remove(v) }

// Contains reports membership.
func (s *LongSet) Contains(v int64) bool { return s.set.Contains(v) }

// Size returns the number of elements.
func (s *LongSet) Size() int64 { return int64(s.set.Size()) }

// Clear removes all elements.
func (s *LongSet) Clear() { s.set.Clear() }

// Values returns a snapshot of the elements.
func (s *LongSet) Values() []int64 {
	raw := s.set.Values()
	out := make([]int64, len(raw))
	for i, v := range raw {
		out[i] = v.(int64)
	}
	return out
}

// Iterator returns a fresh single-pass cursor over a snapshot of the set.
func (s *LongSet) Iterator() *LongIterator {
	return NewLongIterator(s.Values())
}

// DoubleSet is a set view over float64 elements.
type DoubleSet struct {
	set sets.Set
}

// NewDoubleSet creates a double-typed set. ordered selects the
// insertion-order-preserving variant.
func NewDoubleSet(ordered bool) *DoubleSet {
	if ordered {
		return &DoubleSet{set: linkedhashset.New()}
	}
	return &DoubleSet{set: hashset.New()}
}

// Add inserts v and reports whether it was newly inserted.
func (s *DoubleSet) Add(v float64) bool {
	if s.set.Contains(v) {
		return false
	}
	s.set.Add(v)
	return true
}

// Remove deletes v if present.
func (s *DoubleSet) Remove(v float64) { s.set.Remove(v) }

// Contains reports membership.
func (s *DoubleSet) Contains(v float64) bool { return s.set.Contains(v) }

// Size returns the number of elements.
func (s *DoubleSet) Size() int64 { return int64(s.set.Size()) }

// Clear removes all elements.
func (s *DoubleSet) Clear() { s.set.Clear() }

// Values returns a snapshot of the elements.
func (s *DoubleSet) Values() []float64 {
	raw := s.set.Values()
	out := make([]float64, len(raw))
	for i, v := range raw {
		out[i] = v.(float64)
	}
	return out
}

// Iterator returns a fresh single-pass cursor over a snapshot of the set.
func (s *DoubleSet) Iterator() *DoubleIterator {
	return NewDoubleIterator(s.Values())
}
