package resource

import (
	"errors"
	"sync"
)

var ErrClosed = errors.New("resource table closed")

// Table is a generational slot arena mapping handles to values.
//
// Each slot carries a generation counter embedded in the handles it issues.
// Destroying a handle bumps the slot's generation before the slot returns to
// the free list, so a stale handle is rejected in O(1) and no handle value is
// ever issued twice.
type Table struct {
	entries  []entry
	freeList []uint32
	mu       sync.RWMutex
	closed   bool
}

type entry struct {
	value any
	kind  Kind
	gen   uint32
	live  bool
}

// NewTable creates an empty table with the default capacity.
func NewTable() *Table {
	return NewTableCapacity(0)
}

// NewTableCapacity creates an empty table pre-sized for n entries.
// Non-positive n falls back to the default.
func NewTableCapacity(n int) *Table {
	if n <= 0 {
		n = 64
	}
	return &Table{
		entries:  make([]entry, 0, n),
		freeList: make([]uint32, 0, 16),
	}
}

func makeHandle(slot, gen uint32) Handle {
	return Handle(uint64(gen)<<32 | uint64(slot+1))
}

func splitHandle(h Handle) (slot, gen uint32, ok bool) {
	low := uint32(h)
	if low == 0 {
		return 0, 0, false
	}
	return low - 1, uint32(h >> 32), true
}

// Insert stores a value and returns its handle.
func (t *Table) Insert(kind Kind, value any) (Handle, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return 0, ErrClosed
	}

	if n := len(t.freeList); n > 0 {
		slot := t.freeList[n-1]
		t.freeList = t.freeList[:n-1]
		e := &t.entries[slot]
		e.value = value
		e.kind = kind
		e.live = true
		return makeHandle(slot, e.gen), nil
	}

	t.entries = append(t.entries, entry{value: value, kind: kind, live: true})
	return makeHandle(uint32(len(t.entries)-1), 0), nil
}

// Get retrieves the value and kind for a handle. The second return is false
// for the zero handle, a destroyed handle, or a handle from a prior
// generation of the same slot.
func (t *Table) Get(h Handle) (any, Kind, bool) {
	slot, gen, ok := splitHandle(h)
	if !ok {
		return nil, KindInvalid, false
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	if int(slot) >= len(t.entries) {
		return nil, KindInvalid, false
	}
	e := t.entries[slot]
	if !e.live || e.gen != gen {
		return nil, KindInvalid, false
	}
	return e.value, e.kind, true
}

// Remove destroys a handle, runs the value's Dropper if it has one, and
// returns (value, true) on success. A second Remove of the same handle
// returns (nil, false) and leaves the table intact.
func (t *Table) Remove(h Handle) (any, bool) {
	slot, gen, ok := splitHandle(h)
	if !ok {
		return nil, false
	}

	t.mu.Lock()
	if t.closed || int(slot) >= len(t.entries) {
		t.mu.Unlock()
		return nil, false
	}
	e := &t.entries[slot]
	if !e.live || e.gen != gen {
		t.mu.Unlock()
		return nil, false
	}

	value := e.value
	e.value = nil
	e.kind = KindInvalid
	e.live = false
	e.gen++ // retire every handle issued for this slot so far
	t.freeList = append(t.freeList, slot)
	t.mu.Unlock()

	if d, ok := value.(Dropper); ok {
		d.Drop()
	}
	return value, true
}

// Len returns the number of live entries.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	count := 0
	for _, e := range t.entries {
		if e.live {
			count++
		}
	}
	return count
}

// Each iterates over all live entries.
func (t *Table) Each(fn func(Handle, Kind, any) bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for i, e := range t.entries {
		if e.live {
			if !fn(makeHandle(uint32(i), e.gen), e.kind, e.value) {
				break
			}
		}
	}
}

// Close destroys all live entries and stops accepting operations.
func (t *Table) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil
	}
	t.closed = true

	for i := range t.entries {
		if t.entries[i].live {
			if d, ok := t.entries[i].value.(Dropper); ok {
				d.Drop()
			}
			t.entries[i].live = false
			t.entries[i].value = nil
		}
	}

	t.entries = nil
	t.freeList = nil
	return nil
}
