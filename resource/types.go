package resource

// Handle is an opaque reference to an engine-resident object.
// The low 32 bits are a slot index (offset by one so that zero never occurs);
// the high 32 bits are the slot's generation at creation time. Handle 0 is
// reserved and always invalid.
type Handle uint64

// Kind identifies what an entry in the table refers to. Handles are not
// interchangeable across kinds; a mismatch is detected on lookup.
type Kind uint32

const (
	KindInvalid Kind = iota
	KindGraph
	KindLongIterator
	KindDoubleIterator
	KindObjectIterator
	KindLongSet
	KindDoubleSet
	KindLongMap
	KindDoubleMap
	KindPath
)

var kindNames = map[Kind]string{
	KindInvalid:        "invalid",
	KindGraph:          "graph",
	KindLongIterator:   "long_iterator",
	KindDoubleIterator: "double_iterator",
	KindObjectIterator: "object_iterator",
	KindLongSet:        "long_set",
	KindDoubleSet:      "double_set",
	KindLongMap:        "long_map",
	KindDoubleMap:      "double_map",
	KindPath:           "path",
}

// String returns the canonical name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Dropper is optionally implemented by values that need cleanup when their
// handle is destroyed or the table is closed.
type Dropper interface {
	Drop()
}
