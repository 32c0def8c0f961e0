package bridge

import (
	"fmt"

	"github.com/hexlattice/graphbridge/resource"
)

// ValueKind tags the closed set of scalar shapes that cross the bridge:
// flags, 64-bit integers, doubles, handles, and (for parameters only)
// strings such as destination paths and format names.
type ValueKind uint8

const (
	KindBool ValueKind = iota
	KindLong
	KindDouble
	KindHandle
	KindString
)

func (k ValueKind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindLong:
		return "long"
	case KindDouble:
		return "double"
	case KindHandle:
		return "handle"
	case KindString:
		return "string"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Value is the tagged variant used by the registry dispatch path. Typed
// entry points build and unpack Values; generated callers can work with
// them directly.
type Value struct {
	kind ValueKind
	b    bool
	i    int64
	f    float64
	h    resource.Handle
	s    string
}

// BoolValue wraps a flag.
func BoolValue(v bool) Value { return Value{kind: KindBool, b: v} }

// LongValue wraps a 64-bit integer.
func LongValue(v int64) Value { return Value{kind: KindLong, i: v} }

// DoubleValue wraps a double.
func DoubleValue(v float64) Value { return Value{kind: KindDouble, f: v} }

// HandleValue wraps an opaque handle.
func HandleValue(v resource.Handle) Value { return Value{kind: KindHandle, h: v} }

// StringValue wraps a string parameter.
func StringValue(v string) Value { return Value{kind: KindString, s: v} }

// Kind returns the variant's tag.
func (v Value) Kind() ValueKind { return v.kind }

// Bool returns the flag payload.
func (v Value) Bool() bool { return v.b }

// Long returns the integer payload.
func (v Value) Long() int64 { return v.i }

// Double returns the floating-point payload.
func (v Value) Double() float64 { return v.f }

// Handle returns the handle payload.
func (v Value) Handle() resource.Handle { return v.h }

// Str returns the string payload.
func (v Value) Str() string { return v.s }

// String renders the variant with its tag, for diagnostics.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return fmt.Sprintf("bool(%t)", v.b)
	case KindLong:
		return fmt.Sprintf("long(%d)", v.i)
	case KindDouble:
		return fmt.Sprintf("double(%g)", v.f)
	case KindHandle:
		return fmt.Sprintf("handle(%#x)", uint64(v.h))
	case KindString:
		return fmt.Sprintf("string(%q)", v.s)
	default:
		return fmt.Sprintf("value(kind=%d)", uint8(v.kind))
	}
}
