package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Status is the outcome classification returned by every bridge call.
// The set is closed: callers switch exhaustively on these values.
type Status int32

const (
	StatusSuccess Status = iota
	StatusError
	StatusIllegalArgument
	StatusUnsupportedOperation
	StatusIndexOutOfBounds
	StatusNoSuchElement
	StatusNullPointer
	StatusClassCast
	StatusIOError
	StatusExportError
)

var statusNames = map[Status]string{
	StatusSuccess:              "success",
	StatusError:                "error",
	StatusIllegalArgument:      "illegal_argument",
	StatusUnsupportedOperation: "unsupported_operation",
	StatusIndexOutOfBounds:     "index_out_of_bounds",
	StatusNoSuchElement:        "no_such_element",
	StatusNullPointer:          "null_pointer",
	StatusClassCast:            "class_cast",
	StatusIOError:              "io_error",
	StatusExportError:          "export_error",
}

// String returns the canonical name of the status.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("status(%d)", int32(s))
}

// OK reports whether the status is success.
func (s Status) OK() bool { return s == StatusSuccess }

// Error is the structured error type used throughout the bridge.
type Error struct {
	Status Status
	Op     string // operation that failed, e.g. "graph_add_edge"
	Detail string
	Cause  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(e.Status.String())
	b.WriteByte(']')

	if e.Op != "" {
		b.WriteByte(' ')
		b.WriteString(e.Op)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by status.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Status == t.Status
	}
	return false
}

// StatusOf extracts the Status carried by err. Foreign errors map to
// StatusError; a nil error maps to StatusSuccess.
func StatusOf(err error) Status {
	if err == nil {
		return StatusSuccess
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return StatusError
}

// Convenience constructors for the closed status set.

// Internal wraps an unclassified delegate failure as a generic error.
func Internal(op string, cause error) *Error {
	return &Error{Status: StatusError, Op: op, Detail: "internal failure", Cause: cause}
}

// IllegalArgument creates an illegal-argument error.
func IllegalArgument(op, detail string, args ...any) *Error {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &Error{Status: StatusIllegalArgument, Op: op, Detail: detail}
}

// Unsupported creates an unsupported-operation error.
func Unsupported(op, detail string) *Error {
	return &Error{Status: StatusUnsupportedOperation, Op: op, Detail: detail}
}

// OutOfBounds creates an index-out-of-bounds error.
func OutOfBounds(op string, index, length int) *Error {
	return &Error{
		Status: StatusIndexOutOfBounds,
		Op:     op,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
	}
}

// NoSuchElement creates a no-such-element error.
func NoSuchElement(op, detail string, args ...any) *Error {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &Error{Status: StatusNoSuchElement, Op: op, Detail: detail}
}

// NullPointer creates a null-reference error.
func NullPointer(op, detail string) *Error {
	return &Error{Status: StatusNullPointer, Op: op, Detail: detail}
}

// ClassCast creates a handle-kind mismatch error.
func ClassCast(op, want, got string) *Error {
	return &Error{
		Status: StatusClassCast,
		Op:     op,
		Detail: fmt.Sprintf("expected %s handle, got %s", want, got),
	}
}

// IO creates an input/output error.
func IO(op string, cause error) *Error {
	return &Error{Status: StatusIOError, Op: op, Detail: "i/o failure", Cause: cause}
}

// Export creates an export error.
func Export(op, detail string, cause error) *Error {
	return &Error{Status: StatusExportError, Op: op, Detail: detail, Cause: cause}
}

// NotRunning reports that the engine is not initialized or already shut down.
// This is a fatal-class condition but still flows through the error channel.
func NotRunning(op string) *Error {
	return &Error{Status: StatusError, Op: op, Detail: "engine not running"}
}

// NotAttached reports a call through a detached thread token.
func NotAttached(op string) *Error {
	return &Error{Status: StatusError, Op: op, Detail: "thread not attached"}
}

// InvalidHandle reports an unknown or already destroyed handle.
func InvalidHandle(op string, handle uint64) *Error {
	return &Error{
		Status: StatusIllegalArgument,
		Op:     op,
		Detail: fmt.Sprintf("invalid handle %#x", handle),
	}
}

// Wrap attaches a status and operation to an existing error.
func Wrap(status Status, op string, cause error, detail string) *Error {
	return &Error{Status: status, Op: op, Detail: detail, Cause: cause}
}
