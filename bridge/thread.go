package bridge

import (
	"runtime"

	"go.uber.org/zap"

	"github.com/hexlattice/graphbridge/engine"
	"github.com/hexlattice/graphbridge/errors"
	"github.com/hexlattice/graphbridge/resource"
)

// Thread is the per-OS-thread token required by every entry point. Attach
// pins the calling goroutine to its OS thread so the token stays bound to
// one thread for its whole lifetime. The token also carries the thread-local
// error channel: the status and message of the last failing call, persisted
// until cleared or overwritten. A successful call does not clear it.
//
// A token must not be shared across goroutines. The bridge serializes
// nothing per handle; callers operating on the same handle from several
// attached threads coordinate themselves.
type Thread struct {
	attached   bool
	lastStatus errors.Status
	lastMsg    string
}

// Attach registers the calling OS thread with the engine and returns its
// token. Fails without a token when the engine is not running.
func Attach() (*Thread, errors.Status) {
	if !engine.Running() {
		return nil, errors.StatusError
	}
	runtime.LockOSThread()
	engine.Logger().Debug("thread attached")
	return &Thread{attached: true}, errors.StatusSuccess
}

// Attach re-registers the token's thread. On an attached token this is a
// no-op success.
func (t *Thread) Attach() errors.Status {
	if t.attached {
		return errors.StatusSuccess
	}
	if !engine.Running() {
		return t.fail(errors.NotRunning("attach"))
	}
	runtime.LockOSThread()
	t.attached = true
	engine.Logger().Debug("thread attached")
	return errors.StatusSuccess
}

// Detach unregisters the token's thread and discards its error state.
// Detaching a token that is not attached is an error.
func (t *Thread) Detach() errors.Status {
	if !t.attached {
		return errors.StatusOf(errors.NotAttached("detach"))
	}
	t.attached = false
	t.lastStatus = errors.StatusSuccess
	t.lastMsg = ""
	runtime.UnlockOSThread()
	engine.Logger().Debug("thread detached")
	return errors.StatusSuccess
}

// IsAttached reports whether the token is currently attached. Pure query,
// never touches the error channel.
func (t *Thread) IsAttached() bool { return t.attached }

// LastError returns the status of the most recent failing call, or success
// if none failed since the last clear.
func (t *Thread) LastError() errors.Status { return t.lastStatus }

// LastErrorMessage returns the message of the most recent failing call,
// empty if none.
func (t *Thread) LastErrorMessage() string { return t.lastMsg }

// ClearError resets the error channel to the success/empty state.
func (t *Thread) ClearError() {
	t.lastStatus = errors.StatusSuccess
	t.lastMsg = ""
}

// Invoke dispatches an operation by name. The typed entry points are thin
// wrappers over the same path; Invoke exists for generated callers working
// from the operation table.
func (t *Thread) Invoke(name string, args []Value, outs ...any) errors.Status {
	return t.call(name, args, outs...)
}

// call is the single implementation path behind every entry point:
// attachment and lifecycle guards, registry dispatch, output marshalling.
// Any failure lands on the error channel; output slots are written only
// when the whole call succeeded.
func (t *Thread) call(name string, args []Value, outs ...any) errors.Status {
	if !t.attached {
		return t.fail(errors.NotAttached(name))
	}
	if !engine.Running() {
		return t.fail(errors.NotRunning(name))
	}

	results, err := dispatch(t, name, args)
	if err != nil {
		return t.fail(err)
	}
	if err := writeOuts(name, results, outs); err != nil {
		return t.fail(err)
	}
	return errors.StatusSuccess
}

func (t *Thread) fail(err error) errors.Status {
	st := errors.StatusOf(err)
	t.lastStatus = st
	t.lastMsg = err.Error()
	engine.Logger().Debug("bridge call failed", zap.Error(err))
	return st
}

// writeOuts copies results into the caller-supplied output slots. The slots
// are validated in full before anything is written, so a shape mismatch
// leaves every slot untouched. A nil slot discards its result.
func writeOuts(name string, results []Value, outs []any) error {
	if len(outs) != len(results) {
		return errors.IllegalArgument(name, "expected %d output slots, got %d", len(results), len(outs))
	}
	for i, out := range outs {
		if out == nil {
			continue
		}
		want, ok := slotKind(out)
		if !ok {
			return errors.IllegalArgument(name, "output slot %d: unsupported slot type %T", i, out)
		}
		if got := results[i].Kind(); got != want {
			return errors.IllegalArgument(name, "output slot %d: expected *%s slot for %s result", i, want, got)
		}
	}
	for i, out := range outs {
		switch slot := out.(type) {
		case *bool:
			*slot = results[i].Bool()
		case *int64:
			*slot = results[i].Long()
		case *float64:
			*slot = results[i].Double()
		case *resource.Handle:
			*slot = results[i].Handle()
		}
	}
	return nil
}

func slotKind(out any) (ValueKind, bool) {
	switch out.(type) {
	case *bool:
		return KindBool, true
	case *int64:
		return KindLong, true
	case *float64:
		return KindDouble, true
	case *resource.Handle:
		return KindHandle, true
	default:
		return 0, false
	}
}
