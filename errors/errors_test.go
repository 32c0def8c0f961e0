package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Status: StatusIllegalArgument,
				Op:     "graph_add_edge",
				Detail: "no such vertex 42",
			},
			contains: []string{"[illegal_argument]", "graph_add_edge", "no such vertex 42"},
		},
		{
			name: "minimal error",
			err: &Error{
				Status: StatusNoSuchElement,
			},
			contains: []string{"[no_such_element]"},
		},
		{
			name: "error with cause",
			err: &Error{
				Status: StatusIOError,
				Op:     "export_dimacs",
				Detail: "i/o failure",
				Cause:  errors.New("disk full"),
			},
			contains: []string{"[io_error]", "export_dimacs", "caused by", "disk full"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := IO("export_dimacs", cause)

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := IllegalArgument("set_add", "wrong element type")

	if !errors.Is(err, &Error{Status: StatusIllegalArgument}) {
		t.Error("expected match on same status")
	}
	if errors.Is(err, &Error{Status: StatusClassCast}) {
		t.Error("unexpected match on different status")
	}
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Status
	}{
		{"nil", nil, StatusSuccess},
		{"bridge error", NoSuchElement("it_next", "iterator exhausted"), StatusNoSuchElement},
		{"wrapped bridge error", Internal("op", ClassCast("op", "graph", "set")), StatusError},
		{"foreign error", errors.New("plain"), StatusError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusOf(tt.err); got != tt.want {
				t.Errorf("StatusOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatus_String(t *testing.T) {
	if StatusSuccess.String() != "success" {
		t.Errorf("unexpected name %q", StatusSuccess.String())
	}
	if StatusExportError.String() != "export_error" {
		t.Errorf("unexpected name %q", StatusExportError.String())
	}
	if Status(99).String() != "status(99)" {
		t.Errorf("unexpected name %q", Status(99).String())
	}
	if !StatusSuccess.OK() || StatusError.OK() {
		t.Error("OK() misclassified status")
	}
}
