package bridge

import (
	"fmt"
	"testing"

	"github.com/hexlattice/graphbridge/resource"
)

func TestValueFormatting(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{BoolValue(true), "bool(true)"},
		{LongValue(42), "long(42)"},
		{DoubleValue(2.5), "double(2.5)"},
		{HandleValue(resource.Handle(0x1f)), "handle(0x1f)"},
		{StringValue("graph.dimacs"), `string("graph.dimacs")`},
	}
	for _, tc := range cases {
		if got := fmt.Sprintf("%v", tc.v); got != tc.want {
			t.Fatalf("formatted %s, want %s", got, tc.want)
		}
	}
}

func TestValueStringPayload(t *testing.T) {
	v := StringValue("dimacs")
	if v.Str() != "dimacs" {
		t.Fatalf("payload %q, want %q", v.Str(), "dimacs")
	}
	if LongValue(7).Str() != "" {
		t.Fatalf("non-string value carries a string payload")
	}
}
