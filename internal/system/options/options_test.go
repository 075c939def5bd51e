// Released under an MIT license. See LICENSE.

package options

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		argv       []string
		env        map[string]string
		expression string
		files      []string
		machine    bool
		trace      bool
	}{
		{argv: []string{}},
		{argv: []string{"a.um", "b.um"}, files: []string{"a.um", "b.um"}},
		{argv: []string{"-e", "{+ 1 2}"}, expression: "{+ 1 2}"},
		{argv: []string{"-m"}, machine: true},
		{argv: []string{"-t"}, machine: true, trace: true},
		{argv: []string{"--machine", "x.um"}, files: []string{"x.um"}, machine: true},
		{
			argv:    []string{},
			env:     map[string]string{"UMLANG_VM": "1"},
			machine: true,
		},
		{
			argv:    []string{},
			env:     map[string]string{"UMLANG_VM_NOISY": "1"},
			machine: true,
			trace:   true,
		},
		{
			argv: []string{},
			env:  map[string]string{"UMLANG_VM": "0"},
		},
	}

	for _, x := range tests {
		t.Setenv("UMLANG_VM", "")
		t.Setenv("UMLANG_VM_NOISY", "")

		for k, v := range x.env {
			t.Setenv(k, v)
		}

		Parse(x.argv)

		if Expression() != x.expression {
			t.Errorf("%v: expression: expected %q, got %q", x.argv, x.expression, Expression())
		}

		got := Files()
		if len(got) == 0 {
			got = nil
		}

		if diff := cmp.Diff(x.files, got); diff != "" {
			t.Errorf("%v: files mismatch (-want +got):\n%s", x.argv, diff)
		}

		if Machine() != x.machine {
			t.Errorf("%v: machine: expected %v, got %v", x.argv, x.machine, Machine())
		}

		if Trace() != x.trace {
			t.Errorf("%v: trace: expected %v, got %v", x.argv, x.trace, Trace())
		}

		if x.expression != "" && Interactive() {
			t.Errorf("%v: -e should never be interactive", x.argv)
		}
	}
}
