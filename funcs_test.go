package scicalc

import (
	"testing"
)

func TestDefaultFuncs(t *testing.T) {
	m := DefaultFuncs()
	for _, name := range []string{"sqrt", "ln"} {
		if m[name] == nil {
			t.Errorf("missing default function %q", name)
		}
	}
	delete(m, "sqrt")
	if globalfuncs["sqrt"] == nil {
		t.Errorf("DefaultFuncs returned the global map")
	}
	if NewEvaluator().funcs["sqrt"] == nil {
		t.Errorf("new evaluator lost sqrt after deleting from a copy")
	}
}

func TestDisableDefaultFuncs(t *testing.T) {
	ev := NewEvaluator(DisableDefaultFuncs())
	if len(ev.funcs) != 0 {
		t.Errorf("functions remain: %v", ev.Funcs())
	}
	if len(globalfuncs) == 0 {
		t.Errorf("disabling functions modified the defaults")
	}
}

func TestFuncErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"domain", &DomainError{X: FromFloat(-4), Func: "sqrt", Arg: 1}, "-4e0 outside domain of sqrt (argument 1)"},
		{"domain-bare", &DomainError{X: Number{}}, "0e0 outside domain"},
		{"range", &RangeError{Func: "^"}, "result of ^ out of range"},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			if got := c.err.Error(); got != c.want {
				t.Errorf("wrong message: want %q, got %q", c.want, got)
			}
		})
	}
}
