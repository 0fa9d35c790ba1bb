package scicalc_test

import (
	"errors"
	"math"
	"testing"

	"github.com/zephyrtronium/scicalc"
)

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name string
		src  string
		ans  float64
		want float64
	}{
		{"precedence", "2+3*4", 0, 14},
		{"paren", "(2+3)*4", 0, 20},
		{"right-pow", "2^3^2", 0, 512},
		{"neg-pow", "-2^2", 0, -4},
		{"pow-neg", "2^-2", 0, 0.25},
		{"implicit-func", "3sqrt(4)", 0, 6},
		{"implicit-paren", "2(3+4)", 0, 14},
		{"implicit-tight", "6/2(3)", 0, 1},
		{"implicit-parens", "(2)(3)", 0, 6},
		{"molar", "M(H2O)", 0, 18.015},
		{"molar-implicit", "5M(H2O)", 0, 90.075},
		{"ans", "Ans+10", 5, 15},
		{"ans-none", "Ans", 0, 0},
		{"neg-neg", "--3", 0, 3},
		{"sub-neg", "1--2", 0, 3},
		{"times-divide", "6×7÷2", 0, 21},
		{"ln", "ln(1)", 0, 0},
		{"nested", "sqrt(ln(1)+16)", 0, 4},
		{"frac", ".5+.25", 0, 0.75},
		{"exp", "1.5e3/3", 0, 500},
		{"spaces", " 1 +\t2 ", 0, 3},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			r, err := scicalc.Evaluate(c.src, scicalc.FromFloat(c.ans))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := r.Float64()
			if math.Abs(got-c.want) > 1e-9*math.Max(1, math.Abs(c.want)) {
				t.Errorf("wrong result: want %g, got %g (%v)", c.want, got, r)
			}
		})
	}
}

func TestEvaluateLarge(t *testing.T) {
	r, err := scicalc.Evaluate("1e400*1e400", scicalc.Number{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Mantissa() != 1 || r.Exponent() != 800 {
		t.Errorf("wrong result: want 1e800, got %v", r)
	}
	r, err = scicalc.Evaluate("20^2", scicalc.Number{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Mantissa() != 4 || r.Exponent() != 100 {
		t.Errorf("legacy power: want 4e100, got %v", r)
	}
	r, err = scicalc.NewEvaluator(scicalc.Power(scicalc.ExactPow)).Evaluate("20^2", scicalc.Number{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := r.Float64(); math.Abs(got-400) > 1e-9 {
		t.Errorf("exact power: want 400, got %v", r)
	}
}

func TestEvaluateErrors(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		check func(t *testing.T, err error)
	}{
		{"unclosed", "(2+3", func(t *testing.T, err error) {
			var e *scicalc.BracketError
			if !errors.As(err, &e) {
				t.Errorf("want *BracketError, got %T", errors.Unwrap(err))
			}
		}},
		{"div-zero", "2/0", func(t *testing.T, err error) {
			var e *scicalc.DomainError
			if !errors.As(err, &e) || e.Func != "/" {
				t.Errorf("want / DomainError, got %v", err)
			}
		}},
		{"ln-zero", "ln(0)", func(t *testing.T, err error) {
			var e *scicalc.DomainError
			if !errors.As(err, &e) || e.Func != "ln" {
				t.Errorf("want ln DomainError, got %v", err)
			}
		}},
		{"sqrt-negative", "sqrt(-4)", func(t *testing.T, err error) {
			var e *scicalc.DomainError
			if !errors.As(err, &e) || e.Func != "sqrt" {
				t.Errorf("want sqrt DomainError, got %v", err)
			}
		}},
		{"nan", "(-8)^(1/3)", func(t *testing.T, err error) {
			var e *scicalc.DomainError
			if !errors.As(err, &e) || e.Func != "^" {
				t.Errorf("want ^ DomainError, got %v", err)
			}
		}},
		{"overflow", "10^1e20", func(t *testing.T, err error) {
			var e *scicalc.RangeError
			if !errors.As(err, &e) || e.Func != "^" {
				t.Errorf("want ^ RangeError, got %v", err)
			}
		}},
		{"unknown", "x+1", func(t *testing.T, err error) {
			var e *scicalc.UnknownTokenError
			if !errors.As(err, &e) || e.Token != "x" || e.Pos() != 1 {
				t.Errorf("want UnknownTokenError for x at 1, got %v", err)
			}
		}},
		{"two-values", "2 3", func(t *testing.T, err error) {
			var e *scicalc.MalformedError
			if !errors.As(err, &e) || e.Values != 2 {
				t.Errorf("want MalformedError with 2 values, got %v", err)
			}
		}},
		{"number-ans", "2Ans", func(t *testing.T, err error) {
			var e *scicalc.MalformedError
			if !errors.As(err, &e) || e.Values != 2 {
				t.Errorf("want MalformedError with 2 values, got %v", err)
			}
		}},
		{"missing-left", "*4", func(t *testing.T, err error) {
			var e *scicalc.MalformedError
			if !errors.As(err, &e) || e.Op != "*" || e.Pos() != 1 {
				t.Errorf("want MalformedError for * at 1, got %v", err)
			}
		}},
		{"missing-right", "5-", func(t *testing.T, err error) {
			var e *scicalc.MalformedError
			if !errors.As(err, &e) || e.Op != "-" || e.Pos() != 2 {
				t.Errorf("want MalformedError for - at 2, got %v", err)
			}
		}},
		{"lone-neg", "-", func(t *testing.T, err error) {
			var e *scicalc.MalformedError
			if !errors.As(err, &e) {
				t.Errorf("want MalformedError, got %v", err)
			}
		}},
		{"empty", "", func(t *testing.T, err error) {
			var e *scicalc.EmptyExpressionError
			if !errors.As(err, &e) {
				t.Errorf("want EmptyExpressionError, got %v", err)
			}
		}},
		{"stray", "2#3", func(t *testing.T, err error) {
			var e *scicalc.LexError
			if !errors.As(err, &e) || e.Pos() != 2 {
				t.Errorf("want LexError at 2, got %v", err)
			}
		}},
		{"molar", "M(Xx)", func(t *testing.T, err error) {
			var e *scicalc.MolarError
			if !errors.As(err, &e) {
				t.Errorf("want MolarError, got %v", err)
			}
		}},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			r, err := scicalc.Evaluate(c.src, scicalc.Number{})
			if err == nil {
				t.Fatalf("no error; got %v", r)
			}
			if !errors.Is(err, scicalc.ErrSyntax) {
				t.Errorf("error %v does not match ErrSyntax", err)
			}
			var s *scicalc.SyntaxError
			if !errors.As(err, &s) {
				t.Errorf("error %T is not a *SyntaxError", err)
			}
			var ie scicalc.InputError
			if errors.As(err, &ie) && ie.Pos() < 0 {
				t.Errorf("negative position %d", ie.Pos())
			}
			c.check(t, err)
		})
	}
}

func TestExprReuse(t *testing.T) {
	ev := scicalc.NewEvaluator()
	e, err := ev.Parse("Ans^2+1", scicalc.FromFloat(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 3; i++ {
		r, err := e.Eval()
		if err != nil {
			t.Fatalf("eval %d: %v", i, err)
		}
		if got := r.Float64(); got != 10 {
			t.Errorf("eval %d: want 10, got %g", i, got)
		}
	}
}

func TestEvaluatorFuncs(t *testing.T) {
	cube := func(x scicalc.Number) (scicalc.Number, error) { return x.Mul(x).Mul(x), nil }
	ev := scicalc.NewEvaluator(scicalc.WithFunc("cube", cube), scicalc.WithFunc("ln", nil))
	got := ev.Funcs()
	want := []string{"cube", "sqrt"}
	if len(got) != len(want) {
		t.Fatalf("wrong funcs: want %q, got %q", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("wrong func %d: want %q, got %q", i, want[i], got[i])
		}
	}
	r, err := ev.Evaluate("2cube(3)", scicalc.Number{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Float64() != 54 {
		t.Errorf("2cube(3): want 54, got %v", r)
	}
	if _, err := ev.Evaluate("ln(1)", scicalc.Number{}); err == nil {
		t.Errorf("ln(1) evaluated with ln removed")
	}
}
