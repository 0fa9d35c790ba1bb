package scicalc

import (
	"errors"
	"math"
	"testing"
)

// near reports whether got is within a relative 1e-12 of want.
func near(got, want float64) bool {
	if want == 0 {
		return got == 0
	}
	return math.Abs(got-want) <= 1e-12*math.Abs(want)
}

func normalized(x Number) bool {
	if x.IsZero() {
		return x.exp == 0
	}
	m := math.Abs(x.mant)
	return 1 <= m && m < 10
}

func TestFromFloat(t *testing.T) {
	cases := []float64{0, 1, -1, 12, 0.5, 0.1, 123.456, -3.75e-10, 6.02214076e23, 1e300, 1e-300, 9.999999999999999}
	for _, x := range cases {
		n := FromFloat(x)
		if !normalized(n) {
			t.Errorf("FromFloat(%g) not normalized: %v", x, n)
		}
		if got := n.Float64(); !near(got, x) {
			t.Errorf("FromFloat(%g).Float64() = %g", x, got)
		}
	}
}

func TestNew(t *testing.T) {
	cases := []struct {
		name string
		base float64
		exp  int
		mant float64
		want int
	}{
		{"normal", 2.5, 3, 2.5, 3},
		{"big-base", 250, 1, 2.5, 3},
		{"small-base", 0.025, 5, 2.5, 3},
		{"negative", -42, 0, -4.2, 1},
		{"zero", 0, 17, 0, 0},
		{"huge", 1, 400, 1, 400},
		{"tiny", 1, -400, 1, -400},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			n := New(c.base, c.exp)
			if !near(n.Mantissa(), c.mant) || n.Exponent() != c.want {
				t.Errorf("wrong number: want %ge%d, got %v", c.mant, c.want, n)
			}
		})
	}
}

func TestArithmetic(t *testing.T) {
	a, b := FromFloat(5), FromFloat(5)
	p := a.Mul(b)
	if p.Mantissa() != 2.5 || p.Exponent() != 1 {
		t.Errorf("5×5: want 2.5e1, got %v", p)
	}
	q, err := FromFloat(1).Div(FromFloat(4))
	if err != nil {
		t.Fatalf("1/4: %v", err)
	}
	if q.Mantissa() != 2.5 || q.Exponent() != -1 {
		t.Errorf("1/4: want 2.5e-1, got %v", q)
	}
	big := New(3, 200).Mul(New(4, 300))
	if !near(big.Mantissa(), 1.2) || big.Exponent() != 501 {
		t.Errorf("3e200×4e300: want 1.2e501, got %v", big)
	}
	if got := FromFloat(1.5).Add(FromFloat(2.25)).Float64(); got != 3.75 {
		t.Errorf("1.5+2.25: want 3.75, got %g", got)
	}
	if got := FromFloat(1.5).Sub(FromFloat(2.25)).Float64(); got != -0.75 {
		t.Errorf("1.5-2.25: want -0.75, got %g", got)
	}
	if got := FromFloat(3).Neg(); got.Float64() != -3 {
		t.Errorf("-(3): want -3, got %v", got)
	}
	if got := (Number{}).Neg(); !got.IsZero() || math.Signbit(got.mant) {
		t.Errorf("-(0): want 0, got %v", got)
	}
}

func TestNormalizedResults(t *testing.T) {
	xs := []Number{FromFloat(7), FromFloat(-0.003), New(9.5, 12), New(1.1, -40), FromFloat(123456), New(math.Nextafter(10, 0), 1)}
	for _, a := range xs {
		for _, b := range xs {
			results := []Number{a.Add(b), a.Sub(b), a.Mul(b), a.Pow(FromFloat(2))}
			if q, err := a.Div(b); err == nil {
				results = append(results, q)
			}
			if r, err := a.Sqrt(); err == nil {
				results = append(results, r)
			}
			for i, r := range results {
				if r.IsFinite() && !normalized(r) {
					t.Errorf("result %d of %v and %v not normalized: %v", i, a, b, r)
				}
			}
		}
	}
}

func TestDivZero(t *testing.T) {
	_, err := FromFloat(1).Div(Number{})
	var e *DomainError
	if !errors.As(err, &e) {
		t.Fatalf("wrong error: want *DomainError, got %T (%v)", err, err)
	}
	if e.Func != "/" || e.Arg != 2 {
		t.Errorf("wrong error: %+v", e)
	}
}

func TestLegacyPowRule(t *testing.T) {
	cases := []struct {
		name string
		a, b Number
		mant float64
		exp  int
	}{
		{"small", FromFloat(2), FromFloat(10), 1.024, 3},
		{"square", FromFloat(3), FromFloat(2), 9, 0},
		{"scaled", FromFloat(20), FromFloat(2), 4, 100},
		{"root", FromFloat(4), FromFloat(0.5), 2, 0},
		{"negative", FromFloat(-2), FromFloat(2), 4, 0},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			r := c.a.Pow(c.b)
			if !near(r.Mantissa(), c.mant) || r.Exponent() != c.exp {
				t.Errorf("wrong result: want %ge%d, got %v", c.mant, c.exp, r)
			}
		})
	}
}

func TestSqrt(t *testing.T) {
	cases := []struct {
		name string
		x    Number
		want float64
	}{
		{"zero", Number{}, 0},
		{"four", FromFloat(4), 2},
		{"odd-exp", New(1, 3), math.Sqrt(1000)},
		{"negative-odd-exp", New(1, -3), math.Sqrt(0.001)},
		{"negative-even-exp", New(9, -2), 0.3},
		{"big", New(4, 600), 0},
		{"odd-exp-below-ten", New(math.Nextafter(10, 0), 1), 10},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			r, err := c.x.Sqrt()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !normalized(r) {
				t.Errorf("not normalized: %v", r)
			}
			if c.name == "big" {
				if r.Mantissa() != 2 || r.Exponent() != 300 {
					t.Errorf("wrong result: want 2e300, got %v", r)
				}
				return
			}
			if got := r.Float64(); !near(got, c.want) {
				t.Errorf("wrong result: want %g, got %g", c.want, got)
			}
		})
	}
	_, err := FromFloat(-4).Sqrt()
	var e *DomainError
	if !errors.As(err, &e) || e.Func != "sqrt" {
		t.Errorf("sqrt(-4): want sqrt DomainError, got %v", err)
	}
}

func TestLn(t *testing.T) {
	r, err := FromFloat(math.E).Ln()
	if err != nil {
		t.Fatalf("ln(e): %v", err)
	}
	if !near(r.Float64(), 1) {
		t.Errorf("ln(e): want 1, got %v", r)
	}
	r, err = New(1, 1000).Ln()
	if err != nil {
		t.Fatalf("ln(1e1000): %v", err)
	}
	if !near(r.Float64(), 1000*math.Ln10) {
		t.Errorf("ln(1e1000): want %g, got %v", 1000*math.Ln10, r)
	}
	for _, x := range []Number{{}, FromFloat(-1)} {
		_, err := x.Ln()
		var e *DomainError
		if !errors.As(err, &e) || e.Func != "ln" {
			t.Errorf("ln(%v): want ln DomainError, got %v", x, err)
		}
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		name   string
		x      Number
		digits int
		want   string
	}{
		{"int", FromFloat(14), 12, "14"},
		{"half", FromFloat(0.5), 12, "0.5"},
		{"third", FromFloat(1.0 / 3), 4, "0.3333"},
		{"two-thirds", FromFloat(2.0 / 3), 4, "0.6667"},
		{"half-up", FromFloat(0.125), 2, "0.13"},
		{"carry", FromFloat(9.999), 2, "10"},
		{"negative", FromFloat(-2.5), 12, "-2.5"},
		{"negative-zero", FromFloat(-0.001), 2, "0"},
		{"zero", Number{}, 12, "0"},
		{"tiny", New(1, -30), 12, "0"},
		{"sci", New(1.5, 20), 12, "1.5e20"},
		{"sci-round", New(1.23456789, 15), 3, "1.235e15"},
		{"sci-carry", New(9.9999, 20), 2, "1e21"},
		{"sci-negative", New(-4, 100), 12, "-4e100"},
		{"boundary", New(1, 11), 12, "100000000000"},
		{"one-digit", FromFloat(2.5), 1, "2.5"},
		{"one-digit-sci", FromFloat(25), 1, "2.5e1"},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			if got := c.x.Format(c.digits); got != c.want {
				t.Errorf("wrong format: want %q, got %q", c.want, got)
			}
		})
	}
}

func TestString(t *testing.T) {
	if got := New(1.5, 3).String(); got != "1.5e3" {
		t.Errorf("wrong string: want 1.5e3, got %q", got)
	}
	if got := (Number{}).String(); got != "0e0" {
		t.Errorf("wrong string: want 0e0, got %q", got)
	}
}
