package molar

import (
	"errors"
	"math"
	"testing"
)

func TestMass(t *testing.T) {
	cases := []struct {
		name    string
		formula string
		mass    float64
	}{
		{"empty", "", 0},
		{"single", "H", 1.008},
		{"count", "H2", 2.016},
		{"water", "H2O", 18.015},
		{"two-letter", "NaCl", 22.989769282 + 35.45},
		{"group", "Ca(OH)2", 40.0784 + 2*(15.999+1.008)},
		{"group-no-mul", "Ca(OH)", 40.0784 + 15.999 + 1.008},
		{"sulfate", "Fe2(SO4)3", 2*55.8452 + 3*(32.06+4*15.999)},
		{"nested", "K4(Fe(CN)6)", 4*39.09831 + 55.8452 + 6*(12.011+14.007)},
		{"nested-mul", "((H)2O)3", 3 * (2*1.008 + 15.999)},
		{"leading-group", "(NH4)2SO4", 2*(14.007+4*1.008) + 32.06 + 4*15.999},
		{"zero-mul", "H(O)0", 1.008},
		{"spaces", " C6 H12 O6 ", 6*12.011 + 12*1.008 + 6*15.999},
		{"multi-digit", "C12H22O11", 12*12.011 + 22*1.008 + 11*15.999},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m, err := Mass(c.formula)
			if err != nil {
				t.Fatalf("%q: unexpected error: %v", c.formula, err)
			}
			if math.Abs(m-c.mass) > 1e-9 {
				t.Errorf("%q: want %v, got %v", c.formula, c.mass, m)
			}
		})
	}
}

func TestMassReference(t *testing.T) {
	m, err := Mass("Ca(OH)2")
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(m-74.093) > 1e-3 {
		t.Errorf("Ca(OH)2: want about 74.093, got %v", m)
	}
}

func TestMassErrors(t *testing.T) {
	t.Run("unknown", func(t *testing.T) {
		for _, f := range []string{"Xx", "HXx", "Qa2", "(Zz)2"} {
			_, err := Mass(f)
			var ue *UnknownElementError
			if !errors.As(err, &ue) {
				t.Errorf("%q: want UnknownElementError, got %v", f, err)
			}
		}
	})
	t.Run("paren", func(t *testing.T) {
		cases := []struct {
			formula string
			col     int
			open    bool
		}{
			{")", 1, false},
			{"H2O)", 4, false},
			{"(H)2)", 5, false},
			{"(H", 1, true},
			{"Ca(OH", 3, true},
			{"((H)", 1, true},
		}
		for _, c := range cases {
			_, err := Mass(c.formula)
			var pe *ParenError
			if !errors.As(err, &pe) {
				t.Errorf("%q: want ParenError, got %v", c.formula, err)
				continue
			}
			if pe.Col != c.col || pe.Open != c.open {
				t.Errorf("%q: want col %d open %t, got %+v", c.formula, c.col, c.open, pe)
			}
		}
	})
	t.Run("text", func(t *testing.T) {
		for _, f := range []string{"h2o", "2H", "H+O", "H$"} {
			_, err := Mass(f)
			var fe *FormulaError
			if !errors.As(err, &fe) {
				t.Errorf("%q: want FormulaError, got %v", f, err)
			}
		}
	})
	t.Run("too-long", func(t *testing.T) {
		_, err := Mass("((((H)1000)1000)1000)")
		var fe *FormulaError
		if !errors.As(err, &fe) || !fe.TooLong {
			t.Errorf("want FormulaError with TooLong, got %v", err)
		}
	})
}

func TestElement(t *testing.T) {
	if m, ok := Element("O"); !ok || m != 15.999 {
		t.Errorf("O: got %v, %t", m, ok)
	}
	if _, ok := Element("Uue"); ok {
		t.Error("three-letter symbols cannot appear in formulas")
	}
}

func FuzzMass(f *testing.F) {
	f.Add("H2O")
	f.Add("Fe2(SO4)3")
	f.Add("((H)2")
	f.Fuzz(func(t *testing.T, s string) {
		Mass(s)
	})
}
