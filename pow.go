package scicalc

import (
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// PowFunc computes a^b for the ^ operator.
type PowFunc func(a, b Number) (Number, error)

// LegacyPow is the default PowFunc. It computes Number.Pow, which only agrees
// with true exponentiation when the base has a zero exponent, e.g. 2^10 is
// 1024 but 20^2 is 4e100. Results stored by earlier versions depend on it.
func LegacyPow(a, b Number) (Number, error) {
	return a.Pow(b), nil
}

// powPrec is the precision in bits of ExactPow's intermediate values.
const powPrec = 128

// ExactPow is a PowFunc computing a^b for any base. It works in base-10 log
// space with big.Float, so results far outside float64 range keep their full
// mantissa precision. A negative base requires an integer exponent.
func ExactPow(a, b Number) (Number, error) {
	y := b.Float64()
	switch {
	case a.IsZero():
		switch {
		case y > 0:
			return Number{}, nil
		case y == 0:
			return FromFloat(1), nil
		}
		return Number{}, &DomainError{X: a, Func: "^", Arg: 1}
	case b.IsZero():
		return FromFloat(1), nil
	case a.mant < 0 && y != math.Trunc(y):
		return Number{}, &DomainError{X: a, Func: "^", Arg: 1}
	case math.IsInf(y, 0):
		lg := math.Log10(math.Abs(a.mant)) + float64(a.exp)
		if lg == 0 {
			return a, nil
		}
		if (lg > 0) == (y > 0) {
			return Number{}, &RangeError{Func: "^"}
		}
		return Number{}, nil
	}

	ln10 := bigfloat.Log(newFloat(), newFloat().SetInt64(10))
	// l = b·log10|a| = b·(ln|m|/ln 10 + e)
	l := bigfloat.Log(newFloat(), newFloat().SetFloat64(math.Abs(a.mant)))
	l.Quo(l, ln10)
	l.Add(l, newFloat().SetInt64(int64(a.exp)))
	l.Mul(l, newFloat().SetFloat64(y))

	// Split l into an integer exponent and a fraction in [0, 1).
	ip, _ := l.Int(nil)
	e := newFloat().SetInt(ip)
	if e.Cmp(l) > 0 {
		ip.Sub(ip, big.NewInt(1))
		e.SetInt(ip)
	}
	if !ip.IsInt64() || ip.Int64() > maxExp || ip.Int64() < -maxExp {
		if ip.Sign() > 0 {
			return Number{}, &RangeError{Func: "^"}
		}
		return Number{}, nil
	}
	frac := newFloat().Sub(l, e)
	frac.Mul(frac, ln10)
	m, _ := bigfloat.Exp(newFloat(), frac).Float64()

	r := New(m, int(ip.Int64()))
	if a.mant < 0 && math.Mod(y, 2) != 0 {
		r = r.Neg()
	}
	return r, nil
}

func newFloat() *big.Float {
	return new(big.Float).SetPrec(powPrec)
}
