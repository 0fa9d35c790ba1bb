package scicalc

import (
	"math"
	"strconv"
	"strings"
)

// Number is an immutable value m × 10^e held in normalized scientific
// notation. The zero value is the number zero. For any other finite value,
// 1 ≤ |m| < 10.
//
// A Number produced by an operation whose result does not fit in a float64
// mantissa with an int exponent holds a non-finite mantissa; IsFinite reports
// this, and the evaluator turns it into an error.
type Number struct {
	mant float64
	exp  int
}

// maxExp bounds exponents so that exponent arithmetic cannot overflow an int.
const maxExp = 1 << 53

// New creates a Number from a possibly unnormalized pair base × 10^exp.
func New(base float64, exp int) Number {
	return normalize(base, float64(exp))
}

// FromFloat creates a Number from a float64.
func FromFloat(x float64) Number {
	return normalize(x, 0)
}

// normalize brings base × 10^exp into normalized form. exp may be fractional,
// in which case the fractional part is folded into the mantissa.
func normalize(base, exp float64) Number {
	switch {
	case base == 0:
		return Number{}
	case math.IsNaN(base) || math.IsNaN(exp):
		return Number{mant: math.NaN()}
	case math.IsInf(base, 0):
		return Number{mant: base}
	case math.IsInf(exp, 0) || math.Abs(exp) > maxExp:
		if exp > 0 {
			return Number{mant: math.Copysign(math.Inf(1), base)}
		}
		return Number{}
	}
	if f := exp - math.Floor(exp); f != 0 {
		base *= math.Pow(10, f)
		exp -= f
	}
	shift := int(math.Floor(math.Log10(math.Abs(base))))
	m := scale(base, -shift)
	// Log10 can be off by one near powers of ten.
	for math.Abs(m) >= 10 {
		m /= 10
		shift++
	}
	for math.Abs(m) < 1 {
		m *= 10
		shift--
	}
	return Number{mant: m, exp: int(exp) + shift}
}

// scale computes x × 10^n without overflowing the intermediate power for
// subnormal x. Negative n divides by an exact power of ten so that values
// like 12 survive the round trip through normalization.
func scale(x float64, n int) float64 {
	switch {
	case n < -300:
		h := n / 2
		return x / math.Pow10(-h) / math.Pow10(h-n)
	case n < 0:
		return x / math.Pow10(-n)
	case n > 300:
		h := n / 2
		return x * math.Pow10(h) * math.Pow10(n-h)
	}
	return x * math.Pow10(n)
}

// Mantissa returns the normalized mantissa m.
func (a Number) Mantissa() float64 {
	return a.mant
}

// Exponent returns the decimal exponent e.
func (a Number) Exponent() int {
	return a.exp
}

// IsZero reports whether a is the zero value.
func (a Number) IsZero() bool {
	return a.mant == 0
}

// IsFinite reports whether a holds a finite value.
func (a Number) IsFinite() bool {
	return !math.IsNaN(a.mant) && !math.IsInf(a.mant, 0)
}

// Float64 returns m × 10^e. The result may overflow to ±Inf or underflow to
// zero.
func (a Number) Float64() float64 {
	if !a.IsFinite() || a.mant == 0 {
		return a.mant
	}
	return scale(a.mant, a.exp)
}

// Add returns a + b. Addition is computed in float64.
func (a Number) Add(b Number) Number {
	return FromFloat(a.Float64() + b.Float64())
}

// Sub returns a - b. Subtraction is computed in float64.
func (a Number) Sub(b Number) Number {
	return FromFloat(a.Float64() - b.Float64())
}

// Mul returns a × b.
func (a Number) Mul(b Number) Number {
	return normalize(a.mant*b.mant, float64(a.exp)+float64(b.exp))
}

// Div returns a / b. Dividing by zero is a DomainError.
func (a Number) Div(b Number) (Number, error) {
	if b.IsZero() {
		return Number{}, &DomainError{X: b, Func: "/", Arg: 2}
	}
	return normalize(a.mant/b.mant, float64(a.exp)-float64(b.exp)), nil
}

// Neg returns -a.
func (a Number) Neg() Number {
	if a.mant == 0 {
		return a
	}
	return Number{mant: -a.mant, exp: a.exp}
}

// Pow returns the legacy power of a to b: the mantissa is m^b, and the
// exponent is offset by 10^(e·b) when e is nonzero. This agrees with a^b only
// when e is zero. ExactPow computes the true power.
func (a Number) Pow(b Number) Number {
	y := b.Float64()
	m := math.Pow(a.mant, y)
	if a.exp == 0 {
		return normalize(m, 0)
	}
	return normalize(m, math.Pow(10, float64(a.exp)*y))
}

// Ln returns the natural logarithm of a. The argument must be positive.
func (a Number) Ln() (Number, error) {
	if a.mant <= 0 || math.IsNaN(a.mant) {
		return Number{}, &DomainError{X: a, Func: "ln", Arg: 1}
	}
	return normalize(math.Log(a.mant)+float64(a.exp)*math.Ln10, 0), nil
}

// Sqrt returns the square root of a. The argument must not be negative.
func (a Number) Sqrt() (Number, error) {
	if a.mant < 0 || math.IsNaN(a.mant) {
		return Number{}, &DomainError{X: a, Func: "sqrt", Arg: 1}
	}
	if a.mant == 0 || math.IsInf(a.mant, 0) {
		return a, nil
	}
	m := math.Sqrt(a.mant)
	if a.exp%2 == 0 {
		return Number{mant: m, exp: a.exp / 2}, nil
	}
	// a.exp-1 is even, so this is floor(a.exp/2) for either sign. The product
	// can round up to 10.
	return normalize(m*math.Sqrt(10), float64((a.exp-1)/2)), nil
}

// String formats a as mantissa and exponent, e.g. "1.5e3".
func (a Number) String() string {
	return strconv.FormatFloat(a.mant, 'g', -1, 64) + "e" + strconv.Itoa(a.exp)
}

// Format renders a for display with at most digits fractional digits. Numbers
// with more than digits integer digits are shown as a rounded mantissa with an
// exponent, like "1.234568e15"; others are shown as plain decimals with
// trailing zeros removed, like "0.5".
func (a Number) Format(digits int) string {
	if digits < 0 {
		digits = 0
	}
	if !a.IsFinite() {
		return strconv.FormatFloat(a.mant, 'g', -1, 64)
	}
	if a.exp+1 > digits {
		m := roundDecimal(a.mant, digits)
		exp := a.exp
		if m == "10" || m == "-10" {
			m = strings.TrimSuffix(m, "0")
			exp++
		}
		return m + "e" + strconv.Itoa(exp)
	}
	return roundDecimal(a.Float64(), digits)
}

// roundDecimal rounds x half away from zero to at most digits fractional
// digits and removes trailing zeros. The rounding works on the shortest
// decimal representation of x, so 0.125 rounds to 0.13 at two digits.
func roundDecimal(x float64, digits int) string {
	s := strconv.FormatFloat(math.Abs(x), 'f', -1, 64)
	neg := math.Signbit(x)
	intpart, frac, _ := strings.Cut(s, ".")
	if len(frac) > digits {
		up := frac[digits] >= '5'
		frac = frac[:digits]
		if up {
			d := []byte(intpart + frac)
			i := len(d) - 1
			for ; i >= 0; i-- {
				if d[i] != '9' {
					d[i]++
					break
				}
				d[i] = '0'
			}
			r := string(d)
			if i < 0 {
				r = "1" + r
			}
			intpart, frac = r[:len(r)-len(frac)], r[len(r)-len(frac):]
		}
	}
	frac = strings.TrimRight(frac, "0")
	r := intpart
	if frac != "" {
		r += "." + frac
	}
	if neg && strings.Trim(r, "0.") != "" {
		r = "-" + r
	}
	return r
}
