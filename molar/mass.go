// Package molar computes molar masses of chemical formulas such as "H2O",
// "Ca(OH)2", or "Fe2(SO4)3".
//
// A formula is a sequence of element symbols, each an uppercase letter
// optionally followed by a lowercase letter, with optional integer counts.
// Parenthesized groups may be nested and may be followed by an integer
// multiplier. Whitespace is ignored.
package molar

import (
	"strconv"
	"strings"
	"unicode"
)

// MaxExpansion is the largest number of bytes a formula may expand to after
// applying group multipliers.
const MaxExpansion = 1 << 20

// Mass returns the molar mass of a formula in g/mol. The empty formula has
// mass zero.
func Mass(formula string) (float64, error) {
	s, err := expand(formula)
	if err != nil {
		return 0, err
	}
	return sum(s)
}

// expand strips whitespace from a formula and rewrites each parenthesized
// group as its contents repeated by the group's multiplier. Since element
// counts are additive, the mass of the expansion equals the mass of the
// formula.
func expand(formula string) (string, error) {
	f := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, formula)
	// stack[0] is the top-level segment. Each open paren pushes another.
	stack := []string{""}
	opens := []int{}
	for i := 0; i < len(f); {
		switch f[i] {
		case '(':
			stack = append(stack, "")
			opens = append(opens, i+1)
			i++
		case ')':
			if len(stack) == 1 {
				return "", &ParenError{Col: i + 1}
			}
			seg := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			opens = opens[:len(opens)-1]
			i++
			j := i
			for j < len(f) && '0' <= f[j] && f[j] <= '9' {
				j++
			}
			mul := 1
			if j > i {
				n, err := strconv.Atoi(f[i:j])
				if err != nil {
					return "", &FormulaError{Col: i + 1, Text: f[i:j]}
				}
				mul = n
			}
			i = j
			if len(seg) > 0 && mul > (MaxExpansion-len(stack[len(stack)-1]))/len(seg) {
				return "", &FormulaError{Col: i, Text: f[:i], TooLong: true}
			}
			stack[len(stack)-1] += strings.Repeat(seg, mul)
		default:
			stack[len(stack)-1] += f[i : i+1]
			i++
		}
	}
	if len(stack) > 1 {
		return "", &ParenError{Col: opens[len(opens)-1], Open: true}
	}
	return stack[0], nil
}

// sum adds the masses of the element runs in a formula with no parentheses.
func sum(s string) (float64, error) {
	var total float64
	for i := 0; i < len(s); {
		if s[i] < 'A' || 'Z' < s[i] {
			return 0, &FormulaError{Text: s[i:]}
		}
		j := i + 1
		if j < len(s) && 'a' <= s[j] && s[j] <= 'z' {
			j++
		}
		sym := s[i:j]
		k := j
		for k < len(s) && '0' <= s[k] && s[k] <= '9' {
			k++
		}
		count := 1
		if k > j {
			n, err := strconv.Atoi(s[j:k])
			if err != nil {
				return 0, &FormulaError{Text: s[i:k]}
			}
			count = n
		}
		m, ok := masses[sym]
		if !ok {
			return 0, &UnknownElementError{Symbol: sym}
		}
		total += m * float64(count)
		i = k
	}
	return total, nil
}

// UnknownElementError is an error indicating a symbol which is not in the
// element table.
type UnknownElementError struct {
	// Symbol is the unrecognized symbol.
	Symbol string
}

func (err *UnknownElementError) Error() string {
	return "unknown element " + strconv.Quote(err.Symbol)
}

// ParenError is an error indicating an unmatched parenthesis in a formula.
type ParenError struct {
	// Col is the 1-based byte position of the parenthesis in the formula with
	// whitespace removed.
	Col int
	// Open is true if the parenthesis is an open paren that was never closed.
	Open bool
}

func (err *ParenError) Error() string {
	if err.Open {
		return "unmatched parenthesis at " + strconv.Itoa(err.Col) + ": ( with no close"
	}
	return "unmatched parenthesis at " + strconv.Itoa(err.Col) + ": ) with no open"
}

// FormulaError is an error indicating text that is not an element run, or a
// formula that expands beyond MaxExpansion.
type FormulaError struct {
	// Col is the position of the problem in the formula with whitespace
	// removed, or 0 if it was found after expanding groups.
	Col int
	// Text is the offending text.
	Text string
	// TooLong is set when the expansion limit was exceeded.
	TooLong bool
}

func (err *FormulaError) Error() string {
	if err.TooLong {
		return "formula expands beyond " + strconv.Itoa(MaxExpansion) + " bytes"
	}
	if err.Col > 0 {
		return "invalid formula at " + strconv.Itoa(err.Col) + ": " + strconv.Quote(err.Text)
	}
	return "invalid formula text " + strconv.Quote(err.Text)
}
