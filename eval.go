package scicalc

import (
	"math"
)

// Evaluator parses and evaluates expressions. Its configuration is fixed at
// creation, so an Evaluator is safe to use concurrently.
type Evaluator struct {
	funcs map[string]Func
	pow   PowFunc
	skip  bool
}

// NewEvaluator creates an Evaluator. Without options, it knows the default
// functions, computes ^ with LegacyPow, and rejects stray characters.
func NewEvaluator(opts ...Option) *Evaluator {
	ev := Evaluator{funcs: DefaultFuncs(), pow: LegacyPow}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.apply(&ev)
	}
	return &ev
}

// Funcs returns the names of the evaluator's functions in sorted order.
func (ev *Evaluator) Funcs() []string {
	names := make([]string, 0, len(ev.funcs))
	for k := range ev.funcs {
		names = append(names, k)
	}
	sortstrs(names)
	return names
}

// Evaluate parses and evaluates an expression. Each Ans in the expression
// takes the value ans. Any failure is returned as a *SyntaxError wrapping the
// cause, so errors.Is(err, ErrSyntax) holds for every error.
func (ev *Evaluator) Evaluate(src string, ans Number) (Number, error) {
	e, err := ev.Parse(src, ans)
	if err != nil {
		return Number{}, &SyntaxError{Err: err}
	}
	r, err := e.Eval()
	if err != nil {
		return Number{}, &SyntaxError{Err: err}
	}
	return r, nil
}

var defaultEvaluator = NewEvaluator()

// Evaluate parses and evaluates an expression using the default functions
// and LegacyPow.
func Evaluate(src string, ans Number) (Number, error) {
	return defaultEvaluator.Evaluate(src, ans)
}

// InsertImplicitMul inserts implicit multiplication operators into a token
// sequence using the default functions.
func InsertImplicitMul(toks []Token) []Token {
	return defaultEvaluator.InsertImplicitMul(toks)
}

// Expr is a parsed expression in postfix order.
type Expr struct {
	items []item
	pow   PowFunc
}

// String formats the expression in postfix notation with operands and
// operators separated by spaces, e.g. "2 3 4 * +".
func (e *Expr) String() string {
	return formatItems(e.items)
}

// evalStack is the value stack of a postfix evaluation.
type evalStack []Number

func (s *evalStack) push(x Number) {
	*s = append(*s, x)
}

func (s *evalStack) pop() Number {
	r := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return r
}

var minusOne = FromFloat(-1)

// Eval computes the value of the expression. An unknown word, an operator or
// function lacking operands, or an expression that does not reduce to exactly
// one value is an error, as is any operation with a non-finite result.
func (e *Expr) Eval() (Number, error) {
	s := make(evalStack, 0, len(e.items))
	for _, it := range e.items {
		switch it.kind {
		case itemNum:
			s.push(it.num)
		case itemOp:
			if it.op == opNeg {
				if len(s) < 1 {
					return Number{}, &MalformedError{Col: it.pos, Op: "-"}
				}
				s.push(s.pop().Mul(minusOne))
				continue
			}
			if len(s) < 2 {
				return Number{}, &MalformedError{Col: it.pos, Op: it.op.String()}
			}
			r := s.pop()
			l := s.pop()
			v, err := e.binary(it.op, l, r)
			if err != nil {
				return Number{}, err
			}
			if err := finite(v, it.op.String(), l); err != nil {
				return Number{}, err
			}
			s.push(v)
		case itemCall:
			if len(s) < 1 {
				return Number{}, &MalformedError{Col: it.pos, Op: it.name}
			}
			x := s.pop()
			v, err := it.fn(x)
			if err != nil {
				return Number{}, err
			}
			if err := finite(v, it.name, x); err != nil {
				return Number{}, err
			}
			s.push(v)
		case itemWord:
			return Number{}, &UnknownTokenError{Col: it.pos, Token: it.name}
		default:
			panic("scicalc: invalid postfix item " + it.String())
		}
	}
	if len(s) != 1 {
		return Number{}, &MalformedError{Values: len(s)}
	}
	return s[0], nil
}

func (e *Expr) binary(op opKind, l, r Number) (Number, error) {
	switch op {
	case opAdd:
		return l.Add(r), nil
	case opSub:
		return l.Sub(r), nil
	case opMul:
		return l.Mul(r), nil
	case opDiv:
		return l.Div(r)
	case opPow:
		pow := e.pow
		if pow == nil {
			pow = LegacyPow
		}
		return pow(l, r)
	default:
		panic("scicalc: invalid binary operator " + op.String())
	}
}

// finite converts a non-finite result of fn applied to x into an error.
func finite(v Number, fn string, x Number) error {
	switch {
	case math.IsNaN(v.mant):
		return &DomainError{X: x, Func: fn, Arg: 1}
	case math.IsInf(v.mant, 0):
		return &RangeError{Func: fn}
	}
	return nil
}
