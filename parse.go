package scicalc

import (
	"strconv"
	"strings"

	"github.com/zephyrtronium/scicalc/molar"
)

// Expr = Term { binop Term }
// Term = num | Ans | Molar | '-' Term | '(' Expr ')' | func '(' Expr ')' | Term Term'
// Term' = '(' Expr ')' | func '(' Expr ')' | Molar
// Molar = 'M(' formula ')'
// binop = '+' | '-' | '*' | '/' | '^'
//
// Juxtaposition (Term Term') is implicit multiplication. It binds tighter
// than * and /, as does unary minus; ^ binds tightest and is
// right-associative.

// class is the syntactic class of a token. classify is the only place that
// decides it.
type class int8

const (
	classUnknown class = iota
	classNum
	classAns
	classOpen
	classClose
	classFunc
	classOp
	classMolar
)

func (ev *Evaluator) classify(tok Token) class {
	switch tok.Kind {
	case TokenNum:
		return classNum
	case TokenAns:
		return classAns
	case TokenOpen:
		return classOpen
	case TokenClose:
		return classClose
	case TokenOp:
		return classOp
	case TokenMolar:
		return classMolar
	case TokenWord:
		if ev.funcs[tok.Text] != nil {
			return classFunc
		}
	}
	return classUnknown
}

// InsertImplicitMul inserts an ImplicitMul operator token between each pair of
// adjacent tokens where the left ends a term (a number, Ans, or a close paren)
// and the right begins one (an open paren, a function name, or M(...)). The
// input is not modified.
func (ev *Evaluator) InsertImplicitMul(toks []Token) []Token {
	r := make([]Token, 0, len(toks)+len(toks)/2)
	for i, tok := range toks {
		r = append(r, tok)
		if i+1 < len(toks) && endsTerm(ev.classify(tok)) && beginsTerm(ev.classify(toks[i+1])) {
			r = append(r, Token{Text: ImplicitMul, Kind: TokenOp, Pos: toks[i+1].Pos})
		}
	}
	return r
}

func endsTerm(c class) bool {
	return c == classNum || c == classAns || c == classClose
}

func beginsTerm(c class) bool {
	return c == classOpen || c == classFunc || c == classMolar
}

// precedence gives binding strength by operator. Higher binds tighter.
var precedence = [...]int8{
	opAdd:      1,
	opSub:      1,
	opMul:      2,
	opDiv:      2,
	opNeg:      3,
	opImplicit: 3,
	opPow:      4,
}

// popsBefore reports whether the operator top on the operator stack must move
// to the output before incoming is pushed.
func popsBefore(top, incoming opKind) bool {
	switch {
	case top == opPow && (incoming == opNeg || incoming == opImplicit):
		// 2^-3 is 2^(-3), and 2^3(4) is 2^(3·4).
		return false
	case top == opNeg && incoming == opNeg:
		return false
	case top == opPow && incoming == opPow:
		// 2^3^2 is 2^(3^2).
		return false
	case top == incoming:
		return true
	}
	return precedence[top] >= precedence[incoming]
}

// stackEntry is an entry on the operator stack: an open paren, a function,
// or an operator.
type stackEntry struct {
	kind class
	op   opKind
	name string
	fn   Func
	pos  int
}

type parser struct {
	out []item
	ops []stackEntry
}

func (p *parser) push(e stackEntry) {
	p.ops = append(p.ops, e)
}

func (p *parser) pop() stackEntry {
	e := p.ops[len(p.ops)-1]
	p.ops = p.ops[:len(p.ops)-1]
	return e
}

// top returns the top of the operator stack, or an entry of class
// classUnknown if the stack is empty.
func (p *parser) top() stackEntry {
	if len(p.ops) == 0 {
		return stackEntry{}
	}
	return p.ops[len(p.ops)-1]
}

// emit moves an operator stack entry to the output.
func (p *parser) emit(e stackEntry) {
	switch e.kind {
	case classFunc:
		p.out = append(p.out, item{kind: itemCall, name: e.name, fn: e.fn, pos: e.pos})
	case classOp:
		p.out = append(p.out, item{kind: itemOp, op: e.op, pos: e.pos})
	default:
		panic("scicalc: emit of non-operator entry")
	}
}

func (p *parser) num(n Number, pos int) {
	p.out = append(p.out, item{kind: itemNum, num: n, pos: pos})
}

// Parse converts an expression to postfix form. Each Ans in the expression is
// replaced by ans, and each M(...) call by the molar mass of its formula.
func (ev *Evaluator) Parse(src string, ans Number) (*Expr, error) {
	toks, err := tokenize(src, ev.skip)
	if err != nil {
		return nil, err
	}
	if len(toks) == 0 {
		return nil, &EmptyExpressionError{Col: 1}
	}
	toks = ev.InsertImplicitMul(toks)
	p := parser{out: make([]item, 0, len(toks))}
	for i, tok := range toks {
		switch ev.classify(tok) {
		case classNum:
			n, err := parseNum(tok.Text)
			if err != nil {
				return nil, err
			}
			p.num(n, tok.Pos)
		case classAns:
			p.num(ans, tok.Pos)
		case classMolar:
			f := tok.Text[len("M(") : len(tok.Text)-len(")")]
			m, err := molar.Mass(f)
			if err != nil {
				return nil, &MolarError{Col: tok.Pos, Formula: f, Err: err}
			}
			p.num(FromFloat(m), tok.Pos)
		case classOpen:
			p.push(stackEntry{kind: classOpen, pos: tok.Pos})
		case classClose:
			if i > 0 && toks[i-1].Kind == TokenOpen {
				return nil, &EmptyExpressionError{Col: tok.Pos, End: tok.Text}
			}
			for {
				if len(p.ops) == 0 {
					return nil, &BracketError{Col: tok.Pos, Right: tok.Text}
				}
				e := p.pop()
				if e.kind == classOpen {
					break
				}
				p.emit(e)
			}
			if p.top().kind == classFunc {
				p.emit(p.pop())
			}
		case classFunc:
			if i+1 == len(toks) || toks[i+1].Kind != TokenOpen {
				return nil, &CallError{Col: tok.Pos, Func: tok.Text}
			}
			p.push(stackEntry{kind: classFunc, name: tok.Text, fn: ev.funcs[tok.Text], pos: tok.Pos})
		case classOp:
			op := binop(tok.Text)
			if op == opSub && (i == 0 || toks[i-1].Kind == TokenOp || toks[i-1].Kind == TokenOpen) {
				op = opNeg
			}
			for p.top().kind == classOp && popsBefore(p.top().op, op) {
				p.emit(p.pop())
			}
			if op == opImplicit {
				op = opMul
			}
			p.push(stackEntry{kind: classOp, op: op, pos: tok.Pos})
		default:
			p.out = append(p.out, item{kind: itemWord, name: tok.Text, pos: tok.Pos})
		}
	}
	for len(p.ops) > 0 {
		e := p.pop()
		if e.kind == classOpen {
			return nil, &BracketError{Col: e.pos, Left: "("}
		}
		p.emit(e)
	}
	return &Expr{items: p.out, pow: ev.pow}, nil
}

// parseNum converts a numeric literal to a Number. The exponent is parsed
// separately so that literals beyond float64 range, like 1e400, are exact.
func parseNum(s string) (Number, error) {
	mant, exp := s, ""
	if k := strings.IndexAny(s, "eE"); k >= 0 {
		mant, exp = s[:k], s[k+1:]
	}
	m, err := strconv.ParseFloat(mant, 64)
	if err != nil {
		return Number{}, &RangeError{Func: "literal " + s}
	}
	e := 0
	if m == 0 {
		return Number{}, nil
	}
	if exp != "" {
		e, err = strconv.Atoi(exp)
		if err != nil || e > maxExp || e < -maxExp {
			if strings.HasPrefix(exp, "-") {
				return Number{}, nil
			}
			return Number{}, &RangeError{Func: "literal " + s}
		}
	}
	return New(m, e), nil
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}
