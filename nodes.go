package scicalc

import (
	"strconv"
	"strings"
)

// item is one entry of a postfix program.
type item struct {
	kind itemKind
	// op is the operator for itemOp.
	op opKind
	// num is the value for itemNum.
	num Number
	// name is the function name for itemCall or the text for itemWord.
	name string
	fn   Func
	// pos is the column of the token the item came from.
	pos int
}

type itemKind int8

const (
	itemNone itemKind = iota

	itemNum  // push num
	itemOp   // pop operands, apply op, push result
	itemCall // pop argument, push fn(argument)
	itemWord // unknown word; fails evaluation
)

// opKind identifies an operator. The parser resolves - to opNeg in operand
// position and pushes opImplicit as opMul, so evaluation only sees real
// operators.
type opKind int8

const (
	opNone opKind = iota
	opAdd
	opSub
	opMul
	opDiv
	opPow
	opNeg
	opImplicit
)

var opNames = [...]string{
	opNone:     "?",
	opAdd:      "+",
	opSub:      "-",
	opMul:      "*",
	opDiv:      "/",
	opPow:      "^",
	opNeg:      "neg",
	opImplicit: ImplicitMul,
}

func (op opKind) String() string {
	return opNames[op]
}

// binop gets the operator for an operator token's text.
func binop(text string) opKind {
	switch text {
	case "+":
		return opAdd
	case "-":
		return opSub
	case "*":
		return opMul
	case "/":
		return opDiv
	case "^":
		return opPow
	case ImplicitMul:
		return opImplicit
	default:
		return opNone
	}
}

func (it item) String() string {
	switch it.kind {
	case itemNum:
		if it.num.exp > -21 && it.num.exp < 21 {
			return strconv.FormatFloat(it.num.Float64(), 'g', -1, 64)
		}
		return it.num.String()
	case itemOp:
		return it.op.String()
	case itemCall, itemWord:
		return it.name
	default:
		return "$"
	}
}

func formatItems(items []item) string {
	var b strings.Builder
	for i, it := range items {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(it.String())
	}
	return b.String()
}
