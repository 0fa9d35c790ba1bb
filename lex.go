package scicalc

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Token is a lexical unit of an expression.
type Token struct {
	// Text is the source text of the token. Operator tokens for × and ÷ hold
	// * and / instead.
	Text string
	// Kind is the lexical kind of the token.
	Kind TokenKind
	// Pos is the 1-based rune column at which the token starts.
	Pos int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// TokenKind is the lexical kind of a token.
type TokenKind int8

const (
	TokenNone TokenKind = iota
	// TokenEOF indicates the end of the input.
	TokenEOF
	// TokenNum is a numeric literal.
	TokenNum
	// TokenAns is the previous answer keyword.
	TokenAns
	// TokenWord is a bare word, normally a function name.
	TokenWord
	// TokenOp is an operator.
	TokenOp
	// TokenOpen is an open parenthesis.
	TokenOpen
	// TokenClose is a close parenthesis.
	TokenClose
	// TokenMolar is a complete molar mass call, e.g. M(H2O).
	TokenMolar
)

var tokenKindNames = [...]string{
	TokenNone:  "None",
	TokenEOF:   "EOF",
	TokenNum:   "Num",
	TokenAns:   "Ans",
	TokenWord:  "Word",
	TokenOp:    "Op",
	TokenOpen:  "Open",
	TokenClose: "Close",
	TokenMolar: "Molar",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(tokenKindNames) {
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return tokenKindNames[k]
}

// Operators contains the runes which are considered to be operators. × and ÷
// are read as * and /.
const Operators = "+-*/^×÷"

// AnsKeyword is the word that refers to the previous answer.
const AnsKeyword = "Ans"

// ImplicitMul is the text of the operator tokens that InsertImplicitMul
// inserts. No input lexes to it.
const ImplicitMul = "·"

type lexer struct {
	src string
	off int
	// col is the number of runes consumed.
	col int
	// skip drops invalid runes instead of failing.
	skip bool
}

func lex(src string, skip bool) *lexer {
	return &lexer{src: src, skip: skip}
}

// peek returns the rune at byte offset off+k, or utf8.RuneError past the end.
func (l *lexer) peek(k int) (rune, int) {
	if l.off+k >= len(l.src) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(l.src[l.off+k:])
}

// advance consumes n bytes of input.
func (l *lexer) advance(n int) string {
	s := l.src[l.off : l.off+n]
	l.off += n
	l.col += utf8.RuneCountInString(s)
	return s
}

// next scans the next token from the input. At the end of input, the result
// is a TokenEOF token.
func (l *lexer) next() (Token, error) {
	for {
		tok := Token{Pos: l.col + 1}
		r, sz := l.peek(0)
		switch {
		case sz == 0:
			tok.Kind = TokenEOF
			return tok, nil
		case r == ' ', r == '\t', r == '\n', r == '\r', r == '\v', r == '\f':
			l.advance(1)
			continue
		case r == 'M' && l.byteAt(1) == '(':
			n, err := l.scanMolar()
			if err != nil {
				return tok, err
			}
			tok.Text = l.advance(n)
			tok.Kind = TokenMolar
			return tok, nil
		case isDigit(r), r == '.':
			n := l.scanNum()
			if n == 0 {
				if l.skip {
					l.advance(1)
					continue
				}
				return tok, l.invalid("number", sz)
			}
			tok.Text = l.advance(n)
			tok.Kind = TokenNum
			return tok, nil
		case strings.HasPrefix(l.src[l.off:], AnsKeyword):
			tok.Text = l.advance(len(AnsKeyword))
			tok.Kind = TokenAns
			return tok, nil
		case r == '(':
			tok.Text = l.advance(1)
			tok.Kind = TokenOpen
			return tok, nil
		case r == ')':
			tok.Text = l.advance(1)
			tok.Kind = TokenClose
			return tok, nil
		case r == '×':
			l.off += sz
			l.col++
			tok.Text = "*"
			tok.Kind = TokenOp
			return tok, nil
		case r == '÷':
			l.off += sz
			l.col++
			tok.Text = "/"
			tok.Kind = TokenOp
			return tok, nil
		case strings.ContainsRune(Operators, r):
			tok.Text = l.advance(1)
			tok.Kind = TokenOp
			return tok, nil
		case isWord(r):
			n := 1
			for isWord(rune(l.byteAt(n))) {
				n++
			}
			tok.Text = l.advance(n)
			tok.Kind = TokenWord
			return tok, nil
		default:
			if l.skip {
				l.off += sz
				l.col++
				continue
			}
			return tok, l.invalid("", sz)
		}
	}
}

// byteAt returns the byte at offset off+k, or 0 past the end.
func (l *lexer) byteAt(k int) byte {
	if l.off+k >= len(l.src) {
		return 0
	}
	return l.src[l.off+k]
}

// scanNum returns the length of the numeric literal at the current offset, or
// 0 if there is none. A literal is digits with an optional fraction, or a
// fraction alone, followed by an optional exponent. The exponent is only
// consumed if it has at least one digit, so "2e" is the number 2 followed by
// the word e.
func (l *lexer) scanNum() int {
	n := 0
	for isDigit(rune(l.byteAt(n))) {
		n++
	}
	dig := n > 0
	if l.byteAt(n) == '.' {
		k := n + 1
		for isDigit(rune(l.byteAt(k))) {
			k++
		}
		if !dig && k == n+1 {
			return 0
		}
		n = k
	}
	if c := l.byteAt(n); c == 'e' || c == 'E' {
		k := n + 1
		if c := l.byteAt(k); c == '+' || c == '-' {
			k++
		}
		if isDigit(rune(l.byteAt(k))) {
			for isDigit(rune(l.byteAt(k))) {
				k++
			}
			n = k
		}
	}
	return n
}

// scanMolar returns the length of the M(...) call at the current offset.
// Formulas inside the call may not contain parentheses.
func (l *lexer) scanMolar() (int, error) {
	for n := 2; ; n++ {
		switch l.byteAt(n) {
		case ')':
			return n + 1, nil
		case '(':
			return 0, l.malformed(n + 1)
		case 0:
			if l.off+n >= len(l.src) {
				return 0, l.malformed(n)
			}
		}
	}
}

func (l *lexer) malformed(n int) error {
	return &LexError{Text: l.src[l.off : l.off+n], Kind: "molar mass", Col: l.col + utf8.RuneCountInString(l.src[l.off:l.off+n])}
}

func (l *lexer) invalid(kind string, sz int) error {
	return &LexError{Text: l.src[l.off : l.off+sz], Kind: kind, Col: l.col + 1}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isWord(r rune) bool {
	return r == '_' || isDigit(r) || 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

// Tokenize splits an expression into tokens. Characters that begin no token
// are an error.
func Tokenize(src string) ([]Token, error) {
	return tokenize(src, false)
}

func tokenize(src string, skip bool) ([]Token, error) {
	scan := lex(src, skip)
	var toks []Token
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == TokenEOF {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the text the lexer was scanning when it found the error.
	Text string
	// Kind is the type of token the lexer was scanning. This may be "number",
	// "molar mass", or the empty string if a token kind hadn't been decided.
	Kind string
	// Col is the total number of runes scanned by the lexer up to and
	// including this error.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid token at " + pos + ": " + err.Text
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + err.Text
}

func (err *LexError) Pos() int {
	return err.Col
}
