package main

import (
	"math"
	"strconv"
)

// tokenKind classifies lexical tokens of the evaluator's input syntax.
type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokOp
	tokLParen
	tokRParen
	tokComma
)

type token struct {
	kind tokenKind
	text string
	num  float64
	pos  int
}

// function is a built-in callable of the evaluator.
type function struct {
	arity int
	fn    func(args []float64) float64
}

func unary(f func(float64) float64) function {
	return function{arity: 1, fn: func(a []float64) float64 { return f(a[0]) }}
}

// functions is the fixed set of calls the evaluator understands.
var functions = map[string]function{
	"sqrt":  unary(math.Sqrt),
	"cbrt":  unary(math.Cbrt),
	"log10": unary(math.Log10),
	"ln":    unary(math.Log),
	"exp":   unary(math.Exp),
	"sin":   unary(math.Sin),
	"cos":   unary(math.Cos),
	"tan":   unary(math.Tan),
	"pow":   {arity: 2, fn: func(a []float64) float64 { return math.Pow(a[0], a[1]) }},
}

var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// lex splits standard arithmetic text into tokens. The input is plain
// ASCII: anything the rewrite step did not translate is rejected here.
func lex(src string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(src) {
		ch := src[i]
		switch {
		case ch == ' ' || ch == '\t':
			i++
		case isDigit(ch) || ch == '.':
			start := i
			for i < len(src) && (isDigit(src[i]) || src[i] == '.') {
				i++
			}
			text := src[start:i]
			val, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, evalErrorf(src, start, ErrSyntax, "bad number %q", text)
			}
			toks = append(toks, token{kind: tokNumber, text: text, num: val, pos: start})
		case isLetter(ch):
			start := i
			for i < len(src) && (isLetter(src[i]) || isDigit(src[i])) {
				i++
			}
			toks = append(toks, token{kind: tokIdent, text: src[start:i], pos: start})
		case ch == '+' || ch == '-' || ch == '*' || ch == '/':
			toks = append(toks, token{kind: tokOp, text: string(ch), pos: i})
			i++
		case ch == '(':
			toks = append(toks, token{kind: tokLParen, text: "(", pos: i})
			i++
		case ch == ')':
			toks = append(toks, token{kind: tokRParen, text: ")", pos: i})
			i++
		case ch == ',':
			toks = append(toks, token{kind: tokComma, text: ",", pos: i})
			i++
		default:
			return nil, evalErrorf(src, i, ErrSyntax, "unexpected character %q", rune(ch))
		}
	}
	toks = append(toks, token{kind: tokEOF, pos: len(src)})
	return toks, nil
}

func isDigit(ch byte) bool  { return ch >= '0' && ch <= '9' }
func isLetter(ch byte) bool { return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') }

// Evaluate computes the value of an expression in standard syntax:
// numbers, + - * /, unary signs, parentheses, the constants pi and e and
// calls to sqrt, cbrt, log10, ln, exp, sin, cos, tan and pow.
//
// Non-finite results (division by zero, log of a negative number) are
// returned as Inf or NaN, not as errors.
func Evaluate(src string) (float64, error) {
	toks, err := lex(src)
	if err != nil {
		return 0, err
	}
	p := &parser{src: src, toks: toks}
	val, err := p.expr()
	if err != nil {
		return 0, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return 0, p.unexpected(t)
	}
	return val, nil
}

// parser is a recursive-descent evaluator over a token slice.
//
//	expr    = term { ("+" | "-") term }
//	term    = unary { ("*" | "/") unary }
//	unary   = ("+" | "-") unary | primary
//	primary = number | ident [ "(" expr { "," expr } ")" ] | "(" expr ")"
type parser struct {
	src  string
	toks []token
	i    int
}

func (p *parser) peek() token {
	return p.toks[p.i]
}

func (p *parser) next() token {
	t := p.toks[p.i]
	if t.kind != tokEOF {
		p.i++
	}
	return t
}

func (p *parser) unexpected(t token) error {
	if t.kind == tokEOF {
		return evalErrorf(p.src, t.pos, ErrSyntax, "unexpected end of expression")
	}
	if t.kind == tokRParen {
		return evalErrorf(p.src, t.pos, ErrUnbalanced, "unexpected %q", t.text)
	}
	return evalErrorf(p.src, t.pos, ErrSyntax, "unexpected %q", t.text)
}

func (p *parser) expect(kind tokenKind) error {
	t := p.next()
	if t.kind != kind {
		return p.unexpected(t)
	}
	return nil
}

func (p *parser) expr() (float64, error) {
	left, err := p.term()
	if err != nil {
		return 0, err
	}
	for {
		t := p.peek()
		if t.kind != tokOp || (t.text != "+" && t.text != "-") {
			return left, nil
		}
		p.next()
		right, err := p.term()
		if err != nil {
			return 0, err
		}
		if t.text == "+" {
			left += right
		} else {
			left -= right
		}
	}
}

func (p *parser) term() (float64, error) {
	left, err := p.unary()
	if err != nil {
		return 0, err
	}
	for {
		t := p.peek()
		if t.kind != tokOp || (t.text != "*" && t.text != "/") {
			return left, nil
		}
		p.next()
		right, err := p.unary()
		if err != nil {
			return 0, err
		}
		if t.text == "*" {
			left *= right
		} else {
			left /= right
		}
	}
}

func (p *parser) unary() (float64, error) {
	t := p.peek()
	if t.kind == tokOp && (t.text == "+" || t.text == "-") {
		p.next()
		val, err := p.unary()
		if err != nil {
			return 0, err
		}
		if t.text == "-" {
			return -val, nil
		}
		return val, nil
	}
	return p.primary()
}

func (p *parser) primary() (float64, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		return t.num, nil
	case tokLParen:
		val, err := p.expr()
		if err != nil {
			return 0, err
		}
		if err := p.expect(tokRParen); err != nil {
			return 0, err
		}
		return val, nil
	case tokIdent:
		if p.peek().kind != tokLParen {
			if c, ok := constants[t.text]; ok {
				return c, nil
			}
			return 0, evalErrorf(p.src, t.pos, ErrSyntax, "unknown name %q", t.text)
		}
		return p.call(t)
	}
	return 0, p.unexpected(t)
}

func (p *parser) call(name token) (float64, error) {
	f, ok := functions[name.text]
	if !ok {
		return 0, evalErrorf(p.src, name.pos, ErrUnknownFunction, "%s", name.text)
	}
	p.next() // (

	var args []float64
	for {
		val, err := p.expr()
		if err != nil {
			return 0, err
		}
		args = append(args, val)
		if p.peek().kind != tokComma {
			break
		}
		p.next()
	}
	if err := p.expect(tokRParen); err != nil {
		return 0, err
	}
	if len(args) != f.arity {
		return 0, evalErrorf(p.src, name.pos, ErrSyntax, "%s takes %d argument(s), got %d", name.text, f.arity, len(args))
	}
	return f.fn(args), nil
}
