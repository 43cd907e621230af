package main

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Decimal expansions substituted for the calculator's constant symbols.
var (
	piText = strconv.FormatFloat(math.Pi, 'f', -1, 64)
	eText  = strconv.FormatFloat(math.E, 'f', -1, 64)
)

// symbolKind classifies the lexemes of calculator notation.
type symbolKind int

const (
	symNumber symbolKind = iota
	symConst
	symFunc
	symOp
	symOpen
	symClose
	symPower
)

type symbol struct {
	kind symbolKind
	text string // text emitted in standard syntax
	pos  int    // rune offset in the calculator text
}

// namedFunctions maps calculator function names to evaluator functions.
// Names are matched before the single letters e and x, so "exp" is never
// read as e followed by a multiplication.
var namedFunctions = []struct {
	name string
	call string
}{
	{"sqrt", "sqrt"},
	{"cbrt", "cbrt"},
	{"sin", "sin"},
	{"cos", "cos"},
	{"tan", "tan"},
	{"log", "log10"},
	{"exp", "exp"},
	{"ln", "ln"},
}

// trigFunctions take their argument in degrees.
var trigFunctions = map[string]bool{"sin": true, "cos": true, "tan": true}

// scanSymbols splits calculator notation into symbols.
func scanSymbols(expr string) ([]symbol, error) {
	runes := []rune(expr)
	var syms []symbol
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case r == ' ':
			i++
		case isDigitRune(r) || r == '.':
			start := i
			for i < len(runes) && (isDigitRune(runes[i]) || runes[i] == '.') {
				i++
			}
			syms = append(syms, symbol{kind: symNumber, text: string(runes[start:i]), pos: start})
		case r == '+' || r == '-':
			syms = append(syms, symbol{kind: symOp, text: string(r), pos: i})
			i++
		case r == '*' || r == '/':
			syms = append(syms, symbol{kind: symOp, text: string(r), pos: i})
			i++
		case r == '÷':
			syms = append(syms, symbol{kind: symOp, text: "/", pos: i})
			i++
		case r == '(':
			syms = append(syms, symbol{kind: symOpen, text: "(", pos: i})
			i++
		case r == ')':
			syms = append(syms, symbol{kind: symClose, text: ")", pos: i})
			i++
		case r == 'π':
			syms = append(syms, symbol{kind: symConst, text: piText, pos: i})
			i++
		case r == '²':
			syms = append(syms, symbol{kind: symPower, text: "2", pos: i})
			i++
		case r == '³':
			syms = append(syms, symbol{kind: symPower, text: "3", pos: i})
			i++
		case r == '√':
			syms = append(syms, symbol{kind: symFunc, text: "sqrt", pos: i})
			i++
		case r == '∛':
			syms = append(syms, symbol{kind: symFunc, text: "cbrt", pos: i})
			i++
		case unicode.IsLetter(r):
			sym, n, err := scanWord(expr, runes, i)
			if err != nil {
				return nil, err
			}
			syms = append(syms, sym)
			i += n
		default:
			return nil, evalErrorf(expr, i, ErrSyntax, "unexpected character %q", r)
		}
	}
	return syms, nil
}

func isDigitRune(r rune) bool { return r >= '0' && r <= '9' }

// scanWord reads a function name, the constant e or the multiplication
// sign x starting at runes[i]. It returns the symbol and its rune length.
func scanWord(expr string, runes []rune, i int) (symbol, int, error) {
	rest := string(runes[i:])
	for _, f := range namedFunctions {
		if strings.HasPrefix(rest, f.name) {
			return symbol{kind: symFunc, text: f.call, pos: i}, len([]rune(f.name)), nil
		}
	}
	switch runes[i] {
	case 'e':
		return symbol{kind: symConst, text: eText, pos: i}, 1, nil
	case 'x':
		return symbol{kind: symOp, text: "*", pos: i}, 1, nil
	}
	end := i
	for end < len(runes) && unicode.IsLetter(runes[end]) {
		end++
	}
	return symbol{}, 0, evalErrorf(expr, i, ErrUnknownFunction, "%s", string(runes[i:end]))
}

// chunk is one piece of rewritten output. Operands are complete values
// (numbers, constants, groups, calls) that a postfix power can wrap.
type chunk struct {
	text    string
	operand bool
}

type rewriter struct {
	expr string
	syms []symbol
	i    int
}

// Rewrite converts calculator notation into the standard syntax accepted
// by Evaluate. Operator symbols become ASCII, constants become their
// decimal expansions, √ and ∛ become sqrt and cbrt, log becomes log10,
// superscript powers become pow calls, and the arguments of sin, cos and
// tan are converted from degrees to radians. Adjacent operands such as
// "2π" are joined with an explicit multiplication.
//
// Parentheses must already be balanced; see closeParens.
func Rewrite(expr string) (string, error) {
	syms, err := scanSymbols(expr)
	if err != nil {
		return "", err
	}
	rw := &rewriter{expr: expr, syms: syms}
	return rw.sequence(-1)
}

// sequence rewrites symbols up to the parenthesis closing the group
// opened at rune offset open, or to the end of input when open is -1.
func (rw *rewriter) sequence(open int) (string, error) {
	var out []chunk
	push := func(c chunk) {
		if n := len(out); n > 0 && out[n-1].operand {
			out = append(out, chunk{text: "*"})
		}
		out = append(out, c)
	}

	for rw.i < len(rw.syms) {
		s := rw.syms[rw.i]
		rw.i++

		switch s.kind {
		case symNumber, symConst:
			push(chunk{text: s.text, operand: true})
		case symOp:
			out = append(out, chunk{text: s.text})
		case symOpen:
			inner, err := rw.sequence(s.pos)
			if err != nil {
				return "", err
			}
			push(chunk{text: "(" + inner + ")", operand: true})
		case symClose:
			if open < 0 {
				return "", evalErrorf(rw.expr, s.pos, ErrUnbalanced, "unexpected %q", ")")
			}
			return joinChunks(out), nil
		case symFunc:
			if rw.i >= len(rw.syms) || rw.syms[rw.i].kind != symOpen {
				return "", evalErrorf(rw.expr, s.pos, ErrSyntax, "%s needs an argument in parentheses", s.text)
			}
			rw.i++
			inner, err := rw.sequence(rw.syms[rw.i-1].pos)
			if err != nil {
				return "", err
			}
			push(chunk{text: callText(s.text, inner), operand: true})
		case symPower:
			n := len(out)
			if n == 0 || !out[n-1].operand {
				return "", evalErrorf(rw.expr, s.pos, ErrSyntax, "power without a base")
			}
			out[n-1].text = "pow(" + out[n-1].text + ", " + s.text + ")"
		}
	}

	if open >= 0 {
		return "", evalErrorf(rw.expr, open, ErrUnbalanced, "unclosed %q", "(")
	}
	return joinChunks(out), nil
}

func callText(name, arg string) string {
	if trigFunctions[name] {
		return name + "((" + arg + ")*" + piText + "/180)"
	}
	return name + "(" + arg + ")"
}

func joinChunks(cs []chunk) string {
	var sb strings.Builder
	for _, c := range cs {
		sb.WriteString(c.text)
	}
	return sb.String()
}

// closeParens appends one ")" for every "(" left open in expr.
func closeParens(expr string) string {
	open := strings.Count(expr, "(")
	closed := strings.Count(expr, ")")
	if open > closed {
		return expr + strings.Repeat(")", open-closed)
	}
	return expr
}

// Eval runs the full pipeline on calculator notation: close parentheses,
// rewrite, evaluate.
func Eval(expr string) (float64, error) {
	std, err := Rewrite(closeParens(expr))
	if err != nil {
		return 0, err
	}
	return Evaluate(std)
}
