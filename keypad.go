package main

import "slices"

// Token is one keypad input.
type Token string

// Control, function and constant tokens. Digits, ".", operators and
// parentheses are tokens whose text is inserted as-is.
const (
	TokenClear      Token = "C"
	TokenBackspace  Token = "⌫"
	TokenEquals     Token = "="
	TokenPercent    Token = "%"
	TokenFactorial  Token = "x!"
	TokenCubeRoot   Token = "∛"
	TokenReciprocal Token = "1/x"
	TokenSin        Token = "sin"
	TokenCos        Token = "cos"
	TokenTan        Token = "tan"
	TokenSqrt       Token = "sqrt"
	TokenLog        Token = "log"
	TokenLn         Token = "ln"
	TokenExp        Token = "exp"
	TokenPi         Token = "π"
	TokenE          Token = "e"
	TokenSquare     Token = "x²"
	TokenCube       Token = "x³"
)

// insertChars are the single-character tokens inserted at the cursor.
const insertChars = "0123456789.+-x÷()"

// inserts reports whether t is inserted at the cursor.
func (t Token) inserts() bool {
	r := []rune(string(t))
	return len(r) == 1 && slices.Contains([]rune(insertChars), r[0])
}

// appendFragments are the texts named tokens add to the end of the buffer.
var appendFragments = map[Token]string{
	TokenSin:    "sin(",
	TokenCos:    "cos(",
	TokenTan:    "tan(",
	TokenSqrt:   "√(",
	TokenLog:    "log(",
	TokenLn:     "ln(",
	TokenExp:    "exp(",
	TokenPi:     "π",
	TokenE:      "e",
	TokenSquare: "²",
	TokenCube:   "³",
}

// tokenClass groups tokens for styling.
type tokenClass int

const (
	classDigit tokenClass = iota
	classOperator
	classScientific
	classEquals
)

func (t Token) class() tokenClass {
	switch t {
	case TokenEquals:
		return classEquals
	case TokenClear, "(", ")", "÷", "x", "-", "+":
		return classOperator
	case TokenPercent, TokenFactorial, TokenCubeRoot, TokenReciprocal:
		return classScientific
	}
	if _, ok := appendFragments[t]; ok {
		return classScientific
	}
	return classDigit
}

// keypadMode selects which layout is offered.
type keypadMode int

const (
	modeStandard keypadMode = iota
	modeScientific
)

func (m keypadMode) String() string {
	if m == modeScientific {
		return "Scientific Mode"
	}
	return "Standard Mode"
}

// standardLayout is the 4-column portrait keypad.
var standardLayout = [][]Token{
	{TokenClear, "(", ")", "÷"},
	{"7", "8", "9", "x"},
	{"4", "5", "6", "-"},
	{"1", "2", "3", "+"},
	{"0", ".", TokenBackspace, TokenEquals},
}

// scientificLayout is the 7-column landscape keypad.
var scientificLayout = [][]Token{
	{TokenSin, TokenCos, TokenTan, TokenClear, "(", ")", "÷"},
	{TokenPercent, TokenCubeRoot, TokenFactorial, "7", "8", "9", "x"},
	{TokenSqrt, TokenLog, TokenLn, "4", "5", "6", "-"},
	{TokenExp, TokenPi, TokenE, "1", "2", "3", "+"},
	{TokenSquare, TokenCube, TokenReciprocal, "0", ".", TokenBackspace, TokenEquals},
}

func layoutFor(mode keypadMode) [][]Token {
	if mode == modeScientific {
		return scientificLayout
	}
	return standardLayout
}

// reachable reports whether t appears on the keypad for mode.
func reachable(mode keypadMode, t Token) bool {
	for _, row := range layoutFor(mode) {
		if slices.Contains(row, t) {
			return true
		}
	}
	return false
}

// shortcuts maps typed keys to tokens. A shortcut only fires when its
// token is on the active keypad.
var shortcuts = map[string]Token{
	"0": "0", "1": "1", "2": "2", "3": "3", "4": "4",
	"5": "5", "6": "6", "7": "7", "8": "8", "9": "9",
	".": ".", "+": "+", "-": "-", "(": "(", ")": ")",
	"*": "x", "x": "x", "/": "÷",
	"=": TokenEquals, "enter": TokenEquals,
	"backspace": TokenBackspace,
	"c":         TokenClear,
	"%":         TokenPercent,
	"!":         TokenFactorial,
	"s":         TokenSin,
	"o":         TokenCos,
	"t":         TokenTan,
	"r":         TokenSqrt,
	"g":         TokenLog,
	"n":         TokenLn,
	"E":         TokenExp,
	"p":         TokenPi,
	"e":         TokenE,
	"^":         TokenSquare,
	"i":         TokenReciprocal,
}
