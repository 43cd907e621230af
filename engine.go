package main

import (
	"math"
	"unicode/utf8"
)

const (
	// historyLimit caps the number of remembered evaluations.
	historyLimit = 5

	// errorMarker is shown as the result of a failed evaluation.
	errorMarker = "Error"
)

// HistoryEntry is one successful evaluation.
type HistoryEntry struct {
	Expr   string
	Result string
}

func (h HistoryEntry) String() string {
	return h.Expr + " = " + h.Result
}

// State is the calculator's input buffer, cursor, last result and
// history. It is a value: Apply returns a new State and never mutates
// the receiver or slices it shares with it.
type State struct {
	Buffer  string
	Cursor  int // rune offset, 0 <= Cursor <= rune length of Buffer
	Result  string
	History []HistoryEntry // most recent first, at most historyLimit
	Err     error          // cause of the current error marker, if any
}

// Apply returns the state after pressing tok. Unknown tokens leave the
// state unchanged.
func (s State) Apply(tok Token) State {
	s.Cursor = s.clampCursor(s.Cursor)

	switch tok {
	case TokenEquals:
		return s.evaluate()
	case TokenClear:
		return State{History: s.History}
	case TokenBackspace:
		return s.backspace()
	case TokenPercent:
		return s.percent()
	case TokenFactorial:
		return s.factorial()
	case TokenCubeRoot:
		return s.replace("∛(" + s.Buffer + ")")
	case TokenReciprocal:
		return s.replace("1/(" + s.Buffer + ")")
	}

	if frag, ok := appendFragments[tok]; ok {
		return s.replace(s.Buffer + frag)
	}
	if tok.inserts() {
		return s.insert(string(tok))
	}
	return s
}

// MoveCursor moves the cursor by delta runes, clamped to the buffer.
func (s State) MoveCursor(delta int) State {
	s.Cursor = s.clampCursor(s.Cursor + delta)
	return s
}

// SetCursor places the cursor at pos, clamped to the buffer.
func (s State) SetCursor(pos int) State {
	s.Cursor = s.clampCursor(pos)
	return s
}

func (s State) clampCursor(pos int) int {
	return max(0, min(pos, utf8.RuneCountInString(s.Buffer)))
}

func (s State) insert(text string) State {
	r := []rune(s.Buffer)
	s.Buffer = string(r[:s.Cursor]) + text + string(r[s.Cursor:])
	s.Cursor += utf8.RuneCountInString(text)
	return s
}

func (s State) backspace() State {
	if s.Cursor == 0 {
		return s
	}
	r := []rune(s.Buffer)
	s.Buffer = string(r[:s.Cursor-1]) + string(r[s.Cursor:])
	s.Cursor--
	return s
}

// replace swaps in a whole new buffer and moves the cursor to its end.
func (s State) replace(buf string) State {
	s.Buffer = buf
	s.Cursor = utf8.RuneCountInString(buf)
	return s
}

// fail records err behind the error marker. The buffer is untouched.
func (s State) fail(err error) State {
	s.Result = errorMarker
	s.Err = err
	return s
}

func (s State) evaluate() State {
	if s.Buffer == "" {
		return s
	}
	val, err := Eval(s.Buffer)
	if err != nil {
		return s.fail(err)
	}
	s.Result = formatNumber(val)
	s.Err = nil
	s.History = prependHistory(s.History, HistoryEntry{Expr: s.Buffer, Result: s.Result})
	return s
}

func (s State) percent() State {
	val, err := parseNumber(s.Buffer)
	if err != nil {
		return s.fail(err)
	}
	return s.replace(formatPlain(val / 100))
}

func (s State) factorial() State {
	val, err := parseNumber(s.Buffer)
	if err != nil {
		return s.fail(err)
	}
	if val < 0 {
		return s.fail(evalErrorf(s.Buffer, -1, ErrDomain, "factorial of a negative number"))
	}
	n := math.Trunc(val)
	if n > maxFactorial {
		return s.fail(evalErrorf(s.Buffer, -1, ErrDomain, "factorial overflows above %d", maxFactorial))
	}
	return s.replace(formatPlain(factorial(int(n))))
}

// prependHistory returns a new slice with e in front of h, truncated to
// historyLimit.
func prependHistory(h []HistoryEntry, e HistoryEntry) []HistoryEntry {
	out := make([]HistoryEntry, 0, historyLimit)
	out = append(out, e)
	return append(out, h[:min(len(h), historyLimit-1)]...)
}
