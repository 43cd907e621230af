package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send feeds messages to the model in order and returns the result.
func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func portrait() tea.Msg  { return tea.WindowSizeMsg{Width: 40, Height: 30} }
func landscape() tea.Msg { return tea.WindowSizeMsg{Width: 120, Height: 30} }

func TestModelOrientation(t *testing.T) {
	m := send(initialModel(DefaultConfig()), portrait())
	if m.mode() != modeStandard {
		t.Errorf("portrait window: mode %v, want standard", m.mode())
	}
	m = send(m, landscape())
	if m.mode() != modeScientific {
		t.Errorf("landscape window: mode %v, want scientific", m.mode())
	}
}

func TestModelForcedLayout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Layout = layoutScientific
	m := send(initialModel(cfg), portrait())
	if m.mode() != modeScientific {
		t.Errorf("forced scientific: mode %v", m.mode())
	}

	// tab flips the override
	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.mode() != modeStandard {
		t.Errorf("after tab: mode %v, want standard", m.mode())
	}
	m = send(m, landscape())
	if m.mode() != modeStandard {
		t.Errorf("override should survive resize, got %v", m.mode())
	}
}

func TestModelShortcuts(t *testing.T) {
	m := send(initialModel(DefaultConfig()), portrait(),
		runes("2"), runes("+"), runes("3"), runes("*"), runes("4"),
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	if m.state.Buffer != "2+3x4" {
		t.Errorf("buffer %q, want \"2+3x4\"", m.state.Buffer)
	}
	if m.state.Result != "14" {
		t.Errorf("result %q, want \"14\"", m.state.Result)
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyBackspace})
	if m.state.Buffer != "2+3x" {
		t.Errorf("after backspace: buffer %q", m.state.Buffer)
	}

	m = send(m, runes("c"))
	if m.state.Buffer != "" || m.state.Result != "" {
		t.Errorf("after clear: buffer %q result %q", m.state.Buffer, m.state.Result)
	}
}

func TestModelScientificShortcutsNeedScientificMode(t *testing.T) {
	m := send(initialModel(DefaultConfig()), portrait(), runes("9"), runes("!"))
	if m.state.Buffer != "9" {
		t.Errorf("x! is not on the standard keypad, buffer %q", m.state.Buffer)
	}

	m = send(m, landscape(), runes("!"))
	if m.state.Buffer != "362880" {
		t.Errorf("scientific x!: buffer %q, want \"362880\"", m.state.Buffer)
	}
}

func TestModelKeypadNavigation(t *testing.T) {
	m := send(initialModel(DefaultConfig()), portrait())

	// Move to "7" (row 1, col 0) and press it
	m = send(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeySpace})
	if m.state.Buffer != "7" {
		t.Errorf("buffer %q, want \"7\"", m.state.Buffer)
	}
	if m.pulse != "7" {
		t.Errorf("pulse %q, want \"7\"", m.pulse)
	}

	// Selection clamps when switching to a narrower layout
	m = send(m, landscape())
	for range 6 {
		m = send(m, tea.KeyMsg{Type: tea.KeyRight})
	}
	if m.col != 6 {
		t.Fatalf("col %d, want 6", m.col)
	}
	m = send(m, portrait())
	if m.col != 3 {
		t.Errorf("col %d after rotating to portrait, want 3", m.col)
	}
}

func TestModelPulse(t *testing.T) {
	m := send(initialModel(DefaultConfig()), portrait())
	next, cmd := m.Update(runes("5"))
	m = next.(Model)
	if cmd == nil {
		t.Fatal("press should schedule the pulse reset")
	}
	seq := m.pulseSeq

	// A stale tick does not clear a newer pulse
	m = send(m, runes("6"), pulseDoneMsg{seq: seq})
	if m.pulse != "6" {
		t.Errorf("pulse %q, want \"6\"", m.pulse)
	}
	m = send(m, pulseDoneMsg{seq: m.pulseSeq})
	if m.pulse != "" {
		t.Errorf("pulse %q, want cleared", m.pulse)
	}
}

func TestModelCursorKeys(t *testing.T) {
	m := send(initialModel(DefaultConfig()), portrait(),
		runes("1"), runes("3"), runes("<"), runes("2"),
	)
	if m.state.Buffer != "123" {
		t.Errorf("buffer %q, want \"123\"", m.state.Buffer)
	}
	m = send(m, tea.KeyMsg{Type: tea.KeyHome}, runes("9"))
	if m.state.Buffer != "9123" {
		t.Errorf("buffer %q, want \"9123\"", m.state.Buffer)
	}
}

func TestModelHistoryView(t *testing.T) {
	m := send(initialModel(DefaultConfig()), portrait(),
		runes("1"), runes("+"), runes("1"), tea.KeyMsg{Type: tea.KeyEnter},
		runes("H"),
	)
	if !m.showHistory {
		t.Fatal("H should open the history")
	}
	if view := m.View(); !strings.Contains(view, "1+1 = 2") {
		t.Errorf("history view missing entry:\n%s", view)
	}

	// Keys do not reach the calculator while history is open
	m = send(m, runes("5"))
	if m.state.Buffer != "1+1" {
		t.Errorf("buffer %q changed behind the history view", m.state.Buffer)
	}
	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.showHistory {
		t.Error("esc should close the history")
	}
}

func TestModelView(t *testing.T) {
	if v := initialModel(DefaultConfig()).View(); v != "Loading..." {
		t.Errorf("view before size = %q", v)
	}

	m := send(initialModel(DefaultConfig()), landscape(), runes("2"), runes("+"), runes("+"), runes("="))
	view := m.View()
	for _, want := range []string{"Scientific Mode", "sin", "x!", "Error"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestModelCopyNeedsResult(t *testing.T) {
	m := send(initialModel(DefaultConfig()), portrait())
	next, cmd := m.Update(runes("y"))
	m = next.(Model)
	if cmd != nil {
		t.Error("copy with no result should not run a command")
	}
	if m.statusMsg != "Nothing to copy" {
		t.Errorf("statusMsg %q", m.statusMsg)
	}

	m = send(m, clipboardMsg{text: "42"})
	if m.statusMsg != "Copied 42" {
		t.Errorf("statusMsg %q, want \"Copied 42\"", m.statusMsg)
	}
}
