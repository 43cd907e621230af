package main

import (
	"log"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// pulseDuration is how long a pressed key stays dimmed.
const pulseDuration = 200 * time.Millisecond

// keyMap holds the non-token key bindings shown in the help bar.
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Press     key.Binding
	Evaluate  key.Binding
	CursorL   key.Binding
	CursorR   key.Binding
	Home      key.Binding
	End       key.Binding
	Mode      key.Binding
	History   key.Binding
	Copy      key.Binding
	Help      key.Binding
	Quit      key.Binding
	CloseView key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Press:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "press key")),
		Evaluate:  key.NewBinding(key.WithKeys("enter", "="), key.WithHelp("⏎", "evaluate")),
		CursorL:   key.NewBinding(key.WithKeys("<"), key.WithHelp("<", "cursor left")),
		CursorR:   key.NewBinding(key.WithKeys(">"), key.WithHelp(">", "cursor right")),
		Home:      key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "cursor start")),
		End:       key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "cursor end")),
		Mode:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch mode")),
		History:   key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "history")),
		Copy:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy result")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		CloseView: key.NewBinding(key.WithKeys("esc", "H", "q"), key.WithHelp("esc", "close")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Press, k.Evaluate, k.Mode, k.History, k.Copy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Press},
		{k.CursorL, k.CursorR, k.Home, k.End},
		{k.Evaluate, k.Mode, k.History, k.Copy},
		{k.Help, k.Quit},
	}
}

// pulseDoneMsg ends the keypress feedback started with the same seq.
type pulseDoneMsg struct{ seq int }

// clipboardMsg reports the outcome of copying a result.
type clipboardMsg struct {
	text string
	err  error
}

// Model represents the TUI application state. The calculator itself
// lives in state; everything else is presentation.
type Model struct {
	state  State
	keys   keyMap
	help   help.Model
	styles styles

	width     int
	height    int
	landscape bool // orientation signal derived from the window size
	forced    *keypadMode

	row int // selected keypad cell
	col int

	pulse    Token // key currently showing press feedback
	pulseSeq int

	showHistory bool
	statusMsg   string // transient status message (e.g. copy confirmation)
}

func initialModel(cfg Config) Model {
	m := Model{
		keys:   defaultKeyMap(),
		help:   help.New(),
		styles: newStyles(cfg.Theme),
	}
	switch cfg.Layout {
	case layoutStandard:
		m.force(modeStandard)
	case layoutScientific:
		m.force(modeScientific)
	}
	return m
}

// mode returns the keypad currently offered: a forced mode if set,
// otherwise the one matching the window orientation.
func (m Model) mode() keypadMode {
	if m.forced != nil {
		return *m.forced
	}
	if m.landscape {
		return modeScientific
	}
	return modeStandard
}

func (m *Model) force(mode keypadMode) {
	m.forced = &mode
	m.clampSelection()
}

// isLandscape reports whether a terminal of the given size is wider than
// it is tall. Cells are roughly twice as tall as they are wide.
func isLandscape(width, height int) bool {
	return width > 2*height
}

func (m *Model) clampSelection() {
	rows := layoutFor(m.mode())
	m.row = max(0, min(m.row, len(rows)-1))
	m.col = max(0, min(m.col, len(rows[m.row])-1))
}

// press feeds tok to the calculator and starts the press feedback.
func (m *Model) press(tok Token) tea.Cmd {
	before := m.state
	m.state = m.state.Apply(tok)
	if tok == TokenEquals || m.state.Err != before.Err {
		log.Printf("press %q: buffer=%q result=%q err=%v", tok, before.Buffer, m.state.Result, m.state.Err)
	}

	m.pulse = tok
	m.pulseSeq++
	seq := m.pulseSeq
	return tea.Tick(pulseDuration, func(time.Time) tea.Msg {
		return pulseDoneMsg{seq: seq}
	})
}

func copyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{text: text, err: clipboard.WriteAll(text)}
	}
}

// ──────────────────────────── Init / Update ────────────────────────────

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.landscape = isLandscape(msg.Width, msg.Height)
		m.clampSelection()

	case pulseDoneMsg:
		if msg.seq == m.pulseSeq {
			m.pulse = ""
		}

	case clipboardMsg:
		if msg.err != nil {
			m.statusMsg = "Copy failed: " + msg.err.Error()
			log.Printf("clipboard: %v", msg.err)
		} else {
			m.statusMsg = "Copied " + msg.text
		}

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()
	m.statusMsg = ""

	if k == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showHistory {
		if key.Matches(msg, m.keys.CloseView) {
			m.showHistory = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.row > 0 {
			m.row--
			m.clampSelection()
		}
	case key.Matches(msg, m.keys.Down):
		if m.row < len(layoutFor(m.mode()))-1 {
			m.row++
			m.clampSelection()
		}
	case key.Matches(msg, m.keys.Left):
		if m.col > 0 {
			m.col--
		}
	case key.Matches(msg, m.keys.Right):
		if m.col < len(layoutFor(m.mode())[m.row])-1 {
			m.col++
		}
	case key.Matches(msg, m.keys.Press):
		return m, m.press(layoutFor(m.mode())[m.row][m.col])
	case key.Matches(msg, m.keys.Evaluate):
		return m, m.press(TokenEquals)
	case key.Matches(msg, m.keys.CursorL):
		m.state = m.state.MoveCursor(-1)
	case key.Matches(msg, m.keys.CursorR):
		m.state = m.state.MoveCursor(1)
	case key.Matches(msg, m.keys.Home):
		m.state = m.state.SetCursor(0)
	case key.Matches(msg, m.keys.End):
		m.state = m.state.SetCursor(len([]rune(m.state.Buffer)))
	case key.Matches(msg, m.keys.Mode):
		if m.mode() == modeScientific {
			m.force(modeStandard)
		} else {
			m.force(modeScientific)
		}
	case key.Matches(msg, m.keys.History):
		m.showHistory = true
	case key.Matches(msg, m.keys.Copy):
		if m.state.Result == "" || m.state.Result == errorMarker {
			m.statusMsg = "Nothing to copy"
			break
		}
		return m, copyToClipboard(m.state.Result)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	default:
		if tok, ok := shortcuts[k]; ok && reachable(m.mode(), tok) {
			return m, m.press(tok)
		}
	}

	return m, nil
}
