package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.showHistory {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderHistory())
	}

	keypad := m.renderKeypad()
	panelW := lipgloss.Width(keypad)

	frame := lipgloss.JoinVertical(lipgloss.Left,
		m.renderTopBar(panelW),
		m.renderDisplay(panelW),
		keypad,
		m.renderStatus(),
		m.help.View(m.keys),
	)
	return frame
}

// renderTopBar shows the active mode and the history hint.
func (m Model) renderTopBar(width int) string {
	left := m.styles.title.Render(m.mode().String())
	right := m.styles.dim.Render(fmt.Sprintf("H history (%d)", len(m.state.History)))
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// renderBuffer renders the input buffer with the insertion cursor.
func (m Model) renderBuffer() string {
	r := []rune(m.state.Buffer)
	cur := max(0, min(m.state.Cursor, len(r)))
	return m.styles.buffer.Render(string(r[:cur])) +
		m.styles.cursor.Render("│") +
		m.styles.buffer.Render(string(r[cur:]))
}

// renderDisplay renders the buffer and result, right aligned like a
// calculator display.
func (m Model) renderDisplay(width int) string {
	inner := max(width-4, 1)

	result := m.styles.result.Render(m.state.Result)
	if m.state.Err != nil {
		result = m.styles.errorText.Render(m.state.Result)
	}

	lines := []string{
		lipgloss.PlaceHorizontal(inner, lipgloss.Right, m.renderBuffer()),
		lipgloss.PlaceHorizontal(inner, lipgloss.Right, result),
	}
	// Width includes the padding but not the border.
	return m.styles.display.Width(inner + 2).Render(strings.Join(lines, "\n"))
}

// renderKeypad renders the active layout as a grid of cells.
func (m Model) renderKeypad() string {
	var sb strings.Builder
	for r, row := range layoutFor(m.mode()) {
		for c, tok := range row {
			selected := r == m.row && c == m.col
			sb.WriteString(m.styles.keyStyle(tok, selected, tok == m.pulse).Render(string(tok)))
		}
		sb.WriteString("\n")
	}
	return m.styles.keypad.Render(strings.TrimSuffix(sb.String(), "\n"))
}

// renderStatus shows a transient message or the cause of an error.
func (m Model) renderStatus() string {
	switch {
	case m.statusMsg != "":
		return " " + m.styles.title.Render(m.statusMsg)
	case m.state.Err != nil:
		return " " + m.styles.errorText.Render(m.state.Err.Error())
	}
	return ""
}

// renderHistory renders the history popup, most recent first.
func (m Model) renderHistory() string {
	var sb strings.Builder
	sb.WriteString(m.styles.title.Render("History"))
	sb.WriteString("\n\n")
	if len(m.state.History) == 0 {
		sb.WriteString(m.styles.dim.Render("No calculations yet"))
		sb.WriteString("\n")
	}
	for _, h := range m.state.History {
		sb.WriteString(m.styles.histItem.Render(h.String()))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(m.styles.dim.Render("Esc ✕"))
	return m.styles.history.Render(sb.String())
}
