package main

import "github.com/charmbracelet/lipgloss"

// Layout constants
const (
	keyW     = 7 // width of each keypad cell in characters
	historyW = 44
)

// styles holds the Lip Gloss styles used across the TUI, built from the
// configured theme.
type styles struct {
	title     lipgloss.Style
	display   lipgloss.Style
	buffer    lipgloss.Style
	cursor    lipgloss.Style
	result    lipgloss.Style
	errorText lipgloss.Style
	dim       lipgloss.Style
	keypad    lipgloss.Style
	selected  lipgloss.Style
	classes   map[tokenClass]lipgloss.Style
	history   lipgloss.Style
	histItem  lipgloss.Style
}

func newStyles(t Theme) styles {
	accent := lipgloss.Color(t.Accent)
	dim := lipgloss.Color(t.Dim)

	key := lipgloss.NewStyle().Width(keyW).Align(lipgloss.Center)

	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		display: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Scientific)).
			Padding(0, 1),

		buffer: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Digit)),

		cursor: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),

		result: lipgloss.NewStyle().
			Foreground(dim),

		errorText: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f7768e")).
			Bold(true),

		dim: lipgloss.NewStyle().
			Foreground(dim),

		keypad: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Equals)).
			Padding(0, 1),

		selected: key.
			Bold(true).
			Reverse(true),

		classes: map[tokenClass]lipgloss.Style{
			classDigit:      key.Foreground(lipgloss.Color(t.Digit)),
			classOperator:   key.Foreground(lipgloss.Color(t.Operator)),
			classScientific: key.Foreground(lipgloss.Color(t.Scientific)),
			classEquals:     key.Foreground(lipgloss.Color(t.Equals)).Bold(true),
		},

		history: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1).
			Width(historyW),

		histItem: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Digit)),
	}
}

// keyStyle returns the style of a keypad cell.
func (s styles) keyStyle(t Token, selected, pulsing bool) lipgloss.Style {
	st := s.classes[t.class()]
	if selected {
		st = s.selected.Foreground(st.GetForeground())
	}
	if pulsing {
		st = st.Faint(true)
	}
	return st
}
