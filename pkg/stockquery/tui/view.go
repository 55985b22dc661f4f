package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Andreeduardopp/stockquery/pkg/stockquery/preset"
)

var (
	labelStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250"))
	inputStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	focusStyle     = inputStyle.BorderForeground(lipgloss.Color("12"))
	disabledStyle  = inputStyle.Foreground(lipgloss.Color("240"))
	buttonStyle    = lipgloss.NewStyle().Padding(0, 1).Background(lipgloss.Color("236")).Foreground(lipgloss.Color("250"))
	activeStyle    = buttonStyle.Background(lipgloss.Color("111")).Foreground(lipgloss.Color("15")).Bold(true)
	searchStyle    = lipgloss.NewStyle().Padding(0, 2).Background(lipgloss.Color("27")).Foreground(lipgloss.Color("15")).Bold(true)
	searchOffStyle = searchStyle.Background(lipgloss.Color("238")).Foreground(lipgloss.Color("244"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	hintStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
	cursorMark     = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Render("›")
)

const placeholder = "Enter Stock Ticker (e.g., AAPL)"

func (m Model) View() string {
	if m.done {
		return ""
	}
	s := m.form.State()
	width := 40
	if m.width > 0 && m.width-4 < width {
		width = m.width - 4
	}

	var b strings.Builder

	b.WriteString(m.label(fieldTicker, "Stock Ticker:"))
	ticker := s.Ticker
	if ticker == "" {
		ticker = hintStyle.Render(placeholder)
	}
	b.WriteString(m.box(fieldTicker, ticker, true, width) + "\n")

	b.WriteString(m.label(fieldPreset, "Select Date Range:"))
	buttons := make([]string, 0, len(m.presets))
	for _, p := range m.presets {
		st := buttonStyle
		if p == s.Preset {
			st = activeStyle
		}
		buttons = append(buttons, st.Render(preset.Labels[p]))
	}
	b.WriteString("  " + strings.Join(buttons, " ") + "\n\n")

	b.WriteString(m.label(fieldStart, "Start Date:"))
	b.WriteString(m.box(fieldStart, m.startText, s.DatesEditable(), width) + "\n")
	b.WriteString(m.label(fieldEnd, "End Date:"))
	b.WriteString(m.box(fieldEnd, m.endText, s.DatesEditable(), width) + "\n")

	if s.Error != "" {
		b.WriteString(errorStyle.Render(s.Error) + "\n")
	}
	if m.hint != "" {
		b.WriteString(hintStyle.Render(m.hint) + "\n")
	}

	search := searchOffStyle
	if s.CanSubmit() {
		search = searchStyle
	}
	prefix := "  "
	if m.focus == fieldSearch {
		prefix = cursorMark + " "
	}
	b.WriteString("\n" + prefix + search.Render("Search") + "\n")
	b.WriteString(hintStyle.Render("tab: next field · ←/→: range · enter: confirm · esc: quit") + "\n")
	return b.String()
}

func (m Model) label(f field, text string) string {
	prefix := "  "
	if m.focus == f {
		prefix = cursorMark + " "
	}
	return prefix + labelStyle.Render(text) + "\n"
}

func (m Model) box(f field, value string, enabled bool, width int) string {
	st := inputStyle
	switch {
	case !enabled:
		st = disabledStyle
	case m.focus == f:
		st = focusStyle
	}
	return "  " + st.Width(width).Render(value)
}
