// Package tui renders the stock query form in the terminal with bubbletea.
// It only translates key presses into form events; all state transitions
// happen in the form reducer.
package tui

import (
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Andreeduardopp/stockquery/pkg/stockquery/form"
	"github.com/Andreeduardopp/stockquery/pkg/stockquery/preset"
	"github.com/Andreeduardopp/stockquery/pkg/stockquery/types"
)

type field int

const (
	fieldTicker field = iota
	fieldPreset
	fieldStart
	fieldEnd
	fieldSearch
	fieldCount
)

// sink receives the query emitted by the form. It is shared by all copies
// of the Model that bubbletea makes.
type sink struct {
	query *types.Query
}

// Model is the bubbletea model for the form.
type Model struct {
	form    *form.Form
	out     *sink
	presets []preset.Preset

	focus     field
	cursor    int
	startText string
	endText   string
	hint      string
	width     int
	done      bool
}

// New mounts a fresh form. Options are passed through to form.New.
func New(opts ...form.Option) Model {
	out := &sink{}
	f := form.New(func(ticker, start, end string) {
		out.query = &types.Query{Ticker: ticker, StartDate: start, EndDate: end}
	}, opts...)
	m := Model{form: f, out: out, presets: preset.All()}
	m.syncDates()
	return m
}

// WithPreset selects p before the first key press. OneMonth is already the
// mount state and leaves the form untouched.
func (m Model) WithPreset(p preset.Preset) Model {
	if p != "" && p != m.form.State().Preset {
		m.form.SelectPreset(p)
		m.syncDates()
	}
	return m
}

// WithTicker pre-fills the ticker input.
func (m Model) WithTicker(text string) Model {
	if text != "" {
		m.form.SetTicker(text)
	}
	return m
}

// Result returns the submitted query once the user pressed search.
func (m Model) Result() (types.Query, bool) {
	if m.out.query == nil {
		return types.Query{}, false
	}
	return *m.out.query, true
}

// State exposes the underlying form state.
func (m Model) State() form.State { return m.form.State() }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.done = true
		return m, tea.Quit
	case tea.KeyTab, tea.KeyDown:
		m.commitFocused()
		m.move(1)
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.commitFocused()
		m.move(-1)
		return m, nil
	}

	switch m.focus {
	case fieldTicker:
		text, changed := edit(m.form.State().Ticker, msg, nil)
		if changed {
			m.form.SetTicker(text)
		} else if msg.Type == tea.KeyEnter {
			m.move(1)
		}
	case fieldPreset:
		switch msg.Type {
		case tea.KeyLeft:
			m.cursor = (m.cursor + len(m.presets) - 1) % len(m.presets)
			m.selectPreset()
		case tea.KeyRight:
			m.cursor = (m.cursor + 1) % len(m.presets)
			m.selectPreset()
		case tea.KeyEnter, tea.KeySpace:
			m.selectPreset()
		}
	case fieldStart:
		if msg.Type == tea.KeyEnter {
			m.commitFocused()
		} else {
			m.startText, _ = edit(m.startText, msg, isDateRune)
		}
	case fieldEnd:
		if msg.Type == tea.KeyEnter {
			m.commitFocused()
		} else {
			m.endText, _ = edit(m.endText, msg, isDateRune)
		}
	case fieldSearch:
		if msg.Type == tea.KeyEnter || msg.Type == tea.KeySpace {
			if m.form.Submit() {
				m.done = true
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// move shifts focus by delta, skipping the date fields while they are
// read-only.
func (m *Model) move(delta int) {
	for i := 0; i < int(fieldCount); i++ {
		m.focus = field((int(m.focus) + delta + int(fieldCount)) % int(fieldCount))
		if (m.focus == fieldStart || m.focus == fieldEnd) && !m.form.State().DatesEditable() {
			continue
		}
		return
	}
}

func (m *Model) selectPreset() {
	m.form.SelectPreset(m.presets[m.cursor])
	m.hint = ""
	m.syncDates()
}

// commitFocused pushes the edit buffer of a focused date field into the form.
func (m *Model) commitFocused() {
	switch m.focus {
	case fieldStart:
		if d, ok := m.parse(m.startText); ok {
			m.form.PickStartDate(d)
			m.syncDates()
		}
	case fieldEnd:
		if d, ok := m.parse(m.endText); ok {
			m.form.PickEndDate(d)
			m.syncDates()
		}
	}
}

func (m *Model) parse(text string) (time.Time, bool) {
	d, err := types.ParseDate(text, m.form.Today().Location())
	if errors.Is(err, types.ErrDateTooEarly) {
		m.hint = types.ErrDateTooEarly.Error()
		return d, false
	}
	if err != nil {
		m.hint = "dates use the yyyy-MM-dd format"
		return d, false
	}
	if d.After(m.form.Today()) {
		m.hint = "dates cannot be after " + types.FormatDate(m.form.Today())
		return d, false
	}
	m.hint = ""
	return d, true
}

func (m *Model) syncDates() {
	s := m.form.State()
	m.startText = types.FormatDate(s.Start)
	m.endText = types.FormatDate(s.End)
	for i, p := range m.presets {
		if p == s.Preset {
			m.cursor = i
		}
	}
}

// edit applies a text-editing key to s. accept filters typed runes; nil
// accepts everything.
func edit(s string, msg tea.KeyMsg, accept func(rune) bool) (string, bool) {
	switch msg.Type {
	case tea.KeyBackspace:
		if s == "" {
			return s, false
		}
		r := []rune(s)
		return string(r[:len(r)-1]), true
	case tea.KeySpace:
		if accept != nil && !accept(' ') {
			return s, false
		}
		return s + " ", true
	case tea.KeyRunes:
		var b strings.Builder
		b.WriteString(s)
		for _, r := range msg.Runes {
			if accept == nil || accept(r) {
				b.WriteRune(r)
			}
		}
		return b.String(), b.Len() != len(s)
	}
	return s, false
}

func isDateRune(r rune) bool { return (r >= '0' && r <= '9') || r == '-' }
