package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/glyphgrid/internal/palette"
)

// pickerTop is the terminal line of the first palette row.
const pickerTop = 2

// PickerModel lets the user choose the colours of a new mosaic.
type PickerModel struct {
	pal       palette.Palette
	theme     Theme
	keys      PickerKeyMap
	help      help.Model
	cursor    int
	selection palette.Selection
	hint      string
	confirmed bool
	quitting  bool
}

// NewPickerModel creates a picker starting from initial.
func NewPickerModel(pal palette.Palette, theme Theme, initial palette.Selection) PickerModel {
	return PickerModel{
		pal:       pal,
		theme:     theme,
		keys:      DefaultPickerKeyMap(),
		help:      help.New(),
		selection: palette.NewSelection(initial.Indices()...),
	}
}

// Update handles messages for the picker.
func (m PickerModel) Update(msg tea.Msg) (PickerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.hint = ""
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.cursor = (m.cursor + len(m.pal) - 1) % len(m.pal)
		case key.Matches(msg, m.keys.Down):
			m.cursor = (m.cursor + 1) % len(m.pal)
		case key.Matches(msg, m.keys.Toggle):
			m.selection.Toggle(m.cursor)
		case key.Matches(msg, m.keys.Direct):
			i := int(msg.String()[0] - '1')
			m.cursor = i
			m.selection.Toggle(i)
		case key.Matches(msg, m.keys.Confirm):
			if !m.selection.Ready() {
				m.hint = fmt.Sprintf("select at least %d colours", palette.MinSelection)
				return m, nil
			}
			m.confirmed = true
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if i := msg.Y - pickerTop; i >= 0 && i < len(m.pal) {
			m.cursor = i
			m.selection.Toggle(i)
		}

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}
	return m, nil
}

// View renders the picker.
func (m PickerModel) View() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("glyphgrid") + m.theme.Label.Render("  pick the colours of a new mosaic"))
	b.WriteString("\n\n")

	order := make(map[int]int, m.selection.Len())
	for k, i := range m.selection.Indices() {
		order[i] = k + 1
	}

	for i, entry := range m.pal {
		cursor := "  "
		name := m.theme.Value.Render(entry.Name)
		if i == m.cursor {
			cursor = "> "
			name = m.theme.Active.Render(entry.Name)
		}
		mark := "[ ]"
		if n, ok := order[i]; ok {
			mark = m.theme.Active.Render(fmt.Sprintf("[%d]", n))
		}
		fmt.Fprintf(&b, "%s%s %s %d %s\n", cursor, mark, m.theme.Swatch(entry.RGB.Hex(), 4), i+1, name)
	}

	b.WriteString("\n")
	if m.hint != "" {
		b.WriteString(m.theme.Error.Render(m.hint))
	} else {
		b.WriteString(m.theme.Muted.Render(fmt.Sprintf("%d selected", m.selection.Len())))
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))
	return b.String()
}

// Selection returns the chosen colours.
func (m PickerModel) Selection() palette.Selection { return m.selection }

// Confirmed reports whether the user accepted the selection.
func (m PickerModel) Confirmed() bool { return m.confirmed }

// IsQuitting returns true if user wants to quit entirely.
func (m PickerModel) IsQuitting() bool { return m.quitting }
