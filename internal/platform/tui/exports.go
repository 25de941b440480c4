package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/glyphgrid/internal/storage"
)

const maxExports = 100

// ExportsModel lists recorded deploy payloads.
type ExportsModel struct {
	exports  []storage.Export
	err      error
	table    table.Model
	help     help.Model
	keys     ExportsKeyMap
	theme    Theme
	width    int
	height   int
	now      time.Time
	back     bool
	quitting bool
}

// NewExportsModel loads the exports of namespace.
func NewExportsModel(store *storage.Store, namespace string, theme Theme, width, height int, now time.Time) ExportsModel {
	m := ExportsModel{
		keys:   DefaultExportsKeyMap(),
		help:   help.New(),
		theme:  theme,
		width:  width,
		height: height,
		now:    now,
	}
	m.exports, m.err = store.RecentExports(namespace, maxExports)
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a new table sized to the terminal.
func (m *ExportsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Name", Width: 22},
		{Title: "ID", Width: 10},
		{Title: "Colours", Width: 8},
		{Title: "Size", Width: 8},
		{Title: "Exported", Width: 16},
	}

	height := m.height - 7
	if height < 3 {
		height = 3
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)
	t.SetStyles(m.theme.TableStyles())
	return t
}

// updateTableRows fills the table from the loaded exports.
func (m *ExportsModel) updateTableRows() {
	rows := make([]table.Row, len(m.exports))
	for i, e := range m.exports {
		id := e.ID
		if len(id) > 8 {
			id = id[:8]
		}
		rows[i] = table.Row{
			e.Name,
			id,
			fmt.Sprintf("%d", e.Payload.K()),
			humanize.Bytes(uint64(e.Size)),
			humanize.RelTime(e.CreatedAt, m.now, "ago", "from now"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Update handles messages for the exports table.
func (m ExportsModel) Update(msg tea.Msg) (ExportsModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the exports table.
func (m ExportsModel) View() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render(fmt.Sprintf("EXPORTS (%d)", len(m.exports))))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(m.theme.Error.Render(m.err.Error()))
	case len(m.exports) == 0:
		b.WriteString(m.theme.Empty.Render("Nothing exported yet.\nPress e in the editor to export a mosaic."))
	default:
		b.WriteString(m.theme.Border.Render(m.table.View()))
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))
	return b.String()
}

// IsGoingBack returns true if user wants to go back to the editor.
func (m ExportsModel) IsGoingBack() bool { return m.back }

// IsQuitting returns true if user wants to quit entirely.
func (m ExportsModel) IsQuitting() bool { return m.quitting }
