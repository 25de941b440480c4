package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/glyphgrid/internal/app"
	"github.com/vovakirdan/glyphgrid/internal/compose"
	"github.com/vovakirdan/glyphgrid/internal/editor"
	"github.com/vovakirdan/glyphgrid/internal/glyph"
	"github.com/vovakirdan/glyphgrid/internal/grid"
	"github.com/vovakirdan/glyphgrid/internal/raster"
)

// canvasTop is the terminal line of the first canvas row.
const canvasTop = 2

type phase int

const (
	phasePick phase = iota
	phaseEdit
	phaseExports
)

// Options configures a Model.
type Options struct {
	Env       *app.Env
	Namespace string
	// Renderer styles output for the client terminal; nil uses stdout.
	Renderer *lipgloss.Renderer
	Width    int
	Height   int
	// AllowFiles enables writing PNG files to the local disk.
	AllowFiles bool
	Now        func() time.Time
}

// Model is the Bubble Tea model of one editing session.
type Model struct {
	ed         *editor.Editor
	env        *app.Env
	namespace  string
	theme      Theme
	keys       EditorKeyMap
	help       help.Model
	phase      phase
	picker     PickerModel
	exports    ExportsModel
	cursor     int
	width      int
	height     int
	cellSize   int
	status     string
	statusErr  bool
	statusSeq  int
	allowFiles bool
	now        func() time.Time
	quitting   bool
}

// NewModel creates the session model around ed. Sessions without a usable
// colour selection start in the colour picker.
func NewModel(ed *editor.Editor, opts Options) Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Width == 0 || opts.Height == 0 {
		opts.Width, opts.Height = 80, 24
	}
	theme := NewTheme(opts.Renderer)

	m := Model{
		ed:         ed,
		env:        opts.Env,
		namespace:  opts.Namespace,
		theme:      theme,
		keys:       DefaultEditorKeyMap(),
		help:       help.New(),
		width:      opts.Width,
		height:     opts.Height,
		cellSize:   cellSizeFor(opts.Width, opts.Height),
		cursor:     grid.Index(grid.Dim/2, grid.Dim/2),
		allowFiles: opts.AllowFiles,
		now:        opts.Now,
	}
	m.help.Width = opts.Width

	if ed.Selection().Ready() {
		m.phase = phaseEdit
		if ed.PendingGeneration() {
			m.generate()
		}
	} else {
		m.phase = phasePick
		m.picker = NewPickerModel(opts.Env.Palette, theme, ed.Selection())
	}
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.cellSize = cellSizeFor(msg.Width, msg.Height)
		m.help.Width = msg.Width
	case clearStatusMsg:
		if int(msg) == m.statusSeq {
			m.status = ""
		}
		return m, nil
	}

	switch m.phase {
	case phasePick:
		return m.updatePicker(msg)
	case phaseExports:
		return m.updateExports(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if m.picker.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.picker.Confirmed() {
		m.ed.SetSelection(m.picker.Selection())
		m.phase = phaseEdit
		return m, m.generate()
	}
	return m, cmd
}

func (m Model) updateExports(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.exports, cmd = m.exports.Update(msg)

	if m.exports.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.exports.IsGoingBack() {
		m.phase = phaseEdit
		return m, nil
	}
	return m, cmd
}

// handleKey processes keyboard input on the editing screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		m.move(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.move(1, 0)
	case key.Matches(msg, m.keys.Left):
		m.move(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.move(0, 1)

	case key.Matches(msg, m.keys.Glyph):
		id := int(msg.String()[0] - '0')
		if id == 0 {
			id = 10
		}
		if !m.ed.SelectGlyph(id) {
			return m, m.fail(fmt.Errorf("glyph %d is not available", id))
		}
	case key.Matches(msg, m.keys.Erase):
		m.ed.SelectGlyph(glyph.EraseID)
	case key.Matches(msg, m.keys.Disarm):
		m.ed.Disarm()
	case key.Matches(msg, m.keys.Click):
		m.ed.Click(m.cursor, editor.Modifiers{}, m.now())
	case key.Matches(msg, m.keys.Background):
		m.ed.Click(m.cursor, editor.Modifiers{Shift: true}, m.now())

	case key.Matches(msg, m.keys.Generate):
		return m, m.generate()
	case key.Matches(msg, m.keys.Simpler):
		return m, m.setComplexity(m.ed.Complexity() - 1)
	case key.Matches(msg, m.keys.Busier):
		return m, m.setComplexity(m.ed.Complexity() + 1)
	case key.Matches(msg, m.keys.Shuffle):
		if !m.ed.ShuffleColors() {
			return m, m.notify("nothing to shuffle")
		}
	case key.Matches(msg, m.keys.Variation):
		if !m.ed.GenerateVariation() {
			return m, m.notify("no letters to vary")
		}
	case key.Matches(msg, m.keys.Recolor):
		if !m.ed.GenerateColorVariation() {
			return m, m.notify("nothing to recolour")
		}
	case key.Matches(msg, m.keys.Reset):
		m.ed.Reset()
		return m, m.notify("grid cleared")
	case key.Matches(msg, m.keys.Restart):
		if err := m.ed.Restart(); err != nil {
			return m, m.fail(err)
		}
		m.phase = phasePick
		m.picker = NewPickerModel(m.env.Palette, m.theme, m.ed.Selection())
		m.picker.help.Width = m.width

	case key.Matches(msg, m.keys.Export):
		return m, m.export()
	case key.Matches(msg, m.keys.Exports):
		if m.env.Store == nil {
			return m, m.notify("no database: exports are not recorded")
		}
		m.exports = NewExportsModel(m.env.Store, m.namespace, m.theme, m.width, m.height, m.now())
		m.phase = phaseExports
	case key.Matches(msg, m.keys.SavePNG):
		return m, m.savePNG()
	}
	return m, nil
}

// handleMouse maps a click on the canvas to its cell. The right button and
// shift-click set the background.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	if msg.Button != tea.MouseButtonLeft && msg.Button != tea.MouseButtonRight {
		return m, nil
	}
	i, ok := m.cellAt(msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	m.cursor = i
	shift := msg.Shift || msg.Button == tea.MouseButtonRight
	m.ed.Click(i, editor.Modifiers{Shift: shift}, m.now())
	return m, nil
}

// cellAt converts a terminal position to a grid index.
func (m Model) cellAt(x, y int) (int, bool) {
	if x < 0 || y < canvasTop {
		return 0, false
	}
	px, py := x, (y-canvasTop)*2
	col, row := px/m.cellSize, py/m.cellSize
	if col >= grid.Dim || row >= grid.Dim {
		return 0, false
	}
	return grid.Index(row, col), true
}

func (m *Model) move(dRow, dCol int) {
	row, col := grid.RowCol(m.cursor)
	row = min(max(row+dRow, 0), grid.Dim-1)
	col = min(max(col+dCol, 0), grid.Dim-1)
	m.cursor = grid.Index(row, col)
}

func (m *Model) generate() tea.Cmd {
	if err := m.ed.Generate(); err != nil {
		return m.fail(err)
	}
	return nil
}

func (m *Model) setComplexity(c int) tea.Cmd {
	if c < compose.MinComplexity || c > compose.MaxComplexity {
		return m.notify(fmt.Sprintf("complexity stays within %d..%d", compose.MinComplexity, compose.MaxComplexity))
	}
	if err := m.ed.SetComplexity(c); err != nil {
		return m.fail(err)
	}
	return nil
}

func (m *Model) export() tea.Cmd {
	name := "glyph-" + m.now().Format("20060102-150405")
	rec, err := m.env.Export(m.ed, m.namespace, name)
	if errors.Is(err, app.ErrNoStore) {
		return m.notify(fmt.Sprintf("payload ready (%d colours), not recorded: no database", rec.Payload.K()))
	}
	if err != nil {
		return m.fail(err)
	}
	return m.notify(fmt.Sprintf("exported %s: %d colours, %s", rec.ID[:8], rec.Payload.K(), humanize.Bytes(uint64(rec.Size))))
}

// savePNG writes the mosaic to ~/.glyphgrid/renders.
func (m *Model) savePNG() tea.Cmd {
	if !m.allowFiles {
		return m.notify("saving files is disabled in this session")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return m.fail(err)
	}
	dir := filepath.Join(home, ".glyphgrid", "renders")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return m.fail(err)
	}
	path := filepath.Join(dir, fmt.Sprintf("glyph_%s.png", m.now().Format("20060102_150405")))

	f, err := os.Create(path)
	if err != nil {
		return m.fail(err)
	}
	defer f.Close()

	g := m.ed.Grid()
	render := m.env.Config.Render
	img := raster.Render(&g, m.ed.Pool(), m.env.Palette, render.CellSize)
	if err := raster.WritePNG(f, img, render.Scale); err != nil {
		return m.fail(err)
	}
	return m.notify("saved " + path)
}

func (m *Model) notify(s string) tea.Cmd {
	m.statusSeq++
	m.status = s
	m.statusErr = false
	return clearStatusCmd(m.statusSeq)
}

func (m *Model) fail(err error) tea.Cmd {
	cmd := m.notify(err.Error())
	m.statusErr = true
	return cmd
}

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	switch m.phase {
	case phasePick:
		return m.picker.View()
	case phaseExports:
		return m.exports.View()
	}

	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n\n")
	b.WriteString(m.canvas())
	b.WriteString("\n\n")

	switch {
	case m.status != "" && m.statusErr:
		b.WriteString(m.theme.Error.Render(m.status))
	case m.status != "":
		b.WriteString(m.theme.Status.Render(m.status))
	case !m.ed.Generated():
		b.WriteString(m.theme.Muted.Render("press g to generate"))
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) header() string {
	t := m.theme
	var b strings.Builder
	b.WriteString(t.Title.Render("glyphgrid"))
	b.WriteString(t.Label.Render("  complexity "))
	b.WriteString(t.Value.Render(fmt.Sprintf("%d", m.ed.Complexity())))
	b.WriteString(t.Label.Render("  colours "))
	for _, ref := range m.ed.Selection().Refs() {
		if rgb, ok := m.env.Palette.Lookup(ref); ok {
			b.WriteString(t.Swatch(rgb.Hex(), 2))
		}
	}
	b.WriteString(t.Label.Render("  armed "))
	armed := "-"
	if id, ok := m.ed.Armed(); ok {
		armed = fmt.Sprintf("%d", id)
		if id == glyph.EraseID {
			armed = "eraser"
		}
	}
	b.WriteString(t.Value.Render(armed))
	row, col := grid.RowCol(m.cursor)
	b.WriteString(t.Label.Render(fmt.Sprintf("  cell %d,%d", row, col)))
	return b.String()
}

func (m Model) canvas() string {
	g := m.ed.Grid()
	img := raster.Render(&g, m.ed.Pool(), m.env.Palette, m.cellSize)
	outline(img, cellRect(m.cursor, m.cellSize), cursorColor(&g, m.env.Palette, m.cursor))
	return RenderImage(m.theme.Renderer, img)
}

// Cursor returns the grid index under the cursor.
func (m Model) Cursor() int { return m.cursor }

// Editor returns the session editor.
func (m Model) Editor() *editor.Editor { return m.ed }

// Run starts the Bubble Tea program with the given model.
func Run(m Model) error {
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
