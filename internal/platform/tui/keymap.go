package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// EditorKeyMap defines the key bindings of the editing screen.
type EditorKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Glyph      key.Binding
	Erase      key.Binding
	Disarm     key.Binding
	Click      key.Binding
	Background key.Binding
	Shuffle    key.Binding
	Generate   key.Binding
	Variation  key.Binding
	Recolor    key.Binding
	Simpler    key.Binding
	Busier     key.Binding
	Reset      key.Binding
	Restart    key.Binding
	Export     key.Binding
	Exports    key.Binding
	SavePNG    key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k EditorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Glyph, k.Click, k.Generate, k.Shuffle, k.Variation, k.Export, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k EditorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Glyph, k.Erase, k.Disarm, k.Click, k.Background},
		{k.Generate, k.Simpler, k.Busier, k.Shuffle, k.Variation, k.Recolor},
		{k.Reset, k.Restart, k.Export, k.Exports, k.SavePNG},
		{k.Help, k.Quit},
	}
}

// DefaultEditorKeyMap returns default key bindings.
func DefaultEditorKeyMap() EditorKeyMap {
	return EditorKeyMap{
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "down")),
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("left/h", "left")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("right/l", "right")),
		Glyph: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9", "0"),
			key.WithHelp("0-9", "arm glyph"),
		),
		Erase:      key.NewBinding(key.WithKeys("backspace", "delete"), key.WithHelp("del", "arm eraser")),
		Disarm:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "disarm")),
		Click:      key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "paint")),
		Background: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "cycle background")),
		Shuffle:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "shuffle colours")),
		Generate:   key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "generate")),
		Variation:  key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "letter variation")),
		Recolor:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "colour variation")),
		Simpler:    key.NewBinding(key.WithKeys("["), key.WithHelp("[", "less complex")),
		Busier:     key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "more complex")),
		Reset:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear grid")),
		Restart:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new (pick colours)")),
		Export:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export")),
		Exports:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "exports")),
		SavePNG:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "save png")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// PickerKeyMap defines the key bindings of the colour picker.
type PickerKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Direct  key.Binding
	Confirm key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Direct, k.Confirm, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultPickerKeyMap returns default key bindings.
func DefaultPickerKeyMap() PickerKeyMap {
	return PickerKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "down")),
		Toggle: key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
		Direct: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "toggle colour"),
		),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "create")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

// ExportsKeyMap defines the key bindings of the exports table.
type ExportsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ExportsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ExportsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultExportsKeyMap returns default key bindings.
func DefaultExportsKeyMap() ExportsKeyMap {
	return ExportsKeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll down")),
		Back: key.NewBinding(key.WithKeys("esc", "tab", "b"), key.WithHelp("esc", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
