package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/parabola/internal/core"
)

// LabKeyMap defines the key bindings for the lab.
type LabKeyMap struct {
	PrevField  key.Binding
	NextField  key.Binding
	Increase   key.Binding
	Decrease   key.Binding
	Fire       key.Binding
	Save       key.Binding
	Reset      key.Binding
	Query      key.Binding
	Screenshot key.Binding
	Back       key.Binding
	Quit       key.Binding
	Help       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k LabKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Increase, k.Fire, k.Query, k.Save, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k LabKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevField, k.NextField, k.Increase, k.Decrease},
		{k.Fire, k.Query, k.Reset},
		{k.Save, k.Screenshot, k.Back, k.Quit},
	}
}

// DefaultLabKeyMap returns default key bindings.
func DefaultLabKeyMap() LabKeyMap {
	return LabKeyMap{
		PrevField: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "prev field"),
		),
		NextField: key.NewBinding(
			key.WithKeys("down", "j", "tab"),
			key.WithHelp("down/j", "next field"),
		),
		Increase: key.NewBinding(
			key.WithKeys("right", "l", "+", "="),
			key.WithHelp("right/+", "increase"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("left", "h", "-"),
			key.WithHelp("left/-", "decrease"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" ", "f"),
			key.WithHelp("space", "fire"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save shot"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Query: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "point query"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to lab actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys LabKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultLabKeyMap()}
}

// Keys returns the bindings used by the mapper.
func (km *KeyMapper) Keys() LabKeyMap {
	return km.keys
}

// MapKey translates a key message to a lab action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.PrevField):
		return core.ActionPrevField, false
	case key.Matches(msg, k.NextField):
		return core.ActionNextField, false
	case key.Matches(msg, k.Increase):
		return core.ActionIncrease, false
	case key.Matches(msg, k.Decrease):
		return core.ActionDecrease, false
	case key.Matches(msg, k.Fire):
		return core.ActionFire, false
	case key.Matches(msg, k.Save):
		return core.ActionSave, false
	case key.Matches(msg, k.Reset):
		return core.ActionReset, false
	case key.Matches(msg, k.Query):
		return core.ActionQuery, false
	case key.Matches(msg, k.Screenshot):
		return core.ActionScreenshot, false
	case key.Matches(msg, k.Back):
		return core.ActionBack, false
	}

	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionHistory
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionHistory
	}

	return MenuActionNone
}
