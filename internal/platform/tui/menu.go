package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/parabola/internal/config"
	"github.com/vovakirdan/parabola/internal/core"
)

// MenuItem is a selectable preset in the menu.
type MenuItem struct {
	Preset      string
	Title       string
	Description string
	G           float64
}

// MenuModel is the Bubble Tea model for the preset picker.
type MenuModel struct {
	items       []MenuItem
	cursor      int
	width       int
	height      int
	config      core.RuntimeConfig
	keyMapper   *KeyMapper
	quitting    bool
	selected    *MenuItem // Set when user picks a preset
	openHistory bool      // True if user pressed Tab for the shot history
}

// NewMenuModel creates a menu listing the configured presets. The first entry
// launches with the configured defaults.
func NewMenuModel(cfg config.Config, rc core.RuntimeConfig) MenuModel {
	items := make([]MenuItem, 0, len(cfg.Presets)+1)
	items = append(items, MenuItem{
		Title:       "Custom",
		Description: "configured launch",
		G:           cfg.Launch.G,
	})
	for _, p := range cfg.Presets {
		items = append(items, MenuItem{
			Preset:      p.Name,
			Title:       titleCase(p.Name),
			Description: p.Description,
			G:           p.G,
		})
	}

	return MenuModel{
		items:     items,
		width:     rc.ScreenW,
		height:    rc.ScreenH,
		config:    rc,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config = m.config.WithSize(msg.Width, msg.Height)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case MenuActionHistory:
		m.openHistory = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("  P A R A B O L A  ", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Pick a gravity preset", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-8s g=%5.2f  %s", cursor, item.Title, item.G, item.Description)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Launch  |  Tab: Shots  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsHistory returns true if user asked for the shot history.
func (m MenuModel) WantsHistory() bool {
	return m.openHistory
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// titleCase upper-cases the first letter of a preset name.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Preset       string // Empty for the configured launch
	Config       core.RuntimeConfig
	WantsHistory bool
	Quit         bool
}

// Result converts the final menu state to a MenuResult.
func (m MenuModel) Result() MenuResult {
	result := MenuResult{Config: m.Config()}

	switch {
	case m.WantsHistory():
		result.WantsHistory = true
	case m.IsQuitting() || m.Selected() == nil:
		result.Quit = true
	default:
		result.Preset = m.Selected().Preset
	}
	return result
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg config.Config, rc core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(cfg, rc),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: rc}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: rc, Quit: true}, nil
	}
	return m.Result(), nil
}
