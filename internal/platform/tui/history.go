package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/parabola/internal/core"
	"github.com/vovakirdan/parabola/internal/export"
	"github.com/vovakirdan/parabola/internal/storage"
)

// History layout constants
const (
	minWidthForDetail = 90  // Minimum width to show the shot detail panel
	detailWidth       = 30  // Width of the detail panel
	maxShots          = 100 // Max shots to load per tab
)

// historyTab selects which listing is shown.
type historyTab int

const (
	tabRecent historyTab = iota
	tabLongest
	tabCount
)

func (t historyTab) String() string {
	if t == tabLongest {
		return "Longest"
	}
	return "Recent"
}

// HistoryKeyMap defines the key bindings for the shot history.
type HistoryKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Open    key.Binding
	Delete  key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.Open, k.Delete, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.Open, k.Delete, k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev tab"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open in lab"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for the saved shot listing.
type HistoryModel struct {
	store      ShotStore
	tab        historyTab
	shots      []storage.Shot
	table      table.Model
	help       help.Model
	keys       HistoryKeyMap
	width      int
	height     int
	status     string
	opened     *storage.Shot // Set when user opens a shot in the lab
	quitting   bool
	goingBack  bool // True if user pressed back (not quit)
	showDetail bool // Whether to show the detail panel
}

// NewHistoryModel creates a history model showing the most recent shots.
func NewHistoryModel(store ShotStore, width, height int) HistoryModel {
	h := help.New()
	h.ShowAll = false

	m := HistoryModel{
		store:      store,
		keys:       DefaultHistoryKeyMap(),
		help:       h,
		width:      width,
		height:     height,
		showDetail: width >= minWidthForDetail,
	}
	m.table = m.createTable()
	m.loadShots()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: storage.ShortIDLen},
		{Title: "Label", Width: 10},
		{Title: "v₀", Width: 6},
		{Title: "Angle", Width: 6},
		{Title: "g", Width: 6},
		{Title: "Range", Width: 8},
		{Title: "Saved", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(core.Max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadShots reloads the current tab from the store.
func (m *HistoryModel) loadShots() {
	if m.store == nil {
		m.shots = nil
		m.updateTableRows()
		return
	}

	var (
		shots []storage.Shot
		err   error
	)
	if m.tab == tabLongest {
		shots, err = m.store.LongestShots(maxShots)
	} else {
		shots, err = m.store.RecentShots(maxShots)
	}
	if err != nil {
		m.shots = nil
		m.status = "Load failed: " + err.Error()
	} else {
		m.shots = shots
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current shots.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.shots))
	for i, s := range m.shots {
		rangeStr := export.Unavailable
		if s.Lands {
			rangeStr = fmt.Sprintf("%.2f", s.Range)
		}
		rows[i] = table.Row{
			s.ShortID(),
			s.Label,
			fmt.Sprintf("%.1f", s.Launch.V0),
			fmt.Sprintf("%.1f°", s.Launch.Deg),
			fmt.Sprintf("%.2f", s.Launch.G),
			rangeStr,
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// selectedShot returns the shot under the cursor.
func (m HistoryModel) selectedShot() (storage.Shot, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.shots) {
		return storage.Shot{}, false
	}
	return m.shots[i], true
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTab):
			m.tab = (m.tab + 1) % tabCount
			m.loadShots()
			return m, nil

		case key.Matches(msg, m.keys.PrevTab):
			m.tab = (m.tab + tabCount - 1) % tabCount
			m.loadShots()
			return m, nil

		case key.Matches(msg, m.keys.Open):
			if shot, ok := m.selectedShot(); ok {
				m.opened = &shot
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			m.deleteSelected()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showDetail = m.width >= minWidthForDetail
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// deleteSelected removes the shot under the cursor and reloads the tab.
func (m *HistoryModel) deleteSelected() {
	shot, ok := m.selectedShot()
	if !ok || m.store == nil {
		return
	}
	if _, err := m.store.DeleteShot(shot.ID); err != nil {
		m.status = "Delete failed: " + err.Error()
		return
	}
	m.status = fmt.Sprintf("Deleted shot %s", shot.ShortID())
	m.loadShots()
}

// View renders the history.
func (m HistoryModel) View() string {
	if m.quitting || m.goingBack || m.opened != nil {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("SAVED SHOTS", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableRendered := boxStyle.Render(m.renderTableContent())

	if shot, ok := m.selectedShot(); ok && m.showDetail {
		detail := boxStyle.Width(detailWidth).Render(renderShotDetail(shot))
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tableRendered, "  ", detail))
	} else {
		b.WriteString(tableRendered)
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.status))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTabs renders the Recent and Longest tab headers.
func (m HistoryModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, tabCount)
	for t := range tabCount {
		if t == m.tab {
			tabs[t] = activeTabStyle.Render(t.String())
		} else {
			tabs[t] = tabStyle.Render(t.String())
		}
	}
	return strings.Join(tabs, " ")
}

// renderTableContent renders the table or empty message.
func (m HistoryModel) renderTableContent() string {
	if len(m.shots) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No shots saved yet.\nPress s in the lab to save one!")
	}

	return m.table.View()
}

// renderShotDetail lists the launch and summary of a saved shot.
func renderShotDetail(s storage.Shot) string {
	var b strings.Builder
	b.WriteString(labTitleStyle.Render(s.ShortID()))
	if s.Label != "" {
		b.WriteString("  " + s.Label)
	}
	fmt.Fprintf(&b, "\nx₀ %.2f  y₀ %.2f", s.Launch.X0, s.Launch.Y0)
	fmt.Fprintf(&b, "\nv₀ %.2f m/s at %.1f°", s.Launch.V0, s.Launch.Deg)
	fmt.Fprintf(&b, "\ng  %.2f m/s²\n", s.Launch.G)
	for _, f := range export.NewReport(s.Trajectory(), 0).Fields() {
		fmt.Fprintf(&b, "\n%-17s %s", f.Name, f.Value)
	}
	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// Opened returns the shot the user opened, or nil.
func (m HistoryModel) Opened() *storage.Shot {
	return m.opened
}

// Status returns the last status message.
func (m HistoryModel) Status() string {
	return m.status
}

// RunHistory runs the shot history screen. It returns the shot the user opened,
// if any, and whether they asked to go back rather than quit.
func RunHistory(store ShotStore, width, height int) (opened *storage.Shot, goBack bool, err error) {
	p := tea.NewProgram(
		NewHistoryModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, false, err
	}

	m, ok := finalModel.(HistoryModel)
	if !ok {
		return nil, false, nil
	}
	return m.Opened(), m.IsGoingBack(), nil
}
