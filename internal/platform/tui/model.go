package tui

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/parabola/internal/config"
	"github.com/vovakirdan/parabola/internal/core"
	"github.com/vovakirdan/parabola/internal/export"
	"github.com/vovakirdan/parabola/internal/plot"
	"github.com/vovakirdan/parabola/internal/projectile"
)

// Lab layout constants
const (
	panelWidth  = 32                 // Sidebar width including padding
	plotOffsetX = panelWidth + 2 + 1 // Sidebar border plus one column gap
	footerLines = 2                  // Status and help lines below the plot
)

// Query input indexes.
const (
	queryX = iota
	queryY
	queryT
	queryCount
)

// NoMatchMessage is shown when a point query has no answer.
const NoMatchMessage = "Not on trajectory or invalid."

// param identifies an adjustable launch parameter.
type param int

const (
	paramY0 param = iota
	paramV0
	paramDeg
	paramG
	paramCount
)

var paramLabels = [paramCount]string{
	paramY0:  "Height y₀ (m)",
	paramV0:  "Velocity v₀ (m/s)",
	paramDeg: "Angle (°)",
	paramG:   "Gravity g (m/s²)",
}

var (
	labPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Width(panelWidth).
			Padding(0, 1)
	labTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	labSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	labMutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	labErrorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// LabModel is the Bubble Tea model for the interactive cannon: a parameter
// panel, a results panel, a point query panel and the live plot.
type LabModel struct {
	cfg       config.Config
	launch    config.LaunchConfig
	label     string
	tr        projectile.Trajectory
	points    []projectile.Point
	screen    *core.Screen
	viewport  plot.Viewport
	store     ShotStore
	runtime   core.RuntimeConfig
	keyMapper *KeyMapper
	keys      LabKeyMap
	help      help.Model

	field    param
	inputs   [queryCount]textinput.Model
	focus    int
	querying bool

	firing  bool
	ballT   float64
	fireEnd float64

	dragging      bool
	status        string
	screenshotDir string
	quitting      bool
	backToMenu    bool
}

// NewLabModel creates a lab starting from the configured launch.
// store may be nil, in which case saving is disabled.
func NewLabModel(cfg config.Config, store ShotStore, rc core.RuntimeConfig) LabModel {
	km := NewKeyMapper()
	h := help.New()
	h.ShowAll = false

	m := LabModel{
		cfg:           cfg,
		launch:        cfg.Launch.Sanitize(),
		label:         "lab",
		screen:        core.NewScreen(rc.ScreenW, rc.ScreenH),
		store:         store,
		runtime:       rc,
		keyMapper:     km,
		keys:          km.Keys(),
		help:          h,
		screenshotDir: config.UserPath("screenshots"),
	}

	placeholders := [queryCount]string{"x (m)", "y (m)", "t (s)"}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 12
		ti.Width = 10
		m.inputs[i] = ti
	}

	m.recompute()
	return m
}

// WithLaunch returns a copy of the lab starting from l.
func (m LabModel) WithLaunch(l config.LaunchConfig) LabModel {
	m.launch = l.Sanitize()
	m.recompute()
	return m
}

// WithLabel returns a copy of the lab that saves shots under label.
func (m LabModel) WithLabel(label string) LabModel {
	m.label = label
	return m
}

// WithScreenshotDir returns a copy of the lab writing screenshots to dir.
func (m LabModel) WithScreenshotDir(dir string) LabModel {
	m.screenshotDir = dir
	return m
}

// Init initializes the model. The lab only ticks while a shot is in flight.
func (m LabModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m LabModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.querying {
			return m.handleQueryKey(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.runtime = m.runtime.WithSize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		m.relayout()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input outside the query panel.
func (m LabModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionPrevField:
		m.field = (m.field + paramCount - 1) % paramCount
	case core.ActionNextField:
		m.field = (m.field + 1) % paramCount
	case core.ActionIncrease:
		m.adjust(1)
	case core.ActionDecrease:
		m.adjust(-1)
	case core.ActionReset:
		m.launch = m.cfg.Launch.Sanitize()
		m.firing = false
		m.recompute()
		m.status = "Launch reset"
	case core.ActionFire:
		return m.fire()
	case core.ActionSave:
		m.saveShot()
	case core.ActionScreenshot:
		m.saveScreenshot()
	case core.ActionQuery:
		m.querying = true
		cmd := m.inputs[m.focus].Focus()
		return m, cmd
	case core.ActionBack:
		m.backToMenu = true
		return m, tea.Quit
	}

	return m, nil
}

// handleQueryKey routes keys to the point query inputs.
func (m LabModel) handleQueryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc", "enter":
		m.querying = false
		m.inputs[m.focus].Blur()
		return m, nil
	case "tab", "down":
		cmd := m.focusInput((m.focus + 1) % queryCount)
		return m, cmd
	case "shift+tab", "up":
		cmd := m.focusInput((m.focus + queryCount - 1) % queryCount)
		return m, cmd
	}

	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	// Typing into one coordinate clears the other two
	if m.inputs[m.focus].Value() != before {
		for i := range m.inputs {
			if i != m.focus {
				m.inputs[i].SetValue("")
			}
		}
	}
	return m, cmd
}

func (m *LabModel) focusInput(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[m.focus].Focus()
}

// handleMouse lets the cannon be dragged vertically to set the launch height.
func (m LabModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	col, row := msg.X-plotOffsetX, msg.Y

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && m.nearCannon(col, row) {
			m.dragging = true
		}
	case tea.MouseActionMotion:
		if m.dragging {
			m.setY0(m.viewport.YAt(row))
		}
	case tea.MouseActionRelease:
		if m.dragging {
			m.setY0(m.viewport.YAt(row))
			m.dragging = false
		}
	}

	return m, nil
}

func (m LabModel) nearCannon(col, row int) bool {
	cc, cr := m.viewport.ToCell(m.launch.X0, m.launch.Y0)
	return core.Abs(col-cc) <= 1 && core.Abs(row-cr) <= 1
}

func (m *LabModel) setY0(y float64) {
	m.launch.Y0 = y
	m.launch = m.launch.Sanitize()
	m.recompute()
}

// adjust moves the selected parameter by one configured step in direction dir.
func (m *LabModel) adjust(dir float64) {
	steps := m.cfg.Lab.Steps
	switch m.field {
	case paramY0:
		m.launch.Y0 += dir * steps.Y0
	case paramV0:
		m.launch.V0 += dir * steps.V0
	case paramDeg:
		m.launch.Deg += dir * steps.Deg
	case paramG:
		m.launch.G += dir * steps.G
	}
	m.launch = m.launch.Sanitize()
	m.recompute()
}

// recompute refreshes the trajectory, samples and viewport after any change.
func (m *LabModel) recompute() {
	m.tr = projectile.Compute(m.launch.Launch())
	m.points = m.tr.Sample(m.cfg.Sampling.LabPoints)
	m.relayout()
}

// relayout sizes the plot to the space left of the sidebar.
func (m *LabModel) relayout() {
	w := core.Max(m.runtime.ScreenW-plotOffsetX, 20)
	h := core.Max(m.runtime.ScreenH-footerLines, 10)
	m.screen.Resize(w, h)
	m.viewport = plot.NewViewport(m.tr, w, h, m.cfg.Plot.Layout())
}

// fire starts the ball animation. Firing again restarts the current flight.
func (m LabModel) fire() (tea.Model, tea.Cmd) {
	m.ballT = 0
	m.fireEnd = m.points[len(m.points)-1].T
	if m.firing {
		return m, nil
	}
	m.firing = true
	return m, tickCmd(m.runtime.TickRate)
}

// handleTick advances the ball in real time.
func (m LabModel) handleTick() (tea.Model, tea.Cmd) {
	if !m.firing {
		return m, nil
	}
	m.ballT += 1 / float64(m.runtime.TickRate)
	if m.ballT >= m.fireEnd {
		m.firing = false
		return m, nil
	}
	return m, tickCmd(m.runtime.TickRate)
}

// saveShot stores the current launch.
func (m *LabModel) saveShot() {
	if m.store == nil {
		m.status = "No shot database; shot not saved"
		return
	}
	shot, err := m.store.SaveShot(m.label, m.launch.Launch())
	if err != nil {
		m.status = "Save failed: " + err.Error()
		return
	}
	m.status = fmt.Sprintf("Saved shot %s", shot.ShortID())
}

// saveScreenshot saves the plot and the results to a text file.
func (m *LabModel) saveScreenshot() {
	if m.screenshotDir == "" {
		m.status = "Screenshot failed: no home directory"
		return
	}
	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		m.status = "Screenshot failed: " + err.Error()
		return
	}

	m.drawPlot()
	var sb strings.Builder
	sb.WriteString(m.screen.String())
	sb.WriteString("\n\n")
	for _, f := range export.NewReport(m.tr, 0).Fields() {
		fmt.Fprintf(&sb, "%-17s %s\n", f.Name, f.Value)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("%s_%s.txt", m.label, timestamp))
	if err := os.WriteFile(path, []byte(sb.String()), 0o600); err != nil {
		m.status = "Screenshot failed: " + err.Error()
		return
	}
	m.status = "Screenshot saved to " + path
}

// QueryResult resolves the point query inputs against the current trajectory.
// entered is false when no coordinate has been typed.
func (m LabModel) QueryResult() (p projectile.Point, ok, entered bool) {
	q := projectile.Query{
		X: parseQueryValue(m.inputs[queryX].Value()),
		Y: parseQueryValue(m.inputs[queryY].Value()),
		T: parseQueryValue(m.inputs[queryT].Value()),
	}
	if q.Empty() {
		return projectile.Point{}, false, false
	}
	p, ok = projectile.Resolve(m.tr, q, m.cfg.Query.Tolerance)
	return p, ok, true
}

// parseQueryValue returns nil for empty or unparsable input.
func parseQueryValue(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) {
		return nil
	}
	return &v
}

// Launch returns the current launch.
func (m LabModel) Launch() config.LaunchConfig {
	return m.launch
}

// Trajectory returns the trajectory of the current launch.
func (m LabModel) Trajectory() projectile.Trajectory {
	return m.tr
}

// Status returns the last status message.
func (m LabModel) Status() string {
	return m.status
}

// IsQuitting returns true if user requested to quit entirely.
func (m LabModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m LabModel) BackToMenu() bool {
	return m.backToMenu
}

func (m LabModel) drawPlot() {
	opts := m.cfg.Plot.Options()
	if m.firing {
		ball := m.tr.PositionAt(m.ballT)
		opts.Ball = &ball
	}
	m.screen.Clear()
	plot.Draw(m.screen, m.viewport, m.tr, m.points, opts)
}

// View renders the current state to a string for display.
func (m LabModel) View() string {
	if m.quitting {
		return ""
	}

	m.drawPlot()

	sidebar := lipgloss.JoinVertical(lipgloss.Left,
		m.renderParams(),
		m.renderResults(),
		m.renderQuery(),
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", RenderScreen(m.screen))

	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(labMutedStyle.Render(m.status))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m LabModel) renderParams() string {
	values := [paramCount]float64{
		paramY0:  m.launch.Y0,
		paramV0:  m.launch.V0,
		paramDeg: m.launch.Deg,
		paramG:   m.launch.G,
	}

	var b strings.Builder
	b.WriteString(labTitleStyle.Render("Launch"))
	for p := range paramCount {
		line := fmt.Sprintf("%-18s %8.2f", paramLabels[p], values[p])
		b.WriteString("\n")
		if p == m.field && !m.querying {
			b.WriteString(labSelectedStyle.Render(line))
		} else {
			b.WriteString(line)
		}
	}
	if m.dragging {
		b.WriteString("\n" + labMutedStyle.Render("dragging cannon…"))
	}
	return labPanelStyle.Render(b.String())
}

func (m LabModel) renderResults() string {
	var b strings.Builder
	b.WriteString(labTitleStyle.Render("Results"))
	for _, f := range export.NewReport(m.tr, 0).Fields() {
		b.WriteString("\n")
		fmt.Fprintf(&b, "%-17s %s", f.Name, f.Value)
	}
	return labPanelStyle.Render(b.String())
}

func (m LabModel) renderQuery() string {
	var b strings.Builder
	title := "Point on trajectory"
	if !m.querying {
		title += labMutedStyle.Render("  (/)")
	}
	b.WriteString(labTitleStyle.Render(title))

	names := [queryCount]string{"x (m)", "y (m)", "t (s)"}
	for i, in := range m.inputs {
		b.WriteString("\n")
		fmt.Fprintf(&b, "%-6s %s", names[i], in.View())
	}

	b.WriteString("\n")
	p, ok, entered := m.QueryResult()
	switch {
	case !entered:
		b.WriteString(labMutedStyle.Render("Enter x, y or t."))
	case !ok:
		b.WriteString(labErrorStyle.Render(NoMatchMessage))
	default:
		fmt.Fprintf(&b, "x %s  y %s  t %s",
			export.Format(p.X, "%.2f m"),
			export.Format(p.Y, "%.2f m"),
			export.Format(p.T, "%.2f s"))
	}
	return labPanelStyle.Render(b.String())
}

// RunLab starts the lab as a standalone Bubble Tea program.
// Returns true if the user left with back rather than quit.
func RunLab(m LabModel) (backToMenu bool, err error) {
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Drag events for the cannon
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	lab, ok := finalModel.(LabModel)
	if !ok {
		return false, nil
	}
	return lab.BackToMenu(), nil
}
