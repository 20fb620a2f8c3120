package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hazard-arena/internal/arena"
	"github.com/vovakirdan/hazard-arena/internal/config"
	"github.com/vovakirdan/hazard-arena/internal/core"
	"github.com/vovakirdan/hazard-arena/internal/source"
)

// chromeRows is the number of terminal rows used by the status and help lines.
const chromeRows = 2

// Options configures the viewer.
type Options struct {
	Controller    *arena.Controller
	Source        source.Source // Nil means no external frame
	Config        core.RuntimeConfig
	Watcher       *config.Watcher // Nil disables hot reload
	Preset        config.Preset   // Reapplied to reloaded tuning
	ScreenshotDir string
	Logger        *log.Logger
}

// reloadMsg reports that the watched tuning file changed.
type reloadMsg struct {
	path string
}

// watchErrMsg reports a watcher failure.
type watchErrMsg struct {
	err error
}

// Model is the Bubble Tea model for the arena viewer.
type Model struct {
	ctrl      *arena.Controller
	src       source.Source
	config    core.RuntimeConfig
	watcher   *config.Watcher
	preset    config.Preset
	shotDir   string
	logger    *log.Logger
	screen    *core.Screen
	input     core.InputFrame
	keys      KeyMap
	help      help.Model
	table     table.Model
	status    arena.Status
	clock     float64 // Simulation seconds; stops while paused
	lastTick  time.Time
	paused    bool
	showTable bool
	notice    string // Last screenshot or reload message
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given controller.
func NewModel(opts Options) Model {
	cfg := opts.Config.Normalize()
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	shotDir := opts.ScreenshotDir
	if shotDir == "" {
		shotDir = DefaultScreenshotDir()
	}

	m := Model{
		ctrl:    opts.Controller,
		src:     opts.Source,
		config:  cfg,
		watcher: opts.Watcher,
		preset:  opts.Preset,
		shotDir: shotDir,
		logger:  logger,
		screen:  core.NewScreen(0, 0),
		input:   core.NewInputFrame(),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		table:   newPlayerTable(cfg.ScreenH - chromeRows),
		status:  opts.Controller.Status(),
	}
	m.help.Width = cfg.ScreenW
	return m
}

// Init starts the tick loop and the reload listener.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.config.TickRate), waitForReload(m.watcher))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case reloadMsg:
		m.reloadTuning(msg.path)
		return m, waitForReload(m.watcher)

	case watchErrMsg:
		m.logger.Warn("config watcher error", "err", msg.err)
		return m, waitForReload(m.watcher)
	}

	return m, nil
}

// handleKey records the action for the next tick. Quit is immediate.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.input) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.table = newPlayerTable(msg.Height - chromeRows)
	m.refreshTable()
	return m, nil
}

// handleTick applies pending input and runs one arena tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.lastTick.IsZero() && !m.paused {
		m.clock += now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	m.applyInput(now)

	if !m.paused {
		var frame *arena.Frame
		if m.src != nil {
			frame = m.src.Frame(m.clock)
		}
		_, m.status = m.ctrl.Tick(m.clock, frame)
	}
	m.refreshTable()

	return m, tickCmd(m.config.TickRate)
}

// applyInput executes and clears the actions gathered since the last tick.
func (m *Model) applyInput(now time.Time) {
	defer m.input.Clear()

	if m.input.Has(core.ActionReset) {
		m.ctrl.Reset()
		m.status = m.ctrl.Status()
	}
	if m.input.Has(core.ActionStart) {
		m.ctrl.Start(m.clock)
	}
	if m.input.Has(core.ActionDebug) {
		t := m.ctrl.Tuning()
		t.Debug = !t.Debug
		m.ctrl.SetTuning(t)
		m.logger.Debug("debug overlay", "enabled", t.Debug)
	}
	if m.input.Has(core.ActionPause) {
		m.paused = !m.paused
	}
	if m.input.Has(core.ActionTable) {
		m.showTable = !m.showTable
	}
	if m.input.Has(core.ActionScreenshot) {
		path, err := SaveScreenshot(m.shotDir, m.ctrl.Buffer(), now)
		if err != nil {
			m.logger.Error("screenshot failed", "err", err)
			m.notice = "screenshot failed: " + err.Error()
		} else {
			m.logger.Info("screenshot saved", "path", path)
			m.notice = "saved " + path
		}
	}
}

// reloadTuning replaces the tuning from the watched file. The debug overlay
// keeps its current state. A bad file leaves the tuning unchanged.
func (m *Model) reloadTuning(path string) {
	t, err := config.LoadTuningFile(path)
	if err != nil {
		m.logger.Warn("tuning reload failed", "err", err)
		m.notice = "reload failed"
		return
	}
	config.ApplyPreset(&t, m.preset)
	t.Debug = m.ctrl.Tuning().Debug
	m.ctrl.SetTuning(t)
	m.logger.Info("tuning reloaded", "path", path)
	m.notice = "tuning reloaded"
}

// refreshTable copies the player registry into the table.
func (m *Model) refreshTable() {
	s := m.ctrl.State()
	m.table.SetRows(playerRows(s.Players, s.DangerColor))
}

// tableVisible returns true if the player panel fits and is enabled.
func (m Model) tableVisible() bool {
	return m.showTable && m.config.ScreenW >= minWidthForTable
}

// arenaArea returns the cells available for the arena image.
func (m Model) arenaArea() core.Rect {
	w := m.config.ScreenW
	if m.tableVisible() {
		w -= tableWidth + 1
	}
	return core.FitSquare(w, m.config.ScreenH-chromeRows, 2)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	status := statusLine(m.status, m.paused, m.clock)
	if m.notice != "" {
		status += "  " + noticeStyle.Render(m.notice)
	}

	area := m.arenaArea()
	m.screen.Resize(area.W, area.H)
	m.screen.Clear()
	PaintBuffer(m.screen, m.ctrl.Buffer())
	if m.paused {
		DrawBanner(m.screen, " PAUSED ")
	}
	body := lipgloss.NewStyle().PaddingLeft(area.X).Render(RenderScreen(m.screen))

	if m.tableVisible() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, " ", renderPlayerPanel(m.table))
	}

	return lipgloss.JoinVertical(lipgloss.Left, status, body, labelStyle.Render(m.help.View(m.keys)))
}

// waitForReload blocks on the watcher and turns its next event into a message.
func waitForReload(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case path := <-w.Events:
			return reloadMsg{path: path}
		case err := <-w.Errors:
			return watchErrMsg{err: err}
		}
	}
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
