package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridkit/internal/core"
	"github.com/vovakirdan/gridkit/internal/lab"
	"github.com/vovakirdan/gridkit/internal/registry"
	"github.com/vovakirdan/gridkit/internal/scenario"
)

// ScenarioReloadMsg is sent when the watched scenario file changes on disk.
type ScenarioReloadMsg struct {
	Path string
}

// Options configure a mode run.
type Options struct {
	// Scenario is a scenario name or path to load into the mode. Empty
	// means the mode builds its own default world.
	Scenario string

	// Watch reloads the scenario live when its backing file changes.
	// Ignored for embedded scenarios, which have no file to watch.
	Watch bool
}

// Model is the Bubble Tea model for running a lab mode.
type Model struct {
	mode       registry.Mode
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	watcher    *scenario.Watcher
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	modeState  core.ModeState
	notice     string // transient message shown over the HUD
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given mode.
func NewModel(mode registry.Mode, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		mode:       mode,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		opts:       opts,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}

	if opts.Scenario != "" && opts.Watch {
		if path, ok := scenario.ResolvePath(opts.Scenario); ok {
			// Watch failures degrade to a plain run.
			if w, err := scenario.Watch(path); err == nil {
				m.watcher = w
			}
		}
	}

	return m
}

// Init initializes the model and starts the mode.
func (m Model) Init() tea.Cmd {
	m.mode.Reset(m.config)
	m.applyScenario()
	// Note: modeState will be set on first tick (value receiver limitation)

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if m.watcher != nil {
		cmds = append(cmds, m.waitForEdit())
	}
	return tea.Batch(cmds...)
}

// applyScenario loads the configured scenario into the mode when the
// mode supports it.
func (m *Model) applyScenario() {
	if m.opts.Scenario == "" {
		return
	}
	aware, ok := m.mode.(lab.ScenarioAware)
	if !ok {
		m.notice = fmt.Sprintf("%s does not take scenarios", m.mode.ID())
		return
	}
	s, err := scenario.Load(m.opts.Scenario)
	if err != nil {
		m.notice = err.Error()
		return
	}
	aware.ApplyScenario(s)
	m.notice = ""
}

// waitForEdit blocks on the watcher and converts file events to messages.
func (m Model) waitForEdit() tea.Cmd {
	return func() tea.Msg {
		path, ok := <-m.watcher.Events
		if !ok {
			return nil
		}
		return ScenarioReloadMsg{Path: path}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case ScenarioReloadMsg:
		m.applyScenario()
		if m.notice == "" {
			m.notice = "scenario reloaded"
		}
		return m, m.waitForEdit()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveSnapshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.closeWatcher()
		return m, tea.Quit
	}

	// Back returns to the menu when the mode is paused.
	if m.inputFrame.Has(core.ActionBack) && m.modeState.Paused {
		m.backToMenu = true
		m.closeWatcher()
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Modes size their world from the screen, so a resize rebuilds it.
	m.mode.Reset(m.config)
	m.applyScenario()

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.mode.Step(m.inputFrame)
	m.modeState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveSnapshot saves the current screen to a file.
func (m *Model) saveSnapshot() {
	m.mode.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".gridlab", "snapshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.mode.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, the session continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

func (m *Model) closeWatcher() {
	if m.watcher != nil {
		//nolint:errcheck // Shutdown path
		m.watcher.Close()
		m.watcher = nil
	}
}

// BackToMenu returns true if the user left the mode for the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting returns true if the user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.mode.Render(m.screen)
	if m.notice != "" {
		m.screen.DrawTextColored(0, m.screen.Height()-1, m.notice, core.ColorBrightYellow)
	}

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for one mode.
func Run(mode registry.Mode, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(mode, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
