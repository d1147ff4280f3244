package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodge-arcade/internal/core"
	"github.com/vovakirdan/dodge-arcade/internal/platform/sound"
	"github.com/vovakirdan/dodge-arcade/internal/registry"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running a dodge game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	raster     Raster
	config     core.RuntimeConfig
	keys       GameKeyMap
	help       help.Model
	holds      *HoldTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	logger     *log.Logger
	sink       sound.Sink
	quitting   bool
	back       bool // user asked to return to the game picker
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:       game,
		config:     cfg,
		keys:       DefaultGameKeyMap(),
		help:       help.New(),
		holds:      NewHoldTracker(cfg.TickRate),
		inputFrame: core.NewInputFrame(),
		logger:     logger,
		sink:       sound.LogSink{Logger: logger},
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.fieldRows(cfg.ScreenH))
	m.raster = m.newRaster()
	m.help.Width = cfg.ScreenW

	game.Reset(cfg)
	m.gameState = game.State()
	return m
}

// fieldRows leaves the last terminal row for the help footer.
func (m Model) fieldRows(height int) int {
	return max(height-1, 1)
}

func (m Model) newRaster() Raster {
	pf := m.game.Config().Playfield
	return NewRaster(core.V(pf.Width, pf.Height), m.screen.Width(), m.screen.Height())
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
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
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch {
	case action == core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		m.back = true
		return m, tea.Quit
	case action.Directional():
		m.holds.Press(action)
	case action != core.ActionNone:
		m.inputFrame.Press(action)
	}

	return m, nil
}

// handleResize refits the playfield to the new terminal size. The world
// runs in logical units, so the game keeps going untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, m.fieldRows(msg.Height))
	m.raster = m.newRaster()
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one frame with the wall-clock time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := tickInterval(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now

	m.holds.Fill(&m.inputFrame)
	result := m.game.Step(m.inputFrame, dt)
	m.observe(result)
	m.gameState = result.State

	m.holds.Advance()
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// observe logs phase changes and cues. The terminal has no audio, so cues
// only show up in the log.
func (m Model) observe(result core.StepResult) {
	if result.State.Phase != m.gameState.Phase {
		m.logger.Info("phase", "game", m.game.ID(), "from", m.gameState.Phase, "to", result.State.Phase, "score", result.State.Score)
	}
	m.sink.Play(result.Cues)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.raster.Paint(m.screen, m.game.Draw())
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for one game. It reports whether the
// player asked to go back to the picker rather than quit.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) (bool, error) {
	logger.Info("session start", "game", game.ID(), "fps", cfg.TickRate)

	p := tea.NewProgram(NewModel(game, cfg, logger), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := final.(Model)
	if !ok {
		return false, nil
	}
	logger.Info("session end", "game", game.ID(), "score", m.gameState.Score)
	return m.back, nil
}
