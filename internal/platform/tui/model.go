package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/platform/sound"
)

// Options configures a terminal game.
type Options struct {
	Runtime    core.RuntimeConfig
	Keys       KeyMap
	HoldWindow time.Duration

	// Optional
	Sound    *sound.Engine
	Logger   *log.Logger
	Renderer *lipgloss.Renderer
}

// OptionsFromConfig builds terminal options from the file configuration.
func OptionsFromConfig(cfg config.Config, seed int64) Options {
	return Options{
		Runtime:    cfg.TerminalRuntime(seed),
		Keys:       NewKeyMap(cfg.Keys),
		HoldWindow: cfg.Terminal.HoldWindow,
	}
}

// styles holds the lipgloss styles of the chrome around the board.
type styles struct {
	board lipgloss.Style
	title lipgloss.Style
	label lipgloss.Style
	value lipgloss.Style
	hud   lipgloss.Style
	warn  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		board: r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("245")),
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		label: r.NewStyle().Foreground(lipgloss.Color("245")),
		value: r.NewStyle().Bold(true),
		hud:   r.NewStyle().PaddingLeft(2),
		warn:  r.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

// Model is the Bubble Tea model running one blockfall game.
type Model struct {
	game     *blockfall.Game
	canvas   *core.Canvas
	renderer *lipgloss.Renderer
	styles   styles
	keys     KeyMap
	help     help.Model
	hold     *holdTracker
	interval time.Duration
	sound    *sound.Engine
	logger   *log.Logger
	state    core.GameState
	width    int // Terminal size, zero until the first resize message
	height   int
	quitting bool
}

// NewModel creates a model with a fresh game.
func NewModel(opts Options) Model {
	if opts.Renderer == nil {
		opts.Renderer = lipgloss.DefaultRenderer()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.HoldWindow <= 0 {
		opts.HoldWindow = config.DefaultConfig().Terminal.HoldWindow
	}

	game := blockfall.New(opts.Runtime)
	w, h := game.Config().CanvasSize()

	hm := help.New()
	hm.Styles.ShortKey = opts.Renderer.NewStyle().Foreground(lipgloss.Color("245"))
	hm.Styles.FullKey = hm.Styles.ShortKey

	return Model{
		game:     game,
		canvas:   core.NewCanvas(w, h),
		renderer: opts.Renderer,
		styles:   newStyles(opts.Renderer),
		keys:     opts.Keys,
		help:     hm,
		hold:     newHoldTracker(opts.HoldWindow),
		interval: game.Config().FrameInterval(),
		sound:    opts.Sound,
		logger:   opts.Logger,
		state:    game.State(),
	}
}

// Game returns the running game.
func (m Model) Game() *blockfall.Game {
	return m.game
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("game started", "seed", m.game.Config().Seed)
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case releaseMsg:
		if m.hold.release(msg) {
			m.game.KeyUp(msg.action)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Bound keys never reach anything else.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Debug("quit", "lines", m.state.Lines, "pieces", m.state.Pieces)
		return m, tea.Quit

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case core.ActionRotate:
		m.game.KeyDown(action)
		return m, nil

	case core.ActionLeft, core.ActionRight, core.ActionDrop:
		m.game.KeyDown(action)
		return m, m.hold.press(action)
	}

	return m, nil
}

// handleTick advances the simulation by one tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	res := m.game.Step()
	m.state = res.State

	if len(res.Cleared) > 0 {
		m.logger.Debug("rows cleared", "rows", res.Cleared, "lines", res.State.Lines)
	}
	if res.Reset {
		// The game dropped its input flags; drop pending releases with them.
		m.hold.reset()
		m.logger.Info("game over", "resets", res.State.Resets, "lines", res.State.Lines)
	}
	m.sound.PlayStep(res)

	return m, tickCmd(m.interval)
}

// minSize returns the terminal size needed to show the board with its border.
func (m Model) minSize() (width, height int) {
	return m.canvas.Width() + 2, (m.canvas.Height()+1)/2 + 2
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if w, h := m.minSize(); m.width > 0 && (m.width < w || m.height < h) {
		return m.styles.warn.Render(fmt.Sprintf(
			"Terminal too small: need %dx%d, have %dx%d", w, h, m.width, m.height))
	}

	m.game.Render(m.canvas)
	board := m.styles.board.Render(RenderCanvas(m.canvas, m.renderer))

	hud := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.title.Render("BLOCKFALL"),
		"",
		m.stat("Lines", m.state.Lines),
		m.stat("Pieces", m.state.Pieces),
		m.stat("Resets", m.state.Resets),
		"",
		m.help.View(m.keys),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, board, m.styles.hud.Render(hud))
}

func (m Model) stat(label string, value int) string {
	return m.styles.label.Render(fmt.Sprintf("%-7s", label)) + m.styles.value.Render(fmt.Sprint(value))
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
