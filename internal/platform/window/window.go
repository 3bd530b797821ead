// Package window runs blockfall in a desktop window with Ebitengine.
package window

import (
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/platform/sound"
)

// Options configures the window front end.
type Options struct {
	Runtime core.RuntimeConfig
	Title   string

	// Optional
	Sound  *sound.Engine
	Logger *log.Logger
}

// binding ties physical keys to an action.
type binding struct {
	action core.Action
	keys   []ebiten.Key
}

var bindings = []binding{
	{core.ActionLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{core.ActionRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{core.ActionDrop, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
	{core.ActionRotate, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
}

var (
	background = color.RGBA{18, 18, 24, 255}
	palette    = map[core.Color]color.RGBA{
		core.ColorRed:     {220, 50, 47, 255},
		core.ColorGreen:   {95, 185, 70, 255},
		core.ColorYellow:  {240, 200, 40, 255},
		core.ColorBlue:    {45, 105, 210, 255},
		core.ColorMagenta: {170, 70, 190, 255},
		core.ColorCyan:    {40, 190, 210, 255},
		core.ColorWhite:   {235, 235, 235, 255},
		core.ColorOrange:  {240, 140, 30, 255},
		core.ColorGray:    {70, 70, 82, 255},
		core.ColorBlack:   {0, 0, 0, 255},
	}
)

// imageSurface adapts an Ebitengine image to core.Surface.
type imageSurface struct {
	img *ebiten.Image
}

func (s imageSurface) Clear() {
	s.img.Fill(background)
}

func (s imageSurface) FillRect(r core.Rect, c core.Color) {
	clr, ok := palette[c]
	if !ok {
		clr = background
	}
	vector.DrawFilledRect(s.img, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

// Game implements ebiten.Game around a blockfall game.
type Game struct {
	game   *blockfall.Game
	state  core.GameState
	sound  *sound.Engine
	logger *log.Logger
}

// NewGame creates the Ebitengine adapter with a fresh game.
func NewGame(opts Options) *Game {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	g := &Game{
		game:   blockfall.New(opts.Runtime),
		sound:  opts.Sound,
		logger: opts.Logger,
	}
	g.state = g.game.State()
	return g
}

// Update forwards key edges to the game and advances it by one tick.
// Ebitengine calls it at the configured TPS.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.logger.Info("quit", "lines", g.state.Lines, "pieces", g.state.Pieces)
		return ebiten.Termination
	}

	for _, b := range bindings {
		for _, k := range b.keys {
			if inpututil.IsKeyJustPressed(k) {
				g.game.KeyDown(b.action)
			}
			if inpututil.IsKeyJustReleased(k) {
				g.game.KeyUp(b.action)
			}
		}
	}

	res := g.game.Step()
	g.state = res.State
	if res.Reset {
		g.logger.Info("game over", "resets", res.State.Resets, "lines", res.State.Lines)
	}
	g.sound.PlayStep(res)
	return nil
}

// Draw paints the board and a small status line.
func (g *Game) Draw(screen *ebiten.Image) {
	g.game.Render(imageSurface{img: screen})
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("lines %d  pieces %d  resets %d", g.state.Lines, g.state.Pieces, g.state.Resets),
		4, 2)
}

// Layout keeps the logical screen at the canvas size and lets Ebitengine
// scale it to the window.
func (g *Game) Layout(_, _ int) (screenWidth, screenHeight int) {
	return g.game.Config().CanvasSize()
}

// Run opens the window and blocks until it is closed or Escape is pressed.
func Run(opts Options) error {
	if opts.Title == "" {
		opts.Title = "Blockfall"
	}
	g := NewGame(opts)
	w, h := g.game.Config().CanvasSize()

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(g.game.Config().FrameRate)

	g.logger.Debug("window opened", "width", w, "height", h, "tps", g.game.Config().FrameRate)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
