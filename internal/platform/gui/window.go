// Package gui runs a drill in a desktop window with Ebiten. The logical
// screen is the arena itself, so cursor positions are world points.
package gui

import (
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/skillshot/internal/core"
	"github.com/vovakirdan/skillshot/internal/games/skillshot"
)

// WindowTitle is the title of the trainer window.
const WindowTitle = "Skill Shot Trainer"

var (
	backgroundColor = color.RGBA{0x10, 0x12, 0x18, 0xff}
	targetColor     = color.RGBA{0xe0, 0x3c, 0x31, 0xff}
	projectileColor = color.RGBA{0x3d, 0x8b, 0xfd, 0xff}
	originColor     = color.RGBA{0x4c, 0xc3, 0x6a, 0xff}
	hudColor        = color.White
)

const (
	originRadius = 6
	hudX         = 10
	hudTop       = 8
	hudLine      = 18
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

// Options configures the window adapter.
type Options struct {
	Seed   int64       // Zero uses the current time
	Logger *log.Logger // Nil discards logs
}

// Window implements ebiten.Game for one training session.
type Window struct {
	game   *skillshot.Game
	frame  core.InputFrame
	state  core.GameState
	logger *log.Logger
}

// NewWindow wraps a configured drill and starts its session.
func NewWindow(game *skillshot.Game, opts Options) *Window {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game.Reset(core.RuntimeConfig{
		TickRate: game.Config().Simulation.TickRate,
		Seed:     seed,
	})
	logger.Info("session started", "drill", game.ID(), "seed", seed)

	return &Window{
		game:   game,
		frame:  core.NewInputFrame(),
		logger: logger,
	}
}

// Update collects this tick's input and advances the session by one step.
func (w *Window) Update() error {
	if w.state.Terminated {
		return ebiten.Termination
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		w.frame.Push(core.Fire(core.V(float64(x), float64(y))))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) ||
		ebiten.IsWindowBeingClosed() {
		w.frame.Push(core.Quit())
	}

	res := w.game.Step(w.frame)
	w.frame.Clear()
	w.state = res.State

	for range res.Hits {
		w.logger.Debug("hit", "score", w.state.Score, "shots", w.state.ShotsFired)
	}

	if w.state.Terminated {
		w.logger.Info("session ended",
			"drill", w.game.ID(),
			"score", w.state.Score,
			"shots", w.state.ShotsFired,
			"accuracy", fmt.Sprintf("%.1f%%", w.state.Accuracy),
		)
		return ebiten.Termination
	}
	return nil
}

// Draw renders the latest snapshot.
func (w *Window) Draw(screen *ebiten.Image) {
	snap := w.game.Snapshot()
	screen.Fill(backgroundColor)

	if snap.FixedOrigin {
		vector.DrawFilledCircle(screen, float32(snap.Origin.X), float32(snap.Origin.Y), originRadius, originColor, true)
	}

	drawBody(screen, snap.Target, targetColor)
	for _, p := range snap.Projectiles {
		drawBody(screen, p, projectileColor)
	}

	for i, line := range skillshot.HUDLines(snap) {
		op := &text.DrawOptions{}
		op.GeoM.Translate(hudX, float64(hudTop+i*hudLine))
		op.ColorScale.ScaleWithColor(hudColor)
		text.Draw(screen, line, hudFace, op)
	}
}

func drawBody(screen *ebiten.Image, b skillshot.Body, clr color.Color) {
	vector.DrawFilledCircle(screen, float32(b.Position.X), float32(b.Position.Y), float32(b.Radius), clr, true)
}

// Layout fixes the logical screen to the arena size.
func (w *Window) Layout(_, _ int) (int, int) {
	arena := w.game.Config().Arena
	return int(arena.Width), int(arena.Height)
}

// State returns the counters after the latest tick.
func (w *Window) State() core.GameState {
	return w.state
}

// Run opens the trainer window and blocks until the player quits or closes
// it. It returns the final counters.
func Run(game *skillshot.Game, opts Options) (core.GameState, error) {
	cfg := game.Config()

	ebiten.SetWindowSize(int(cfg.Arena.Width), int(cfg.Arena.Height))
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetTPS(cfg.Simulation.TickRate)
	ebiten.SetWindowClosingHandled(true)

	w := NewWindow(game, opts)
	if err := ebiten.RunGame(w); err != nil {
		return w.State(), fmt.Errorf("gui: %w", err)
	}
	return w.State(), nil
}
