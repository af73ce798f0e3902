//go:build ebiten

package app

import (
	"image/color"
	"time"

	"golife/internal/render"
	"golife/internal/ui"
	"golife/pkg/grid"
	"golife/pkg/life"
	"golife/pkg/pattern"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a life session to the ebiten.Game interface. All input is
// funneled through Update on the main loop, so every record into the
// session's history happens serially.
type Game struct {
	session *life.Session
	painter *render.GridPainter
	hud     *ui.HUD
	clock   *StepClock

	seed pattern.SeedFunc
	cfg  *Config

	onColor  color.Color
	offColor color.Color

	// Drag painting: remember the last cell toggled during the current
	// press so holding the button over it does not flicker.
	dragging bool
	lastCell grid.Coord
}

// New constructs a Game for the provided session and seed factory.
func New(session *life.Session, seed pattern.SeedFunc, cfg *Config) *Game {
	return &Game{
		session:  session,
		painter:  render.NewGridPainter(cfg.Width, cfg.Height),
		hud:      ui.NewHUD(session),
		clock:    NewStepClock(cfg.TPS),
		seed:     seed,
		cfg:      cfg,
		onColor:  color.White,
		offColor: color.Black,
	}
}

// Reset reseeds the board through the session, keeping the old board one
// undo away.
func (g *Game) Reset(seed int64) {
	g.session.Seed(g.seed(g.cfg.Width, g.cfg.Height, seed))
}

// Update handles input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.SetPaused(!g.session.Paused())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.session.Advance()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyU) || inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		g.session.Undo()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyY) {
		g.session.Redo()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.cfg.Seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.handlePointer()

	if !g.session.Paused() && g.clock.ShouldStep() {
		g.session.Advance()
	}
	return nil
}

// handlePointer toggles cells under a pressed cursor. Editing pauses the
// run so the board holds still under the pointer.
func (g *Game) handlePointer() {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.dragging = false
		return
	}
	px, py := ebiten.CursorPosition()
	cell := grid.Coord{X: px / g.cfg.Scale, Y: py / g.cfg.Scale}
	if cell.X < 0 || cell.Y < 0 || cell.X >= g.cfg.Width || cell.Y >= g.cfg.Height {
		return
	}
	if g.dragging && cell == g.lastCell {
		return
	}
	g.session.SetPaused(true)
	g.session.Toggle(cell)
	g.dragging = true
	g.lastCell = cell
}

// Draw renders the current board and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.session.Now(), g.onColor, g.offColor, g.cfg.Scale)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width * g.cfg.Scale, g.cfg.Height * g.cfg.Scale
}
