//go:build ebiten

package app

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"tilelife/internal/core"
	"tilelife/internal/render"
	"tilelife/internal/ui"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	view    *render.Viewport
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	timer   *core.FixedStep

	opts     Options
	paused   bool
	tickOnce bool
	seed     int64
	live     core.Rect
	liveLen  int
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, opts Options) *Game {
	if opts.Logger == nil {
		opts.Logger = core.Logger()
	}
	g := &Game{
		sim:     sim,
		view:    render.NewViewport(sim.Tile(), float64(opts.Width), float64(opts.Height)),
		painter: render.NewGridPainter(),
		hud:     ui.NewHUD(sim, opts.PanelWidth),
		overlay: ui.NewOverlay(),
		timer:   core.NewFixedStep(opts.Rate),
		opts:    opts,
		seed:    opts.Seed,
	}
	g.refresh()
	g.view.CenterOn(g.live)
	if opts.Checkpoint {
		g.checkpoint()
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.timer.Reset()
	g.refresh()
	g.view.CenterOn(g.live)
	g.opts.Logger.Info("reset", "seed", seed)
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleKeys()

	g.overlay.Update(g.view)
	g.handleClick()

	switch {
	case g.tickOnce:
		g.sim.Step()
		g.tickOnce = false
	case !g.paused:
		for n := g.timer.Due(); n > 0; n-- {
			g.sim.Step()
		}
	}
	g.refresh()
	if g.opts.KeepCentered {
		g.view.CenterOn(g.live)
	}

	g.hud.Update(g.opts.Width, g.status())
	return nil
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.timer.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.checkpoint()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.rewind()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyK) {
		g.opts.KeepCentered = !g.opts.KeepCentered
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.opts.Render.GridLines = !g.opts.Render.GridLines
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.timer.SetRate(adjustRate(g.timer.Rate(), true))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.timer.SetRate(adjustRate(g.timer.Rate(), false))
	}

	var dx, dy float64
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dx += PanStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dx -= PanStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dy += PanStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dy -= PanStep
	}
	if dx != 0 || dy != 0 {
		g.opts.KeepCentered = false
		g.view.PanBy(dx, dy)
	}
}

func (g *Game) handleClick() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	ed, ok := g.sim.(core.Editor)
	if !ok {
		return
	}
	if at, ok := g.overlay.Hovered(); ok {
		c := ed.Toggle(at)
		g.opts.Logger.Debug("toggle", "at", at.String(), "state", c.State)
	}
}

func (g *Game) checkpoint() {
	if cp, ok := g.sim.(core.Checkpointer); ok {
		cp.Checkpoint()
		g.opts.Logger.Info("checkpoint", "generation", g.sim.Generation())
	}
}

func (g *Game) rewind() {
	cp, ok := g.sim.(core.Checkpointer)
	if !ok {
		return
	}
	if cp.Rewind() {
		g.paused = true
		g.refresh()
		g.opts.Logger.Info("rewind", "generation", g.sim.Generation())
	}
}

func (g *Game) refresh() {
	g.sim.View(func(grid *core.SparseGrid) {
		g.live = grid.LiveRectangle()
		g.liveLen = grid.Len()
	})
}

func (g *Game) status() ui.Status {
	st := ui.Status{
		Generation:   g.sim.Generation(),
		Live:         g.liveLen,
		Rate:         g.timer.Rate(),
		Paused:       g.paused,
		KeepCentered: g.opts.KeepCentered,
	}
	if cp, ok := g.sim.(interface{ HasCheckpoint() bool }); ok {
		st.HasCheckpoint = cp.HasCheckpoint()
	}
	if at, ok := g.overlay.Hovered(); ok {
		st.Hovered = "tile " + at.String()
	}
	return st
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	viewImg := screen.SubImage(image.Rect(0, 0, g.opts.Width, g.opts.Height)).(*ebiten.Image)
	g.sim.View(func(grid *core.SparseGrid) {
		g.painter.Draw(viewImg, grid, g.view, g.opts.Palette, g.opts.Render)
	})
	g.overlay.Draw(viewImg, g.view, g.live)
	g.hud.Draw(screen, g.opts.Width, g.opts.Height)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.opts.Width + g.opts.PanelWidth, g.opts.Height
}
