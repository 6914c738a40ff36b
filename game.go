package main

import (
	"context"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"

	"github.com/olivierh59500/game-of-life-go/config"
	"github.com/olivierh59500/game-of-life-go/sim"
	"github.com/olivierh59500/game-of-life-go/view"
)

var (
	backgroundColor = color.RGBA{0x05, 0x05, 0x08, 0xff}
	cursorColor     = color.RGBA{0xff, 0xa0, 0x20, 0xff}
)

// Game wires the simulation to Ebitengine: it polls input, advances the
// simulation on each tick and draws the board through the camera.
type Game struct {
	cfg    config.Config
	ctx    context.Context
	sim    *sim.Simulation
	cam    *view.Camera
	mirror *view.Mirror
	board  *ebiten.Image // one pixel per cell

	screenW, screenH int
	prevMX, prevMY   int
	showHUD          bool
}

// NewGame creates a game with the camera centred on the grid. Cancelling ctx
// ends the game loop at the next tick.
func NewGame(ctx context.Context, cfg config.Config) (*Game, error) {
	s, err := sim.New(cfg)
	if err != nil {
		return nil, err
	}

	worldW := float64(cfg.Width) * cfg.CellSize
	worldH := float64(cfg.Height) * cfg.CellSize

	return &Game{
		cfg:     cfg,
		ctx:     ctx,
		sim:     s,
		cam:     view.NewCamera(worldW/2, worldH/2, cfg.InitialZoom, cfg.MinZoom),
		mirror:  view.NewMirror(cfg.Width, cfg.Height, view.AliveColor, view.DeadColor),
		board:   ebiten.NewImage(cfg.Width, cfg.Height),
		screenW: cfg.WindowWidth,
		screenH: cfg.WindowHeight,
		showHUD: true,
	}, nil
}

// Update is called each tick by Ebitengine
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}

	dt := g.cfg.TickDuration()

	g.handleInput(dt)

	if _, err := g.sim.Advance(g.ctx, dt); err != nil {
		if errors.Is(err, context.Canceled) {
			return ebiten.Termination
		}
		return err
	}

	if g.mirror.Sync(g.sim.Grid()) > 0 {
		g.board.WritePixels(g.mirror.Pixels())
	}
	return nil
}

// Draw is called each frame by Ebitengine
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.cfg.CellSize, g.cfg.CellSize)
	op.GeoM.Translate(-g.cam.X, -g.cam.Y)
	op.GeoM.Scale(1/g.cam.Scale, 1/g.cam.Scale)
	op.GeoM.Translate(float64(g.screenW)/2, float64(g.screenH)/2)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(g.board, op)

	g.drawCursor(screen)

	if g.showHUD {
		ebitenutil.DebugPrint(screen, g.hudText())
	}
}

// drawCursor outlines the cell under the mouse
func (g *Game) drawCursor(screen *ebiten.Image) {
	cx, cy := g.hoveredCell()
	grid := g.sim.Grid()
	if cx < 0 || cy < 0 || cx >= grid.Width() || cy >= grid.Height() {
		return
	}

	size := g.cfg.CellSize
	sx, sy := g.cam.WorldToScreen(float64(cx)*size, float64(cy)*size, g.screenW, g.screenH)
	side := float32(size / g.cam.Scale)
	vector.StrokeRect(screen, float32(sx), float32(sy), side, side, 1, cursorColor, false)
}

// hoveredCell returns the grid cell under the mouse cursor
func (g *Game) hoveredCell() (int, int) {
	mx, my := ebiten.CursorPosition()
	return g.cam.CellAt(float64(mx), float64(my), g.cfg.CellSize, g.screenW, g.screenH)
}

// Layout follows the window size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.screenW, g.screenH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
