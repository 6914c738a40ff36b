package main

import (
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// wheelZoomFactor is the scale multiplier per wheel notch
const wheelZoomFactor = 0.9

// handleInput processes keyboard and mouse input
func (g *Game) handleInput(dt time.Duration) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.sim.TogglePlay()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Reseed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.sim.ReseedNoise()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) || inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		if err := g.sim.Step(g.ctx); err != nil {
			log.Printf("step: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.sim.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		if err := g.sim.Save(g.cfg.SnapshotPath); err != nil {
			log.Printf("save: %v", err)
		} else {
			log.Printf("saved generation %d to %s", g.sim.Generation(), g.cfg.SnapshotPath)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		if err := g.sim.Load(g.cfg.SnapshotPath); err != nil {
			log.Printf("load: %v", err)
		} else {
			log.Printf("loaded generation %d from %s", g.sim.Generation(), g.cfg.SnapshotPath)
		}
	}

	g.handleCamera(dt)
	g.handleMouse()
}

// handleCamera pans with WASD and zooms with J/K and the wheel
func (g *Game) handleCamera(dt time.Duration) {
	var dx, dy float64
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		dy--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		dy++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		dx--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		dx++
	}
	g.cam.Pan(dx, dy, g.cfg.CameraSpeed, dt)

	var zoom float64
	if ebiten.IsKeyPressed(ebiten.KeyJ) {
		zoom++
	}
	if ebiten.IsKeyPressed(ebiten.KeyK) {
		zoom--
	}
	g.cam.Zoom(zoom * g.cfg.ZoomSpeed * dt.Seconds())

	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		g.cam.ZoomBy(math.Pow(wheelZoomFactor, wheelY))
	}
}

// handleMouse edits cells with the left button and G, and pans on right drag
func (g *Game) handleMouse() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.sim.ToggleCell(g.hoveredCell())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.sim.StampGlider(g.hoveredCell())
	}

	mx, my := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		g.cam.Drag(float64(mx-g.prevMX), float64(my-g.prevMY))
	}
	g.prevMX, g.prevMY = mx, my
}
