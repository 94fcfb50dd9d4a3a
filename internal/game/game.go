// Package game hosts a sketch in an ebiten window.
package game

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/generative-sketches/internal/canvas"
	"github.com/iburimskiy/generative-sketches/internal/config"
)

// Sketch is one animation. Update runs once per tick unless the host is
// paused; Draw renders the current state.
type Sketch interface {
	Name() string
	Help() string
	Update(in Input) error
	Draw(c canvas.Canvas)
}

// typist is implemented by sketches that consume letter keys, so the host
// keeps only Escape for itself.
type typist interface {
	TakesText() bool
}

type Game struct {
	sketch Sketch
	input  Input
	screen *Screen

	// state
	paused     bool
	showStatus bool
	lastErr    error
}

func New(s Sketch, faces *canvas.Faces, showStatus bool) *Game {
	return &Game{
		sketch:     s,
		input:      &keyboard{},
		screen:     NewScreen(nil, faces),
		showStatus: showStatus,
	}
}

func (g *Game) takesText() bool {
	t, ok := g.sketch.(typist)
	return ok && t.TakesText()
}

// handleKeys applies host controls and reports whether to quit.
func (g *Game) handleKeys() bool {
	if g.input.JustPressed(ebiten.KeyEscape) {
		return true
	}
	if g.takesText() {
		return false
	}
	if g.input.JustPressed(ebiten.KeyQ) {
		return true
	}
	if g.input.JustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	return false
}

func (g *Game) Update() error {
	if g.handleKeys() {
		return ebiten.Termination
	}
	if g.paused {
		return nil
	}
	if err := g.sketch.Update(g.input); err != nil {
		if err != g.lastErr {
			log.Printf("%s: %v", g.sketch.Name(), err)
		}
		g.lastErr = err
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.Reset(screen)
	g.sketch.Draw(g.screen)

	if g.showStatus {
		g.drawStatus(screen)
	}
}

func (g *Game) status() string {
	status := g.sketch.Name() + " - " + g.sketch.Help()
	if g.paused {
		status = g.sketch.Name() + " - Paused, Space to resume"
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	return status
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	status := g.status()
	// debug text is white; back it so it reads on light sketches
	width := float32(len(status)*6 + 12)
	vector.DrawFilledRect(screen, 6, 8, width, 22, color.RGBA{R: 20, G: 25, B: 35, A: 200}, false)
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.CanvasWidth, config.CanvasHeight
}
