package game

import (
	"image/color"

	"github.com/iburimskiy/generative-sketches/internal/canvas"
)

var scopeColor = color.RGBA{R: 60, G: 110, B: 200, A: 255}

// drawScope plots the left channel of samples as a polyline inside the
// box at (x, y) of size w x h, zero on the box's middle line.
func drawScope(c canvas.Canvas, samples [][2]float64, x, y, w, h float64) {
	if len(samples) < 2 {
		return
	}
	mid := y + h/2
	step := w / float64(len(samples)-1)
	px, py := x, mid-samples[0][0]*h/2
	for i := 1; i < len(samples); i++ {
		v := samples[i][0]
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		nx := x + float64(i)*step
		ny := mid - v*h/2
		c.StrokeLine(px, py, nx, ny, 1.5, scopeColor)
		px, py = nx, ny
	}
}
