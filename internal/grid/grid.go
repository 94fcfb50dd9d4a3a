// Package grid draws a lattice of short line segments whose angle and
// stroke width follow a 3D noise field sampled at cell position and time.
package grid

import (
	"fmt"
	"image/color"
	"math"

	"github.com/iburimskiy/generative-sketches/internal/canvas"
	"github.com/iburimskiy/generative-sketches/internal/config"
)

var (
	Background = color.White
	Ink        = color.Black
)

// Cell is one segment of the grid for a given frame.
type Cell struct {
	Column, Row int
	CX, CY      float64 // segment center
	Length      float64
	Angle       float64 // radians
	Width       float64 // stroke width
	Noise       float64
}

// Endpoints returns the segment ends after rotating about the center.
func (c Cell) Endpoints() (x1, y1, x2, y2 float64) {
	dx := math.Cos(c.Angle) * c.Length / 2
	dy := math.Sin(c.Angle) * c.Length / 2
	return c.CX - dx, c.CY - dy, c.CX + dx, c.CY + dy
}

// Grid lays out Params over a width x height canvas.
type Grid struct {
	Params        Params
	noise         Noise
	width, height float64
}

func New(width, height float64, p Params, noise Noise) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: canvas %gx%g", ErrInvalidParams, width, height)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Grid{Params: p, noise: noise, width: width, height: height}, nil
}

// mapRange linearly maps v from [inMin, inMax] onto [outMin, outMax].
func mapRange(v, inMin, inMax, outMin, outMax float64) float64 {
	return (v-inMin)/(inMax-inMin)*(outMax-outMin) + outMin
}

// Cells computes every segment for the given frame, row-major.
func (g *Grid) Cells(frame int) []Cell {
	p := g.Params
	gridW := g.width * config.GridCoverage
	gridH := g.height * config.GridCoverage
	cellW := gridW / float64(p.Columns)
	cellH := gridH / float64(p.Rows)
	marginX := (g.width - gridW) / 2
	marginY := (g.height - gridH) / 2

	t := p.Frame
	if p.Animate {
		t = frame
	}
	z := float64(t) * p.Speed

	cells := make([]Cell, 0, p.Columns*p.Rows)
	for i := 0; i < p.Columns*p.Rows; i++ {
		col := i % p.Columns
		row := i / p.Columns
		x := float64(col) * cellW
		y := float64(row) * cellH

		n := g.noise.Noise3D(x*p.Frequency, y*p.Frequency, z*p.Frequency)
		cells = append(cells, Cell{
			Column: col,
			Row:    row,
			CX:     x + marginX + cellW/2,
			CY:     y + marginY + cellH/2,
			Length: cellW * config.GridSegment,
			Angle:  math.Pi * n * p.Amplitude,
			Width:  mapRange(n, -1, 1, p.ScaleMin, p.ScaleMax),
			Noise:  n,
		})
	}
	return cells
}

// Draw clears the canvas and strokes every cell for the given frame.
func (g *Grid) Draw(c canvas.Canvas, frame int) {
	c.Clear(Background)
	for _, cell := range g.Cells(frame) {
		var ink color.Color = Ink
		if g.Params.Tint {
			ink = tint(cell.Noise)
		}
		x1, y1, x2, y2 := cell.Endpoints()
		c.StrokeCappedLine(x1, y1, x2, y2, cell.Width, g.Params.LineCap, ink)
	}
}
