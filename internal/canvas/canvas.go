// Package canvas defines the drawing surface the sketches render onto.
//
// Sketches only ever see the Canvas interface. The window host wraps an
// ebiten image in a Screen; tests use a Recorder.
package canvas

import (
	"image/color"
)

// LineCap is the shape drawn at both ends of a stroked segment.
type LineCap int

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

var capNames = [...]string{"butt", "round", "square"}

func (c LineCap) String() string {
	if c < 0 || int(c) >= len(capNames) {
		return "unknown"
	}
	return capNames[c]
}

// Next cycles butt -> round -> square -> butt.
func (c LineCap) Next() LineCap {
	return (c + 1) % LineCap(len(capNames))
}

// ParseLineCap maps a cap name back to its value.
func ParseLineCap(s string) (LineCap, bool) {
	for i, name := range capNames {
		if name == s {
			return LineCap(i), true
		}
	}
	return CapButt, false
}

// Canvas is a fixed-size 2D surface.
type Canvas interface {
	// Clear fills the entire surface with c.
	Clear(c color.Color)
	// StrokeLine strokes a butt-capped segment between two points.
	StrokeLine(x1, y1, x2, y2, width float64, c color.Color)
	// StrokeCappedLine strokes a segment with the given end caps.
	StrokeCappedLine(x1, y1, x2, y2, width float64, lineCap LineCap, c color.Color)
	// FillCircle fills a circle of radius r centered at (cx, cy).
	FillCircle(cx, cy, r float64, c color.Color)
	// StrokeCircle outlines a circle of radius r centered at (cx, cy).
	StrokeCircle(cx, cy, r, width float64, c color.Color)
	// FillText draws s centered on (x, y) at the given pixel size.
	FillText(s string, x, y, size float64, c color.Color)
}
