// Package glyph turns a short text into a mosaic of ASCII-like glyphs.
//
// The text is rasterized into a tiny bitmap with one sample per tile; each
// sample's brightness picks the glyph drawn in that tile.
package glyph

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/iburimskiy/generative-sketches/internal/canvas"
	"github.com/iburimskiy/generative-sketches/internal/config"
)

var (
	Background = color.Black
	Ink        = color.White
)

// brightGlyphs are chosen at random for the brightest samples.
var brightGlyphs = []string{"_", "=", "/"}

// Rand is the random source for glyph and size choices. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Classify maps a brightness sample to a glyph. Dark samples map to "".
func Classify(v uint8, rng Rand) string {
	switch {
	case v < 50:
		return ""
	case v < 100:
		return "."
	case v < 150:
		return "-"
	case v < 200:
		return "+"
	}
	return brightGlyphs[rng.Intn(len(brightGlyphs))]
}

// Tile is one mosaic cell.
type Tile struct {
	Glyph string
	Size  int // font size as a multiple of the cell size
}

type Mosaic struct {
	Cols, Rows int
	Tiles      []Tile
}

func (m *Mosaic) At(col, row int) Tile {
	return m.Tiles[row*m.Cols+col]
}

// Build classifies every bitmap sample. One tile in ten, on average, is
// drawn at the large size.
func Build(b *Bitmap, rng Rand) *Mosaic {
	m := &Mosaic{Cols: b.Cols, Rows: b.Rows, Tiles: make([]Tile, len(b.Pix))}
	for i, v := range b.Pix {
		size := config.GlyphSmlSize
		if rng.Float64() < config.GlyphBigRatio {
			size = config.GlyphBigSize
		}
		m.Tiles[i] = Tile{Glyph: Classify(v, rng), Size: size}
	}
	return m
}

// Draw clears to black and draws each non-empty tile centered on its
// cell's top-left corner.
func (m *Mosaic) Draw(c canvas.Canvas, cellSize float64) {
	c.Clear(Background)
	for i, t := range m.Tiles {
		if t.Glyph == "" {
			continue
		}
		col := i % m.Cols
		row := i / m.Cols
		c.FillText(t.Glyph, float64(col)*cellSize, float64(row)*cellSize, cellSize*float64(t.Size), Ink)
	}
}

// Sketch holds the current text and the mosaic rendered from it.
type Sketch struct {
	text       string
	cellSize   int
	cols, rows int
	faces      *canvas.Faces
	rng        Rand
	mosaic     *Mosaic
}

// NewSketch sizes the mosaic for a width x height surface and renders text.
func NewSketch(width, height, cellSize int, text string, faces *canvas.Faces, rng Rand) (*Sketch, error) {
	if cellSize <= 0 || width < cellSize || height < cellSize {
		return nil, fmt.Errorf("%w: %dx%d with %dpx cells", ErrInvalidSize, width, height, cellSize)
	}
	s := &Sketch{
		cellSize: cellSize,
		cols:     width / cellSize,
		rows:     height / cellSize,
		faces:    faces,
		rng:      rng,
	}
	if err := s.SetText(text); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Sketch) Text() string { return s.text }

func (s *Sketch) Mosaic() *Mosaic { return s.mosaic }

// SetText upper-cases text and rebuilds the mosaic. On error the previous
// text and mosaic are kept.
func (s *Sketch) SetText(text string) error {
	text = strings.ToUpper(text)
	b, err := Rasterize(text, s.cols, s.rows, s.faces)
	if err != nil {
		return err
	}
	s.text = text
	s.mosaic = Build(b, s.rng)
	return nil
}

func (s *Sketch) Draw(c canvas.Canvas) {
	s.mosaic.Draw(c, float64(s.cellSize))
}
