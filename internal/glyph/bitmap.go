package glyph

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/iburimskiy/generative-sketches/internal/canvas"
	"github.com/iburimskiy/generative-sketches/internal/config"
)

var (
	ErrEmptyText   = errors.New("empty glyph text")
	ErrInvalidSize = errors.New("invalid glyph surface size")
)

// Bitmap is a grayscale raster of the source text, one sample per tile.
type Bitmap struct {
	Cols, Rows int
	Pix        []uint8
}

// At returns the sample at (col, row).
func (b *Bitmap) At(col, row int) uint8 {
	return b.Pix[row*b.Cols+col]
}

// Lit counts samples above zero.
func (b *Bitmap) Lit() int {
	n := 0
	for _, v := range b.Pix {
		if v > 0 {
			n++
		}
	}
	return n
}

// Rasterize draws s white on black into a cols x rows bitmap with its ink
// box centered. The font size scales with the shorter side so a wide
// terminal bitmap keeps the whole glyph.
func Rasterize(s string, cols, rows int, faces *canvas.Faces) (*Bitmap, error) {
	if s == "" {
		return nil, ErrEmptyText
	}
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: bitmap %dx%d", ErrInvalidSize, cols, rows)
	}
	face, err := faces.Face(float64(min(cols, rows)) * config.GlyphFontRate)
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, cols, rows))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	ink, _ := font.BoundString(face, s)
	d := font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(cols)/2 - (ink.Min.X+ink.Max.X)/2,
			Y: fixed.I(rows)/2 - (ink.Min.Y+ink.Max.Y)/2,
		},
	}
	d.DrawString(s)

	b := &Bitmap{Cols: cols, Rows: rows, Pix: make([]uint8, cols*rows)}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			b.Pix[row*cols+col] = img.RGBAAt(col, row).R
		}
	}
	return b, nil
}
