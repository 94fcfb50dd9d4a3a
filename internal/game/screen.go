package game

import (
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/generative-sketches/internal/canvas"
)

var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
)

// solidSource is the 1x1 white source texture used for path triangles.
func solidSource() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// Screen is a canvas.Canvas drawing onto an ebiten image.
type Screen struct {
	dst   *ebiten.Image
	faces *canvas.Faces
	// text draw failures are logged once
	textErr bool
}

// NewScreen wraps dst. faces may be nil when the sketch draws no text.
func NewScreen(dst *ebiten.Image, faces *canvas.Faces) *Screen {
	return &Screen{dst: dst, faces: faces}
}

// Reset points the screen at a new frame's target image.
func (s *Screen) Reset(dst *ebiten.Image) {
	s.dst = dst
}

func (s *Screen) Clear(c color.Color) {
	s.dst.Fill(c)
}

func (s *Screen) StrokeLine(x1, y1, x2, y2, width float64, c color.Color) {
	if width <= 0 {
		return
	}
	vector.StrokeLine(s.dst, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), c, true)
}

func (s *Screen) StrokeCappedLine(x1, y1, x2, y2, width float64, lineCap canvas.LineCap, c color.Color) {
	if width <= 0 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(x1), float32(y1))
	path.LineTo(float32(x2), float32(y2))

	op := &vector.StrokeOptions{Width: float32(width)}
	switch lineCap {
	case canvas.CapRound:
		op.LineCap = vector.LineCapRound
	case canvas.CapSquare:
		op.LineCap = vector.LineCapSquare
	default:
		op.LineCap = vector.LineCapButt
	}
	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, op)

	r, g, b, a := c.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	s.dst.DrawTriangles(vs, is, solidSource(), &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	})
}

func (s *Screen) FillCircle(cx, cy, r float64, c color.Color) {
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(r), c, true)
}

func (s *Screen) StrokeCircle(cx, cy, r, width float64, c color.Color) {
	vector.StrokeCircle(s.dst, float32(cx), float32(cy), float32(r), float32(width), c, true)
}

func (s *Screen) FillText(str string, x, y, size float64, c color.Color) {
	if s.faces == nil || str == "" {
		return
	}
	face, err := s.faces.Face(size)
	if err != nil {
		if !s.textErr {
			log.Printf("text: %v", err)
			s.textErr = true
		}
		return
	}
	// center the ink box on (x, y)
	b := text.BoundString(face, str)
	dx := int(x) - b.Min.X - b.Dx()/2
	dy := int(y) - b.Min.Y - b.Dy()/2
	text.Draw(s.dst, str, face, dx, dy, c)
}
