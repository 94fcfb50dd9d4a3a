package glyph

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/iburimskiy/generative-sketches/internal/canvas"
)

// fixedRand returns preset values.
type fixedRand struct {
	n int
	f float64
}

func (r fixedRand) Intn(int) int     { return r.n }
func (r fixedRand) Float64() float64 { return r.f }

func mustFaces(t *testing.T) *canvas.Faces {
	t.Helper()
	faces, err := canvas.NewFaces(nil)
	if err != nil {
		t.Fatalf("NewFaces: %v", err)
	}
	return faces
}

func TestClassify(t *testing.T) {
	tests := []struct {
		v    uint8
		want string
	}{
		{0, ""},
		{49, ""},
		{50, "."},
		{99, "."},
		{100, "-"},
		{149, "-"},
		{150, "+"},
		{199, "+"},
		{200, "="},
		{255, "="},
	}
	rng := fixedRand{n: 1}
	for _, tt := range tests {
		if got := Classify(tt.v, rng); got != tt.want {
			t.Errorf("Classify(%d) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestClassifyBrightChoosesFromSet(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		seen[Classify(255, rng)] = true
	}
	for g := range seen {
		if g != "_" && g != "=" && g != "/" {
			t.Errorf("unexpected bright glyph %q", g)
		}
	}
	if len(seen) != 3 {
		t.Errorf("Expected all three bright glyphs, saw %v", seen)
	}
}

func TestRasterize(t *testing.T) {
	faces := mustFaces(t)

	b, err := Rasterize("A", 54, 54, faces)
	if err != nil {
		t.Fatalf("Rasterize: %v", err)
	}
	if b.Cols != 54 || b.Rows != 54 || len(b.Pix) != 54*54 {
		t.Fatalf("Unexpected bitmap size %dx%d (%d)", b.Cols, b.Rows, len(b.Pix))
	}
	if b.Lit() == 0 {
		t.Fatal("Expected lit samples for \"A\"")
	}
	// ink is centered, so the corners stay dark
	for _, p := range [][2]int{{0, 0}, {53, 0}, {0, 53}, {53, 53}} {
		if v := b.At(p[0], p[1]); v != 0 {
			t.Errorf("corner %v lit with %d", p, v)
		}
	}

	blank, err := Rasterize(" ", 54, 54, faces)
	if err != nil {
		t.Fatalf("Rasterize space: %v", err)
	}
	if blank.Lit() != 0 {
		t.Errorf("Expected no lit samples for a space, got %d", blank.Lit())
	}
}

func TestRasterizeFitsWideBitmap(t *testing.T) {
	faces := mustFaces(t)
	tests := []struct {
		cols, rows int
	}{
		{54, 54},
		{40, 24},
		{100, 50},
		{24, 40},
	}
	for _, tt := range tests {
		b, err := Rasterize("A", tt.cols, tt.rows, faces)
		if err != nil {
			t.Fatalf("Rasterize %dx%d: %v", tt.cols, tt.rows, err)
		}
		if b.Lit() == 0 {
			t.Errorf("%dx%d: expected lit samples", tt.cols, tt.rows)
		}
		top, bottom := 0, 0
		for col := 0; col < b.Cols; col++ {
			if b.At(col, 0) > 0 {
				top++
			}
			if b.At(col, b.Rows-1) > 0 {
				bottom++
			}
		}
		if top != 0 || bottom != 0 {
			t.Errorf("%dx%d: glyph clipped, %d lit in the top row and %d in the bottom row", tt.cols, tt.rows, top, bottom)
		}
	}
}

func TestRasterizeErrors(t *testing.T) {
	faces := mustFaces(t)
	if _, err := Rasterize("", 54, 54, faces); !errors.Is(err, ErrEmptyText) {
		t.Errorf("Expected ErrEmptyText, got %v", err)
	}
	if _, err := Rasterize("A", 0, 54, faces); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Expected ErrInvalidSize, got %v", err)
	}
}

func TestBuild(t *testing.T) {
	b := &Bitmap{Cols: 3, Rows: 2, Pix: []uint8{0, 60, 120, 170, 230, 10}}

	m := Build(b, fixedRand{n: 2, f: 0.5})
	want := []string{"", ".", "-", "+", "/", ""}
	if m.Cols != 3 || m.Rows != 2 {
		t.Fatalf("Unexpected mosaic size %dx%d", m.Cols, m.Rows)
	}
	for i, w := range want {
		if m.Tiles[i].Glyph != w {
			t.Errorf("tile %d: expected %q, got %q", i, w, m.Tiles[i].Glyph)
		}
		if m.Tiles[i].Size != 2 {
			t.Errorf("tile %d: expected size 2, got %d", i, m.Tiles[i].Size)
		}
	}
	if m.At(1, 1).Glyph != "/" {
		t.Errorf("Expected At(1,1) to be \"/\", got %q", m.At(1, 1).Glyph)
	}

	big := Build(b, fixedRand{f: 0.05})
	for i, tile := range big.Tiles {
		if tile.Size != 4 {
			t.Errorf("tile %d: expected size 4, got %d", i, tile.Size)
		}
	}
}

func TestMosaicDraw(t *testing.T) {
	m := &Mosaic{Cols: 2, Rows: 2, Tiles: []Tile{
		{Glyph: "", Size: 2},
		{Glyph: ".", Size: 2},
		{Glyph: "+", Size: 4},
		{Glyph: "", Size: 4},
	}}
	rec := &canvas.Recorder{}
	m.Draw(rec, 20)

	if rec.Ops[0].Kind != canvas.OpClear || rec.Ops[0].Color != Background {
		t.Fatalf("Expected black clear first, got %+v", rec.Ops[0])
	}
	texts := rec.Filter(canvas.OpText)
	if len(texts) != 2 {
		t.Fatalf("Expected 2 text ops, got %d", len(texts))
	}
	if texts[0].Text != "." || texts[0].X1 != 20 || texts[0].Y1 != 0 || texts[0].Size != 40 {
		t.Errorf("Unexpected first glyph %+v", texts[0])
	}
	if texts[1].Text != "+" || texts[1].X1 != 0 || texts[1].Y1 != 20 || texts[1].Size != 80 {
		t.Errorf("Unexpected second glyph %+v", texts[1])
	}
}

func TestSketchSetText(t *testing.T) {
	s, err := NewSketch(1080, 1080, 20, "a", mustFaces(t), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewSketch: %v", err)
	}
	if s.Text() != "A" {
		t.Errorf("Expected upper-cased text, got %q", s.Text())
	}
	if m := s.Mosaic(); m.Cols != 54 || m.Rows != 54 {
		t.Fatalf("Expected 54x54 mosaic, got %dx%d", m.Cols, m.Rows)
	}

	before := s.Mosaic()
	if err := s.SetText(""); !errors.Is(err, ErrEmptyText) {
		t.Fatalf("Expected ErrEmptyText, got %v", err)
	}
	if s.Text() != "A" || s.Mosaic() != before {
		t.Errorf("Expected previous text and mosaic kept on error")
	}

	if err := s.SetText("hi"); err != nil {
		t.Fatalf("SetText: %v", err)
	}
	if s.Text() != "HI" {
		t.Errorf("Expected \"HI\", got %q", s.Text())
	}

	rec := &canvas.Recorder{}
	s.Draw(rec)
	if rec.Count(canvas.OpText) == 0 {
		t.Error("Expected glyphs to be drawn")
	}
}

func TestNewSketchRejectsTinySurface(t *testing.T) {
	if _, err := NewSketch(10, 10, 20, "A", mustFaces(t), fixedRand{}); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Expected ErrInvalidSize, got %v", err)
	}
}
