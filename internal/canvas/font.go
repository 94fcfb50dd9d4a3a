package canvas

import (
	"fmt"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Faces hands out font faces of one typeface at arbitrary pixel sizes,
// caching each size after first use.
type Faces struct {
	font  *opentype.Font
	mu    sync.Mutex
	cache map[int]font.Face
}

// NewFaces parses an OpenType/TrueType font. A nil ttf selects Go Regular.
func NewFaces(ttf []byte) (*Faces, error) {
	if ttf == nil {
		ttf = goregular.TTF
	}
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Faces{font: f, cache: map[int]font.Face{}}, nil
}

// Face returns a face rendering at size pixels (72 DPI).
func (f *Faces) Face(size float64) (font.Face, error) {
	// sizes are cached at 0.1px resolution
	key := int(math.Round(size * 10))

	f.mu.Lock()
	defer f.mu.Unlock()

	if face, ok := f.cache[key]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    float64(key) / 10,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("face %.1fpx: %w", size, err)
	}
	f.cache[key] = face
	return face, nil
}
