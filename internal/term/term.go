// Package term shows the glyph mosaic in a terminal.
package term

import (
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/generative-sketches/internal/canvas"
	"github.com/iburimskiy/generative-sketches/internal/glyph"
)

var (
	smallStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	bigStyle   = smallStyle.Bold(true)
)

// Terminal cells are about twice as tall as wide, so each tile spans two
// columns.
const tileWidth = 2

// Draw paints m onto s, one tile per two columns, clipped to the screen.
func Draw(s tcell.Screen, m *glyph.Mosaic) {
	s.Fill(' ', smallStyle)
	w, h := s.Size()
	for row := 0; row < m.Rows && row < h; row++ {
		for col := 0; col < m.Cols && col*tileWidth < w; col++ {
			t := m.At(col, row)
			if t.Glyph == "" {
				continue
			}
			r, _ := utf8.DecodeRuneInString(t.Glyph)
			style := smallStyle
			if t.Size > 2 {
				style = bigStyle
			}
			s.SetContent(col*tileWidth, row, r, nil, style)
		}
	}
}

// App is the terminal glyph sketch: type a key to render it.
type App struct {
	screen tcell.Screen
	faces  *canvas.Faces
	rng    glyph.Rand
	sketch *glyph.Sketch
	text   string
}

func NewApp(s tcell.Screen, faces *canvas.Faces, rng glyph.Rand, text string) (*App, error) {
	a := &App{screen: s, faces: faces, rng: rng, text: text}
	if err := a.resize(); err != nil {
		return nil, err
	}
	return a, nil
}

// resize rebuilds the mosaic to the current screen size.
func (a *App) resize() error {
	w, h := a.screen.Size()
	sk, err := glyph.NewSketch(w/tileWidth, h, 1, a.text, a.faces, a.rng)
	if err != nil {
		return fmt.Errorf("terminal %dx%d: %w", w, h, err)
	}
	a.sketch = sk
	return nil
}

func (a *App) Text() string { return a.sketch.Text() }

// Handle applies one event and reports whether to quit.
func (a *App) Handle(ev tcell.Event) (quit bool, err error) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		if err := a.resize(); err != nil {
			return false, err
		}
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true, nil
		case tcell.KeyRune:
			if err := a.sketch.SetText(string(ev.Rune())); err != nil {
				return false, err
			}
			a.text = a.sketch.Text()
		}
	}
	return false, nil
}

// Render draws the current mosaic and shows it.
func (a *App) Render() {
	Draw(a.screen, a.sketch.Mosaic())
	a.screen.Show()
}

// Run polls events until Escape or Ctrl-C.
func (a *App) Run() error {
	a.Render()
	for {
		quit, err := a.Handle(a.screen.PollEvent())
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
		a.Render()
	}
}
