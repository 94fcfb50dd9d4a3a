package game

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/generative-sketches/internal/canvas"
	"github.com/iburimskiy/generative-sketches/internal/config"
	"github.com/iburimskiy/generative-sketches/internal/glyph"
	"github.com/iburimskiy/generative-sketches/internal/grid"
	"github.com/iburimskiy/generative-sketches/internal/particles"
	"github.com/iburimskiy/generative-sketches/internal/sound"
)

// Bell rings a tone. *sound.Chime satisfies it.
type Bell interface {
	Ring(freq float64)
	Tap() *sound.Tap
}

const (
	scopeSamples = 1024
	scopeX       = 20
	scopeY       = config.CanvasHeight - 100
	scopeW       = 400
	scopeH       = 80

	frequencyStep = 0.001
)

// ParticleSketch advances the particle field once per tick.
type ParticleSketch struct {
	field *particles.Field
	bell  Bell
}

// NewParticleSketch wraps field. bell may be nil for a silent sketch.
func NewParticleSketch(field *particles.Field, bell Bell) *ParticleSketch {
	return &ParticleSketch{field: field, bell: bell}
}

func (s *ParticleSketch) Name() string { return "particles" }

func (s *ParticleSketch) Help() string { return "Space: pause, Esc/Q: quit" }

func (s *ParticleSketch) Update(Input) error {
	bounces := s.field.Advance()
	if bounces > 0 && s.bell != nil {
		s.bell.Ring(sound.BouncePitch(bounces, config.ChimeBaseFreq, config.ChimeStepFreq, config.ChimeMaxFreq))
	}
	return nil
}

// Close silences the bell when it can be silenced.
func (s *ParticleSketch) Close() error {
	if c, ok := s.bell.(interface{ Close() }); ok {
		c.Close()
	}
	return nil
}

func (s *ParticleSketch) Draw(c canvas.Canvas) {
	s.field.Draw(c)
	if s.bell != nil {
		drawScope(c, s.bell.Tap().Snapshot(scopeSamples), scopeX, scopeY, scopeW, scopeH)
	}
}

// GridSketch animates the noise grid. The frame counter always runs;
// the grid ignores it while animation is off.
type GridSketch struct {
	grid  *grid.Grid
	frame int
}

func NewGridSketch(g *grid.Grid) *GridSketch {
	return &GridSketch{grid: g}
}

func (s *GridSketch) Name() string { return "grid" }

func (s *GridSketch) Help() string {
	return "Arrows: size, A: animate, C: cap (" + s.grid.Params.LineCap.String() + "), T: tint, +/-: speed, [/]: amplitude, ,/.: frequency"
}

func (s *GridSketch) Update(in Input) error {
	p := &s.grid.Params
	switch {
	case in.JustPressed(ebiten.KeyArrowRight):
		p.AdjustColumns(1)
	case in.JustPressed(ebiten.KeyArrowLeft):
		p.AdjustColumns(-1)
	case in.JustPressed(ebiten.KeyArrowDown):
		p.AdjustRows(1)
	case in.JustPressed(ebiten.KeyArrowUp):
		p.AdjustRows(-1)
	case in.JustPressed(ebiten.KeyA):
		p.ToggleAnimate(s.frame)
	case in.JustPressed(ebiten.KeyC):
		p.CycleCap()
	case in.JustPressed(ebiten.KeyT):
		p.Tint = !p.Tint
	case in.JustPressed(ebiten.KeyEqual):
		p.AdjustSpeed(10)
	case in.JustPressed(ebiten.KeyMinus):
		p.AdjustSpeed(-10)
	case in.JustPressed(ebiten.KeyBracketRight):
		p.AdjustAmplitude(0.05)
	case in.JustPressed(ebiten.KeyBracketLeft):
		p.AdjustAmplitude(-0.05)
	case in.JustPressed(ebiten.KeyPeriod):
		p.AdjustFrequency(frequencyStep)
	case in.JustPressed(ebiten.KeyComma):
		p.AdjustFrequency(-frequencyStep)
	}
	s.frame++
	return nil
}

func (s *GridSketch) Draw(c canvas.Canvas) {
	s.grid.Draw(c, s.frame)
}

// Prompt asks the user for a new text; ok is false when they cancel.
type Prompt func(current string) (text string, ok bool, err error)

// ZenityPrompt asks through a native entry dialog.
func ZenityPrompt(current string) (string, bool, error) {
	text, err := zenity.Entry("Text to render",
		zenity.Title("Glyph text"),
		zenity.EntryText(current),
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", false, nil
		}
		return "", false, err
	}
	return text, true, nil
}

// GlyphSketch re-renders the mosaic when a key is released: the key's
// text replaces the rendered text, and Enter opens a prompt.
type GlyphSketch struct {
	sketch *glyph.Sketch
	prompt Prompt
}

func NewGlyphSketch(s *glyph.Sketch, prompt Prompt) *GlyphSketch {
	return &GlyphSketch{sketch: s, prompt: prompt}
}

func (s *GlyphSketch) Name() string { return "glyph" }

func (s *GlyphSketch) Help() string { return "Type a key to render it, Enter: enter text, Esc: quit" }

func (s *GlyphSketch) TakesText() bool { return true }

func (s *GlyphSketch) Update(in Input) error {
	for _, k := range in.JustReleased() {
		if k == ebiten.KeyEscape {
			continue
		}
		if k == ebiten.KeyEnter || k == ebiten.KeyNumpadEnter {
			if s.prompt == nil {
				continue
			}
			text, ok, err := s.prompt(s.sketch.Text())
			if err != nil {
				return err
			}
			if !ok || text == "" {
				continue
			}
			if err := s.sketch.SetText(text); err != nil {
				return err
			}
			continue
		}
		if err := s.sketch.SetText(keyText(k)); err != nil {
			return err
		}
	}
	return nil
}

func (s *GlyphSketch) Draw(c canvas.Canvas) {
	s.sketch.Draw(c)
}
