package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/faiface/beep"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/generative-sketches/internal/canvas"
	"github.com/iburimskiy/generative-sketches/internal/config"
	"github.com/iburimskiy/generative-sketches/internal/game"
	"github.com/iburimskiy/generative-sketches/internal/glyph"
	"github.com/iburimskiy/generative-sketches/internal/grid"
	"github.com/iburimskiy/generative-sketches/internal/particles"
	"github.com/iburimskiy/generative-sketches/internal/sound"
)

type options struct {
	sketch string
	count  int
	seed   int64
	sound  bool
	status bool
	text   string
	cap    string
	tint   bool
}

func parseFlags() options {
	var o options
	flag.StringVar(&o.sketch, "sketch", "particles", "sketch to run: particles, grid or glyph")
	flag.IntVar(&o.count, "count", config.ParticleCount, "number of particles")
	flag.Int64Var(&o.seed, "seed", 0, "random seed (0 picks one from the clock)")
	flag.BoolVar(&o.sound, "sound", false, "chime when particles bounce")
	flag.BoolVar(&o.status, "status", true, "show the status line")
	flag.StringVar(&o.text, "text", config.GlyphText, "initial glyph text")
	flag.StringVar(&o.cap, "cap", "butt", "grid line cap: butt, round or square")
	flag.BoolVar(&o.tint, "tint", false, "color grid lines by noise value")
	flag.Parse()

	if o.seed == 0 {
		o.seed = time.Now().UnixNano()
	}
	return o
}

func newSketch(o options, faces *canvas.Faces) (game.Sketch, error) {
	rng := rand.New(rand.NewSource(o.seed))

	switch o.sketch {
	case "particles":
		field, err := particles.New(o.count, config.CanvasWidth, config.CanvasHeight, rng)
		if err != nil {
			return nil, err
		}
		if !o.sound {
			return game.NewParticleSketch(field, nil), nil
		}
		chime, err := sound.NewChime(beep.SampleRate(config.ChimeSampleRate), config.ChimeTapSize)
		if err != nil {
			// run silent rather than not at all
			log.Printf("sound disabled: %v", err)
			return game.NewParticleSketch(field, nil), nil
		}
		return game.NewParticleSketch(field, chime), nil

	case "grid":
		p := grid.DefaultParams()
		lineCap, ok := canvas.ParseLineCap(o.cap)
		if !ok {
			return nil, fmt.Errorf("%w: line cap %q", grid.ErrInvalidParams, o.cap)
		}
		p.LineCap = lineCap
		p.Tint = o.tint
		g, err := grid.New(config.CanvasWidth, config.CanvasHeight, p, grid.NewPerlin(o.seed))
		if err != nil {
			return nil, err
		}
		return game.NewGridSketch(g), nil

	case "glyph":
		s, err := glyph.NewSketch(config.CanvasWidth, config.CanvasHeight, config.GlyphCellSize, o.text, faces, rng)
		if err != nil {
			return nil, err
		}
		return game.NewGlyphSketch(s, game.ZenityPrompt), nil
	}
	return nil, fmt.Errorf("unknown sketch %q", o.sketch)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("sketches: ")

	o := parseFlags()
	faces, err := canvas.NewFaces(nil)
	if err != nil {
		log.Fatal(err)
	}
	s, err := newSketch(o, faces)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("running %s (seed %d)", s.Name(), o.seed)

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Sketches - " + s.Name() + " - Esc: Quit")

	g := game.New(s, faces, o.status)
	err = ebiten.RunGame(g)
	if c, ok := s.(io.Closer); ok {
		c.Close()
	}
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
