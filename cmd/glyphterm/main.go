// Command glyphterm renders the glyph mosaic in the terminal.
package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/generative-sketches/internal/canvas"
	"github.com/iburimskiy/generative-sketches/internal/config"
	"github.com/iburimskiy/generative-sketches/internal/term"
)

func main() {
	text := flag.String("text", config.GlyphText, "initial text")
	seed := flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("glyphterm: ")

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	faces, err := canvas.NewFaces(nil)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	app, err := term.NewApp(screen, faces, rand.New(rand.NewSource(*seed)), *text)
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}
	err = app.Run()
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}
