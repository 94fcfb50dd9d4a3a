package game

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is the keyboard state for the current tick.
type Input interface {
	JustPressed(k ebiten.Key) bool
	JustReleased() []ebiten.Key
}

type keyboard struct {
	released []ebiten.Key
}

func (kb *keyboard) JustPressed(k ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(k)
}

func (kb *keyboard) JustReleased() []ebiten.Key {
	kb.released = inpututil.AppendJustReleasedKeys(kb.released[:0])
	return kb.released
}

// keyText is the text a released key types: letters and digits as
// themselves, anything else by its upper-cased key name.
func keyText(k ebiten.Key) string {
	name := k.String()
	switch {
	case k == ebiten.KeySpace:
		return " "
	case strings.HasPrefix(name, "Digit") && len(name) == len("Digit0"):
		return strings.TrimPrefix(name, "Digit")
	}
	return strings.ToUpper(name)
}
