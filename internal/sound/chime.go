package sound

import (
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const chimeLength = 180 * time.Millisecond

// Chime mixes short tones into the speaker output. The mixer feeds a Tap,
// which the speaker drains.
type Chime struct {
	sr     beep.SampleRate
	mixer  *beep.Mixer
	tap    *Tap
	lock   func()
	unlock func()
}

func newChime(sr beep.SampleRate, tapSize int, lock, unlock func()) *Chime {
	mixer := &beep.Mixer{}
	return &Chime{
		sr:     sr,
		mixer:  mixer,
		tap:    NewTap(mixer, tapSize),
		lock:   lock,
		unlock: unlock,
	}
}

// NewChime initializes the speaker and starts playing the (silent) mixer.
func NewChime(sr beep.SampleRate, tapSize int) (*Chime, error) {
	c := newChime(sr, tapSize, speaker.Lock, speaker.Unlock)
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(c.tap)
	return c, nil
}

// Ring adds one tone at freq Hz.
func (c *Chime) Ring(freq float64) {
	c.lock()
	c.mixer.Add(Tone(c.sr, freq, chimeLength))
	c.unlock()
}

// Active reports how many tones are still sounding.
func (c *Chime) Active() int {
	c.lock()
	defer c.unlock()
	return c.mixer.Len()
}

// Tap exposes the mixed output for drawing.
func (c *Chime) Tap() *Tap { return c.tap }

// Close silences all tones.
func (c *Chime) Close() {
	c.lock()
	c.mixer.Clear()
	c.unlock()
}
