// Package sound plays short chimes when particles bounce and keeps a tap of
// the mixed output for the on-screen scope.
package sound

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

const (
	toneGain  = 0.3
	toneDecay = 6.0 // envelope time constants over the tone length
)

// Tone returns a decaying sine of exactly sr.N(d) stereo samples.
func Tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	total := sr.N(d)
	pos := 0
	step := 2 * math.Pi * freq / float64(sr)
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				break
			}
			env := math.Exp(-toneDecay * float64(pos) / float64(total))
			v := toneGain * env * math.Sin(step*float64(pos))
			samples[i][0] = v
			samples[i][1] = v
			pos++
			n++
		}
		return n, true
	})
}

// BouncePitch maps the number of reflections in one frame to a frequency.
func BouncePitch(reflections int, base, step, max float64) float64 {
	f := base + step*float64(reflections)
	if f > max {
		return max
	}
	return f
}
