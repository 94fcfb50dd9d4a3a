package sound

import (
	"math"
	"testing"
	"time"

	"github.com/faiface/beep"
)

func drain(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestToneLength(t *testing.T) {
	sr := beep.SampleRate(44100)
	d := 100 * time.Millisecond

	if got, want := drain(Tone(sr, 440, d)), sr.N(d); got != want {
		t.Errorf("Expected %d samples, got %d", want, got)
	}
}

func TestToneRangeAndDecay(t *testing.T) {
	sr := beep.SampleRate(8000)
	tone := Tone(sr, 500, 200*time.Millisecond)
	samples := make([][2]float64, sr.N(200*time.Millisecond))
	n, ok := tone.Stream(samples)
	if !ok || n != len(samples) {
		t.Fatalf("Expected %d samples, got %d (ok=%v)", len(samples), n, ok)
	}

	peak := func(s [][2]float64) float64 {
		m := 0.0
		for _, v := range s {
			if v[0] < -1 || v[0] > 1 {
				t.Fatalf("sample %v out of range", v[0])
			}
			if v[0] != v[1] {
				t.Fatalf("Expected identical channels, got %v", v)
			}
			m = math.Max(m, math.Abs(v[0]))
		}
		return m
	}
	head := peak(samples[:n/4])
	tail := peak(samples[3*n/4:])
	if head <= tail {
		t.Errorf("Expected decay, head peak %v tail peak %v", head, tail)
	}
	if head > toneGain {
		t.Errorf("Expected peak below %v, got %v", toneGain, head)
	}
}

func TestBouncePitch(t *testing.T) {
	tests := []struct {
		n    int
		want float64
	}{
		{1, 260},
		{4, 380},
		{100, 880},
	}
	for _, tt := range tests {
		if got := BouncePitch(tt.n, 220, 40, 880); got != tt.want {
			t.Errorf("BouncePitch(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

// counter emits 1, 2, 3, ... on the left channel.
type counter struct{ next float64 }

func (c *counter) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		c.next++
		samples[i] = [2]float64{c.next, 0}
	}
	return len(samples), true
}

func (c *counter) Err() error { return nil }

func TestTapSnapshot(t *testing.T) {
	tap := NewTap(&counter{}, 8)

	if got := tap.Snapshot(4); len(got) != 0 {
		t.Fatalf("Expected empty snapshot before streaming, got %v", got)
	}

	tap.Stream(make([][2]float64, 5))
	got := tap.Snapshot(3)
	if len(got) != 3 || got[0][0] != 3 || got[2][0] != 5 {
		t.Errorf("Expected [3 4 5], got %v", got)
	}

	// wrap the ring
	tap.Stream(make([][2]float64, 6))
	got = tap.Snapshot(100)
	if len(got) != 8 {
		t.Fatalf("Expected snapshot bounded by ring size, got %d", len(got))
	}
	for i, s := range got {
		if want := float64(4 + i); s[0] != want {
			t.Errorf("sample %d: expected %v, got %v", i, want, s[0])
		}
	}
}

func TestChimeRing(t *testing.T) {
	c := newChime(beep.SampleRate(8000), 1024, func() {}, func() {})
	if c.Active() != 0 {
		t.Fatalf("Expected silent mixer")
	}

	c.Ring(440)
	c.Ring(660)
	if c.Active() != 2 {
		t.Fatalf("Expected 2 active tones, got %d", c.Active())
	}

	buf := make([][2]float64, 256)
	c.Tap().Stream(buf)
	heard := false
	for _, s := range c.Tap().Snapshot(256) {
		if s[0] != 0 {
			heard = true
			break
		}
	}
	if !heard {
		t.Error("Expected tap to record the tones")
	}

	c.Close()
	if c.Active() != 0 {
		t.Errorf("Expected Close to clear the mixer, got %d", c.Active())
	}
}
