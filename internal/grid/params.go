package grid

import (
	"errors"
	"fmt"

	"github.com/iburimskiy/generative-sketches/internal/canvas"
)

// ErrInvalidParams is returned when a parameter falls outside its range.
var ErrInvalidParams = errors.New("invalid grid params")

// Params controls the grid layout and the noise field driving it.
type Params struct {
	Columns   int
	Rows      int
	LineCap   canvas.LineCap
	ScaleMin  float64 // stroke width at noise -1
	ScaleMax  float64 // stroke width at noise +1
	Frequency float64
	Amplitude float64
	Frame     int // noise time used while Animate is off
	Animate   bool
	Speed     float64
	Tint      bool // color lines by noise value instead of black
}

// Ranges of the adjustable parameters.
const (
	MinCells, MaxCells         = 5, 50
	MinScaleMin, MaxScaleMin   = 0.1, 100
	MinScaleMax, MaxScaleMax   = 1, 100
	MinFrequency, MaxFrequency = -0.01, 0.01
	MinAmplitude, MaxAmplitude = 0, 0.5
	MinFrame, MaxFrame         = 1, 999
	MinSpeed, MaxSpeed         = 10, 100
)

// DefaultParams returns the startup parameters. ScaleMin is deliberately
// larger than ScaleMax, which makes strong noise draw thin lines. A frozen
// Frame of 0 sits below MinFrame and is accepted as "not yet chosen".
func DefaultParams() Params {
	return Params{
		Columns:   10,
		Rows:      10,
		LineCap:   canvas.CapButt,
		ScaleMin:  30,
		ScaleMax:  0.1,
		Frequency: 0.001,
		Amplitude: 0.2,
		Frame:     0,
		Animate:   true,
		Speed:     10,
	}
}

// Validate reports the first out-of-range parameter. The two scale
// defaults predate the ranges and are allowed as-is.
func (p Params) Validate() error {
	def := DefaultParams()
	switch {
	case p.Columns < MinCells || p.Columns > MaxCells:
		return fmt.Errorf("%w: columns %d", ErrInvalidParams, p.Columns)
	case p.Rows < MinCells || p.Rows > MaxCells:
		return fmt.Errorf("%w: rows %d", ErrInvalidParams, p.Rows)
	case p.LineCap < canvas.CapButt || p.LineCap > canvas.CapSquare:
		return fmt.Errorf("%w: line cap %d", ErrInvalidParams, p.LineCap)
	case p.ScaleMin != def.ScaleMin && (p.ScaleMin < MinScaleMin || p.ScaleMin > MaxScaleMin):
		return fmt.Errorf("%w: scale min %g", ErrInvalidParams, p.ScaleMin)
	case p.ScaleMax != def.ScaleMax && (p.ScaleMax < MinScaleMax || p.ScaleMax > MaxScaleMax):
		return fmt.Errorf("%w: scale max %g", ErrInvalidParams, p.ScaleMax)
	case p.Frequency < MinFrequency || p.Frequency > MaxFrequency:
		return fmt.Errorf("%w: frequency %g", ErrInvalidParams, p.Frequency)
	case p.Amplitude < MinAmplitude || p.Amplitude > MaxAmplitude:
		return fmt.Errorf("%w: amplitude %g", ErrInvalidParams, p.Amplitude)
	case p.Frame != 0 && (p.Frame < MinFrame || p.Frame > MaxFrame):
		return fmt.Errorf("%w: frame %d", ErrInvalidParams, p.Frame)
	case p.Speed < MinSpeed || p.Speed > MaxSpeed:
		return fmt.Errorf("%w: speed %g", ErrInvalidParams, p.Speed)
	}
	return nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// The adjusters below back the keyboard controls and clamp to range.

func (p *Params) AdjustColumns(delta int) {
	p.Columns = clampInt(p.Columns+delta, MinCells, MaxCells)
}

func (p *Params) AdjustRows(delta int) {
	p.Rows = clampInt(p.Rows+delta, MinCells, MaxCells)
}

func (p *Params) AdjustSpeed(delta float64) {
	p.Speed = clampFloat(p.Speed+delta, MinSpeed, MaxSpeed)
}

func (p *Params) AdjustAmplitude(delta float64) {
	p.Amplitude = clampFloat(p.Amplitude+delta, MinAmplitude, MaxAmplitude)
}

func (p *Params) AdjustFrequency(delta float64) {
	p.Frequency = clampFloat(p.Frequency+delta, MinFrequency, MaxFrequency)
}

// ToggleAnimate switches between live and frozen noise time. Freezing
// captures the current frame so the picture holds still.
func (p *Params) ToggleAnimate(current int) {
	p.Animate = !p.Animate
	if !p.Animate {
		p.Frame = clampInt(current%(MaxFrame+1), MinFrame, MaxFrame)
	}
}

func (p *Params) CycleCap() {
	p.LineCap = p.LineCap.Next()
}
