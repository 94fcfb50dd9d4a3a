// Package particles simulates a fixed population of bouncing circles and
// draws a proximity network between them.
package particles

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/iburimskiy/generative-sketches/internal/canvas"
	"github.com/iburimskiy/generative-sketches/internal/config"
)

// ErrInvalidConfig is returned by New for a non-positive count or a canvas
// too small to place a particle on.
var ErrInvalidConfig = errors.New("invalid particle field config")

var (
	Background = color.White
	Fill       = color.White
	Ink        = color.Black
)

// Rand is the random source used to seed the field. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Point is a 2D position or velocity.
type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

type Particle struct {
	Position Point
	Velocity Point
	Radius   float64
}

// Field owns the particles of one running sketch. The particle order is
// fixed at creation.
type Field struct {
	particles     []Particle
	width, height float64
}

// New places count particles on a width x height canvas.
func New(count, width, height int, rng Rand) (*Field, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: count %d", ErrInvalidConfig, count)
	}
	if width < 2*config.ParticleMaxRadius || height < 2*config.ParticleMaxRadius {
		return nil, fmt.Errorf("%w: canvas %dx%d", ErrInvalidConfig, width, height)
	}

	f := &Field{
		particles: make([]Particle, 0, count),
		width:     float64(width),
		height:    float64(height),
	}
	for i := 0; i < count; i++ {
		radius := randomInt(rng, config.ParticleMinRadius, config.ParticleMaxRadius)
		velocity := Point{
			X: randomReal(rng, -1, 1),
			Y: randomReal(rng, -1, 1),
		}
		position := Point{
			X: float64(randomInt(rng, radius, width-radius)),
			Y: float64(randomInt(rng, radius, height-radius)),
		}
		f.particles = append(f.particles, Particle{
			Position: position,
			Velocity: velocity,
			Radius:   float64(radius),
		})
	}
	return f, nil
}

// FromParticles builds a field around an explicit population.
func FromParticles(width, height float64, ps []Particle) (*Field, error) {
	if len(ps) == 0 || width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %d particles on %gx%g", ErrInvalidConfig, len(ps), width, height)
	}
	for i, p := range ps {
		if p.Radius <= 0 {
			return nil, fmt.Errorf("%w: particle %d radius %g", ErrInvalidConfig, i, p.Radius)
		}
	}
	return &Field{
		particles: append([]Particle(nil), ps...),
		width:     width,
		height:    height,
	}, nil
}

// randomInt draws uniformly from [min, max].
func randomInt(rng Rand, min, max int) int {
	return min + rng.Intn(max-min+1)
}

// randomReal draws uniformly from [min, max).
func randomReal(rng Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}

func (f *Field) Len() int { return len(f.particles) }

// Particles returns a copy of the current population.
func (f *Field) Particles() []Particle {
	return append([]Particle(nil), f.particles...)
}

// Advance moves every particle one step and reflects velocity components
// whose axis left the canvas. Positions are not clamped, so a particle can
// sit past an edge for one step. Returns the number of reflected axes.
func (f *Field) Advance() int {
	for i := range f.particles {
		p := &f.particles[i]
		p.Position = p.Position.Add(p.Velocity)
	}

	bounces := 0
	for i := range f.particles {
		p := &f.particles[i]
		if p.Position.X <= 0 || p.Position.X >= f.width {
			p.Velocity.X = -p.Velocity.X
			bounces++
		}
		if p.Position.Y <= 0 || p.Position.Y >= f.height {
			p.Velocity.Y = -p.Velocity.Y
			bounces++
		}
	}
	return bounces
}

// LineWidth maps a pair distance to its edge width: maxLineWidth when the
// particles coincide, falling to 0 at maxDistance.
func LineWidth(distance, maxDistance, maxLineWidth float64) float64 {
	return math.Abs(distance-maxDistance) / maxDistance * maxLineWidth
}

// DrawConnections strokes an edge between every unordered pair closer than
// maxDistance. Each pair is visited once, outer index first.
func (f *Field) DrawConnections(c canvas.Canvas, maxDistance, maxLineWidth float64) {
	for i := 0; i < len(f.particles); i++ {
		a := f.particles[i].Position
		for j := i + 1; j < len(f.particles); j++ {
			b := f.particles[j].Position
			d := a.Distance(b)
			if d > maxDistance {
				continue
			}
			c.StrokeLine(a.X, a.Y, b.X, b.Y, LineWidth(d, maxDistance, maxLineWidth), Ink)
		}
	}
}

// DrawParticles fills each particle and outlines it with a fixed-width stroke.
func (f *Field) DrawParticles(c canvas.Canvas) {
	for _, p := range f.particles {
		c.FillCircle(p.Position.X, p.Position.Y, p.Radius, Fill)
		c.StrokeCircle(p.Position.X, p.Position.Y, p.Radius, config.ParticleOutline, Ink)
	}
}

// Draw renders the current state without advancing it.
func (f *Field) Draw(c canvas.Canvas) {
	c.Clear(Background)
	f.DrawConnections(c, config.LineMaxDistance, config.LineMaxWidth)
	f.DrawParticles(c)
}

// Frame runs one full frame: advance, then draw edges under the particles.
func (f *Field) Frame(c canvas.Canvas) int {
	bounces := f.Advance()
	f.Draw(c)
	return bounces
}
