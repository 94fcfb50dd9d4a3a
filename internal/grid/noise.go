package grid

import (
	"github.com/aquilax/go-perlin"
)

// Noise is a 3D coherent noise source returning values in [-1, 1].
type Noise interface {
	Noise3D(x, y, z float64) float64
}

const (
	perlinAlpha   = 2
	perlinBeta    = 2
	perlinOctaves = 3
)

type perlinNoise struct {
	p *perlin.Perlin
}

// NewPerlin returns seeded Perlin noise.
func NewPerlin(seed int64) Noise {
	return perlinNoise{p: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed)}
}

func (n perlinNoise) Noise3D(x, y, z float64) float64 {
	return clampFloat(n.p.Noise3D(x, y, z), -1, 1)
}
