package noise

import (
	"fmt"
	"math/rand"

	"github.com/aquilax/go-perlin"
)

// FractalConfig configures a Fractal sampler.
type FractalConfig struct {
	Alpha   float64 // weight of each octave; noisier as it approaches 1
	Beta    float64 // frequency step between octaves
	Octaves int32
	Seed    int64
}

// DefaultFractalConfig returns the usual alpha=2, beta=2, three octaves.
func DefaultFractalConfig(seed int64) FractalConfig {
	return FractalConfig{
		Alpha:   2,
		Beta:    2,
		Octaves: 3,
		Seed:    seed,
	}
}

// Fractal is a multi-octave Perlin sampler.
type Fractal struct {
	p *perlin.Perlin
}

var _ Sampler = (*Fractal)(nil)

// NewFractal creates a fractal sampler.
func NewFractal(cfg FractalConfig) *Fractal {
	return &Fractal{
		p: perlin.NewPerlinRandSource(cfg.Alpha, cfg.Beta, cfg.Octaves, rand.NewSource(cfg.Seed)),
	}
}

// Sample returns the summed octaves at (x, y, z).
func (f *Fractal) Sample(x, y, z float64) (float64, error) {
	if !finite(x) || !finite(y) || !finite(z) {
		return 0, fmt.Errorf("%w: (%v, %v, %v)", ErrInvalidSample, x, y, z)
	}
	return f.p.Noise3D(x, y, z), nil
}
