package noise

import (
	"errors"
	"fmt"
)

// Generator names accepted by NewSampler.
const (
	GeneratorGradient = "gradient"
	GeneratorFractal  = "fractal"
)

// ErrUnknownGenerator is returned by NewSampler for an unrecognised name.
var ErrUnknownGenerator = errors.New("unknown noise generator")

// NewSampler builds the named generator. cfg.Seed seeds either kind; the
// remaining fields only apply to the fractal generator.
func NewSampler(name string, cfg FractalConfig) (Sampler, error) {
	switch name {
	case GeneratorGradient, "":
		return NewSeeded(cfg.Seed), nil
	case GeneratorFractal:
		return NewFractal(cfg), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownGenerator, name)
	}
}
