package noise

import (
	"errors"
	"fmt"
)

// ErrInvalidSize is returned for a volume edge length below 1.
var ErrInvalidSize = errors.New("invalid volume size")

// Quantize maps a sample to an 8-bit density: v*256 clamped to [0, 255].
func Quantize(v float64) uint8 {
	scaled := v * 256
	switch {
	case scaled <= 0:
		return 0
	case scaled >= 255:
		return 255
	default:
		return uint8(scaled)
	}
}

// Volume samples s on a size^3 grid with the given frequency and packs the
// quantized values x-fastest: index = i + j*size + k*size*size.
func Volume(s Sampler, size int, frequency float64) ([]uint8, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	data := make([]uint8, size*size*size)
	for k := 0; k < size; k++ {
		for j := 0; j < size; j++ {
			for i := 0; i < size; i++ {
				v, err := s.Sample(float64(i)*frequency, float64(j)*frequency, float64(k)*frequency)
				if err != nil {
					return nil, fmt.Errorf("sampling voxel (%d, %d, %d): %w", i, j, k, err)
				}
				data[i+j*size+k*size*size] = Quantize(v)
			}
		}
	}
	return data, nil
}
