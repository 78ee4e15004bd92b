package noise

import (
	"errors"
	"testing"
)

// coordSampler encodes the sample point so packing order can be checked.
type coordSampler struct{}

func (coordSampler) Sample(x, y, z float64) (float64, error) {
	return (x + 4*y + 16*z) / 256, nil
}

type failingSampler struct{}

func (failingSampler) Sample(x, y, z float64) (float64, error) {
	return 0, ErrInvalidSample
}

func TestQuantize(t *testing.T) {
	tests := []struct {
		v    float64
		want uint8
	}{
		{-0.5, 0},
		{0, 0},
		{0.5, 128},
		{0.99, 253},
		{1, 255},
		{3, 255},
	}
	for _, tt := range tests {
		if got := Quantize(tt.v); got != tt.want {
			t.Errorf("Quantize(%v) = %d, want %d", tt.v, got, tt.want)
		}
	}
}

func TestVolumePackingOrder(t *testing.T) {
	const size = 4
	data, err := Volume(coordSampler{}, size, 1)
	if err != nil {
		t.Fatalf("Volume: %v", err)
	}
	if len(data) != size*size*size {
		t.Fatalf("len = %d, want %d", len(data), size*size*size)
	}

	for k := 0; k < size; k++ {
		for j := 0; j < size; j++ {
			for i := 0; i < size; i++ {
				want := uint8(i + 4*j + 16*k)
				if got := data[i+j*size+k*size*size]; got != want {
					t.Fatalf("voxel (%d,%d,%d) = %d, want %d", i, j, k, got, want)
				}
			}
		}
	}
}

func TestVolumeAtLatticePointsIsZero(t *testing.T) {
	// Gradient noise vanishes on integer coordinates.
	data, err := Volume(NewSeeded(1), 8, 1)
	if err != nil {
		t.Fatalf("Volume: %v", err)
	}
	for i, v := range data {
		if v != 0 {
			t.Fatalf("voxel %d = %d, want 0", i, v)
		}
	}
}

func TestVolumeMatchesSample(t *testing.T) {
	f := NewSeeded(21)
	const size, freq = 6, 0.3
	data, err := Volume(f, size, freq)
	if err != nil {
		t.Fatalf("Volume: %v", err)
	}

	nonZero := 0
	for k := 0; k < size; k++ {
		for j := 0; j < size; j++ {
			for i := 0; i < size; i++ {
				v, _ := f.Sample(float64(i)*freq, float64(j)*freq, float64(k)*freq)
				got := data[i+j*size+k*size*size]
				if got != Quantize(v) {
					t.Fatalf("voxel (%d,%d,%d) = %d, want %d", i, j, k, got, Quantize(v))
				}
				if got != 0 {
					nonZero++
				}
			}
		}
	}
	if nonZero == 0 {
		t.Error("expected some non-zero density off the lattice")
	}
}

func TestVolumeErrors(t *testing.T) {
	if _, err := Volume(coordSampler{}, 0, 1); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Volume(size 0) error = %v, want ErrInvalidSize", err)
	}
	if _, err := Volume(failingSampler{}, 2, 1); !errors.Is(err, ErrInvalidSample) {
		t.Errorf("Volume(failing) error = %v, want ErrInvalidSample", err)
	}
}

func TestNewSampler(t *testing.T) {
	cfg := DefaultFractalConfig(5)

	s, err := NewSampler(GeneratorGradient, cfg)
	if err != nil {
		t.Fatalf("NewSampler(gradient): %v", err)
	}
	if _, ok := s.(*Field); !ok {
		t.Errorf("gradient sampler is %T, want *Field", s)
	}
	a, _ := s.Sample(0.3, 0.6, 0.9)
	b, _ := NewSeeded(5).Sample(0.3, 0.6, 0.9)
	if a != b {
		t.Errorf("gradient sampler ignores seed: %v != %v", a, b)
	}

	f, err := NewSampler(GeneratorFractal, cfg)
	if err != nil {
		t.Fatalf("NewSampler(fractal): %v", err)
	}
	if _, ok := f.(*Fractal); !ok {
		t.Errorf("fractal sampler is %T, want *Fractal", f)
	}

	if _, err := NewSampler("simplex", cfg); !errors.Is(err, ErrUnknownGenerator) {
		t.Errorf("unknown generator error = %v, want ErrUnknownGenerator", err)
	}
}
