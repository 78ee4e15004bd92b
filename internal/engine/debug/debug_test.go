package debug

import (
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/volview/pkg/math"
)

func TestSliceMontageLayout(t *testing.T) {
	const size = 2
	// Voxel value encodes its own index
	data := make([]uint8, size*size*size)
	for i := range data {
		data[i] = uint8(i * 10)
	}

	img, err := SliceMontage(data, size, 2, 3)
	if err != nil {
		t.Fatalf("SliceMontage: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 6 {
		t.Fatalf("bounds = %v, want 12x6", b)
	}

	tests := []struct {
		x, y int
		want uint8
	}{
		{0, 0, 0},   // k=0 i=0 j=0
		{3, 0, 10},  // k=0 i=1 j=0
		{0, 3, 20},  // k=0 i=0 j=1
		{5, 5, 30},  // k=0 i=1 j=1
		{6, 0, 40},  // k=1 i=0 j=0
		{11, 5, 70}, // k=1 i=1 j=1
	}
	for _, tt := range tests {
		if got := img.GrayAt(tt.x, tt.y).Y; got != tt.want {
			t.Errorf("pixel (%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestSliceMontageWraps(t *testing.T) {
	const size = 3
	img, err := SliceMontage(make([]uint8, size*size*size), size, 2, 1)
	if err != nil {
		t.Fatalf("SliceMontage: %v", err)
	}
	// Three slices on two columns need two rows
	if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 6 {
		t.Errorf("bounds = %v, want 6x6", b)
	}
}

func TestSliceMontageSizeMismatch(t *testing.T) {
	if _, err := SliceMontage(make([]uint8, 7), 2, 1, 1); !errors.Is(err, ErrVolumeSize) {
		t.Errorf("error = %v, want ErrVolumeSize", err)
	}
	if _, err := SliceMontage(nil, 0, 1, 1); !errors.Is(err, ErrVolumeSize) {
		t.Errorf("error = %v, want ErrVolumeSize", err)
	}
}

func TestWritePNG(t *testing.T) {
	img, err := SliceMontage([]uint8{0, 64, 128, 255, 1, 2, 3, 4}, 2, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "out", "slices.png")
	if err := WritePNG(path, img); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding written PNG: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("decoded bounds %v, want %v", decoded.Bounds(), img.Bounds())
	}
}

func TestBoxWireframe(t *testing.T) {
	v := BoxWireframe(math.Vec3{X: -1, Y: -2, Z: -3}, math.Vec3{X: 1, Y: 2, Z: 3})
	if len(v) != 24*3 {
		t.Fatalf("len = %d, want 72", len(v))
	}
	for i := 0; i < len(v); i += 3 {
		if (v[i] != -1 && v[i] != 1) || (v[i+1] != -2 && v[i+1] != 2) || (v[i+2] != -3 && v[i+2] != 3) {
			t.Errorf("vertex %d = (%v, %v, %v) is not a corner", i/3, v[i], v[i+1], v[i+2])
		}
	}
	// Every edge changes exactly one axis
	for e := 0; e < 12; e++ {
		a, b := v[e*6:e*6+3], v[e*6+3:e*6+6]
		diff := 0
		for k := 0; k < 3; k++ {
			if a[k] != b[k] {
				diff++
			}
		}
		if diff != 1 {
			t.Errorf("edge %d changes %d axes", e, diff)
		}
	}
}

func TestUnitCube(t *testing.T) {
	for _, c := range UnitCube() {
		if c != 0.5 && c != -0.5 {
			t.Fatalf("unit cube coordinate %v", c)
		}
	}
}
