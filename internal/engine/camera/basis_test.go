package camera

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"

	"github.com/Faultbox/volview/pkg/math"
)

const tol = 1e-5

func checkOrthonormal(t *testing.T, b Basis) {
	t.Helper()
	for name, v := range map[string]math.Vec3{"forward": b.Forward, "right": b.Right, "up": b.Up} {
		if l := v.Length(); math32.Abs(l-1) > tol {
			t.Errorf("%s length = %v, want 1", name, l)
		}
	}
	if d := b.Forward.Dot(b.Right); math32.Abs(d) > tol {
		t.Errorf("forward·right = %v, want 0", d)
	}
	if d := b.Forward.Dot(b.Up); math32.Abs(d) > tol {
		t.Errorf("forward·up = %v, want 0", d)
	}
	if d := b.Right.Dot(b.Up); math32.Abs(d) > tol {
		t.Errorf("right·up = %v, want 0", d)
	}
}

func TestComputeBasisOrthonormal(t *testing.T) {
	tests := []struct {
		name        string
		eye, center math.Vec3
	}{
		{"front", math.Vec3{X: 0, Y: 0, Z: 5}, math.Vec3{}},
		{"default viewer", math.Vec3{X: 2, Y: 0.5, Z: -2}, math.Vec3{}},
		{"offset center", math.Vec3{X: -3, Y: 7, Z: 1}, math.Vec3{X: 1, Y: 2, Z: 3}},
		{"steep", math.Vec3{X: 0.01, Y: 10, Z: 0}, math.Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := ComputeBasis(tt.eye, tt.center)
			if err != nil {
				t.Fatalf("ComputeBasis: %v", err)
			}
			checkOrthonormal(t, b)

			want := tt.eye.Sub(tt.center).Normalize()
			if !b.Forward.ApproxEqual(want, tol) {
				t.Errorf("forward = %v, want %v", b.Forward, want)
			}
			// Right stays horizontal
			if math32.Abs(b.Right.Y) > tol {
				t.Errorf("right = %v, want no Y component", b.Right)
			}
		})
	}
}

func TestComputeBasisFront(t *testing.T) {
	b, err := ComputeBasis(math.Vec3{X: 0, Y: 0, Z: 5}, math.Vec3{})
	if err != nil {
		t.Fatalf("ComputeBasis: %v", err)
	}
	want := Basis{Forward: math.UnitZ, Right: math.UnitX, Up: math.UnitY}
	if b != want {
		t.Errorf("basis = %+v, want %+v", b, want)
	}
}

func TestComputeBasisDegenerate(t *testing.T) {
	tests := []struct {
		name        string
		eye, center math.Vec3
	}{
		{"straight down", math.Vec3{X: 0, Y: 5, Z: 0}, math.Vec3{}},
		{"straight up", math.Vec3{X: 0, Y: -5, Z: 0}, math.Vec3{}},
		{"eye at center", math.Vec3{X: 1, Y: 1, Z: 1}, math.Vec3{X: 1, Y: 1, Z: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := ComputeBasis(tt.eye, tt.center)
			if !errors.Is(err, ErrDegenerateBasis) {
				t.Fatalf("ComputeBasis error = %v, want ErrDegenerateBasis", err)
			}
			if b != (Basis{}) {
				t.Errorf("basis = %+v, want zero value on error", b)
			}
		})
	}
}

func TestComputeBasisWithFallback(t *testing.T) {
	b, err := ComputeBasisWithFallback(math.Vec3{X: 0, Y: 5, Z: 0}, math.Vec3{})
	if err != nil {
		t.Fatalf("ComputeBasisWithFallback: %v", err)
	}
	checkOrthonormal(t, b)

	if !b.Right.ApproxEqual(math.UnitX, tol) {
		t.Errorf("right = %v, want +X", b.Right)
	}
	if !b.Up.ApproxEqual(math.Vec3{X: 0, Y: 0, Z: -1}, tol) {
		t.Errorf("up = %v, want -Z", b.Up)
	}

	// Non-degenerate views are unaffected
	eye := math.Vec3{X: 2, Y: 0.5, Z: -2}
	strict, _ := ComputeBasis(eye, math.Vec3{})
	loose, err := ComputeBasisWithFallback(eye, math.Vec3{})
	if err != nil || strict != loose {
		t.Errorf("fallback changed a regular basis: %+v vs %+v (err %v)", loose, strict, err)
	}

	if _, err := ComputeBasisWithFallback(eye, eye); !errors.Is(err, ErrDegenerateBasis) {
		t.Errorf("eye at center error = %v, want ErrDegenerateBasis", err)
	}
}
