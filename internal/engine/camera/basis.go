package camera

import (
	"errors"
	"fmt"

	"github.com/Faultbox/volview/pkg/math"
)

// ErrDegenerateBasis is returned when eye and center coincide or the view
// direction is parallel to world up, leaving the right axis undefined.
var ErrDegenerateBasis = errors.New("degenerate view basis")

// parallelEpsilon is the minimum |cross(worldUp, forward)| for a usable right axis.
const parallelEpsilon = 1e-5

var (
	worldUp = math.UnitY

	// worldForward replaces worldUp as the reference when looking straight
	// up or down. A top-down view then has right = +X and up = -Z.
	worldForward = math.Vec3{X: 0, Y: 0, Z: -1}
)

// Basis is an orthonormal view-space frame. Forward points from center
// toward eye.
type Basis struct {
	Forward math.Vec3
	Right   math.Vec3
	Up      math.Vec3
}

// ComputeBasis derives the view basis for eye looking at center.
func ComputeBasis(eye, center math.Vec3) (Basis, error) {
	forward, err := eye.Sub(center).TryNormalize()
	if err != nil {
		return Basis{}, fmt.Errorf("%w: eye %v coincides with center", ErrDegenerateBasis, eye)
	}
	return basisFrom(forward, worldUp)
}

// ComputeBasisWithFallback is ComputeBasis, except that a view parallel to
// world up is resolved against world forward instead of failing.
func ComputeBasisWithFallback(eye, center math.Vec3) (Basis, error) {
	forward, err := eye.Sub(center).TryNormalize()
	if err != nil {
		return Basis{}, fmt.Errorf("%w: eye %v coincides with center", ErrDegenerateBasis, eye)
	}
	if isParallelToUp(forward) {
		return basisFrom(forward, worldForward)
	}
	return basisFrom(forward, worldUp)
}

func basisFrom(forward, reference math.Vec3) (Basis, error) {
	r := reference.Cross(forward)
	if r.Length() < parallelEpsilon {
		return Basis{}, fmt.Errorf("%w: forward %v is parallel to %v", ErrDegenerateBasis, forward, reference)
	}
	right := r.Normalize()
	up := forward.Cross(right).Normalize()

	return Basis{Forward: forward, Right: right, Up: up}, nil
}

func isParallelToUp(forward math.Vec3) bool {
	return worldUp.Cross(forward).Length() < parallelEpsilon
}
