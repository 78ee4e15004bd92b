// Package manip applies view-aligned pointer edits to scene node transforms.
//
// Rotation and translation are performed in a frame where the node is
// temporarily aligned with world space, so dragging matches what the camera
// shows no matter how the node's ancestors are rotated or scaled. Scale is
// applied last, in the node's own local space.
package manip

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/volview/internal/engine/camera"
	"github.com/Faultbox/volview/internal/engine/input"
	"github.com/Faultbox/volview/pkg/math"
)

// ErrSingularWorldAlignment is returned when a node's world rotation/scale
// cannot be inverted, for example because an ancestor has zero scale.
var ErrSingularWorldAlignment = errors.New("singular world alignment")

// Drag sensitivities.
const (
	RotateDegreesPerUnit  = 10.0
	TranslateUnitsPerUnit = 0.75
)

// Target is a scene node whose local transform can be edited.
type Target interface {
	Transform() math.Mat4
	SetTransform(m math.Mat4)
	// WorldTransform returns the node's world transform, or false for a
	// root node.
	WorldTransform() (math.Mat4, bool)
}

// Delta holds the per-frame edit matrices. Inactive edits are identity.
type Delta struct {
	Scale     math.Mat4
	Rotate    math.Mat4
	Translate math.Mat4
	Active    bool
}

// Deltas derives the edit matrices for one frame of input.
func Deltas(in input.Frame, dt float32, b camera.Basis) Delta {
	d := Delta{
		Scale:     math.Identity(),
		Rotate:    math.Identity(),
		Translate: math.Identity(),
	}

	if in.Zoom() {
		f := 1 + in.DY*dt
		d.Scale = math.Scale(f, f, f)
		d.Active = true
	}

	if in.Rotate() {
		aboutUp := math.RotateAxis(b.Up, radians(RotateDegreesPerUnit*in.DX*dt))
		aboutRight := math.RotateAxis(b.Right, radians(RotateDegreesPerUnit*in.DY*dt))
		d.Rotate = aboutRight.Mul(aboutUp)
		d.Active = true
	}

	if in.Pan() {
		v := b.Right.Scale(TranslateUnitsPerUnit * in.DX * dt).
			Add(b.Up.Scale(-TranslateUnitsPerUnit * in.DY * dt))
		d.Translate = math.TranslateVec(v)
		d.Active = true
	}

	return d
}

// Compose returns the new local transform for a node with the given local
// and world transforms. hasWorld is false for a root node, whose world
// alignment is identity.
//
//	local' = local * scale * W^-1 * translate * rotate * W
//
// where W is the world transform with its translation removed.
func Compose(local, world math.Mat4, hasWorld bool, d Delta) (math.Mat4, error) {
	align := math.Identity()
	unalign := math.Identity()

	if hasWorld {
		align = world.WithoutTranslation()
		inv, err := align.Inverse()
		if err != nil {
			return math.Mat4{}, fmt.Errorf("%w: %v", ErrSingularWorldAlignment, err)
		}
		unalign = inv
	}

	m := local.
		Mul(d.Scale).
		Mul(unalign).
		Mul(d.Translate).
		Mul(d.Rotate).
		Mul(align)

	if !m.IsFinite() {
		return math.Mat4{}, fmt.Errorf("%w: non-finite result", ErrSingularWorldAlignment)
	}
	return m, nil
}

// Controller edits the local transform of one node per frame.
type Controller struct{}

// NewController creates a node transform controller.
func NewController() *Controller {
	return &Controller{}
}

// Advance applies one frame of input to t and writes the new local
// transform back. It returns the transform and whether it changed. On error
// t is left untouched.
func (c *Controller) Advance(t Target, b camera.Basis, in input.Frame, dt float32) (math.Mat4, bool, error) {
	local := t.Transform()

	if in.Idle() {
		return local, false, nil
	}
	if err := in.Check(dt); err != nil {
		return local, false, err
	}

	d := Deltas(in, dt, b)

	world, hasWorld := t.WorldTransform()
	m, err := Compose(local, world, hasWorld, d)
	if err != nil {
		return local, false, err
	}

	t.SetTransform(m)
	return m, true, nil
}

func radians(deg float32) float32 {
	return deg * math32.Pi / 180
}
