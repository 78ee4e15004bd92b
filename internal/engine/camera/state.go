// Package camera provides the view-space basis and the arcball camera controller.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/volview/pkg/math"
)

// Pose is the part of the camera the controller edits.
type Pose struct {
	Eye    math.Vec3
	Center math.Vec3
}

// State holds the camera shared with the renderer.
// Projection parameters are set once; Eye and Center are only changed by a Controller.
type State struct {
	Eye    math.Vec3
	Center math.Vec3

	FovY   float32 // vertical field of view, degrees
	Aspect float32 // width / height
	Near   float32
	Far    float32
}

// NewState creates a camera at eye looking at center with default projection.
func NewState(eye, center math.Vec3) *State {
	return &State{
		Eye:    eye,
		Center: center,
		FovY:   60,
		Aspect: 16.0 / 9.0,
		Near:   0.01,
		Far:    10.0,
	}
}

// Pose returns the current eye and center.
func (s *State) Pose() Pose {
	return Pose{Eye: s.Eye, Center: s.Center}
}

// Projection returns the perspective projection matrix.
func (s *State) Projection() math.Mat4 {
	return math.Perspective(radians(s.FovY), s.Aspect, s.Near, s.Far)
}

func radians(deg float32) float32 {
	return deg * math32.Pi / 180
}
