package camera

import (
	"fmt"

	"github.com/Faultbox/volview/internal/engine/input"
	"github.com/Faultbox/volview/pkg/math"
)

// Drag sensitivities.
const (
	OrbitDegreesPerUnit = 10.0
	PanUnitsPerUnit     = 0.75
)

// EditKind identifies one camera interaction.
type EditKind int

const (
	EditZoom EditKind = iota
	EditOrbit
	EditPan
)

func (k EditKind) String() string {
	switch k {
	case EditZoom:
		return "zoom"
	case EditOrbit:
		return "orbit"
	case EditPan:
		return "pan"
	default:
		return fmt.Sprintf("EditKind(%d)", int(k))
	}
}

// Edit is a single camera change derived from one frame of input.
type Edit struct {
	Kind  EditKind
	apply func(Pose) Pose
}

// Apply returns p with the edit applied.
func (e Edit) Apply(p Pose) Pose {
	return e.apply(p)
}

// Edits returns the edits triggered by in, in application order: zoom,
// orbit, pan. All three may fire in the same frame. Every edit uses the
// basis from the start of the frame.
func Edits(in input.Frame, dt float32, b Basis) []Edit {
	var edits []Edit

	if in.Zoom() {
		step := b.Forward.Scale(-in.DY * dt)
		edits = append(edits, Edit{Kind: EditZoom, apply: func(p Pose) Pose {
			p.Eye = p.Eye.Add(step)
			return p
		}})
	}

	if in.Rotate() {
		yaw := math.RotateY(radians(-OrbitDegreesPerUnit * in.DX * dt))
		pitch := math.RotateAxis(b.Right, radians(-OrbitDegreesPerUnit*in.DY*dt))
		edits = append(edits, Edit{Kind: EditOrbit, apply: func(p Pose) Pose {
			// Yaw turns about the center, pitch about the right axis
			// through the world origin.
			p.Eye = p.Center.Add(yaw.TransformDirection(p.Eye.Sub(p.Center)))
			p.Eye = pitch.TransformVec3(p.Eye)
			return p
		}})
	}

	if in.Pan() {
		shift := b.Right.Scale(-PanUnitsPerUnit * in.DX * dt).
			Add(b.Up.Scale(PanUnitsPerUnit * in.DY * dt))
		edits = append(edits, Edit{Kind: EditPan, apply: func(p Pose) Pose {
			p.Eye = p.Eye.Add(shift)
			p.Center = p.Center.Add(shift)
			return p
		}})
	}

	return edits
}

// UniformSink receives camera values that shaders need after every change.
type UniformSink interface {
	SetEye(eye math.Vec3)
	SetView(view math.Mat4)
}

// Controller turns per-frame input into camera motion.
type Controller struct {
	state    *State
	view     math.Mat4
	sinks    []UniformSink
	fallback bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithSinks adds uniform sinks updated whenever the view changes.
func WithSinks(sinks ...UniformSink) Option {
	return func(c *Controller) {
		c.sinks = append(c.sinks, sinks...)
	}
}

// WithTopDownFallback resolves straight up/down views against world
// forward instead of reporting ErrDegenerateBasis.
func WithTopDownFallback(enabled bool) Option {
	return func(c *Controller) {
		c.fallback = enabled
	}
}

// NewController creates a controller for state and builds the initial view.
func NewController(state *State, opts ...Option) (*Controller, error) {
	c := &Controller{state: state}
	for _, opt := range opts {
		opt(c)
	}

	b, err := c.basisFor(state.Pose())
	if err != nil {
		return nil, fmt.Errorf("initial camera: %w", err)
	}
	c.view = math.LookAt(state.Eye, state.Center, b.Up)
	return c, nil
}

// State returns the controlled camera state.
func (c *Controller) State() *State {
	return c.state
}

// View returns the current view matrix.
func (c *Controller) View() math.Mat4 {
	return c.view
}

// Basis derives the basis for the current pose.
func (c *Controller) Basis() (Basis, error) {
	return c.basisFor(c.state.Pose())
}

// Sync pushes the current eye and view to every sink.
func (c *Controller) Sync() {
	for _, s := range c.sinks {
		s.SetEye(c.state.Eye)
		s.SetView(c.view)
	}
}

// Advance applies one frame of input. It reports whether the view changed.
// On error the state is left untouched and the frame should be skipped.
func (c *Controller) Advance(in input.Frame, dt float32) (bool, error) {
	if in.Idle() {
		return false, nil
	}
	if err := in.Check(dt); err != nil {
		return false, err
	}

	b, err := c.Basis()
	if err != nil {
		return false, err
	}

	edits := Edits(in, dt, b)
	if len(edits) == 0 {
		return false, nil
	}

	pose := c.state.Pose()
	for _, e := range edits {
		pose = e.Apply(pose)
	}
	if !pose.Eye.IsFinite() || !pose.Center.IsFinite() {
		return false, fmt.Errorf("%w: non-finite pose after %d edits", ErrDegenerateBasis, len(edits))
	}

	nb, err := c.basisFor(pose)
	if err != nil {
		return false, err
	}

	c.state.Eye = pose.Eye
	c.state.Center = pose.Center
	c.view = math.LookAt(pose.Eye, pose.Center, nb.Up)
	c.Sync()

	return true, nil
}

func (c *Controller) basisFor(p Pose) (Basis, error) {
	if c.fallback {
		return ComputeBasisWithFallback(p.Eye, p.Center)
	}
	return ComputeBasis(p.Eye, p.Center)
}
