package manip

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"

	"github.com/Faultbox/volview/internal/engine/camera"
	"github.com/Faultbox/volview/internal/engine/input"
	"github.com/Faultbox/volview/internal/engine/scene"
	"github.com/Faultbox/volview/pkg/math"
)

// fakeNode is a Target with an explicit world transform.
type fakeNode struct {
	local    math.Mat4
	world    math.Mat4
	hasWorld bool
	writes   int
}

func (n *fakeNode) Transform() math.Mat4 { return n.local }
func (n *fakeNode) SetTransform(m math.Mat4) {
	n.local = m
	n.writes++
}
func (n *fakeNode) WorldTransform() (math.Mat4, bool) { return n.world, n.hasWorld }

func frontBasis(t *testing.T) camera.Basis {
	t.Helper()
	b, err := camera.ComputeBasis(math.Vec3{X: 0, Y: 0, Z: 5}, math.Vec3{})
	if err != nil {
		t.Fatalf("ComputeBasis: %v", err)
	}
	return b
}

func TestAdvanceNoTrigger(t *testing.T) {
	local := math.Translate(1, 2, 3)
	n := &fakeNode{local: local}

	got, changed, err := NewController().Advance(n, frontBasis(t), input.Frame{DX: 5, DY: 5}, 1)
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if changed || got != local || n.local != local || n.writes != 0 {
		t.Errorf("idle Advance changed the node: changed=%v got=%v writes=%d", changed, got, n.writes)
	}
}

func TestAdvanceRootTranslateOnly(t *testing.T) {
	local := math.Translate(1, 2, 3).Mul(math.RotateY(0.4)).Mul(math.Scale(1.5, 1.5, 1.5))
	n := &fakeNode{local: local}
	b := frontBasis(t)
	in := input.Frame{Secondary: true, DX: 2, DY: 1}

	got, changed, err := NewController().Advance(n, b, in, 0.5)
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if !changed {
		t.Fatal("expected a change")
	}

	// World alignment is identity for a root node
	want := local.Mul(Deltas(in, 0.5, b).Translate)
	if got != want {
		t.Errorf("local' = %v, want %v", got, want)
	}
	if n.local != got || n.writes != 1 {
		t.Errorf("node not written back: %v (writes %d)", n.local, n.writes)
	}
}

func TestAdvanceRootScaleIsLocal(t *testing.T) {
	local := math.Translate(4, 0, 0)
	n := &fakeNode{local: local}

	got, _, err := NewController().Advance(n, frontBasis(t), input.Frame{Tertiary: true, DY: 1}, 1)
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if want := local.Mul(math.Scale(2, 2, 2)); got != want {
		t.Errorf("local' = %v, want %v", got, want)
	}
	// Scaling about the local origin leaves the position alone
	if got.Translation() != (math.Vec3{X: 4, Y: 0, Z: 0}) {
		t.Errorf("translation = %v, want (4, 0, 0)", got.Translation())
	}
}

func TestDeltas(t *testing.T) {
	b := frontBasis(t)

	idle := Deltas(input.Frame{}, 1, b)
	if idle.Active || idle.Scale != math.Identity() || idle.Rotate != math.Identity() || idle.Translate != math.Identity() {
		t.Errorf("idle deltas = %+v, want inactive identities", idle)
	}

	d := Deltas(input.Frame{Primary: true, DX: 3, DY: -2}, 0.5, b)
	if !d.Active {
		t.Fatal("rotate should be active")
	}
	wantRot := math.RotateAxis(b.Right, -10*math32.Pi/180).Mul(math.RotateAxis(b.Up, 15*math32.Pi/180))
	if !d.Rotate.ApproxEqual(wantRot, 1e-6) {
		t.Errorf("rotate = %v, want %v", d.Rotate, wantRot)
	}
	if d.Translate != math.Identity() || d.Scale != math.Identity() {
		t.Error("rotate-only input produced other deltas")
	}

	p := Deltas(input.Frame{Primary: true, Modifier: true, DX: 2, DY: 4}, 1, b)
	if got := p.Translate.Translation(); !got.ApproxEqual(math.Vec3{X: 1.5, Y: -3, Z: 0}, 1e-6) {
		t.Errorf("translate = %v, want (1.5, -3, 0)", got)
	}
	if p.Rotate != math.Identity() {
		t.Error("modifier drag should not rotate")
	}
}

func TestAdvanceTranslateIsViewAligned(t *testing.T) {
	// Parent turned a quarter turn about Y and scaled, so local axes
	// differ from world axes.
	g := scene.NewGraph()
	if _, err := g.Add("parent", "", math.Translate(3, 0, 0).Mul(math.RotateY(math32.Pi/2)).Mul(math.Scale(2, 2, 2))); err != nil {
		t.Fatal(err)
	}
	child, err := g.Add("child", "parent", math.Translate(0, 1, 0).Mul(math.RotateAxis(math.UnitX, 0.3)))
	if err != nil {
		t.Fatal(err)
	}

	before := child.World()
	// dx=1 over one second: 0.75 along view right (+X)
	if _, _, err := NewController().Advance(child, frontBasis(t), input.Frame{Secondary: true, DX: 1}, 1); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	after := child.World()

	moved := after.Translation().Sub(before.Translation())
	if !moved.ApproxEqual(math.Vec3{X: 0.75, Y: 0, Z: 0}, 1e-5) {
		t.Errorf("world position moved by %v, want (0.75, 0, 0)", moved)
	}
	// Orientation and scale in world space are unchanged
	if !after.WithoutTranslation().ApproxEqual(before.WithoutTranslation(), 1e-5) {
		t.Errorf("world rotation/scale changed: %v -> %v", before, after)
	}
}

func TestAdvanceRotateIsViewAligned(t *testing.T) {
	g := scene.NewGraph()
	if _, err := g.Add("parent", "", math.RotateAxis(math.Vec3{X: 1, Y: 1, Z: 0}.Normalize(), 0.8).Mul(math.Scale(0.5, 0.5, 0.5))); err != nil {
		t.Fatal(err)
	}
	child, err := g.Add("child", "parent", math.Translate(2, 0, 0))
	if err != nil {
		t.Fatal(err)
	}

	b := frontBasis(t)
	in := input.Frame{Primary: true, DX: 4.5}
	before := child.World()
	if _, _, err := NewController().Advance(child, b, in, 1); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	after := child.World()

	// New world orientation is the view-space rotation applied in world space
	want := Deltas(in, 1, b).Rotate.Mul(before.WithoutTranslation())
	if !after.WithoutTranslation().ApproxEqual(want, 1e-5) {
		t.Errorf("world rotation = %v, want %v", after.WithoutTranslation(), want)
	}
	// Rotation pivots on the node's own origin
	if !after.Translation().ApproxEqual(before.Translation(), 1e-5) {
		t.Errorf("world position moved from %v to %v", before.Translation(), after.Translation())
	}
}

func TestAdvanceSingularWorld(t *testing.T) {
	g := scene.NewGraph()
	if _, err := g.Add("flat", "", math.Scale(1, 0, 1)); err != nil {
		t.Fatal(err)
	}
	local := math.Translate(1, 1, 1)
	child, err := g.Add("child", "flat", local)
	if err != nil {
		t.Fatal(err)
	}

	_, changed, err := NewController().Advance(child, frontBasis(t), input.Frame{Secondary: true, DX: 1}, 1)
	if !errors.Is(err, ErrSingularWorldAlignment) {
		t.Fatalf("Advance error = %v, want ErrSingularWorldAlignment", err)
	}
	if changed {
		t.Error("failed Advance reported a change")
	}
	if child.Transform() != local {
		t.Errorf("failed Advance modified the node: %v", child.Transform())
	}
}

func TestAdvanceRejectsNonFiniteFrame(t *testing.T) {
	tests := []struct {
		name string
		in   input.Frame
		dt   float32
	}{
		{"nan dx", input.Frame{Primary: true, DX: math32.NaN()}, 1},
		{"inf dt", input.Frame{Secondary: true, DX: 1}, math32.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			local := math.Translate(1, 2, 3)
			n := &fakeNode{local: local, world: local, hasWorld: true}

			_, changed, err := NewController().Advance(n, frontBasis(t), tt.in, tt.dt)
			if !errors.Is(err, input.ErrNonFiniteInput) {
				t.Fatalf("Advance error = %v, want ErrNonFiniteInput", err)
			}
			if errors.Is(err, ErrSingularWorldAlignment) {
				t.Error("non-finite input reported as a singular world")
			}
			if changed || n.local != local || n.writes != 0 {
				t.Error("rejected frame modified the node")
			}
		})
	}
}

func TestComposeRootIgnoresWorld(t *testing.T) {
	d := Delta{Scale: math.Identity(), Rotate: math.RotateY(1), Translate: math.Translate(1, 0, 0), Active: true}
	local := math.Translate(0, 0, 2)

	// A bogus world matrix is ignored when hasWorld is false
	got, err := Compose(local, math.Mat4{}, false, d)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if want := local.Mul(d.Translate).Mul(d.Rotate); !got.ApproxEqual(want, 1e-6) {
		t.Errorf("Compose = %v, want %v", got, want)
	}
}
