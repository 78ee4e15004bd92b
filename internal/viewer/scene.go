package viewer

import (
	"github.com/Faultbox/volview/internal/engine/scene"
	"github.com/Faultbox/volview/pkg/math"
)

// DemoScene builds the default graph: the noise volume at the root with a
// chain of probe boxes below it. Digit keys select nodes in this order.
func DemoScene() (*scene.Graph, error) {
	g := scene.NewGraph()
	steps := []struct {
		name, parent string
		local        math.Mat4
	}{
		{"volume", "", math.Identity()},
		{"probe", "volume", math.Translate(0.25, 0.25, 0.25).Mul(math.Scale(0.25, 0.25, 0.25))},
		{"probe-arm", "probe", math.Translate(0, 1.5, 0).Mul(math.RotateY(0.6)).Mul(math.Scale(0.5, 0.5, 0.5))},
	}
	for _, s := range steps {
		if _, err := g.Add(s.name, s.parent, s.local); err != nil {
			return nil, err
		}
	}
	return g, nil
}
