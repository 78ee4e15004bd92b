package debug

import "github.com/Faultbox/volview/pkg/math"

// BoxWireframe returns line vertices for the box spanned by lo and hi:
// 24 vertices (12 edges × 2 endpoints), [x, y, z] per vertex.
func BoxWireframe(lo, hi math.Vec3) []float32 {
	return []float32{
		// Bottom face
		lo.X, lo.Y, lo.Z, hi.X, lo.Y, lo.Z,
		hi.X, lo.Y, lo.Z, hi.X, lo.Y, hi.Z,
		hi.X, lo.Y, hi.Z, lo.X, lo.Y, hi.Z,
		lo.X, lo.Y, hi.Z, lo.X, lo.Y, lo.Z,
		// Top face
		lo.X, hi.Y, lo.Z, hi.X, hi.Y, lo.Z,
		hi.X, hi.Y, lo.Z, hi.X, hi.Y, hi.Z,
		hi.X, hi.Y, hi.Z, lo.X, hi.Y, hi.Z,
		lo.X, hi.Y, hi.Z, lo.X, hi.Y, lo.Z,
		// Verticals
		lo.X, lo.Y, lo.Z, lo.X, hi.Y, lo.Z,
		hi.X, lo.Y, lo.Z, hi.X, hi.Y, lo.Z,
		hi.X, lo.Y, hi.Z, hi.X, hi.Y, hi.Z,
		lo.X, lo.Y, hi.Z, lo.X, hi.Y, hi.Z,
	}
}

// UnitCube is the wireframe of the [-0.5, 0.5]³ cube the volume is drawn in.
func UnitCube() []float32 {
	h := math.Vec3{X: 0.5, Y: 0.5, Z: 0.5}
	return BoxWireframe(h.Scale(-1), h)
}
