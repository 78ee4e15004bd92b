package renderer

// CubeTriangles returns the [-0.5, 0.5]³ cube as 12 triangles, [x, y, z]
// per vertex, wound counter-clockwise seen from outside.
func CubeTriangles() []float32 {
	corners := [4][2]float32{{-0.5, -0.5}, {0.5, -0.5}, {0.5, 0.5}, {-0.5, 0.5}}
	order := [6]int{0, 1, 2, 0, 2, 3}

	out := make([]float32, 0, 6*6*3)
	for axis := 0; axis < 3; axis++ {
		u, v := (axis+1)%3, (axis+2)%3
		for _, side := range [2]float32{0.5, -0.5} {
			for n := 0; n < 6; n++ {
				idx := order[n]
				if side < 0 {
					idx = order[5-n] // reversed winding for the negative face
				}
				var p [3]float32
				p[axis] = side
				p[u] = corners[idx][0]
				p[v] = corners[idx][1]
				out = append(out, p[0], p[1], p[2])
			}
		}
	}
	return out
}
