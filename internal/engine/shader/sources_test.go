package shader

import (
	"strings"
	"testing"
)

func TestSourcesDeclareUniforms(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		uniforms []string
	}{
		{"volume.vert", VolumeVertexShader, []string{UniformProjection, UniformView, UniformModel}},
		{"volume.frag", VolumeFragmentShader, []string{UniformEye, UniformNear, UniformFar, "u_volume", "u_m_inv", "u_density"}},
		{"line.vert", LineVertexShader, []string{UniformProjection, UniformView, UniformModel}},
		{"line.frag", LineFragmentShader, []string{"u_color"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.HasPrefix(tt.src, "#version 410 core") {
				t.Errorf("%s does not start with the GL 4.1 core version line", tt.name)
			}
			for _, u := range tt.uniforms {
				if !strings.Contains(tt.src, " "+u+";") {
					t.Errorf("%s does not declare uniform %s", tt.name, u)
				}
			}
		})
	}
}
