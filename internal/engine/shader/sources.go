package shader

import _ "embed"

// VolumeVertexShader places the volume cube in clip space.
//
//go:embed glsl/volume.vert
var VolumeVertexShader string

// VolumeFragmentShader raymarches the 3D noise texture.
//
//go:embed glsl/volume.frag
var VolumeFragmentShader string

// LineVertexShader is the vertex shader for wireframe boxes.
//
//go:embed glsl/line.vert
var LineVertexShader string

// LineFragmentShader draws wireframes in a flat color.
//
//go:embed glsl/line.frag
var LineFragmentShader string
