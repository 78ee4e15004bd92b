// Package shader provides OpenGL shader compilation and uniform upload.
package shader

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/volview/pkg/math"
)

// Uniform names shared by every program that draws in world space.
const (
	UniformEye        = "u_eye"
	UniformView       = "u_v"
	UniformProjection = "u_p"
	UniformModel      = "u_m"
	UniformNear       = "u_near"
	UniformFar        = "u_far"
)

// CompileProgram compiles vertex and fragment shaders and links them into a program.
// Returns the program ID or an error if compilation/linking fails.
func CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetProgramInfoLog(program, logLen, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", string(log))
	}

	return program, nil
}

// compileShader compiles a single shader of the given type.
func compileShader(source string, shaderType uint32, name string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetShaderInfoLog(shader, logLen, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader: %s", name, string(log))
	}

	return shader, nil
}

// Program is a linked shader program with cached uniform locations.
// It receives camera updates as a camera.UniformSink.
type Program struct {
	id       uint32
	uniforms map[string]int32
}

// NewProgram compiles and links a program.
func NewProgram(vertexSrc, fragmentSrc string) (*Program, error) {
	id, err := CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	return &Program{id: id, uniforms: make(map[string]int32)}, nil
}

// ID returns the GL program name.
func (p *Program) ID() uint32 {
	return p.id
}

// Use binds the program.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// Delete releases the program.
func (p *Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}

// Uniform returns the location for name, or -1 if the uniform is inactive.
func (p *Program) Uniform(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.uniforms[name] = loc
	return loc
}

// The setters bind the program first so callers need not track which
// program is current. Inactive uniforms are skipped.

// SetMat4 uploads a column-major matrix.
func (p *Program) SetMat4(name string, m math.Mat4) {
	if loc := p.Uniform(name); loc >= 0 {
		p.Use()
		gl.UniformMatrix4fv(loc, 1, false, m.Ptr())
	}
}

// SetVec3 uploads a vector.
func (p *Program) SetVec3(name string, v math.Vec3) {
	if loc := p.Uniform(name); loc >= 0 {
		p.Use()
		gl.Uniform3f(loc, v.X, v.Y, v.Z)
	}
}

// SetFloat uploads a scalar.
func (p *Program) SetFloat(name string, f float32) {
	if loc := p.Uniform(name); loc >= 0 {
		p.Use()
		gl.Uniform1f(loc, f)
	}
}

// SetInt uploads an integer, e.g. a sampler unit.
func (p *Program) SetInt(name string, i int32) {
	if loc := p.Uniform(name); loc >= 0 {
		p.Use()
		gl.Uniform1i(loc, i)
	}
}

// SetEye uploads the camera position.
func (p *Program) SetEye(eye math.Vec3) {
	p.SetVec3(UniformEye, eye)
}

// SetView uploads the view matrix.
func (p *Program) SetView(view math.Mat4) {
	p.SetMat4(UniformView, view)
}

// SetProjection uploads the projection matrix and clip planes.
func (p *Program) SetProjection(proj math.Mat4, near, far float32) {
	p.SetMat4(UniformProjection, proj)
	p.SetFloat(UniformNear, near)
	p.SetFloat(UniformFar, far)
}
