// Package renderer draws the noise volume and scene node outlines.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/volview/internal/engine/camera"
	"github.com/Faultbox/volview/internal/engine/debug"
	"github.com/Faultbox/volview/internal/engine/shader"
	"github.com/Faultbox/volview/internal/engine/texture"
	"github.com/Faultbox/volview/internal/logger"
	"github.com/Faultbox/volview/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width   int
	Height  int
	Density float32 // opacity per unit length inside the volume
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config

	volumeProgram *shader.Program
	lineProgram   *shader.Program

	cubeVAO, cubeVBO uint32
	wireVAO, wireVBO uint32
	cubeVertices     int32
	wireVertices     int32

	volume *texture.Volume
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	if cfg.Density <= 0 {
		cfg.Density = 4
	}
	r := &Renderer{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.volumeProgram, err = shader.NewProgram(shader.VolumeVertexShader, shader.VolumeFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("volume program: %w", err)
	}
	r.lineProgram, err = shader.NewProgram(shader.LineVertexShader, shader.LineFragmentShader)
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("line program: %w", err)
	}

	r.volumeProgram.SetInt("u_volume", 0)
	r.volumeProgram.SetFloat("u_density", cfg.Density)

	r.cubeVAO, r.cubeVBO, r.cubeVertices = uploadPositions(CubeTriangles())
	r.wireVAO, r.wireVBO, r.wireVertices = uploadPositions(debug.UnitCube())

	logger.Debug("renderer created",
		zap.Uint32("volumeProgram", r.volumeProgram.ID()),
		zap.Uint32("lineProgram", r.lineProgram.ID()),
	)
	return r, nil
}

// uploadPositions creates a VAO with a single vec3 attribute at location 0.
func uploadPositions(vertices []float32) (vao, vbo uint32, count int32) {
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return vao, vbo, int32(len(vertices) / 3)
}

// Sinks returns the programs that need camera uniforms.
func (r *Renderer) Sinks() []camera.UniformSink {
	return []camera.UniformSink{r.volumeProgram, r.lineProgram}
}

// SetProjection uploads the projection and clip planes to every program.
func (r *Renderer) SetProjection(proj math.Mat4, near, far float32) {
	r.volumeProgram.SetProjection(proj, near, far)
	r.lineProgram.SetProjection(proj, near, far)
}

// SetVolume selects the texture sampled by DrawVolume.
func (r *Renderer) SetVolume(v *texture.Volume) {
	r.volume = v
}

// Close cleans up renderer resources. The volume texture is owned by the caller.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	for _, vao := range []*uint32{&r.cubeVAO, &r.wireVAO} {
		if *vao != 0 {
			gl.DeleteVertexArrays(1, vao)
			*vao = 0
		}
	}
	for _, vbo := range []*uint32{&r.cubeVBO, &r.wireVBO} {
		if *vbo != 0 {
			gl.DeleteBuffers(1, vbo)
			*vbo = 0
		}
	}
	if r.volumeProgram != nil {
		r.volumeProgram.Delete()
	}
	if r.lineProgram != nil {
		r.lineProgram.Delete()
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawVolume raymarches the volume texture inside the unit cube placed by model.
func (r *Renderer) DrawVolume(model math.Mat4) error {
	if r.volume == nil {
		return nil
	}
	inv, err := model.Inverse()
	if err != nil {
		return fmt.Errorf("volume model matrix: %w", err)
	}

	r.volumeProgram.SetMat4(shader.UniformModel, model)
	r.volumeProgram.SetMat4("u_m_inv", inv)
	r.volume.Bind(0)

	gl.Enable(gl.BLEND)
	gl.DepthMask(false)
	gl.BindVertexArray(r.cubeVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, r.cubeVertices)
	gl.BindVertexArray(0)
	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
	return nil
}

// DrawBox draws the outline of the unit cube placed by model.
func (r *Renderer) DrawBox(model math.Mat4, color math.Vec3) {
	r.lineProgram.SetMat4(shader.UniformModel, model)
	r.lineProgram.SetVec3("u_color", color)

	gl.BindVertexArray(r.wireVAO)
	gl.DrawArrays(gl.LINES, 0, r.wireVertices)
	gl.BindVertexArray(0)
}
