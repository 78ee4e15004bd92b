package viewer

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/volview/internal/config"
	"github.com/Faultbox/volview/internal/engine/camera"
	"github.com/Faultbox/volview/internal/engine/input"
	"github.com/Faultbox/volview/internal/engine/renderer"
	"github.com/Faultbox/volview/internal/engine/texture"
	"github.com/Faultbox/volview/internal/engine/window"
	"github.com/Faultbox/volview/internal/logger"
	"github.com/Faultbox/volview/pkg/math"
	"github.com/Faultbox/volview/pkg/noise"
)

var (
	boxColor      = math.Vec3{X: 0.45, Y: 0.45, Z: 0.5}
	selectedColor = math.Vec3{X: 1.0, Y: 0.75, Z: 0.2}
)

// Viewer owns the window, GL resources and the interaction session.
type Viewer struct {
	cfg      *config.Config
	window   *window.Window
	renderer *renderer.Renderer
	volume   *texture.Volume
	tracker  *input.Tracker
	session  *Session
	title    string
	running  bool
}

// New opens the window, uploads the noise volume and sets up the camera.
func New(cfg *config.Config) (*Viewer, error) {
	logger.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Int("volumeSize", cfg.Volume.Size),
		zap.String("generator", cfg.Volume.Generator),
	)

	// Generate before creating the window so bad settings fail fast
	data, err := GenerateVolume(cfg.Volume)
	if err != nil {
		return nil, err
	}

	v := &Viewer{
		cfg:     cfg,
		tracker: input.NewTracker(),
	}

	v.window, err = window.New(window.Config{
		Title:      "volview",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	v.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
	})
	if err != nil {
		v.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.volume, err = texture.UploadVolume(data, cfg.Volume.Size)
	if err != nil {
		v.Close()
		return nil, fmt.Errorf("failed to upload volume: %w", err)
	}
	v.renderer.SetVolume(v.volume)

	state := camera.NewState(cfg.Camera.Eye, cfg.Camera.Center)
	state.FovY = cfg.Camera.FovY
	state.Near = cfg.Camera.Near
	state.Far = cfg.Camera.Far
	state.Aspect = float32(cfg.Graphics.Width) / float32(cfg.Graphics.Height)

	cam, err := camera.NewController(state,
		camera.WithSinks(v.renderer.Sinks()...),
		camera.WithTopDownFallback(cfg.Camera.TopDownFallback),
	)
	if err != nil {
		v.Close()
		return nil, err
	}
	v.renderer.SetProjection(state.Projection(), state.Near, state.Far)
	cam.Sync()

	graph, err := DemoScene()
	if err != nil {
		v.Close()
		return nil, err
	}
	v.session = NewSession(cam, graph)

	// Fullscreen and high-DPI windows may not match the requested size
	v.resize(v.window.GetSize())
	v.updateTitle()

	logger.Info("viewer initialized",
		logger.Vec3("eye", state.Eye),
		logger.Vec3("center", state.Center),
	)
	return v, nil
}

// GenerateVolume samples the configured generator into size³ bytes.
func GenerateVolume(cfg config.VolumeConfig) ([]uint8, error) {
	sampler, err := noise.NewSampler(cfg.Generator, cfg.Fractal())
	if err != nil {
		return nil, err
	}

	start := time.Now()
	data, err := noise.Volume(sampler, cfg.Size, cfg.Frequency)
	if err != nil {
		return nil, fmt.Errorf("generating volume: %w", err)
	}
	logger.Debug("volume generated",
		zap.Int("size", cfg.Size),
		zap.Float64("frequency", cfg.Frequency),
		zap.Duration("elapsed", time.Since(start)),
	)
	return data, nil
}

// Run starts the main loop and returns when the window closes.
func (v *Viewer) Run() error {
	v.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting main loop")

	for v.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		quit := v.window.Poll(v.tracker)
		for _, e := range v.tracker.Events() {
			if e.Type == input.EventWindowResize {
				v.resize(e.Width, e.Height)
			}
		}

		if quit || v.session.Step(v.tracker.Events(), v.tracker.Frame(), dt) {
			v.running = false
			break
		}

		v.updateTitle()
		v.render()
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.Stringer("mode", v.session.Mode()),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (v *Viewer) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	v.renderer.Resize(width, height)

	state := v.session.Camera().State()
	state.Aspect = float32(width) / float32(height)
	v.renderer.SetProjection(state.Projection(), state.Near, state.Far)
}

func (v *Viewer) updateTitle() {
	if title := v.session.Title(); title != v.title {
		v.window.SetTitle(title)
		v.title = title
	}
}

func (v *Viewer) render() {
	v.renderer.Begin()

	selected := v.session.Selected()
	for _, node := range v.session.Graph().Nodes() {
		color := boxColor
		if node == selected && v.session.Mode() == ModeNode {
			color = selectedColor
		}
		v.renderer.DrawBox(node.World(), color)
	}

	// Volume last so the outlines behind it show through
	if root := v.session.Graph().At(0); root != nil {
		if err := v.renderer.DrawVolume(root.World()); err != nil {
			logger.Warn("volume draw skipped", zap.Error(err))
		}
	}
}

// Close releases GL resources and the window.
func (v *Viewer) Close() {
	logger.Info("closing viewer")

	if v.volume != nil {
		v.volume.Delete()
	}
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
