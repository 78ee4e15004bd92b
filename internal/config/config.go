// Package config handles viewer configuration loading and management.
package config

import (
	"github.com/Faultbox/volview/pkg/math"
	"github.com/Faultbox/volview/pkg/noise"
)

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Volume   VolumeConfig   `yaml:"volume"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// CameraConfig holds the initial camera and projection.
type CameraConfig struct {
	Eye    math.Vec3 `yaml:"eye"`
	Center math.Vec3 `yaml:"center"`
	FovY   float32   `yaml:"fovy"` // degrees
	Near   float32   `yaml:"near"`
	Far    float32   `yaml:"far"`

	// TopDownFallback keeps the camera usable when it looks straight up or
	// down instead of skipping those frames.
	TopDownFallback bool `yaml:"top_down_fallback"`
}

// VolumeConfig controls the noise texture generated at startup.
type VolumeConfig struct {
	Size      int     `yaml:"size"`      // edge length in voxels
	Frequency float64 `yaml:"frequency"` // noise units per voxel
	Seed      int64   `yaml:"seed"`
	Generator string  `yaml:"generator"` // "gradient" or "fractal"

	// Fractal generator only
	Alpha   float64 `yaml:"alpha"`
	Beta    float64 `yaml:"beta"`
	Octaves int32   `yaml:"octaves"`
}

// Fractal returns the generator settings for noise.NewSampler.
func (v VolumeConfig) Fractal() noise.FractalConfig {
	return noise.FractalConfig{
		Alpha:   v.Alpha,
		Beta:    v.Beta,
		Octaves: v.Octaves,
		Seed:    v.Seed,
	}
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Camera: CameraConfig{
			Eye:    math.Vec3{X: 2, Y: 0.5, Z: -2},
			Center: math.Vec3{},
			FovY:   60,
			Near:   0.01,
			Far:    10,
		},
		Volume: VolumeConfig{
			Size:      32,
			Frequency: 0.15,
			Seed:      1,
			Generator: noise.GeneratorGradient,
			Alpha:     2,
			Beta:      2,
			Octaves:   3,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
