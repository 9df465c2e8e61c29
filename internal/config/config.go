// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all viewer settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Camera  CameraConfig  `yaml:"camera"`
	Filter  FilterConfig  `yaml:"filter"`
	Scene   SceneConfig   `yaml:"scene"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// CameraConfig holds the free camera's start pose and motion tuning.
type CameraConfig struct {
	Position    [3]float32 `yaml:"position"`
	Target      [3]float32 `yaml:"target"`
	FOV         float32    `yaml:"fov"` // Degrees
	Near        float32    `yaml:"near"`
	Far         float32    `yaml:"far"`
	Sensitivity float32    `yaml:"sensitivity"` // Pixels per degree
	Damping     float32    `yaml:"damping"`
	Epsilon     float32    `yaml:"epsilon"`
	MoveSpeed   float32    `yaml:"move_speed"`
}

// FilterConfig holds mouse smoothing settings.
type FilterConfig struct {
	Enabled bool    `yaml:"enabled"`
	Depth   int     `yaml:"depth"`
	Weight  float32 `yaml:"weight"`
}

// SceneConfig holds the pickable boxes: one cube per anchor.
type SceneConfig struct {
	Anchors    [][3]float32 `yaml:"anchors"`
	HalfExtent float32      `yaml:"half_extent"`
	GridSize   int          `yaml:"grid_size"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the reference scene and tuning.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Picking using scene intersection queries",
			Width:  1280,
			Height: 960,
			VSync:  true,
		},
		Camera: CameraConfig{
			Position:    [3]float32{10, 10, 10},
			FOV:         45,
			Near:        0.1,
			Far:         1000,
			Sensitivity: 5,
			Damping:     0.95,
			Epsilon:     0.001,
			MoveSpeed:   1,
		},
		Filter: FilterConfig{
			Enabled: true,
			Depth:   10,
			Weight:  0.75,
		},
		Scene: SceneConfig{
			Anchors: [][3]float32{
				{-1, 0.5, 0},
				{0, 0.5, 1},
				{1, 0.5, 0},
			},
			HalfExtent: 0.5,
			GridSize:   20,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks ranges the viewer depends on.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Camera.FOV <= 0 || c.Camera.FOV >= 180:
		return fmt.Errorf("%w: camera fov %v out of (0,180)", ErrInvalid, c.Camera.FOV)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("%w: camera near/far %v/%v", ErrInvalid, c.Camera.Near, c.Camera.Far)
	case c.Camera.Sensitivity <= 0:
		return fmt.Errorf("%w: camera sensitivity %v", ErrInvalid, c.Camera.Sensitivity)
	case c.Camera.Damping < 0 || c.Camera.Damping >= 1:
		return fmt.Errorf("%w: camera damping %v out of [0,1)", ErrInvalid, c.Camera.Damping)
	case c.Filter.Depth <= 0:
		return fmt.Errorf("%w: filter depth %d", ErrInvalid, c.Filter.Depth)
	case c.Filter.Weight <= 0 || c.Filter.Weight >= 1:
		return fmt.Errorf("%w: filter weight %v out of (0,1)", ErrInvalid, c.Filter.Weight)
	case c.Scene.HalfExtent <= 0:
		return fmt.Errorf("%w: scene half extent %v", ErrInvalid, c.Scene.HalfExtent)
	}
	return nil
}
