// Package config handles viewer configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/wavesurface/pkg/surface"
)

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Surface  surface.Params `yaml:"surface"`
	Export   ExportConfig   `yaml:"export"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width          int  `yaml:"width"`
	Height         int  `yaml:"height"`
	Fullscreen     bool `yaml:"fullscreen"`
	VSync          bool `yaml:"vsync"`
	ViewportWidth  int  `yaml:"viewport_width"`  // Offscreen render target
	ViewportHeight int  `yaml:"viewport_height"` // Offscreen render target
}

// ExportConfig holds image export settings.
type ExportConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
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
			Width:          1280,
			Height:         800,
			Fullscreen:     false,
			VSync:          true,
			ViewportWidth:  800,
			ViewportHeight: 800,
		},
		Surface: surface.DefaultParams(),
		Export: ExportConfig{
			Dir:    "",
			Prefix: "wireframe",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks the settings that would otherwise fail at first render.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("graphics: window size %dx%d must be positive", c.Graphics.Width, c.Graphics.Height)
	}
	if c.Graphics.ViewportWidth <= 0 || c.Graphics.ViewportHeight <= 0 {
		return fmt.Errorf("graphics: viewport size %dx%d must be positive", c.Graphics.ViewportWidth, c.Graphics.ViewportHeight)
	}
	if err := c.Surface.Validate(); err != nil {
		return fmt.Errorf("surface: %w", err)
	}
	return nil
}
