// Package config defines the application configuration and its loader.
package config

import "fmt"

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Title is the window title.
	Title string `koanf:"title"`
	// Width and Height set the initial window size in pixels.
	Width  int `koanf:"width"`
	Height int `koanf:"height"`

	// OuterRadius is the outer edge of the outer ring; RingWidth its depth.
	OuterRadius float64 `koanf:"outer_radius"`
	RingWidth   float64 `koanf:"ring_width"`
	// InnerRadius is the outer edge of the inner ring; InnerRingWidth its depth.
	InnerRadius    float64 `koanf:"inner_radius"`
	InnerRingWidth float64 `koanf:"inner_ring_width"`

	// Sound enables the tick played on selection changes.
	Sound bool `koanf:"sound"`

	// InspectAddr, if set, serves the inspector HTTP API, e.g. "127.0.0.1:9081".
	InspectAddr string `koanf:"inspect_addr"`

	// ScreenshotDir receives PNGs from scripted runs.
	ScreenshotDir string `koanf:"screenshot_dir"`
	// TestScript, if set, is a JSON script replayed through injected input.
	TestScript string `koanf:"test_script"`

	ShowFPS bool `koanf:"show_fps"`
	Debug   bool `koanf:"debug"`
}

// New returns a Config with defaults matching a 480x480 dial face.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		Title:          "Dual Dial",
		Width:          480,
		Height:         640,
		OuterRadius:    180,
		RingWidth:      60,
		InnerRadius:    110,
		InnerRingWidth: 60,
		ScreenshotDir:  "screenshots",
	}
}

// Validate checks sizes and ring nesting.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.RingWidth <= 0 || c.InnerRingWidth <= 0 {
		return fmt.Errorf("%w: ring widths must be positive", ErrInvalidConfig)
	}
	if c.RingWidth >= c.OuterRadius {
		return fmt.Errorf("%w: ring_width %v must be less than outer_radius %v",
			ErrInvalidConfig, c.RingWidth, c.OuterRadius)
	}
	if c.InnerRingWidth >= c.InnerRadius {
		return fmt.Errorf("%w: inner_ring_width %v must be less than inner_radius %v",
			ErrInvalidConfig, c.InnerRingWidth, c.InnerRadius)
	}
	if c.InnerRadius >= c.OuterRadius-c.RingWidth {
		return fmt.Errorf("%w: inner ring (radius %v) must sit inside the outer ring (inner edge %v)",
			ErrInvalidConfig, c.InnerRadius, c.OuterRadius-c.RingWidth)
	}
	return nil
}
