// pkg/config/config.go
// Copyright(c) 2024-2026 ar-project contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package config handles configuration loading for the map view and the
// footprint highlight style.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration file structure. All fields are
// optional; zero values are replaced by the defaults from Default.
type Config struct {
	// Flight durations in seconds. Callers pick which default applies:
	// free flights, footprint centering, and address centering have
	// different pacing.
	DefaultFlyDuration   float32 `yaml:"default_fly_duration,omitempty"`
	FootprintFlyDuration float32 `yaml:"footprint_fly_duration,omitempty"`
	AddressFlyDuration   float32 `yaml:"address_fly_duration,omitempty"`

	// Easing curve name: "smoothstep" (default), "smootherstep" or
	// "linear".
	Easing string `yaml:"easing,omitempty"`

	Highlight Highlight `yaml:"highlight,omitempty"`
}

// Highlight configures the parcel-highlight visuals. Colors are packed
// 0xRRGGBB integers.
type Highlight struct {
	Elevation     float32 `yaml:"elevation,omitempty"`
	OutlineLift   float32 `yaml:"outline_lift,omitempty"`
	OutlineWidth  float32 `yaml:"outline_width,omitempty"`
	FillColor     int     `yaml:"fill_color,omitempty"`
	FillAlpha     float32 `yaml:"fill_alpha,omitempty"`
	OutlineColor  int     `yaml:"outline_color,omitempty"`
	Triangulation string  `yaml:"triangulation,omitempty"` // "fan" (default) or "earcut"
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DefaultFlyDuration:   1.2,
		FootprintFlyDuration: 0.8,
		AddressFlyDuration:   2.0,
		Easing:               "smoothstep",
		Highlight: Highlight{
			Elevation:     0.5,
			OutlineLift:   0.05,
			OutlineWidth:  2,
			FillColor:     0x4f9ddb,
			FillAlpha:     0.35,
			OutlineColor:  0x2a6fb0,
			Triangulation: "fan",
		},
	}
}

// Load reads and parses the YAML configuration file from the specified
// path, filling in defaults for anything left unset.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.normalize()

	return &cfg, nil
}

func (c *Config) normalize() {
	def := Default()
	if c.DefaultFlyDuration <= 0 {
		c.DefaultFlyDuration = def.DefaultFlyDuration
	}
	if c.FootprintFlyDuration <= 0 {
		c.FootprintFlyDuration = def.FootprintFlyDuration
	}
	if c.AddressFlyDuration <= 0 {
		c.AddressFlyDuration = def.AddressFlyDuration
	}
	if c.Easing == "" {
		c.Easing = def.Easing
	}

	h, dh := &c.Highlight, def.Highlight
	if h.Elevation <= 0 {
		h.Elevation = dh.Elevation
	}
	if h.OutlineLift <= 0 {
		h.OutlineLift = dh.OutlineLift
	}
	if h.OutlineWidth <= 0 {
		h.OutlineWidth = dh.OutlineWidth
	}
	if h.FillColor == 0 {
		h.FillColor = dh.FillColor
	}
	if h.FillAlpha <= 0 {
		h.FillAlpha = dh.FillAlpha
	}
	if h.OutlineColor == 0 {
		h.OutlineColor = dh.OutlineColor
	}
	if h.Triangulation == "" {
		h.Triangulation = dh.Triangulation
	}
}
