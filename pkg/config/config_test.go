// pkg/config/config_test.go
// Copyright(c) 2024-2026 ar-project contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
default_fly_duration: 2.5
easing: linear
highlight:
  elevation: 1.0
  fill_color: 0xff0000
  triangulation: earcut
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, float32(2.5), cfg.DefaultFlyDuration)
	assert.Equal(t, "linear", cfg.Easing)
	assert.Equal(t, float32(1.0), cfg.Highlight.Elevation)
	assert.Equal(t, 0xff0000, cfg.Highlight.FillColor)
	assert.Equal(t, "earcut", cfg.Highlight.Triangulation)

	// Unset fields pick up defaults.
	def := Default()
	assert.Equal(t, def.FootprintFlyDuration, cfg.FootprintFlyDuration)
	assert.Equal(t, def.Highlight.OutlineColor, cfg.Highlight.OutlineColor)
	assert.Equal(t, def.Highlight.OutlineLift, cfg.Highlight.OutlineLift)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("easing: [unterminated"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestDefaultIsNormalized(t *testing.T) {
	def := Default()
	cp := def
	cp.normalize()
	assert.Equal(t, def, cp)
}
