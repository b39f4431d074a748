// pkg/renderer/errors.go
// Copyright(c) 2024-2026 ar-project contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import "errors"

var (
	// ErrInvalidFootprint: the footprint ring has fewer than three
	// points and cannot enclose any area.
	ErrInvalidFootprint = errors.New("Footprint must have at least three points")
	// ErrProjectionUnavailable: no projector is wired up, so geographic
	// coordinates cannot be converted to render space at all.
	ErrProjectionUnavailable = errors.New("No geographic projector available")
	// ErrProjectionFailed: the projector is present but could not
	// convert one of the footprint's coordinates.
	ErrProjectionFailed = errors.New("Unable to project coordinate to render space")
)
