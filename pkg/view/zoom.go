// pkg/view/zoom.go
// Copyright(c) 2024-2026 ar-project contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package view

import (
	"github.com/LeDuc34/ar-project/pkg/math"
)

// MetersPerDegree approximates how many meters one degree of latitude or
// longitude covers. It is a fixed linear calibration for mid-latitude
// regions, not a geodesic computation; deployments closer to the equator
// or the poles should pass their own scale to EstimateZoomForScale.
const MetersPerDegree = 90000

// EstimateZoom picks a discrete map zoom level for a footprint from the
// maximum axis-aligned extent of its bounding box, using the
// mid-latitude MetersPerDegree calibration.
func EstimateZoom(fp math.Footprint) int {
	return EstimateZoomForScale(fp, MetersPerDegree)
}

// EstimateZoomForScale is EstimateZoom with an explicit meters-per-degree
// scale. The step thresholds are monotonic, so a larger footprint never
// gets a finer zoom than a smaller one; a degenerate footprint (zero
// extent, including nil) gets the finest level.
func EstimateZoomForScale(fp math.Footprint, metersPerDegree float64) int {
	extent := fp.Extent().MaxDimension() * metersPerDegree

	switch {
	case extent > 1000:
		return 15
	case extent > 500:
		return 16
	case extent > 200:
		return 17
	case extent > 100:
		return 18
	default:
		return 19
	}
}
