// pkg/math/latlong.go
// Copyright(c) 2024-2026 ar-project contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	"fmt"
	"log/slog"
)

///////////////////////////////////////////////////////////////////////////
// GeoPosition

// GeoPosition is a point on the Earth in decimal degrees. Geographic
// positions are kept in float64 since parcel footprints are often only a
// few meters across and float32 latitude/longitude loses precision at
// that scale.
type GeoPosition struct {
	Latitude  float64
	Longitude float64
}

// Vec2 returns the position as an array for bounding-box and
// interpolation helpers. Important: 0 (x) is longitude, 1 (y) is latitude.
func (p GeoPosition) Vec2() [2]float64 {
	return [2]float64{p.Longitude, p.Latitude}
}

// Valid reports whether the position is within the usual coordinate
// ranges, latitude in [-90,90] and longitude in [-180,180].
func (p GeoPosition) Valid() bool {
	return p.Latitude >= -90 && p.Latitude <= 90 &&
		p.Longitude >= -180 && p.Longitude <= 180
}

func (p GeoPosition) IsZero() bool {
	return p.Latitude == 0 && p.Longitude == 0
}

// DDString returns the position in decimal degrees, e.g.:
// (48.856600, 2.352200)
func (p GeoPosition) DDString() string {
	return fmt.Sprintf("(%f, %f)", p.Latitude, p.Longitude)
}

func (p GeoPosition) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("lat", p.Latitude),
		slog.Float64("lon", p.Longitude))
}

// LerpGeo interpolates x of the way from a to b, linearly and
// independently in latitude and longitude. This is coordinate-space
// interpolation, not a great-circle path; over the distances a map camera
// flight covers the difference doesn't matter visually.
func LerpGeo(x float64, a, b GeoPosition) GeoPosition {
	return GeoPosition{
		Latitude:  Lerp(x, a.Latitude, b.Latitude),
		Longitude: Lerp(x, a.Longitude, b.Longitude),
	}
}

///////////////////////////////////////////////////////////////////////////
// Footprint

// Footprint is an ordered ring of geographic positions describing a
// parcel or area boundary. The ring is implicitly closed: the last point
// connects back to the first, which therefore should not be repeated.
type Footprint []GeoPosition

// Extent returns the axis-aligned bounding box of the footprint in
// degrees (longitude on axis 0, latitude on axis 1).
func (f Footprint) Extent() Extent2D {
	e := EmptyExtent2D()
	for _, p := range f {
		e = Union(e, p.Vec2())
	}
	return e
}

// Centroid returns the arithmetic mean of the ring's vertices. The
// second return value is false for an empty footprint.
func (f Footprint) Centroid() (GeoPosition, bool) {
	if len(f) == 0 {
		return GeoPosition{}, false
	}
	var lat, lon float64
	for _, p := range f {
		lat += p.Latitude
		lon += p.Longitude
	}
	n := float64(len(f))
	return GeoPosition{Latitude: lat / n, Longitude: lon / n}, true
}
