// pkg/renderer/highlight_test.go
// Copyright(c) 2024-2026 ar-project contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"testing"

	"github.com/LeDuc34/ar-project/pkg/math"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flatProjector maps degrees straight to meters on the XZ ground plane.
// Positions listed in reject fail to project.
type flatProjector struct {
	reject map[math.GeoPosition]bool
}

func (p *flatProjector) ProjectGeoToRender(gp math.GeoPosition) ([3]float32, bool) {
	if p.reject[gp] {
		return [3]float32{}, false
	}
	return [3]float32{
		float32(gp.Longitude * 90000),
		0,
		float32(gp.Latitude * 90000),
	}, true
}

func parcelFootprint() math.Footprint {
	return math.Footprint{
		{Latitude: 0, Longitude: 0},
		{Latitude: 0, Longitude: 0.001},
		{Latitude: 0.001, Longitude: 0.001},
		{Latitude: 0.001, Longitude: 0},
	}
}

func TestHighlightFanTriangulation(t *testing.T) {
	fr := NewFootprintRenderer(&flatProjector{}, DefaultStyle(), nil)

	fp := parcelFootprint()
	g, err := fr.Highlight(fp)
	require.NoError(t, err)
	require.NotNil(t, g)
	assert.Same(t, g, fr.CurrentHighlight())

	assert.Len(t, g.FillVertices, len(fp))
	require.Len(t, g.FillTriangles, len(fp)-2)
	for _, tri := range g.FillTriangles {
		// Fan triangulation: every triangle shares the first vertex.
		assert.Equal(t, int32(0), tri[0])
	}
}

func TestHighlightOutlineClosed(t *testing.T) {
	fr := NewFootprintRenderer(&flatProjector{}, DefaultStyle(), nil)

	fp := parcelFootprint()
	g, err := fr.Highlight(fp)
	require.NoError(t, err)

	assert.Len(t, g.OutlinePoints, len(fp))
	require.Len(t, g.OutlineSegments, len(fp))
	last := g.OutlineSegments[len(g.OutlineSegments)-1]
	assert.Equal(t, [2]int32{int32(len(fp) - 1), 0}, last)
}

func TestHighlightElevation(t *testing.T) {
	style := DefaultStyle()
	style.Elevation = 2
	style.OutlineLift = 0.25
	fr := NewFootprintRenderer(&flatProjector{}, style, nil)

	g, err := fr.Highlight(parcelFootprint())
	require.NoError(t, err)

	for _, p := range g.FillVertices {
		assert.Equal(t, float32(2), p[1])
	}
	for _, p := range g.OutlinePoints {
		assert.Equal(t, float32(2.25), p[1])
	}
}

func TestHighlightTooFewPoints(t *testing.T) {
	fr := NewFootprintRenderer(&flatProjector{}, DefaultStyle(), nil)

	// Establish a highlight first; a failing request must still clear it.
	_, err := fr.Highlight(parcelFootprint())
	require.NoError(t, err)
	require.NotNil(t, fr.CurrentHighlight())

	for _, fp := range []math.Footprint{
		nil,
		{{Latitude: 0, Longitude: 0}},
		{{Latitude: 0, Longitude: 0}, {Latitude: 0.001, Longitude: 0.001}},
	} {
		g, err := fr.Highlight(fp)
		assert.ErrorIs(t, err, ErrInvalidFootprint)
		assert.Nil(t, g)
		assert.Nil(t, fr.CurrentHighlight())
	}
}

func TestHighlightNoProjector(t *testing.T) {
	fr := NewFootprintRenderer(nil, DefaultStyle(), nil)

	g, err := fr.Highlight(parcelFootprint())
	assert.ErrorIs(t, err, ErrProjectionUnavailable)
	assert.Nil(t, g)
}

func TestHighlightProjectionFailure(t *testing.T) {
	fp := parcelFootprint()
	proj := &flatProjector{reject: map[math.GeoPosition]bool{fp[2]: true}}
	fr := NewFootprintRenderer(proj, DefaultStyle(), nil)

	g, err := fr.Highlight(fp)
	assert.ErrorIs(t, err, ErrProjectionFailed)
	assert.Nil(t, g)
	assert.Nil(t, fr.CurrentHighlight())
}

func TestClearHighlightReleaseHook(t *testing.T) {
	fr := NewFootprintRenderer(&flatProjector{}, DefaultStyle(), nil)

	var released []*HighlightGeometry
	fr.SetReleaseHook(func(g *HighlightGeometry) { released = append(released, g) })

	g, err := fr.Highlight(parcelFootprint())
	require.NoError(t, err)

	fr.ClearHighlight()
	fr.ClearHighlight() // idempotent

	require.Len(t, released, 1)
	assert.Same(t, g, released[0])
	assert.Nil(t, fr.CurrentHighlight())
}

func TestHighlightReplacesPrevious(t *testing.T) {
	fr := NewFootprintRenderer(&flatProjector{}, DefaultStyle(), nil)

	var released int
	fr.SetReleaseHook(func(*HighlightGeometry) { released++ })

	first, err := fr.Highlight(parcelFootprint())
	require.NoError(t, err)

	second, err := fr.Highlight(math.Footprint{
		{Latitude: 0.002, Longitude: 0.002},
		{Latitude: 0.002, Longitude: 0.003},
		{Latitude: 0.003, Longitude: 0.003},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, released)
	assert.NotSame(t, first, second)
	assert.Same(t, second, fr.CurrentHighlight())
}

func TestHighlightEarcut(t *testing.T) {
	style := DefaultStyle()
	style.Triangulation = TriangulateEarcut
	style.Elevation = 1.5
	fr := NewFootprintRenderer(&flatProjector{}, style, nil)

	// Concave L-shape: a fan from vertex 0 would cover the notch; earcut
	// must not.
	fp := math.Footprint{
		{Latitude: 0, Longitude: 0},
		{Latitude: 0, Longitude: 0.002},
		{Latitude: 0.001, Longitude: 0.002},
		{Latitude: 0.001, Longitude: 0.001},
		{Latitude: 0.002, Longitude: 0.001},
		{Latitude: 0.002, Longitude: 0},
	}

	g, err := fr.Highlight(fp)
	require.NoError(t, err)

	require.Len(t, g.FillTriangles, len(fp)-2)
	for _, p := range g.FillVertices {
		assert.Equal(t, float32(1.5), p[1])
	}
	// The outline is unaffected by the triangulation mode.
	assert.Len(t, g.OutlinePoints, len(fp))
}
