// pkg/renderer/highlight.go
// Copyright(c) 2024-2026 ar-project contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"fmt"
	"log/slog"

	"github.com/LeDuc34/ar-project/pkg/log"
	"github.com/LeDuc34/ar-project/pkg/math"

	"github.com/mmp/earcut-go"
)

// Projector is the slice of the map engine's capabilities the highlight
// renderer needs: geographic to render-space conversion.
type Projector interface {
	ProjectGeoToRender(p math.GeoPosition) ([3]float32, bool)
}

// TriangulationMode selects how a footprint's fill is triangulated.
type TriangulationMode int

const (
	// TriangulateFan fans out from vertex 0: n-2 triangles, each
	// referencing the first vertex. Correct only for convex rings; a
	// non-convex footprint gets a visually wrong fill.
	TriangulateFan TriangulationMode = iota
	// TriangulateEarcut runs ear-clipping triangulation instead, which
	// handles non-convex rings. Opt-in; never substituted silently.
	TriangulateEarcut
)

// Style collects the visual parameters of a footprint highlight. Render
// space is assumed Y-up: elevation offsets are added to the vertical
// axis to lift the highlight off the terrain and avoid z-fighting.
type Style struct {
	Elevation     float32 // meters above the map surface for the fill
	OutlineLift   float32 // additional lift for the outline, above the fill
	OutlineWidth  float32
	FillColor     RGBA
	OutlineColor  RGB
	Triangulation TriangulationMode
}

func DefaultStyle() Style {
	return Style{
		Elevation:    0.5,
		OutlineLift:  0.05,
		OutlineWidth: 2,
		FillColor:    RGBFromHex(0x4f9ddb).WithAlpha(0.35),
		OutlineColor: RGBFromHex(0x2a6fb0),
	}
}

// HighlightGeometry is the renderable output of one footprint highlight:
// a filled mesh plus a closed outline loop, both in render space. The
// outline is implicitly closed; OutlineSegments includes the segment
// from the last point back to the first.
type HighlightGeometry struct {
	FillVertices    [][3]float32
	FillTriangles   [][3]int32
	OutlinePoints   [][3]float32
	OutlineSegments [][2]int32
}

func (g *HighlightGeometry) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("fill_vertices", len(g.FillVertices)),
		slog.Int("fill_triangles", len(g.FillTriangles)),
		slog.Int("outline_points", len(g.OutlinePoints)))
}

// FootprintRenderer converts parcel footprints into highlight geometry.
// At most one geometry is current at a time; a new Highlight call always
// releases the previous one first, so a failed call leaves no stale
// visual behind.
type FootprintRenderer struct {
	projector Projector
	style     Style
	lg        *log.Logger
	current   *HighlightGeometry
	release   func(*HighlightGeometry)
}

func NewFootprintRenderer(projector Projector, style Style, lg *log.Logger) *FootprintRenderer {
	return &FootprintRenderer{
		projector: projector,
		style:     style,
		lg:        lg,
	}
}

// SetReleaseHook registers a callback run once per geometry when it
// stops being current, so the host can dispose of whatever scene
// resources (meshes, line primitives, materials) it built from it.
func (r *FootprintRenderer) SetReleaseHook(release func(*HighlightGeometry)) {
	r.release = release
}

// CurrentHighlight returns the current geometry, or nil if nothing is
// highlighted.
func (r *FootprintRenderer) CurrentHighlight() *HighlightGeometry {
	return r.current
}

// Highlight replaces the current highlight with one for the given
// footprint. The previous highlight is cleared before anything else, so
// on any failure (too few points, no projector, a coordinate that fails
// to project) no highlight remains and no partial geometry is ever
// current.
func (r *FootprintRenderer) Highlight(fp math.Footprint) (*HighlightGeometry, error) {
	r.ClearHighlight()

	if len(fp) < 3 {
		return nil, fmt.Errorf("%d point(s): %w", len(fp), ErrInvalidFootprint)
	}
	if r.projector == nil {
		return nil, ErrProjectionUnavailable
	}

	// Project the full ring up front; if any point fails the whole
	// operation is abandoned with nothing built.
	fill := make([][3]float32, len(fp))
	outline := make([][3]float32, len(fp))
	for i, gp := range fp {
		p, ok := r.projector.ProjectGeoToRender(gp)
		if !ok {
			return nil, fmt.Errorf("%s: %w", gp.DDString(), ErrProjectionFailed)
		}
		// Lift above the terrain; the outline a little higher still so
		// it renders on top of the fill.
		fill[i] = [3]float32{p[0], p[1] + r.style.Elevation, p[2]}
		outline[i] = [3]float32{p[0], p[1] + r.style.Elevation + r.style.OutlineLift, p[2]}
	}

	td := GetTrianglesDrawBuilder()
	defer ReturnTrianglesDrawBuilder(td)
	switch r.style.Triangulation {
	case TriangulateEarcut:
		r.earcutFill(td, fill)
	default:
		td.AddFan(fill)
	}

	ld := GetLinesDrawBuilder()
	defer ReturnLinesDrawBuilder(ld)
	ld.AddLineLoop(outline)

	// The builders are pooled, so copy their buffers out.
	g := &HighlightGeometry{
		FillVertices:    append([][3]float32(nil), td.Vertices()...),
		FillTriangles:   append([][3]int32(nil), td.Triangles()...),
		OutlinePoints:   append([][3]float32(nil), ld.Vertices()...),
		OutlineSegments: append([][2]int32(nil), ld.Segments()...),
	}
	r.current = g

	r.lg.Debug("built footprint highlight", slog.Any("geometry", g))
	return g, nil
}

// ClearHighlight releases the current highlight's resources. Calling it
// with nothing highlighted is a no-op.
func (r *FootprintRenderer) ClearHighlight() {
	if r.current == nil {
		return
	}
	if r.release != nil {
		r.release(r.current)
	}
	r.current = nil
}

// earcutFill triangulates the (possibly non-convex) ring with
// ear-clipping. Ear-clipping works on the ground plane, so triangulate
// the (x,z) projection and restore each vertex's height afterwards;
// earcut introduces no new vertices, so the exact ground coordinates
// round-trip.
func (r *FootprintRenderer) earcutFill(td *TrianglesDrawBuilder, ring [][3]float32) {
	heights := make(map[[2]float64]float32, len(ring))
	vertices := make([]earcut.Vertex, len(ring))
	for i, p := range ring {
		v := [2]float64{float64(p[0]), float64(p[2])}
		vertices[i].P = v
		heights[v] = p[1]
	}

	for _, tri := range earcut.Triangulate(earcut.Polygon{Rings: [][]earcut.Vertex{vertices}}) {
		var p [3][3]float32
		for i, v := range tri.Vertices {
			p[i] = [3]float32{float32(v.P[0]), heights[v.P], float32(v.P[1])}
		}
		td.AddTriangle(p[0], p[1], p[2])
	}
}
