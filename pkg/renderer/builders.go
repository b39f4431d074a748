// pkg/renderer/builders.go
// Copyright(c) 2024-2026 ar-project contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"sync"
)

///////////////////////////////////////////////////////////////////////////
// DrawBuilders

// The *DrawBuilder types accumulate a number of independent things of the
// same kind to draw (line segments, triangles) and then hand the
// resulting vertex and index buffers over in one batch, so the host
// engine can upload them as single primitives rather than many small
// ones.

// LinesDrawBuilder accumulates line segments in render space. Note that
// it does not carry colors; whatever line material the host attaches to
// the emitted buffers applies to all of the segments.
type LinesDrawBuilder struct {
	p       [][3]float32
	indices [][2]int32
}

// Reset resets the internal arrays used for accumulating lines,
// maintaining the initial allocations.
func (l *LinesDrawBuilder) Reset() {
	l.p = l.p[:0]
	l.indices = l.indices[:0]
}

// AddLine adds a line with the specified vertex positions to the set of
// lines to be drawn.
func (l *LinesDrawBuilder) AddLine(p0, p1 [3]float32) {
	idx := int32(len(l.p))
	l.p = append(l.p, p0, p1)
	l.indices = append(l.indices, [2]int32{idx, idx + 1})
}

// AddLineStrip adds multiple lines to the lines draw builder where each
// line connects successive pairs of points.
func (l *LinesDrawBuilder) AddLineStrip(p [][3]float32) {
	idx := int32(len(l.p))
	l.p = append(l.p, p...)
	for i := 0; i < len(p)-1; i++ {
		l.indices = append(l.indices, [2]int32{idx + int32(i), idx + int32(i+1)})
	}
}

// AddLineLoop adds a line loop, like a line strip but where the last
// vertex additionally connects back to the first.
func (l *LinesDrawBuilder) AddLineLoop(p [][3]float32) {
	idx := int32(len(l.p))
	l.p = append(l.p, p...)
	for i := range p {
		l.indices = append(l.indices, [2]int32{idx + int32(i), idx + int32((i+1)%len(p))})
	}
}

// Vertices returns the accumulated vertex positions; the slice aliases
// the builder's storage and is only valid until the next Reset.
func (l *LinesDrawBuilder) Vertices() [][3]float32 {
	return l.p
}

// Segments returns index pairs into Vertices, one per line segment.
func (l *LinesDrawBuilder) Segments() [][2]int32 {
	return l.indices
}

// LinesDrawBuilders are managed using a sync.Pool so that their buffer
// allocations persist across multiple uses.
var linesDrawBuilderPool = sync.Pool{New: func() any { return &LinesDrawBuilder{} }}

func GetLinesDrawBuilder() *LinesDrawBuilder {
	return linesDrawBuilderPool.Get().(*LinesDrawBuilder)
}

func ReturnLinesDrawBuilder(ld *LinesDrawBuilder) {
	ld.Reset()
	linesDrawBuilderPool.Put(ld)
}

// TrianglesDrawBuilder collects triangles to be batched up into a single
// mesh. As with LinesDrawBuilder there is no per-triangle color; the
// host's fill material applies to the whole batch.
type TrianglesDrawBuilder struct {
	p       [][3]float32
	indices [][3]int32
}

func (t *TrianglesDrawBuilder) Reset() {
	t.p = t.p[:0]
	t.indices = t.indices[:0]
}

// AddTriangle adds a triangle with the specified three vertices to be
// drawn.
func (t *TrianglesDrawBuilder) AddTriangle(p0, p1, p2 [3]float32) {
	idx := int32(len(t.p))
	t.p = append(t.p, p0, p1, p2)
	t.indices = append(t.indices, [3]int32{idx, idx + 1, idx + 2})
}

// AddFan adds a triangle fan anchored at the first of the given points:
// every triangle references vertex 0, giving n-2 triangles for n points.
// The fan covers the polygon's interior only when the ring is convex.
func (t *TrianglesDrawBuilder) AddFan(p [][3]float32) {
	if len(p) < 3 {
		return
	}
	idx := int32(len(t.p))
	t.p = append(t.p, p...)
	for i := 1; i < len(p)-1; i++ {
		t.indices = append(t.indices, [3]int32{idx, idx + int32(i), idx + int32(i+1)})
	}
}

// Vertices returns the accumulated vertex positions; the slice aliases
// the builder's storage and is only valid until the next Reset.
func (t *TrianglesDrawBuilder) Vertices() [][3]float32 {
	return t.p
}

// Triangles returns index triples into Vertices, one per triangle.
func (t *TrianglesDrawBuilder) Triangles() [][3]int32 {
	return t.indices
}

// TrianglesDrawBuilders are managed using a sync.Pool so that their
// buffer allocations persist across multiple uses.
var trianglesDrawBuilderPool = sync.Pool{New: func() any { return &TrianglesDrawBuilder{} }}

func GetTrianglesDrawBuilder() *TrianglesDrawBuilder {
	return trianglesDrawBuilderPool.Get().(*TrianglesDrawBuilder)
}

func ReturnTrianglesDrawBuilder(td *TrianglesDrawBuilder) {
	td.Reset()
	trianglesDrawBuilderPool.Put(td)
}
