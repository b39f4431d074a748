// pkg/view/viewport.go
// Copyright(c) 2024-2026 ar-project contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package view

import (
	"log/slog"

	"github.com/LeDuc34/ar-project/pkg/log"
	"github.com/LeDuc34/ar-project/pkg/math"
)

// ViewState is the authoritative map camera state: geographic center and
// zoom level. It is owned exclusively by the MapViewport; everything else
// observes it through events.
type ViewState struct {
	Center math.GeoPosition
	Zoom   float32
}

func (s ViewState) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("center", s.Center),
		slog.Float64("zoom", float64(s.Zoom)))
}

// GeoProjector is the projection capability the host map engine supplies:
// transforming between geographic coordinates and the engine's
// render-space coordinate system. The ok result is false when the engine
// cannot perform the conversion; the position returned alongside it is
// the zero value, never a fabricated coordinate.
type GeoProjector interface {
	ProjectGeoToRender(p math.GeoPosition) ([3]float32, bool)
	ProjectRenderToGeo(p [3]float32) (math.GeoPosition, bool)
}

// MapEngine is the full capability surface of the external map engine: a
// projector plus acceptance of the authoritative view state, which the
// engine uses to drive its own tile rendering.
type MapEngine interface {
	GeoProjector
	PushViewState(state ViewState) error
}

// Config collects the viewport's tunables. Zero values select the
// defaults from DefaultConfig.
type Config struct {
	DefaultFlyDuration   float32 // seconds, for FlyTo with a negative duration
	FootprintFlyDuration float32 // seconds, for CenterOnFootprint with a negative duration
	Easing               func(float32) float32
}

func DefaultConfig() Config {
	return Config{
		DefaultFlyDuration:   1.2,
		FootprintFlyDuration: 0.8,
		Easing:               math.SmoothStep,
	}
}

// MapViewport owns the current geographic center and zoom of the map
// view. It offers instant repositioning, animated flights via the
// FlyAnimator, and projection pass-throughs to the host engine. All
// operations are synchronous and non-blocking and are expected to run on
// the host's frame loop; the viewport does no locking of its own.
type MapViewport struct {
	engine MapEngine
	events *EventStream
	anim   *FlyAnimator
	lg     *log.Logger
	config Config
	state  ViewState
}

// NewMapViewport returns a viewport pushing to the given engine. A nil
// engine is tolerated: state changes still happen and events still fire,
// but projections report failure until an engine is attached.
func NewMapViewport(engine MapEngine, config Config, lg *log.Logger) *MapViewport {
	def := DefaultConfig()
	if config.DefaultFlyDuration <= 0 {
		config.DefaultFlyDuration = def.DefaultFlyDuration
	}
	if config.FootprintFlyDuration <= 0 {
		config.FootprintFlyDuration = def.FootprintFlyDuration
	}
	if config.Easing == nil {
		config.Easing = def.Easing
	}

	v := &MapViewport{
		engine: engine,
		events: NewEventStream(lg),
		lg:     lg,
		config: config,
	}
	v.anim = NewFlyAnimator(v.events, v.applyAnimated, lg)
	return v
}

// Events returns the viewport's event stream for Subscribe calls.
func (v *MapViewport) Events() *EventStream {
	return v.events
}

// Animator exposes the fly animator, e.g. for Stop or Running queries.
func (v *MapViewport) Animator() *FlyAnimator {
	return v.anim
}

// State returns the current view state.
func (v *MapViewport) State() ViewState {
	return v.state
}

// Initialize sets the view state directly, pushes it to the engine, and
// posts Initialized. Calling it again re-initializes. Out-of-range
// coordinates are rejected with a log message and no state change.
func (v *MapViewport) Initialize(pos math.GeoPosition, zoom float32) {
	if !pos.Valid() {
		v.lg.Warn("ignoring initialize to invalid position", slog.Any("position", pos))
		return
	}

	v.state = ViewState{Center: pos, Zoom: zoom}
	v.push()
	v.events.Post(Event{Type: InitializedEvent, State: v.state})
}

// SetPosition updates the view state instantly. It deliberately does not
// touch the animator: an active flight keeps running and will keep
// proposing its own positions unless the caller also stops it.
func (v *MapViewport) SetPosition(pos math.GeoPosition, zoom float32) {
	if !pos.Valid() {
		v.lg.Warn("ignoring move to invalid position", slog.Any("position", pos))
		return
	}

	v.state = ViewState{Center: pos, Zoom: zoom}
	v.push()
	v.events.Post(Event{Type: MovedEvent, State: v.state})
}

// FlyTo starts an animated flight from the current state to the given
// center and zoom. A negative duration selects the configured default.
// Any flight already in progress is cancelled by the new one.
func (v *MapViewport) FlyTo(pos math.GeoPosition, zoom float32, duration float32) {
	if !pos.Valid() {
		v.lg.Warn("ignoring flight to invalid position", slog.Any("position", pos))
		return
	}
	if duration < 0 {
		duration = v.config.DefaultFlyDuration
	}

	v.anim.Start(FlightTarget{
		Start:    v.state,
		End:      ViewState{Center: pos, Zoom: zoom},
		Duration: duration,
		Easing:   v.config.Easing,
	})
}

// CenterOnFootprint flies to the footprint's centroid at a zoom level
// estimated from its extent. A negative duration selects the configured
// footprint-centering default. A nil or empty footprint is logged and
// ignored; nothing propagates to the caller.
func (v *MapViewport) CenterOnFootprint(fp math.Footprint, duration float32) {
	centroid, ok := fp.Centroid()
	if !ok {
		v.lg.Warn("ignoring center request for empty footprint")
		return
	}
	if duration < 0 {
		duration = v.config.FootprintFlyDuration
	}

	v.FlyTo(centroid, float32(EstimateZoom(fp)), duration)
}

// Tick advances any active flight by dt seconds. The host calls this once
// per frame.
func (v *MapViewport) Tick(dt float32) {
	v.anim.Tick(dt)
}

// GeoToRenderPosition projects a geographic position into render space.
// ok is false if no engine is attached or the engine cannot project the
// position; the returned position is then the zero value and must not be
// used.
func (v *MapViewport) GeoToRenderPosition(p math.GeoPosition) ([3]float32, bool) {
	if v.engine == nil {
		return [3]float32{}, false
	}
	return v.engine.ProjectGeoToRender(p)
}

// RenderToGeoPosition projects a render-space position back to geographic
// coordinates, with the same failure contract as GeoToRenderPosition.
func (v *MapViewport) RenderToGeoPosition(p [3]float32) (math.GeoPosition, bool) {
	if v.engine == nil {
		return math.GeoPosition{}, false
	}
	return v.engine.ProjectRenderToGeo(p)
}

// applyAnimated is the animator's per-tick proposal sink; it is the only
// path besides Initialize/SetPosition that mutates ViewState.
func (v *MapViewport) applyAnimated(state ViewState) {
	v.state = state
	v.push()
	v.events.Post(Event{Type: MovedEvent, State: v.state})
}

// push hands the authoritative state to the engine. Push failures are
// logged and otherwise ignored; in particular they never halt a running
// animation, which is pure arithmetic and will simply push again next
// tick.
func (v *MapViewport) push() {
	if v.engine == nil {
		v.lg.Debug("no map engine attached; skipping view state push")
		return
	}
	if err := v.engine.PushViewState(v.state); err != nil {
		v.lg.Error("failed to push view state to map engine",
			slog.Any("state", v.state), slog.Any("error", err))
	}
}
