// pkg/view/animator.go
// Copyright(c) 2024-2026 ar-project contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package view

import (
	"log/slog"

	"github.com/LeDuc34/ar-project/pkg/log"
	"github.com/LeDuc34/ar-project/pkg/math"
)

// FlightTarget describes one camera flight: interpolate from Start to End
// over Duration seconds of tick time, pacing progress with Easing. A
// target is immutable once handed to the animator; starting another
// flight discards it.
type FlightTarget struct {
	Start    ViewState
	End      ViewState
	Duration float32 // seconds
	Easing   func(float32) float32
}

func (t FlightTarget) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("from", t.Start.Center),
		slog.Any("to", t.End.Center),
		slog.Float64("to_zoom", float64(t.End.Zoom)),
		slog.Float64("duration", float64(t.Duration)))
}

// FlyAnimator interpolates a ViewState from a start to an end value over
// a fixed duration, driven by the host's per-frame Tick. It never mutates
// viewport state itself; each tick it proposes the freshly interpolated
// state through the apply callback, which is the sole ViewState mutator.
//
// The animator is either idle (no target) or running (one target). There
// is no queue: Start while running cancels the previous flight
// immediately, discarding its remaining progress.
type FlyAnimator struct {
	events  *EventStream
	apply   func(ViewState)
	lg      *log.Logger
	target  *FlightTarget
	elapsed float32
}

func NewFlyAnimator(events *EventStream, apply func(ViewState), lg *log.Logger) *FlyAnimator {
	return &FlyAnimator{
		events: events,
		apply:  apply,
		lg:     lg,
	}
}

// Running reports whether a flight is in progress.
func (a *FlyAnimator) Running() bool {
	return a.target != nil
}

// Start begins a flight, unconditionally replacing any flight already in
// progress. A negative duration is normalized to zero, which makes the
// first tick jump straight to the end state; a nil easing gets the
// smoothstep default. FlightStarted is posted synchronously, before any
// tick runs.
func (a *FlyAnimator) Start(target FlightTarget) {
	if a.target != nil {
		a.lg.Debug("replacing in-flight target", slog.Any("target", *a.target))
	}
	if target.Duration < 0 {
		target.Duration = 0
	}
	if target.Easing == nil {
		target.Easing = math.SmoothStep
	}

	a.target = &target
	a.elapsed = 0

	a.events.Post(Event{Type: FlightStartedEvent, State: target.Start})
}

// Stop returns the animator to idle without delivering the end state and
// without a completion event. It is a no-op when no flight is running.
func (a *FlyAnimator) Stop() {
	a.target = nil
}

// Tick advances the active flight by dt seconds, delivering the
// interpolated state through the apply callback. On arrival the end state
// is applied exactly, avoiding floating-point residue from accumulated
// interpolation, and FlightCompleted is posted after that final delivery.
func (a *FlyAnimator) Tick(dt float32) {
	if a.target == nil {
		return
	}

	t := a.target
	a.elapsed += dt

	if a.elapsed >= t.Duration {
		// Includes zero-duration targets: complete on the first tick.
		a.target = nil
		a.apply(t.End)
		a.events.Post(Event{Type: FlightCompletedEvent, State: t.End})
		return
	}

	x := math.Clamp(a.elapsed/t.Duration, 0, 1)
	eased := t.Easing(x)

	a.apply(ViewState{
		Center: math.LerpGeo(float64(eased), t.Start.Center, t.End.Center),
		Zoom:   math.Lerp(eased, t.Start.Zoom, t.End.Zoom),
	})
}
