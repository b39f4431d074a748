// pkg/view/animator_test.go
// Copyright(c) 2024-2026 ar-project contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package view

import (
	"testing"

	"github.com/LeDuc34/ar-project/pkg/math"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testOrigin = ViewState{Center: math.GeoPosition{}, Zoom: 10}
	testParis  = ViewState{Center: math.GeoPosition{Latitude: 48.8566, Longitude: 2.3522}, Zoom: 15}
)

type animatorRecorder struct {
	applied []ViewState
	events  []Event
}

func newTestAnimator() (*FlyAnimator, *animatorRecorder) {
	rec := &animatorRecorder{}
	stream := NewEventStream(nil)
	stream.Subscribe(func(ev Event) { rec.events = append(rec.events, ev) })
	anim := NewFlyAnimator(stream, func(s ViewState) { rec.applied = append(rec.applied, s) }, nil)
	return anim, rec
}

func TestAnimatorArrivesExactly(t *testing.T) {
	anim, rec := newTestAnimator()

	anim.Start(FlightTarget{Start: testOrigin, End: testParis, Duration: 1})
	assert.True(t, anim.Running())

	// 60 ticks of 1/60s: accumulated dt reaches the duration with
	// floating-point slop, yet the final state must be exact.
	for i := 0; i < 120 && anim.Running(); i++ {
		anim.Tick(1.0 / 60)
	}

	assert.False(t, anim.Running())
	require.NotEmpty(t, rec.applied)
	final := rec.applied[len(rec.applied)-1]
	assert.Equal(t, testParis, final)
}

func TestAnimatorIntermediateStates(t *testing.T) {
	anim, rec := newTestAnimator()

	anim.Start(FlightTarget{Start: testOrigin, End: testParis, Duration: 1, Easing: math.EaseLinear})
	anim.Tick(0.25)
	anim.Tick(0.25)

	require.Len(t, rec.applied, 2)
	assert.InDelta(t, testParis.Center.Latitude/4, rec.applied[0].Center.Latitude, 1e-4)
	assert.InDelta(t, testParis.Center.Latitude/2, rec.applied[1].Center.Latitude, 1e-4)
	assert.InDelta(t, math.Lerp(float32(0.5), testOrigin.Zoom, testParis.Zoom), rec.applied[1].Zoom, 1e-4)
	assert.True(t, anim.Running())
}

func TestAnimatorZeroDurationCompletesOnFirstTick(t *testing.T) {
	for _, duration := range []float32{0, -1} {
		anim, rec := newTestAnimator()

		anim.Start(FlightTarget{Start: testOrigin, End: testParis, Duration: duration})
		assert.True(t, anim.Running())

		anim.Tick(1.0 / 60)
		assert.False(t, anim.Running())

		require.Len(t, rec.applied, 1)
		assert.Equal(t, testParis, rec.applied[0])

		require.Len(t, rec.events, 2)
		assert.Equal(t, FlightStartedEvent, rec.events[0].Type)
		assert.Equal(t, FlightCompletedEvent, rec.events[1].Type)
		assert.Equal(t, testParis, rec.events[1].State)
	}
}

func TestAnimatorStartCancelsPreviousFlight(t *testing.T) {
	anim, rec := newTestAnimator()

	anim.Start(FlightTarget{Start: testOrigin, End: testParis, Duration: 1})
	anim.Tick(0.5)

	tokyo := ViewState{Center: math.GeoPosition{Latitude: 35.6764, Longitude: 139.65}, Zoom: 12}
	anim.Start(FlightTarget{Start: rec.applied[len(rec.applied)-1], End: tokyo, Duration: 1})

	for anim.Running() {
		anim.Tick(0.25)
	}

	// Only the second flight completes; the first never delivers its end
	// state.
	var completed []ViewState
	for _, ev := range rec.events {
		if ev.Type == FlightCompletedEvent {
			completed = append(completed, ev.State)
		}
	}
	require.Len(t, completed, 1)
	assert.Equal(t, tokyo, completed[0])
}

func TestAnimatorStopIsSilent(t *testing.T) {
	anim, rec := newTestAnimator()

	anim.Start(FlightTarget{Start: testOrigin, End: testParis, Duration: 1})
	anim.Tick(0.25)
	applied := len(rec.applied)

	anim.Stop()
	assert.False(t, anim.Running())
	anim.Tick(0.25)

	assert.Len(t, rec.applied, applied)
	for _, ev := range rec.events {
		assert.NotEqual(t, FlightCompletedEvent, ev.Type)
	}

	anim.Stop() // idle Stop is a no-op
}

func TestAnimatorEventOrder(t *testing.T) {
	anim, rec := newTestAnimator()

	anim.Start(FlightTarget{Start: testOrigin, End: testParis, Duration: 0.5, Easing: math.EaseLinear})
	for anim.Running() {
		anim.Tick(0.1)
	}

	require.GreaterOrEqual(t, len(rec.events), 2)
	assert.Equal(t, FlightStartedEvent, rec.events[0].Type)
	assert.Equal(t, testOrigin, rec.events[0].State)
	assert.Equal(t, FlightCompletedEvent, rec.events[len(rec.events)-1].Type)
}
