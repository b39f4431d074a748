// pkg/view/events.go
// Copyright(c) 2024-2026 ar-project contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package view

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/LeDuc34/ar-project/pkg/log"
)

type EventType int

const (
	InitializedEvent EventType = iota
	MovedEvent
	FlightStartedEvent
	FlightCompletedEvent
	NumEventTypes
)

func (t EventType) String() string {
	return []string{"Initialized", "Moved", "FlightStarted", "FlightCompleted"}[t]
}

// Event describes a viewport state change. Every event carries the
// ViewState that was current when it was posted.
type Event struct {
	Type  EventType
	State ViewState
}

func (e Event) String() string {
	return fmt.Sprintf("%s: center %s zoom %.2f", e.Type, e.State.Center.DDString(), e.State.Zoom)
}

func (e Event) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("type", e.Type.String()),
		slog.Any("center", e.State.Center),
		slog.Float64("zoom", float64(e.State.Zoom)))
}

// EventStream provides a basic observer interface that allows the
// viewport and animator to post events and other parts of the system to
// subscribe and be notified of them. Delivery is synchronous in the
// posting goroutine; there is no ordering guarantee between listeners and
// a listener cannot cancel delivery to the others.
type EventStream struct {
	mu            sync.Mutex
	subscriptions map[*EventsSubscription]interface{}
	lg            *log.Logger
}

type EventsSubscription struct {
	stream *EventStream
	notify func(Event)
	source string
}

func (e *EventsSubscription) LogValue() slog.Value {
	return slog.GroupValue(slog.String("source", e.source))
}

func NewEventStream(lg *log.Logger) *EventStream {
	return &EventStream{
		subscriptions: make(map[*EventsSubscription]interface{}),
		lg:            lg,
	}
}

// Subscribe registers a listener callback and returns an
// EventsSubscription that can later be passed to Unsubscribe. The
// callback runs synchronously on every Post.
func (e *EventStream) Subscribe(notify func(Event)) *EventsSubscription {
	// Record the subscriber's callsite, so that we can more easily debug
	// misbehaving subscribers.
	_, fn, line, _ := runtime.Caller(1)
	source := fmt.Sprintf("%s:%d", fn, line)

	sub := &EventsSubscription{
		stream: e,
		notify: notify,
		source: source,
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.subscriptions[sub] = nil
	return sub
}

// Unsubscribe removes a subscriber from the subscriber list.
func (e *EventsSubscription) Unsubscribe() {
	e.stream.mu.Lock()
	defer e.stream.mu.Unlock()

	if _, ok := e.stream.subscriptions[e]; !ok {
		e.stream.lg.Errorf("Attempted to unsubscribe invalid subscription: %+v", e)
	}
	delete(e.stream.subscriptions, e)
	e.stream = nil
}

// Post delivers an event to all current subscribers before returning.
// The subscriber set is snapshotted first so that a listener may
// unsubscribe (itself or others) from within its callback.
func (e *EventStream) Post(event Event) {
	e.mu.Lock()
	subs := make([]*EventsSubscription, 0, len(e.subscriptions))
	for sub := range e.subscriptions {
		subs = append(subs, sub)
	}
	e.mu.Unlock()

	e.lg.Debug("posted event", slog.Any("event", event))

	for _, sub := range subs {
		sub.notify(event)
	}
}
