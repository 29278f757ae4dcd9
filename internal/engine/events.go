package engine

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"
)

// Event types published on the world's bus
const (
	EventDayStarted     = "caravan.day.started"
	EventCombatStarted  = "caravan.combat.started"
	EventCombatEnded    = "caravan.combat.ended"
	EventCharacterDied  = "caravan.character.died"
	EventCharacterAdded = "caravan.character.added"
	// EventRefresh tells presenters that derived display state is stale
	EventRefresh = "caravan.display.refresh"
)

// Context keys set on published events
const (
	KeyDay     = "day"
	KeyOutcome = "outcome"
	KeyFaction = "faction"
)

// Publish sends an event from the world to target. While the world is held
// the event is queued instead and goes out with Release.
func (w *World) Publish(ctx context.Context, eventType string, target core.Entity, data map[string]any) {
	event := events.NewGameEvent(eventType, w, target)
	for k, v := range data {
		event.Context().Set(k, v)
	}

	if w.holding {
		w.held = append(w.held, event)
		return
	}
	w.send(ctx, event)
}

// Hold queues published events until Release. Callers that hold a lock around
// world mutations use it so subscribers never run under that lock.
func (w *World) Hold() {
	w.holding = true
}

// Release stops queueing and returns a func that publishes the queued events
// in order. The func touches only the bus, so it can run after the caller
// has dropped its lock.
func (w *World) Release() func(ctx context.Context) {
	queued := w.held
	w.held = nil
	w.holding = false
	return func(ctx context.Context) {
		for _, event := range queued {
			w.send(ctx, event)
		}
	}
}

// send publishes on the bus. Bus failures are logged and swallowed; nothing
// in the simulation depends on a subscriber.
func (w *World) send(ctx context.Context, event events.Event) {
	if err := w.bus.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish event",
			"world_id", w.id,
			"event_type", event.Type(),
			"error", err,
		)
	}
}
