package entities

import (
	"context"

	"github.com/KirkDiggler/rpg-caravan/internal/narrative"
)

// EffectHost is what an effect hook may touch besides the character it is
// attached to
type EffectHost interface {
	Narrate(ctx context.Context, text string, level narrative.Level)
	Hurt(ctx context.Context, c *Character, damage int)
}

// EffectHook runs at one point of an effect's lifecycle
type EffectHook func(ctx context.Context, host EffectHost, c *Character)

// Effect is a status effect definition. Characters hold references to the
// catalog's single instance; nothing is cloned per character.
type Effect struct {
	ID          string
	Name        string
	Description string

	OnStart EffectHook
	OnTick  EffectHook
	OnEnd   EffectHook
}

// Start runs OnStart if set
func (e *Effect) Start(ctx context.Context, host EffectHost, c *Character) {
	if e.OnStart != nil {
		e.OnStart(ctx, host, c)
	}
}

// Tick runs OnTick if set
func (e *Effect) Tick(ctx context.Context, host EffectHost, c *Character) {
	if e.OnTick != nil {
		e.OnTick(ctx, host, c)
	}
}

// End runs OnEnd if set
func (e *Effect) End(ctx context.Context, host EffectHost, c *Character) {
	if e.OnEnd != nil {
		e.OnEnd(ctx, host, c)
	}
}

// EffectSource resolves effect names. Unknown names are dropped.
type EffectSource interface {
	LookupEffects(ids ...string) []*Effect
}
