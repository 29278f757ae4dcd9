// Package effects applies, removes and ticks status effects on characters.
package effects

import (
	"context"

	"github.com/KirkDiggler/rpg-caravan/internal/entities"
)

// Add attaches every known effect in ids that c does not hold yet and runs
// its start hook. Unknown ids are ignored.
func Add(ctx context.Context, src entities.EffectSource, host entities.EffectHost, c *entities.Character, ids ...string) {
	for _, e := range src.LookupEffects(ids...) {
		if c.AttachEffect(e) {
			e.Start(ctx, host, c)
		}
	}
}

// Remove runs the end hook of every held effect in ids and detaches it
func Remove(ctx context.Context, src entities.EffectSource, host entities.EffectHost, c *entities.Character, ids ...string) {
	for _, e := range src.LookupEffects(ids...) {
		if !c.HasEffect(e.ID) {
			continue
		}
		e.End(ctx, host, c)
		c.DetachEffect(e)
	}
}

// TickAll runs the tick hook of every effect held by every character, in
// roster order. A hook may kill the character it runs on.
func TickAll(ctx context.Context, host entities.EffectHost, characters ...[]*entities.Character) {
	for _, group := range characters {
		for _, c := range group {
			for _, e := range c.Effects() {
				e.Tick(ctx, host, c)
			}
		}
	}
}
