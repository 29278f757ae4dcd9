package catalog

import (
	"context"

	"github.com/KirkDiggler/rpg-caravan/internal/entities"
	"github.com/KirkDiggler/rpg-caravan/internal/narrative"
)

// Effect ids of the hunger ladder
const (
	EffectHunger   = "hunger"
	EffectStarving = "starving"
)

// StarvationDamage is the damage starving deals every day
const StarvationDamage = 1

func say(text string) entities.EffectHook {
	return func(ctx context.Context, host entities.EffectHost, c *entities.Character) {
		host.Narrate(ctx, c.Name()+text, narrative.LevelDetail)
	}
}

func defaultEffects() []*entities.Effect {
	return []*entities.Effect{
		{
			ID:          EffectHunger,
			Name:        "Hunger",
			Description: "I need to eat food, or I will start to starve!",
			OnStart:     say(" is hungry."),
			OnEnd:       say(" is no longer hungry."),
		},
		{
			ID:          EffectStarving,
			Name:        "Starving",
			Description: "I am starving!",
			OnStart:     say(" is now starving."),
			OnTick: func(ctx context.Context, host entities.EffectHost, c *entities.Character) {
				if !c.IsAlive() {
					return
				}
				host.Narrate(ctx, c.Name()+" suffers from starvation. (1 damage)", narrative.LevelDetail)
				host.Hurt(ctx, c, StarvationDamage)
			},
			OnEnd: say(" is no longer starving."),
		},
	}
}
