package game

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-caravan/internal/catalog"
	"github.com/KirkDiggler/rpg-caravan/internal/engine"
	"github.com/KirkDiggler/rpg-caravan/internal/engine/effects"
	"github.com/KirkDiggler/rpg-caravan/internal/engine/inventory"
	"github.com/KirkDiggler/rpg-caravan/internal/entities"
	"github.com/KirkDiggler/rpg-caravan/internal/errors"
	"github.com/KirkDiggler/rpg-caravan/internal/narrative"
	"github.com/KirkDiggler/rpg-caravan/internal/orchestrators/encounter"
)

// AdvanceDay starts the next day. The order is fixed: storyline, then food,
// then effect ticks on the party followed by the enemies.
func (o *orchestrator) AdvanceDay(ctx context.Context, input *AdvanceDayInput) (out *AdvanceDayOutput, err error) {
	ctx, end := o.begin(ctx, "AdvanceDay")
	defer end(&err)

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := o.guard(); err != nil {
		return nil, err
	}
	w := o.world
	if w.InCombat() {
		return nil, errors.FailedPrecondition("cannot advance the day during combat")
	}
	if len(w.Party()) == 0 {
		return nil, errors.FailedPrecondition("the party is empty")
	}

	day := w.NextDay()
	w.Narrate(ctx, fmt.Sprintf("--- Day %d ---", day), narrative.LevelHeading)
	w.Publish(ctx, engine.EventDayStarted, w, map[string]any{engine.KeyDay: day})

	if err := o.storyline.Drive(ctx, day); err != nil {
		slog.Warn("Storyline failed",
			"world_id", w.GetID(),
			"day", day,
			"error", err,
		)
	}

	o.consume(ctx)

	effects.TickAll(ctx, w, w.Party(), w.Enemies())

	// a starving tick may have killed whoever the fight was waiting on
	o.scheduler.Resume(ctx)

	slog.Info("Day advanced",
		"world_id", w.GetID(),
		"day", day,
		"food", w.Stash().Count(catalog.ItemFood),
		"living", len(w.Living(entities.FactionParty)),
		"in_combat", w.InCombat(),
	)

	o.refresh(ctx)

	return &AdvanceDayOutput{Day: day, InCombat: w.InCombat()}, nil
}

// consume feeds the living party from the stash. Members who go without
// move one step along none, hunger, starving.
func (o *orchestrator) consume(ctx context.Context) {
	w := o.world
	living := w.Living(entities.FactionParty)
	if len(living) == 0 {
		return
	}

	food := w.Stash().Count(catalog.ItemFood)
	switch {
	case food >= len(living):
		if err := o.modifyStash(ctx, catalog.ItemFood, -len(living)); err != nil {
			slog.Warn("Failed to deduct food", "error", err)
		}
		for _, c := range living {
			o.fed(ctx, c)
		}
	case food > 0:
		for _, c := range living {
			if food == 0 {
				o.escalate(ctx, c)
				w.Narrate(ctx, c.Name()+" did not eat. (not enough food)", narrative.LevelDetail)
				continue
			}
			if err := o.modifyStash(ctx, catalog.ItemFood, -1); err != nil {
				slog.Warn("Failed to deduct food", "error", err)
			}
			food--
			o.fed(ctx, c)
			w.Narrate(ctx, c.Name()+" eats.", narrative.LevelDetail)
		}
	default:
		for _, c := range living {
			o.escalate(ctx, c)
		}
		w.Narrate(ctx, "None of the party eat. (not enough food)", narrative.LevelDetail)
	}
}

func (o *orchestrator) fed(ctx context.Context, c *entities.Character) {
	effects.Remove(ctx, o.world.Catalog(), o.world, c, catalog.EffectHunger, catalog.EffectStarving)
}

// escalate moves c one hunger step. Starving is terminal.
func (o *orchestrator) escalate(ctx context.Context, c *entities.Character) {
	cat := o.world.Catalog()
	switch {
	case c.HasEffect(catalog.EffectStarving):
	case c.HasEffect(catalog.EffectHunger):
		effects.Remove(ctx, cat, o.world, c, catalog.EffectHunger)
		effects.Add(ctx, cat, o.world, c, catalog.EffectStarving)
	default:
		effects.Add(ctx, cat, o.world, c, catalog.EffectHunger)
	}
}

func (o *orchestrator) modifyStash(ctx context.Context, itemID string, delta int) error {
	_, err := o.world.Inventory().Modify(ctx, o.world.Stash(), itemID, delta, inventory.PartyLabel)
	return err
}

// startRandomCombat spawns a balanced encounter and starts the fight
func (o *orchestrator) startRandomCombat(ctx context.Context) (*encounter.SpawnBalancedOutput, error) {
	w := o.world
	if w.InCombat() {
		return nil, errors.FailedPrecondition("combat is already in progress")
	}
	if len(w.Living(entities.FactionParty)) == 0 {
		return nil, errors.FailedPrecondition("no living party member can fight")
	}

	spawned, err := o.balancer.SpawnBalanced(ctx, &encounter.SpawnBalancedInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to spawn encounter")
	}

	if err := o.scheduler.Start(ctx); err != nil {
		w.ClearEnemies()
		return nil, errors.Wrap(err, "failed to start combat")
	}

	return spawned, nil
}
