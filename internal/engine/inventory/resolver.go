// Package inventory moves items between inventories and onto characters,
// narrating every change the way the party would notice it.
package inventory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-caravan/internal/entities"
	"github.com/KirkDiggler/rpg-caravan/internal/errors"
	"github.com/KirkDiggler/rpg-caravan/internal/narrative"
)

// PartyLabel is the owner label used for the shared stash
const PartyLabel = "The party"

// Config holds the dependencies of a Resolver
type Config struct {
	Items    entities.ItemSource
	Narrator narrative.Sink
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Items == nil {
		vb.RequiredField("Items")
	}
	if c.Narrator == nil {
		vb.RequiredField("Narrator")
	}

	return vb.Build()
}

// Resolver applies inventory and equipment changes
type Resolver struct {
	items    entities.ItemSource
	narrator narrative.Sink
}

// New creates a Resolver
func New(cfg *Config) (*Resolver, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Resolver{
		items:    cfg.Items,
		narrator: cfg.Narrator,
	}, nil
}

// Modify changes the count of itemID in inv and announces it on behalf of
// owner. Non-acquirable items and a zero delta change nothing.
func (r *Resolver) Modify(ctx context.Context, inv *entities.Inventory, itemID string, delta int, owner string) (entities.Change, error) {
	item, ok := r.items.Item(itemID)
	if !ok {
		return entities.Change{}, errors.NotFoundf("item %s not found", itemID)
	}

	change := inv.Modify(item, delta)
	if !change.Applied {
		return change, nil
	}

	verb := "lost"
	if change.Gained() {
		verb = "gained"
	}
	quantity := change.Reported
	if quantity < 0 {
		quantity = -quantity
	}
	r.narrator.Line(ctx, fmt.Sprintf("%s %s %d x %s!", owner, verb, quantity, item.DisplayName()), narrative.LevelEvent)

	return change, nil
}

// Transfer moves count units of itemID from one inventory to another
func (r *Resolver) Transfer(ctx context.Context, from *entities.Inventory, fromLabel string, to *entities.Inventory, toLabel string, itemID string, count int) error {
	if count <= 0 {
		return nil
	}
	if _, err := r.Modify(ctx, from, itemID, -count, fromLabel); err != nil {
		return err
	}
	if _, err := r.Modify(ctx, to, itemID, count, toLabel); err != nil {
		return err
	}
	return nil
}

// Equip hands one unit of itemID from the stash to c, re-runs automatic
// equipment over c's personal inventory and sends back everything that did
// not end up equipped (plus any spare copies of what did).
func (r *Resolver) Equip(ctx context.Context, c *entities.Character, itemID string, stash *entities.Inventory) error {
	item, ok := r.items.Item(itemID)
	if !ok {
		return errors.NotFoundf("item %s not found", itemID)
	}
	if !item.IsEquippable() {
		return errors.InvalidArgumentf("%s cannot be equipped", item.DisplayName())
	}
	if !stash.Has(itemID) {
		return errors.FailedPreconditionf("the party has no %s", item.DisplayName())
	}

	if err := r.Transfer(ctx, stash, PartyLabel, c.Inventory, c.Name(), itemID, 1); err != nil {
		return errors.Wrapf(err, "failed to hand %s to %s", itemID, c.Name())
	}

	c.Equipment.EquipAuto(c.Inventory, r.items)

	for _, stack := range c.Inventory.Stacks() {
		keep := 0
		if c.Equipment.IsEquipped(stack.ItemID) {
			keep = 1
		}
		spare := stack.Count - keep
		if err := r.Transfer(ctx, c.Inventory, c.Name(), stash, PartyLabel, stack.ItemID, spare); err != nil {
			return errors.Wrapf(err, "failed to return %s to the party", stack.ItemID)
		}
	}

	slog.Debug("Equipped item",
		"character_id", c.GetID(),
		"item_id", itemID,
		"equipped", c.Equipment.Snapshot(),
	)

	return nil
}

// ReturnCarried empties c's personal inventory into the stash. Items the
// party cannot acquire (natural weapons) are dropped. Everything c wore
// goes with it, so all slots fall back to their fillers.
func (r *Resolver) ReturnCarried(ctx context.Context, c *entities.Character, stash *entities.Inventory) error {
	for _, stack := range c.Inventory.Stacks() {
		if _, err := r.Modify(ctx, stash, stack.ItemID, stack.Count, PartyLabel); err != nil {
			return errors.Wrapf(err, "failed to recover %s from %s", stack.ItemID, c.Name())
		}
	}
	c.Inventory.Clear()
	c.Equipment.Unequip(entities.SlotSet(entities.AllSlots()))
	return nil
}
