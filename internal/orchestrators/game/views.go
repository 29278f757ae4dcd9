package game

import (
	"context"

	"github.com/KirkDiggler/rpg-caravan/internal/entities"
	"github.com/KirkDiggler/rpg-caravan/internal/errors"
)

// GetRoster returns both sides in roster order
func (o *orchestrator) GetRoster(ctx context.Context, input *GetRosterInput) (out *GetRosterOutput, err error) {
	_, end := o.begin(ctx, "GetRoster")
	defer end(&err)

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return &GetRosterOutput{
		Day:      o.world.Day(),
		InCombat: o.world.InCombat(),
		Party:    o.characterViews(o.world.Party()),
		Enemies:  o.characterViews(o.world.Enemies()),
	}, nil
}

// GetCharacter returns one character from either side
func (o *orchestrator) GetCharacter(ctx context.Context, input *GetCharacterInput) (out *GetCharacterOutput, err error) {
	_, end := o.begin(ctx, "GetCharacter")
	defer end(&err)

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, ok := o.world.Find(input.CharacterID)
	if !ok {
		return nil, errors.NotFoundf("character %s not found", input.CharacterID)
	}

	return &GetCharacterOutput{Character: o.characterView(c)}, nil
}

// GetInventory returns the stash, or a character's personal inventory
func (o *orchestrator) GetInventory(ctx context.Context, input *GetInventoryInput) (out *GetInventoryOutput, err error) {
	_, end := o.begin(ctx, "GetInventory")
	defer end(&err)

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if input.CharacterID == "" {
		return &GetInventoryOutput{Items: o.stackViews(o.world.Stash(), nil)}, nil
	}

	c, ok := o.world.Find(input.CharacterID)
	if !ok {
		return nil, errors.NotFoundf("character %s not found", input.CharacterID)
	}

	return &GetInventoryOutput{Items: o.stackViews(c.Inventory, c.Equipment)}, nil
}

// GetCombatStatus returns the scheduler's view of the fight
func (o *orchestrator) GetCombatStatus(ctx context.Context, input *GetCombatStatusInput) (out *GetCombatStatusOutput, err error) {
	_, end := o.begin(ctx, "GetCombatStatus")
	defer end(&err)

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return &GetCombatStatusOutput{Status: o.scheduler.Status()}, nil
}

// GetPendingSelection returns a copy of the open selection, if any
func (o *orchestrator) GetPendingSelection(ctx context.Context, input *GetPendingSelectionInput) (out *GetPendingSelectionOutput, err error) {
	_, end := o.begin(ctx, "GetPendingSelection")
	defer end(&err)

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return &GetPendingSelectionOutput{Selection: o.pending.clone()}, nil
}

func (o *orchestrator) characterViews(chars []*entities.Character) []*CharacterView {
	out := make([]*CharacterView, 0, len(chars))
	for _, c := range chars {
		out = append(out, o.characterView(c))
	}
	return out
}

func (o *orchestrator) characterView(c *entities.Character) *CharacterView {
	view := &CharacterView{
		ID:        c.GetID(),
		Name:      c.Name(),
		Faction:   c.Faction(),
		Health:    c.Health(),
		MaxHealth: c.MaxHealth(),
		Alive:     c.IsAlive(),
		Equipped:  c.Equipment.Snapshot(),
		Inventory: o.stackViews(c.Inventory, c.Equipment),
	}
	for _, e := range c.Effects() {
		view.Effects = append(view.Effects, EffectView{ID: e.ID, Name: e.Name})
	}
	return view
}

// stackViews lists inv in insertion order. eq marks equipped entries and
// may be nil for the stash.
func (o *orchestrator) stackViews(inv *entities.Inventory, eq *entities.Equipment) []*StackView {
	stacks := inv.Stacks()
	out := make([]*StackView, 0, len(stacks))
	for _, s := range stacks {
		view := &StackView{ItemID: s.ItemID, Name: s.ItemID, Count: s.Count}
		if item, ok := o.world.Catalog().Item(s.ItemID); ok {
			view.Name = item.DisplayName()
			view.Usable = item.IsUsable()
		}
		if eq != nil {
			view.Equipped = eq.IsEquipped(s.ItemID)
		}
		out = append(out, view)
	}
	return out
}
