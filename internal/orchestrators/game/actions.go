package game

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-caravan/internal/engine/combat"
	"github.com/KirkDiggler/rpg-caravan/internal/entities"
	"github.com/KirkDiggler/rpg-caravan/internal/errors"
	"github.com/KirkDiggler/rpg-caravan/internal/narrative"
)

// StartCombat spawns an encounter sized to the party and starts the fight
func (o *orchestrator) StartCombat(ctx context.Context, input *StartCombatInput) (out *StartCombatOutput, err error) {
	ctx, end := o.begin(ctx, "StartCombat")
	defer end(&err)

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := o.guard(); err != nil {
		return nil, err
	}

	spawned, err := o.startRandomCombat(ctx)
	if err != nil {
		return nil, err
	}

	o.refresh(ctx)

	return &StartCombatOutput{
		EncounterID: spawned.Encounter.ID,
		Status:      o.scheduler.Status(),
	}, nil
}

// ChooseCombatAction acts for the awaited party member. An attack without a
// target opens a selection over the enemies instead.
func (o *orchestrator) ChooseCombatAction(ctx context.Context, input *ChooseCombatActionInput) (out *ChooseCombatActionOutput, err error) {
	ctx, end := o.begin(ctx, "ChooseCombatAction")
	defer end(&err)

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := o.guard(); err != nil {
		return nil, err
	}
	if !input.Action.IsValid() {
		return nil, errors.InvalidArgumentf("unknown action %q", input.Action)
	}

	actor, err := o.scheduler.AwaitingActor()
	if err != nil {
		return nil, err
	}

	if input.Action.NeedsTarget() && input.TargetID == "" {
		o.pending = &PendingSelection{
			ID:         o.world.GenerateID(),
			Kind:       SelectionAttack,
			Prompt:     "Who should " + actor.Name() + " attack?",
			ActorID:    actor.GetID(),
			Candidates: livingCandidates(o.scheduler.Targets(input.Action)),
		}
		o.world.Narrate(ctx, o.pending.Prompt, narrative.LevelEvent)
		o.refresh(ctx)
		return &ChooseCombatActionOutput{
			Selection: o.pending.clone(),
			Status:    o.scheduler.Status(),
		}, nil
	}

	var target *entities.Character
	if input.Action.NeedsTarget() {
		found, ok := o.world.Find(input.TargetID)
		if !ok {
			return nil, errors.NotFoundf("character %s not found", input.TargetID)
		}
		target = found
	}

	if err := o.scheduler.TakeAction(ctx, input.Action, target); err != nil {
		return nil, err
	}

	o.refresh(ctx)

	return &ChooseCombatActionOutput{Status: o.scheduler.Status()}, nil
}

// UseItem narrates the item's prompt and opens a selection over the party
func (o *orchestrator) UseItem(ctx context.Context, input *UseItemInput) (out *UseItemOutput, err error) {
	ctx, end := o.begin(ctx, "UseItem")
	defer end(&err)

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := o.guard(); err != nil {
		return nil, err
	}

	item, ok := o.world.Catalog().Item(input.ItemID)
	if !ok {
		return nil, errors.NotFoundf("item %s not found", input.ItemID)
	}
	use, ok := item.UseAction()
	if !ok {
		return nil, errors.InvalidArgumentf("%s cannot be used", item.DisplayName())
	}
	if !o.world.Stash().Has(item.ID) {
		return nil, errors.FailedPreconditionf("the party has no %s", item.DisplayName())
	}

	kind := SelectionEquip
	if use.Kind == entities.UseHeal {
		kind = SelectionHeal
	}

	o.pending = &PendingSelection{
		ID:         o.world.GenerateID(),
		Kind:       kind,
		Prompt:     use.Prompt,
		ItemID:     item.ID,
		Amount:     use.Amount,
		Candidates: livingCandidates(o.world.Party()),
	}
	if use.Prompt != "" {
		o.world.Narrate(ctx, use.Prompt, narrative.LevelEvent)
	}

	o.refresh(ctx)

	return &UseItemOutput{Selection: o.pending.clone()}, nil
}

// EquipItem hands a stash item to a party member without a selection
func (o *orchestrator) EquipItem(ctx context.Context, input *EquipItemInput) (out *EquipItemOutput, err error) {
	ctx, end := o.begin(ctx, "EquipItem")
	defer end(&err)

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := o.guard(); err != nil {
		return nil, err
	}

	c, err := o.partyMember(input.CharacterID)
	if err != nil {
		return nil, err
	}
	if !c.IsAlive() {
		return nil, errors.FailedPreconditionf("%s is dead", c.Name())
	}

	if err := o.world.Inventory().Equip(ctx, c, input.ItemID, o.world.Stash()); err != nil {
		return nil, err
	}

	o.refresh(ctx)

	return &EquipItemOutput{Character: o.characterView(c)}, nil
}

// ResolveSelection completes the pending selection. An ineligible target is
// refused and the selection stays open.
func (o *orchestrator) ResolveSelection(ctx context.Context, input *ResolveSelectionInput) (out *ResolveSelectionOutput, err error) {
	ctx, end := o.begin(ctx, "ResolveSelection")
	defer end(&err)

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	sel := o.pending
	if sel == nil {
		return nil, errors.FailedPrecondition("no selection is pending")
	}
	if input.SelectionID != sel.ID {
		return nil, errors.NotFoundf("selection %s not found", input.SelectionID)
	}

	candidate, ok := sel.candidate(input.TargetID)
	if !ok {
		return nil, errors.InvalidArgumentf("%s is not a candidate", input.TargetID)
	}
	target, ok := o.world.Find(candidate.CharacterID)
	if !ok || !candidate.Eligible || !target.IsAlive() {
		return nil, errors.InvalidArgumentf("%s cannot be chosen", candidate.Name)
	}

	switch sel.Kind {
	case SelectionAttack:
		err = o.scheduler.TakeAction(ctx, combat.ActionAttack, target)
	case SelectionHeal:
		o.world.Heal(ctx, target, sel.Amount)
		err = o.modifyStash(ctx, sel.ItemID, -1)
	case SelectionEquip:
		err = o.world.Inventory().Equip(ctx, target, sel.ItemID, o.world.Stash())
	default:
		err = errors.Internalf("unknown selection kind %q", sel.Kind)
	}
	if err != nil {
		return nil, err
	}

	o.pending = nil
	slog.Debug("Selection resolved",
		"selection_id", sel.ID,
		"kind", sel.Kind,
		"target_id", target.GetID(),
	)

	o.refresh(ctx)

	return &ResolveSelectionOutput{
		Kind:   sel.Kind,
		Target: o.characterView(target),
		Status: o.scheduler.Status(),
	}, nil
}

// AddCharacter creates a party member with the default fillers and an
// empty personal inventory
func (o *orchestrator) AddCharacter(ctx context.Context, input *AddCharacterInput) (out *AddCharacterOutput, err error) {
	ctx, end := o.begin(ctx, "AddCharacter")
	defer end(&err)

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := o.guard(); err != nil {
		return nil, err
	}
	if o.world.InCombat() {
		return nil, errors.FailedPrecondition("cannot change the party during combat")
	}

	maxHealth := input.MaxHealth
	if maxHealth == 0 {
		maxHealth = DefaultMaxHealth
	}

	c, err := o.world.NewCharacter(input.Name, entities.FactionParty, maxHealth, nil)
	if err != nil {
		return nil, err
	}
	if err := o.world.AddPartyMember(ctx, c); err != nil {
		return nil, err
	}

	slog.Info("Character added",
		"world_id", o.world.GetID(),
		"character_id", c.GetID(),
		"name", c.Name(),
	)

	o.refresh(ctx)

	return &AddCharacterOutput{Character: o.characterView(c)}, nil
}

// RemoveCharacter takes a member out of the party, returning their items
func (o *orchestrator) RemoveCharacter(ctx context.Context, input *RemoveCharacterInput) (out *RemoveCharacterOutput, err error) {
	ctx, end := o.begin(ctx, "RemoveCharacter")
	defer end(&err)

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := o.guard(); err != nil {
		return nil, err
	}
	if o.world.InCombat() {
		return nil, errors.FailedPrecondition("cannot change the party during combat")
	}

	removed, err := o.world.RemovePartyMember(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	slog.Info("Character removed",
		"world_id", o.world.GetID(),
		"character_id", removed.GetID(),
	)

	o.refresh(ctx)

	return &RemoveCharacterOutput{}, nil
}

func (o *orchestrator) partyMember(id string) (*entities.Character, error) {
	c, ok := o.world.Find(id)
	if !ok || c.Faction() != entities.FactionParty {
		return nil, errors.NotFoundf("party member %s not found", id)
	}
	return c, nil
}
