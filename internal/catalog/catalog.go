// Package catalog holds the static definitions the simulation runs on:
// items, status effects, enemy templates, encounters, event chains and the
// party's starting stash. A catalog is built once, validated as a whole and
// never mutated afterwards.
package catalog

import (
	"sort"

	"github.com/KirkDiggler/rpg-caravan/internal/entities"
	"github.com/KirkDiggler/rpg-caravan/internal/errors"
)

// Config lists every definition a catalog is built from
type Config struct {
	Items      []*entities.Item
	Effects    []*entities.Effect
	Enemies    []*EnemyTemplate
	Encounters []*Encounter
	Chains     []*Chain
	// Defaults names the filler item of every slot
	Defaults      map[entities.Slot]string
	StartingStash []entities.Stack
}

// Catalog is an immutable registry of definitions
type Catalog struct {
	items      map[string]*entities.Item
	itemOrder  []*entities.Item
	effects    map[string]*entities.Effect
	enemies    map[string]*EnemyTemplate
	encounters []*Encounter
	chains     map[string]*Chain
	chainOrder []*Chain
	defaults   map[entities.Slot]*entities.Item
	stash      []entities.Stack
}

// New builds a catalog. Every cross reference is checked; a catalog that
// names an undefined item, effect, enemy or stage is rejected.
func New(cfg *Config) (*Catalog, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	c := &Catalog{
		items:    make(map[string]*entities.Item, len(cfg.Items)),
		effects:  make(map[string]*entities.Effect, len(cfg.Effects)),
		enemies:  make(map[string]*EnemyTemplate, len(cfg.Enemies)),
		chains:   make(map[string]*Chain, len(cfg.Chains)),
		defaults: make(map[entities.Slot]*entities.Item, len(entities.AllSlots())),
	}

	vb := errors.NewValidationBuilder()

	for _, item := range cfg.Items {
		if item == nil || item.ID == "" {
			vb.Field("Items", "item without an id")
			continue
		}
		if _, dup := c.items[item.ID]; dup {
			vb.Fieldf("Items", "duplicate item %s", item.ID)
			continue
		}
		validateItem(item, vb)
		c.items[item.ID] = item
		c.itemOrder = append(c.itemOrder, item)
	}

	for _, effect := range cfg.Effects {
		if effect == nil || effect.ID == "" {
			vb.Field("Effects", "effect without an id")
			continue
		}
		if _, dup := c.effects[effect.ID]; dup {
			vb.Fieldf("Effects", "duplicate effect %s", effect.ID)
			continue
		}
		c.effects[effect.ID] = effect
	}

	for _, slot := range entities.AllSlots() {
		id, ok := cfg.Defaults[slot]
		if !ok {
			vb.Fieldf("Defaults", "missing filler for slot %s", slot)
			continue
		}
		item, ok := c.items[id]
		switch {
		case !ok:
			vb.Fieldf("Defaults", "slot %s references unknown item %s", slot, id)
		case !item.IsEquippable() || !item.Slots.Contains(slot):
			vb.Fieldf("Defaults", "item %s cannot fill slot %s", id, slot)
		default:
			c.defaults[slot] = item
		}
	}

	for _, enemy := range cfg.Enemies {
		if enemy == nil || enemy.ID == "" {
			vb.Field("Enemies", "enemy without an id")
			continue
		}
		if enemy.MaxHealth <= 0 {
			vb.Fieldf("Enemies", "enemy %s needs positive health", enemy.ID)
		}
		c.checkStacks("Enemies", enemy.Inventory, vb)
		c.enemies[enemy.ID] = enemy
	}

	for _, enc := range cfg.Encounters {
		if enc == nil || len(enc.Enemies) == 0 {
			vb.Field("Encounters", "encounter without enemies")
			continue
		}
		for _, id := range enc.Enemies {
			if _, ok := c.enemies[id]; !ok {
				vb.Fieldf("Encounters", "encounter %s references unknown enemy %s", enc.ID, id)
			}
		}
		c.encounters = append(c.encounters, enc)
	}

	for _, chain := range cfg.Chains {
		if chain == nil || chain.ID == "" {
			vb.Field("Chains", "chain without an id")
			continue
		}
		c.validateChain(chain, vb)
		c.chains[chain.ID] = chain
		c.chainOrder = append(c.chainOrder, chain)
	}

	c.checkStacks("StartingStash", cfg.StartingStash, vb)
	c.stash = append([]entities.Stack(nil), cfg.StartingStash...)

	if err := vb.Build(); err != nil {
		return nil, errors.Wrap(err, "invalid catalog")
	}

	return c, nil
}

func validateItem(item *entities.Item, vb *errors.ValidationBuilder) {
	switch item.Kind {
	case entities.ItemKindPlain:
	case entities.ItemKindUsable:
		if item.Use == nil {
			vb.Fieldf("Items", "usable item %s has no use action", item.ID)
		}
	case entities.ItemKindWeapon:
		if item.Weapon == nil || len(item.Weapon.AttackTexts) == 0 {
			vb.Fieldf("Items", "weapon %s needs damage and attack texts", item.ID)
		}
	case entities.ItemKindArmor:
		if item.Armor == nil {
			vb.Fieldf("Items", "armor %s has no rating", item.ID)
		}
	default:
		vb.Fieldf("Items", "item %s has unknown kind %q", item.ID, item.Kind)
	}

	if item.IsEquippable() {
		if len(item.Slots) == 0 {
			vb.Fieldf("Items", "equippable %s declares no slots", item.ID)
		}
		for _, slot := range item.Slots {
			if !slot.IsValid() {
				vb.Fieldf("Items", "item %s declares unknown slot %q", item.ID, slot)
			}
		}
	}
}

func (c *Catalog) checkStacks(field string, stacks []entities.Stack, vb *errors.ValidationBuilder) {
	for _, s := range stacks {
		if _, ok := c.items[s.ItemID]; !ok {
			vb.Fieldf(field, "unknown item %s", s.ItemID)
		}
		if s.Count <= 0 {
			vb.Fieldf(field, "item %s needs a positive count", s.ItemID)
		}
	}
}

func (c *Catalog) validateChain(chain *Chain, vb *errors.ValidationBuilder) {
	if _, ok := chain.Stages[EntryStage]; !ok {
		vb.Fieldf("Chains", "chain %s has no entry stage", chain.ID)
	}
	for id, stage := range chain.Stages {
		if stage == nil {
			vb.Fieldf("Chains", "chain %s stage %d is empty", chain.ID, id)
			continue
		}
		for _, b := range stage.Next {
			if _, ok := chain.Stages[b.Stage]; !ok {
				vb.Fieldf("Chains", "chain %s stage %d leads to unknown stage %d", chain.ID, id, b.Stage)
			}
			if b.Delay < 1 {
				vb.Fieldf("Chains", "chain %s stage %d needs a delay of at least one day", chain.ID, id)
			}
		}
		if len(stage.Requires) > 0 {
			c.checkStacks("Chains", stage.Requires, vb)
			fallback, ok := chain.Stages[stage.Otherwise]
			switch {
			case !ok || fallback == nil:
				vb.Fieldf("Chains", "chain %s stage %d falls back to unknown stage %d", chain.ID, id, stage.Otherwise)
			case stage.Otherwise == id || len(fallback.Requires) > 0:
				vb.Fieldf("Chains", "chain %s stage %d needs a fallback without requirements", chain.ID, id)
			}
		}
		for _, o := range stage.Outcomes {
			switch o.Kind {
			case OutcomeStash:
				if _, ok := c.items[o.ItemID]; !ok {
					vb.Fieldf("Chains", "chain %s stage %d references unknown item %s", chain.ID, id, o.ItemID)
				}
			case OutcomeCombat:
			default:
				vb.Fieldf("Chains", "chain %s stage %d has unknown outcome %q", chain.ID, id, o.Kind)
			}
		}
	}
}

// Item returns the definition of id
func (c *Catalog) Item(id string) (*entities.Item, bool) {
	item, ok := c.items[id]
	return item, ok
}

// Items returns every item in definition order
func (c *Catalog) Items() []*entities.Item {
	return append([]*entities.Item(nil), c.itemOrder...)
}

// Effect returns the definition of id
func (c *Catalog) Effect(id string) (*entities.Effect, bool) {
	e, ok := c.effects[id]
	return e, ok
}

// LookupEffects resolves ids in order, silently dropping unknown ones
func (c *Catalog) LookupEffects(ids ...string) []*entities.Effect {
	out := make([]*entities.Effect, 0, len(ids))
	for _, id := range ids {
		if e, ok := c.effects[id]; ok {
			out = append(out, e)
		}
	}
	return out
}

// Defaults returns the filler item of every slot
func (c *Catalog) Defaults() map[entities.Slot]*entities.Item {
	out := make(map[entities.Slot]*entities.Item, len(c.defaults))
	for slot, item := range c.defaults {
		out[slot] = item
	}
	return out
}

// Enemy returns the template of id
func (c *Catalog) Enemy(id string) (*EnemyTemplate, bool) {
	e, ok := c.enemies[id]
	return e, ok
}

// Encounters returns the encounters in definition order
func (c *Catalog) Encounters() []*Encounter {
	return append([]*Encounter(nil), c.encounters...)
}

// Chain returns the event chain with id
func (c *Catalog) Chain(id string) (*Chain, bool) {
	ch, ok := c.chains[id]
	return ch, ok
}

// Chains returns the event chains in definition order
func (c *Catalog) Chains() []*Chain {
	return append([]*Chain(nil), c.chainOrder...)
}

// StartingStash returns the stacks the party stash starts with
func (c *Catalog) StartingStash() []entities.Stack {
	return append([]entities.Stack(nil), c.stash...)
}

// EffectIDs returns the ids of every defined effect, sorted
func (c *Catalog) EffectIDs() []string {
	ids := make([]string, 0, len(c.effects))
	for id := range c.effects {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
