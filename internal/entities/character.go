package entities

import (
	"github.com/KirkDiggler/rpg-caravan/internal/errors"
)

// Faction says which side a character fights on
type Faction string

const (
	FactionParty Faction = "party"
	FactionEnemy Faction = "enemy"
)

// MaxNameLength bounds character names
const MaxNameLength = 32

// CharacterConfig holds what is needed to create a character
type CharacterConfig struct {
	ID        string
	Name      string
	Faction   Faction
	MaxHealth int
	// Defaults are the per-slot filler items
	Defaults map[Slot]*Item
	// Inventory seeds the personal inventory; empty when nil
	Inventory *Inventory
}

// Validate ensures the config can produce a valid character
func (c *CharacterConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("ID", c.ID, vb)
	errors.ValidateRequired("Name", c.Name, vb)
	errors.ValidateMaxLength("Name", c.Name, MaxNameLength, vb)
	errors.ValidatePositive("MaxHealth", c.MaxHealth, vb)
	if c.Faction != FactionParty && c.Faction != FactionEnemy {
		vb.InvalidField("Faction", string(c.Faction))
	}
	for _, slot := range AllSlots() {
		if c.Defaults[slot] == nil {
			vb.Fieldf("Defaults", "missing filler for slot %s", slot)
		}
	}

	return vb.Build()
}

// Character is a party member or an enemy
type Character struct {
	id        string
	name      string
	faction   Faction
	health    int
	maxHealth int
	effects   []*Effect

	Inventory *Inventory
	Equipment *Equipment
}

// NewCharacter creates a character at full health with no effects and every
// slot holding its default filler
func NewCharacter(cfg *CharacterConfig) (*Character, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid character config")
	}

	equipment, err := NewEquipment(cfg.Defaults)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid equipment defaults")
	}

	inv := cfg.Inventory
	if inv == nil {
		inv = NewInventory()
	}

	return &Character{
		id:        cfg.ID,
		name:      cfg.Name,
		faction:   cfg.Faction,
		health:    cfg.MaxHealth,
		maxHealth: cfg.MaxHealth,
		Inventory: inv,
		Equipment: equipment,
	}, nil
}

// GetID implements core.Entity
func (c *Character) GetID() string {
	return c.id
}

// GetType implements core.Entity
func (c *Character) GetType() string {
	return "character." + string(c.faction)
}

// Name returns the display name
func (c *Character) Name() string {
	return c.name
}

// Faction returns the side the character fights on
func (c *Character) Faction() Faction {
	return c.faction
}

// Health returns current health
func (c *Character) Health() int {
	return c.health
}

// MaxHealth returns maximum health
func (c *Character) MaxHealth() int {
	return c.maxHealth
}

// IsAlive reports whether health is above zero
func (c *Character) IsAlive() bool {
	return c.health > 0
}

// Hurt lowers health by damage, never below zero. It reports true only on
// the hit that took the character from alive to dead.
func (c *Character) Hurt(damage int) (died bool) {
	if damage < 0 {
		damage = 0
	}
	wasAlive := c.IsAlive()
	c.health = max(c.health-damage, 0)
	return wasAlive && c.health == 0
}

// Heal raises health by amount, capped at max health, and returns the
// amount actually restored
func (c *Character) Heal(amount int) int {
	if amount < 0 {
		amount = 0
	}
	actual := min(amount, c.maxHealth-c.health)
	c.health += actual
	return actual
}

// Effects returns the held effects in insertion order
func (c *Character) Effects() []*Effect {
	out := make([]*Effect, len(c.effects))
	copy(out, c.effects)
	return out
}

// HasEffect reports whether an effect with id is held
func (c *Character) HasEffect(id string) bool {
	for _, e := range c.effects {
		if e.ID == id {
			return true
		}
	}
	return false
}

// AttachEffect appends e unless it is already held
func (c *Character) AttachEffect(e *Effect) bool {
	if e == nil || c.HasEffect(e.ID) {
		return false
	}
	c.effects = append(c.effects, e)
	return true
}

// DetachEffect removes e if held
func (c *Character) DetachEffect(e *Effect) bool {
	if e == nil {
		return false
	}
	for i, held := range c.effects {
		if held.ID == e.ID {
			c.effects = append(c.effects[:i], c.effects[i+1:]...)
			return true
		}
	}
	return false
}
