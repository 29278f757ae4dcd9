package entities

// ItemKind tags the variant an item carries
type ItemKind string

const (
	// ItemKindPlain items only stack in inventories (gold, rations)
	ItemKindPlain ItemKind = "plain"
	// ItemKindUsable items carry a UseAction
	ItemKindUsable ItemKind = "usable"
	// ItemKindWeapon items are equippable and carry WeaponData
	ItemKindWeapon ItemKind = "weapon"
	// ItemKindArmor items are equippable and carry ArmorData
	ItemKindArmor ItemKind = "armor"
)

// Capability is a bit set describing what an item can do
type Capability uint8

const (
	CapUsable Capability = 1 << iota
	CapEquip
	CapDamage
	CapRating
)

// Has reports whether every bit of want is set
func (c Capability) Has(want Capability) bool {
	return c&want == want
}

// UseKind selects what happens when an item is used from the party stash
type UseKind string

const (
	// UseHeal restores health on a chosen living party member
	UseHeal UseKind = "heal"
	// UseEquip hands the item to a chosen living party member
	UseEquip UseKind = "equip"
)

// UseAction describes the effect of using an item
type UseAction struct {
	Kind   UseKind
	Amount int
	// Prompt is narrated when the target selection opens
	Prompt string
}

// WeaponData is the payload of a weapon
type WeaponData struct {
	Damage int
	// AttackTexts are templates using {0} actor, {1} target and {dmg}
	AttackTexts []string
}

// ArmorData is the payload of a piece of armor
type ArmorData struct {
	Rating int
}

// Item is an immutable catalog definition
type Item struct {
	ID          string
	Name        string
	Description string
	Style       string
	// Acquirable is false for filler items that never enter an inventory
	Acquirable bool
	Kind       ItemKind

	Use    *UseAction
	Slots  SlotSet
	Weapon *WeaponData
	Armor  *ArmorData
}

// Capabilities derives the capability set from the item's kind
func (i *Item) Capabilities() Capability {
	if i == nil {
		return 0
	}
	switch i.Kind {
	case ItemKindUsable:
		return CapUsable
	case ItemKindWeapon:
		return CapUsable | CapEquip | CapDamage
	case ItemKindArmor:
		return CapUsable | CapEquip | CapRating
	default:
		return 0
	}
}

// IsEquippable reports whether the item can occupy equipment slots
func (i *Item) IsEquippable() bool {
	return i.Capabilities().Has(CapEquip)
}

// IsUsable reports whether the item can be used from the stash
func (i *Item) IsUsable() bool {
	return i.Capabilities().Has(CapUsable)
}

// UseAction returns what using the item does. Equippable items default to
// being equipped.
func (i *Item) UseAction() (UseAction, bool) {
	switch {
	case i.Kind == ItemKindUsable && i.Use != nil:
		return *i.Use, true
	case i.IsEquippable():
		return UseAction{
			Kind:   UseEquip,
			Prompt: "Who should equip the " + i.Name + "?",
		}, true
	default:
		return UseAction{}, false
	}
}

// Damage returns the fixed damage of a weapon, 0 otherwise
func (i *Item) Damage() int {
	if i.Kind != ItemKindWeapon || i.Weapon == nil {
		return 0
	}
	return i.Weapon.Damage
}

// Rating returns the armor rating, 0 otherwise
func (i *Item) Rating() int {
	if i.Kind != ItemKindArmor || i.Armor == nil {
		return 0
	}
	return i.Armor.Rating
}

// AttackTexts returns the weapon's attack templates
func (i *Item) AttackTexts() []string {
	if i.Kind != ItemKindWeapon || i.Weapon == nil {
		return nil
	}
	return i.Weapon.AttackTexts
}

// DisplayName is the name shown to players
func (i *Item) DisplayName() string {
	if i == nil {
		return ""
	}
	return i.Name
}

// ItemSource resolves item ids to definitions
type ItemSource interface {
	Item(id string) (*Item, bool)
}
