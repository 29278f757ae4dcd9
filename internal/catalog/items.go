package catalog

import (
	"github.com/KirkDiggler/rpg-caravan/internal/entities"
)

// Item ids the simulation refers to directly
const (
	ItemGold     = "gold"
	ItemFood     = "food"
	ItemMedicine = "medicine"
	ItemFists    = "wpn_fists"
	ItemNothing  = "amr_nothing"
)

// MedicineHealing is how much health one unit of medicine restores
const MedicineHealing = 3

func weapon(id, name, style string, slots entities.SlotSet, damage int, texts ...string) *entities.Item {
	return &entities.Item{
		ID:          id,
		Name:        name,
		Description: "A weapon.",
		Style:       style,
		Acquirable:  true,
		Kind:        entities.ItemKindWeapon,
		Slots:       slots,
		Weapon:      &entities.WeaponData{Damage: damage, AttackTexts: texts},
	}
}

func armor(id, name, style string, slots entities.SlotSet, rating int) *entities.Item {
	return &entities.Item{
		ID:          id,
		Name:        name,
		Description: "A piece of armor.",
		Style:       style,
		Acquirable:  true,
		Kind:        entities.ItemKindArmor,
		Slots:       slots,
		Armor:       &entities.ArmorData{Rating: rating},
	}
}

func defaultItems() []*entities.Item {
	hands := entities.SlotSet{entities.SlotMain, entities.SlotOff}

	sword := weapon("wpn_sword", "Sword", "iron", entities.SlotSet{entities.SlotMain}, 2,
		"{0} stabs {1}, dealing {dmg} damage!",
		"{0} slices {1}, dealing {dmg} damage!",
		"{0} strikes {1}, dealing {dmg} damage!",
		"{0} cuts {1}, dealing {dmg} damage!",
	)
	sword.Description = "A one-handed sword."

	greatsword := weapon("wpn_2h_sword", "Greatsword", "iron", hands, 4,
		"{0} swings the greatsword at {1}, dealing {dmg} damage!",
	)
	greatsword.Description = "A two-handed sword."

	fists := weapon(ItemFists, "Fists", "regular", hands, 1,
		"{0} beats {1} with their fists, dealing {dmg} damage!",
	)
	fists.Description = "The character is unarmed."
	fists.Acquirable = false

	claws := weapon("wpn_claws", "Claws", "regular", hands, 1,
		"{0} scratches {1} with their claws, dealing {dmg} damage!",
	)
	claws.Description = "Sharp and filthy."
	claws.Acquirable = false

	nothing := armor(ItemNothing, "Nothing", "regular",
		entities.SlotSet{entities.SlotBody, entities.SlotHead, entities.SlotLegs}, 0)
	nothing.Description = "Nothing."
	nothing.Acquirable = false

	return []*entities.Item{
		{
			ID:          ItemGold,
			Name:        "Gold",
			Description: "Coins for trading along the road.",
			Style:       "gold",
			Acquirable:  true,
			Kind:        entities.ItemKindPlain,
		},
		{
			ID:          ItemFood,
			Name:        "Rations",
			Description: "Some rations. Each party member eats 1 food per day.",
			Style:       "food",
			Acquirable:  true,
			Kind:        entities.ItemKindPlain,
		},
		{
			ID:          ItemMedicine,
			Name:        "Medicine",
			Description: "Medicine that restores a party member's health by 3 points.",
			Style:       "medicine",
			Acquirable:  true,
			Kind:        entities.ItemKindUsable,
			Use: &entities.UseAction{
				Kind:   entities.UseHeal,
				Amount: MedicineHealing,
				Prompt: "Who should the medicine be used on?",
			},
		},
		{
			ID:          "skill_consumable",
			Name:        "Catalyst",
			Description: "A catalyst used for performing special attacks.",
			Style:       "consumable",
			Acquirable:  true,
			Kind:        entities.ItemKindPlain,
		},
		sword,
		greatsword,
		fists,
		claws,
		nothing,
		armor("amr_head_leather", "Leather Cap", "leather", entities.SlotSet{entities.SlotHead}, 1),
		armor("amr_body_leather", "Leather Vest", "leather", entities.SlotSet{entities.SlotBody}, 1),
		armor("amr_legs_leather", "Leather Leggings", "leather", entities.SlotSet{entities.SlotLegs}, 1),
		armor("off_shield_basic", "Wooden Shield", "wood", entities.SlotSet{entities.SlotOff}, 1),
		armor("off_shield_2", "Tower Shield", "offwhite_yellow", entities.SlotSet{entities.SlotOff}, 3),
		weapon("wpn_knuckles", "Knuckles", "brown_metal", entities.SlotSet{entities.SlotMain}, 2,
			"{0} punches {1}, dealing {dmg} damage!",
		),
		weapon("wpn_sword_2", "Runed Sword", "legendary_red", entities.SlotSet{entities.SlotMain}, 4,
			"{0} strikes {1}, dealing {dmg} damage!",
		),
	}
}

func defaultFillers() map[entities.Slot]string {
	return map[entities.Slot]string{
		entities.SlotMain: ItemFists,
		entities.SlotOff:  ItemFists,
		entities.SlotHead: ItemNothing,
		entities.SlotBody: ItemNothing,
		entities.SlotLegs: ItemNothing,
	}
}

func defaultStash() []entities.Stack {
	return []entities.Stack{
		{ItemID: ItemGold, Count: 25},
		{ItemID: ItemFood, Count: 48},
		{ItemID: ItemMedicine, Count: 4},
		{ItemID: "wpn_sword", Count: 2},
		{ItemID: "wpn_2h_sword", Count: 2},
		{ItemID: "off_shield_basic", Count: 2},
	}
}
