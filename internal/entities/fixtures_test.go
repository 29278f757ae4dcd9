package entities_test

import (
	"github.com/KirkDiggler/rpg-caravan/internal/entities"
)

type itemTable map[string]*entities.Item

func (t itemTable) Item(id string) (*entities.Item, bool) {
	item, ok := t[id]
	return item, ok
}

var (
	fists = &entities.Item{
		ID: "wpn_fists", Name: "Fists", Kind: entities.ItemKindWeapon,
		Slots:  entities.SlotSet{entities.SlotMain, entities.SlotOff},
		Weapon: &entities.WeaponData{Damage: 1, AttackTexts: []string{"{0} punches {1}"}},
	}
	nothing = &entities.Item{
		ID: "amr_nothing", Name: "Nothing", Kind: entities.ItemKindArmor,
		Slots: entities.SlotSet{entities.SlotBody, entities.SlotHead, entities.SlotLegs},
		Armor: &entities.ArmorData{},
	}
	sword = &entities.Item{
		ID: "wpn_sword", Name: "Sword", Acquirable: true, Kind: entities.ItemKindWeapon,
		Slots:  entities.SlotSet{entities.SlotMain},
		Weapon: &entities.WeaponData{Damage: 2, AttackTexts: []string{"{0} stabs {1}"}},
	}
	greatsword = &entities.Item{
		ID: "wpn_2h_sword", Name: "Greatsword", Acquirable: true, Kind: entities.ItemKindWeapon,
		Slots:  entities.SlotSet{entities.SlotMain, entities.SlotOff},
		Weapon: &entities.WeaponData{Damage: 4, AttackTexts: []string{"{0} swings at {1}"}},
	}
	shield = &entities.Item{
		ID: "off_shield_basic", Name: "Wooden Shield", Acquirable: true, Kind: entities.ItemKindArmor,
		Slots: entities.SlotSet{entities.SlotOff},
		Armor: &entities.ArmorData{Rating: 1},
	}
	leatherCap = &entities.Item{
		ID: "amr_head_leather", Name: "Leather Cap", Acquirable: true, Kind: entities.ItemKindArmor,
		Slots: entities.SlotSet{entities.SlotHead},
		Armor: &entities.ArmorData{Rating: 1},
	}
	food = &entities.Item{ID: "food", Name: "Rations", Acquirable: true, Kind: entities.ItemKindPlain}
	medicine = &entities.Item{
		ID: "medicine", Name: "Medicine", Acquirable: true, Kind: entities.ItemKindUsable,
		Use: &entities.UseAction{Kind: entities.UseHeal, Amount: 3, Prompt: "Who should the medicine be used on?"},
	}

	testItems = itemTable{
		fists.ID: fists, nothing.ID: nothing, sword.ID: sword, greatsword.ID: greatsword,
		shield.ID: shield, leatherCap.ID: leatherCap, food.ID: food, medicine.ID: medicine,
	}
)

func defaultFillers() map[entities.Slot]*entities.Item {
	return map[entities.Slot]*entities.Item{
		entities.SlotMain: fists,
		entities.SlotOff:  fists,
		entities.SlotHead: nothing,
		entities.SlotBody: nothing,
		entities.SlotLegs: nothing,
	}
}
