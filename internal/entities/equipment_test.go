package entities_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-caravan/internal/entities"
)

type EquipmentTestSuite struct {
	suite.Suite
	equipment *entities.Equipment
}

func TestEquipmentSuite(t *testing.T) {
	suite.Run(t, new(EquipmentTestSuite))
}

func (s *EquipmentTestSuite) SetupTest() {
	e, err := entities.NewEquipment(defaultFillers())
	s.Require().NoError(err)
	s.equipment = e
}

func (s *EquipmentTestSuite) TestRejectsNonEquippable() {
	s.False(s.equipment.TryEquip(entities.SlotSet{entities.SlotMain}, food))
	s.Equal(fists, s.equipment.InSlot(entities.SlotMain))
}

func (s *EquipmentTestSuite) TestTwoHandedReplacesOneHanded() {
	s.True(s.equipment.TryEquip(sword.Slots, sword))
	s.True(s.equipment.TryEquip(shield.Slots, shield))
	s.Equal(sword, s.equipment.InSlot(entities.SlotMain))
	s.Equal(shield, s.equipment.InSlot(entities.SlotOff))

	s.True(s.equipment.TryEquip(greatsword.Slots, greatsword))

	s.Equal(greatsword, s.equipment.InSlot(entities.SlotMain))
	s.Equal(greatsword, s.equipment.InSlot(entities.SlotOff))
	s.Equal([]*entities.Item{greatsword}, s.equipment.UniqueEquipped())
}

func (s *EquipmentTestSuite) TestOneHandedClearsBothHandsOfTwoHanded() {
	s.equipment.TryEquip(greatsword.Slots, greatsword)

	s.True(s.equipment.TryEquip(sword.Slots, sword))

	s.Equal(sword, s.equipment.InSlot(entities.SlotMain))
	s.Equal(fists, s.equipment.InSlot(entities.SlotOff), "off hand falls back to the filler")
	s.False(s.equipment.IsEquipped("wpn_2h_sword"))
}

func (s *EquipmentTestSuite) TestShieldClearsTwoHanded() {
	s.equipment.TryEquip(greatsword.Slots, greatsword)

	s.equipment.TryEquip(shield.Slots, shield)

	s.Equal(fists, s.equipment.InSlot(entities.SlotMain))
	s.Equal(shield, s.equipment.InSlot(entities.SlotOff))
}

func (s *EquipmentTestSuite) TestUnequipTearsDownWholeSlotSet() {
	s.equipment.TryEquip(greatsword.Slots, greatsword)

	s.equipment.Unequip(entities.SlotSet{entities.SlotOff})

	for _, slot := range entities.AllSlots() {
		s.True(s.equipment.IsDefault(slot), "slot %s", slot)
	}
}

func (s *EquipmentTestSuite) TestEquipAutoIsGreedyInInventoryOrder() {
	inv := entities.NewInventory(
		entities.Stack{ItemID: "wpn_2h_sword", Count: 1},
		entities.Stack{ItemID: "wpn_sword", Count: 1},
		entities.Stack{ItemID: "amr_head_leather", Count: 1},
		entities.Stack{ItemID: "food", Count: 4},
	)

	s.equipment.EquipAuto(inv, testItems)

	s.Equal(sword, s.equipment.InSlot(entities.SlotMain), "later entry wins regardless of damage")
	s.Equal(fists, s.equipment.InSlot(entities.SlotOff))
	s.Equal(leatherCap, s.equipment.InSlot(entities.SlotHead))
	s.Equal([]*entities.Item{sword, leatherCap}, s.equipment.UniqueEquipped())
}

func (s *EquipmentTestSuite) TestSnapshot() {
	s.equipment.TryEquip(sword.Slots, sword)

	snap := s.equipment.Snapshot()

	s.Equal("wpn_sword", snap[entities.SlotMain])
	s.Equal("wpn_fists", snap[entities.SlotOff])
	s.Equal("amr_nothing", snap[entities.SlotBody])
}

func (s *EquipmentTestSuite) TestNewEquipmentNeedsEveryFiller() {
	_, err := entities.NewEquipment(map[entities.Slot]*entities.Item{entities.SlotMain: fists})
	s.Error(err)
}
