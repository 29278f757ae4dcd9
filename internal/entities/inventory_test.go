package entities_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-caravan/internal/entities"
)

type InventoryTestSuite struct {
	suite.Suite
	inv *entities.Inventory
}

func TestInventorySuite(t *testing.T) {
	suite.Run(t, new(InventoryTestSuite))
}

func (s *InventoryTestSuite) SetupTest() {
	s.inv = entities.NewInventory()
}

func (s *InventoryTestSuite) TestGainOnAbsentEntryReportsDelta() {
	change := s.inv.Modify(food, 48)

	s.True(change.Applied)
	s.True(change.Gained())
	s.Equal(48, change.Reported)
	s.Equal(48, s.inv.Count("food"))
}

func (s *InventoryTestSuite) TestLossThatDeletesReportsPriorCount() {
	s.inv.Modify(food, 3)

	change := s.inv.Modify(food, -10)

	s.Equal(3, change.Reported)
	s.Equal(0, s.inv.Count("food"))
	s.False(s.inv.Has("food"))
	s.Empty(s.inv.IDs())
}

func (s *InventoryTestSuite) TestPartialLossReportsDelta() {
	s.inv.Modify(food, 5)

	change := s.inv.Modify(food, -2)

	s.Equal(-2, change.Reported)
	s.Equal(3, s.inv.Count("food"))
}

func (s *InventoryTestSuite) TestRoundTripRestoresCount() {
	s.inv.Modify(food, 7)

	s.inv.Modify(food, 4)
	s.inv.Modify(food, -4)

	s.Equal(7, s.inv.Count("food"))
}

func (s *InventoryTestSuite) TestNonAcquirableAndZeroAreNoOps() {
	s.False(s.inv.Modify(fists, 1).Applied)
	s.False(s.inv.Modify(food, 0).Applied)
	s.False(s.inv.Modify(nil, 1).Applied)
	s.Equal(0, s.inv.Len())
}

func (s *InventoryTestSuite) TestIterationFollowsInsertionOrder() {
	s.inv.Modify(food, 1)
	s.inv.Modify(sword, 1)
	s.inv.Modify(shield, 1)

	s.inv.Modify(food, -1)
	s.inv.Modify(food, 2)

	s.Equal([]string{"wpn_sword", "off_shield_basic", "food"}, s.inv.IDs())
	s.Equal([]entities.Stack{
		{ItemID: "wpn_sword", Count: 1},
		{ItemID: "off_shield_basic", Count: 1},
		{ItemID: "food", Count: 2},
	}, s.inv.Stacks())
}

func (s *InventoryTestSuite) TestSeedingBypassesAcquirable() {
	inv := entities.NewInventory(
		entities.Stack{ItemID: "gold", Count: 5},
		entities.Stack{ItemID: "wpn_claws", Count: 1},
		entities.Stack{ItemID: "junk", Count: 0},
	)

	s.Equal([]string{"gold", "wpn_claws"}, inv.IDs())
}
