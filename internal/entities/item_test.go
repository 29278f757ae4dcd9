package entities_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-caravan/internal/entities"
)

type ItemTestSuite struct {
	suite.Suite
}

func TestItemSuite(t *testing.T) {
	suite.Run(t, new(ItemTestSuite))
}

func (s *ItemTestSuite) TestCapabilitiesFollowKind() {
	s.Equal(entities.Capability(0), food.Capabilities())
	s.Equal(entities.CapUsable, medicine.Capabilities())
	s.True(sword.Capabilities().Has(entities.CapUsable | entities.CapEquip | entities.CapDamage))
	s.False(sword.Capabilities().Has(entities.CapRating))
	s.True(shield.Capabilities().Has(entities.CapRating))
}

func (s *ItemTestSuite) TestUseAction() {
	use, ok := medicine.UseAction()
	s.True(ok)
	s.Equal(entities.UseHeal, use.Kind)
	s.Equal(3, use.Amount)

	use, ok = greatsword.UseAction()
	s.True(ok)
	s.Equal(entities.UseEquip, use.Kind)
	s.Equal("Who should equip the Greatsword?", use.Prompt)

	_, ok = food.UseAction()
	s.False(ok)
}

func (s *ItemTestSuite) TestVariantAccessors() {
	s.Equal(4, greatsword.Damage())
	s.Equal(0, shield.Damage())
	s.Equal(1, shield.Rating())
	s.Equal(0, sword.Rating())
	s.Len(sword.AttackTexts(), 1)
	s.Nil(food.AttackTexts())
}
