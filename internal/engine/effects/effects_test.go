package effects_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-caravan/internal/catalog"
	"github.com/KirkDiggler/rpg-caravan/internal/engine/effects"
	"github.com/KirkDiggler/rpg-caravan/internal/entities"
	"github.com/KirkDiggler/rpg-caravan/internal/narrative"
)

type host struct {
	recorder *narrative.Recorder
}

func (h *host) Narrate(ctx context.Context, text string, level narrative.Level) {
	h.recorder.Line(ctx, text, level)
}

func (h *host) Hurt(_ context.Context, c *entities.Character, damage int) {
	c.Hurt(damage)
}

type EffectsTestSuite struct {
	suite.Suite
	ctx     context.Context
	catalog *catalog.Catalog
	host    *host
	alice   *entities.Character
}

func TestEffectsSuite(t *testing.T) {
	suite.Run(t, new(EffectsTestSuite))
}

func (s *EffectsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.catalog = catalog.MustDefault()
	s.host = &host{recorder: narrative.NewRecorder()}

	var err error
	s.alice, err = entities.NewCharacter(&entities.CharacterConfig{
		ID: "char_1", Name: "Alice", Faction: entities.FactionParty, MaxHealth: 6,
		Defaults: s.catalog.Defaults(),
	})
	s.Require().NoError(err)
}

func (s *EffectsTestSuite) TestAddStartsOnce() {
	effects.Add(s.ctx, s.catalog, s.host, s.alice, catalog.EffectHunger, "unknown")
	effects.Add(s.ctx, s.catalog, s.host, s.alice, catalog.EffectHunger)

	s.Len(s.alice.Effects(), 1)
	s.Equal([]string{"Alice is hungry."}, s.host.recorder.Texts())
}

func (s *EffectsTestSuite) TestRemoveEndsHeldOnly() {
	effects.Add(s.ctx, s.catalog, s.host, s.alice, catalog.EffectStarving)
	s.host.recorder.Reset()

	effects.Remove(s.ctx, s.catalog, s.host, s.alice, catalog.EffectHunger, catalog.EffectStarving)

	s.Empty(s.alice.Effects())
	s.Equal([]string{"Alice is no longer starving."}, s.host.recorder.Texts())
}

func (s *EffectsTestSuite) TestUniqueAcrossSequences() {
	sequence := [][]string{
		{catalog.EffectHunger},
		{catalog.EffectHunger, catalog.EffectStarving},
		{catalog.EffectStarving, catalog.EffectStarving},
	}
	for _, ids := range sequence {
		effects.Add(s.ctx, s.catalog, s.host, s.alice, ids...)
		seen := map[string]bool{}
		for _, e := range s.alice.Effects() {
			s.False(seen[e.ID], "duplicate %s", e.ID)
			seen[e.ID] = true
		}
	}
	s.Len(s.alice.Effects(), 2)
}

func (s *EffectsTestSuite) TestTickAllStarvesToDeath() {
	effects.Add(s.ctx, s.catalog, s.host, s.alice, catalog.EffectStarving)

	for day := 0; day < 8; day++ {
		effects.TickAll(s.ctx, s.host, []*entities.Character{s.alice})
	}

	s.Equal(0, s.alice.Health())
}
