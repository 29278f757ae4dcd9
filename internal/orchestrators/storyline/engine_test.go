package storyline_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-caravan/internal/catalog"
	"github.com/KirkDiggler/rpg-caravan/internal/engine"
	"github.com/KirkDiggler/rpg-caravan/internal/entities"
	"github.com/KirkDiggler/rpg-caravan/internal/errors"
	"github.com/KirkDiggler/rpg-caravan/internal/narrative"
	"github.com/KirkDiggler/rpg-caravan/internal/orchestrators/storyline"
	storylinemock "github.com/KirkDiggler/rpg-caravan/internal/orchestrators/storyline/mock"
	"github.com/KirkDiggler/rpg-caravan/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-caravan/internal/pkg/random"
)

type EngineTestSuite struct {
	suite.Suite
	ctx      context.Context
	ctrl     *gomock.Controller
	actions  *storylinemock.MockActions
	recorder *narrative.Recorder
	world    *engine.World
	engine   *storyline.Engine
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.actions = storylinemock.NewMockActions(s.ctrl)
	s.setup(catalog.DefaultConfig().Chains...)
}

func (s *EngineTestSuite) setup(chains ...*catalog.Chain) {
	cfg := catalog.DefaultConfig()
	cfg.Chains = chains
	cat, err := catalog.New(cfg)
	s.Require().NoError(err)

	s.recorder = narrative.NewRecorder()
	s.world, err = engine.New(&engine.Config{
		ID:          "world_test",
		Catalog:     cat,
		Narrator:    s.recorder,
		EventBus:    events.NewBus(),
		Random:      random.NewSeeded(9),
		IDGenerator: idgen.NewSequential("char"),
	})
	s.Require().NoError(err)

	s.engine, err = storyline.New(&storyline.Config{World: s.world, Actions: s.actions})
	s.Require().NoError(err)
}

func (s *EngineTestSuite) addMember(name string) {
	c, err := s.world.NewCharacter(name, entities.FactionParty, 6, nil)
	s.Require().NoError(err)
	s.Require().NoError(s.world.AddPartyMember(s.ctx, c))
}

func (s *EngineTestSuite) TestNewValidates() {
	_, err := storyline.New(&storyline.Config{World: s.world})
	s.True(errors.IsInvalidArgument(err))
}

func (s *EngineTestSuite) TestScheduleProbesForward() {
	entry := storyline.Scheduled{ChainID: catalog.ChainCampfire, Stage: 1}

	s.Equal(5, s.engine.Schedule(5, entry))
	s.Equal(6, s.engine.Schedule(5, entry))
	s.Equal(7, s.engine.Schedule(5, entry))
	s.Equal(8, s.engine.Schedule(6, entry))
	s.Equal(4, s.engine.Schedule(4, entry))

	pending := s.engine.Pending()
	days := make([]int, 0, len(pending))
	for _, p := range pending {
		days = append(days, p.Day)
	}
	s.Equal([]int{4, 5, 6, 7, 8}, days)
}

func (s *EngineTestSuite) TestDriveStartsChainAndPlaysFollowUp() {
	s.setup(&catalog.Chain{
		ID: "talk",
		Stages: map[int]*catalog.Stage{
			0: {Text: "{0} talks.", Next: []catalog.Branch{{Stage: 1, Delay: 2}}},
			1: {
				Text:     "{0} remembers.",
				Outcomes: []catalog.Outcome{{Kind: catalog.OutcomeStash, ItemID: catalog.ItemFood, Delta: 4}},
			},
		},
	})
	s.addMember("Alice")

	s.Require().NoError(s.engine.Drive(s.ctx, 1))
	s.Equal([]storyline.ScheduledEvent{{Day: 3, Scheduled: storyline.Scheduled{ChainID: "talk", Stage: 1}}}, s.engine.Pending())

	s.actions.EXPECT().ModifyStash(s.ctx, catalog.ItemFood, 4).Return(nil)
	s.Require().NoError(s.engine.Play(s.ctx, "talk", 1, 2))

	s.Equal([]string{"Alice talks.", "Alice remembers."}, s.recorder.Texts())
}

func (s *EngineTestSuite) TestDrivePlaysQueuedEntryAndRemovesIt() {
	s.setup(&catalog.Chain{
		ID: "talk",
		Stages: map[int]*catalog.Stage{
			0: {Text: "start"},
			1: {Text: "queued"},
		},
	})
	s.engine.Schedule(4, storyline.Scheduled{ChainID: "talk", Stage: 1})

	s.Require().NoError(s.engine.Drive(s.ctx, 4))

	s.Equal([]string{"queued"}, s.recorder.Texts())
	s.Empty(s.engine.Pending())
}

func (s *EngineTestSuite) TestDriveStopsStartingChainsWhenQueueIsFull() {
	s.setup(&catalog.Chain{
		ID:     "talk",
		Stages: map[int]*catalog.Stage{0: {Text: "start"}, 1: {Text: "later"}},
	})
	for day := 10; day < 10+storyline.MaxScheduled; day++ {
		s.engine.Schedule(day, storyline.Scheduled{ChainID: "talk", Stage: 1})
	}

	s.Require().NoError(s.engine.Drive(s.ctx, 1))

	s.Empty(s.recorder.Texts())
	s.Len(s.engine.Pending(), storyline.MaxScheduled)
}

func (s *EngineTestSuite) TestMissingTokensResolveEmpty() {
	s.setup(&catalog.Chain{
		ID:     "crowd",
		Stages: map[int]*catalog.Stage{0: {Text: "[{0}|{1}|{2}|{3}]"}},
	})
	s.addMember("Alice")
	s.addMember("Bob")

	s.Require().NoError(s.engine.Play(s.ctx, "crowd", 0, 1))

	text := s.recorder.Texts()[0]
	s.True(text == "[Alice|Bob||]" || text == "[Bob|Alice||]", text)
}

func (s *EngineTestSuite) TestAmbushStartsCombat() {
	s.setup(catalog.DefaultConfig().Chains[1])

	s.actions.EXPECT().StartRandomCombat(s.ctx).Return(nil)

	s.Require().NoError(s.engine.Drive(s.ctx, 1))
	s.Equal([]string{"The party is attacked by some enemies!"}, s.recorder.Texts())
}

func (s *EngineTestSuite) TestOutcomeFailureDoesNotStopTheChain() {
	s.setup(&catalog.Chain{
		ID: "raid",
		Stages: map[int]*catalog.Stage{
			0: {
				Text:     "raid",
				Outcomes: []catalog.Outcome{{Kind: catalog.OutcomeCombat}},
				Next:     []catalog.Branch{{Stage: 1, Delay: 1}},
			},
			1: {Text: "aftermath"},
		},
	})

	s.actions.EXPECT().StartRandomCombat(s.ctx).Return(errors.FailedPrecondition("busy"))

	s.Require().NoError(s.engine.Play(s.ctx, "raid", 0, 1))
	s.Len(s.engine.Pending(), 1)
}

func (s *EngineTestSuite) TestPlayUnknownChain() {
	err := s.engine.Play(s.ctx, "nope", 0, 1)
	s.True(errors.IsNotFound(err))
}

func (s *EngineTestSuite) setGold(count int) {
	gold, ok := s.world.Catalog().Item(catalog.ItemGold)
	s.Require().True(ok)
	stash := s.world.Stash()
	stash.Modify(gold, count-stash.Count(catalog.ItemGold))
}

func (s *EngineTestSuite) TestTraderTradesWhenThePartyCanPay() {
	s.addMember("Alice")
	s.setGold(10)

	gomock.InOrder(
		s.actions.EXPECT().ModifyStash(s.ctx, catalog.ItemGold, -10).Return(nil),
		s.actions.EXPECT().ModifyStash(s.ctx, catalog.ItemFood, 6).Return(nil),
	)
	s.Require().NoError(s.engine.Play(s.ctx, catalog.ChainTrader, 1, 4))

	s.Equal([]string{"The trader swaps Alice a sack of rations for some gold."}, s.recorder.Texts())
	s.Equal([]storyline.ScheduledEvent{{Day: 6, Scheduled: storyline.Scheduled{ChainID: catalog.ChainTrader, Stage: 3}}}, s.engine.Pending())
}

func (s *EngineTestSuite) TestTraderFallsBackWhenThePartyCannotPay() {
	s.addMember("Alice")
	s.setGold(9)

	s.Require().NoError(s.engine.Play(s.ctx, catalog.ChainTrader, 1, 4))

	s.Equal([]string{"The trader eyes Alice's empty purse and rides on."}, s.recorder.Texts())
	s.Empty(s.engine.Pending())
	s.Equal(9, s.world.Stash().Count(catalog.ItemGold))
}
