package game_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-caravan/internal/catalog"
	"github.com/KirkDiggler/rpg-caravan/internal/engine/combat"
	"github.com/KirkDiggler/rpg-caravan/internal/errors"
	"github.com/KirkDiggler/rpg-caravan/internal/orchestrators/game"
	gamemock "github.com/KirkDiggler/rpg-caravan/internal/orchestrators/game/mock"
	"github.com/KirkDiggler/rpg-caravan/internal/testutils"
)

type AutopilotTestSuite struct {
	suite.Suite
	ctx     context.Context
	ctrl    *gomock.Controller
	service *gamemock.MockService
	pilot   *game.Autopilot
}

func TestAutopilotSuite(t *testing.T) {
	suite.Run(t, new(AutopilotTestSuite))
}

func (s *AutopilotTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.service = gamemock.NewMockService(s.ctrl)

	var err error
	s.pilot, err = game.NewAutopilot(s.service)
	s.Require().NoError(err)
}

func (s *AutopilotTestSuite) status(active, awaiting bool) *game.GetCombatStatusOutput {
	return &game.GetCombatStatusOutput{Status: combat.Status{Active: active, AwaitingAction: awaiting}}
}

func (s *AutopilotTestSuite) TestQuietDay() {
	s.service.EXPECT().AdvanceDay(s.ctx, &game.AdvanceDayInput{}).
		Return(&game.AdvanceDayOutput{Day: 4}, nil)
	s.service.EXPECT().GetRoster(s.ctx, &game.GetRosterInput{}).
		Return(&game.GetRosterOutput{Party: []*game.CharacterView{{Alive: true}, {Alive: false}}}, nil)

	report, err := s.pilot.RunDay(s.ctx)
	s.Require().NoError(err)
	s.Equal(4, report.Day)
	s.Equal(0, report.Turns)
	s.Equal(1, report.Living)
}

func (s *AutopilotTestSuite) TestFightPicksTheFirstEligibleTarget() {
	sel := &game.PendingSelection{
		ID:   "sel_1",
		Kind: game.SelectionAttack,
		Candidates: []game.Candidate{
			{CharacterID: "dead_rat", Eligible: false},
			{CharacterID: "rat", Eligible: true},
			{CharacterID: "wizard", Eligible: true},
		},
	}

	gomock.InOrder(
		s.service.EXPECT().AdvanceDay(gomock.Any(), gomock.Any()).
			Return(&game.AdvanceDayOutput{Day: 2, InCombat: true}, nil),
		s.service.EXPECT().GetCombatStatus(gomock.Any(), gomock.Any()).Return(s.status(true, true), nil),
		s.service.EXPECT().ChooseCombatAction(gomock.Any(), &game.ChooseCombatActionInput{Action: combat.ActionAttack}).
			Return(&game.ChooseCombatActionOutput{Selection: sel}, nil),
		s.service.EXPECT().ResolveSelection(gomock.Any(), &game.ResolveSelectionInput{SelectionID: "sel_1", TargetID: "rat"}).
			Return(&game.ResolveSelectionOutput{}, nil),
		s.service.EXPECT().GetCombatStatus(gomock.Any(), gomock.Any()).Return(s.status(false, false), nil),
		s.service.EXPECT().GetRoster(gomock.Any(), gomock.Any()).
			Return(&game.GetRosterOutput{Party: []*game.CharacterView{{Alive: true}}}, nil),
	)

	report, err := s.pilot.RunDay(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, report.Turns)
	s.Equal(1, report.Living)
}

func (s *AutopilotTestSuite) TestStuckFightIsReported() {
	s.service.EXPECT().GetCombatStatus(gomock.Any(), gomock.Any()).Return(s.status(true, false), nil)

	_, err := s.pilot.Fight(s.ctx)
	s.True(errors.IsInternal(err))
}

func (s *AutopilotTestSuite) TestNoEligibleCandidate() {
	err := s.pilot.Resolve(s.ctx, &game.PendingSelection{
		ID:         "sel_2",
		Candidates: []game.Candidate{{CharacterID: "x"}},
	})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *AutopilotTestSuite) TestAdvanceErrorsPropagate() {
	s.service.EXPECT().AdvanceDay(gomock.Any(), gomock.Any()).
		Return(nil, errors.FailedPrecondition("the party is empty"))

	_, err := s.pilot.RunDay(s.ctx)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *AutopilotTestSuite) TestNewAutopilotNeedsService() {
	_, err := game.NewAutopilot(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *AutopilotTestSuite) TestDefaultCatalogRunsForAMonth() {
	for _, seed := range []uint64{1, 2, 3, 4, 5} {
		world := testutils.NewTestWorld(s.T(), &testutils.WorldOptions{Seed: seed})

		service, err := game.NewOrchestrator(&game.Config{World: world})
		s.Require().NoError(err)
		for _, name := range []string{"Ann", "Ben", "Cat", "Dov"} {
			_, err := service.AddCharacter(s.ctx, &game.AddCharacterInput{Name: name})
			s.Require().NoError(err)
		}

		pilot, err := game.NewAutopilot(service)
		s.Require().NoError(err)

		for day := 1; day <= 30; day++ {
			report, err := pilot.RunDay(s.ctx)
			s.Require().NoError(err, "seed %d day %d", seed, day)
			s.Equal(day, report.Day)
			s.False(world.InCombat())
			if report.Living == 0 {
				break
			}
		}

		s.GreaterOrEqual(world.Stash().Count(catalog.ItemFood), 0)
		for _, c := range world.Party() {
			s.GreaterOrEqual(c.Health(), 0)
			s.LessOrEqual(c.Health(), c.MaxHealth())
		}
	}
}
