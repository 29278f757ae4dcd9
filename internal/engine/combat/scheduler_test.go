package combat_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-caravan/internal/catalog"
	"github.com/KirkDiggler/rpg-caravan/internal/engine"
	"github.com/KirkDiggler/rpg-caravan/internal/engine/combat"
	"github.com/KirkDiggler/rpg-caravan/internal/entities"
	"github.com/KirkDiggler/rpg-caravan/internal/errors"
	"github.com/KirkDiggler/rpg-caravan/internal/narrative"
	"github.com/KirkDiggler/rpg-caravan/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-caravan/internal/pkg/random"
)

type SchedulerTestSuite struct {
	suite.Suite
	ctx       context.Context
	recorder  *narrative.Recorder
	world     *engine.World
	scheduler *combat.Scheduler
}

func TestSchedulerSuite(t *testing.T) {
	suite.Run(t, new(SchedulerTestSuite))
}

func (s *SchedulerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.setup(1)
}

func (s *SchedulerTestSuite) setup(seed uint64) {
	s.recorder = narrative.NewRecorder()

	var err error
	s.world, err = engine.New(&engine.Config{
		ID:          "world_test",
		Catalog:     catalog.MustDefault(),
		Narrator:    s.recorder,
		EventBus:    events.NewBus(),
		Random:      random.NewSeeded(seed),
		IDGenerator: idgen.NewSequential("char"),
	})
	s.Require().NoError(err)

	s.scheduler, err = combat.New(&combat.Config{World: s.world})
	s.Require().NoError(err)
}

func (s *SchedulerTestSuite) addMember(name string, health int) *entities.Character {
	c, err := s.world.NewCharacter(name, entities.FactionParty, health, nil)
	s.Require().NoError(err)
	s.Require().NoError(s.world.AddPartyMember(s.ctx, c))
	return c
}

func (s *SchedulerTestSuite) addRat(health int) *entities.Character {
	rat, err := s.world.NewCharacter("Rat", entities.FactionEnemy, health, entities.NewInventory(
		entities.Stack{ItemID: "wpn_claws", Count: 1},
	))
	s.Require().NoError(err)
	rat.Equipment.EquipAuto(rat.Inventory, s.world.Catalog())
	s.world.AddEnemy(rat)
	return rat
}

func (s *SchedulerTestSuite) TestStartBuildsPartyThenEnemyBlock() {
	alice := s.addMember("Alice", 6)
	bob := s.addMember("Bob", 6)
	rat := s.addRat(2)

	s.Require().NoError(s.scheduler.Start(s.ctx))

	status := s.scheduler.Status()
	s.True(status.Active)
	s.Len(status.Order, 3)
	s.ElementsMatch([]string{alice.GetID(), bob.GetID()}, status.Order[:2])
	s.Equal(rat.GetID(), status.Order[2])
	s.Equal(0, status.Index)
	s.Equal(1, status.Round)
	s.True(status.AwaitingAction)
	s.Equal("Turn 1:", s.recorder.Texts()[0])
}

func (s *SchedulerTestSuite) TestStartNeedsEnemies() {
	s.addMember("Alice", 6)

	err := s.scheduler.Start(s.ctx)

	s.True(errors.IsFailedPrecondition(err))
	s.False(s.world.InCombat())
}

func (s *SchedulerTestSuite) TestStartTwiceFails() {
	s.addMember("Alice", 6)
	s.addRat(2)
	s.Require().NoError(s.scheduler.Start(s.ctx))

	s.True(errors.IsFailedPrecondition(s.scheduler.Start(s.ctx)))
}

func (s *SchedulerTestSuite) TestEnemyTargetsOnlyLivingPartyMembers() {
	hits := map[string]int{}
	for seed := uint64(1); seed <= 40; seed++ {
		s.setup(seed)
		alice := s.addMember("Alice", 6)
		bob := s.addMember("Bob", 6)
		carl := s.addMember("Carl", 6)
		s.world.Hurt(s.ctx, carl, 6)
		s.addRat(20)

		s.Require().NoError(s.scheduler.Start(s.ctx))
		s.Len(s.scheduler.Status().Order, 4)

		s.Require().NoError(s.scheduler.TakeAction(s.ctx, combat.ActionDefend, nil))
		s.Require().NoError(s.scheduler.TakeAction(s.ctx, combat.ActionDefend, nil))

		s.Equal(0, carl.Health())
		s.Equal(11, alice.Health()+bob.Health(), "exactly one living member was hit")
		if alice.Health() == 5 {
			hits["alice"]++
		} else {
			hits["bob"]++
		}
		s.Equal(2, s.scheduler.Status().Round)
	}
	s.Positive(hits["alice"])
	s.Positive(hits["bob"])
}

func (s *SchedulerTestSuite) TestRoundIncrementsOncePerWrap() {
	s.addMember("Alice", 6)
	s.addRat(20)
	s.Require().NoError(s.scheduler.Start(s.ctx))

	for round := 1; round <= 3; round++ {
		s.Equal(round, s.scheduler.Status().Round)
		s.Equal(0, s.scheduler.Status().Index)
		s.Require().NoError(s.scheduler.TakeAction(s.ctx, combat.ActionDefend, nil))
	}
}

func (s *SchedulerTestSuite) TestVictoryEndsCombat() {
	alice := s.addMember("Alice", 6)
	rat := s.addRat(1)
	s.Require().NoError(s.scheduler.Start(s.ctx))

	s.Require().NoError(s.scheduler.TakeAction(s.ctx, combat.ActionAttack, rat))

	status := s.scheduler.Status()
	s.False(status.Active)
	s.Equal(engine.OutcomeVictory, status.LastOutcome)
	s.Equal(engine.NoTurn, status.Index)
	s.Empty(status.Order)
	s.Empty(s.world.Enemies())
	s.Equal(6, alice.Health())
	s.Contains(s.recorder.Texts(), "Alice beats Rat with their fists, dealing 1 damage!")
	s.Contains(s.recorder.Texts(), "The enemies are defeated!")
}

func (s *SchedulerTestSuite) TestDefeatEndsCombat() {
	alice := s.addMember("Alice", 1)
	s.addRat(20)
	s.Require().NoError(s.scheduler.Start(s.ctx))

	s.Require().NoError(s.scheduler.TakeAction(s.ctx, combat.ActionDefend, nil))

	s.False(alice.IsAlive())
	s.False(s.world.InCombat())
	s.Equal(engine.OutcomeDefeat, s.scheduler.Status().LastOutcome)
	s.Contains(s.recorder.Texts(), "The party has fallen!")
}

func (s *SchedulerTestSuite) TestTakeActionValidation() {
	s.addMember("Alice", 6)
	bob := s.addMember("Bob", 6)
	s.addRat(20)

	s.True(errors.IsFailedPrecondition(s.scheduler.TakeAction(s.ctx, combat.ActionDefend, nil)))

	s.Require().NoError(s.scheduler.Start(s.ctx))

	s.True(errors.IsInvalidArgument(s.scheduler.TakeAction(s.ctx, "dance", nil)))
	s.True(errors.IsInvalidArgument(s.scheduler.TakeAction(s.ctx, combat.ActionAttack, nil)))
	s.True(errors.IsInvalidArgument(s.scheduler.TakeAction(s.ctx, combat.ActionAttack, bob)))
	s.Equal(0, s.scheduler.Status().Index, "a rejected action does not advance the turn")
}

func (s *SchedulerTestSuite) TestDeadOccupantsAreSkipped() {
	s.addMember("Alice", 6)
	bob := s.addMember("Bob", 6)
	rat := s.addRat(20)
	s.world.Hurt(s.ctx, bob, 6)

	s.Require().NoError(s.scheduler.Start(s.ctx))
	s.Len(s.scheduler.Status().Order, 3, "the dead stay in the order")

	for i := 0; i < 3; i++ {
		actor, err := s.scheduler.AwaitingActor()
		s.Require().NoError(err)
		s.NotEqual(bob, actor)
		s.Require().NoError(s.scheduler.TakeAction(s.ctx, combat.ActionAttack, rat))
	}
	s.Equal(17, rat.Health())
}

func (s *SchedulerTestSuite) TestResumeSkipsAwaitedActorWhoDied() {
	alice := s.addMember("Alice", 6)
	bob := s.addMember("Bob", 6)
	s.addRat(20)
	s.Require().NoError(s.scheduler.Start(s.ctx))

	first, err := s.scheduler.AwaitingActor()
	s.Require().NoError(err)
	s.world.Hurt(s.ctx, first, 6)

	s.scheduler.Resume(s.ctx)

	next, err := s.scheduler.AwaitingActor()
	s.Require().NoError(err)
	s.NotEqual(first, next)
	s.Contains([]*entities.Character{alice, bob}, next)
}

func (s *SchedulerTestSuite) TestResumeEndsLostFight() {
	alice := s.addMember("Alice", 6)
	s.addRat(20)
	s.Require().NoError(s.scheduler.Start(s.ctx))

	s.world.Hurt(s.ctx, alice, 6)
	s.scheduler.Resume(s.ctx)

	s.False(s.world.InCombat())
	s.Equal(engine.OutcomeDefeat, s.scheduler.Status().LastOutcome)
}
