// Package combat runs the turn order of a fight: the party block followed
// by the enemy block, enemies acting on their own and the party waiting for
// a chosen action.
package combat

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-caravan/internal/engine"
	"github.com/KirkDiggler/rpg-caravan/internal/entities"
	"github.com/KirkDiggler/rpg-caravan/internal/errors"
	"github.com/KirkDiggler/rpg-caravan/internal/narrative"
	"github.com/KirkDiggler/rpg-caravan/internal/pkg/random"
)

// Action is what a party member does on their turn
type Action string

const (
	ActionAttack Action = "attack"
	// ActionDefend only announces the stance; it has no mechanical effect yet
	ActionDefend Action = "defend"
)

// IsValid reports whether a is a known action
func (a Action) IsValid() bool {
	return a == ActionAttack || a == ActionDefend
}

// NeedsTarget reports whether a is aimed at an enemy
func (a Action) NeedsTarget() bool {
	return a == ActionAttack
}

// Config holds the dependencies of a Scheduler
type Config struct {
	World *engine.World
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.World == nil {
		vb.RequiredField("World")
	}

	return vb.Build()
}

// Scheduler drives combat on a world. All turn state lives in
// World.Combat, so a scheduler holds nothing of its own.
type Scheduler struct {
	world *engine.World
}

// New creates a Scheduler
func New(cfg *Config) (*Scheduler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Scheduler{world: cfg.World}, nil
}

// Start shuffles the party and the enemies separately, queues the party
// block ahead of the enemy block and runs turns until a party member has to
// act or the fight is already decided.
func (s *Scheduler) Start(ctx context.Context) error {
	w := s.world
	if w.InCombat() {
		return errors.FailedPrecondition("combat is already in progress")
	}
	if len(w.Enemies()) == 0 {
		return errors.FailedPrecondition("there are no enemies to fight")
	}

	order := w.RandomOrder(entities.FactionParty)
	order = append(order, w.RandomOrder(entities.FactionEnemy)...)

	w.Combat.Order = order
	w.Combat.Index = engine.NoTurn
	w.Combat.Round = 0
	w.Combat.Outcome = engine.OutcomeNone

	slog.Info("Combat started",
		"world_id", w.GetID(),
		"participants", len(order),
		"enemies", len(w.Enemies()),
	)
	w.Publish(ctx, engine.EventCombatStarted, w, map[string]any{engine.KeyDay: w.Day()})

	// Index must leave NoTurn before the first advance so Active holds
	w.Combat.Index = len(order) - 1
	s.Advance(ctx)
	return nil
}

// Advance moves to the next living participant. Enemies act immediately;
// the loop stops on a party member's turn or when one side is wiped out.
func (s *Scheduler) Advance(ctx context.Context) {
	w := s.world
	for w.InCombat() {
		if len(w.Living(entities.FactionParty)) == 0 {
			s.end(ctx, engine.OutcomeDefeat)
			return
		}
		if len(w.Living(entities.FactionEnemy)) == 0 {
			s.end(ctx, engine.OutcomeVictory)
			return
		}

		w.Combat.Index++
		if w.Combat.Index >= len(w.Combat.Order) {
			w.Combat.Index = 0
		}
		if w.Combat.Index == 0 {
			w.Combat.Round++
			w.Narrate(ctx, fmt.Sprintf("Turn %d:", w.Combat.Round), narrative.LevelEvent)
		}

		current := w.Combat.Current()
		if !current.IsAlive() {
			continue
		}

		if current.Faction() == entities.FactionEnemy {
			w.Narrate(ctx, current.Name()+" approaches the party!", narrative.LevelDetail)
			s.enemyTurn(ctx, current)
			continue
		}

		w.Narrate(ctx, current.Name()+" approaches the enemy!", narrative.LevelDetail)
		return
	}
}

// Resume advances past a party member who died while their action was
// awaited, or ends a fight that one side already lost. It does nothing when
// a living party member is still waiting to act.
func (s *Scheduler) Resume(ctx context.Context) {
	if !s.world.InCombat() {
		return
	}
	if _, err := s.AwaitingActor(); err == nil {
		return
	}
	s.Advance(ctx)
}

// TakeAction performs action for the party member whose turn it is and
// advances the turn
func (s *Scheduler) TakeAction(ctx context.Context, action Action, target *entities.Character) error {
	actor, err := s.AwaitingActor()
	if err != nil {
		return err
	}
	if !action.IsValid() {
		return errors.InvalidArgumentf("unknown action %q", action)
	}

	switch action {
	case ActionAttack:
		if target == nil {
			return errors.InvalidArgument("attack needs a target")
		}
		if target.Faction() != entities.FactionEnemy || !target.IsAlive() {
			return errors.InvalidArgumentf("%s cannot be attacked", target.Name())
		}
		s.attack(ctx, actor, target)
	case ActionDefend:
		s.world.Narrate(ctx, actor.Name()+" defends from incoming damage!", narrative.LevelAction)
	}

	s.Advance(ctx)
	return nil
}

// AwaitingActor returns the party member whose action is awaited
func (s *Scheduler) AwaitingActor() (*entities.Character, error) {
	w := s.world
	if !w.InCombat() {
		return nil, errors.FailedPrecondition("not in combat")
	}
	current := w.Combat.Current()
	if current == nil || current.Faction() != entities.FactionParty || !current.IsAlive() {
		return nil, errors.FailedPrecondition("no party member is waiting to act")
	}
	return current, nil
}

// Targets returns the characters action may be aimed at
func (s *Scheduler) Targets(action Action) []*entities.Character {
	if !action.NeedsTarget() {
		return nil
	}
	return s.world.Enemies()
}

func (s *Scheduler) enemyTurn(ctx context.Context, enemy *entities.Character) {
	target, ok := random.Pick(s.world.Random(), s.world.Living(entities.FactionParty))
	if !ok {
		s.world.Narrate(ctx, enemy.Name()+" has no targets to attack!", narrative.LevelAction)
		return
	}
	s.attack(ctx, enemy, target)
}

func (s *Scheduler) attack(ctx context.Context, actor, target *entities.Character) {
	weapon := actor.Equipment.InSlot(entities.SlotMain)
	damage := weapon.Damage()

	text := fmt.Sprintf("%s attacks %s, dealing %d damage!", actor.Name(), target.Name(), damage)
	if template, ok := random.Pick(s.world.Random(), weapon.AttackTexts()); ok {
		text = narrative.Format(template, narrative.Lookup{
			Names:  []string{actor.Name(), target.Name()},
			Damage: narrative.Damage(damage),
		})
	}
	s.world.Narrate(ctx, text, narrative.LevelAction)

	slog.Debug("Attack resolved",
		"actor_id", actor.GetID(),
		"target_id", target.GetID(),
		"weapon_id", weapon.ID,
		"damage", damage,
	)

	s.world.Hurt(ctx, target, damage)
}

func (s *Scheduler) end(ctx context.Context, outcome engine.Outcome) {
	w := s.world
	rounds := w.Combat.Round

	w.Combat.Reset(outcome)
	w.ClearEnemies()

	if outcome == engine.OutcomeVictory {
		w.Narrate(ctx, "The enemies are defeated!", narrative.LevelEvent)
	} else {
		w.Narrate(ctx, "The party has fallen!", narrative.LevelEvent)
	}

	slog.Info("Combat ended",
		"world_id", w.GetID(),
		"outcome", outcome,
		"rounds", rounds,
	)
	w.Publish(ctx, engine.EventCombatEnded, w, map[string]any{engine.KeyOutcome: string(outcome)})
}

// Status is a read-only view of the fight
type Status struct {
	Active    bool
	Round     int
	Index     int
	Order     []string
	CurrentID string
	// AwaitingAction is set when a party member has to choose an action
	AwaitingAction bool
	LastOutcome    engine.Outcome
}

// Status reports the current combat state
func (s *Scheduler) Status() Status {
	w := s.world
	st := Status{
		Active:      w.InCombat(),
		Round:       w.Combat.Round,
		Index:       w.Combat.Index,
		LastOutcome: w.Combat.Outcome,
	}
	for _, c := range w.Combat.Order {
		st.Order = append(st.Order, c.GetID())
	}
	if current := w.Combat.Current(); current != nil {
		st.CurrentID = current.GetID()
	}
	_, err := s.AwaitingActor()
	st.AwaitingAction = err == nil
	return st
}
