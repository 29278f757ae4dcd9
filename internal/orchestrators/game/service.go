// Package game is the command surface of a caravan run. It sequences days,
// starts fights, routes party actions and item use through pending
// selections, and answers roster queries. Commands are serialised; a
// presenter may call from several goroutines. Bus events raised by a command
// are delivered after its lock is released, so subscribers may query the
// service. Narration sinks run under the lock and must not call back.
package game

//go:generate mockgen -destination=mock/mock_service.go -package=gamemock github.com/KirkDiggler/rpg-caravan/internal/orchestrators/game Service

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/rpg-caravan/internal/engine"
	"github.com/KirkDiggler/rpg-caravan/internal/engine/combat"
	"github.com/KirkDiggler/rpg-caravan/internal/errors"
	"github.com/KirkDiggler/rpg-caravan/internal/orchestrators/encounter"
	"github.com/KirkDiggler/rpg-caravan/internal/orchestrators/storyline"
)

const tracerName = "github.com/KirkDiggler/rpg-caravan/internal/orchestrators/game"

// DefaultMaxHealth is given to party members added without a health value
const DefaultMaxHealth = 6

// Service defines the commands and queries of a caravan run
type Service interface {
	// AdvanceDay starts the next day: events, food, then effect ticks
	AdvanceDay(ctx context.Context, input *AdvanceDayInput) (*AdvanceDayOutput, error)

	// StartCombat spawns an encounter sized to the party and starts the fight
	StartCombat(ctx context.Context, input *StartCombatInput) (*StartCombatOutput, error)

	// ChooseCombatAction acts for the party member whose turn it is
	ChooseCombatAction(ctx context.Context, input *ChooseCombatActionInput) (*ChooseCombatActionOutput, error)

	// UseItem opens a selection for using a stash item
	UseItem(ctx context.Context, input *UseItemInput) (*UseItemOutput, error)

	// EquipItem hands a stash item to a party member and equips it
	EquipItem(ctx context.Context, input *EquipItemInput) (*EquipItemOutput, error)

	// ResolveSelection completes the pending selection with a target
	ResolveSelection(ctx context.Context, input *ResolveSelectionInput) (*ResolveSelectionOutput, error)

	// AddCharacter adds a new member to the party
	AddCharacter(ctx context.Context, input *AddCharacterInput) (*AddCharacterOutput, error)

	// RemoveCharacter takes a member out of the party
	RemoveCharacter(ctx context.Context, input *RemoveCharacterInput) (*RemoveCharacterOutput, error)

	GetRoster(ctx context.Context, input *GetRosterInput) (*GetRosterOutput, error)
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	GetInventory(ctx context.Context, input *GetInventoryInput) (*GetInventoryOutput, error)
	GetCombatStatus(ctx context.Context, input *GetCombatStatusInput) (*GetCombatStatusOutput, error)
	GetPendingSelection(ctx context.Context, input *GetPendingSelectionInput) (*GetPendingSelectionOutput, error)
}

// Config holds the dependencies for the game orchestrator
type Config struct {
	World *engine.World
	// Balancer defaults to an encounter orchestrator over World
	Balancer encounter.Service
	// Tracer defaults to the global otel tracer provider
	Tracer trace.Tracer
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.World == nil {
		vb.RequiredField("World")
	}

	return vb.Build()
}

type orchestrator struct {
	mu sync.Mutex

	world     *engine.World
	balancer  encounter.Service
	scheduler *combat.Scheduler
	storyline *storyline.Engine
	tracer    trace.Tracer

	pending *PendingSelection
}

// NewOrchestrator creates a new game orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	balancer := cfg.Balancer
	if balancer == nil {
		var err error
		balancer, err = encounter.NewOrchestrator(&encounter.Config{World: cfg.World})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create encounter orchestrator")
		}
	}

	scheduler, err := combat.New(&combat.Config{World: cfg.World})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create combat scheduler")
	}

	tracer := cfg.Tracer
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}

	o := &orchestrator{
		world:     cfg.World,
		balancer:  balancer,
		scheduler: scheduler,
		tracer:    tracer,
	}

	o.storyline, err = storyline.New(&storyline.Config{
		World:   cfg.World,
		Actions: &stageActions{o: o},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create storyline engine")
	}

	return o, nil
}

// begin takes the command lock and opens a span. Events published by the
// command are held until the returned func has recorded err on the span and
// dropped the lock, so bus subscribers may call back into the service.
func (o *orchestrator) begin(ctx context.Context, name string) (context.Context, func(*error)) {
	o.mu.Lock()
	o.world.Hold()
	ctx, span := o.tracer.Start(ctx, "game."+name, trace.WithAttributes(
		attribute.String("world.id", o.world.GetID()),
		attribute.Int("world.day", o.world.Day()),
	))
	return ctx, func(errp *error) {
		if errp != nil && *errp != nil {
			span.RecordError(*errp)
			span.SetStatus(codes.Error, errors.GetMessage(*errp))
			span.SetAttributes(attribute.String("error.code", errors.GetCode(*errp).String()))
		}
		span.End()
		publish := o.world.Release()
		o.mu.Unlock()
		publish(ctx)
	}
}

// guard refuses mutating commands while a selection waits for a target
func (o *orchestrator) guard() error {
	if o.pending != nil {
		return errors.FailedPreconditionf("selection %s is waiting for a target", o.pending.ID)
	}
	return nil
}

func (o *orchestrator) refresh(ctx context.Context) {
	o.world.Publish(ctx, engine.EventRefresh, o.world, nil)
}

// stageActions carries out stage outcomes. It runs inside a command that
// already holds the lock.
type stageActions struct {
	o *orchestrator
}

func (a *stageActions) ModifyStash(ctx context.Context, itemID string, delta int) error {
	return a.o.modifyStash(ctx, itemID, delta)
}

func (a *stageActions) StartRandomCombat(ctx context.Context) error {
	_, err := a.o.startRandomCombat(ctx)
	return err
}
