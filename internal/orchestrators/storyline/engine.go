// Package storyline plays event chains: short branching stories that unfold
// over several days, one stage per day at most.
package storyline

//go:generate mockgen -destination=mock/mock_actions.go -package=storylinemock github.com/KirkDiggler/rpg-caravan/internal/orchestrators/storyline Actions

import (
	"context"
	"log/slog"
	"maps"
	"slices"

	"github.com/KirkDiggler/rpg-caravan/internal/catalog"
	"github.com/KirkDiggler/rpg-caravan/internal/engine"
	"github.com/KirkDiggler/rpg-caravan/internal/entities"
	"github.com/KirkDiggler/rpg-caravan/internal/errors"
	"github.com/KirkDiggler/rpg-caravan/internal/narrative"
	"github.com/KirkDiggler/rpg-caravan/internal/pkg/random"
)

// MaxScheduled is how many stages may wait in the queue before new chains
// stop being started
const MaxScheduled = 3

// Actions are the side effects a stage outcome can trigger
type Actions interface {
	ModifyStash(ctx context.Context, itemID string, delta int) error
	StartRandomCombat(ctx context.Context) error
}

// Scheduled is a stage waiting for its day
type Scheduled struct {
	ChainID string
	Stage   int
}

// ScheduledEvent is a queue entry together with its day
type ScheduledEvent struct {
	Day int
	Scheduled
}

// Config holds the dependencies of an Engine
type Config struct {
	World   *engine.World
	Actions Actions
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.World == nil {
		vb.RequiredField("World")
	}
	if c.Actions == nil {
		vb.RequiredField("Actions")
	}

	return vb.Build()
}

// Engine owns the scheduled-event queue. The queue never holds two entries
// for the same day.
type Engine struct {
	world   *engine.World
	actions Actions
	queue   map[int]Scheduled
}

// New creates an Engine with an empty queue
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Engine{
		world:   cfg.World,
		actions: cfg.Actions,
		queue:   make(map[int]Scheduled),
	}, nil
}

// Drive runs the storyline for day: a stage queued for that day plays and
// leaves the queue; otherwise, if the queue is short, a random chain starts
// right away.
func (e *Engine) Drive(ctx context.Context, day int) error {
	if next, ok := e.queue[day]; ok {
		delete(e.queue, day)
		return e.Play(ctx, next.ChainID, next.Stage, day)
	}

	if len(e.queue) >= MaxScheduled {
		return nil
	}

	chain, ok := random.Pick(e.world.Random(), e.world.Catalog().Chains())
	if !ok {
		return nil
	}
	return e.Play(ctx, chain.ID, catalog.EntryStage, day)
}

// Play narrates a stage with a fresh random party order for its tokens,
// applies its outcomes and queues whichever branch follows
func (e *Engine) Play(ctx context.Context, chainID string, stageID int, day int) error {
	chain, ok := e.world.Catalog().Chain(chainID)
	if !ok {
		return errors.NotFoundf("chain %s not found", chainID)
	}
	stage, ok := chain.Stage(stageID)
	if !ok {
		return errors.NotFoundf("chain %s has no stage %d", chainID, stageID)
	}

	if !e.affordable(stage) {
		slog.Debug("Stage requirements not met",
			"chain_id", chainID,
			"stage", stageID,
			"fallback", stage.Otherwise,
		)
		stageID = stage.Otherwise
		if stage, ok = chain.Stage(stageID); !ok {
			return errors.NotFoundf("chain %s has no stage %d", chainID, stageID)
		}
	}

	order := e.world.RandomOrder(entities.FactionParty)
	names := make([]string, 0, len(order))
	for _, c := range order {
		names = append(names, c.Name())
	}
	e.world.Narrate(ctx, narrative.Format(stage.Text, narrative.Lookup{Names: names}), narrative.LevelEvent)

	for _, outcome := range stage.Outcomes {
		if err := e.apply(ctx, outcome); err != nil {
			slog.Warn("Stage outcome failed",
				"chain_id", chainID,
				"stage", stageID,
				"outcome", outcome.Kind,
				"error", err,
			)
		}
	}

	if branch, ok := random.Pick(e.world.Random(), stage.Next); ok {
		placed := e.Schedule(day+branch.Delay, Scheduled{ChainID: chainID, Stage: branch.Stage})
		slog.Debug("Stage scheduled",
			"chain_id", chainID,
			"stage", branch.Stage,
			"day", placed,
		)
	}

	return nil
}

// Schedule stores entry on day, or on the first free day after it, and
// returns the day used
func (e *Engine) Schedule(day int, entry Scheduled) int {
	for {
		if _, taken := e.queue[day]; !taken {
			e.queue[day] = entry
			return day
		}
		day++
	}
}

// Pending returns the queue ordered by day
func (e *Engine) Pending() []ScheduledEvent {
	days := slices.Sorted(maps.Keys(e.queue))
	out := make([]ScheduledEvent, 0, len(days))
	for _, day := range days {
		out = append(out, ScheduledEvent{Day: day, Scheduled: e.queue[day]})
	}
	return out
}

func (e *Engine) affordable(stage *catalog.Stage) bool {
	for _, need := range stage.Requires {
		if e.world.Stash().Count(need.ItemID) < need.Count {
			return false
		}
	}
	return true
}

func (e *Engine) apply(ctx context.Context, outcome catalog.Outcome) error {
	switch outcome.Kind {
	case catalog.OutcomeStash:
		return e.actions.ModifyStash(ctx, outcome.ItemID, outcome.Delta)
	case catalog.OutcomeCombat:
		return e.actions.StartRandomCombat(ctx)
	default:
		return errors.InvalidArgumentf("unknown outcome %q", outcome.Kind)
	}
}
