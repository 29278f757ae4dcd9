// Package engine owns the simulation context: the roster, the party stash,
// the day counter, combat bookkeeping and the collaborators every operation
// shares (catalog, randomness, narration and the rpg-toolkit event bus).
// Nothing here is global; independent worlds can run side by side.
package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-caravan/internal/catalog"
	"github.com/KirkDiggler/rpg-caravan/internal/engine/inventory"
	"github.com/KirkDiggler/rpg-caravan/internal/entities"
	"github.com/KirkDiggler/rpg-caravan/internal/errors"
	"github.com/KirkDiggler/rpg-caravan/internal/narrative"
	"github.com/KirkDiggler/rpg-caravan/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-caravan/internal/pkg/random"
)

// Config holds the collaborators of a World
type Config struct {
	// ID identifies the world as the source of its events
	ID          string
	Catalog     *catalog.Catalog
	Narrator    narrative.Sink
	EventBus    events.EventBus
	Random      *random.Source
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("ID", c.ID, vb)
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Narrator == nil {
		vb.RequiredField("Narrator")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.Random == nil {
		vb.RequiredField("Random")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// World is the mutable state of one caravan run
type World struct {
	id        string
	catalog   *catalog.Catalog
	narrator  narrative.Sink
	bus       events.EventBus
	rng       *random.Source
	ids       idgen.Generator
	inventory *inventory.Resolver

	party   []*entities.Character
	enemies []*entities.Character
	stash   *entities.Inventory
	day     int

	Combat CombatState

	holding bool
	held    []events.Event
}

// New creates a world on day 0 with the catalog's starting stash and no
// characters
func New(cfg *Config) (*World, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	resolver, err := inventory.New(&inventory.Config{
		Items:    cfg.Catalog,
		Narrator: cfg.Narrator,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create inventory resolver")
	}

	return &World{
		id:        cfg.ID,
		catalog:   cfg.Catalog,
		narrator:  cfg.Narrator,
		bus:       cfg.EventBus,
		rng:       cfg.Random,
		ids:       cfg.IDGenerator,
		inventory: resolver,
		stash:     entities.NewInventory(cfg.Catalog.StartingStash()...),
		Combat:    CombatState{Index: NoTurn},
	}, nil
}

// GetID implements core.Entity
func (w *World) GetID() string {
	return w.id
}

// GetType implements core.Entity
func (w *World) GetType() string {
	return "world"
}

// Catalog returns the definitions the world runs on
func (w *World) Catalog() *catalog.Catalog {
	return w.catalog
}

// Random returns the world's random source
func (w *World) Random() *random.Source {
	return w.rng
}

// Inventory returns the resolver bound to the world's narrator
func (w *World) Inventory() *inventory.Resolver {
	return w.inventory
}

// GenerateID returns a fresh id from the world's generator
func (w *World) GenerateID() string {
	return w.ids.Generate()
}

// Stash returns the shared party inventory
func (w *World) Stash() *entities.Inventory {
	return w.stash
}

// Day returns the current day, 0 before the first one starts
func (w *World) Day() int {
	return w.day
}

// NextDay advances the day counter and returns the new day
func (w *World) NextDay() int {
	w.day++
	return w.day
}

// InCombat reports whether a fight is in progress
func (w *World) InCombat() bool {
	return w.Combat.Active()
}

// Narrate implements entities.EffectHost
func (w *World) Narrate(ctx context.Context, text string, level narrative.Level) {
	w.narrator.Line(ctx, text, level)
}

// Hurt damages c. The hit that kills c announces the death, hands whatever
// c carried to the party stash and publishes EventCharacterDied; later hits
// on a dead character do nothing more.
func (w *World) Hurt(ctx context.Context, c *entities.Character, damage int) {
	if !c.Hurt(damage) {
		return
	}

	w.Narrate(ctx, c.Name()+" is dead!", narrative.LevelDetail)

	if err := w.inventory.ReturnCarried(ctx, c, w.stash); err != nil {
		slog.Warn("Failed to recover carried items",
			"character_id", c.GetID(),
			"error", err,
		)
	}

	slog.Debug("Character died",
		"world_id", w.id,
		"character_id", c.GetID(),
		"faction", c.Faction(),
	)

	w.Publish(ctx, EventCharacterDied, c, map[string]any{KeyFaction: string(c.Faction())})
}

// Heal restores up to amount health on c and announces what was restored
func (w *World) Heal(ctx context.Context, c *entities.Character, amount int) int {
	actual := c.Heal(amount)
	w.Narrate(ctx, fmt.Sprintf("%s was healed for %d points!", c.Name(), actual), narrative.LevelDetail)
	return actual
}

// NewCharacter creates a character with the catalog's slot fillers
func (w *World) NewCharacter(name string, faction entities.Faction, maxHealth int, inv *entities.Inventory) (*entities.Character, error) {
	return entities.NewCharacter(&entities.CharacterConfig{
		ID:        w.ids.Generate(),
		Name:      name,
		Faction:   faction,
		MaxHealth: maxHealth,
		Defaults:  w.catalog.Defaults(),
		Inventory: inv,
	})
}

// AddPartyMember adds c to the party
func (w *World) AddPartyMember(ctx context.Context, c *entities.Character) error {
	if c.Faction() != entities.FactionParty {
		return errors.InvalidArgumentf("%s is not a party character", c.Name())
	}
	if len(w.party) >= MaxPartySize {
		return errors.ResourceExhaustedf("the party is limited to %d characters", MaxPartySize)
	}
	w.party = append(w.party, c)
	w.Publish(ctx, EventCharacterAdded, c, map[string]any{KeyFaction: string(c.Faction())})
	return nil
}

// RemovePartyMember takes the character with id out of the party and
// returns it. Anything it carried goes back to the stash.
func (w *World) RemovePartyMember(ctx context.Context, id string) (*entities.Character, error) {
	for i, c := range w.party {
		if c.GetID() != id {
			continue
		}
		if err := w.inventory.ReturnCarried(ctx, c, w.stash); err != nil {
			return nil, errors.Wrapf(err, "failed to recover items from %s", c.Name())
		}
		w.party = append(w.party[:i], w.party[i+1:]...)
		return c, nil
	}
	return nil, errors.NotFoundf("character %s not found", id)
}

// AddEnemy registers c on the enemy side
func (w *World) AddEnemy(c *entities.Character) {
	w.enemies = append(w.enemies, c)
}

// ClearEnemies discards every enemy
func (w *World) ClearEnemies() {
	w.enemies = nil
}

// Party returns the party in join order
func (w *World) Party() []*entities.Character {
	return append([]*entities.Character(nil), w.party...)
}

// Enemies returns the enemies in spawn order
func (w *World) Enemies() []*entities.Character {
	return append([]*entities.Character(nil), w.enemies...)
}

// Living returns the living members of faction in roster order
func (w *World) Living(faction entities.Faction) []*entities.Character {
	var out []*entities.Character
	for _, c := range w.roster(faction) {
		if c.IsAlive() {
			out = append(out, c)
		}
	}
	return out
}

// RandomOrder returns every member of faction, living or dead, shuffled
func (w *World) RandomOrder(faction entities.Faction) []*entities.Character {
	return random.Shuffled(w.rng, w.roster(faction))
}

// Find looks a character up in both rosters
func (w *World) Find(id string) (*entities.Character, bool) {
	for _, c := range w.party {
		if c.GetID() == id {
			return c, true
		}
	}
	for _, c := range w.enemies {
		if c.GetID() == id {
			return c, true
		}
	}
	return nil, false
}

func (w *World) roster(faction entities.Faction) []*entities.Character {
	if faction == entities.FactionEnemy {
		return w.enemies
	}
	return w.party
}
