package testutils

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-caravan/internal/catalog"
	"github.com/KirkDiggler/rpg-caravan/internal/engine"
	"github.com/KirkDiggler/rpg-caravan/internal/entities"
	"github.com/KirkDiggler/rpg-caravan/internal/narrative"
	"github.com/KirkDiggler/rpg-caravan/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-caravan/internal/pkg/random"
)

const (
	// TestWorldID is the id of every fixture world
	TestWorldID = "world_test"

	// TestMaxHealth matches the default party member health
	TestMaxHealth = 6
)

// WorldOptions tweaks a fixture world. Zero values pick test defaults.
type WorldOptions struct {
	// Catalog defaults to the built-in catalog
	Catalog *catalog.Catalog
	// Narrator defaults to narrative.Discard
	Narrator narrative.Sink
	// EventBus defaults to a fresh bus
	EventBus events.EventBus
	Seed     uint64
}

// NewTestWorld creates a world with sequential ids and seeded randomness
func NewTestWorld(t testing.TB, opts *WorldOptions) *engine.World {
	t.Helper()

	if opts == nil {
		opts = &WorldOptions{}
	}
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.MustDefault()
	}
	narrator := opts.Narrator
	if narrator == nil {
		narrator = narrative.Discard
	}
	bus := opts.EventBus
	if bus == nil {
		bus = events.NewBus()
	}

	w, err := engine.New(&engine.Config{
		ID:          TestWorldID,
		Catalog:     cat,
		Narrator:    narrator,
		EventBus:    bus,
		Random:      random.NewSeeded(opts.Seed),
		IDGenerator: idgen.NewSequential("id"),
	})
	require.NoError(t, err, "failed to create test world")
	return w
}

// NewTestCatalog builds a catalog from the defaults after edit has run on
// them. Tests use it to drop chains or change the starting stash.
func NewTestCatalog(t testing.TB, edit func(cfg *catalog.Config)) *catalog.Catalog {
	t.Helper()

	cfg := catalog.DefaultConfig()
	if edit != nil {
		edit(cfg)
	}
	cat, err := catalog.New(cfg)
	require.NoError(t, err, "failed to create test catalog")
	return cat
}

// AddPartyMember creates a party member with TestMaxHealth and adds it to w
func AddPartyMember(t testing.TB, w *engine.World, name string) *entities.Character {
	t.Helper()

	c, err := w.NewCharacter(name, entities.FactionParty, TestMaxHealth, nil)
	require.NoError(t, err, "failed to create %s", name)
	require.NoError(t, w.AddPartyMember(context.Background(), c), "failed to add %s", name)
	return c
}
