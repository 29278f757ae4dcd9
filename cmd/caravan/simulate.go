package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-caravan/internal/catalog"
	"github.com/KirkDiggler/rpg-caravan/internal/engine"
	"github.com/KirkDiggler/rpg-caravan/internal/narrative"
	"github.com/KirkDiggler/rpg-caravan/internal/orchestrators/game"
	"github.com/KirkDiggler/rpg-caravan/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-caravan/internal/pkg/random"
	"github.com/KirkDiggler/rpg-caravan/internal/pkg/telemetry"
	"github.com/KirkDiggler/rpg-caravan/internal/redis"
	"github.com/KirkDiggler/rpg-caravan/internal/repositories/chronicle"
)

const serviceName = "caravan"

func newSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the caravan headless for a number of days",
		RunE:  runSimulate,
	}
	cmd.Flags().IntVar(&cfg.Days, "days", cfg.Days, "number of days to simulate")
	cmd.Flags().Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed; 0 uses unseeded dice")
	cmd.Flags().StringSliceVar(&cfg.Party, "party", cfg.Party, "party member names")
	cmd.Flags().StringVar(&cfg.OTelEndpoint, "otel-endpoint", cfg.OTelEndpoint, "OTLP/HTTP endpoint for traces")
	return cmd
}

func runSimulate(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	shutdown, err := telemetry.Setup(ctx, &telemetry.Config{ServiceName: serviceName, Endpoint: cfg.OTelEndpoint})
	if err != nil {
		return fmt.Errorf("failed to set up telemetry: %w", err)
	}
	defer func() {
		flushCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		if err := shutdown(flushCtx); err != nil {
			slog.Warn("Failed to flush traces", "error", err)
		}
	}()

	party := splitNames(cfg.Party)
	if len(party) == 0 {
		return fmt.Errorf("the party needs at least one member")
	}
	if len(party) > engine.MaxPartySize {
		return fmt.Errorf("the party is limited to %d members", engine.MaxPartySize)
	}

	cat, err := catalog.Default()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	rng := random.New(nil)
	if cfg.Seed != 0 {
		rng = random.NewSeeded(cfg.Seed)
	}

	var world *engine.World
	sinks := []narrative.Sink{narrative.NewWriterSink(cmd.OutOrStdout())}

	if cfg.RedisAddr != "" {
		session := cfg.Session
		if session == "" {
			session = uuid.NewString()
		}
		repo, err := openChronicle(ctx)
		if err != nil {
			return err
		}
		sinks = append(sinks, chronicle.NewSink(repo, session, func() int {
			if world == nil {
				return 0
			}
			return world.Day()
		}))
		fmt.Fprintf(cmd.ErrOrStderr(), "chronicle session: %s\n", session)
	}

	bus := events.NewBus()
	world, err = engine.New(&engine.Config{
		ID:          "world_" + uuid.NewString(),
		Catalog:     cat,
		Narrator:    narrative.Multi(sinks...),
		EventBus:    bus,
		Random:      rng,
		IDGenerator: idgen.NewUUID("char"),
	})
	if err != nil {
		return fmt.Errorf("failed to create world: %w", err)
	}

	watch(bus)

	service, err := game.NewOrchestrator(&game.Config{World: world})
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	for _, name := range party {
		if _, err := service.AddCharacter(ctx, &game.AddCharacterInput{Name: name}); err != nil {
			return fmt.Errorf("failed to add %s: %w", name, err)
		}
	}

	pilot, err := game.NewAutopilot(service)
	if err != nil {
		return err
	}

	for day := 1; day <= cfg.Days; day++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		report, err := pilot.RunDay(ctx)
		if err != nil {
			return fmt.Errorf("day %d: %w", day, err)
		}
		if report.Living == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "The caravan perished on day %d.\n", report.Day)
			return nil
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "The caravan survived %d days.\n", cfg.Days)
	return nil
}

// watch logs the world's notable events
func watch(bus events.EventBus) {
	for _, eventType := range []string{
		engine.EventCharacterDied,
		engine.EventCombatStarted,
		engine.EventCombatEnded,
	} {
		bus.SubscribeFunc(eventType, 0, events.HandlerFunc(func(ctx context.Context, e events.Event) error {
			attrs := []any{"event_type", e.Type()}
			if target := e.Target(); target != nil {
				attrs = append(attrs, "target_id", target.GetID())
			}
			slog.Info("World event", attrs...)
			return nil
		}))
	}
}

func openChronicle(ctx context.Context) (chronicle.Repository, error) {
	client, err := redis.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}
	if err := redis.Ping(ctx, client, 3*time.Second); err != nil {
		return nil, err
	}
	return chronicle.NewRedis(&chronicle.RedisConfig{Client: client})
}
