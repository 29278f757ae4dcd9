// Package main is the entry point for the caravan simulator
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"
)

// Config is read from the environment; flags override it
type Config struct {
	Seed         uint64   `env:"CARAVAN_SEED"`
	Days         int      `env:"CARAVAN_DAYS" envDefault:"30"`
	Party        []string `env:"CARAVAN_PARTY" envSeparator:"," envDefault:"Alice,Bob,Carol,Dave"`
	RedisAddr    string   `env:"CARAVAN_REDIS_ADDR"`
	Session      string   `env:"CARAVAN_SESSION"`
	OTelEndpoint string   `env:"CARAVAN_OTEL_ENDPOINT"`
	LogLevel     string   `env:"CARAVAN_LOG_LEVEL" envDefault:"warn"`
}

var cfg Config

var rootCmd = &cobra.Command{
	Use:   "caravan",
	Short: "Caravan survival simulator",
	Long:  `Caravan runs a party of travellers through days of food, events and fights, narrating as it goes.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var level slog.Level
		if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
			return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		return nil
	},
}

func main() {
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: parse env: %v\n", err)
		os.Exit(1)
	}

	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&cfg.RedisAddr, "redis-addr", cfg.RedisAddr, "redis address for the chronicle")
	rootCmd.PersistentFlags().StringVar(&cfg.Session, "session", cfg.Session, "chronicle session id")
	rootCmd.AddCommand(newSimulateCmd(), newChronicleCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func splitNames(names []string) []string {
	var out []string
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return out
}
