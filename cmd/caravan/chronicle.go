package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-caravan/internal/repositories/chronicle"
)

func newChronicleCmd() *cobra.Command {
	var offset, limit int

	cmd := &cobra.Command{
		Use:   "chronicle",
		Short: "Print a recorded session from Redis",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.RedisAddr == "" || cfg.Session == "" {
				return fmt.Errorf("--redis-addr and --session are required")
			}

			repo, err := openChronicle(cmd.Context())
			if err != nil {
				return err
			}

			out, err := repo.List(cmd.Context(), &chronicle.ListInput{
				SessionID: cfg.Session,
				Offset:    offset,
				Limit:     limit,
			})
			if err != nil {
				return err
			}

			for _, e := range out.Entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%5d %s%s\n", e.Seq, strings.Repeat("  ", int(e.Level)), e.Text)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%d of %d entries\n", len(out.Entries), out.Total)
			return nil
		},
	}
	cmd.Flags().IntVar(&offset, "offset", 0, "first entry to print")
	cmd.Flags().IntVar(&limit, "limit", 0, "number of entries to print; 0 prints all")
	return cmd
}
