package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bethropolis/termtrack/internal/config"
	"github.com/bethropolis/termtrack/internal/stats"
)

func newStatsCmd(cfg *config.Config) *cobra.Command {
	var (
		days       int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize recorded activity by project, language and command",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			since := time.Time{}
			if days > 0 {
				since = time.Now().Add(-time.Duration(days) * 24 * time.Hour)
			}

			s, err := stats.Collect(cfg.LogDir, since, newLogger(cfg))
			if err != nil {
				return fmt.Errorf("could not read logs: %w", err)
			}
			return stats.Render(cmd.OutOrStdout(), s, jsonOutput)
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "Only include the last N days (0 = everything)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the summary as JSON")
	cmd.Flags().StringVar(&cfg.LogDir, "log-dir", cfg.LogDir, "Directory holding activity logs")

	return cmd
}
