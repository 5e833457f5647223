package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bethropolis/termtrack/internal/config"
	"github.com/bethropolis/termtrack/internal/tracker"
)

func newCleanupCmd(cfg *config.Config) *cobra.Command {
	daysToKeep := cfg.DaysToKeep

	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Remove old activity log files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tr := tracker.New(cfg.LogDir, tracker.WithLogger(newLogger(cfg)))
			removed, err := tr.Cleanup(daysToKeep)
			if err != nil {
				return fmt.Errorf("cleanup failed: %w", err)
			}
			cmd.Printf("Removed %d log file(s) older than %d days.\n", removed, daysToKeep)
			return nil
		},
	}

	cmd.Flags().IntVar(&daysToKeep, "days-to-keep", daysToKeep, "Days of logs to keep")
	cmd.Flags().StringVar(&cfg.LogDir, "log-dir", cfg.LogDir, "Directory holding activity logs")

	return cmd
}
