// Package cli provides the termtrack command tree
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bethropolis/termtrack/internal/config"
	"github.com/bethropolis/termtrack/internal/ignore"
	"github.com/bethropolis/termtrack/internal/logger"
	"github.com/bethropolis/termtrack/internal/tracker"
	"github.com/bethropolis/termtrack/internal/wakatime"
)

// NewRootCmd creates the root command. Invoked with arguments it tracks a
// single command line; subcommands expose the management surface.
func NewRootCmd() *cobra.Command {
	cfg := config.New()

	var (
		cwd       string
		timestamp float64
		duration  float64
	)

	cmd := &cobra.Command{
		Use:   "termtrack [flags] -- <command...>",
		Short: "Terminal activity logger",
		Long: `Termtrack is a per-command shell hook that records invoked commands to a
local append-only log, filtered through a gitignore-style ignore file, and
optionally relays them to wakatime-cli.

Install the hook for your shell with 'termtrack install <shell>'.`,
		Version: config.Version,
		Args:    cobra.ArbitraryArgs,
		// The tracking path must never fail the invoking shell; all
		// errors are absorbed and surfaced as debug diagnostics only.
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			track(cfg, strings.Join(args, " "), cwd, timestamp, duration)
			return nil
		},
	}

	cmd.SetVersionTemplate("termtrack version {{.Version}}\n")

	cmd.PersistentFlags().StringVar(&cfg.IgnoreFile, "ignore-file", cfg.IgnoreFile, "Path to the ignore pattern file")
	cmd.PersistentFlags().BoolVar(&cfg.Debug, "debug", cfg.Debug, "Enable debug output (also via "+config.DebugEnv+")")
	cmd.PersistentFlags().BoolVar(&cfg.Quiet, "quiet", false, "Suppress all non-error output")

	cmd.Flags().StringVar(&cwd, "cwd", "", "Working directory the command ran in (defaults to current)")
	cmd.Flags().Float64Var(&timestamp, "timestamp", 0, "Command start time as a unix timestamp")
	cmd.Flags().Float64Var(&duration, "duration", 0, "Command execution duration in seconds")
	cmd.Flags().StringVar(&cfg.LogDir, "log-dir", cfg.LogDir, "Directory to store activity logs")
	cmd.Flags().BoolVar(&cfg.Relay, "relay", cfg.Relay, "Relay tracked commands to wakatime-cli")

	cmd.AddCommand(newIgnoreCmd(cfg))
	cmd.AddCommand(newCleanupCmd(cfg))
	cmd.AddCommand(newStatsCmd(cfg))
	cmd.AddCommand(newInstallCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the CLI. The tracking path always exits 0; a shell hook must
// never surface errors into the user's prompt.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		if err != errIgnored {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

// track runs the full per-command pipeline: ignore check, entry build, log
// append, optional relay. Failures degrade to "not tracked", never to a
// non-zero exit.
func track(cfg *config.Config, command, cwd string, timestamp, duration float64) {
	log := newLogger(cfg)

	engine := ignore.New(ignore.WithPath(cfg.IgnoreFile), ignore.WithLogger(log))
	if engine.ShouldIgnore(command) {
		log.Debug("track: ignoring %q", command)
		return
	}

	if cwd == "" {
		if wd, err := os.Getwd(); err == nil {
			cwd = wd
		}
	}

	entry := tracker.NewEntry(command, cwd, timestamp, duration)

	tr := tracker.New(cfg.LogDir, tracker.WithLogger(log))
	if err := tr.Track(entry); err != nil {
		log.Debug("track: could not log %q: %v", command, err)
		return
	}

	if cfg.Relay {
		wakatime.New(log).Send(entry)
	}
}

// newLogger builds the stderr logger from config.
func newLogger(cfg *config.Config) *logger.Logger {
	log := logger.New(os.Stderr, cfg.Debug, cfg.UseColors)
	if cfg.Quiet && !cfg.Debug {
		log.WithLevel(logger.LevelError)
	}
	return log
}
