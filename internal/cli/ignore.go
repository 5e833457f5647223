package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bethropolis/termtrack/internal/config"
	"github.com/bethropolis/termtrack/internal/ignore"
)

func newIgnoreCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ignore",
		Short: "Manage ignore patterns",
		Long: `Manage the ignore pattern file.

The file uses .gitignore-style syntax, one directive per line: '#' starts a
comment, '!' negates a pattern, everything else is an ignore pattern.
Patterns match from the start of the command line up to a whitespace
boundary, so 'git' matches 'git status' but not 'github-cli'.`,
		Example: `  # Stop tracking every docker invocation
  termtrack ignore add 'docker*'

  # But keep tracking docker build
  termtrack ignore add '!docker build'

  # See what is configured, and test a command against it
  termtrack ignore list
  termtrack ignore check 'docker ps -a'`,
	}

	cmd.AddCommand(newIgnoreAddCmd(cfg))
	cmd.AddCommand(newIgnoreRemoveCmd(cfg))
	cmd.AddCommand(newIgnoreListCmd(cfg))
	cmd.AddCommand(newIgnoreCheckCmd(cfg))
	cmd.AddCommand(newIgnorePathCmd(cfg))

	return cmd
}

func newEngine(cfg *config.Config) *ignore.Engine {
	return ignore.New(
		ignore.WithPath(cfg.IgnoreFile),
		ignore.WithLogger(newLogger(cfg)),
	)
}

func newIgnoreAddCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "add <pattern>",
		Short: "Add an ignore pattern (prefix with ! for a negation)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := newEngine(cfg).AddPattern(args[0]); err != nil {
				return fmt.Errorf("could not add pattern: %w", err)
			}
			cmd.Printf("Added pattern: %s\n", args[0])
			return nil
		},
	}
}

func newIgnoreRemoveCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <pattern>",
		Short: "Remove an ignore or negation pattern",
		Long: `Remove the first line matching the pattern, as either an ignore entry or
its '!' negation. If both forms exist, whichever occurs first in the file is
the one removed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			found, err := newEngine(cfg).RemovePattern(args[0])
			if err != nil {
				return fmt.Errorf("could not remove pattern: %w", err)
			}
			if !found {
				cmd.Printf("Pattern not found: %s\n", args[0])
				return nil
			}
			cmd.Printf("Removed pattern: %s\n", args[0])
			return nil
		},
	}
}

func newIgnoreListCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all configured patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			patterns := newEngine(cfg).ListPatterns()
			if len(patterns) == 0 {
				cmd.Println("No patterns configured.")
				return nil
			}
			cmd.Println(strings.Join(patterns, "\n"))
			return nil
		},
	}
}

func newIgnoreCheckCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "check <command>",
		Short: "Test whether a command would be ignored",
		Long:  "Prints IGNORE or TRACK for the given command and exits 1 when ignored.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			command := strings.Join(args, " ")
			if newEngine(cfg).ShouldIgnore(command) {
				cmd.Printf("IGNORE: %q\n", command)
				return errIgnored
			}
			cmd.Printf("TRACK: %q\n", command)
			return nil
		},
	}
}

func newIgnorePathCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the ignore file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Println(newEngine(cfg).Path())
			return nil
		},
	}
}

// errIgnored signals the exit-1 contract of 'ignore check' without extra
// error output.
var errIgnored = fmt.Errorf("command is ignored")
