package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bethropolis/termtrack/internal/shell"
)

func newInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install <shell>",
		Short: "Print the shell hook snippet for zsh, bash or fish",
		Long: `Print the preexec hook snippet for a shell. Wire it into your shell
startup file, e.g. for zsh:

  eval "$(termtrack install zsh)"`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: shell.Supported(),
		RunE: func(cmd *cobra.Command, args []string) error {
			snippet, ok := shell.Hook(args[0])
			if !ok {
				return fmt.Errorf("unsupported shell %q (supported: %s)",
					args[0], strings.Join(shell.Supported(), ", "))
			}
			cmd.Print(snippet)
			return nil
		},
	}
}
