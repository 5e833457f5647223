package cli

import (
	"github.com/spf13/cobra"

	"github.com/bethropolis/termtrack/internal/config"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the termtrack version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("termtrack version %s\n", config.Version)
		},
	}
}
