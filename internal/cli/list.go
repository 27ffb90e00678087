package cli

import (
	"fmt"

	"github.com/danieljhkim/gemini-switch/internal/config"
	"github.com/spf13/cobra"
)

func newListCmd(pathsGetter func() *config.Paths) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved profiles",
		Long:  `List the names of all saved profiles, one per line.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			man, err := newManager(pathsGetter())
			if err != nil {
				return err
			}

			names, err := man.List()
			if err != nil {
				return err
			}
			if len(names) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No profiles saved yet.")
				return nil
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}

			return nil
		},
	}

	return cmd
}
