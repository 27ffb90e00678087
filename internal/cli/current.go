package cli

import (
	"fmt"

	"github.com/danieljhkim/gemini-switch/internal/config"
	"github.com/spf13/cobra"
)

func newCurrentCmd(pathsGetter func() *config.Paths) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "current",
		Short: "Show the current and previous profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			man, err := newManager(pathsGetter())
			if err != nil {
				return err
			}

			st, err := man.Current()
			if err != nil {
				return err
			}

			current := st.Current
			if current == "" {
				current = "(unknown)"
			}
			previous := st.Previous
			if previous == "" {
				previous = "(none)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Current profile:  %s\n", current)
			fmt.Fprintf(cmd.OutOrStdout(), "Previous profile: %s\n", previous)

			return nil
		},
	}

	return cmd
}
