package cli

import (
	"fmt"

	"github.com/danieljhkim/gemini-switch/internal/config"
	"github.com/spf13/cobra"
)

func newSwitchCmd(pathsGetter func() *config.Paths) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "switch <name>",
		Short: "Switch to a saved profile",
		Long: `Switch the active login to a saved profile.

The current configuration directory is archived under the current
profile name first, so nothing is lost, then the target profile's
archive is restored in its place.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := args[0]

			man, err := newManager(pathsGetter())
			if err != nil {
				return err
			}
			if err := man.Switch(target); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Now on profile %q.\n", target)

			return nil
		},
	}

	return cmd
}
