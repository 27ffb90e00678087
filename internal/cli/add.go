package cli

import (
	"fmt"

	"github.com/danieljhkim/gemini-switch/internal/config"
	"github.com/danieljhkim/gemini-switch/internal/util"
	"github.com/spf13/cobra"
)

func newAddCmd(pathsGetter func() *config.Paths) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Start a new profile from a fresh login",
		Long: `Prepare a new profile: the current login is backed up under its
profile name, then the configuration directory is removed so the next
'gemini' login starts clean. The new profile's archive is created by
the first 'save' after logging in.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			man, err := newManager(pathsGetter())
			if err != nil {
				return err
			}

			if util.DirExists(man.ConfigDir()) && !force {
				if !confirm(fmt.Sprintf("This removes %s after backing it up. Continue", man.ConfigDir())) {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			if err := man.Add(name); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Profile %q is ready.\n", name)
			fmt.Fprintf(cmd.OutOrStdout(), "Log in with the Gemini CLI, then run: gemini-switch save %s\n", name)

			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")

	return cmd
}
