package cli

import (
	"fmt"
	"strings"

	"github.com/danieljhkim/gemini-switch/internal/config"
	"github.com/spf13/cobra"
)

func newSettingsCmd(pathsGetter func() *config.Paths) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show effective settings and paths",
		Long: `Show the effective settings and the paths gemini-switch operates on.

Settings are read from config.yaml in the base directory; missing
entries fall back to built-in defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := pathsGetter()
			settings, err := config.NewSettingsManager(paths).LoadOrDefault()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config directory: %s\n", settings.ConfigDir)
			fmt.Fprintf(out, "Excluded subdirs: %s\n", strings.Join(settings.Exclude, ", "))
			fmt.Fprintf(out, "Archive root:     %s\n", paths.ProfilesDir())
			fmt.Fprintf(out, "State file:       %s\n", paths.StateFile())
			fmt.Fprintf(out, "Settings file:    %s\n", paths.SettingsFile())

			return nil
		},
	}

	return cmd
}
