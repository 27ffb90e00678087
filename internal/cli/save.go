package cli

import (
	"fmt"

	"github.com/danieljhkim/gemini-switch/internal/config"
	"github.com/spf13/cobra"
)

func newSaveCmd(pathsGetter func() *config.Paths) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save [name]",
		Short: "Archive the current login under a profile name",
		Long: `Archive the active configuration directory as a named profile.

When name is omitted you are prompted for one. Saving an existing name
replaces its archive.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}

			man, err := newManager(pathsGetter())
			if err != nil {
				return err
			}
			if err := man.Save(name); err != nil {
				return err
			}

			// The prompt may have chosen the name; state has the answer.
			st, err := man.Current()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Profile %q saved.\n", st.Current)

			return nil
		},
	}

	return cmd
}
