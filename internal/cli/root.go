package cli

import (
	"github.com/danieljhkim/gemini-switch/internal/archive"
	"github.com/danieljhkim/gemini-switch/internal/config"
	"github.com/danieljhkim/gemini-switch/internal/profile"
	"github.com/spf13/cobra"
)

var (
	// Global paths instance
	paths *config.Paths
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gemini-switch",
	Short: "Switch between Gemini CLI login profiles",
	Long: `gemini-switch: manage named login profiles for the Gemini CLI.

Each profile is a zip snapshot of the Gemini configuration directory
(~/.gemini by default). Switching backs up the current login under its
profile name, then restores the requested profile in its place.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(newListCmd(getPaths))
	rootCmd.AddCommand(newCurrentCmd(getPaths))
	rootCmd.AddCommand(newSaveCmd(getPaths))
	rootCmd.AddCommand(newAddCmd(getPaths))
	rootCmd.AddCommand(newSwitchCmd(getPaths))
	rootCmd.AddCommand(newSettingsCmd(getPaths))
}

// initConfig sets up the global paths instance.
func initConfig() {
	paths = config.NewPaths("", "")
}

// getPaths returns the global paths instance
// This is passed to subcommands as a getter function
func getPaths() *config.Paths {
	if paths == nil {
		initConfig()
	}
	return paths
}

// newManager builds a profile manager from settings, wiring the
// interactive terminal prompt as the name provider.
func newManager(paths *config.Paths) (*profile.Manager, error) {
	settings, err := config.NewSettingsManager(paths).LoadOrDefault()
	if err != nil {
		return nil, err
	}
	archives := archive.NewStore(paths.ProfilesDir(), archive.ZipCodec{}, settings.Exclude)
	states := config.NewStateStore(paths.StateFile())
	return profile.NewManager(archives, states, settings.ConfigDir, promptName), nil
}
