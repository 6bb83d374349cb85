package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCmd returns the winenhanced command tree. The caller owns app and
// must Close it after Execute returns.
func NewRootCmd(version string, app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "winenhanced",
		Short:         "Windows account, folder, process and shell utilities",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(cmd)
		},
	}
	rootCmd.SetOut(app.Out)
	rootCmd.SetErr(app.ErrOut)
	rootCmd.PersistentFlags().StringVar(&app.ConfigPath, "config", "", "Path to the config file (default <local app data>/<app folder>/config.yml)")
	rootCmd.PersistentFlags().BoolVarP(&app.Verbose, "verbose", "v", false, "Log debug output, and mirror the log to stderr")

	rootCmd.AddCommand(
		newUsersCmd(app),
		newFolderCmd(app),
		newPsCmd(app),
		newKillCmd(app),
		newExplorerCmd(app),
		newOpenCmd(app),
		newRunCmd(app),
		newCPUCmd(app),
		newMemCmd(app),
	)
	return rootCmd
}
