package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newExplorerCmd(app *App) *cobra.Command {
	explorerCmd := &cobra.Command{
		Use:   "explorer",
		Short: "Control the Windows shell",
		Args:  cobra.NoArgs,
	}

	restartCmd := &cobra.Command{
		Use:   "restart",
		Short: "Restart explorer.exe",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.warnIfNotElevated("restarting a shell started by another user")
			if err := app.system.RestartShell(); err != nil {
				return err
			}
			fmt.Fprintln(app.Out, "Restarted explorer")
			return nil
		},
	}

	openCmd := &cobra.Command{
		Use:   "open <path>",
		Short: "Open a file browser window at path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.system.OpenExplorer(args[0])
		},
	}

	explorerCmd.AddCommand(restartCmd, openCmd)
	return explorerCmd
}

func newOpenCmd(app *App) *cobra.Command {
	openCmd := &cobra.Command{
		Use:   "open",
		Short: "Open a system utility",
		Args:  cobra.NoArgs,
	}
	openCmd.AddCommand(
		&cobra.Command{
			Use:   "taskmgr",
			Short: "Open Task Manager",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return app.system.OpenTaskManager()
			},
		},
		&cobra.Command{
			Use:     "env",
			Aliases: []string{"environment"},
			Short:   "Open the environment variables editor",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return app.system.OpenEnvironmentVariablesDialog()
			},
		},
	)
	return openCmd
}

func newRunCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "run <path>",
		Short: "Start a launcher executable without waiting for it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.system.RunLauncher(args[0])
		},
	}
}
