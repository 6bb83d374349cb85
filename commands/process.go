package commands

import (
	"fmt"
	"strconv"

	"github.com/johma/winenhanced/process"
	"github.com/spf13/cobra"
)

func newPsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ps",
		Short: "List the ids of all running processes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pids := app.system.ListPIDs()
			for _, pid := range pids {
				fmt.Fprintln(app.Out, pid)
			}
			fmt.Fprintf(app.ErrOut, "%d processes\n", len(pids))
			return nil
		},
	}
}

func newKillCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "kill <pid>",
		Short: "Ask the system to terminate a process",
		Long: `Ask the system to terminate a process.

The termination utility is started and the command returns immediately; it
does not wait for, or confirm, that the process exited.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid pid %q: %w", args[0], err)
			}
			app.warnIfNotElevated("terminating processes of other users")
			if err := app.system.Kill(process.PID(n)); err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Requested termination of PID %d\n", n)
			return nil
		},
	}
}
