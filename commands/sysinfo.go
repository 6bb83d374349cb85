package commands

import (
	"fmt"

	"github.com/johma/winenhanced/sysinfo"
	"github.com/spf13/cobra"
)

func newCPUCmd(app *App) *cobra.Command {
	cpuCmd := &cobra.Command{
		Use:   "cpu",
		Short: "Processor information",
		Args:  cobra.NoArgs,
	}

	var all, usage, frequency bool
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show processor names, load or frequency",
		Long: `Show processor names, load or frequency.

Without flags the processor names are shown. --usage samples the load of
every logical processor for a short interval.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if !usage && !frequency {
				all = true
			}
			if all || frequency {
				cpus, err := app.system.CPUs(ctx)
				if err != nil {
					return err
				}
				for _, c := range cpus {
					if all {
						fmt.Fprintln(app.Out, c.Model)
					}
					if frequency {
						fmt.Fprintf(app.Out, "%.0f MHz\n", c.MHz)
					}
				}
			}
			if usage {
				load, err := app.system.CPUUsage(ctx)
				if err != nil {
					return err
				}
				for i, p := range load {
					fmt.Fprintf(app.Out, "cpu%d %.1f%%\n", i, p)
				}
			}
			return nil
		},
	}
	showCmd.Flags().BoolVarP(&all, "all", "a", false, "Show processor names")
	showCmd.Flags().BoolVarP(&usage, "usage", "u", false, "Show the load of each logical processor")
	showCmd.Flags().BoolVarP(&frequency, "frequency", "f", false, "Show processor frequency")

	cpuCmd.AddCommand(showCmd)
	return cpuCmd
}

func newMemCmd(app *App) *cobra.Command {
	memCmd := &cobra.Command{
		Use:   "mem",
		Short: "Memory information",
		Args:  cobra.NoArgs,
	}

	var all, free, used, available bool
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show physical memory figures",
		Long: `Show physical memory figures in GB.

Without flags every figure is shown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := app.system.Memory(cmd.Context())
			if err != nil {
				return err
			}
			everything := !all && !free && !used && !available
			if all || everything {
				fmt.Fprintf(app.Out, "Total Memory: %s\n", sysinfo.GiB(m.Total))
			}
			if free || everything {
				fmt.Fprintf(app.Out, "Free Memory: %s\n", sysinfo.GiB(m.Free))
			}
			if used || everything {
				fmt.Fprintf(app.Out, "Used Memory: %s\n", sysinfo.GiB(m.Used))
			}
			if available || everything {
				fmt.Fprintf(app.Out, "Available Memory: %s\n", sysinfo.GiB(m.Available))
			}
			return nil
		},
	}
	showCmd.Flags().BoolVarP(&all, "all", "a", false, "Show total memory")
	showCmd.Flags().BoolVarP(&free, "free", "f", false, "Show free memory")
	showCmd.Flags().BoolVarP(&used, "used", "u", false, "Show used memory")
	showCmd.Flags().BoolVarP(&available, "available", "A", false, "Show available memory")

	memCmd.AddCommand(showCmd)
	return memCmd
}
