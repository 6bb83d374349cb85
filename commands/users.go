package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUsersCmd(app *App) *cobra.Command {
	var profiles bool
	cmd := &cobra.Command{
		Use:   "users",
		Short: "List local user accounts and their SIDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if profiles {
				return app.printProfiles()
			}
			return app.printUsers()
		},
	}
	cmd.Flags().BoolVar(&profiles, "profiles", false, "List user profile directories instead")
	return cmd
}

func (a *App) printUsers() error {
	accounts, err := a.system.ListLocalUserSIDs()
	if err != nil {
		return err
	}
	for _, acct := range accounts {
		fmt.Fprintf(a.Out, "%-24s %s\n", acct.Name, acct.SID)
	}
	return nil
}

func (a *App) printProfiles() error {
	profiles, err := a.system.ListProfiles()
	if err != nil {
		return err
	}
	for _, p := range profiles {
		fmt.Fprintf(a.Out, "%-24s %-48s %s\n", p.Username, p.SID, p.ProfilePath)
	}
	return nil
}
