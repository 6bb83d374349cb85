package commands

import (
	"fmt"

	"github.com/johma/winenhanced/folders"
	"github.com/spf13/cobra"
	"github.com/thediveo/enumflag/v2"
)

func newFolderCmd(app *App) *cobra.Command {
	which := folders.LocalAppData
	cmd := &cobra.Command{
		Use:   "folder",
		Short: "Print the path of a special folder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, ok := app.system.ResolveFolder(which)
			if !ok {
				return fmt.Errorf("the %s folder is unavailable on this host", which)
			}
			fmt.Fprintln(app.Out, path)
			return nil
		},
	}
	cmd.Flags().VarP(
		enumflag.New(&which, "folder", folders.FolderIds, enumflag.EnumCaseInsensitive),
		"which", "w",
		"Folder to resolve; one of local, roaming, appdata, locallow, app")
	return cmd
}
