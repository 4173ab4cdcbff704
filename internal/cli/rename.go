package cli

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	orchestrator "github.com/ubuntu/wsl-orchestrator"
)

func (a *app) renameCommand() *cobra.Command {
	var yes bool
	var storageRoot string

	cmd := &cobra.Command{
		Use:   "rename <distro> <new name>",
		Short: "Rename a stopped distro",
		Long: `Rename a stopped distro. WSL cannot rename distros, so it is exported to a
temporary tarball, unregistered, and imported back under its new name into
<storage root>/<new name>. Should the import fail, the tarball is kept and its
path is printed so that the distro can be imported by hand.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			oldName, newName := args[0], args[1]
			if storageRoot == "" {
				storageRoot = a.settings.StorageRoot
			}

			inv, err := orchestrator.ReadInventory(cmd.Context())
			if err != nil {
				return err
			}

			target, ok := inv.Find(oldName)
			if !ok {
				target = orchestrator.DistributionRecord{Name: oldName}
			}
			if err := orchestrator.ValidateRename(inv, target, newName); err != nil {
				return err
			}
			if target.Name == newName {
				fmt.Fprint(cmd.OutOrStdout(), pterm.Info.Sprintfln("%s already has that name", target.Name))
				return nil
			}

			ok, err = confirm(yes, fmt.Sprintf("Rename %s to %s? It will be stored in %s.", target.Name, newName, storageRoot))
			if err != nil || !ok {
				return err
			}

			a.log.Debugf("Renaming %q to %q under %s", target.Name, newName, storageRoot)

			spinner, err := pterm.DefaultSpinner.WithWriter(cmd.ErrOrStderr()).Start(fmt.Sprintf("Renaming %s to %s...", target.Name, newName))
			if err != nil {
				return err
			}

			err = orchestrator.Rename(cmd.Context(), target.Name, newName, orchestrator.WithStorageRoot(storageRoot))
			if err != nil {
				spinner.Fail("Rename failed")
				return err
			}
			spinner.Success(fmt.Sprintf("Renamed %s to %s", target.Name, newName))

			return a.printInventory(cmd)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	cmd.Flags().StringVar(&storageRoot, "storage-root", "", "directory to store the renamed distro under (default from settings)")

	return cmd
}
