package cli

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	orchestrator "github.com/ubuntu/wsl-orchestrator"
)

func (a *app) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the installed distros",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.printInventory(cmd)
		},
	}
}

func (a *app) startCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start <distro>",
		Short: "Start a distro in a new console",
		Long: `Start a distro in a new console, in the home directory of its default user.
The list of distros is printed once WSL has had time to report the change.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.log.Debugf("Starting %q", args[0])
			if err := orchestrator.Start(cmd.Context(), args[0]); err != nil {
				return err
			}
			success(cmd, "Started %s", args[0])
			return a.refreshAfter(cmd, a.settings.RefreshDelay)
		},
	}
}

func (a *app) terminalCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "terminal <distro>",
		Short: "Open a new console into a distro",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.log.Debugf("Opening a terminal into %q", args[0])
			if err := orchestrator.OpenTerminal(cmd.Context(), args[0]); err != nil {
				return err
			}
			success(cmd, "Opened a terminal into %s", args[0])
			return nil
		},
	}
}

func (a *app) stopCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "stop <distro>",
		Short: "Terminate a distro",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := confirm(yes, "Terminate "+args[0]+"? Unsaved work in it will be lost.")
			if err != nil || !ok {
				return err
			}

			a.log.Debugf("Terminating %q", args[0])
			if err := orchestrator.Terminate(cmd.Context(), args[0]); err != nil {
				return err
			}
			success(cmd, "Stopped %s", args[0])
			return a.printInventory(cmd)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")

	return cmd
}

func (a *app) shutdownCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "shutdown",
		Short: "Shut WSL down, terminating every distro",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ok, err := confirm(yes, "Shut WSL down? Every running distro will be terminated.")
			if err != nil || !ok {
				return err
			}

			a.log.Debug("Shutting WSL down")
			if err := orchestrator.Shutdown(cmd.Context()); err != nil {
				return err
			}
			success(cmd, "WSL was shut down")
			return a.printInventory(cmd)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")

	return cmd
}

func (a *app) defaultCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "default <distro>",
		Short: "Make a distro the default one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.log.Debugf("Setting %q as default", args[0])
			if err := orchestrator.SetAsDefault(cmd.Context(), args[0]); err != nil {
				return err
			}
			success(cmd, "%s is now the default distro", args[0])
			return a.printInventory(cmd)
		},
	}
}

func (a *app) shortcutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shortcut <distro>",
		Short: "Print the command a desktop shortcut to the distro should run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := orchestrator.Locate(cmd.Context(), args[0]); err != nil {
				fmt.Fprint(cmd.ErrOrStderr(), pterm.Warning.Sprintfln("Could not check that %s is registered: %v", args[0], err))
			}
			fmt.Fprintln(cmd.OutOrStdout(), orchestrator.ShortcutCommand(args[0]))
			return nil
		},
	}
}
