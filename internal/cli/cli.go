// Package cli is the command line interface of wsl-orchestrator.
package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ubuntu/wsl-orchestrator/internal/settings"
)

// app holds what every command needs once the root command has parsed its flags.
type app struct {
	configPath string
	verbosity  int
	output     string

	settings settings.Settings
	log      *logrus.Logger
}

// New creates the root command with all its subcommands.
func New() *cobra.Command {
	a := &app{log: logrus.New()}

	root := &cobra.Command{
		Use:   "wsl-orchestrator",
		Short: "Manage the WSL distributions of this machine",
		Long: `wsl-orchestrator lists, starts, stops and renames WSL distributions.

Examples:
  wsl-orchestrator list
  wsl-orchestrator start Ubuntu
  wsl-orchestrator rename Debian Debian-12 --storage-root D:\WSL`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to the YAML settings file (default <config dir>/wsl-orchestrator/config.yaml)")
	root.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", "print debug logs")
	root.PersistentFlags().StringVarP(&a.output, "output", "o", "", "listing format: table or yaml (default from settings)")

	root.AddCommand(
		a.listCommand(),
		a.startCommand(),
		a.terminalCommand(),
		a.stopCommand(),
		a.shutdownCommand(),
		a.renameCommand(),
		a.defaultCommand(),
		a.infoCommand(),
		a.shortcutCommand(),
	)

	return root
}

// setup loads the settings and configures logging before any command runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.log.SetOutput(cmd.ErrOrStderr())
	a.log.SetLevel(logrus.WarnLevel)
	if a.verbosity > 0 {
		a.log.SetLevel(logrus.DebugLevel)
	}

	s, err := settings.Load(a.configPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("output") {
		switch a.output {
		case settings.OutputTable, settings.OutputYAML:
			s.Output = a.output
		default:
			return fmt.Errorf("--output must be %q or %q, not %q", settings.OutputTable, settings.OutputYAML, a.output)
		}
	}

	a.settings = s
	a.log.WithFields(logrus.Fields{
		"storage_root":  s.StorageRoot,
		"refresh_delay": s.RefreshDelay,
		"output":        s.Output,
	}).Debug("Settings loaded")

	return nil
}
