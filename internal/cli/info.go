package cli

import (
	"github.com/spf13/cobra"
	orchestrator "github.com/ubuntu/wsl-orchestrator"
	"gopkg.in/yaml.v3"
)

func (a *app) infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info <distro>",
		Short: "Show where WSL keeps a distro",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := orchestrator.Locate(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			a.log.Debugf("Found %q under registry key %s", loc.Name, loc.GUID)

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			defer enc.Close()
			return enc.Encode(loc)
		},
	}
}
