package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	orchestrator "github.com/ubuntu/wsl-orchestrator"
	"github.com/ubuntu/wsl-orchestrator/internal/settings"
	"gopkg.in/yaml.v3"
)

// printInventory reads the inventory anew and prints it in the configured format.
func (a *app) printInventory(cmd *cobra.Command) error {
	inv, err := orchestrator.ReadInventory(cmd.Context())
	if err != nil {
		return err
	}
	a.log.Debugf("Read %d distros", inv.Len())

	out := cmd.OutOrStdout()

	if a.settings.Output == settings.OutputYAML {
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(inv)
	}

	if inv.Len() == 0 {
		fmt.Fprint(out, pterm.Info.Sprintln("No WSL distributions are installed."))
		return nil
	}

	data := pterm.TableData{{"NAME", "STATE", "VERSION", "DEFAULT"}}
	for _, r := range inv.Records() {
		def := ""
		if r.IsDefault {
			def = "*"
		}
		data = append(data, []string{r.Name, r.State.String(), strconv.Itoa(r.Version), def})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(out, table)

	return nil
}

// refreshAfter waits for the delay before printing the inventory, so that
// WSL has time to report the change. A cancelled context stops the wait.
func (a *app) refreshAfter(cmd *cobra.Command, delay time.Duration) error {
	if delay > 0 {
		a.log.Debugf("Waiting %s before refreshing", delay)
		if err := sleep(cmd.Context(), delay); err != nil {
			return err
		}
	}
	return a.printInventory(cmd)
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// confirm asks the user a yes/no question. It is skipped, and approved, with --yes.
func confirm(yes bool, question string) (bool, error) {
	if yes {
		return true, nil
	}
	return pterm.DefaultInteractiveConfirm.WithDefaultValue(false).Show(question)
}

// success prints a success message on the command's output.
func success(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprint(cmd.OutOrStdout(), pterm.Success.Sprintfln(format, args...))
}
