// Command wsl-orchestrator manages the WSL distributions of this machine.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/pterm/pterm"
	"github.com/ubuntu/wsl-orchestrator/internal/cli"
)

func main() {
	// Keep stdout clean for piping listings.
	pterm.Error.Writer = os.Stderr

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.New().ExecuteContext(ctx); err != nil {
		pterm.Error.Println(err)
		stop()
		os.Exit(1)
	}
}
