package orchestrator

// This file contains utilities to start and stop WSL distros.

import (
	"context"
)

// Start opens a new console into the distro, in the user's home directory,
// starting the distro if it was stopped. It does not wait for the console
// to be closed.
//
// It is analogous to
//
//	wsl.exe -d <distro> --cd ~
func Start(ctx context.Context, distroName string) (err error) {
	defer classify(&err, ErrActionFailed, "could not start %q", distroName)
	return selectBackend(ctx).Launch(ctx, distroName)
}

// OpenTerminal opens a new console into the distro. It is the same launch
// as Start, for distros that may already be running.
func OpenTerminal(ctx context.Context, distroName string) (err error) {
	defer classify(&err, ErrActionFailed, "could not open a terminal into %q", distroName)
	return selectBackend(ctx).Launch(ctx, distroName)
}

// Terminate powers off the distro.
//
// It is analogous to
//
//	wsl.exe --terminate <distro>
func Terminate(ctx context.Context, distroName string) (err error) {
	defer classify(&err, ErrActionFailed, "could not terminate %q", distroName)
	return selectBackend(ctx).Terminate(ctx, distroName)
}

// Shutdown powers off all of WSL, including all distros.
//
// It is analogous to
//
//	wsl.exe --shutdown
func Shutdown(ctx context.Context) (err error) {
	defer classify(&err, ErrActionFailed, "could not shut WSL down")
	return selectBackend(ctx).Shutdown(ctx)
}

// SetAsDefault sets a particular distribution as the default one.
//
// It is analogous to
//
//	wsl.exe --set-default <distro>
func SetAsDefault(ctx context.Context, distroName string) (err error) {
	defer classify(&err, ErrActionFailed, "could not set %q as default", distroName)
	return selectBackend(ctx).SetAsDefault(ctx, distroName)
}
