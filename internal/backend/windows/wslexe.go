package windows

// This file contains utilities to access functionality accessed via wsl.exe

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

const wslExe = "wsl.exe"

// noDistrosMessage is part of what wsl.exe prints (with a non-zero exit code)
// when asked to list distros and none is installed.
const noDistrosMessage = "has no installed distributions"

// wslCommand prepares a wsl.exe subprocess. WSL_UTF8 makes recent versions
// of wsl.exe print UTF-8 instead of UTF-16LE; older ones ignore it, so the
// output still goes through decodeOutput.
func wslCommand(ctx context.Context, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, wslExe, args...)
	cmd.Env = append(os.Environ(), "WSL_UTF8=1")
	return cmd
}

// run executes wsl.exe with the given arguments and returns its decoded
// combined output.
func run(ctx context.Context, args ...string) ([]byte, error) {
	out, err := wslCommand(ctx, args...).CombinedOutput()
	return decodeOutput(out), err
}

// List returns the distro table as seen in `wsl.exe --list --verbose`.
//
// Sample output:
//
//	  NAME           STATE           VERSION
//	* Ubuntu         Stopped         2
//	  Ubuntu-Preview Running         2
func (Backend) List(ctx context.Context) ([]byte, error) {
	out, err := wslCommand(ctx, "--list", "--verbose").Output()
	out = decodeOutput(out)
	if err == nil {
		return out, nil
	}

	if bytes.Contains(out, []byte(noDistrosMessage)) {
		return out, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return nil, fmt.Errorf("error listing distros: %w: %s%s", err, out, decodeOutput(exitErr.Stderr))
	}
	return nil, fmt.Errorf("error listing distros: %w", err)
}

// Shutdown shuts down all distros
//
// It is analogous to
//
//	`wsl.exe --shutdown`
func (Backend) Shutdown(ctx context.Context) error {
	out, err := run(ctx, "--shutdown")
	if err != nil {
		return fmt.Errorf("error shutting WSL down: %w: %s", err, out)
	}
	return nil
}

// Terminate shuts down a particular distro
//
// It is analogous to
//
//	`wsl.exe --terminate <distroName>`
func (Backend) Terminate(ctx context.Context, distroName string) error {
	out, err := run(ctx, "--terminate", distroName)
	if err != nil {
		return fmt.Errorf("error terminating distro %q: %w: %s", distroName, err, out)
	}
	return nil
}

// SetAsDefault sets a particular distribution as the default one.
//
// It is analogous to
//
//	`wsl.exe --set-default <distroName>`
func (Backend) SetAsDefault(ctx context.Context, distroName string) error {
	out, err := run(ctx, "--set-default", distroName)
	if err != nil {
		return fmt.Errorf("error setting %q as default: %w, output: %s", distroName, err, out)
	}
	return nil
}

// Export copies the distro's filesystem into a tarball.
//
// It is analogous to
//
//	`wsl.exe --export <distroName> <tarball>`
func (Backend) Export(ctx context.Context, distroName, tarball string) error {
	out, err := run(ctx, "--export", distroName, tarball)
	if err != nil {
		return fmt.Errorf("error exporting %q: %w: %s", distroName, err, out)
	}
	return nil
}

// Unregister irreparably destroys a distro and its filesystem.
//
// It is analogous to
//
//	`wsl.exe --unregister <distroName>`
func (Backend) Unregister(ctx context.Context, distroName string) error {
	out, err := run(ctx, "--unregister", distroName)
	if err != nil {
		return fmt.Errorf("error unregistering %q: %w: %s", distroName, err, out)
	}
	return nil
}

// Import creates a new distro from a tarball, storing its filesystem in installDir.
//
// It is analogous to
//
//	`wsl.exe --import <distroName> <installDir> <tarball> --version <version>`
func (Backend) Import(ctx context.Context, distroName, installDir, tarball string, version int) error {
	out, err := run(ctx, "--import", distroName, installDir, tarball, "--version", strconv.Itoa(version))
	if err != nil {
		return fmt.Errorf("error importing %q: %w: %s", distroName, err, out)
	}
	return nil
}
