package mock

// This file mocks utilities to access functionality accessed via wsl.exe

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"slices"
	"strings"
)

// noDistrosOutput is what wsl.exe prints when listing with no distros installed.
const noDistrosOutput = "Windows Subsystem for Linux has no installed distributions.\r\n" +
	"Distributions can be installed by visiting the Microsoft Store:\r\nhttps://aka.ms/wslstore\r\n"

// precheck returns the error that a mocked call must fail with, if any.
func (b *Backend) precheck(ctx context.Context, injected bool) error {
	if b.WslNotInstalled {
		return &exec.Error{Name: "wsl.exe", Err: exec.ErrNotFound}
	}
	if injected {
		return Error{}
	}
	return ctx.Err()
}

// List mocks the output of `wsl.exe --list --verbose`.
func (b *Backend) List(ctx context.Context) ([]byte, error) {
	if err := b.precheck(ctx, b.ListError); err != nil {
		return nil, err
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	if len(b.order) == 0 {
		return []byte(noDistrosOutput), nil
	}

	width := len("NAME")
	for _, k := range b.order {
		width = max(width, len(b.lxssRootKey.children[k].distroName()))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "  %-*s    %-15s %s\r\n", width, "NAME", "STATE", "VERSION")
	for _, k := range b.order {
		key := b.lxssRootKey.children[k]

		mark := " "
		if b.lxssRootKey.Data["DefaultDistribution"] == k {
			mark = "*"
		}

		st := "Stopped"
		if key.state.IsRunning() {
			st = "Running"
		}

		fmt.Fprintf(&sb, "%s %-*s    %-15s %d\r\n", mark, width, key.distroName(), st, key.version())
	}

	return []byte(sb.String()), nil
}

// Launch mocks opening a console into a distro, which wakes it up.
func (b *Backend) Launch(ctx context.Context, distroName string) error {
	if err := b.precheck(ctx, b.LaunchError); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	k, found := b.find(distroName)
	if !found {
		return fmt.Errorf("could not launch %q: %w", distroName, errNoDistro)
	}
	return b.lxssRootKey.children[k].state.Touch()
}

// Shutdown mocks the behaviour of shutting down WSL.
func (b *Backend) Shutdown(ctx context.Context) error {
	if err := b.precheck(ctx, b.ShutdownError); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for _, k := range b.order {
		if err := b.lxssRootKey.children[k].state.Terminate(); err != nil {
			return err
		}
	}
	return nil
}

// Terminate mocks the behaviour of shutting down one WSL distro.
func (b *Backend) Terminate(ctx context.Context, distroName string) error {
	if err := b.precheck(ctx, b.TerminateError); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	k, found := b.find(distroName)
	if !found {
		return fmt.Errorf("error terminating distro %q: %w", distroName, errNoDistro)
	}
	return b.lxssRootKey.children[k].state.Terminate()
}

// SetAsDefault mocks the behaviour of setting one distro as default.
func (b *Backend) SetAsDefault(ctx context.Context, distroName string) error {
	if err := b.precheck(ctx, b.SetAsDefaultError); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	k, found := b.find(distroName)
	if !found {
		return fmt.Errorf("error setting %q as default: %w", distroName, errNoDistro)
	}
	b.lxssRootKey.Data["DefaultDistribution"] = k
	return nil
}

// Export mocks exporting a distro by writing a placeholder tarball.
func (b *Backend) Export(ctx context.Context, distroName, tarball string) error {
	if err := b.precheck(ctx, b.ExportError); err != nil {
		return err
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	if _, found := b.find(distroName); !found {
		return fmt.Errorf("error exporting %q: %w", distroName, errNoDistro)
	}

	if err := os.WriteFile(tarball, []byte(distroName), 0600); err != nil {
		return fmt.Errorf("error exporting %q: %v", distroName, err)
	}
	return nil
}

// Unregister mocks removing a distro. If it was the default one, the next
// remaining distro becomes the default.
func (b *Backend) Unregister(ctx context.Context, distroName string) error {
	if err := b.precheck(ctx, b.UnregisterError); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	k, found := b.find(distroName)
	if !found {
		return fmt.Errorf("error unregistering %q: %w", distroName, errNoDistro)
	}

	if err := b.lxssRootKey.children[k].state.MarkUninstalled(); err != nil {
		return err
	}
	delete(b.lxssRootKey.children, k)
	b.order = slices.DeleteFunc(b.order, func(s string) bool { return s == k })

	if b.lxssRootKey.Data["DefaultDistribution"] == k {
		b.lxssRootKey.Data["DefaultDistribution"] = ""
		if len(b.order) > 0 {
			b.lxssRootKey.Data["DefaultDistribution"] = b.order[0]
		}
	}

	return nil
}

// Import mocks registering a distro from a tarball. Both the tarball and
// the installation directory must exist.
func (b *Backend) Import(ctx context.Context, distroName, installDir, tarball string, version int) error {
	if err := b.precheck(ctx, b.ImportError); err != nil {
		return err
	}

	if _, err := os.Stat(tarball); err != nil {
		return fmt.Errorf("error importing %q: %v", distroName, err)
	}
	if fi, err := os.Stat(installDir); err != nil || !fi.IsDir() {
		return fmt.Errorf("error importing %q: install directory %q is not usable", distroName, installDir)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, err := b.register(distroName, version, installDir); err != nil {
		return fmt.Errorf("error importing %q: %v", distroName, err)
	}
	return nil
}
