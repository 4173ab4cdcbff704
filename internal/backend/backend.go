// Package backend defines all the actions that a back-end to the orchestrator
// must be able to perform in order to run, or otherwise mock WSL.
package backend

import (
	"context"
)

// RegistryKey mocks a very small subset of behaviours of a Windows Registry key, enough
// for the orchestrator to do the limited amount of traversal and reading that it needs.
type RegistryKey interface {
	Close() error
	Field(name string) (string, error)
	SubkeyNames() ([]string, error)
}

// Backend defines what a back-end to the orchestrator must be able to do or mock.
type Backend interface {
	// Registry
	OpenLxssRegistry(path string) (RegistryKey, error)

	// wsl.exe

	// List returns the output of `wsl.exe --list --verbose`, decoded as UTF-8.
	List(ctx context.Context) ([]byte, error)
	Launch(ctx context.Context, distroName string) error
	Terminate(ctx context.Context, distroName string) error
	Shutdown(ctx context.Context) error
	SetAsDefault(ctx context.Context, distroName string) error
	Export(ctx context.Context, distroName, tarball string) error
	Unregister(ctx context.Context, distroName string) error
	Import(ctx context.Context, distroName, installDir, tarball string, version int) error
}
