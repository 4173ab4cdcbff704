// Package mock mocks the WSL command surface, useful for tests as it allows
// parallelism, decoupling, and execution speed.
package mock

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/ubuntu/wsl-orchestrator/internal/backend"
	"github.com/ubuntu/wsl-orchestrator/mock/internal/distrostate"
)

var _ backend.Backend = (*Backend)(nil)

// Backend implements the Backend interface.
type Backend struct {
	lxssRootKey *RegistryKey // Registry mock

	// order keeps the registry keys of the distros in registration order,
	// which is the order wsl.exe lists them in.
	order []string

	mu sync.RWMutex

	// WslNotInstalled makes every wsl.exe call fail as if the executable
	// could not be found.
	WslNotInstalled bool

	// Error injectors. These all have the form of:
	//
	// NameOfTheFunctionError
	//
	// Their effect is to make the relevant function return an error of type mock.Error
	// instantly upon being called.
	OpenLxssKeyError  bool
	ListError         bool
	LaunchError       bool
	TerminateError    bool
	ShutdownError     bool
	SetAsDefaultError bool
	ExportError       bool
	UnregisterError   bool
	ImportError       bool
}

// New constructs a new mocked back-end for WSL, with no distros installed.
func New() *Backend {
	return &Backend{
		lxssRootKey: &RegistryKey{
			path: lxssPath,
			children: map[string]*RegistryKey{
				"AppxInstallerCache": {
					path: filepath.Join(lxssPath, "AppxInstallerCache"),
				},
			},
			Data: map[string]any{
				"DefaultDistribution": "",
			},
		},
	}
}

// ResetErrors sets all the error flags to false.
func (b *Backend) ResetErrors() {
	b.WslNotInstalled = false
	b.OpenLxssKeyError = false
	b.ListError = false
	b.LaunchError = false
	b.TerminateError = false
	b.ShutdownError = false
	b.SetAsDefaultError = false
	b.ExportError = false
	b.UnregisterError = false
	b.ImportError = false
}

// Install registers a stopped distro with the given name and WSL version, stored
// under basePath. The first distro to be installed becomes the default one.
func (b *Backend) Install(name string, version int, basePath string) (guid uuid.UUID, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.register(name, version, basePath)
}

// register adds a stopped distro to the registry.
//
// Use under the mutex.
func (b *Backend) register(name string, version int, basePath string) (guid uuid.UUID, err error) {
	if _, found := b.find(name); found {
		return guid, fmt.Errorf("a distribution with the name %q already exists", name)
	}

	guid = uuid.New()
	key := "{" + guid.String() + "}"
	b.lxssRootKey.children[key] = &RegistryKey{
		path: filepath.Join(lxssPath, key),
		Data: map[string]any{
			"DistributionName": name,
			"BasePath":         basePath,
			"Version":          uint32(version),
		},
		state: distrostate.New(),
	}
	b.order = append(b.order, key)

	if b.lxssRootKey.Data["DefaultDistribution"] == "" {
		b.lxssRootKey.Data["DefaultDistribution"] = key
	}

	return guid, nil
}

// find returns the registry key name of the distro, matching the name
// case-insensitively as WSL does.
//
// Use under the mutex.
func (b *Backend) find(name string) (key string, found bool) {
	for _, k := range b.order {
		if strings.EqualFold(b.lxssRootKey.children[k].distroName(), name) {
			return k, true
		}
	}
	return "", false
}

// Error is an error triggered by the mock, and not a real problem.
type Error struct{}

func (err Error) Error() string {
	return "error triggered by mock"
}

// errNoDistro mimics the message wsl.exe prints when given an unknown distro name.
var errNoDistro = errors.New("there is no distribution with the supplied name")
