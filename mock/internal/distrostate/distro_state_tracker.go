// Package distrostate implements the mocking of the state of the distro
// (i.e. running, stopped, etc.).
package distrostate

import (
	"errors"
	"sync"
)

// DistroState tracks whether a distro is active or not.
type DistroState struct {
	// running indicates whether the distro is running or not.
	running bool

	// flag to avoid races where you may wake up a distro after it has been uninstalled.
	uninstalled bool

	mu sync.RWMutex
}

// New creates a new distro state with state Stopped.
func New() *DistroState {
	return &DistroState{}
}

// IsRunning returns whether the distro is running this moment.
func (t *DistroState) IsRunning() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.running
}

// Touch wakes the distro up, as opening a console into it would.
func (t *DistroState) Touch() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.uninstalled {
		return errors.New("distro unregistered")
	}

	t.running = true
	return nil
}

// Terminate mocks the behaviour of `wsl.exe --terminate <distro>`.
func (t *DistroState) Terminate() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.uninstalled {
		return errors.New("distro unregistered")
	}

	t.running = false
	return nil
}

// MarkUninstalled stops the distro and marks it as uninstalled.
func (t *DistroState) MarkUninstalled() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.uninstalled {
		return errors.New("distro unregistered")
	}

	t.running = false
	t.uninstalled = true

	return nil
}
