package orchestrator

import (
	"errors"
	"fmt"
)

// These errors classify every failure returned by this package. Match them with errors.Is.
var (
	// ErrInventoryUnavailable means the distros could not be listed, usually because WSL is not installed.
	ErrInventoryUnavailable = errors.New("WSL inventory unavailable")

	// ErrRenameRejected means a rename did not pass validation. Nothing was changed.
	ErrRenameRejected = errors.New("rename rejected")

	// ErrRenameExecutionFailed means a validated rename failed while being carried out.
	ErrRenameExecutionFailed = errors.New("rename failed")

	// ErrActionFailed means starting, terminating, shutting down or setting the default failed.
	ErrActionFailed = errors.New("action failed")

	// ErrNotRegistered means the distro could not be found in the registry.
	ErrNotRegistered = errors.New("distro is not registered")
)

// classify prefixes a non-nil error with its class and a description, keeping
// both the class and the cause visible to errors.Is.
func classify(err *error, class error, format string, args ...any) {
	if *err == nil {
		return
	}
	*err = fmt.Errorf("%w: %s: %w", class, fmt.Sprintf(format, args...), *err)
}
