// Package windows contains the production backend. It is the
// one used in production code, and runs wsl.exe and reads the
// registry.
//
// Registry access and console creation are only available on
// Windows; elsewhere they always return an error.
package windows

import "github.com/ubuntu/wsl-orchestrator/internal/backend"

var _ backend.Backend = Backend{}

// Backend implements the Backend interface.
type Backend struct{}
