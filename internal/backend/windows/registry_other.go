//go:build !windows

package windows

import (
	"errors"
	"path/filepath"

	"github.com/ubuntu/decorate"
	"github.com/ubuntu/wsl-orchestrator/internal/backend"
)

const lxssPath = `Software/Microsoft/Windows/CurrentVersion/Lxss/`

// OpenLxssRegistry opens a registry key at the chosen path.
// This implementation will always fail outside of Windows.
func (Backend) OpenLxssRegistry(path string) (r backend.RegistryKey, err error) {
	defer decorate.OnError(&err, "registry: could not open HKEY_CURRENT_USER/%s", filepath.Join(lxssPath, path))
	return nil, errors.New("not implemented")
}
