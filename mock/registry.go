package mock

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sync/atomic"

	"github.com/ubuntu/decorate"
	"github.com/ubuntu/wsl-orchestrator/internal/backend"
	"github.com/ubuntu/wsl-orchestrator/mock/internal/distrostate"
)

const (
	lxssPath = `Software/Microsoft/Windows/CurrentVersion/Lxss/`
)

// RegistryKey is the mock's storage for a key of the Lxss registry: the
// root key holds the default distro, each distro key holds its name,
// storage path and version, plus the state tracker of the distro.
//
// All fields are guarded by the root key's mutex.
type RegistryKey struct {
	path string

	children map[string]*RegistryKey
	Data     map[string]any

	state *distrostate.DistroState
}

func (r *RegistryKey) distroName() string {
	s, _ := r.Data["DistributionName"].(string)
	return s
}

func (r *RegistryKey) version() uint32 {
	v, _ := r.Data["Version"].(uint32)
	return v
}

// OpenLxssRegistry opens a registry key at the chosen path subpath of the Lxss key.
// The returned key is a snapshot: later changes to the mock are not visible through it.
//
// This implementation is a mock used for testing.
func (b *Backend) OpenLxssRegistry(path string) (r backend.RegistryKey, err error) {
	defer decorate.OnError(&err, "registry: could not open %s", filepath.Join("HKEY_CURRENT_USER", lxssPath, path))

	if b.OpenLxssKeyError {
		return nil, Error{}
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	key := b.lxssRootKey
	if path != "." {
		var ok bool
		if key, ok = b.lxssRootKey.children[path]; !ok {
			return nil, fs.ErrNotExist
		}
	}

	snap := &keySnapshot{
		path: key.path,
		data: make(map[string]any, len(key.Data)),
	}
	for k, v := range key.Data {
		snap.data[k] = v
	}
	for k := range key.children {
		snap.subkeys = append(snap.subkeys, k)
	}

	return snap, nil
}

// keySnapshot is the read-only view of a RegistryKey handed out by OpenLxssRegistry.
type keySnapshot struct {
	path    string
	data    map[string]any
	subkeys []string
	closed  atomic.Bool
}

// Close releases the key. Closing a key twice is an error, as it is with the real registry.
func (k *keySnapshot) Close() (err error) {
	if !k.closed.CompareAndSwap(false, true) {
		return errors.New("registry: key already closed")
	}
	return nil
}

// Field obtains the value of a Field. The value must be a string.
func (k *keySnapshot) Field(name string) (value string, err error) {
	defer decorate.OnError(&err, "registry: could not access field %q in %s", name, k.path)

	v, ok := k.data[name]
	if !ok {
		return "", fs.ErrNotExist
	}

	s, ok := v.(string)
	if !ok {
		return "", errors.New("field is not string")
	}

	return s, nil
}

// SubkeyNames returns a slice containing the names of the current key's children.
func (k *keySnapshot) SubkeyNames() (subkeys []string, err error) {
	return append([]string(nil), k.subkeys...), nil
}
