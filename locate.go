package orchestrator

// This file reads where WSL keeps each distro, from the Lxss registry key.

import (
	"context"
	"strings"

	"github.com/0xrawsec/golang-utils/log"
	"github.com/google/uuid"
	"github.com/ubuntu/decorate"
)

// Location tells where WSL keeps a distro.
type Location struct {
	Name     string    `yaml:"name"`
	GUID     uuid.UUID `yaml:"guid"`
	BasePath string    `yaml:"basePath"`
}

// Locate finds the registry entry of the distro and returns its GUID and
// the directory holding its filesystem. Names are matched case-insensitively.
// Distros missing from the registry return ErrNotRegistered.
func Locate(ctx context.Context, distroName string) (loc Location, err error) {
	defer decorate.OnError(&err, "could not locate %q", distroName)

	b := selectBackend(ctx)

	r, err := b.OpenLxssRegistry(".")
	if err != nil {
		return loc, err
	}
	defer r.Close()

	subkeys, err := r.SubkeyNames()
	if err != nil {
		return loc, err
	}

	for _, key := range subkeys {
		guid, err := uuid.Parse(key)
		if err != nil {
			continue // Not a WSL distro
		}

		loc, found, err := readLocation(ctx, key, distroName)
		if err != nil {
			log.Warnf("Skipping registry entry %s: %v", key, err)
			continue
		}
		if !found {
			continue
		}

		loc.GUID = guid
		return loc, nil
	}

	return Location{}, ErrNotRegistered
}

// readLocation reads the distro under the given Lxss subkey. found is false
// if that distro is not the one we are looking for.
func readLocation(ctx context.Context, key, distroName string) (loc Location, found bool, err error) {
	k, err := selectBackend(ctx).OpenLxssRegistry(key)
	if err != nil {
		return loc, false, err
	}
	defer k.Close()

	name, err := k.Field("DistributionName")
	if err != nil {
		return loc, false, err
	}
	if !strings.EqualFold(name, distroName) {
		return loc, false, nil
	}

	basePath, err := k.Field("BasePath")
	if err != nil {
		return loc, false, err
	}

	return Location{Name: name, BasePath: basePath}, true, nil
}
