package orchestrator

// This file contains the inventory: the list of distros and their state.

import (
	"bufio"
	"bytes"
	"context"
	"strconv"
	"strings"

	"github.com/0xrawsec/golang-utils/log"
	"github.com/ubuntu/wsl-orchestrator/internal/state"
)

// State is the state of a particular distro as seen in `wsl.exe -l -v`.
type State = state.State

// The states a distro can be reported in.
const (
	Stopped      = state.Stopped
	Running      = state.Running
	Installing   = state.Installing
	Uninstalling = state.Uninstalling
	Converting   = state.Converting

	// UnknownState is reported for states this package cannot parse.
	UnknownState = state.Error
)

// noDistrosMessage is part of what wsl.exe prints when no distro is installed.
const noDistrosMessage = "has no installed distributions"

// DistributionRecord is one distro as listed by `wsl.exe --list --verbose`.
type DistributionRecord struct {
	Name      string `yaml:"name"`
	State     State  `yaml:"state"`
	Version   int    `yaml:"version"`
	IsDefault bool   `yaml:"default"`
}

// Inventory is a snapshot of the registered distros, in the order wsl.exe lists them.
// It is never updated: read a new one after any change.
type Inventory struct {
	records []DistributionRecord
}

// NewInventory builds an inventory out of the given records.
func NewInventory(records ...DistributionRecord) Inventory {
	return Inventory{records: append([]DistributionRecord(nil), records...)}
}

// ReadInventory lists the registered distros and their state.
//
// It is analogous to
//
//	wsl.exe --list --verbose
func ReadInventory(ctx context.Context) (inv Inventory, err error) {
	defer classify(&err, ErrInventoryUnavailable, "could not list distros")

	out, err := selectBackend(ctx).List(ctx)
	if err != nil {
		return inv, err
	}

	return ParseInventory(out), nil
}

// ParseInventory parses the output of `wsl.exe --list --verbose`. Lines that
// cannot be parsed are skipped.
//
// Sample output:
//
//	  NAME           STATE           VERSION
//	* Ubuntu         Stopped         2
//	  Ubuntu-Preview Running         2
func ParseInventory(out []byte) Inventory {
	// Stray BOMs and NULs are left behind by UTF-16 output decoded as if it were UTF-8.
	out = bytes.ReplaceAll(out, []byte("\ufeff"), nil)
	out = bytes.ReplaceAll(out, []byte{0}, nil)

	var inv Inventory
	if bytes.Contains(out, []byte(noDistrosMessage)) {
		return inv
	}

	seen := make(map[string]struct{})

	sc := bufio.NewScanner(bytes.NewReader(out))
	var headerSkipped bool
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		// The header may be translated, so it is recognised by position only.
		if !headerSkipped {
			headerSkipped = true
			continue
		}

		r, ok := parseRecord(line)
		if !ok {
			log.Warnf("Skipping unexpected line in distro list: %q", line)
			continue
		}

		if _, dup := seen[strings.ToLower(r.Name)]; dup {
			log.Warnf("Skipping duplicate distro %q in distro list", r.Name)
			continue
		}
		seen[strings.ToLower(r.Name)] = struct{}{}

		inv.records = append(inv.records, r)
	}

	return inv
}

// parseRecord parses a line such as "* Ubuntu   Running   2".
func parseRecord(line string) (r DistributionRecord, ok bool) {
	line, r.IsDefault = strings.CutPrefix(line, "*")

	data := strings.Fields(line)
	if len(data) != 3 {
		return r, false
	}

	version, err := strconv.Atoi(data[2])
	if err != nil {
		return r, false
	}

	s, err := state.NewFromString(data[1])
	if err != nil {
		log.Warnf("Distro %q: %v", data[0], err)
	}

	r.Name = data[0]
	r.State = s
	r.Version = version

	return r, true
}

// Records returns a copy of the distros in the inventory.
func (inv Inventory) Records() []DistributionRecord {
	return append([]DistributionRecord(nil), inv.records...)
}

// Len returns the number of distros in the inventory.
func (inv Inventory) Len() int {
	return len(inv.records)
}

// Find returns the distro with the given name. An exact match is preferred,
// otherwise the name is matched case-insensitively, as wsl.exe does.
func (inv Inventory) Find(name string) (DistributionRecord, bool) {
	for _, r := range inv.records {
		if r.Name == name {
			return r, true
		}
	}
	for _, r := range inv.records {
		if strings.EqualFold(r.Name, name) {
			return r, true
		}
	}
	return DistributionRecord{}, false
}

// Default returns the default distro, if there is one.
func (inv Inventory) Default() (DistributionRecord, bool) {
	for _, r := range inv.records {
		if r.IsDefault {
			return r, true
		}
	}
	return DistributionRecord{}, false
}

// MarshalYAML renders the inventory as a list of distros.
func (inv Inventory) MarshalYAML() (interface{}, error) {
	if inv.records == nil {
		return []DistributionRecord{}, nil
	}
	return inv.records, nil
}
