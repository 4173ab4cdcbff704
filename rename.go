package orchestrator

// This file contains the rename guard and the rename itself, which WSL does not
// support natively: the distro is exported, unregistered and imported back under
// its new name.

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"github.com/0xrawsec/golang-utils/log"
	"github.com/google/uuid"
	"github.com/ubuntu/decorate"
)

// validName matches the names wsl.exe --import accepts.
var validName = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// ValidateRename checks that target, a distro in inv, can be renamed to newName.
// It returns nil when the rename is safe, or an error wrapping ErrRenameRejected.
//
// Names collide case-insensitively, as they do for wsl.exe. Renaming a distro to
// its current name is approved: it is a no-op.
func ValidateRename(inv Inventory, target DistributionRecord, newName string) (err error) {
	defer decorate.OnError(&err, "cannot rename %q to %q", target.Name, newName)

	if !inv.contains(target.Name) {
		return fmt.Errorf("%w: distro is not registered", ErrRenameRejected)
	}

	if newName == "" {
		return fmt.Errorf("%w: the new name is empty", ErrRenameRejected)
	}

	if newName == target.Name {
		return nil
	}

	if strings.ContainsFunc(newName, unicode.IsSpace) {
		return fmt.Errorf("%w: the new name contains whitespace", ErrRenameRejected)
	}

	if !validName.MatchString(newName) {
		return fmt.Errorf("%w: only letters, digits, '.', '_' and '-' are allowed", ErrRenameRejected)
	}

	for _, r := range inv.records {
		if r.Name == target.Name {
			continue
		}
		if strings.EqualFold(r.Name, newName) {
			return fmt.Errorf("%w: a distro named %q already exists", ErrRenameRejected, r.Name)
		}
	}

	return nil
}

// contains reports whether a distro with exactly this name is in the inventory.
func (inv Inventory) contains(name string) bool {
	for _, r := range inv.records {
		if r.Name == name {
			return true
		}
	}
	return false
}

type renameOptions struct {
	storageRoot string
	tempDir     string
}

// RenameOption configures a call to Rename.
type RenameOption func(*renameOptions)

// WithStorageRoot sets the directory under which the renamed distro's
// filesystem is stored, in a subdirectory named after the distro.
func WithStorageRoot(dir string) RenameOption {
	return func(o *renameOptions) {
		o.storageRoot = dir
	}
}

// WithTempDir sets the directory where the distro is exported to during the rename.
func WithTempDir(dir string) RenameOption {
	return func(o *renameOptions) {
		o.tempDir = dir
	}
}

// DefaultStorageRoot is the directory renamed distros are stored under
// when no other is specified: ~/Documents/WSL_Distros.
func DefaultStorageRoot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "Documents", "WSL_Distros"), nil
}

// Rename renames a stopped distro. The inventory is read anew and the rename
// is validated with ValidateRename before anything is changed.
//
// It is analogous to
//
//	wsl --export <oldName> <tarball>
//	wsl --unregister <oldName>
//	wsl --import <newName> <storageRoot>/<newName> <tarball>
//
// Validation failures wrap ErrRenameRejected; anything after that wraps
// ErrRenameExecutionFailed. Should the import fail, the exported tarball is
// kept and its path is part of the error.
func Rename(ctx context.Context, oldName, newName string, args ...RenameOption) error {
	opts := renameOptions{
		tempDir: os.TempDir(),
	}
	for _, f := range args {
		f(&opts)
	}

	inv, err := ReadInventory(ctx)
	if err != nil {
		return err
	}

	target, ok := inv.Find(oldName)
	if !ok {
		// Still validated, so that the error explains why.
		target = DistributionRecord{Name: oldName}
	}

	if err := ValidateRename(inv, target, newName); err != nil {
		return err
	}

	if newName == target.Name {
		log.Infof("Distro %q already has that name: nothing to do", target.Name)
		return nil
	}

	if opts.storageRoot == "" {
		if opts.storageRoot, err = DefaultStorageRoot(); err != nil {
			return fmt.Errorf("%w: could not find a storage directory: %w", ErrRenameExecutionFailed, err)
		}
	}

	return rename(ctx, target, newName, opts)
}

func rename(ctx context.Context, target DistributionRecord, newName string, opts renameOptions) (err error) {
	defer classify(&err, ErrRenameExecutionFailed, "could not rename %q to %q", target.Name, newName)

	if target.State != Stopped {
		return fmt.Errorf("the distro must be stopped, but it is %s", target.State)
	}

	b := selectBackend(ctx)
	tarball := filepath.Join(opts.tempDir, fmt.Sprintf("%s_export_%s.tar", target.Name, uuid.NewString()))

	log.Infof("Renaming %q to %q: exporting to %s", target.Name, newName, tarball)
	if err := b.Export(ctx, target.Name, tarball); err != nil {
		removeTarball(tarball)
		return fmt.Errorf("export: %w", err)
	}

	if err := b.Unregister(ctx, target.Name); err != nil {
		removeTarball(tarball)
		return fmt.Errorf("unregister: %w", err)
	}

	// From here on, the tarball is the only copy of the distro.
	installDir := filepath.Join(opts.storageRoot, newName)
	if err := os.MkdirAll(installDir, 0700); err != nil {
		return fmt.Errorf("could not create %s: %w (the exported distro was kept at %s)", installDir, err, tarball)
	}

	log.Infof("Renaming %q to %q: importing into %s", target.Name, newName, installDir)
	if err := b.Import(ctx, newName, installDir, tarball, target.Version); err != nil {
		return fmt.Errorf("import: %w (the exported distro was kept at %s)", err, tarball)
	}

	removeTarball(tarball)

	if target.IsDefault {
		if err := b.SetAsDefault(ctx, newName); err != nil {
			log.Warnf("Renamed %q to %q, but could not set it back as the default distro: %v", target.Name, newName, err)
		}
	}

	return nil
}

func removeTarball(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warnf("Could not remove exported distro %s: %v", path, err)
	}
}
