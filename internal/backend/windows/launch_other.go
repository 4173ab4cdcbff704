//go:build !windows

package windows

import (
	"context"
	"errors"

	"github.com/ubuntu/decorate"
)

// Launch opens a new console window with a shell into the distro.
// This implementation will always fail outside of Windows.
func (Backend) Launch(ctx context.Context, distroName string) (err error) {
	defer decorate.OnError(&err, "could not launch %q", distroName)
	return errors.New("not implemented")
}
