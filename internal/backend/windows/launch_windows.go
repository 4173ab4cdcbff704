package windows

import (
	"context"
	"syscall"

	"github.com/ubuntu/decorate"
	"golang.org/x/sys/windows"
)

// Launch opens a new console window with a shell into the distro, starting
// it if it was stopped. It does not wait for the console to be closed.
//
// It is analogous to
//
//	`wsl.exe -d <distroName> --cd ~`
func (Backend) Launch(ctx context.Context, distroName string) (err error) {
	defer decorate.OnError(&err, "could not launch %q", distroName)

	if err := ctx.Err(); err != nil {
		return err
	}

	// Not bound to ctx: the console belongs to the user once it is open.
	cmd := wslCommand(context.Background(), "-d", distroName, "--cd", "~")
	cmd.SysProcAttr = &syscall.SysProcAttr{CreationFlags: windows.CREATE_NEW_CONSOLE}

	if err := cmd.Start(); err != nil {
		return err
	}

	return cmd.Process.Release()
}
