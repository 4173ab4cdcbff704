package orchestrator

import (
	"strings"
)

// ShortcutCommand returns the command line a desktop shortcut needs in order
// to open a console into the distro.
func ShortcutCommand(distroName string) string {
	if strings.Contains(distroName, " ") {
		return `wsl.exe -d "` + distroName + `"`
	}
	return "wsl.exe -d " + distroName
}
