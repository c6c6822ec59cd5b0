//go:build darwin

package platform

import (
	"fmt"
	"os/exec"
)

// Notify displays a desktop notification using macOS Notification Center.
// The icon and timeout are managed by the system.
func Notify(title, body string, _ Options) error {
	return exec.Command("osascript", "-e",
		fmt.Sprintf("display notification %q with title %q", body, title)).Run()
}
