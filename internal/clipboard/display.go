//go:build linux || freebsd || openbsd || netbsd || dragonfly

package clipboard

import (
	"errors"
	"os"
)

var errNoDisplay = errors.New("clipboard initialization requires DISPLAY or WAYLAND_DISPLAY")

// displayVars name the sessions the X11/Wayland clipboard can attach to.
var displayVars = []string{"DISPLAY", "WAYLAND_DISPLAY"}

func hasDisplay() bool {
	for _, v := range displayVars {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}
