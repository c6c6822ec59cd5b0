//go:build (linux || freebsd || openbsd || netbsd || dragonfly) && !cgo

package clipboard

import (
	"errors"
	"image"
)

var errCGODisabled = errors.New("clipboard operations require cgo support")

func ensureInit() error {
	if !hasDisplay() {
		return errNoDisplay
	}
	return errCGODisabled
}

// WriteImage would copy a rendered sprite as PNG; without cgo it only reports why it cannot.
func WriteImage(image.Image) error { return ensureInit() }

// WriteText would copy '#'/'.' rows; without cgo it only reports why it cannot.
func WriteText(string) error { return ensureInit() }

func ReadText() (string, error) { return "", ensureInit() }
