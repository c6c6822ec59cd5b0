//go:build (linux || freebsd || openbsd || netbsd || dragonfly) && cgo

package clipboard

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"sync"

	"golang.design/x/clipboard"
)

// initOnce guards the one-time attach to the display's selection owner.
var (
	initOnce sync.Once
	initErr  error
)

func ensureInit() error {
	initOnce.Do(func() {
		if !hasDisplay() {
			initErr = errNoDisplay
			return
		}
		initErr = clipboard.Init()
	})
	return initErr
}

// publish hands data to the selection owner once the session is attached.
func publish(format clipboard.Format, data []byte) error {
	if err := ensureInit(); err != nil {
		return err
	}
	clipboard.Write(format, data)
	return nil
}

// WriteImage copies a rendered sprite as a PNG image. The sprite keeps its
// theme colours and any shadow alpha.
func WriteImage(sprite image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, sprite); err != nil {
		return fmt.Errorf("encode sprite: %w", err)
	}
	return publish(clipboard.FmtImage, buf.Bytes())
}

// WriteText copies a sprite in its row form: one line per row, '#' for ink
// and '.' for background.
func WriteText(rows string) error {
	return publish(clipboard.FmtText, []byte(rows))
}

// ReadText returns the clipboard text so it can be parsed as '#'/'.' rows.
// An empty selection yields ErrNoText.
func ReadText() (string, error) {
	if err := ensureInit(); err != nil {
		return "", err
	}
	rows := clipboard.Read(clipboard.FmtText)
	if len(rows) == 0 {
		return "", ErrNoText
	}
	return string(rows), nil
}
