// Package theme holds the colour palette used to render sprites and the
// editor chrome.
package theme

import (
	"image/color"
)

// Theme defines the colour palette for the canvas and window.
type Theme struct {
	Name string

	// Window
	Background       color.RGBA // Behind the canvas
	Foreground       color.RGBA // Status text
	StatusBackground color.RGBA

	// Canvas
	Ink      color.RGBA // Pixels set to true
	Paper    color.RGBA // Pixels set to false
	GridLine color.RGBA

	// Cursors
	PencilCursor color.RGBA
	EraserCursor color.RGBA
}

// Default returns the hardcoded default light theme (fallback).
func Default() *Theme {
	return &Theme{
		Name:             "Default",
		Background:       color.RGBA{220, 220, 220, 255},
		Foreground:       color.RGBA{0, 0, 0, 255},
		StatusBackground: color.RGBA{200, 200, 200, 255},
		Ink:              color.RGBA{0, 0, 0, 255},
		Paper:            color.RGBA{255, 255, 255, 255},
		GridLine:         color.RGBA{192, 192, 192, 255},
		PencilCursor:     color.RGBA{0, 120, 215, 255},
		EraserCursor:     color.RGBA{220, 20, 60, 255},
	}
}
