// Package assets embeds the pixed application icon.
package assets

import (
	_ "embed"
	"fmt"
	"image"
	"sync"

	"github.com/example/pixed/internal/grid"
	"github.com/example/pixed/internal/render"
	"github.com/example/pixed/internal/theme"
)

// The icon is itself a sprite in '#'/'.' rows.
//
//go:embed icon.txt
var iconText string

var (
	loadIconOnce sync.Once
	loadIconErr  error
	icon         *grid.Grid
)

func loadIcon() {
	icon, loadIconErr = grid.Parse(iconText)
	if loadIconErr != nil {
		loadIconErr = fmt.Errorf("embedded icon: %w", loadIconErr)
	}
}

// Icon returns a copy of the icon sprite.
func Icon() (*grid.Grid, error) {
	loadIconOnce.Do(loadIcon)
	if loadIconErr != nil {
		return nil, loadIconErr
	}
	return icon.Clone(), nil
}

// IconImage renders the icon with the default theme at the largest whole
// zoom that fits in size pixels, never below one pixel per cell.
func IconImage(size int) (*image.RGBA, error) {
	g, err := Icon()
	if err != nil {
		return nil, err
	}
	zoom := max(size/max(g.Width(), g.Height()), 1)
	return render.Render(g, render.Options{Zoom: float64(zoom), Theme: theme.Default()}), nil
}
