// Package render rasterises sprite grids for the window and for export.
package render

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/example/pixed/internal/geom"
	"github.com/example/pixed/internal/grid"
	"github.com/example/pixed/internal/theme"
	"github.com/example/pixed/internal/viewport"
)

// MinGridZoom is the smallest zoom at which grid lines are drawn.
const MinGridZoom = 4

// Cursor marks the brush footprint under the pointer.
type Cursor struct {
	At    image.Point
	Brush geom.Brush
	Color color.RGBA
}

// Options configures Render.
type Options struct {
	Zoom     float64
	ShowGrid bool
	Theme    *theme.Theme
	// Cursor is outlined on top of the sprite when non-nil.
	Cursor *Cursor
}

func (o Options) theme() *theme.Theme {
	if o.Theme == nil {
		return theme.Default()
	}
	return o.Theme
}

// Sprite returns g at one device pixel per cell using the theme's ink and
// paper colours.
func Sprite(g *grid.Grid, th *theme.Theme) *image.RGBA {
	if th == nil {
		th = theme.Default()
	}
	img := image.NewRGBA(g.Bounds())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := th.Paper
			if g.At(image.Pt(x, y)) {
				c = th.Ink
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// Size returns the device size of g at zoom.
func Size(g *grid.Grid, zoom float64) image.Point {
	v := viewport.Viewport{Zoom: zoomOrOne(zoom)}
	return v.ToDevice(image.Pt(g.Width(), g.Height()))
}

// Render returns the zoomed sprite with optional grid lines and cursor.
func Render(g *grid.Grid, opts Options) *image.RGBA {
	dst := image.NewRGBA(image.Rectangle{Max: Size(g, opts.Zoom)})
	Draw(dst, image.Point{}, g, opts)
	return dst
}

// Draw paints the zoomed sprite into dst with its top-left corner at origin.
func Draw(dst draw.Image, origin image.Point, g *grid.Grid, opts Options) {
	th := opts.theme()
	v := viewport.Viewport{Origin: origin, Zoom: zoomOrOne(opts.Zoom)}
	rect := image.Rectangle{Min: origin, Max: v.ToDevice(image.Pt(g.Width(), g.Height()))}
	sprite := Sprite(g, th)
	xdraw.NearestNeighbor.Scale(dst, rect, sprite, sprite.Bounds(), draw.Src, nil)

	if opts.ShowGrid && v.Zoom >= MinGridZoom {
		line := &image.Uniform{th.GridLine}
		for x := 1; x < g.Width(); x++ {
			dx := v.ToDevice(image.Pt(x, 0)).X
			draw.Draw(dst, image.Rect(dx, rect.Min.Y, dx+1, rect.Max.Y), line, image.Point{}, draw.Src)
		}
		for y := 1; y < g.Height(); y++ {
			dy := v.ToDevice(image.Pt(0, y)).Y
			draw.Draw(dst, image.Rect(rect.Min.X, dy, rect.Max.X, dy+1), line, image.Point{}, draw.Src)
		}
	}

	if c := opts.Cursor; c != nil {
		for _, off := range geom.Footprint(c.Brush) {
			p := c.At.Add(off)
			if !g.In(p) {
				continue
			}
			cell := image.Rectangle{Min: v.ToDevice(p), Max: v.ToDevice(p.Add(image.Pt(1, 1)))}
			outline(dst, cell, c.Color)
		}
	}
}

func outline(dst draw.Image, r image.Rectangle, c color.RGBA) {
	if r.Empty() {
		return
	}
	u := &image.Uniform{c}
	draw.Draw(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), u, image.Point{}, draw.Src)
}

func zoomOrOne(z float64) float64 {
	if z <= 0 {
		return 1
	}
	return z
}
