package render

import (
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/example/pixed/internal/theme"
)

// StatusHeight is the height of the status line in device pixels.
const StatusHeight = 20

// Status fills r with the theme's status background and writes text in the
// foreground colour, clipped to r.
func Status(dst draw.Image, r image.Rectangle, text string, th *theme.Theme) {
	if th == nil {
		th = theme.Default()
	}
	draw.Draw(dst, r, &image.Uniform{th.StatusBackground}, image.Point{}, draw.Src)
	clip, ok := dst.(interface {
		SubImage(image.Rectangle) image.Image
	})
	target := dst
	if ok {
		if sub, ok := clip.SubImage(r).(draw.Image); ok {
			target = sub
		}
	}
	d := &font.Drawer{Dst: target, Src: &image.Uniform{th.Foreground}, Face: basicfont.Face7x13,
		Dot: fixed.P(r.Min.X+4, r.Min.Y+14)}
	d.DrawString(text)
}

// TextWidth returns the advance of text in the status font.
func TextWidth(text string) int {
	meas := &font.Drawer{Face: basicfont.Face7x13}
	return meas.MeasureString(text).Ceil()
}
