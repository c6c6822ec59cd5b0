package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/example/pixed/internal/grid"
)

// ShadowOptions describes the drop shadow drawn under a sticker. Radius and
// Offset are in device pixels.
type ShadowOptions struct {
	Radius  int
	Offset  image.Point
	Opacity float64
}

// DefaultShadow returns a soft shadow scaled to zoom.
func DefaultShadow(zoom float64) ShadowOptions {
	z := int(zoomOrOne(zoom))
	d := max(z/3, 1)
	return ShadowOptions{Radius: max(z/2, 1), Offset: image.Pt(d, d), Opacity: 0.5}
}

// Sticker renders only the ink cells of g, on a transparent background, with
// a blurred shadow in the ink colour beneath them. The canvas grows to hold
// the shadow; the returned point is where the sprite's top-left corner ended
// up.
func Sticker(g *grid.Grid, opts Options, shadow ShadowOptions) (*image.RGBA, image.Point) {
	th := *opts.theme()
	th.Paper = color.RGBA{}
	ink := Render(g, Options{Zoom: opts.Zoom, Theme: &th})
	if shadow.Opacity <= 0 || g.Count() == 0 {
		return ink, image.Point{}
	}
	radius := max(shadow.Radius, 0)

	src := ink.Bounds()
	blurArea := src.Inset(-radius)
	shadowArea := blurArea.Add(shadow.Offset)
	canvas := src.Union(shadowArea)
	shift := src.Min.Sub(canvas.Min)

	mask := image.NewAlpha(blurArea.Sub(blurArea.Min))
	for y := src.Min.Y; y < src.Max.Y; y++ {
		for x := src.Min.X; x < src.Max.X; x++ {
			if a := ink.RGBAAt(x, y).A; a != 0 {
				mask.SetAlpha(x-blurArea.Min.X, y-blurArea.Min.Y, color.Alpha{A: a})
			}
		}
	}
	boxBlur(mask, radius)

	dst := image.NewRGBA(canvas.Sub(canvas.Min))
	tint := color.NRGBA{R: th.Ink.R, G: th.Ink.G, B: th.Ink.B, A: uint8(min(shadow.Opacity, 1)*255 + 0.5)}
	draw.DrawMask(dst, mask.Bounds().Add(shadowArea.Min.Sub(canvas.Min)), image.NewUniform(tint), image.Point{}, mask, image.Point{}, draw.Over)
	draw.Draw(dst, src.Add(shift), ink, src.Min, draw.Over)
	return dst, shift
}

// boxBlur replaces every mask value with the mean of the (2*radius+1) square
// around it, clipped to the mask.
func boxBlur(m *image.Alpha, radius int) {
	if radius <= 0 {
		return
	}
	w, h := m.Bounds().Dx(), m.Bounds().Dy()
	n := max(w, h)
	line := make([]uint8, n)
	sums := make([]int, n+1)
	for y := 0; y < h; y++ {
		row := m.Pix[y*m.Stride : y*m.Stride+w]
		blurLine(row, line[:w], sums, radius)
		copy(row, line[:w])
	}
	col := make([]uint8, h)
	for x := 0; x < w; x++ {
		for y := range col {
			col[y] = m.Pix[y*m.Stride+x]
		}
		blurLine(col, line[:h], sums, radius)
		for y := range col {
			m.Pix[y*m.Stride+x] = line[y]
		}
	}
}

// blurLine writes the windowed mean of src into dst using prefix sums.
func blurLine(src, dst []uint8, sums []int, radius int) {
	n := len(src)
	for i, v := range src {
		sums[i+1] = sums[i] + int(v)
	}
	for i := 0; i < n; i++ {
		lo, hi := max(i-radius, 0), min(i+radius, n-1)
		dst[i] = uint8((sums[hi+1] - sums[lo]) / (hi - lo + 1))
	}
}
