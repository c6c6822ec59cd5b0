// Package viewport maps device coordinates onto the sprite grid and tracks
// the zoom factor.
package viewport

import (
	"image"
	"math"
)

const (
	DefaultZoom = 8
	MinZoom     = 1
	MaxZoom     = 128
	ZoomStep    = 1
)

// ToGrid converts a device position into a grid coordinate. origin is the
// device position of the grid's top-left corner and zoom the size of one grid
// cell in device pixels. Zoom values that are not positive are treated as 1.
func ToGrid(device image.Point, zoom float64, origin image.Point) image.Point {
	if zoom <= 0 || math.IsNaN(zoom) {
		zoom = 1
	}
	return image.Pt(
		int(math.Floor(float64(device.X-origin.X)/zoom)),
		int(math.Floor(float64(device.Y-origin.Y)/zoom)),
	)
}

// Viewport holds the zoom factor and where the grid sits on the device.
type Viewport struct {
	Origin image.Point
	Zoom   float64
	Min    float64
	Max    float64
	Step   float64
}

// New returns a Viewport with the editor's default limits.
func New() Viewport {
	return Viewport{Zoom: DefaultZoom, Min: MinZoom, Max: MaxZoom, Step: ZoomStep}
}

// ToGrid converts a device position using the viewport's zoom and origin.
func (v Viewport) ToGrid(device image.Point) image.Point {
	return ToGrid(device, v.Zoom, v.Origin)
}

// ToDevice returns the device position of the top-left corner of cell p.
func (v Viewport) ToDevice(p image.Point) image.Point {
	return image.Pt(
		v.Origin.X+int(math.Floor(float64(p.X)*v.Zoom)),
		v.Origin.Y+int(math.Floor(float64(p.Y)*v.Zoom)),
	)
}

// Clamp limits z to the viewport's range and rounds it to two decimals.
func (v Viewport) Clamp(z float64) float64 {
	lo, hi := v.Min, v.Max
	if lo <= 0 {
		lo = MinZoom
	}
	if hi < lo {
		hi = lo
	}
	z = math.Round(z*100) / 100
	return math.Min(hi, math.Max(lo, z))
}

// SetZoom stores z after clamping and reports whether the zoom changed.
func (v *Viewport) SetZoom(z float64) bool {
	z = v.Clamp(z)
	if z == v.Zoom {
		return false
	}
	v.Zoom = z
	return true
}

// ZoomIn increases the zoom by one step.
func (v *Viewport) ZoomIn() bool { return v.SetZoom(v.Zoom + v.step()) }

// ZoomOut decreases the zoom by one step.
func (v *Viewport) ZoomOut() bool { return v.SetZoom(v.Zoom - v.step()) }

// Reset returns the zoom to 1.
func (v *Viewport) Reset() bool { return v.SetZoom(1) }

// Fit picks the largest whole zoom at which a w x h grid fits in the device
// area, clamped to the viewport's range.
func (v *Viewport) Fit(w, h int, area image.Point) bool {
	if w <= 0 || h <= 0 || area.X <= 0 || area.Y <= 0 {
		return false
	}
	z := math.Floor(math.Min(float64(area.X)/float64(w), float64(area.Y)/float64(h)))
	return v.SetZoom(z)
}

func (v Viewport) step() float64 {
	if v.Step <= 0 {
		return ZoomStep
	}
	return v.Step
}
