// Package geom rasterises lines, boxes, circles and brush stamps onto a
// boolean grid. All functions clip silently at the grid boundary.
package geom

import (
	"image"
	"math"

	"github.com/example/pixed/internal/grid"
)

// Set writes v at p, ignoring points outside g.
func Set(g *grid.Grid, p image.Point, v bool) {
	g.Set(p, v)
}

// Line draws the 8-connected Bresenham path from a to b, both ends included.
// The path is always walked from the lexicographically smaller endpoint so
// that Line(a, b) and Line(b, a) cover the same pixels.
func Line(g *grid.Grid, a, b image.Point, v bool) {
	if b.X < a.X || (b.X == a.X && b.Y < a.Y) {
		a, b = b, a
	}
	dx := abs(b.X - a.X)
	dy := abs(b.Y - a.Y)
	sx := -1
	if a.X < b.X {
		sx = 1
	}
	sy := -1
	if a.Y < b.Y {
		sy = 1
	}
	err := dx - dy
	x, y := a.X, a.Y
	for {
		g.Set(image.Pt(x, y), v)
		if x == b.X && y == b.Y {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// Box returns the inclusive bounding box of a and b as min and max corners.
func Box(a, b image.Point) (image.Point, image.Point) {
	return image.Pt(min(a.X, b.X), min(a.Y, b.Y)), image.Pt(max(a.X, b.X), max(a.Y, b.Y))
}

// Rect draws the box spanned by a and b. Outline mode paints only the border
// rows and columns.
func Rect(g *grid.Grid, a, b image.Point, v, filled bool) {
	lo, hi := Box(a, b)
	if filled {
		r := image.Rect(lo.X, lo.Y, hi.X+1, hi.Y+1).Intersect(g.Bounds())
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				g.Set(image.Pt(x, y), v)
			}
		}
		return
	}
	// Borders off the grid are dropped by Set; only the on-grid span is walked.
	for x := max(lo.X, 0); x <= min(hi.X, g.Width()-1); x++ {
		g.Set(image.Pt(x, lo.Y), v)
		g.Set(image.Pt(x, hi.Y), v)
	}
	for y := max(lo.Y, 0); y <= min(hi.Y, g.Height()-1); y++ {
		g.Set(image.Pt(lo.X, y), v)
		g.Set(image.Pt(hi.X, y), v)
	}
}

// Radius returns the Euclidean distance between a and b rounded to the
// nearest integer, halves away from zero.
func Radius(a, b image.Point) int {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	return int(math.Round(math.Hypot(dx, dy)))
}

// Circle draws a circle of radius r around c. Filled mode paints the disk of
// cells within distance r; outline mode uses the midpoint algorithm and plots
// eight mirrored points per step. Negative radii draw nothing.
func Circle(g *grid.Grid, c image.Point, r int, v, filled bool) {
	if r < 0 {
		return
	}
	if filled {
		rr := float64(r)
		for y := max(-r, -c.Y); y <= min(r, g.Height()-1-c.Y); y++ {
			for x := max(-r, -c.X); x <= min(r, g.Width()-1-c.X); x++ {
				if math.Hypot(float64(x), float64(y)) <= rr {
					g.Set(image.Pt(c.X+x, c.Y+y), v)
				}
			}
		}
		return
	}
	x, y, err := r, 0, 0
	for x >= y {
		g.Set(image.Pt(c.X+x, c.Y+y), v)
		g.Set(image.Pt(c.X+y, c.Y+x), v)
		g.Set(image.Pt(c.X-y, c.Y+x), v)
		g.Set(image.Pt(c.X-x, c.Y+y), v)
		g.Set(image.Pt(c.X-x, c.Y-y), v)
		g.Set(image.Pt(c.X-y, c.Y-x), v)
		g.Set(image.Pt(c.X+y, c.Y-x), v)
		g.Set(image.Pt(c.X+x, c.Y-y), v)
		if err <= 0 {
			y++
			err += 2*y + 1
		}
		if err > 0 {
			x--
			err -= 2*x + 1
		}
	}
}

// Invert flips every pixel in the box spanned by a and b, borders included.
func Invert(g *grid.Grid, a, b image.Point) {
	lo, hi := Box(a, b)
	r := image.Rect(lo.X, lo.Y, hi.X+1, hi.Y+1).Intersect(g.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			g.Flip(image.Pt(x, y))
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
