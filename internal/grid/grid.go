// Package grid holds the boolean raster edited by a sprite session.
package grid

import (
	"errors"
	"fmt"
	"image"
	"strings"
)

var (
	// ErrEmpty is returned when a grid would have no rows or no columns.
	ErrEmpty = errors.New("grid has no pixels")
	// ErrRagged is returned when the rows of a grid differ in length.
	ErrRagged = errors.New("grid rows differ in length")
)

// MaxSide is the largest width or height accepted from scripts and flags.
const MaxSide = 4096

// Grid is a width x height raster of booleans stored row-major. true is ink.
type Grid struct {
	w, h int
	pix  []bool
}

// New returns an all-false grid. It panics if either dimension is not
// positive since every drawing routine assumes a populated rectangle.
func New(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("grid: invalid dimensions %dx%d", width, height))
	}
	return &Grid{w: width, h: height, pix: make([]bool, width*height)}
}

// FromRows copies rows into a new grid. Every row must have the same,
// non-zero length.
func FromRows(rows [][]bool) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}
	w := len(rows[0])
	g := New(w, len(rows))
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("row %d has %d entries, want %d: %w", y, len(row), w, ErrRagged)
		}
		copy(g.pix[y*w:(y+1)*w], row)
	}
	return g, nil
}

// MustFromRows is like FromRows but panics on malformed input.
func MustFromRows(rows [][]bool) *Grid {
	g, err := FromRows(rows)
	if err != nil {
		panic("grid: " + err.Error())
	}
	return g
}

// Parse reads a grid drawn as text, one row per line. '#', 'X' and '1' mark
// ink; '.', ' ', '_' and '0' mark paper. Blank leading and trailing lines are
// ignored.
func Parse(s string) (*Grid, error) {
	lines := strings.Split(strings.Trim(s, "\n"), "\n")
	rows := make([][]bool, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimRight(line, "\r")
		row := make([]bool, 0, len(line))
		for _, r := range line {
			switch r {
			case '#', 'X', 'x', '1':
				row = append(row, true)
			case '.', ' ', '_', '0':
				row = append(row, false)
			default:
				return nil, fmt.Errorf("line %d: unexpected %q", i+1, r)
			}
		}
		rows = append(rows, row)
	}
	return FromRows(rows)
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) *Grid {
	g, err := Parse(s)
	if err != nil {
		panic("grid: " + err.Error())
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Bounds returns the rectangle [0,width) x [0,height).
func (g *Grid) Bounds() image.Rectangle { return image.Rect(0, 0, g.w, g.h) }

// In reports whether p addresses a pixel of g.
func (g *Grid) In(p image.Point) bool {
	return p.X >= 0 && p.X < g.w && p.Y >= 0 && p.Y < g.h
}

// At returns the pixel at p, or false when p is outside the grid.
func (g *Grid) At(p image.Point) bool {
	if !g.In(p) {
		return false
	}
	return g.pix[p.Y*g.w+p.X]
}

// Set writes v at p. Points outside the grid are ignored.
func (g *Grid) Set(p image.Point, v bool) {
	if !g.In(p) {
		return
	}
	g.pix[p.Y*g.w+p.X] = v
}

// Flip inverts the pixel at p. Points outside the grid are ignored.
func (g *Grid) Flip(p image.Point) {
	if !g.In(p) {
		return
	}
	i := p.Y*g.w + p.X
	g.pix[i] = !g.pix[i]
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	c := &Grid{w: g.w, h: g.h, pix: make([]bool, len(g.pix))}
	copy(c.pix, g.pix)
	return c
}

// Equal reports whether o has the same size and pixels as g.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.w != o.w || g.h != o.h {
		return false
	}
	for i, v := range g.pix {
		if o.pix[i] != v {
			return false
		}
	}
	return true
}

// Count returns the number of ink pixels.
func (g *Grid) Count() int {
	n := 0
	for _, v := range g.pix {
		if v {
			n++
		}
	}
	return n
}

// Fill sets every pixel to v.
func (g *Grid) Fill(v bool) {
	for i := range g.pix {
		g.pix[i] = v
	}
}

// Rows returns a deep copy of the pixels as a slice of rows.
func (g *Grid) Rows() [][]bool {
	rows := make([][]bool, g.h)
	for y := range rows {
		rows[y] = make([]bool, g.w)
		copy(rows[y], g.pix[y*g.w:(y+1)*g.w])
	}
	return rows
}

// String renders g in the format accepted by Parse using '#' and '.'.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.w + 1) * g.h)
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			if g.pix[y*g.w+x] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
