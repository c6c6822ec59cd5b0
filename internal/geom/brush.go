package geom

import (
	"fmt"
	"image"
	"strings"

	"github.com/example/pixed/internal/grid"
)

// Shape is the profile of a brush.
type Shape int

const (
	Square Shape = iota
	Round
)

func (s Shape) String() string {
	switch s {
	case Square:
		return "square"
	case Round:
		return "round"
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// ParseShape converts "square" or "round" into a Shape.
func ParseShape(s string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "square":
		return Square, nil
	case "round":
		return Round, nil
	}
	return Square, fmt.Errorf("unknown brush shape %q", s)
}

// Brush describes the footprint stamped by pencil and eraser.
type Brush struct {
	Size  int
	Shape Shape
}

// Footprint returns the offsets from the centre that a stamp of b writes.
// Sizes below one behave like one. A round brush keeps the offsets whose
// distance from the centre is at most size/2 in integer division, so size 3
// covers the centre and its four orthogonal neighbours.
func Footprint(b Brush) []image.Point {
	if b.Size <= 1 {
		return []image.Point{{}}
	}
	half := b.Size / 2
	out := make([]image.Point, 0, (2*half+1)*(2*half+1))
	for dy := -half; dy <= half; dy++ {
		for dx := -half; dx <= half; dx++ {
			if b.Shape == Round && dx*dx+dy*dy > half*half {
				continue
			}
			out = append(out, image.Pt(dx, dy))
		}
	}
	return out
}

// Stamp writes the footprint of b centred at c.
func Stamp(g *grid.Grid, c image.Point, b Brush, v bool) {
	for _, off := range Footprint(b) {
		g.Set(c.Add(off), v)
	}
}
