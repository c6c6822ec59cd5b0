package geom

import (
	"image"

	"github.com/example/pixed/internal/grid"
)

// FloodFill replaces the 4-connected region of pixels equal to the value at
// start with v. It keeps its own frontier so large grids cannot exhaust the
// goroutine stack, and visits each coordinate at most once.
func FloodFill(g *grid.Grid, start image.Point, v bool) {
	if !g.In(start) {
		return
	}
	orig := g.At(start)
	if orig == v {
		return
	}
	visited := make(map[image.Point]struct{})
	stack := []image.Point{start}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := visited[p]; ok {
			continue
		}
		visited[p] = struct{}{}
		if g.At(p) != orig {
			continue
		}
		g.Set(p, v)
		for _, n := range [...]image.Point{
			{p.X + 1, p.Y},
			{p.X - 1, p.Y},
			{p.X, p.Y + 1},
			{p.X, p.Y - 1},
		} {
			if _, ok := visited[n]; ok || !g.In(n) {
				continue
			}
			stack = append(stack, n)
		}
	}
}
