package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/pixed/internal/grid"
)

// checkSize validates grid dimensions taken from flags.
func checkSize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("grid size must be positive, got %dx%d", w, h)
	}
	if w > grid.MaxSide || h > grid.MaxSide {
		return fmt.Errorf("grid size %dx%d exceeds %d per side", w, h, grid.MaxSide)
	}
	return nil
}

// loadSprite reads a grid from a PNG or from '#'/'.' text rows.
func loadSprite(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if strings.EqualFold(filepath.Ext(path), ".png") {
		img, err := png.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		return gridFromImage(img), nil
	}
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	g, err := grid.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// gridFromImage marks dark opaque pixels as ink.
func gridFromImage(img image.Image) *grid.Grid {
	b := img.Bounds()
	g := grid.New(b.Dx(), b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			_, _, _, a := img.At(x, y).RGBA()
			if a >= 0x8000 && c.Y < 0x80 {
				g.Set(image.Pt(x-b.Min.X, y-b.Min.Y), true)
			}
		}
	}
	return g
}

// writePNG encodes img to path, or to w when path is "-".
func writePNG(path string, w io.Writer, img image.Image) error {
	if path == "-" {
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("write PNG to stdout: %w", err)
		}
		return nil
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output %q: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			log.Printf("close %s: %v", path, cerr)
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("write PNG to %q: %w", path, err)
	}
	return nil
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
