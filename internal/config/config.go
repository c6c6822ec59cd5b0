// Package config reads and writes the pixed rc file.
package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/example/pixed/internal/editor"
	"github.com/example/pixed/internal/geom"
	"github.com/example/pixed/internal/history"
	"github.com/example/pixed/internal/theme"
	"github.com/example/pixed/internal/viewport"
)

// Notify holds notification settings.
type Notify struct {
	Save   bool
	Copy   bool
	Export bool
}

// Config holds the application configuration.
type Config struct {
	Width       int
	Height      int
	Zoom        float64
	ShowGrid    bool
	BrushSize   int
	BrushShape  geom.Shape
	EraserSize  int
	RoundEraser bool
	PencilColor editor.PencilColor
	History     int

	Theme   string
	SaveDir string
	Notify  Notify
	Themes  map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Width:       editor.DefaultWidth,
		Height:      editor.DefaultHeight,
		Zoom:        viewport.DefaultZoom,
		ShowGrid:    true,
		BrushSize:   1,
		BrushShape:  geom.Square,
		EraserSize:  1,
		PencilColor: editor.Black,
		History:     history.DefaultCapacity,
		Theme:       "", // Empty allows fallback to env/default
		Themes:      make(map[string]*theme.Theme),
	}
}

// EditorOptions converts the drawing settings into editor options.
func (c *Config) EditorOptions() []editor.Option {
	opts := []editor.Option{
		editor.WithSize(c.Width, c.Height),
		editor.WithZoom(c.Zoom),
		editor.WithShowGrid(c.ShowGrid),
		editor.WithPencilBrush(geom.Brush{Size: c.BrushSize, Shape: c.BrushShape}),
		editor.WithEraserSize(c.EraserSize),
		editor.WithPencilColor(c.PencilColor),
		editor.WithHistoryCapacity(c.History),
	}
	if c.RoundEraser {
		opts = append(opts, editor.WithRoundEraser())
	}
	return opts
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "width = %d\n", c.Width)
	fmt.Fprintf(&sb, "height = %d\n", c.Height)
	fmt.Fprintf(&sb, "zoom = %s\n", strconv.FormatFloat(c.Zoom, 'f', -1, 64))
	fmt.Fprintf(&sb, "show_grid = %v\n", c.ShowGrid)
	fmt.Fprintf(&sb, "brush_size = %d\n", c.BrushSize)
	fmt.Fprintf(&sb, "brush_shape = %s\n", c.BrushShape)
	fmt.Fprintf(&sb, "eraser_size = %d\n", c.EraserSize)
	fmt.Fprintf(&sb, "round_eraser = %v\n", c.RoundEraser)
	fmt.Fprintf(&sb, "pencil_color = %s\n", c.PencilColor)
	fmt.Fprintf(&sb, "history = %d\n", c.History)
	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	if c.SaveDir != "" {
		fmt.Fprintf(&sb, "save_dir = %s\n", c.SaveDir)
	}
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	fmt.Fprintf(&sb, "export = %v\n", c.Notify.Export)

	// Sort keys for deterministic output
	names := make([]string, 0, len(c.Themes))
	for name := range c.Themes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "\n[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name = %s\n", t.Name)
		for _, f := range t.Colors() {
			fmt.Fprintf(&sb, "%s = %s\n", f.Key, theme.FormatColor(f.Color))
		}
	}

	return sb.String()
}
