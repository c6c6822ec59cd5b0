package main

import (
	"flag"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/example/pixed/internal/clipboard"
	"github.com/example/pixed/internal/editor"
	"github.com/example/pixed/internal/render"
	"github.com/example/pixed/internal/script"
)

// replayCmd runs an editing script headlessly and writes the result.
type replayCmd struct {
	scriptPath  string
	file        string
	output      string
	width       int
	height      int
	zoom        float64
	grid        bool
	text        bool
	shadow      bool
	toClipboard bool
	*root
	fs *flag.FlagSet

	stdin io.Reader
}

func (c *replayCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseReplayCmd(args []string, r *root) (*replayCmd, error) {
	cfg := r.cfg()
	fs := flag.NewFlagSet("replay", flag.ExitOnError)
	c := &replayCmd{root: r, fs: fs, stdin: os.Stdin}
	fs.Usage = usageFunc(c)
	fs.StringVar(&c.file, "file", "", "starting sprite (PNG or '#'/'.' text)")
	fs.StringVar(&c.output, "output", "replay.png", "PNG output path, or - for stdout")
	fs.IntVar(&c.width, "width", cfg.Width, "grid width when no -file is given")
	fs.IntVar(&c.height, "height", cfg.Height, "grid height when no -file is given")
	fs.Float64Var(&c.zoom, "zoom", 1, "device pixels per cell in the output")
	fs.BoolVar(&c.grid, "grid", false, "draw grid lines when zoom is at least 4")
	fs.BoolVar(&c.shadow, "shadow", false, "export ink only on a transparent background with a drop shadow")
	fs.BoolVar(&c.text, "text", false, "print '#'/'.' rows to stdout instead of a PNG")
	fs.BoolVar(&c.toClipboard, "to-clipboard", false, "copy the result to the clipboard")
	fs.BoolVar(&c.toClipboard, "to-clip", false, "copy the result to the clipboard (alias)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		return nil, &UsageError{of: c}
	}
	c.scriptPath = fs.Arg(0)
	if c.text && c.toClipboard {
		return nil, fmt.Errorf("-text cannot be used with -to-clipboard")
	}
	if c.text && c.shadow {
		return nil, fmt.Errorf("-text cannot be used with -shadow")
	}
	if c.zoom <= 0 {
		return nil, fmt.Errorf("zoom must be positive, got %g", c.zoom)
	}
	if err := checkSize(c.width, c.height); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *replayCmd) Run() error {
	ed, err := c.editor()
	if err != nil {
		return err
	}
	if err := c.replay(ed); err != nil {
		return fmt.Errorf("replay %s: %w", c.scriptPath, err)
	}
	g := ed.Grid()
	if c.text {
		_, err := io.WriteString(c.out(), g.String())
		return err
	}

	var img image.Image
	switch {
	case c.shadow:
		img, _ = render.Sticker(g, render.Options{Zoom: c.zoom, Theme: c.theme()}, render.DefaultShadow(c.zoom))
	case c.zoom == 1 && !c.grid:
		img = render.Sprite(g, c.theme())
	default:
		img = render.Render(g, render.Options{Zoom: c.zoom, ShowGrid: c.grid, Theme: c.theme()})
	}

	if c.toClipboard {
		if err := clipboard.WriteImage(img); err != nil {
			return fmt.Errorf("copy PNG to clipboard: %w", err)
		}
		fmt.Fprintln(c.errOut(), "copied sprite to clipboard")
		c.notifyCopy("sprite")
		return nil
	}
	if err := writePNG(c.output, c.out(), img); err != nil {
		return err
	}
	if c.output == "-" {
		fmt.Fprintln(c.errOut(), "wrote PNG data to stdout")
		return nil
	}
	saved := absPath(c.output)
	fmt.Fprintf(c.errOut(), "saved %s\n", saved)
	c.notifyExport(saved)
	return nil
}

func (c *replayCmd) editor() (*editor.Editor, error) {
	opts := c.cfg().EditorOptions()
	if c.file == "" {
		opts = append(opts, editor.WithSize(c.width, c.height))
	} else {
		g, err := loadSprite(c.file)
		if err != nil {
			return nil, err
		}
		opts = append(opts, editor.WithGrid(g))
	}
	return editor.New(opts...), nil
}

func (c *replayCmd) replay(ed *editor.Editor) error {
	if c.scriptPath == "-" {
		return script.Run(c.stdin, ed)
	}
	f, err := os.Open(c.scriptPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return script.Run(f, ed)
}
