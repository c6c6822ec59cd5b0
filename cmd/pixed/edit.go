package main

import (
	"flag"
	"path/filepath"
	"strings"

	"github.com/example/pixed/internal/appstate"
	"github.com/example/pixed/internal/editor"
	"github.com/example/pixed/internal/geom"
)

// editCmd opens a sprite in an editing window.
type editCmd struct {
	file        string
	output      string
	width       int
	height      int
	zoom        float64
	brush       int
	brushShape  string
	eraser      int
	roundEraser bool
	color       string
	tool        string
	grid        bool
	history     int
	*root
	fs *flag.FlagSet

	opts []editor.Option
}

func (e *editCmd) FlagSet() *flag.FlagSet {
	return e.fs
}

func parseEditCmd(args []string, r *root) (*editCmd, error) {
	cfg := r.cfg()
	fs := flag.NewFlagSet("edit", flag.ExitOnError)
	e := &editCmd{root: r, fs: fs}
	fs.Usage = usageFunc(e)
	fs.StringVar(&e.file, "file", "", "sprite to open (PNG or '#'/'.' text)")
	fs.StringVar(&e.output, "output", "", "PNG path written by Ctrl+S (defaults to -file or save_dir/sprite.png)")
	fs.IntVar(&e.width, "width", cfg.Width, "grid width for a new sprite")
	fs.IntVar(&e.height, "height", cfg.Height, "grid height for a new sprite")
	fs.Float64Var(&e.zoom, "zoom", cfg.Zoom, "device pixels per cell")
	fs.IntVar(&e.brush, "brush", cfg.BrushSize, "pencil brush size")
	fs.StringVar(&e.brushShape, "brush-shape", cfg.BrushShape.String(), "pencil brush shape: square or round")
	fs.IntVar(&e.eraser, "eraser", cfg.EraserSize, "eraser size")
	fs.BoolVar(&e.roundEraser, "round-eraser", cfg.RoundEraser, "allow a round eraser")
	fs.StringVar(&e.color, "color", cfg.PencilColor.String(), "pencil color: black or white")
	fs.StringVar(&e.tool, "tool", editor.ToolPencil.String(), "initial tool")
	fs.BoolVar(&e.grid, "grid", cfg.ShowGrid, "show grid lines when zoomed in")
	fs.IntVar(&e.history, "history", cfg.History, "number of undo snapshots kept")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() == 1 && e.file == "" {
		e.file = fs.Arg(0)
	} else if fs.NArg() != 0 {
		return nil, &UsageError{of: e}
	}
	if err := checkSize(e.width, e.height); err != nil {
		return nil, err
	}
	opts, err := e.editorOptions()
	if err != nil {
		return nil, err
	}
	e.opts = opts
	if e.output == "" {
		e.output = e.defaultOutput()
	}
	return e, nil
}

func (e *editCmd) editorOptions() ([]editor.Option, error) {
	shape, err := geom.ParseShape(e.brushShape)
	if err != nil {
		return nil, err
	}
	c, err := editor.ParsePencilColor(e.color)
	if err != nil {
		return nil, err
	}
	t, err := editor.ParseTool(e.tool)
	if err != nil {
		return nil, err
	}
	opts := []editor.Option{
		editor.WithSize(e.width, e.height),
		editor.WithZoom(e.zoom),
		editor.WithShowGrid(e.grid),
		editor.WithPencilBrush(geom.Brush{Size: e.brush, Shape: shape}),
		editor.WithEraserSize(e.eraser),
		editor.WithPencilColor(c),
		editor.WithTool(t),
		editor.WithHistoryCapacity(e.history),
	}
	if e.roundEraser {
		opts = append(opts, editor.WithRoundEraser())
	}
	if e.file != "" {
		g, err := loadSprite(e.file)
		if err != nil {
			return nil, err
		}
		opts = append(opts, editor.WithGrid(g))
	}
	return opts, nil
}

func (e *editCmd) defaultOutput() string {
	if strings.EqualFold(filepath.Ext(e.file), ".png") {
		return e.file
	}
	name := "sprite.png"
	if e.file != "" {
		name = strings.TrimSuffix(filepath.Base(e.file), filepath.Ext(e.file)) + ".png"
	}
	if dir := e.cfg().SaveDir; dir != "" {
		return filepath.Join(dir, name)
	}
	return name
}

func (e *editCmd) Run() error {
	title := "pixed"
	if e.file != "" {
		title = "pixed - " + filepath.Base(e.file)
	}
	st := appstate.New(
		appstate.WithEditor(editor.New(e.opts...)),
		appstate.WithTheme(e.theme()),
		appstate.WithOutput(e.output),
		appstate.WithNotifier(e.notifier),
		appstate.WithTitle(title),
	)
	st.Run()
	return nil
}
