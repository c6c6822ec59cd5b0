// Package script replays line-based editing scripts against an editor.
//
// Each non-blank line holds one command; '#' starts a comment. Coordinates
// are grid cells.
//
//	size W H            replace the grid with a blank W x H grid
//	tool NAME           select a tool (pencil, eraser, fill, line, ...)
//	brush SIZE [SHAPE]  set the pencil brush (square or round)
//	eraser SIZE         set the eraser size
//	color black|white   set the pencil colour
//	down X Y [right]    press at X,Y
//	move X Y            move to X,Y
//	up X Y              release at X,Y
//	click X Y [right]   press and release at X,Y
//	leave               pointer leaves the canvas
//	enter X Y           pointer re-enters at X,Y
//	cancel              abandon the current shape
//	undo | redo | clear
//	zoom in|out|reset|N
//	grid on|off
package script

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"
	"strconv"
	"strings"

	"github.com/example/pixed/internal/editor"
	"github.com/example/pixed/internal/geom"
	"github.com/example/pixed/internal/grid"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrArgs           = errors.New("wrong number of arguments")
)

// Run executes every command read from r against ed. It stops at the first
// failing line and reports it with its line number.
func Run(r io.Reader, ed *editor.Editor) error {
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if err := Exec(ed, fields[0], fields[1:]...); err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
	}
	return scanner.Err()
}

// Exec runs a single command.
func Exec(ed *editor.Editor, cmd string, args ...string) error {
	switch strings.ToLower(cmd) {
	case "size":
		w, h, err := pair(args)
		if err != nil {
			return fmt.Errorf("size: %w", err)
		}
		if w <= 0 || h <= 0 {
			return fmt.Errorf("size: dimensions must be positive, got %dx%d", w, h)
		}
		if w > grid.MaxSide || h > grid.MaxSide {
			return fmt.Errorf("size: %dx%d exceeds %d per side", w, h, grid.MaxSide)
		}
		ed.Resize(w, h)
	case "tool":
		if len(args) != 1 {
			return fmt.Errorf("tool: %w", ErrArgs)
		}
		t, err := editor.ParseTool(args[0])
		if err != nil {
			return err
		}
		ed.SetTool(t)
	case "brush":
		if len(args) < 1 || len(args) > 2 {
			return fmt.Errorf("brush: %w", ErrArgs)
		}
		size, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("brush: %w", err)
		}
		shape := ed.PencilBrush().Shape
		if len(args) == 2 {
			if shape, err = geom.ParseShape(args[1]); err != nil {
				return err
			}
		}
		ed.SetPencilBrush(geom.Brush{Size: size, Shape: shape})
	case "eraser":
		if len(args) != 1 {
			return fmt.Errorf("eraser: %w", ErrArgs)
		}
		size, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("eraser: %w", err)
		}
		ed.SetEraserSize(size)
	case "color", "colour":
		if len(args) != 1 {
			return fmt.Errorf("color: %w", ErrArgs)
		}
		c, err := editor.ParsePencilColor(args[0])
		if err != nil {
			return err
		}
		ed.SetPencilColor(c)
	case "down", "click":
		if len(args) != 2 && len(args) != 3 {
			return fmt.Errorf("%s: %w", cmd, ErrArgs)
		}
		p, err := point(args[:2])
		if err != nil {
			return fmt.Errorf("%s: %w", cmd, err)
		}
		b := editor.ButtonLeft
		if len(args) == 3 {
			switch strings.ToLower(args[2]) {
			case "left":
			case "right":
				b = editor.ButtonRight
			default:
				return fmt.Errorf("%s: unknown button %q", cmd, args[2])
			}
		}
		ed.PointerDown(p, b)
		if strings.EqualFold(cmd, "click") {
			ed.PointerUp(p)
		}
	case "move", "up", "enter":
		p, err := point(args)
		if err != nil {
			return fmt.Errorf("%s: %w", cmd, err)
		}
		switch strings.ToLower(cmd) {
		case "move":
			ed.PointerMove(p)
		case "up":
			ed.PointerUp(p)
		default:
			ed.PointerEnter(p)
		}
	case "leave", "cancel", "undo", "redo", "clear":
		if len(args) != 0 {
			return fmt.Errorf("%s: %w", cmd, ErrArgs)
		}
		switch strings.ToLower(cmd) {
		case "leave":
			ed.PointerLeave()
		case "cancel":
			ed.Cancel()
		case "undo":
			ed.Undo()
		case "redo":
			ed.Redo()
		default:
			ed.Clear()
		}
	case "zoom":
		if len(args) != 1 {
			return fmt.Errorf("zoom: %w", ErrArgs)
		}
		switch strings.ToLower(args[0]) {
		case "in":
			ed.ZoomIn()
		case "out":
			ed.ZoomOut()
		case "reset":
			ed.ZoomReset()
		default:
			z, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("zoom: %w", err)
			}
			ed.SetZoom(z)
		}
	case "grid":
		if len(args) != 1 {
			return fmt.Errorf("grid: %w", ErrArgs)
		}
		on, err := parseSwitch(args[0])
		if err != nil {
			return fmt.Errorf("grid: %w", err)
		}
		if on != ed.ShowGrid() {
			ed.ToggleGrid()
		}
	default:
		return fmt.Errorf("%w %q", ErrUnknownCommand, cmd)
	}
	return nil
}

func pair(args []string) (int, int, error) {
	if len(args) != 2 {
		return 0, 0, ErrArgs
	}
	a, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, err
	}
	b, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func point(args []string) (image.Point, error) {
	x, y, err := pair(args)
	return image.Pt(x, y), err
}

func parseSwitch(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "true", "1", "yes":
		return true, nil
	case "off", "false", "0", "no":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", s)
}
