package script

import (
	"errors"
	"strings"
	"testing"

	"github.com/example/pixed/internal/editor"
	"github.com/example/pixed/internal/grid"
)

func run(t *testing.T, src string) *editor.Editor {
	t.Helper()
	ed := editor.New()
	if err := Run(strings.NewReader(src), ed); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return ed
}

func TestRectangleScenario(t *testing.T) {
	ed := run(t, `
size 8 8
tool rectangle
down 1 1
move 6 6   # preview only
move 4 4
up 4 4
`)
	want := grid.MustParse(`
........
.####...
.#..#...
.#..#...
.####...
........
........
........
`)
	if !ed.Grid().Equal(want) {
		t.Fatalf("unexpected grid\n%s", ed.Grid())
	}
}

func TestStrokeUndoRedo(t *testing.T) {
	ed := run(t, `
size 5 3
brush 3 round
down 2 1
up 2 1
undo
redo
brush 1
color white
click 2 1
`)
	want := grid.MustParse(`
..#..
.#.#.
..#..
`)
	if !ed.Grid().Equal(want) {
		t.Fatalf("unexpected grid\n%s", ed.Grid())
	}
}

func TestLeaveEnterCancel(t *testing.T) {
	ed := run(t, `
size 6 6
tool filled_rectangle
down 0 0
move 2 2
leave
enter 3 3
up 3 3
tool line
down 0 5
move 5 5
cancel
up 5 5
`)
	if n := ed.Grid().Count(); n != 16 {
		t.Fatalf("expected a 4x4 block, got %d pixels\n%s", n, ed.Grid())
	}
}

func TestSettings(t *testing.T) {
	ed := run(t, `
zoom 3
zoom in
grid off
eraser 4
tool zoom
click 0 0 right
`)
	if ed.Zoom() != 3 {
		t.Fatalf("zoom %v", ed.Zoom())
	}
	if ed.ShowGrid() {
		t.Fatal("grid should be off")
	}
	if ed.EraserBrush().Size != 4 {
		t.Fatalf("eraser size %d", ed.EraserBrush().Size)
	}
}

func TestErrors(t *testing.T) {
	cases := []struct {
		src  string
		want string
		is   error
	}{
		{"tool pencil\nspray 1 1\n", "line 2", ErrUnknownCommand},
		{"down 1\n", "line 1", ErrArgs},
		{"\n\nsize 0 4\n", "line 3", nil},
		{"size 4097 8\n", "exceeds 4096", nil},
		{"size 8 100000\n", "exceeds 4096", nil},
		{"tool brush\n", "unknown tool", nil},
		{"down 1 1 middle\n", "unknown button", nil},
		{"grid maybe\n", "expected on or off", nil},
		{"undo now\n", "line 1", ErrArgs},
	}
	for _, tc := range cases {
		err := Run(strings.NewReader(tc.src), editor.New())
		if err == nil {
			t.Errorf("%q: expected error", tc.src)
			continue
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Errorf("%q: error %q does not mention %q", tc.src, err, tc.want)
		}
		if tc.is != nil && !errors.Is(err, tc.is) {
			t.Errorf("%q: error %v is not %v", tc.src, err, tc.is)
		}
	}
}

func TestSizeAtLimit(t *testing.T) {
	ed := run(t, "size 4096 1\n")
	if g := ed.Grid(); g.Width() != grid.MaxSide || g.Height() != 1 {
		t.Fatalf("size %dx%d", g.Width(), g.Height())
	}
}
