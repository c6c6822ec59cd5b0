package main

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/pixed/internal/config"
	"github.com/example/pixed/internal/grid"
	"github.com/example/pixed/internal/notify"
	"github.com/example/pixed/internal/platform"
	"github.com/example/pixed/internal/render"
	"github.com/example/pixed/internal/script"
	"github.com/example/pixed/internal/theme"
)

type testRoot struct {
	*root
	stdout bytes.Buffer
	stderr bytes.Buffer
	sent   []string
}

func newTestRoot(t *testing.T) *testRoot {
	t.Helper()
	tr := &testRoot{}
	n := notify.New(notify.DefaultPreferences(), notify.WithSender(func(_, body string, _ platform.Options) error {
		tr.sent = append(tr.sent, body)
		return nil
	}))
	for _, ev := range notify.Events() {
		n.Enable(ev, true)
	}
	tr.root = &root{
		program:     "pixed",
		notifier:    n,
		config:      config.New(),
		activeTheme: theme.Default(),
		stdout:      &tr.stdout,
		stderr:      &tr.stderr,
	}
	return tr
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const lineScript = `size 4 3
tool line
down 0 0
move 2 0
up 3 0
`

func TestReplayWritesPNGAndNotifies(t *testing.T) {
	tr := newTestRoot(t)
	src := writeFile(t, "line.txt", lineScript)
	out := filepath.Join(t.TempDir(), "out.png")
	cmd, err := parseReplayCmd([]string{"-output", out, "-zoom", "2", src}, tr.root)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds() != image.Rect(0, 0, 8, 6) {
		t.Fatalf("bounds %v", img.Bounds())
	}
	if len(tr.sent) != 1 || !strings.HasPrefix(tr.sent[0], "Exported ") {
		t.Fatalf("notifications %v", tr.sent)
	}
}

func TestReplayShadow(t *testing.T) {
	tr := newTestRoot(t)
	src := writeFile(t, "line.txt", lineScript)
	out := filepath.Join(t.TempDir(), "sticker.png")
	cmd, err := parseReplayCmd([]string{"-shadow", "-zoom", "6", "-output", out, src}, tr.root)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	// 24x18 sprite, radius 3 on every side, shifted by 2.
	if img.Bounds() != image.Rect(0, 0, 32, 26) {
		t.Fatalf("bounds %v", img.Bounds())
	}
	if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
		t.Fatal("corner should be transparent")
	}
}

func TestReplayText(t *testing.T) {
	tr := newTestRoot(t)
	src := writeFile(t, "line.txt", lineScript)
	cmd, err := parseReplayCmd([]string{"-text", src}, tr.root)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got, want := tr.stdout.String(), "####\n....\n....\n"; got != want {
		t.Fatalf("text output %q, want %q", got, want)
	}
}

func TestReplayFromStdinWithBaseFile(t *testing.T) {
	tr := newTestRoot(t)
	base := writeFile(t, "base.txt", "#..\n...\n")
	cmd, err := parseReplayCmd([]string{"-text", "-file", base, "-"}, tr.root)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	cmd.stdin = strings.NewReader("click 2 1\n")
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := tr.stdout.String(); got != "#..\n..#\n" {
		t.Fatalf("text output %q", got)
	}
}

func TestParseReplaySizeErrors(t *testing.T) {
	cases := map[string][]string{
		"must be positive": {"-width", "0", "-text", "x.txt"},
		"exceeds 4096":     {"-height", "5000", "-text", "x.txt"},
	}
	for want, args := range cases {
		_, err := parseReplayCmd(args, newTestRoot(t).root)
		if err == nil {
			t.Fatalf("%v: expected error", args)
		}
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("%v: expected error to mention %q, got %v", args, want, err)
		}
	}
}

func TestReplayBaseFileKeepsItsSize(t *testing.T) {
	tr := newTestRoot(t)
	base := writeFile(t, "base.txt", "#..\n...\n")
	cmd, err := parseReplayCmd([]string{"-text", "-width", "9", "-height", "9", "-file", base, "-"}, tr.root)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	cmd.stdin = strings.NewReader("")
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := tr.stdout.String(); got != "#..\n...\n" {
		t.Fatalf("text output %q", got)
	}
}

func TestReplayScriptError(t *testing.T) {
	tr := newTestRoot(t)
	src := writeFile(t, "bad.txt", "size 2 2\nsparkle 1 1\n")
	cmd, err := parseReplayCmd([]string{"-text", src}, tr.root)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := cmd.Run(); err == nil {
		t.Fatalf("expected error")
	} else {
		if !errors.Is(err, script.ErrUnknownCommand) {
			t.Fatalf("expected wrapped error, got %v", err)
		}
		if want := "line 2"; !strings.Contains(err.Error(), want) {
			t.Fatalf("expected error to contain %q, got %v", want, err)
		}
	}
}

func TestParseReplayTextRejectsClipboard(t *testing.T) {
	_, err := parseReplayCmd([]string{"-text", "-to-clipboard", "x.txt"}, newTestRoot(t).root)
	if err == nil {
		t.Fatalf("expected error")
	}
	if want := "-text cannot be used with -to-clipboard"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to mention %q, got %v", want, err)
	}
}

func TestParseReplayRequiresScript(t *testing.T) {
	_, err := parseReplayCmd(nil, newTestRoot(t).root)
	var uerr *UsageError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected usage error, got %v", err)
	}
	if !strings.Contains(uerr.Error(), "pixed replay") {
		t.Fatalf("help text %q", uerr.Error())
	}
}

func TestParseEditDefaults(t *testing.T) {
	tr := newTestRoot(t)
	tr.config.SaveDir = "/tmp/sprites"
	src := writeFile(t, "face.txt", "#.#\n...\n")
	cmd, err := parseEditCmd([]string{"-color", "white", src}, tr.root)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cmd.file != src {
		t.Fatalf("positional file not used: %q", cmd.file)
	}
	if want := filepath.Join("/tmp/sprites", "face.png"); cmd.output != want {
		t.Fatalf("output %q, want %q", cmd.output, want)
	}

	pngPath := writeFile(t, "icon.png", "")
	if err := writePNG(pngPath, nil, render.Sprite(grid.New(2, 2), theme.Default())); err != nil {
		t.Fatal(err)
	}
	cmd, err = parseEditCmd([]string{"-file", pngPath}, tr.root)
	if err != nil {
		t.Fatalf("parse png: %v", err)
	}
	if cmd.output != pngPath {
		t.Fatalf("png should be saved in place, got %q", cmd.output)
	}
}

func TestParseEditErrors(t *testing.T) {
	cases := map[string][]string{
		"unknown pencil color": {"-color", "grey"},
		"unknown tool":         {"-tool", "spray"},
		"must be positive":     {"-width", "0"},
		"no such file":         {"-file", "/nonexistent/sprite.txt"},
	}
	for want, args := range cases {
		_, err := parseEditCmd(args, newTestRoot(t).root)
		if err == nil || !strings.Contains(err.Error(), want) {
			t.Errorf("parseEditCmd(%v) error %v, want it to mention %q", args, err, want)
		}
	}
}

func TestLoadSpritePNG(t *testing.T) {
	g := grid.MustParse("#.\n.#\n")
	path := filepath.Join(t.TempDir(), "s.png")
	if err := writePNG(path, nil, render.Sprite(g, theme.Default())); err != nil {
		t.Fatal(err)
	}
	got, err := loadSprite(path)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(g) {
		t.Fatalf("round trip:\n%s", got)
	}
}

func TestShellSession(t *testing.T) {
	tr := newTestRoot(t)
	tr.config.Width, tr.config.Height = 3, 2
	cmd, err := parseShellCmd([]string{"-quiet"}, tr.root)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	out := filepath.Join(t.TempDir(), "shell.png")
	cmd.stdin = strings.NewReader("click 1 1\nsparkle\nshow\nsave " + out + "\nexit\nclick 0 0\n")
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(tr.stdout.String(), "...\n.#.\n") {
		t.Fatalf("grid not shown:\n%s", tr.stdout.String())
	}
	if !strings.Contains(tr.stderr.String(), "unknown command") {
		t.Fatalf("expected error report, got %q", tr.stderr.String())
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("save: %v", err)
	}
	if len(tr.sent) != 1 || !strings.HasPrefix(tr.sent[0], "Saved ") {
		t.Fatalf("notifications %v", tr.sent)
	}
}

func TestKeysListsSessionActions(t *testing.T) {
	tr := newTestRoot(t)
	cmd, err := parseKeysCmd(nil, tr.root)
	if err != nil {
		t.Fatal(err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"tool-pencil", "Ctrl+Shift+Z", "Ctrl+S", "Ctrl+Q"} {
		if !strings.Contains(tr.stdout.String(), want) {
			t.Errorf("keys output missing %q", want)
		}
	}
}

func TestThemes(t *testing.T) {
	tr := newTestRoot(t)
	tr.config.Themes["mine"] = &theme.Theme{Name: "mine"}
	cmd, err := parseThemesCmd(nil, tr.root)
	if err != nil {
		t.Fatal(err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"* default", "dark", "mine"} {
		if !strings.Contains(tr.stdout.String(), want) {
			t.Errorf("themes output missing %q:\n%s", want, tr.stdout.String())
		}
	}

	tr.stdout.Reset()
	cmd, err = parseThemesCmd([]string{"default"}, tr.root)
	if err != nil {
		t.Fatal(err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(tr.stdout.String(), "Ink") {
		t.Fatalf("colors not listed:\n%s", tr.stdout.String())
	}
}

func TestConfigSave(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	tr := newTestRoot(t)
	tr.config.Width = 40
	cmd, err := parseConfigCmd([]string{"save"}, tr.root)
	if err != nil {
		t.Fatal(err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("save: %v", err)
	}
	cfg, err := config.NewLoader("v1", "").Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 40 {
		t.Fatalf("saved width %d", cfg.Width)
	}

	cmd, err = parseConfigCmd([]string{"frobnicate"}, tr.root)
	if err != nil {
		t.Fatal(err)
	}
	if err := cmd.Run(); err == nil || !strings.Contains(err.Error(), "unknown config command") {
		t.Fatalf("expected unknown command error, got %v", err)
	}
}

func TestRootUnknownCommand(t *testing.T) {
	r := newRoot()
	var uerr *UsageError
	if err := r.Run([]string{"paint"}); !errors.As(err, &uerr) {
		t.Fatalf("expected usage error, got %v", err)
	}
}
