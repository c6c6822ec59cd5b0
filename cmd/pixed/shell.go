package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/example/pixed/internal/editor"
	"github.com/example/pixed/internal/render"
	"github.com/example/pixed/internal/script"
)

// shellCmd reads script commands interactively and prints the grid after
// each change.
type shellCmd struct {
	quiet bool
	*root
	fs *flag.FlagSet

	stdin io.Reader
}

func (c *shellCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseShellCmd(args []string, r *root) (*shellCmd, error) {
	fs := flag.NewFlagSet("shell", flag.ExitOnError)
	c := &shellCmd{root: r, fs: fs, stdin: os.Stdin}
	fs.Usage = usageFunc(c)
	fs.BoolVar(&c.quiet, "quiet", false, "only print the grid when asked with 'show'")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: c}
	}
	return c, nil
}

func (c *shellCmd) Run() error {
	ed := editor.New(c.cfg().EditorOptions()...)
	out := c.out()
	fmt.Fprintln(out, "Enter commands (type 'exit' to quit)")
	scanner := bufio.NewScanner(c.stdin)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch strings.ToLower(fields[0]) {
		case "exit", "quit":
			return nil
		case "show":
			fmt.Fprint(out, ed.Display().String())
			continue
		case "save":
			if len(fields) != 2 {
				fmt.Fprintln(c.errOut(), "usage: save FILE")
				continue
			}
			if err := writePNG(fields[1], out, render.Sprite(ed.Grid(), c.theme())); err != nil {
				fmt.Fprintln(c.errOut(), err)
				continue
			}
			saved := absPath(fields[1])
			fmt.Fprintf(out, "saved %s\n", saved)
			c.notifySave(saved)
			continue
		}
		if err := script.Exec(ed, fields[0], fields[1:]...); err != nil {
			fmt.Fprintln(c.errOut(), err)
			continue
		}
		if !c.quiet {
			fmt.Fprint(out, ed.Display().String())
		}
	}
	return scanner.Err()
}
