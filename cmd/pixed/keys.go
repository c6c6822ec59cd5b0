package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/example/pixed/internal/appstate"
)

// keysCmd prints the editing window's keyboard shortcuts.
type keysCmd struct {
	*root
	fs *flag.FlagSet
}

func parseKeysCmd(args []string, r *root) (*keysCmd, error) {
	fs := flag.NewFlagSet("keys", flag.ExitOnError)
	cmd := &keysCmd{root: r, fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *keysCmd) Run() error {
	out := c.out()
	for _, b := range appstate.New().Handler(nil).Bindings() {
		names := make([]string, len(b.Keys))
		for i, k := range b.Keys {
			names[i] = k.String()
		}
		fmt.Fprintf(out, "%-24s %s\n", b.Action, strings.Join(names, ", "))
	}
	fmt.Fprintln(out, "left/right drag paints with the active tool; Ctrl+wheel zooms")
	return nil
}

func (c *keysCmd) FlagSet() *flag.FlagSet {
	return c.fs
}
