package main

import (
	"flag"
	"fmt"

	"github.com/example/pixed/internal/theme"
)

// themesCmd lists the available themes, or the colours of one theme.
type themesCmd struct {
	*root
	fs *flag.FlagSet
}

func parseThemesCmd(args []string, r *root) (*themesCmd, error) {
	fs := flag.NewFlagSet("themes", flag.ExitOnError)
	cmd := &themesCmd{root: r, fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 1 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *themesCmd) Run() error {
	loader := theme.NewLoader()
	loader.Inline = c.cfg().Themes
	out := c.out()
	if c.fs.NArg() == 0 {
		fmt.Fprintln(out, "available themes (* marks the active theme):")
		names := append([]string{"default"}, loader.Names()...)
		active := c.theme().Name
		for _, name := range names {
			marker := " "
			t, err := loader.Load(name)
			if err == nil && t.Name == active {
				marker = "*"
			}
			fmt.Fprintf(out, "%s %s\n", marker, name)
		}
		return nil
	}
	t, err := loader.Load(c.fs.Arg(0))
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "theme %s:\n", t.Name)
	for _, f := range t.Colors() {
		block := fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m", f.Color.R, f.Color.G, f.Color.B)
		fmt.Fprintf(out, "  %-18s %s %s\n", f.Key, theme.FormatColor(f.Color), block)
	}
	return nil
}

func (c *themesCmd) FlagSet() *flag.FlagSet {
	return c.fs
}
