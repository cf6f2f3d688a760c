package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/example/pixpaint/internal/appstate"
	"github.com/example/pixpaint/internal/picker"
	"github.com/example/pixpaint/internal/theme"
	"github.com/example/pixpaint/internal/tools"
)

type colorsCmd struct {
	*root
	fs *flag.FlagSet
}

func parseColorsCmd(args []string, r *root) (*colorsCmd, error) {
	fs := flag.NewFlagSet("colors", flag.ExitOnError)
	cmd := &colorsCmd{root: r, fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *colorsCmd) Run() error {
	fmt.Fprintln(os.Stdout, "picker swatches, left to right:")
	for i, s := range picker.New(c.layout()).Swatches() {
		fmt.Fprintf(os.Stdout, "%d. %-6s %s\n", i+1, s.Name, s.Color.Hex())
	}
	fmt.Fprintf(os.Stdout, "pencil draws in %s and line in %s\n", picker.Name(tools.PencilColor), picker.Name(tools.LineColor))
	return nil
}

func (c *colorsCmd) Program() string {
	return "pixpaint colors"
}

func (c *colorsCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

type toolsCmd struct {
	*root
	fs *flag.FlagSet
}

func parseToolsCmd(args []string, r *root) (*toolsCmd, error) {
	fs := flag.NewFlagSet("tools", flag.ExitOnError)
	cmd := &toolsCmd{root: r, fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *toolsCmd) Run() error {
	for _, k := range tools.Kinds() {
		marker := " "
		if k == tools.DefaultKind {
			marker = "*"
		}
		fmt.Fprintf(os.Stdout, "%s %c  %s\n", marker, appstate.ToolKey(k), k)
	}
	fmt.Fprintln(os.Stdout, "* marks the tool active on start")
	return nil
}

func (c *toolsCmd) Program() string {
	return "pixpaint tools"
}

func (c *toolsCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

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
	km := appstate.DefaultKeymap(appstate.Commands{})
	for _, name := range km.Actions() {
		var keys []string
		for _, sc := range km.Bindings(name) {
			keys = append(keys, sc.String())
		}
		fmt.Fprintf(os.Stdout, "%-16s %s\n", name, strings.Join(uniq(keys), ", "))
	}
	return nil
}

func (c *keysCmd) Program() string {
	return "pixpaint keys"
}

func (c *keysCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

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
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *themesCmd) Run() error {
	fmt.Fprintln(os.Stdout, "built-in themes:")
	for _, name := range theme.EmbeddedNames() {
		fmt.Fprintf(os.Stdout, "  %s\n", name)
	}
	if c.root != nil && c.config != nil && len(c.config.Themes) > 0 {
		fmt.Fprintln(os.Stdout, "themes from config:")
		names := make([]string, 0, len(c.config.Themes))
		for name := range c.config.Themes {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(os.Stdout, "  %s\n", name)
		}
	}
	return nil
}

func (c *themesCmd) Program() string {
	return "pixpaint themes"
}

func (c *themesCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func uniq(in []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
