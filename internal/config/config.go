package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/example/pixpaint/internal/layout"
	"github.com/example/pixpaint/internal/theme"
)

// Notify holds notification settings.
type Notify struct {
	Copy  bool
	Paste bool
	Clear bool
}

// Config holds the application configuration.
type Config struct {
	Theme  string
	Tool   string
	Color  string
	Scale  int // zero picks a scale from the screen size
	Notify Notify
	Layout layout.Layout
	Themes map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Layout: layout.Default(),
		Themes: make(map[string]*theme.Theme),
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	root := [][2]string{
		{"theme", c.Theme},
		{"tool", c.Tool},
		{"color", c.Color},
	}
	for _, kv := range root {
		if kv[1] != "" {
			fmt.Fprintf(&sb, "%s = %s\n", kv[0], kv[1])
		}
	}
	if c.Scale != 0 {
		fmt.Fprintf(&sb, "scale = %d\n", c.Scale)
	}
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	fmt.Fprintf(&sb, "paste = %v\n", c.Notify.Paste)
	fmt.Fprintf(&sb, "clear = %v\n", c.Notify.Clear)
	sb.WriteString("\n")

	sb.WriteString("[layout]\n")
	fmt.Fprintf(&sb, "canvas_width = %d\n", c.Layout.CanvasWidth)
	fmt.Fprintf(&sb, "canvas_height = %d\n", c.Layout.CanvasHeight)
	fmt.Fprintf(&sb, "border = %d\n", c.Layout.Border)
	fmt.Fprintf(&sb, "button_size = %d\n", c.Layout.ButtonSize)
	sb.WriteString("\n")

	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		for _, line := range c.Themes[name].Lines() {
			sb.WriteString(line)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
