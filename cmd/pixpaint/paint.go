package main

import (
	"flag"
	"fmt"

	"github.com/example/pixpaint/internal/appstate"
	"github.com/example/pixpaint/internal/frame"
	"github.com/example/pixpaint/internal/layout"
	"github.com/example/pixpaint/internal/theme"
	"github.com/example/pixpaint/internal/tools"
)

// runWindowFn opens the paint window; tests replace it.
var runWindowFn = func(st *appstate.AppState) { st.Run() }

type paintCmd struct {
	*root
	fs      *flag.FlagSet
	program string

	toolName  string
	colorName string
	scale     int
	width     int
	height    int

	tool     tools.Kind
	color    *frame.Color
	geometry layout.Layout
}

func (p *paintCmd) Program() string {
	return p.program
}

func (p *paintCmd) FlagSet() *flag.FlagSet {
	return p.fs
}

func parsePaintCmd(args []string, r *root) (*paintCmd, error) {
	fs := flag.NewFlagSet("paint", flag.ExitOnError)
	p := &paintCmd{root: r, fs: fs, program: "pixpaint paint"}
	l := r.layout()
	if r != nil {
		p.program = r.subcommand("paint")
		if r.config != nil {
			p.toolName = r.config.Tool
			p.colorName = r.config.Color
			p.scale = r.config.Scale
		}
	}
	if p.toolName == "" {
		p.toolName = tools.DefaultKind.String()
	}
	fs.StringVar(&p.toolName, "tool", p.toolName, "tool active on start (pencil, rectangle, circle, line, fill)")
	fs.StringVar(&p.colorName, "color", p.colorName, "initial picker colour, a name or #RRGGBB")
	fs.IntVar(&p.scale, "scale", p.scale, "window pixels per canvas pixel (0 fits the screen)")
	fs.IntVar(&p.width, "width", l.CanvasWidth, "canvas width in pixels")
	fs.IntVar(&p.height, "height", l.CanvasHeight, "canvas height in pixels")
	fs.Usage = usageFunc(p)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: p}
	}

	kind, err := tools.ParseKind(p.toolName)
	if err != nil {
		return nil, err
	}
	p.tool = kind
	if p.colorName != "" {
		c, err := theme.ParseColor(p.colorName)
		if err != nil {
			return nil, fmt.Errorf("invalid -color: %w", err)
		}
		fc := frame.FromColor(c)
		p.color = &fc
	}
	if p.scale < 0 {
		return nil, fmt.Errorf("-scale must not be negative, got %d", p.scale)
	}
	l.CanvasWidth, l.CanvasHeight = p.width, p.height
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("invalid canvas size: %w", err)
	}
	p.geometry = l
	return p, nil
}

func (p *paintCmd) options() []appstate.Option {
	opts := []appstate.Option{
		appstate.WithLayout(p.geometry),
		appstate.WithScale(p.scale),
		appstate.WithTool(p.tool),
	}
	if p.color != nil {
		opts = append(opts, appstate.WithColor(*p.color))
	}
	if p.root != nil {
		opts = append(opts, appstate.WithTheme(p.activeTheme), appstate.WithNotifier(p.notifier))
	}
	return opts
}

func (p *paintCmd) Run() error {
	runWindowFn(appstate.New(p.options()...))
	return nil
}
