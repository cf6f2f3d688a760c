package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/example/pixpaint/internal/appstate"
	"github.com/example/pixpaint/internal/config"
	"github.com/example/pixpaint/internal/frame"
	"github.com/example/pixpaint/internal/theme"
	"github.com/example/pixpaint/internal/tools"
)

func TestParsePaintRejectsBadInput(t *testing.T) {
	cases := map[string][]string{
		"unknown tool":  {"-tool", "spray"},
		"bad colour":    {"-color", "#12"},
		"narrow canvas": {"-width", "10"},
		"negative":      {"-scale", "-1"},
	}
	for name, args := range cases {
		if _, err := parsePaintCmd(args, nil); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}

	_, err := parsePaintCmd([]string{"-tool", "spray"}, nil)
	if !errors.Is(err, tools.ErrUnknownTool) {
		t.Fatalf("expected ErrUnknownTool, got %v", err)
	}
}

func TestParsePaintUsesConfig(t *testing.T) {
	cfg := config.New()
	cfg.Tool = "fill"
	cfg.Color = "blue"
	cfg.Scale = 2
	r := &root{program: "pixpaint", config: cfg}

	p, err := parsePaintCmd(nil, r)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if p.tool != tools.KindFill || p.color == nil || *p.color != frame.Blue || p.scale != 2 {
		t.Fatalf("config not applied: %+v", p)
	}
	if p.Program() != "pixpaint paint" {
		t.Fatalf("program %q", p.Program())
	}

	p, err = parsePaintCmd([]string{"-tool", "circle", "-color", "#00FF00", "-scale", "5"}, r)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if p.tool != tools.KindCircle || *p.color != frame.Green || p.scale != 5 {
		t.Fatalf("flags should override config: %+v", p)
	}
}

func TestPaintRunBuildsState(t *testing.T) {
	var got *appstate.AppState
	orig := runWindowFn
	runWindowFn = func(st *appstate.AppState) { got = st }
	t.Cleanup(func() { runWindowFn = orig })

	dark := &theme.Theme{Name: "mine"}
	r := &root{program: "pixpaint", config: config.New(), activeTheme: dark}
	p, err := parsePaintCmd([]string{"-tool", "line", "-width", "64", "-height", "32", "-scale", "3"}, r)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := p.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got == nil {
		t.Fatal("window not started")
	}
	if got.Tool != tools.KindLine || got.Scale != 3 || got.Theme != dark {
		t.Fatalf("unexpected state %+v", got)
	}
	if got.Layout.CanvasWidth != 64 || got.Layout.CanvasHeight != 32 {
		t.Fatalf("layout %+v", got.Layout)
	}
	if got.Color != nil {
		t.Fatalf("no colour was requested, got %v", *got.Color)
	}
}

func TestPaintHelpListsTools(t *testing.T) {
	p, err := parsePaintCmd(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	help := (&UsageError{of: p}).Error()
	for _, want := range []string{"Usage: pixpaint paint", "-tool", "o  circle", "Ctrl+V"} {
		if !strings.Contains(help, want) {
			t.Errorf("help missing %q:\n%s", want, help)
		}
	}
}

func TestRootUnknownCommand(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	r := newRoot()
	err := r.Run([]string{"explode"})
	var uerr *UsageError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected usage error, got %v", err)
	}
	if !strings.Contains(uerr.Error(), "Commands:") {
		t.Fatalf("unexpected help %q", uerr.Error())
	}
}

func TestResolveThemePrecedence(t *testing.T) {
	cfg := config.New()
	mine := &theme.Theme{Name: "mine"}
	cfg.Themes["mine"] = mine
	cfg.Theme = "mine"

	r := &root{config: cfg}
	if got := r.resolveTheme(); got != mine {
		t.Fatalf("config theme not used: %+v", got)
	}

	t.Setenv("PIXPAINT_THEME", "dark")
	if got := r.resolveTheme(); got.Name != "Dark" {
		t.Fatalf("env theme not used: %+v", got)
	}

	r.themeName = "missing-theme"
	if got := r.resolveTheme(); got.Name != theme.Default().Name {
		t.Fatalf("unknown theme should fall back to default, got %+v", got)
	}
}

func TestConfigUnknownSubcommand(t *testing.T) {
	c, err := parseConfigCmd([]string{"frobnicate"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Run(); err == nil || !strings.Contains(err.Error(), "unknown config command") {
		t.Fatalf("unexpected error %v", err)
	}
	c, _ = parseConfigCmd(nil, nil)
	var uerr *UsageError
	if !errors.As(c.Run(), &uerr) {
		t.Fatal("expected usage error without a subcommand")
	}
}

func TestUniq(t *testing.T) {
	got := uniq([]string{"Ctrl+C", "Ctrl+C", "q"})
	if len(got) != 2 || got[0] != "Ctrl+C" || got[1] != "q" {
		t.Fatalf("got %v", got)
	}
}
