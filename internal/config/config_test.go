package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/pixpaint/internal/layout"
)

func TestParse(t *testing.T) {
	input := `
theme = my_custom_theme
tool = circle
color = "blue"
scale = 3

[notify]
copy = true
paste = false
clear = true

[layout]
canvas_width = 320
canvas_height = 200

[theme.my_custom_theme]
Background = #111111
StatusText = #FFFFFF
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Theme != "my_custom_theme" {
		t.Errorf("Expected theme 'my_custom_theme', got '%s'", cfg.Theme)
	}
	if cfg.Tool != "circle" || cfg.Color != "blue" || cfg.Scale != 3 {
		t.Errorf("unexpected root values %+v", cfg)
	}
	if !cfg.Notify.Copy || cfg.Notify.Paste || !cfg.Notify.Clear {
		t.Errorf("unexpected notify %+v", cfg.Notify)
	}
	want := layout.Layout{CanvasWidth: 320, CanvasHeight: 200, Border: 1, ButtonSize: 5}
	if cfg.Layout != want {
		t.Errorf("layout %+v, want %+v", cfg.Layout, want)
	}

	th, ok := cfg.Themes["my_custom_theme"]
	if !ok {
		t.Fatal("Expected theme 'my_custom_theme' to be loaded")
	}
	if th.Background.R != 0x11 || th.Background.G != 0x11 || th.Background.B != 0x11 {
		t.Errorf("Unexpected Background color: %+v", th.Background)
	}
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"bool":   "[notify]\ncopy = maybe\n",
		"number": "[layout]\nborder = wide\n",
		"narrow": "[layout]\ncanvas_width = 10\n",
		"scale":  "scale = -2\n",
		"color":  "[theme.x]\nBackground = #12\n",
	}
	for name, input := range cases {
		if _, err := Parse(strings.NewReader(input)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestCircular(t *testing.T) {
	input := `theme = dark
tool = line
scale = 2

[notify]
copy = true
clear = false

[layout]
border = 2

[theme.custom]
Name = custom
Background = #000000
StatusText = #FFFFFF
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Initial parse failed: %v", err)
	}

	generated := cfg.String()

	cfg2, err := Parse(strings.NewReader(generated))
	if err != nil {
		t.Fatalf("Circular parse failed: %v\n%s", err, generated)
	}

	if cfg.Theme != cfg2.Theme || cfg.Tool != cfg2.Tool || cfg.Scale != cfg2.Scale {
		t.Errorf("root mismatch: %+v vs %+v", cfg, cfg2)
	}
	if cfg.Notify != cfg2.Notify {
		t.Errorf("Notify mismatch: %+v vs %+v", cfg.Notify, cfg2.Notify)
	}
	if cfg.Layout != cfg2.Layout {
		t.Errorf("Layout mismatch: %+v vs %+v", cfg.Layout, cfg2.Layout)
	}

	t1 := cfg.Themes["custom"]
	t2 := cfg2.Themes["custom"]
	if t1 == nil || t2 == nil {
		t.Fatalf("Custom theme missing in one config")
	}
	if *t1 != *t2 {
		t.Errorf("Theme mismatch: %+v vs %+v", t1, t2)
	}
}

func TestLoaderSearchOrder(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	wd := t.TempDir()
	origWD, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(wd); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(origWD) })

	l := NewLoader("dev", "")
	if got := l.GetConfigPath(); got != "" {
		t.Fatalf("expected no config, got %s", got)
	}
	cfg, err := l.Load()
	if err != nil || cfg.Layout != layout.Default() {
		t.Fatalf("expected defaults, got %+v %v", cfg, err)
	}

	alt := filepath.Join(xdg, "pixpaint", "pixpaint.rc")
	if err := Save(&Config{Tool: "fill", Layout: layout.Default()}, alt); err != nil {
		t.Fatal(err)
	}
	if got := l.GetConfigPath(); got != alt {
		t.Fatalf("expected %s, got %s", alt, got)
	}

	if err := Save(&Config{Tool: "line", Layout: layout.Default()}, DefaultPath()); err != nil {
		t.Fatal(err)
	}
	if got := l.GetConfigPath(); got != DefaultPath() {
		t.Fatalf("config.rc should win over pixpaint.rc, got %s", got)
	}

	local := filepath.Join(wd, ".pixpaintrc")
	if err := os.WriteFile(local, []byte("tool = pencil\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := l.GetConfigPath(); got != local {
		t.Fatalf("dev builds should prefer %s, got %s", local, got)
	}
	if got := NewLoader("1.0.0", "").GetConfigPath(); got != DefaultPath() {
		t.Fatalf("release builds ignore the local rc, got %s", got)
	}

	override := filepath.Join(t.TempDir(), "override.rc")
	if err := os.WriteFile(override, []byte("tool = circle\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = NewLoader("dev", override).Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Tool != "circle" {
		t.Fatalf("override not used: %+v", cfg)
	}
}
