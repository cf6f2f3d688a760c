package theme

import (
	"fmt"
	"image/color"
	"reflect"
	"strings"
)

// Theme defines the colours of the window chrome around the drawing. The
// canvas and swatch colours are fixed and not themed.
type Theme struct {
	Name string

	// Frame
	Background color.RGBA // Frame border and gaps around canvas and swatches
	Backdrop   color.RGBA // Window area outside the scaled frame

	// Status bar
	StatusBackground color.RGBA
	StatusText       color.RGBA
	StatusAccent     color.RGBA // Transient messages such as "copied"
	StatusSwatchRing color.RGBA // Outline around the current colour chip
}

// Default returns the hardcoded default light theme (fallback).
func Default() *Theme {
	return &Theme{
		Name:             "Default",
		Background:       color.RGBA{128, 128, 128, 255},
		Backdrop:         color.RGBA{64, 64, 64, 255},
		StatusBackground: color.RGBA{220, 220, 220, 255},
		StatusText:       color.RGBA{0, 0, 0, 255},
		StatusAccent:     color.RGBA{0, 96, 192, 255},
		StatusSwatchRing: color.RGBA{0, 0, 0, 255},
	}
}

var rgbaType = reflect.TypeOf(color.RGBA{})

// Keys lists the colour keys of a theme in declaration order.
func Keys() []string {
	typ := reflect.TypeOf(Theme{})
	var keys []string
	for i := 0; i < typ.NumField(); i++ {
		if f := typ.Field(i); f.Type == rgbaType {
			keys = append(keys, f.Name)
		}
	}
	return keys
}

// Set assigns a single key. Keys match field names case-insensitively and
// unknown keys are ignored so older binaries can read newer themes.
func (t *Theme) Set(key, value string) error {
	if strings.EqualFold(key, "Name") {
		t.Name = value
		return nil
	}
	val := reflect.ValueOf(t).Elem()
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !strings.EqualFold(f.Name, key) || f.Type != rgbaType {
			continue
		}
		col, err := ParseColor(value)
		if err != nil {
			return fmt.Errorf("invalid color for key %s: %w", key, err)
		}
		val.Field(i).Set(reflect.ValueOf(col))
		return nil
	}
	return nil
}

// Get returns the colour stored under key.
func (t *Theme) Get(key string) (color.RGBA, bool) {
	f := reflect.ValueOf(t).Elem().FieldByNameFunc(func(name string) bool {
		return strings.EqualFold(name, key)
	})
	if !f.IsValid() || f.Type() != rgbaType {
		return color.RGBA{}, false
	}
	return f.Interface().(color.RGBA), true
}

// Lines renders the theme as "Key: value" lines in Keys order, starting
// with its name.
func (t *Theme) Lines() []string {
	lines := []string{"Name: " + t.Name}
	for _, k := range Keys() {
		c, _ := t.Get(k)
		lines = append(lines, fmt.Sprintf("%s: %s", k, Hex(c)))
	}
	return lines
}
