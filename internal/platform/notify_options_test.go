package platform

import "testing"

func TestAppNameDefault(t *testing.T) {
	if got := (Options{}).appName(); got != DefaultAppName {
		t.Fatalf("got %q", got)
	}
	if got := (Options{AppName: "  paint  "}).appName(); got != "paint" {
		t.Fatalf("got %q", got)
	}
}
