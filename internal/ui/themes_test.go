package ui

import (
	"os"
	"strings"
	"testing"
)

// TestSetTheme tests theme selection by name.
func TestSetTheme(t *testing.T) {
	original := GetCurrentTheme()
	defer SetCurrentTheme(original)

	tests := []struct {
		name string
		want string
	}{
		{"dark", "dark"},
		{"light", "light"},
		{"none", "none"},
		{"unknown", "dark"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetTheme(tt.name)
			if got := GetCurrentTheme().Name; got != tt.want {
				t.Errorf("SetTheme(%q) activated %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

// TestInitTheme tests NO_COLOR handling and the -no-color override.
func TestInitTheme(t *testing.T) {
	original := GetCurrentTheme()
	defer SetCurrentTheme(original)

	t.Run("noColor flag disables colors", func(t *testing.T) {
		InitTheme(true)
		if GetCurrentTheme().Name != "none" {
			t.Errorf("InitTheme(true) should select no-color theme, got %q", GetCurrentTheme().Name)
		}
		if ColorPrimary() != "" || ColorReset() != "" {
			t.Error("no-color theme should have empty escape codes")
		}
	})

	t.Run("NO_COLOR env disables colors", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		InitTheme(false)
		if GetCurrentTheme().Name != "none" {
			t.Errorf("NO_COLOR should select no-color theme, got %q", GetCurrentTheme().Name)
		}
	})

	t.Run("defaults to dark theme", func(t *testing.T) {
		if _, exists := os.LookupEnv("NO_COLOR"); exists {
			t.Skip("NO_COLOR set in environment")
		}
		InitTheme(false)
		if got := GetCurrentTheme().Name; got != "dark" {
			t.Errorf("InitTheme(false) = %q, want dark", got)
		}
	})
}

// TestRenderBanner tests banner rendering with and without colors.
func TestRenderBanner(t *testing.T) {
	original := GetCurrentTheme()
	defer SetCurrentTheme(original)

	t.Run("plain when colors are disabled", func(t *testing.T) {
		SetCurrentTheme(NoColorTheme)
		if got := RenderBanner("Exporter Demo"); got != "Exporter Demo" {
			t.Errorf("RenderBanner with no-color theme = %q, want plain title", got)
		}
	})

	t.Run("contains the title when styled", func(t *testing.T) {
		SetCurrentTheme(DarkTheme)
		if got := RenderBanner("Exporter Demo"); !strings.Contains(got, "Exporter Demo") {
			t.Errorf("RenderBanner should contain the title, got %q", got)
		}
	})
}
