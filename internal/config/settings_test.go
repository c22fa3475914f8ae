package config

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestThemeMode(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	mode := settings.GetThemeMode()
	if mode != DefaultThemeMode {
		t.Errorf("Expected default theme mode %s, got %s", DefaultThemeMode, mode)
	}

	// Test setting custom value
	if !settings.SetThemeMode(ThemeDark) {
		t.Error("SetThemeMode(dark) should succeed")
	}
	if retrieved := settings.GetThemeMode(); retrieved != ThemeDark {
		t.Errorf("Expected theme mode %s, got %s", ThemeDark, retrieved)
	}

	// Test invalid value is rejected
	if settings.SetThemeMode("sepia") {
		t.Error("SetThemeMode should reject unknown modes")
	}
	if retrieved := settings.GetThemeMode(); retrieved != ThemeDark {
		t.Errorf("Invalid mode should leave %s in place, got %s", ThemeDark, retrieved)
	}
}

func TestThemeMode_CorruptPreference(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	app.Preferences().SetString(KeyThemeMode, "neon")
	if mode := settings.GetThemeMode(); mode != DefaultThemeMode {
		t.Errorf("Corrupt preference should fall back to %s, got %s", DefaultThemeMode, mode)
	}
}

func TestIsDark(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	settings.SetThemeMode(ThemeDark)
	if !settings.IsDark() {
		t.Error("Dark mode should resolve to dark")
	}

	settings.SetThemeMode(ThemeLight)
	if settings.IsDark() {
		t.Error("Light mode should resolve to light")
	}
}

func TestWindowSize(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	size := settings.GetWindowSize()
	if size.Width != DefaultWindowWidth || size.Height != DefaultWindowHeight {
		t.Errorf("Expected default size %gx%g, got %gx%g", DefaultWindowWidth, DefaultWindowHeight, size.Width, size.Height)
	}

	// Test setting custom value
	settings.SetWindowSize(fyne.NewSize(360, 800))
	size = settings.GetWindowSize()
	if size.Width != 360 || size.Height != 800 {
		t.Errorf("Expected size 360x800, got %gx%g", size.Width, size.Height)
	}

	// Test boundary values
	settings.SetWindowSize(fyne.NewSize(10, 10000))
	size = settings.GetWindowSize()
	if size.Width != MinWindowSide || size.Height != MaxWindowSide {
		t.Errorf("Size should be clamped to %gx%g, got %gx%g", MinWindowSide, MaxWindowSide, size.Width, size.Height)
	}
}
