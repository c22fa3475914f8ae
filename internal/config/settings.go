package config

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// ThemeMode selects the light/dark variant of the screen
type ThemeMode string

const (
	ThemeSystem ThemeMode = "system"
	ThemeLight  ThemeMode = "light"
	ThemeDark   ThemeMode = "dark"
)

// Settings keys for Fyne preferences
const (
	KeyThemeMode    = "theme_mode"
	KeyWindowWidth  = "window_width"
	KeyWindowHeight = "window_height"
)

// Default values
const (
	DefaultThemeMode = ThemeSystem

	// Portrait phone viewport
	DefaultWindowWidth  float32 = 412
	DefaultWindowHeight float32 = 915

	MinWindowSide float32 = 200
	MaxWindowSide float32 = 4096
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetThemeMode returns the configured theme mode
func (s *Settings) GetThemeMode() ThemeMode {
	mode := ThemeMode(s.app.Preferences().String(KeyThemeMode))
	if !mode.Valid() {
		s.SetThemeMode(DefaultThemeMode)
		return DefaultThemeMode
	}
	return mode
}

// SetThemeMode sets the theme mode. Unknown modes are ignored.
func (s *Settings) SetThemeMode(mode ThemeMode) bool {
	if !mode.Valid() {
		return false
	}
	s.app.Preferences().SetString(KeyThemeMode, string(mode))
	return true
}

// IsDark resolves the theme mode to a dark-mode flag, asking the platform
// when the mode follows the system.
func (s *Settings) IsDark() bool {
	switch s.GetThemeMode() {
	case ThemeDark:
		return true
	case ThemeLight:
		return false
	default:
		return s.app.Settings().ThemeVariant() == theme.VariantDark
	}
}

// GetWindowSize returns the configured initial window size
func (s *Settings) GetWindowSize() fyne.Size {
	prefs := s.app.Preferences()
	w := float32(prefs.FloatWithFallback(KeyWindowWidth, float64(DefaultWindowWidth)))
	h := float32(prefs.FloatWithFallback(KeyWindowHeight, float64(DefaultWindowHeight)))
	return fyne.NewSize(clampSide(w), clampSide(h))
}

// SetWindowSize sets the initial window size
func (s *Settings) SetWindowSize(size fyne.Size) {
	s.app.Preferences().SetFloat(KeyWindowWidth, float64(clampSide(size.Width)))
	s.app.Preferences().SetFloat(KeyWindowHeight, float64(clampSide(size.Height)))
}

// Valid reports whether m is a known theme mode
func (m ThemeMode) Valid() bool {
	return m == ThemeSystem || m == ThemeLight || m == ThemeDark
}

func clampSide(v float32) float32 {
	if v < MinWindowSide {
		return MinWindowSide
	}
	if v > MaxWindowSide {
		return MaxWindowSide
	}
	return v
}
