package ui

import "fyne.io/fyne/v2"

// UI-wide constants to avoid magic numbers scattered across the renderer.

// Navigation bar sizing
const (
	NavBarHeight        float32 = 80
	NavIconSize         float32 = 24
	NavIndicatorWidth   float32 = 64
	NavIndicatorHeight  float32 = 32
	NavIndicatorRadius  float32 = 16
	NavLabelIconSpacing float32 = 4
)

// Rendering limits for the cover image
const (
	// MaxCoverPixels caps the longest side of a rendered cover bitmap
	MaxCoverPixels = 2048
)

// Custom theme color names used to tint glyph icons
const (
	ColorNameTintWhite     fyne.ThemeColorName = "articleTintWhite"
	ColorNameTintGray      fyne.ThemeColorName = "articleTintGray"
	ColorNameTintLightGray fyne.ThemeColorName = "articleTintLightGray"
)
