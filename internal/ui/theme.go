package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/cityread/article-screen/internal/tokens"
)

// ArticleTheme is the theme of the article screen. The variant is fixed at
// construction so the screen does not follow later system changes.
type ArticleTheme struct {
	variant fyne.ThemeVariant
}

// NewArticleTheme creates a theme locked to the light or dark variant
func NewArticleTheme(dark bool) fyne.Theme {
	variant := theme.VariantLight
	if dark {
		variant = theme.VariantDark
	}
	return &ArticleTheme{variant: variant}
}

// Color returns theme colors
func (t *ArticleTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	scheme := tokens.SchemeFor(t.variant == theme.VariantDark)

	switch name {
	case ColorNameTintWhite:
		return tokens.White
	case ColorNameTintGray:
		return tokens.Gray
	case ColorNameTintLightGray:
		return tokens.LightGray
	case theme.ColorNamePrimary:
		return tokens.Accent
	case theme.ColorNameBackground:
		return scheme.Surface
	case theme.ColorNameForeground:
		return scheme.OnSurface
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, t.variant)
}

// Font returns theme fonts
func (t *ArticleTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *ArticleTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes aligned with the typography tokens
func (t *ArticleTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return tokens.BodySize
	case theme.SizeNameHeadingText:
		return tokens.HeadlineSize
	case theme.SizeNameCaptionText:
		return tokens.BodySmallSize
	}

	return theme.DefaultTheme().Size(name)
}

// tintColorName maps a palette tint to the theme color name used to recolor
// glyph icons. Tints outside the palette fall back to the foreground color.
func tintColorName(c color.NRGBA) fyne.ThemeColorName {
	switch c {
	case tokens.White:
		return ColorNameTintWhite
	case tokens.Gray:
		return ColorNameTintGray
	case tokens.LightGray:
		return ColorNameTintLightGray
	default:
		return theme.ColorNameForeground
	}
}
