package tokens

import "image/color"

// Fixed palette
var (
	Black     = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	White     = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	Gray      = color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xFF}
	LightGray = color.NRGBA{R: 0xCC, G: 0xCC, B: 0xCC, A: 0xFF}

	// Accent is the amber used by the top bar.
	Accent = color.NRGBA{R: 0xFF, G: 0xB3, B: 0x00, A: 0xFF}
	// ChipGold fills category chips.
	ChipGold = color.NRGBA{R: 0xB8, G: 0x9F, B: 0x67, A: 0xFF}
)

// WithAlpha returns c with its alpha channel scaled by alpha (0..1).
func WithAlpha(c color.NRGBA, alpha float32) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	c.A = uint8(float32(c.A)*alpha + 0.5)
	return c
}

// Scheme holds the surface colors that depend on the light/dark flag.
type Scheme struct {
	Dark      bool
	Surface   color.NRGBA
	OnSurface color.NRGBA
}

// SchemeFor returns the surface scheme for the given mode.
func SchemeFor(dark bool) Scheme {
	if dark {
		return Scheme{
			Dark:      true,
			Surface:   color.NRGBA{R: 0x14, G: 0x12, B: 0x18, A: 0xFF},
			OnSurface: color.NRGBA{R: 0xE6, G: 0xE1, B: 0xE5, A: 0xFF},
		}
	}
	return Scheme{
		Surface:   color.NRGBA{R: 0xFE, G: 0xF7, B: 0xFF, A: 0xFF},
		OnSurface: color.NRGBA{R: 0x1D, G: 0x1B, B: 0x20, A: 0xFF},
	}
}
