package ui

import (
	"fyne.io/fyne/v2"
)

// MobileUI provides mobile-specific window handling
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	if m.app == nil {
		return false
	}
	return m.app.Driver().Device().IsMobile()
}

// IsLandscape returns true if device is in landscape orientation
func (m *MobileUI) IsLandscape() bool {
	if !m.IsMobileDevice() {
		return false
	}
	orientation := m.app.Driver().Device().Orientation()
	return orientation == fyne.OrientationHorizontalLeft || orientation == fyne.OrientationHorizontalRight
}

// SizeWindow applies the configured size on desktop. Mobile windows always
// fill the display, so they are left alone.
func (m *MobileUI) SizeWindow(window fyne.Window, size fyne.Size) {
	if m.IsMobileDevice() {
		return
	}
	window.Resize(size)
}
