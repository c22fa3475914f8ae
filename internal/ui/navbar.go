package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/cityread/article-screen/internal/model"
	"github.com/cityread/article-screen/internal/tokens"
)

// NavItem is a bottom bar destination: glyph over label, tinted by its
// selection state. Tapping it runs the item's activation handler and nothing
// else; selection is never changed here.
type NavItem struct {
	widget.BaseWidget

	item      model.NavItem
	indicator color.Color
}

// NewNavItem creates a navigation item widget
func NewNavItem(item model.NavItem, indicator color.Color) *NavItem {
	n := &NavItem{item: item, indicator: indicator}
	n.ExtendBaseWidget(n)
	return n
}

// Label returns the item label
func (n *NavItem) Label() string {
	return n.item.Label
}

// Selected reports whether the item is drawn in the selected tint
func (n *NavItem) Selected() bool {
	return n.item.Selected
}

// Tint returns the color of the glyph and label
func (n *NavItem) Tint() color.NRGBA {
	return n.item.Tint
}

// Tapped runs the activation handler
func (n *NavItem) Tapped(*fyne.PointEvent) {
	if n.item.OnActivate != nil {
		n.item.OnActivate()
	}
}

// CreateRenderer creates the renderer for the navigation item
func (n *NavItem) CreateRenderer() fyne.WidgetRenderer {
	icon := glyphImage(n.item.Glyph, n.item.Tint, NavIconSize)

	pill := canvas.NewRectangle(color.Transparent)
	if n.item.Selected {
		pill.FillColor = n.indicator
	}
	pill.CornerRadius = NavIndicatorRadius
	pill.SetMinSize(fyne.NewSize(NavIndicatorWidth, NavIndicatorHeight))

	label := canvas.NewText(n.item.Label, n.item.Tint)
	label.TextSize = tokens.LabelSize
	label.Alignment = fyne.TextAlignCenter

	content := container.New(layout.NewCustomPaddedVBoxLayout(NavLabelIconSpacing),
		container.NewStack(pill, container.NewCenter(icon)),
		container.NewCenter(label),
	)
	return widget.NewSimpleRenderer(container.NewCenter(content))
}

// newNavBar renders the bar and returns its item widgets in bar order
func newNavBar(bar model.NavBar) (fyne.CanvasObject, []*NavItem) {
	items := make([]*NavItem, len(bar.Items))
	cells := make([]fyne.CanvasObject, len(bar.Items))
	for i, item := range bar.Items {
		items[i] = NewNavItem(item, bar.Indicator)
		cells[i] = items[i]
	}

	bg := canvas.NewRectangle(bar.Background)
	bg.SetMinSize(fyne.NewSize(0, NavBarHeight))

	cols := len(cells)
	if cols == 0 {
		cols = 1
	}
	return container.NewStack(bg, container.NewGridWithColumns(cols, cells...)), items
}

// glyphResource maps a glyph to a built-in theme icon
func glyphResource(g model.Glyph) fyne.Resource {
	switch g {
	case model.GlyphPerson:
		return theme.AccountIcon()
	case model.GlyphClock:
		return theme.HistoryIcon()
	default:
		return theme.ListIcon()
	}
}

// glyphImage draws a tinted glyph at a fixed square size
func glyphImage(g model.Glyph, tint color.NRGBA, size float32) *canvas.Image {
	res := theme.NewColoredResource(glyphResource(g), tintColorName(tint))
	img := canvas.NewImageFromResource(res)
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(fyne.NewSize(size, size))
	return img
}

// fixedSpacer is empty space with a fixed minimum size
func fixedSpacer(w, h float32) fyne.CanvasObject {
	r := canvas.NewRectangle(color.Transparent)
	r.SetMinSize(fyne.NewSize(w, h))
	return r
}
